package testutil

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// SLPFrame describes one frame for BuildSLP. Rows holds the raw command
// stream per row, including the trailing end-of-row byte; a nil row is
// encoded as empty (no drawn pixels).
type SLPFrame struct {
	Width    int
	Height   int
	HotspotX int
	HotspotY int
	Rows     [][]byte
}

// BuildSLP assembles an SLP resource from explicit frame descriptions.
func BuildSLP(frames ...SLPFrame) []byte {
	header := make([]byte, 32)
	copy(header, "2.0N")
	binary.LittleEndian.PutUint32(header[4:], uint32(len(frames)))
	copy(header[8:], "testutil fixture")

	buf := append([]byte(nil), header...)
	infoStart := len(buf)
	buf = append(buf, make([]byte, len(frames)*32)...)

	for i, f := range frames {
		if len(f.Rows) != f.Height {
			panic(fmt.Sprintf("testutil: frame %d has %d rows for height %d", i, len(f.Rows), f.Height))
		}

		outlineOffset := len(buf)
		buf = append(buf, make([]byte, f.Height*4)...)
		cmdTableOffset := len(buf)
		buf = append(buf, make([]byte, f.Height*4)...)

		for y, row := range f.Rows {
			if row == nil {
				binary.LittleEndian.PutUint16(buf[outlineOffset+y*4:], 0x8000)
				continue
			}
			binary.LittleEndian.PutUint32(buf[cmdTableOffset+y*4:], uint32(len(buf)))
			buf = append(buf, row...)
		}

		info := buf[infoStart+i*32:]
		binary.LittleEndian.PutUint32(info, uint32(cmdTableOffset))
		binary.LittleEndian.PutUint32(info[4:], uint32(outlineOffset))
		binary.LittleEndian.PutUint32(info[16:], uint32(int32(f.Width)))
		binary.LittleEndian.PutUint32(info[20:], uint32(int32(f.Height)))
		binary.LittleEndian.PutUint32(info[24:], uint32(int32(f.HotspotX)))
		binary.LittleEndian.PutUint32(info[28:], uint32(int32(f.HotspotY)))
	}

	return buf
}

// SolidSLP builds a single-frame SLP where every pixel is the given
// palette index, drawn with fill commands.
func SolidSLP(width, height int, palIdx byte) []byte {
	if width < 1 || width > 15 {
		panic("testutil: SolidSLP width must fit a fill command nibble")
	}
	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = []byte{byte(width<<4) | 0x07, palIdx, 0x0f}
	}
	return BuildSLP(SLPFrame{Width: width, Height: height, Rows: rows})
}

// BuildJASCPalette renders a JASC-PAL text palette from RGB triples.
func BuildJASCPalette(colors ...[3]uint8) []byte {
	var b strings.Builder
	b.WriteString("JASC-PAL\r\n0100\r\n")
	fmt.Fprintf(&b, "%d\r\n", len(colors))
	for _, c := range colors {
		fmt.Fprintf(&b, "%d %d %d\r\n", c[0], c[1], c[2])
	}
	return []byte(b.String())
}

// GrayPalette builds a palette of n opaque gray steps, handy when a test
// needs a specific palette size.
func GrayPalette(n int) []byte {
	colors := make([][3]uint8, n)
	for i := range colors {
		v := uint8(i % 256)
		colors[i] = [3]uint8{v, v, v}
	}
	return BuildJASCPalette(colors...)
}
