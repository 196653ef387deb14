// Package slp decodes SLP sprite resources into standard images. An SLP
// holds a set of frames; each frame stores per-row outline margins, a
// per-row command table, and run-length drawing commands over palette
// indices. Player-colored pixels reference a per-player block of the
// palette and are resolved at render time.
package slp

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

const (
	headerLen    = 32
	frameInfoLen = 32

	// emptyRow marks a row with no drawn pixels in the outline table.
	emptyRow = 0x8000

	// playerColorStride is the size of one player's color block in the
	// shared palette; player N's colors start at N*playerColorStride.
	playerColorStride = 16
)

// shadowColor approximates the semi-transparent ground shadow the engine
// composites for shadow commands.
var shadowColor = color.RGBA{A: 128}

// Frame describes a single sprite frame.
type Frame struct {
	Width    int
	Height   int
	HotspotX int
	HotspotY int

	cmdTableOffset     uint32
	outlineTableOffset uint32
}

// SLP is a parsed sprite resource.
type SLP struct {
	Version string
	Comment string
	Frames  []Frame

	data []byte
}

// Parse decodes the SLP directory from raw resource bytes. Frame pixel data
// is decoded lazily by Render.
func Parse(data []byte) (*SLP, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("slp truncated: %d bytes, want at least %d for header", len(data), headerLen)
	}

	s := &SLP{
		Version: trimNul(data[0:4]),
		Comment: trimNul(data[8:32]),
		data:    data,
	}

	numFrames := int(int32(binary.LittleEndian.Uint32(data[4:])))
	if numFrames < 0 {
		return nil, fmt.Errorf("slp declares %d frames", numFrames)
	}
	infoEnd := headerLen + numFrames*frameInfoLen
	if infoEnd > len(data) {
		return nil, fmt.Errorf("slp truncated: frame directory ends at %d, have %d bytes", infoEnd, len(data))
	}

	s.Frames = make([]Frame, numFrames)
	for i := range s.Frames {
		off := headerLen + i*frameInfoLen
		f := &s.Frames[i]
		f.cmdTableOffset = binary.LittleEndian.Uint32(data[off:])
		f.outlineTableOffset = binary.LittleEndian.Uint32(data[off+4:])
		// Bytes 8..16 hold a palette offset and property flags; neither is
		// used by the games this converter targets.
		f.Width = int(int32(binary.LittleEndian.Uint32(data[off+16:])))
		f.Height = int(int32(binary.LittleEndian.Uint32(data[off+20:])))
		f.HotspotX = int(int32(binary.LittleEndian.Uint32(data[off+24:])))
		f.HotspotY = int(int32(binary.LittleEndian.Uint32(data[off+28:])))

		if f.Width < 0 || f.Height < 0 {
			return nil, fmt.Errorf("slp frame %d: negative dimensions %dx%d", i, f.Width, f.Height)
		}
	}

	return s, nil
}

// Render decodes frame idx into an RGBA image using the given palette.
// player selects the player-color block (1 is the first player). Undrawn
// pixels stay fully transparent. A frame with zero width or height renders
// as an empty image, not an error.
func (s *SLP) Render(idx int, pal color.Palette, player int) (*image.RGBA, error) {
	if idx < 0 || idx >= len(s.Frames) {
		return nil, fmt.Errorf("slp has no frame %d", idx)
	}
	if player < 1 {
		return nil, fmt.Errorf("invalid player %d", player)
	}
	f := &s.Frames[idx]

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	if f.Width == 0 || f.Height == 0 {
		return img, nil
	}

	outlineEnd := int(f.outlineTableOffset) + f.Height*4
	cmdEnd := int(f.cmdTableOffset) + f.Height*4
	if outlineEnd > len(s.data) || cmdEnd > len(s.data) {
		return nil, fmt.Errorf("slp frame %d: row tables outside resource", idx)
	}

	for y := 0; y < f.Height; y++ {
		left := binary.LittleEndian.Uint16(s.data[int(f.outlineTableOffset)+y*4:])
		if left == emptyRow {
			continue
		}
		rowOffset := binary.LittleEndian.Uint32(s.data[int(f.cmdTableOffset)+y*4:])
		if err := s.renderRow(img, f, y, int(left), int(rowOffset), pal, player); err != nil {
			return nil, fmt.Errorf("slp frame %d row %d: %w", idx, y, err)
		}
	}

	return img, nil
}

// renderRow executes one row's command stream. Draws outside the frame
// bounds are clamped by setPixel rather than treated as fatal; legacy
// archives contain frames whose margins disagree with their dimensions.
func (s *SLP) renderRow(img *image.RGBA, f *Frame, y, left, pos int, pal color.Palette, player int) error {
	x := left
	playerBase := player * playerColorStride

	next := func() (byte, error) {
		if pos >= len(s.data) {
			return 0, fmt.Errorf("command stream truncated at %d", pos)
		}
		b := s.data[pos]
		pos++
		return b, nil
	}

	for {
		cmd, err := next()
		if err != nil {
			return err
		}

		switch {
		case cmd == 0x0f:
			// End of row.
			return nil

		case cmd&0x0f == 0x07: // fill
			count, err := nibbleCount(cmd, next)
			if err != nil {
				return err
			}
			idxByte, err := next()
			if err != nil {
				return err
			}
			c := paletteColor(pal, int(idxByte))
			for i := 0; i < count; i++ {
				setPixel(img, x, y, c)
				x++
			}

		case cmd&0x0f == 0x06: // copy, player color
			count, err := nibbleCount(cmd, next)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				idxByte, err := next()
				if err != nil {
					return err
				}
				setPixel(img, x, y, paletteColor(pal, playerBase+int(idxByte)))
				x++
			}

		case cmd&0x0f == 0x0a: // fill, player color
			count, err := nibbleCount(cmd, next)
			if err != nil {
				return err
			}
			idxByte, err := next()
			if err != nil {
				return err
			}
			c := paletteColor(pal, playerBase+int(idxByte))
			for i := 0; i < count; i++ {
				setPixel(img, x, y, c)
				x++
			}

		case cmd&0x0f == 0x0b: // shadow
			count, err := nibbleCount(cmd, next)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				setPixel(img, x, y, shadowColor)
				x++
			}

		case cmd&0x0f == 0x0e:
			// Extended commands control outline hinting and mirroring for
			// the original renderer; they carry no pixels of their own.
			continue

		case cmd&0x0f == 0x02: // greater copy
			count := int(cmd&0xf0) << 4
			b, err := next()
			if err != nil {
				return err
			}
			count += int(b)
			for i := 0; i < count; i++ {
				idxByte, err := next()
				if err != nil {
					return err
				}
				setPixel(img, x, y, paletteColor(pal, int(idxByte)))
				x++
			}

		case cmd&0x0f == 0x03: // greater skip
			count := int(cmd&0xf0) << 4
			b, err := next()
			if err != nil {
				return err
			}
			x += count + int(b)

		case cmd&0x03 == 0x00: // lesser copy
			count := int(cmd >> 2)
			for i := 0; i < count; i++ {
				idxByte, err := next()
				if err != nil {
					return err
				}
				setPixel(img, x, y, paletteColor(pal, int(idxByte)))
				x++
			}

		case cmd&0x03 == 0x01: // lesser skip
			count := int(cmd >> 2)
			if count == 0 {
				b, err := next()
				if err != nil {
					return err
				}
				count = int(b)
			}
			x += count

		default:
			return fmt.Errorf("unknown command 0x%02x", cmd)
		}
	}
}

// nibbleCount reads a command count stored in the high nibble, spilling
// into the next byte when the nibble is zero.
func nibbleCount(cmd byte, next func() (byte, error)) (int, error) {
	count := int(cmd >> 4)
	if count == 0 {
		b, err := next()
		if err != nil {
			return 0, err
		}
		count = int(b)
	}
	return count, nil
}

func paletteColor(pal color.Palette, idx int) color.Color {
	if idx < 0 || idx >= len(pal) {
		return color.RGBA{}
	}
	return pal[idx]
}

func setPixel(img *image.RGBA, x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	img.Set(x, y, c)
}

func trimNul(raw []byte) string {
	for i, b := range raw {
		if b == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}
