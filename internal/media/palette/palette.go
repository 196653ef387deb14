// Package palette parses JASC-PAL color tables, the text palette format
// embedded in the legacy interface archives. Sprite resources store palette
// indices only; every rendered frame resolves through one of these tables.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	magic   = "JASC-PAL"
	version = "0100"
)

// Parse decodes a JASC-PAL resource into a color.Palette. All colors are
// fully opaque except index 0, which the engine treats as transparent.
func Parse(data []byte) (color.Palette, error) {
	lines := splitLines(string(data))
	if len(lines) < 3 {
		return nil, fmt.Errorf("palette too short: %d lines", len(lines))
	}
	if lines[0] != magic {
		return nil, fmt.Errorf("bad palette magic %q", lines[0])
	}
	if lines[1] != version {
		return nil, fmt.Errorf("unsupported palette version %q", lines[1])
	}

	count, err := strconv.Atoi(lines[2])
	if err != nil || count < 1 {
		return nil, fmt.Errorf("bad palette color count %q", lines[2])
	}
	if len(lines) < 3+count {
		return nil, fmt.Errorf("palette declares %d colors but holds %d", count, len(lines)-3)
	}

	pal := make(color.Palette, count)
	for i := 0; i < count; i++ {
		fields := strings.Fields(lines[3+i])
		if len(fields) != 3 {
			return nil, fmt.Errorf("palette line %d: want 3 components, got %q", 4+i, lines[3+i])
		}
		var rgb [3]uint8
		for j, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil || v < 0 || v > 255 {
				return nil, fmt.Errorf("palette line %d: bad component %q", 4+i, field)
			}
			rgb[j] = uint8(v)
		}
		pal[i] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	}

	pal[0] = color.RGBA{}
	return pal, nil
}

// splitLines tolerates the CRLF endings legacy tools wrote and trims a
// trailing blank line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
