package palette

import (
	"image/color"
	"testing"

	"github.com/brisvag/openage/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := testutil.BuildJASCPalette(
		[3]uint8{0, 0, 0},
		[3]uint8{255, 0, 0},
		[3]uint8{0, 255, 0},
		[3]uint8{10, 20, 30},
	)

	pal, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, pal, 4)

	// Index 0 is transparent regardless of its declared color.
	require.Equal(t, color.RGBA{}, pal[0])
	require.Equal(t, color.RGBA{R: 255, A: 255}, pal[1])
	require.Equal(t, color.RGBA{G: 255, A: 255}, pal[2])
	require.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, pal[3])
}

func TestParse_LFOnly(t *testing.T) {
	t.Parallel()

	pal, err := Parse([]byte("JASC-PAL\n0100\n2\n1 2 3\n4 5 6\n"))
	require.NoError(t, err)
	require.Len(t, pal, 2)
	require.Equal(t, color.RGBA{R: 4, G: 5, B: 6, A: 255}, pal[1])
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"bad magic", "RIFF-PAL\r\n0100\r\n1\r\n0 0 0\r\n"},
		{"bad version", "JASC-PAL\r\n0200\r\n1\r\n0 0 0\r\n"},
		{"bad count", "JASC-PAL\r\n0100\r\nmany\r\n0 0 0\r\n"},
		{"zero count", "JASC-PAL\r\n0100\r\n0\r\n"},
		{"missing colors", "JASC-PAL\r\n0100\r\n3\r\n0 0 0\r\n"},
		{"short line", "JASC-PAL\r\n0100\r\n1\r\n0 0\r\n"},
		{"component overflow", "JASC-PAL\r\n0100\r\n1\r\n0 0 300\r\n"},
		{"negative component", "JASC-PAL\r\n0100\r\n1\r\n0 0 -1\r\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.data))
			require.Error(t, err)
		})
	}
}
