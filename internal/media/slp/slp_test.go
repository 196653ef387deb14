package slp

import (
	"image/color"
	"testing"

	"github.com/brisvag/openage/internal/media/palette"
	"github.com/brisvag/openage/internal/testutil"
	"github.com/stretchr/testify/require"
)

func testPalette(t *testing.T) color.Palette {
	t.Helper()
	pal, err := palette.Parse(testutil.GrayPalette(64))
	require.NoError(t, err)
	return pal
}

func TestParse(t *testing.T) {
	t.Parallel()

	data := testutil.SolidSLP(3, 2, 5)
	s, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, "2.0N", s.Version)
	require.Equal(t, "testutil fixture", s.Comment)
	require.Len(t, s.Frames, 1)
	require.Equal(t, 3, s.Frames[0].Width)
	require.Equal(t, 2, s.Frames[0].Height)
}

func TestParse_Truncated(t *testing.T) {
	t.Parallel()

	data := testutil.SolidSLP(3, 2, 5)

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"header cut", data[:16]},
		{"frame directory cut", data[:40]},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tc.data)
			require.Error(t, err)
		})
	}
}

func TestRender_SolidFill(t *testing.T) {
	t.Parallel()

	pal := testPalette(t)
	s, err := Parse(testutil.SolidSLP(3, 2, 5))
	require.NoError(t, err)

	img, err := s.Render(0, pal, 1)
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	want := color.RGBA{R: 5, G: 5, B: 5, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, want, img.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRender_CommandMix(t *testing.T) {
	t.Parallel()

	pal := testPalette(t)

	// Row 0: copy indices 1 and 3, skip one pixel, fill one pixel with
	// index 2. Row 1: empty. Row 2: one player-color fill, one shadow.
	frame := testutil.SLPFrame{
		Width:  4,
		Height: 3,
		Rows: [][]byte{
			{0x08, 1, 3, 0x05, 0x17, 2, 0x0f},
			nil,
			{0x1a, 1, 0x1b, 0x0f},
		},
	}
	s, err := Parse(testutil.BuildSLP(frame))
	require.NoError(t, err)

	img, err := s.Render(0, pal, 1)
	require.NoError(t, err)

	require.Equal(t, color.RGBA{R: 1, G: 1, B: 1, A: 255}, img.At(0, 0))
	require.Equal(t, color.RGBA{R: 3, G: 3, B: 3, A: 255}, img.At(1, 0))
	require.Equal(t, color.RGBA{}, img.At(2, 0), "skipped pixel stays transparent")
	require.Equal(t, color.RGBA{R: 2, G: 2, B: 2, A: 255}, img.At(3, 0))

	for x := 0; x < 4; x++ {
		require.Equal(t, color.RGBA{}, img.At(x, 1), "empty row pixel (%d,1)", x)
	}

	// Player 1's color block starts at palette index 16.
	require.Equal(t, color.RGBA{R: 17, G: 17, B: 17, A: 255}, img.At(0, 2))
	require.Equal(t, color.RGBA{A: 128}, img.At(1, 2))
}

func TestRender_PlayerColorBlocks(t *testing.T) {
	t.Parallel()

	pal := testPalette(t)
	frame := testutil.SLPFrame{
		Width:  1,
		Height: 1,
		Rows:   [][]byte{{0x1a, 2, 0x0f}},
	}
	s, err := Parse(testutil.BuildSLP(frame))
	require.NoError(t, err)

	for player := 1; player <= 3; player++ {
		img, err := s.Render(0, pal, player)
		require.NoError(t, err)
		v := uint8(player*16 + 2)
		require.Equal(t, color.RGBA{R: v, G: v, B: v, A: 255}, img.At(0, 0), "player %d", player)
	}
}

func TestRender_ZeroDimensionFrame(t *testing.T) {
	t.Parallel()

	s, err := Parse(testutil.BuildSLP(testutil.SLPFrame{Width: 0, Height: 0}))
	require.NoError(t, err)

	img, err := s.Render(0, testPalette(t), 1)
	require.NoError(t, err)
	require.True(t, img.Bounds().Empty())
}

func TestRender_OutOfBoundsDrawsClamp(t *testing.T) {
	t.Parallel()

	// The fill runs three pixels past the declared width; the overflow is
	// discarded instead of failing the frame.
	frame := testutil.SLPFrame{
		Width:  2,
		Height: 1,
		Rows:   [][]byte{{0x57, 3, 0x0f}},
	}
	s, err := Parse(testutil.BuildSLP(frame))
	require.NoError(t, err)

	img, err := s.Render(0, testPalette(t), 1)
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, color.RGBA{R: 3, G: 3, B: 3, A: 255}, img.At(1, 0))
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	pal := testPalette(t)
	s, err := Parse(testutil.SolidSLP(2, 1, 1))
	require.NoError(t, err)

	_, err = s.Render(5, pal, 1)
	require.Error(t, err)

	_, err = s.Render(0, pal, 0)
	require.Error(t, err)

	// A row whose command stream runs off the end of the resource.
	truncated := testutil.BuildSLP(testutil.SLPFrame{
		Width:  2,
		Height: 1,
		Rows:   [][]byte{{0x08}},
	})
	s2, err := Parse(truncated)
	require.NoError(t, err)
	_, err = s2.Render(0, pal, 1)
	require.Error(t, err)
}
