package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpscale(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	src.Set(0, 0, red)
	src.Set(1, 0, blue)

	dst, err := Upscale(src, 3)
	require.NoError(t, err)
	require.Equal(t, 6, dst.Bounds().Dx())
	require.Equal(t, 3, dst.Bounds().Dy())

	// Nearest neighbor keeps hard edges: left block red, right block blue.
	require.Equal(t, red, dst.At(0, 0))
	require.Equal(t, red, dst.At(2, 2))
	require.Equal(t, blue, dst.At(3, 0))
	require.Equal(t, blue, dst.At(5, 2))
}

func TestUpscale_Identity(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst, err := Upscale(src, 1)
	require.NoError(t, err)
	require.Same(t, src, dst)

	_, err = Upscale(src, 0)
	require.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(1, 1, color.RGBA{G: 255, A: 255})

	data, err := EncodePNG(src)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), decoded.Bounds())
	r, g, b, a := decoded.At(1, 1).RGBA()
	require.Equal(t, uint32(0), r)
	require.Equal(t, uint32(0xffff), g)
	require.Equal(t, uint32(0), b)
	require.Equal(t, uint32(0xffff), a)
}
