package imageio

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"hashi-capture/pkg/geometry"
)

// testImage returns a gradient image so crops can be verified by pixel.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	return img
}

func TestCropCopiesRegion(t *testing.T) {
	img := testImage(100, 80)

	patch, err := Crop(img, geometry.RectInt{X: 10, Y: 20, Width: 30, Height: 15})
	require.NoError(t, err)

	require.Equal(t, 30, patch.Bounds().Dx())
	require.Equal(t, 15, patch.Bounds().Dy())

	got := patch.RGBAAt(0, 0)
	require.Equal(t, uint8(10), got.R)
	require.Equal(t, uint8(20), got.G)

	got = patch.RGBAAt(29, 14)
	require.Equal(t, uint8(39), got.R)
	require.Equal(t, uint8(34), got.G)
}

func TestCropClampsToBounds(t *testing.T) {
	img := testImage(50, 50)

	patch, err := Crop(img, geometry.RectInt{X: 40, Y: 40, Width: 30, Height: 30})
	require.NoError(t, err)

	require.Equal(t, 10, patch.Bounds().Dx())
	require.Equal(t, 10, patch.Bounds().Dy())
}

func TestCropOutsideImage(t *testing.T) {
	img := testImage(50, 50)

	_, err := Crop(img, geometry.RectInt{X: 200, Y: 200, Width: 20, Height: 20})
	require.Error(t, err)
}

func TestUpscaleSmallPatch(t *testing.T) {
	img := testImage(20, 30)

	scaled := Upscale(img, 60)

	b := scaled.Bounds()
	require.Equal(t, 60, b.Dx())
	require.Equal(t, 90, b.Dy())
}

func TestUpscaleLeavesLargeImagesAlone(t *testing.T) {
	img := testImage(100, 100)
	require.Equal(t, image.Image(img), Upscale(img, 60))
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := testImage(8, 8)

	data, err := EncodePNG(img)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PNG signature
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestIsSupportedFormat(t *testing.T) {
	require.True(t, IsSupportedFormat("board.png"))
	require.True(t, IsSupportedFormat("SCAN.TIF"))
	require.False(t, IsSupportedFormat("notes.txt"))
}
