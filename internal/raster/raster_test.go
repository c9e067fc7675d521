package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 200, G: 10, B: 30, A: 255})
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	b := FromImage(checkerboard(3, 2), 4)

	require.NoError(t, b.Validate())
	assert.Equal(t, 4, b.Page)
	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, []byte{200, 10, 30}, b.Pix[0:3])
	assert.Equal(t, []byte{255, 255, 255}, b.Pix[3:6])
	// Second row starts with white at (0,1).
	assert.Equal(t, []byte{255, 255, 255}, b.Pix[9:12])
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := checkerboard(4, 4).SubImage(image.Rect(1, 1, 3, 3))

	b := FromImage(img, 1)

	assert.Equal(t, 2, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, []byte{200, 10, 30}, b.Pix[0:3])
}

func TestFromImage_TransparentIsWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	b := FromImage(img, 1)

	assert.Equal(t, []byte{255, 255, 255}, b.Pix)
}

func TestToImage_RoundTrip(t *testing.T) {
	b := FromImage(checkerboard(5, 3), 1)

	img, err := ToImage(b)
	require.NoError(t, err)

	assert.Equal(t, b, FromImage(img, 1))
}

func TestToImage_InvalidBitmap(t *testing.T) {
	_, err := ToImage(domain.Bitmap{Width: 2, Height: 2, Pix: []byte{1}})
	assert.Error(t, err)
}

func TestEncodeDecodePNG(t *testing.T) {
	b := FromImage(checkerboard(6, 4), 2)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, b, false))

	_, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	decoded, err := Decode(&buf, 2)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}

func TestEncodePNG_Preprocess(t *testing.T) {
	b := FromImage(checkerboard(4, 4), 1)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, b, true))

	decoded, err := Decode(&buf, 1)
	require.NoError(t, err)
	for i := 0; i < len(decoded.Pix); i += 3 {
		assert.Equal(t, decoded.Pix[i], decoded.Pix[i+1], "pixel %d is not gray", i/3)
		assert.Equal(t, decoded.Pix[i], decoded.Pix[i+2], "pixel %d is not gray", i/3)
	}
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 3")
}
