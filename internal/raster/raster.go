// Package raster converts between page bitmaps and encoded images.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// contrastBoost is the percentage applied by Preprocess.
const contrastBoost = 20

// Decode reads an encoded image (PNG, JPEG, TIFF, ...) as a page bitmap.
func Decode(r io.Reader, page int) (domain.Bitmap, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return domain.Bitmap{}, fmt.Errorf("decode page %d: %w", page, err)
	}
	return FromImage(img, page), nil
}

// FromImage copies img into a row-major RGB bitmap.
// Transparent pixels are composited onto white.
func FromImage(img image.Image, page int) domain.Bitmap {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	pix := make([]byte, w*h*domain.BytesPerPixel)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		out := pix[y*w*domain.BytesPerPixel:]
		for x := 0; x < w; x++ {
			r, g, b, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
			out[x*3] = overWhite(r, a)
			out[x*3+1] = overWhite(g, a)
			out[x*3+2] = overWhite(b, a)
		}
	}

	return domain.Bitmap{Page: page, Width: w, Height: h, Pix: pix}
}

func overWhite(c, a uint8) uint8 {
	if a == 0xff {
		return c
	}
	return uint8((uint32(c)*uint32(a) + 0xff*(0xff-uint32(a))) / 0xff)
}

// ToImage wraps a bitmap's pixels in an opaque NRGBA image.
func ToImage(b domain.Bitmap) (*image.NRGBA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// Preprocess returns a grayscale, contrast-boosted copy of img.
func Preprocess(img image.Image) *image.NRGBA {
	return imaging.AdjustContrast(imaging.Grayscale(img), contrastBoost)
}

// EncodePNG writes b as PNG, optionally preprocessed for OCR.
func EncodePNG(w io.Writer, b domain.Bitmap, preprocess bool) error {
	img, err := ToImage(b)
	if err != nil {
		return err
	}
	if preprocess {
		img = Preprocess(img)
	}
	return imaging.Encode(w, img, imaging.PNG)
}
