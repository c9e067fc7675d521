package domain

import "fmt"

// BytesPerPixel is the size of one RGB pixel in a Bitmap.
const BytesPerPixel = 3

// Bitmap is a rasterised page.
type Bitmap struct {
	// Page is the 1-based page number within its document.
	Page int

	// Width and Height are in pixels.
	Width  int
	Height int

	// Pix holds row-major RGB samples, Width*Height*3 bytes.
	Pix []byte
}

// Stride returns the number of bytes in one row.
func (b Bitmap) Stride() int {
	return b.Width * BytesPerPixel
}

// Validate checks that the buffer is consistent with the dimensions.
func (b Bitmap) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("bitmap: invalid dimensions %dx%d", b.Width, b.Height)
	}
	if want := b.Width * b.Height * BytesPerPixel; len(b.Pix) != want {
		return fmt.Errorf("bitmap: buffer is %d bytes, want %d", len(b.Pix), want)
	}
	return nil
}
