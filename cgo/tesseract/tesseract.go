//go:build cgo

package tesseract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/raster"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// Available reports whether this build links libtesseract.
const Available = true

// Engine recognises pages with libtesseract.
// A client is created per page, so one Engine may serve several workers.
type Engine struct {
	clientFactory func() *gosseract.Client
	preprocess    bool
}

// New creates a gosseract-backed engine.
func New(settings domain.OCRSettings) *Engine {
	return &Engine{
		clientFactory: gosseract.NewClient,
		preprocess:    settings.Preprocess,
	}
}

// Recognize returns the text libtesseract finds on the page.
func (e *Engine) Recognize(ctx context.Context, page domain.Bitmap) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, page, e.preprocess); err != nil {
		return "", fmt.Errorf("encode page %d: %w", page.Page, err)
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize page %d: %w", page.Page, err)
	}
	return text, nil
}

// Close releases resources. Clients are closed after each page.
func (e *Engine) Close() error {
	return nil
}
