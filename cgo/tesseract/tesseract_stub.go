//go:build !cgo

package tesseract

import (
	"context"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// Available reports whether this build links libtesseract.
const Available = false

// Engine recognises pages with libtesseract.
// This is a stub for builds without CGO.
type Engine struct{}

// New creates a gosseract-backed engine.
func New(_ domain.OCRSettings) *Engine {
	return &Engine{}
}

// Recognize returns domain.ErrNotImplemented.
func (e *Engine) Recognize(_ context.Context, _ domain.Bitmap) (string, error) {
	return "", domain.ErrNotImplemented
}

// Close releases resources.
func (e *Engine) Close() error {
	return nil
}
