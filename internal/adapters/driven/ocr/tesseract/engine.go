// Package tesseract recognises page text with the tesseract command-line tool.
package tesseract

import (
	"context"
	"fmt"
	"os"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/command"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/raster"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// DefaultBinary is the tesseract executable looked up on PATH.
const DefaultBinary = "tesseract"

// Engine runs `tesseract <image> stdout` once per page.
// It holds no per-page state and is safe for concurrent use.
type Engine struct {
	runner     command.Runner
	binary     string
	preprocess bool
}

// New creates an engine that shells out to tesseract.
func New(settings domain.OCRSettings) *Engine {
	return NewWithRunner(command.NewExecRunner(), settings)
}

// NewWithRunner creates an engine with a custom command runner (for testing).
func NewWithRunner(runner command.Runner, settings domain.OCRSettings) *Engine {
	binary := settings.TesseractPath
	if binary == "" {
		binary = DefaultBinary
	}
	return &Engine{
		runner:     runner,
		binary:     binary,
		preprocess: settings.Preprocess,
	}
}

// CheckAvailable reports whether the tesseract binary can be found.
func (e *Engine) CheckAvailable() error {
	return command.LookPath(e.binary)
}

// InstallInstructions returns how to install tesseract.
func InstallInstructions() string {
	return `tesseract is required to recognise page text.

Install with:
  macOS:         brew install tesseract
  Ubuntu/Debian: apt install tesseract-ocr
  Fedora:        dnf install tesseract`
}

// Recognize writes the page to a temporary PNG and returns tesseract's output unchanged.
func (e *Engine) Recognize(ctx context.Context, page domain.Bitmap) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "ocrr-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("create page image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := raster.EncodePNG(tmp, page, e.preprocess); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encode page %d: %w", page.Page, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write page image: %w", err)
	}

	out, err := e.runner.Run(ctx, e.binary, tmp.Name(), "stdout")
	if err != nil {
		return "", fmt.Errorf("recognize page %d: %w", page.Page, err)
	}
	return string(out), nil
}

// Close releases resources. The CLI engine holds none.
func (e *Engine) Close() error {
	return nil
}
