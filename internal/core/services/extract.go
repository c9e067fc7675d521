package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// Ensure TextExtractor implements the interface.
var _ driving.TextService = (*TextExtractor)(nil)

// TextExtractor turns a PDF into text by rendering and OCR-ing every page.
type TextExtractor struct {
	renderer driven.Renderer
	ocr      driven.OCREngine
}

// NewTextExtractor creates a text extractor.
func NewTextExtractor(renderer driven.Renderer, ocr driven.OCREngine) *TextExtractor {
	return &TextExtractor{
		renderer: renderer,
		ocr:      ocr,
	}
}

// Extract returns the OCR text of every page of path, concatenated in page
// order with no separator. Adjacent pages may run together.
//
// A page whose OCR fails contributes nothing. When the document cannot be
// opened or rendered, the error is returned together with empty text.
func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	var b strings.Builder

	err := e.renderer.Render(ctx, path, func(page domain.Bitmap) error {
		logger.Debug("%s: page %d rendered (%dx%d, %s)",
			path, page.Page, page.Width, page.Height, humanize.Bytes(uint64(len(page.Pix))))

		text, err := e.ocr.Recognize(ctx, page)
		if err != nil {
			logger.Warn("%v", &domain.DocumentError{Path: path, Op: "ocr", Err: err})
			return nil
		}
		b.WriteString(text)
		return nil
	})
	if err != nil {
		var docErr *domain.DocumentError
		if !errors.As(err, &docErr) {
			err = &domain.DocumentError{Path: path, Op: "render", Err: err}
		}
		return "", err
	}

	logger.Debug("%s: %d characters extracted", path, b.Len())
	return b.String(), nil
}
