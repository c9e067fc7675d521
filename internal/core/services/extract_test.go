package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
)

func TestTextExtractor_Extract(t *testing.T) {
	renderer := &textRenderer{pages: map[string][]string{
		"/docs/a.pdf": {"page one\n", "page two"},
	}}
	ocr := &textOCR{}
	extractor := NewTextExtractor(renderer, ocr)

	text, err := extractor.Extract(context.Background(), "/docs/a.pdf")

	require.NoError(t, err)
	assert.Equal(t, "page one\npage two", text)
	assert.Equal(t, 2, ocr.calls)
}

func TestTextExtractor_NoPages(t *testing.T) {
	extractor := NewTextExtractor(&textRenderer{}, &textOCR{})

	text, err := extractor.Extract(context.Background(), "/docs/empty.pdf")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestTextExtractor_DocumentError(t *testing.T) {
	renderer := &textRenderer{errs: map[string]error{"/docs/a.pdf": errors.New("encrypted")}}
	extractor := NewTextExtractor(renderer, &textOCR{})

	text, err := extractor.Extract(context.Background(), "/docs/a.pdf")

	assert.Empty(t, text)
	var docErr *domain.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "open", docErr.Op)
}

// errRenderer fails after emitting a page, without wrapping its error.
type errRenderer struct{}

func (errRenderer) Render(_ context.Context, _ string, fn driven.PageFunc) error {
	if err := fn(domain.Bitmap{Page: 1, Width: 1, Height: 1, Pix: []byte("partial")}); err != nil {
		return err
	}
	return errors.New("page 2: rasterisation failed")
}

func TestTextExtractor_PartialFailureDiscardsText(t *testing.T) {
	extractor := NewTextExtractor(errRenderer{}, &textOCR{})

	text, err := extractor.Extract(context.Background(), "/docs/a.pdf")

	assert.Empty(t, text)
	var docErr *domain.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "render", docErr.Op)
	assert.Equal(t, "/docs/a.pdf", docErr.Path)
}
