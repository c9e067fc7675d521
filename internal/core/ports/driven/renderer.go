package driven

import (
	"context"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// PageFunc receives each rendered page in document order.
// Returning an error stops rendering and is returned by Render.
type PageFunc func(page domain.Bitmap) error

// Renderer rasterises PDF pages.
type Renderer interface {
	// Render calls fn once per page, in page order.
	// Open and rasterisation failures are returned as *domain.DocumentError.
	// Any file handle is released before Render returns.
	Render(ctx context.Context, path string, fn PageFunc) error
}
