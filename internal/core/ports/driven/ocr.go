package driven

import (
	"context"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// OCREngine recognises text in page images.
type OCREngine interface {
	// Recognize returns the best-effort text of one page.
	// An empty string is a valid result for a blank page.
	Recognize(ctx context.Context, page domain.Bitmap) (string, error)

	// Close releases engine resources.
	Close() error
}
