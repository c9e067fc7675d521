package driving

import (
	"context"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// SearchService runs OCR searches over a folder of PDFs.
type SearchService interface {
	// Search returns the PDFs in req.Folder whose OCR text contains at least
	// one term, in enumeration order. progress, when non-nil, is called once
	// per processed file. A second call while one is running fails with
	// domain.ErrSearchInProgress.
	Search(ctx context.Context, req domain.SearchRequest, progress domain.ProgressFunc) ([]domain.DocumentResult, error)

	// Running reports whether a search is in flight.
	Running() bool
}

// ExportService saves displayed result text.
type ExportService interface {
	// Export writes content verbatim to path and returns the path written,
	// which gains a .txt extension when it has none.
	// Blank content fails with domain.ErrNothingToExport and writes nothing.
	Export(path, content string) (string, error)
}

// WatchService reruns a search whenever the folder's PDFs change.
type WatchService interface {
	// Watch runs req once, then again after every change, passing each
	// outcome to onResult. It blocks until ctx is done.
	Watch(
		ctx context.Context,
		req domain.SearchRequest,
		progress domain.ProgressFunc,
		onResult func([]domain.DocumentResult, error),
	) error
}

// TextService exposes the OCR text of a single PDF.
type TextService interface {
	// Extract returns the text of every page of path concatenated in page
	// order. Failures to open or render the document return a
	// *domain.DocumentError.
	Extract(ctx context.Context, path string) (string, error)
}
