package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSearchService indicates that no search service was provided.
	ErrNoSearchService = errors.New("search service is required")

	// ErrNoExportService indicates that no export service was provided.
	ErrNoExportService = errors.New("export service is required")
)
