// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// ProgressUpdated carries one progress snapshot from the search worker.
type ProgressUpdated struct {
	Progress domain.Progress
}

// SearchCompleted carries the outcome of a run back to the model.
type SearchCompleted struct {
	Results []domain.DocumentResult
	Err     error
}

// ExportCompleted reports the outcome of saving the displayed results.
type ExportCompleted struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
