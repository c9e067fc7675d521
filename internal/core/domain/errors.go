package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoTerms indicates the target word input was blank.
	ErrNoTerms = errors.New("please enter target words")

	// ErrNoFolder indicates no folder was selected.
	ErrNoFolder = errors.New("please select a folder")

	// ErrFolderNotFound indicates the selected folder does not exist.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrNotDirectory indicates the selected path is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrNothingToExport indicates there is no displayed text to save.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrNoExportPath indicates no destination file was chosen.
	ErrNoExportPath = errors.New("no export path")

	// ErrSearchInProgress indicates a search is already running.
	ErrSearchInProgress = errors.New("search in progress")

	// ErrNotImplemented indicates functionality is not available in this build.
	ErrNotImplemented = errors.New("not implemented")

	// ErrToolNotFound indicates a required external program is not installed.
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidSetting indicates an unknown key or an unacceptable value.
	ErrInvalidSetting = errors.New("invalid setting")
)

// ValidationError reports rejected user input. The run never starts.
type ValidationError struct {
	// Field names the offending input ("terms" or "folder").
	Field string

	// Err is one of the validation sentinels.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DocumentError reports a failure to process a single PDF.
// It never aborts a run; the document contributes empty text.
type DocumentError struct {
	// Path is the PDF that failed.
	Path string

	// Op is the stage that failed: "open", "render" or "ocr".
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// ExportError reports a failed attempt to save the displayed text.
type ExportError struct {
	// Path is the destination file, empty when none was chosen.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export: %v", e.Err)
	}
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// UserMessage returns the notice a shell shows for err.
// Known input and export failures get the fixed wording users expect.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoTerms):
		return "Please enter target words."
	case errors.Is(err, ErrNoFolder):
		return "Please select a folder."
	case errors.Is(err, ErrNothingToExport):
		return "No results to save."
	case errors.Is(err, ErrSearchInProgress):
		return "A search is already running."
	default:
		return err.Error()
	}
}
