package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNoTerms", ErrNoTerms},
		{"ErrNoFolder", ErrNoFolder},
		{"ErrFolderNotFound", ErrFolderNotFound},
		{"ErrNotDirectory", ErrNotDirectory},
		{"ErrNothingToExport", ErrNothingToExport},
		{"ErrNoExportPath", ErrNoExportPath},
		{"ErrSearchInProgress", ErrSearchInProgress},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrToolNotFound", ErrToolNotFound},
		{"ErrInvalidSetting", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	err := fmt.Errorf("search: %w", &ValidationError{Field: "terms", Err: ErrNoTerms})

	assert.ErrorIs(t, err, ErrNoTerms)
	assert.NotErrorIs(t, err, ErrNoFolder)

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "terms", verr.Field)
	assert.Equal(t, "invalid terms: please enter target words", verr.Error())
}

func TestDocumentError_Unwrap(t *testing.T) {
	cause := errors.New("broken xref table")
	err := &DocumentError{Path: "/docs/a.pdf", Op: "open", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "open /docs/a.pdf: broken xref table", err.Error())
}

func TestExportError_Error(t *testing.T) {
	t.Run("without path", func(t *testing.T) {
		err := &ExportError{Err: ErrNothingToExport}
		assert.Equal(t, "export: nothing to export", err.Error())
		assert.ErrorIs(t, err, ErrNothingToExport)
	})

	t.Run("with path", func(t *testing.T) {
		err := &ExportError{Path: "out.txt", Err: errors.New("permission denied")}
		assert.Equal(t, "export out.txt: permission denied", err.Error())
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"no terms", &ValidationError{Field: "terms", Err: ErrNoTerms}, "Please enter target words."},
		{"no folder", &ValidationError{Field: "folder", Err: ErrNoFolder}, "Please select a folder."},
		{"nothing to export", &ExportError{Err: ErrNothingToExport}, "No results to save."},
		{"in progress", fmt.Errorf("search: %w", ErrSearchInProgress), "A search is already running."},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}
