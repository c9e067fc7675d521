package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

func TestTextCmd_PrintsText(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	var gotPath string
	mocks.text.ExtractFunc = func(_ context.Context, path string) (string, error) {
		gotPath = path
		return "Invoice 2023", nil
	}

	stdout, _, err := executeCommand(t, "text", "/docs/a.pdf")

	require.NoError(t, err)
	assert.Equal(t, "/docs/a.pdf", gotPath)
	assert.Equal(t, "Invoice 2023\n", stdout)
}

func TestTextCmd_DocumentError(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()
	mocks.text.ExtractFunc = func(_ context.Context, path string) (string, error) {
		return "", &domain.DocumentError{Path: path, Op: "open", Err: errors.New("not a pdf")}
	}

	_, _, err := executeCommand(t, "text", "/docs/a.pdf")

	var docErr *domain.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "open", docErr.Op)
}

func TestTextCmd_RequiresArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := executeCommand(t, "text")

	assert.Error(t, err)
}

func TestTextCmd_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	textService = nil

	_, _, err := executeCommand(t, "text", "/docs/a.pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "text service not configured")
}
