package tesseract

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

func TestEngine_Stub(t *testing.T) {
	if Available {
		t.Skip("built with CGO")
	}

	_, err := New(domain.OCRSettings{}).Recognize(context.Background(), domain.Bitmap{})

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestEngine_BlankPage(t *testing.T) {
	if !Available {
		t.Skip("built without CGO")
	}

	engine := New(domain.OCRSettings{Preprocess: true})
	defer engine.Close()

	page := domain.Bitmap{Page: 1, Width: 64, Height: 64, Pix: bytes.Repeat([]byte{0xff}, 64*64*3)}
	text, err := engine.Recognize(context.Background(), page)

	require.NoError(t, err)
	assert.Empty(t, bytes.TrimSpace([]byte(text)))
}

func TestEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(domain.OCRSettings{}).Recognize(ctx, domain.Bitmap{})

	assert.Error(t, err)
}
