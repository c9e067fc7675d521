package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

func TestProgressPrinter_NonTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	printer := newProgressPrinter(buf)

	printer(domain.Progress{Completed: 1, Total: 4})
	printer(domain.Progress{Completed: 4, Total: 4})

	assert.Equal(t, "Progress: 25% (1/4)\nSearch Complete! (4/4)\n", buf.String())
}

func TestProgressPrinter_ZeroTotal(t *testing.T) {
	buf := new(bytes.Buffer)
	printer := newProgressPrinter(buf)

	printer(domain.Progress{})

	assert.Equal(t, "Progress: 0% (0/0)\n", buf.String())
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}
