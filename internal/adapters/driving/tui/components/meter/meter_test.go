package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

func TestNew_StartsAtZero(t *testing.T) {
	m := New(nil)

	require.NotNil(t, m)
	assert.Equal(t, "Progress: 0%", m.Label())
	assert.Contains(t, m.View(), "Progress: 0%")
}

func TestMeter_Set(t *testing.T) {
	m := New(nil)

	m.Set(domain.Progress{Completed: 1, Total: 3})

	assert.Equal(t, "Progress: 33%", m.Label())
	assert.Contains(t, m.View(), "Progress: 33%")
}

func TestMeter_Complete(t *testing.T) {
	m := New(nil)

	m.Set(domain.Progress{Completed: 3, Total: 3})

	assert.Equal(t, domain.CompleteLabel, m.Label())
	assert.Contains(t, m.View(), domain.CompleteLabel)
}

func TestMeter_Reset(t *testing.T) {
	m := New(nil)
	m.Set(domain.Progress{Completed: 2, Total: 2})

	m.Reset()

	assert.Equal(t, domain.Progress{}, m.Progress())
	assert.Equal(t, "Progress: 0%", m.Label())
}

func TestMeter_SetWidth(t *testing.T) {
	m := New(nil)

	m.SetWidth(84)
	assert.Equal(t, 80, m.bar.Width)

	m.SetWidth(5)
	assert.Equal(t, 10, m.bar.Width)
}
