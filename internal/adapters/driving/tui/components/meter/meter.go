// Package meter shows search progress as a bar with a percentage label.
package meter

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/styles"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// Meter renders a domain.Progress snapshot.
type Meter struct {
	bar      progress.Model
	styles   *styles.Styles
	progress domain.Progress
}

// New creates a meter at 0%.
func New(s *styles.Styles) *Meter {
	if s == nil {
		s = styles.DefaultStyles()
	}
	theme := s.Theme()

	return &Meter{
		bar:    progress.New(progress.WithGradient(theme.ProgressStart, theme.ProgressEnd), progress.WithoutPercentage()),
		styles: s,
	}
}

// Set records the latest snapshot.
func (m *Meter) Set(p domain.Progress) {
	m.progress = p
}

// Progress returns the latest snapshot.
func (m *Meter) Progress() domain.Progress {
	return m.progress
}

// Label returns "Progress: N%" or the completion label.
func (m *Meter) Label() string {
	return m.progress.Label()
}

// Reset returns the meter to 0%.
func (m *Meter) Reset() {
	m.progress = domain.Progress{}
}

// SetWidth sets the bar width.
func (m *Meter) SetWidth(width int) {
	w := width - 4
	if w < 10 {
		w = 10
	}
	m.bar.Width = w
}

// View renders the bar above its label.
// The bar is drawn statically so it never lags the reported progress.
func (m *Meter) View() string {
	label := m.styles.Normal.Render(m.Label())
	if m.progress.Done() {
		label = m.styles.Success.Render(m.Label())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.bar.ViewAs(m.progress.Fraction()), label)
}
