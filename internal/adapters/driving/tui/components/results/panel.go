// Package results shows the result text in a scrollable panel.
package results

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/styles"
)

// Panel wraps a bubbles viewport holding the displayed result text.
type Panel struct {
	viewport viewport.Model
	styles   *styles.Styles
	content  string
}

// NewPanel creates an empty panel.
func NewPanel(s *styles.Styles) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{
		viewport: viewport.New(80, 10),
		styles:   s,
	}
}

// Update forwards scrolling messages to the viewport.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// SetContent replaces the displayed text and scrolls to the top.
func (p *Panel) SetContent(content string) {
	p.content = content
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

// Content returns the displayed text exactly as set.
func (p *Panel) Content() string {
	return p.content
}

// Clear empties the panel.
func (p *Panel) Clear() {
	p.SetContent("")
}

// ScrollUp scrolls up by half a page.
func (p *Panel) ScrollUp() {
	p.viewport.HalfPageUp()
}

// ScrollDown scrolls down by half a page.
func (p *Panel) ScrollDown() {
	p.viewport.HalfPageDown()
}

// SetDimensions sets the panel size including its border.
func (p *Panel) SetDimensions(width, height int) {
	w, h := width-4, height-2
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	p.viewport.Width = w
	p.viewport.Height = h
}

// View renders the bordered panel.
func (p *Panel) View() string {
	body := p.viewport.View()
	if p.content == "" {
		body = p.styles.Muted.Render("Results will appear here.")
	}
	return p.styles.Results.Render(body)
}
