// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is used for labels and the results header.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for hints and placeholders.
	Muted lipgloss.Color

	// Success marks a completed run or saved file.
	Success lipgloss.Color

	// Warning marks notices such as the empty-term warning.
	Warning lipgloss.Color

	// Error marks failures.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// ProgressStart and ProgressEnd are the ends of the progress bar gradient.
	ProgressStart string
	ProgressEnd   string
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:       lipgloss.Color("#2563EB"),
		Secondary:     lipgloss.Color("#06B6D4"),
		Foreground:    lipgloss.Color("#E5E7EB"),
		Muted:         lipgloss.Color("#6B7280"),
		Success:       lipgloss.Color("#22C55E"),
		Warning:       lipgloss.Color("#EAB308"),
		Error:         lipgloss.Color("#EF4444"),
		Border:        lipgloss.Color("#374151"),
		ProgressStart: "#2563EB",
		ProgressEnd:   "#22C55E",
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the application header.
	Title lipgloss.Style

	// Label style for input labels.
	Label lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for notices.
	Warning lipgloss.Style

	// InputField style for unfocused inputs.
	InputField lipgloss.Style

	// FocusedField style for the input that has focus.
	FocusedField lipgloss.Style

	// Results style for the bordered results panel.
	Results lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	field := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			Width(8),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: field,

		FocusedField: field.BorderForeground(theme.Primary),

		Results: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
