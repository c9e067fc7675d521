// Package tui provides the interactive terminal user interface for ocrr.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs folder searches.
	Search driving.SearchService

	// Export saves the displayed results.
	Export driving.ExportService

	// Settings supplies defaults such as case sensitivity. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	export driving.ExportService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Search:   search,
		Export:   export,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
