package mcp

import (
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs folder searches.
	Search driving.SearchService

	// Text extracts the OCR text of a single PDF. Optional.
	Text driving.TextService

	// Settings backs the settings resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
