package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ocrr resources.
	uriScheme = "ocrr://"

	settingsURI = uriScheme + "settings"
)

// settingsInfo is the JSON shape of the settings resource.
type settingsInfo struct {
	DPI           int    `json:"dpi"`
	Pdftoppm      string `json:"pdftoppm"`
	Engine        string `json:"ocr_engine"`
	Tesseract     string `json:"tesseract"`
	Preprocess    bool   `json:"preprocess"`
	Workers       int    `json:"workers"`
	CaseSensitive bool   `json:"case_sensitive"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "settings",
		Description: "Rendering, OCR and search settings in effect",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleSettingsResource returns the current settings, or the defaults
// when no settings service is configured.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		settings = *current
	}

	data, err := json.MarshalIndent(toSettingsInfo(settings), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func toSettingsInfo(s domain.AppSettings) settingsInfo {
	return settingsInfo{
		DPI:           s.Render.DPI,
		Pdftoppm:      s.Render.PdftoppmPath,
		Engine:        s.OCR.Engine.String(),
		Tesseract:     s.OCR.TesseractPath,
		Preprocess:    s.OCR.Preprocess,
		Workers:       s.Search.Workers,
		CaseSensitive: s.Search.CaseSensitive,
	}
}
