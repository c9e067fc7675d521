package services

import (
	"path/filepath"
	"strings"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// DefaultExportExtension is appended to export paths that have none.
const DefaultExportExtension = ".txt"

// ExportService writes displayed result text to plain text files.
type ExportService struct {
	writer driven.TextWriter
}

// NewExportService creates a new export service.
func NewExportService(writer driven.TextWriter) *ExportService {
	return &ExportService{writer: writer}
}

// Export writes content verbatim and returns the path written.
// No file is written for blank content.
func (s *ExportService) Export(path, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", &domain.ExportError{Path: path, Err: domain.ErrNothingToExport}
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return "", &domain.ExportError{Err: domain.ErrNoExportPath}
	}
	if filepath.Ext(path) == "" {
		path += DefaultExportExtension
	}

	if err := s.writer.WriteText(path, content); err != nil {
		return "", &domain.ExportError{Path: path, Err: err}
	}

	logger.Debug("Exported %d bytes to %s", len(content), path)
	return path, nil
}
