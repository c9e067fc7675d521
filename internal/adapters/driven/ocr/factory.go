// Package ocr selects the OCR engine named in settings.
package ocr

import (
	"fmt"

	cgotesseract "github.com/Uadhikari111/OCR-Pdf/cgo/tesseract"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/command"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/ocr/tesseract"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
)

// NewEngine returns the engine for settings.Engine.
// The tesseract engine runs its binary through runner.
func NewEngine(settings domain.OCRSettings, runner command.Runner) (driven.OCREngine, error) {
	switch settings.Engine {
	case domain.OCREngineTesseract, "":
		return tesseract.NewWithRunner(runner, settings), nil
	case domain.OCREngineGosseract:
		if !cgotesseract.Available {
			return nil, fmt.Errorf("ocr engine %q: %w (rebuild with CGO_ENABLED=1)", settings.Engine, domain.ErrNotImplemented)
		}
		return cgotesseract.New(settings), nil
	default:
		return nil, fmt.Errorf("%w: unknown ocr engine %q", domain.ErrInvalidSetting, settings.Engine)
	}
}

// CheckAvailable reports whether the external tools the engine needs are installed.
func CheckAvailable(settings domain.OCRSettings) error {
	if settings.Engine == domain.OCREngineGosseract {
		return nil
	}
	binary := settings.TesseractPath
	if binary == "" {
		binary = tesseract.DefaultBinary
	}
	return command.LookPath(binary)
}
