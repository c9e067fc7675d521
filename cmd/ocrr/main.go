// Command ocrr finds scanned PDFs containing target words.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/command"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/config/file"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/ocr"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/ocr/tesseract"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/render/poppler"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/storage/fs"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/storage/memory"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/watch"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/cli"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/services"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if code := exitCode(os.Stderr, run()); code != 0 {
		os.Exit(code)
	}
}

// startupError marks a failure raised before the command tree runs. Cobra
// reports its own errors, so only these are printed by main.
type startupError struct{ err error }

func (e startupError) Error() string { return e.err.Error() }
func (e startupError) Unwrap() error { return e.err }

// exitCode maps the result of run to a process exit code, printing startup
// errors to w.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var se startupError
	if errors.As(err, &se) {
		fmt.Fprintln(w, "Error:", se.err)
	}
	return 1
}

func run() error {
	configStore := newConfigStore(afero.NewOsFs(), "")
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return startupError{fmt.Errorf("load settings: %w", err)}
	}

	runner := command.NewExecRunner()
	renderer := poppler.NewWithRunner(runner, settings.Render)

	ocrSettings, ocrEngine := newOCREngine(settings.OCR, runner)
	defer ocrEngine.Close()

	store := fs.NewOS()
	searchService := services.NewSearchService(store, renderer, ocrEngine, settings.Search.Workers)

	cli.SetVersion(version)
	cli.SetSettingsService(settingsService)
	cli.SetSearchService(searchService)
	cli.SetExportService(services.NewExportService(store))
	cli.SetWatchService(services.NewWatchService(searchService, watch.New(watch.DefaultDebounce)))
	cli.SetTextService(services.NewTextExtractor(renderer, ocrEngine))
	cli.SetToolCheck(toolCheck(renderer, ocrSettings))

	return cli.Execute()
}

// newConfigStore opens the TOML config under dir (the home directory when
// empty) and falls back to an in-memory store when it cannot be read.
func newConfigStore(osFs afero.Fs, dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(osFs, dir)
	if err != nil {
		logger.Warn("using default settings: %v", err)
		return memory.NewConfigStore()
	}
	return store
}

// newOCREngine builds the configured engine, falling back to the tesseract
// command when it is unavailable in this build.
func newOCREngine(settings domain.OCRSettings, runner command.Runner) (domain.OCRSettings, driven.OCREngine) {
	engine, err := ocr.NewEngine(settings, runner)
	if err == nil {
		return settings, engine
	}

	logger.Warn("%v; falling back to %s", err, domain.OCREngineTesseract)
	settings.Engine = domain.OCREngineTesseract
	return settings, tesseract.NewWithRunner(runner, settings)
}

// toolCheck verifies that the external programs are installed and explains
// how to install them when they are not.
func toolCheck(renderer *poppler.Renderer, settings domain.OCRSettings) func() error {
	return func() error {
		if err := renderer.CheckAvailable(); err != nil {
			return fmt.Errorf("%w\n\n%s", err, poppler.InstallInstructions())
		}
		if err := ocr.CheckAvailable(settings); err != nil {
			return fmt.Errorf("%w\n\n%s", err, tesseract.InstallInstructions())
		}
		return nil
	}
}
