// Package poppler rasterises PDF pages with pdftoppm from poppler-utils.
package poppler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/command"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
	"github.com/Uadhikari111/OCR-Pdf/internal/raster"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// DefaultBinary is the pdftoppm executable looked up on PATH.
const DefaultBinary = "pdftoppm"

// Renderer renders each page of a PDF to an RGB bitmap.
type Renderer struct {
	runner    command.Runner
	binary    string
	dpi       int
	pageCount func(io.ReadSeeker) (int, error)
}

// New creates a renderer that shells out to pdftoppm.
func New(settings domain.RenderSettings) *Renderer {
	return NewWithRunner(command.NewExecRunner(), settings)
}

// NewWithRunner creates a renderer with a custom command runner (for testing).
func NewWithRunner(runner command.Runner, settings domain.RenderSettings) *Renderer {
	binary := settings.PdftoppmPath
	if binary == "" {
		binary = DefaultBinary
	}
	dpi := settings.DPI
	if dpi <= 0 {
		dpi = domain.DefaultAppSettings().Render.DPI
	}
	return &Renderer{
		runner:    runner,
		binary:    binary,
		dpi:       dpi,
		pageCount: countPages,
	}
}

// DPI returns the resolution pages are rendered at.
func (r *Renderer) DPI() int {
	return r.dpi
}

// CheckAvailable reports whether the pdftoppm binary can be found.
func (r *Renderer) CheckAvailable() error {
	return command.LookPath(r.binary)
}

// InstallInstructions returns how to install poppler-utils.
func InstallInstructions() string {
	return `pdftoppm (poppler-utils) is required to render PDF pages.

Install with:
  macOS:         brew install poppler
  Ubuntu/Debian: apt install poppler-utils
  Fedora:        dnf install poppler-utils`
}

// Render calls fn with each page in order, starting at page 1.
// Failures to open, count or rasterise a page are returned as *domain.DocumentError.
// An error from fn stops rendering and is returned unchanged.
func (r *Renderer) Render(ctx context.Context, path string, fn driven.PageFunc) error {
	pages, err := r.countFile(path)
	if err != nil {
		return &domain.DocumentError{Path: path, Op: "open", Err: err}
	}
	logger.Debug("Rendering %s: %d pages at %d DPI", path, pages, r.dpi)

	tmpDir, err := os.MkdirTemp("", "ocrr-page-*")
	if err != nil {
		return &domain.DocumentError{Path: path, Op: "render", Err: err}
	}
	defer os.RemoveAll(tmpDir)

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		bmp, err := r.renderPage(ctx, path, tmpDir, page)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return &domain.DocumentError{Path: path, Op: "render", Err: err}
		}
		if err := fn(bmp); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) countFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := r.pageCount(f)
	if err != nil {
		return 0, fmt.Errorf("read page count: %w", err)
	}
	return n, nil
}

func (r *Renderer) renderPage(ctx context.Context, path, tmpDir string, page int) (domain.Bitmap, error) {
	prefix := filepath.Join(tmpDir, "page-"+strconv.Itoa(page))
	pageStr := strconv.Itoa(page)

	// -singlefile writes <prefix>.png without a page suffix.
	_, err := r.runner.Run(ctx, r.binary,
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", strconv.Itoa(r.dpi),
		"-singlefile",
		path,
		prefix,
	)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.Bitmap{}, ctxErr
	}
	if err != nil {
		return domain.Bitmap{}, fmt.Errorf("page %d: %w", page, err)
	}

	out := prefix + ".png"
	f, err := os.Open(out)
	if err != nil {
		return domain.Bitmap{}, fmt.Errorf("page %d: %s did not create expected output: %w", page, r.binary, err)
	}
	defer func() {
		f.Close()
		os.Remove(out)
	}()

	return raster.Decode(f, page)
}

func countPages(rs io.ReadSeeker) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(rs, conf)
}
