// Package fs reads the searched folder and writes exports through afero,
// so tests can run against an in-memory filesystem.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
)

// PDFExtension is the case-sensitive suffix of searched files.
const PDFExtension = ".pdf"

// Ensure Store implements the interfaces.
var (
	_ driven.FolderReader = (*Store)(nil)
	_ driven.TextWriter   = (*Store)(nil)
)

// Store implements folder enumeration and export writing.
type Store struct {
	fs afero.Fs
}

// New creates a store on fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS creates a store on the operating system filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// CheckFolder verifies that path exists and is a directory.
func (s *Store) CheckFolder(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrFolderNotFound, path)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrNotDirectory, path)
	}
	return nil
}

// ListPDFs returns regular entries directly inside folder whose names end
// in ".pdf", sorted by name and joined with folder. Dot-files are skipped.
func (s *Store) ListPDFs(folder string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, folder)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsPDFName(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(folder, entry.Name()))
	}
	return paths, nil
}

// IsPDFName reports whether name is a visible file with the ".pdf" extension.
func IsPDFName(name string) bool {
	return !strings.HasPrefix(name, ".") && strings.HasSuffix(name, PDFExtension)
}

// WriteText creates or truncates path and writes content unchanged.
func (s *Store) WriteText(path, content string) error {
	return afero.WriteFile(s.fs, path, []byte(content), 0o644)
}
