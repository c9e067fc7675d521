package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockFolders implements driven.FolderReader for testing.
type mockFolders struct {
	paths    []string
	checkErr error
	listErr  error
}

func (m *mockFolders) CheckFolder(_ string) error {
	return m.checkErr
}

func (m *mockFolders) ListPDFs(_ string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.paths, nil
}

// textRenderer implements driven.Renderer for testing.
// Each page carries its OCR text in Pix, which textOCR reads back.
type textRenderer struct {
	pages  map[string][]string
	errs   map[string]error
	delays map[string]time.Duration

	// block, when set, holds every Render call until closed.
	block chan struct{}

	active    atomic.Int32
	maxActive atomic.Int32
}

func (r *textRenderer) Render(ctx context.Context, path string, fn driven.PageFunc) error {
	n := r.active.Add(1)
	defer r.active.Add(-1)
	for {
		m := r.maxActive.Load()
		if n <= m || r.maxActive.CompareAndSwap(m, n) {
			break
		}
	}

	if r.block != nil {
		<-r.block
	}
	if d, ok := r.delays[path]; ok {
		time.Sleep(d)
	}
	if err, ok := r.errs[path]; ok {
		return &domain.DocumentError{Path: path, Op: "open", Err: err}
	}

	for i, text := range r.pages[path] {
		page := domain.Bitmap{Page: i + 1, Width: 1, Height: 1, Pix: []byte(text)}
		if err := fn(page); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// textOCR implements driven.OCREngine for testing.
type textOCR struct {
	mu       sync.Mutex
	failText map[string]bool
	calls    int
}

func (o *textOCR) Recognize(_ context.Context, page domain.Bitmap) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++

	text := string(page.Pix)
	if o.failText[text] {
		return "", errors.New("tesseract crashed")
	}
	return text, nil
}

func (o *textOCR) Close() error {
	return nil
}

// recordingObserver collects progress updates.
type recordingObserver struct {
	mu      sync.Mutex
	updates []domain.Progress
}

func (r *recordingObserver) observe(p domain.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, p)
}

func (r *recordingObserver) all() []domain.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Progress(nil), r.updates...)
}

// mockWriter implements driven.TextWriter for testing.
type mockWriter struct {
	files map[string]string
	err   error
}

func newMockWriter() *mockWriter {
	return &mockWriter{files: make(map[string]string)}
}

func (w *mockWriter) WriteText(path, content string) error {
	if w.err != nil {
		return w.err
	}
	w.files[path] = content
	return nil
}

// mockWatcher implements driven.FolderWatcher for testing.
type mockWatcher struct {
	changes chan struct{}
	err     error
}

func (w *mockWatcher) Watch(ctx context.Context, _ string, onChange func()) error {
	if w.err != nil {
		return w.err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.changes:
			onChange()
		}
	}
}
