// Package watch notifies when PDFs in a folder are added, changed or removed.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driven/storage/fs"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FolderWatcher = (*Watcher)(nil)

// DefaultDebounce groups bursts of events (a copy emits several writes) into one change.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a single folder, non-recursively.
type Watcher struct {
	debounce time.Duration
}

// New creates a watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch calls onChange after PDF events settle, until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, folder string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(folder); err != nil {
		return fmt.Errorf("watch %s: %w", folder, err)
	}
	logger.Debug("Watching %s", folder)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if isPDFChange(event) {
				logger.Debug("fs event: %s", event)
				fire = time.After(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch %s: %v", folder, err)
		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// isPDFChange reports whether event can change the set or content of searched PDFs.
func isPDFChange(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return fs.IsPDFName(filepath.Base(event.Name))
}
