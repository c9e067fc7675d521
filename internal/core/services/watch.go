package services

import (
	"context"
	"errors"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// ErrWatchUnavailable indicates no folder watcher is configured.
var ErrWatchUnavailable = errors.New("watch: folder watcher not configured")

// WatchService reruns full searches when the folder changes.
// Every rerun is a complete search; nothing is carried over between runs.
type WatchService struct {
	search  driving.SearchService
	watcher driven.FolderWatcher
}

// NewWatchService creates a new watch service. watcher may be nil.
func NewWatchService(search driving.SearchService, watcher driven.FolderWatcher) *WatchService {
	return &WatchService{
		search:  search,
		watcher: watcher,
	}
}

// Watch runs req once and then after every change notification.
// Changes arriving while a run is active trigger one more run afterwards.
func (s *WatchService) Watch(
	ctx context.Context,
	req domain.SearchRequest,
	progress domain.ProgressFunc,
	onResult func([]domain.DocumentResult, error),
) error {
	if s.watcher == nil {
		return ErrWatchUnavailable
	}

	results, err := s.search.Search(ctx, req, progress)
	onResult(results, err)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return err
	}

	// Buffer of one coalesces notifications that arrive during a run.
	pending := make(chan struct{}, 1)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- s.watcher.Watch(ctx, req.Folder, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watchErr:
			if ctx.Err() != nil {
				return nil
			}
			return err
		case <-pending:
			logger.Info("Change detected in %s, searching again", req.Folder)
			results, err := s.search.Search(ctx, req, progress)
			onResult(results, err)
		}
	}
}
