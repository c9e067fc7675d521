package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is the search orchestrator.
type SearchService struct {
	folders   driven.FolderReader
	extractor *TextExtractor
	workers   int

	running atomic.Bool
}

// NewSearchService creates a new search service.
// workers below 1 are treated as 1, which processes documents strictly in order.
func NewSearchService(
	folders driven.FolderReader,
	renderer driven.Renderer,
	ocr driven.OCREngine,
	workers int,
) *SearchService {
	if workers < 1 {
		workers = 1
	}
	return &SearchService{
		folders:   folders,
		extractor: NewTextExtractor(renderer, ocr),
		workers:   workers,
	}
}

// Running reports whether a search is in flight.
func (s *SearchService) Running() bool {
	return s.running.Load()
}

// Search runs one search over req.Folder.
func (s *SearchService) Search(
	ctx context.Context, req domain.SearchRequest, progress domain.ProgressFunc,
) ([]domain.DocumentResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrSearchInProgress
	}
	defer s.running.Store(false)

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.folders.CheckFolder(req.Folder); err != nil {
		return nil, &domain.ValidationError{Field: "folder", Err: err}
	}

	run := domain.SearchRun{
		ID:        uuid.New().String(),
		Request:   req,
		StartedAt: time.Now(),
	}

	logger.Section("Search " + run.ID)
	logger.Debug("Folder: %s", req.Folder)
	logger.Debug("Terms: %q (case sensitive: %t)", req.Terms, req.CaseSensitive)

	paths, err := s.folders.ListPDFs(req.Folder)
	if err != nil {
		return nil, fmt.Errorf("list pdfs: %w", err)
	}
	logger.Debug("Found %d PDF files", len(paths))

	results, err := s.process(ctx, run, paths, newProgressTracker(len(paths), progress))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("Search %s finished: %d of %d documents matched in %s",
		run.ID, len(results), len(paths), time.Since(run.StartedAt).Round(time.Millisecond))
	return results, nil
}

// process extracts and matches every path, returning matches in path order.
func (s *SearchService) process(
	ctx context.Context, run domain.SearchRun, paths []string, tracker *progressTracker,
) ([]domain.DocumentResult, error) {
	matched := make([]bool, len(paths))

	if s.workers == 1 || len(paths) < 2 {
		for i, path := range paths {
			matched[i] = s.searchDocument(ctx, run.Request, path)
			tracker.advance()
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i, path := range paths {
			g.Go(func() error {
				matched[i] = s.searchDocument(gctx, run.Request, path)
				tracker.advance()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	results := make([]domain.DocumentResult, 0, len(paths))
	for i, ok := range matched {
		if ok {
			results = append(results, domain.DocumentResult{Path: paths[i]})
		}
	}
	logger.Debug("Progress at end of run: %s", tracker.snapshot().Label())
	return results, nil
}

// searchDocument reports whether the document at path matches any term.
// A document that cannot be read is searched as empty text.
func (s *SearchService) searchDocument(ctx context.Context, req domain.SearchRequest, path string) bool {
	defer logger.Timed(path)()

	text, err := s.extractor.Extract(ctx, path)
	if err != nil && ctx.Err() == nil {
		var docErr *domain.DocumentError
		if errors.As(err, &docErr) {
			logger.Warn("%v", docErr)
		} else {
			logger.Warn("%s: %v", path, err)
		}
		text = ""
	}

	idx, ok := matchTerms(text, req.Terms, req.CaseSensitive)
	if ok {
		logger.Debug("%s: matched %q", path, req.Terms[idx])
	}
	return ok
}
