package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
)

// mockSearchService implements driving.SearchService for CLI tests.
type mockSearchService struct {
	SearchFunc func(ctx context.Context, req domain.SearchRequest, progress domain.ProgressFunc) ([]domain.DocumentResult, error)
	calls      int
	lastReq    domain.SearchRequest
}

func (m *mockSearchService) Search(
	ctx context.Context, req domain.SearchRequest, progress domain.ProgressFunc,
) ([]domain.DocumentResult, error) {
	m.calls++
	m.lastReq = req
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, req, progress)
	}
	return nil, nil
}

func (m *mockSearchService) Running() bool {
	return false
}

// mockExportService implements driving.ExportService for CLI tests.
type mockExportService struct {
	ExportFunc func(path, content string) (string, error)
	path       string
	content    string
}

func (m *mockExportService) Export(path, content string) (string, error) {
	m.path = path
	m.content = content
	if m.ExportFunc != nil {
		return m.ExportFunc(path, content)
	}
	return path, nil
}

// mockWatchService implements driving.WatchService for CLI tests.
type mockWatchService struct {
	WatchFunc func(
		ctx context.Context,
		req domain.SearchRequest,
		progress domain.ProgressFunc,
		onResult func([]domain.DocumentResult, error),
	) error
}

func (m *mockWatchService) Watch(
	ctx context.Context,
	req domain.SearchRequest,
	progress domain.ProgressFunc,
	onResult func([]domain.DocumentResult, error),
) error {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, req, progress, onResult)
	}
	return nil
}

// mockTextService implements driving.TextService for CLI tests.
type mockTextService struct {
	ExtractFunc func(ctx context.Context, path string) (string, error)
}

func (m *mockTextService) Extract(ctx context.Context, path string) (string, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, path)
	}
	return "", nil
}

// mockSettingsService implements driving.SettingsService for CLI tests.
type mockSettingsService struct {
	settings domain.AppSettings
	GetErr   error
	SetFunc  func(key, value string) error
	path     string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings(), path: "/home/user/.ocrr/config.toml"}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"render.dpi", "search.workers"}
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return m.path
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	search   *mockSearchService
	export   *mockExportService
	watch    *mockWatchService
	text     *mockTextService
	settings *mockSettingsService
}

// setupTestServices installs mock services and returns a cleanup function
// restoring the previous ones.
func setupTestServices() (*testServices, func()) {
	prevSearch, prevExport, prevWatch := searchService, exportService, watchService
	prevText, prevSettings, prevCheck := textService, settingsService, toolCheck

	mocks := &testServices{
		search:   &mockSearchService{},
		export:   &mockExportService{},
		watch:    &mockWatchService{},
		text:     &mockTextService{},
		settings: newMockSettingsService(),
	}

	searchService = mocks.search
	exportService = mocks.export
	watchService = mocks.watch
	textService = mocks.text
	settingsService = mocks.settings
	toolCheck = nil

	return mocks, func() {
		searchService, exportService, watchService = prevSearch, prevExport, prevWatch
		textService, settingsService, toolCheck = prevText, prevSettings, prevCheck
	}
}

// executeCommand runs the root command with args and returns what was
// written to stdout and stderr. Flags are reset afterwards.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

var (
	_ driving.SearchService   = (*mockSearchService)(nil)
	_ driving.ExportService   = (*mockExportService)(nil)
	_ driving.WatchService    = (*mockWatchService)(nil)
	_ driving.TextService     = (*mockTextService)(nil)
	_ driving.SettingsService = (*mockSettingsService)(nil)
)
