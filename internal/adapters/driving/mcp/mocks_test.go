package mcp

import (
	"context"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.DocumentResult
	err     error
	lastReq domain.SearchRequest
}

func (m *mockSearchService) Search(
	_ context.Context,
	req domain.SearchRequest,
	_ domain.ProgressFunc,
) ([]domain.DocumentResult, error) {
	m.lastReq = req
	return m.results, m.err
}

func (m *mockSearchService) Running() bool {
	return false
}

// mockTextService is a mock implementation of driving.TextService.
type mockTextService struct {
	text string
	err  error
}

func (m *mockTextService) Extract(_ context.Context, _ string) (string, error) {
	return m.text, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }
func (m *mockSettingsService) Set(_, _ string) error            { return nil }
func (m *mockSettingsService) Keys() []string                   { return nil }
func (m *mockSettingsService) GetDefaults() domain.AppSettings  { return domain.DefaultAppSettings() }
func (m *mockSettingsService) Path() string                     { return "" }
