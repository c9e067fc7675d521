package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driven"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRenderDPI      = "render.dpi"
	keyPdftoppmPath   = "render.pdftoppm"
	keyOCREngine      = "ocr.engine"
	keyTesseractPath  = "ocr.tesseract"
	keyOCRPreprocess  = "ocr.preprocess"
	keySearchWorkers  = "search.workers"
	keySearchCaseSens = "search.case_sensitive"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or out-of-range values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Render: domain.RenderSettings{
			DPI:          s.getIntInRange(keyRenderDPI, defaults.Render.DPI, domain.MinDPI, domain.MaxDPI),
			PdftoppmPath: s.getString(keyPdftoppmPath, defaults.Render.PdftoppmPath),
		},
		OCR: domain.OCRSettings{
			Engine:        s.getEngine(defaults.OCR.Engine),
			TesseractPath: s.getString(keyTesseractPath, defaults.OCR.TesseractPath),
			Preprocess:    s.getBool(keyOCRPreprocess, defaults.OCR.Preprocess),
		},
		Search: domain.SearchSettings{
			Workers:       s.getIntInRange(keySearchWorkers, defaults.Search.Workers, 1, domain.MaxWorkers),
			CaseSensitive: s.getBool(keySearchCaseSens, defaults.Search.CaseSensitive),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyRenderDPI, settings.Render.DPI},
		{keyPdftoppmPath, settings.Render.PdftoppmPath},
		{keyOCREngine, settings.OCR.Engine.String()},
		{keyTesseractPath, settings.OCR.TesseractPath},
		{keyOCRPreprocess, settings.OCR.Preprocess},
		{keySearchWorkers, settings.Search.Workers},
		{keySearchCaseSens, settings.Search.CaseSensitive},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set validates and stores a single value given as text.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case keyRenderDPI:
		n, err := parseIntInRange(value, domain.MinDPI, domain.MaxDPI)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidSetting, key, err)
		}
		stored = n
	case keySearchWorkers:
		n, err := parseIntInRange(value, 1, domain.MaxWorkers)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidSetting, key, err)
		}
		stored = n
	case keyOCRPreprocess, keySearchCaseSens:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: expected true or false", domain.ErrInvalidSetting, key)
		}
		stored = b
	case keyOCREngine:
		engine := domain.OCREngineKind(value)
		if !engine.IsValid() {
			return fmt.Errorf("%w: %s: unknown engine %q", domain.ErrInvalidSetting, key, value)
		}
		stored = engine.String()
	case keyPdftoppmPath, keyTesseractPath:
		if value == "" {
			return fmt.Errorf("%w: %s: path must not be empty", domain.ErrInvalidSetting, key)
		}
		stored = value
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the supported setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyRenderDPI,
		keyPdftoppmPath,
		keyOCREngine,
		keyTesseractPath,
		keyOCRPreprocess,
		keySearchWorkers,
		keySearchCaseSens,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getIntInRange(key string, defaultVal, lo, hi int) int {
	val := s.configStore.GetInt(key)
	if val < lo || val > hi {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getEngine(defaultVal domain.OCREngineKind) domain.OCREngineKind {
	val := s.configStore.GetString(keyOCREngine)
	if val == "" {
		return defaultVal
	}
	engine := domain.OCREngineKind(val)
	if !engine.IsValid() {
		return defaultVal
	}
	return engine
}

func parseIntInRange(value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("expected a number")
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return n, nil
}
