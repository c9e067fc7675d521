package driving

import "github.com/Uadhikari111/OCR-Pdf/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set validates and stores a single value given as text.
	// Unknown keys and bad values fail with domain.ErrInvalidSetting.
	Set(key, value string) error

	// Keys returns the supported setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns the configuration file path.
	Path() string
}
