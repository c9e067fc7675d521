package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Current Settings")
	assert.Contains(t, stdout, "DPI: 72")
	assert.Contains(t, stdout, "Engine: Tesseract (command line)")
	assert.Contains(t, stdout, "Workers: 1")
	assert.Contains(t, stdout, "Case sensitive: no")
	assert.Contains(t, stdout, "Config file: /home/user/.ocrr/config.toml")
}

func TestSettingsShowCmd_CustomValues(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()
	mocks.settings.settings.Render.DPI = 300
	mocks.settings.settings.OCR.Preprocess = true

	stdout, _, err := executeCommand(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "DPI: 300")
	assert.Contains(t, stdout, "Preprocess: yes")
}

func TestSettingsShowCmd_Error(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()
	mocks.settings.GetErr = errors.New("corrupt")

	_, _, err := executeCommand(t, "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get settings")
}

func TestSettingsSetCmd(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()

	var gotKey, gotValue string
	mocks.settings.SetFunc = func(key, value string) error {
		gotKey, gotValue = key, value
		return nil
	}

	stdout, _, err := executeCommand(t, "settings", "set", "render.dpi", "150")

	require.NoError(t, err)
	assert.Equal(t, "render.dpi", gotKey)
	assert.Equal(t, "150", gotValue)
	assert.Contains(t, stdout, "render.dpi set to 150")
}

func TestSettingsSetCmd_InvalidListsKeys(t *testing.T) {
	mocks, cleanup := setupTestServices()
	defer cleanup()
	mocks.settings.SetFunc = func(key, _ string) error {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	_, _, err := executeCommand(t, "settings", "set", "bogus", "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
	assert.Contains(t, err.Error(), "valid keys: render.dpi, search.workers")
}

func TestSettingsSetCmd_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := executeCommand(t, "settings", "set", "render.dpi")

	assert.Error(t, err)
}

func TestSettingsPathCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := executeCommand(t, "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.ocrr/config.toml\n", stdout)
}

func TestSettingsCmd_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	for _, args := range [][]string{{"settings"}, {"settings", "set", "a", "b"}, {"settings", "path"}} {
		_, _, err := executeCommand(t, args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
