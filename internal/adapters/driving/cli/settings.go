package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure rendering, OCR and search settings.

Settings are stored in a TOML file that is only created once a value is set.
Without it, ocrr runs with built-in defaults.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting and save it to the configuration file.

Available keys:
  render.dpi             - Rasterisation resolution (36-1200, default 72)
  render.pdftoppm        - pdftoppm executable name or path
  ocr.engine             - tesseract or gosseract
  ocr.tesseract          - tesseract executable name or path
  ocr.preprocess         - Convert pages to high-contrast grayscale (true/false)
  search.workers         - PDFs processed in parallel (1-64, default 1)
  search.case_sensitive  - Default case sensitivity (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  DPI: %d\n", settings.Render.DPI)
	cmd.Printf("  pdftoppm: %s\n", settings.Render.PdftoppmPath)
	cmd.Println()

	cmd.Println("[OCR]")
	cmd.Printf("  Engine: %s\n", settings.OCR.Engine.Description())
	cmd.Printf("  tesseract: %s\n", settings.OCR.TesseractPath)
	cmd.Printf("  Preprocess: %s\n", yesNo(settings.OCR.Preprocess))
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Workers: %d\n", settings.Search.Workers)
	cmd.Printf("  Case sensitive: %s\n", yesNo(settings.Search.CaseSensitive))
	cmd.Println()

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidSetting) {
			return fmt.Errorf("%w\nvalid keys: %s", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("%s set to %s\n", key, strings.TrimSpace(value))
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.Path())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
