// Package cli provides the ocrr command-line interface built on cobra.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services injected by the composition root.
var (
	searchService   driving.SearchService
	exportService   driving.ExportService
	watchService    driving.WatchService
	textService     driving.TextService
	settingsService driving.SettingsService
	toolCheck       func() error
)

var rootCmd = &cobra.Command{
	Use:   "ocrr",
	Short: "Find scanned PDFs containing target words",
	Long: `ocrr renders every PDF in a folder, runs OCR on each page and lists
the documents whose text contains at least one of the target words.

Requires pdftoppm (poppler-utils) and tesseract to be installed.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetSearchService sets the search service used by the search command.
func SetSearchService(svc driving.SearchService) {
	searchService = svc
}

// SetExportService sets the export service used for --output.
func SetExportService(svc driving.ExportService) {
	exportService = svc
}

// SetWatchService sets the watch service used for --watch.
func SetWatchService(svc driving.WatchService) {
	watchService = svc
}

// SetTextService sets the text service used by the text command.
func SetTextService(svc driving.TextService) {
	textService = svc
}

// SetSettingsService sets the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// SetToolCheck sets the check run before commands that need external tools.
func SetToolCheck(check func() error) {
	toolCheck = check
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func checkTools() error {
	if toolCheck == nil {
		return nil
	}
	return toolCheck()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
