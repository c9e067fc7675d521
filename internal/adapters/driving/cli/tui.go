package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [folder]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for ocrr.

Controls:
  Tab/Shift+Tab - Switch between folder and words
  Enter         - Start search
  Ctrl+T        - Toggle case sensitivity
  PgUp/PgDn     - Scroll results
  Ctrl+S        - Save results
  Ctrl+R        - Clear
  Ctrl+C        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

// tuiLogFs and tuiLogPath locate the file that receives log output while
// the TUI owns the terminal.
var (
	tuiLogFs   = afero.NewOsFs()
	tuiLogPath = filepath.Join(os.TempDir(), "ocrr-tui.log")
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// redirectLogs sends logger output to the TUI log file. The returned func
// restores the previous writer and reports on w when anything was logged.
// If the file cannot be created the log is quieted instead.
func redirectLogs(w io.Writer) func() {
	f, err := tuiLogFs.Create(tuiLogPath)
	if err != nil {
		logger.SetQuiet(true)
		return func() { logger.SetQuiet(false) }
	}

	restore := logger.Redirect(f)
	return func() {
		restore()
		info, statErr := f.Stat()
		_ = f.Close()
		if statErr == nil && info.Size() > 0 {
			fmt.Fprintf(w, "Warnings were written to %s\n", tuiLogPath)
		}
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(searchService, exportService, settingsService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := checkTools(); err != nil {
		return err
	}

	app.WithContext(commandContext(cmd))
	if len(args) == 1 {
		app.WithFolder(args[0])
	}

	// Document warnings would corrupt the alternate screen.
	defer redirectLogs(cmd.ErrOrStderr())()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
