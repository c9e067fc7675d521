package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

var (
	searchTerms         string
	searchCaseSensitive bool
	searchOutput        string
	searchWatch         bool
)

var searchCmd = &cobra.Command{
	Use:   "search [folder]",
	Short: "Search a folder of PDFs for target words",
	Long: `Renders every PDF directly inside the folder, runs OCR on each page and
prints the documents whose text contains at least one target word.

Target words are comma-separated. Matching is substring containment and
ignores letter case unless --case-sensitive is given.

Examples:
  ocrr search ~/scans -t "invoice, receipt"
  ocrr search ~/scans -t Invoice -c -o matches.txt
  ocrr search ~/scans -t invoice --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchTerms, "terms", "t", "", "comma-separated target words")
	searchCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "match letter case exactly")
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", "", "save the result text to a file")
	searchCmd.Flags().BoolVar(&searchWatch, "watch", false, "search again whenever PDFs in the folder change")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	req, err := domain.NewSearchRequest(args[0], searchTerms, resolveCaseSensitive(cmd))
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}
	if req.HasEmptyTerm() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", domain.EmptyTermWarning)
	}

	if err := checkTools(); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	progress := newProgressPrinter(cmd.ErrOrStderr())

	if searchWatch {
		return runSearchWatch(ctx, cmd, req, progress)
	}

	results, err := searchService.Search(ctx, req, progress)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return outputResults(cmd, results)
}

func runSearchWatch(
	ctx context.Context,
	cmd *cobra.Command,
	req domain.SearchRequest,
	progress domain.ProgressFunc,
) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes (Ctrl+C to stop)\n", req.Folder)

	err := watchService.Watch(ctx, req, progress, func(results []domain.DocumentResult, err error) {
		if err != nil {
			if ctx.Err() == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Search failed: %s\n", domain.UserMessage(err))
			}
			return
		}
		if err := outputResults(cmd, results); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", domain.UserMessage(err))
		}
	})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// resolveCaseSensitive prefers the flag and falls back to the configured default.
func resolveCaseSensitive(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("case-sensitive") || settingsService == nil {
		return searchCaseSensitive
	}
	settings, err := settingsService.Get()
	if err != nil {
		return searchCaseSensitive
	}
	return settings.Search.CaseSensitive
}

// outputResults prints the result text to stdout and saves it when --output is set.
func outputResults(cmd *cobra.Command, results []domain.DocumentResult) error {
	text := domain.FormatResults(results)
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if searchOutput == "" {
		return nil
	}
	if exportService == nil {
		return errors.New("export service not configured")
	}

	path, err := exportService.Export(searchOutput, text)
	if err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Results saved to %s (%s)\n", path, humanize.Bytes(uint64(len(text))))
	return nil
}
