package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text [pdf]",
	Short: "Print the OCR text of a single PDF",
	Long: `Renders every page of the PDF, runs OCR and prints the recognised text.
Pages are joined without a separator, exactly as searches see them.`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	if textService == nil {
		return errors.New("text service not configured")
	}
	if err := checkTools(); err != nil {
		return err
	}

	text, err := textService.Extract(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
