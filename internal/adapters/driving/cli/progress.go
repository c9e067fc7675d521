package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
)

// newProgressPrinter returns an observer that writes progress labels to w.
// On a terminal the line is rewritten in place; otherwise each update gets
// its own line.
func newProgressPrinter(w io.Writer) domain.ProgressFunc {
	inPlace := isTerminal(w)
	return func(p domain.Progress) {
		if !inPlace {
			fmt.Fprintf(w, "%s (%d/%d)\n", p.Label(), p.Completed, p.Total)
			return
		}
		fmt.Fprintf(w, "\r\033[K%s (%d/%d)", p.Label(), p.Completed, p.Total)
		if p.Done() {
			fmt.Fprintln(w)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
