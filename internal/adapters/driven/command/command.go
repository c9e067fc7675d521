// Package command runs the external programs ocrr drives (pdftoppm, tesseract).
// Adapters depend on Runner so tests can replace the process boundary.
package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// maxStderr bounds how much stderr is quoted in errors.
const maxStderr = 512

// Runner runs external programs.
type Runner interface {
	// Run executes name with args and returns its standard output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name. Standard error is kept out of the output and quoted
// in the returned error when the program fails.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logger.Debug("exec: %s %s", name, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderr {
			msg = msg[:maxStderr] + "..."
		}
		if msg == "" {
			return out, fmt.Errorf("%s failed: %w", name, err)
		}
		return out, fmt.Errorf("%s failed: %w (stderr: %s)", name, err, msg)
	}
	return out, nil
}

// LookPath reports domain.ErrToolNotFound when name is not an executable
// on PATH (or at the given path).
func LookPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrToolNotFound, name)
	}
	return nil
}
