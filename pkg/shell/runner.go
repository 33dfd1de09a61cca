// pkg/shell/runner.go
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// Commander abstracts subprocess execution so that package manager probes
// can be faked in tests.
type Commander interface {
	// LookPath searches PATH for an executable.
	LookPath(name string) (string, error)

	// Output runs a command and returns its trimmed stdout.
	// Used for read-only queries (list, which-formula, bin -g, ...).
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Run runs a command, relaying its stdout and stderr to the user
	// line by line. Used for the actual update invocation.
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports a relayed command that exited non-zero.
type ExitError struct {
	Cmd  string // Command name
	Code int    // Exit code of the child process
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

// Runner is the real Commander backed by os/exec
type Runner struct {
	logger *log.Logger
	stdout io.Writer
	stderr io.Writer
	style  *color.Color // nil disables the faint relay styling
}

// NewRunner creates a Runner. A nil logger silences debug output; plain
// disables the faint styling of relayed subprocess lines.
func NewRunner(logger *log.Logger, plain bool) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	var style *color.Color
	if !plain {
		style = color.New(color.Faint)
	}
	return &Runner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
		style:  style,
	}
}

// LookPath searches PATH for an executable
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output runs a command and captures its stdout
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.logger.Printf("exec: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Run runs a command, relaying output and propagating the exit status
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	r.logger.Printf("exec: %s %s", name, strings.Join(args, " "))

	outw := &lineWriter{w: r.stdout, style: r.style}
	errw := &lineWriter{w: r.stderr, style: r.style}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = outw
	cmd.Stderr = errw

	err := cmd.Run()
	outw.Flush()
	errw.Flush()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Cmd: name, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}
