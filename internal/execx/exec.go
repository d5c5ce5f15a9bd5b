package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Runner defines an interface for executing system commands.
// This allows for mocking in tests and dependency injection.
type Runner interface {
	// CommandExists checks if a command is available in PATH
	CommandExists(name string) bool

	// RequireCommand ensures a command exists or returns error
	RequireCommand(name string) error

	// RunCommand executes a command and returns stdout
	RunCommand(ctx context.Context, name string, args ...string) (string, error)

	// RunShell executes a shell predicate via "sh -c" with all output
	// suppressed. Returns nil iff the predicate exits zero.
	RunShell(ctx context.Context, script string) error

	// RunCommandStreaming executes a command and streams output to provided writers
	RunCommandStreaming(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int
}

// OSRunner is the default implementation using os/exec
type OSRunner struct {
	commandCache sync.Map // map[string]bool
}

// NewOSRunner creates a new OSRunner instance
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// CommandExists checks if a command is available in PATH
func (r *OSRunner) CommandExists(name string) bool {
	if cached, ok := r.commandCache.Load(name); ok {
		if exists, ok := cached.(bool); ok {
			return exists
		}
		r.commandCache.Delete(name)
	}

	_, err := exec.LookPath(name)
	exists := err == nil
	r.commandCache.Store(name, exists)
	return exists
}

// InvalidateCommand drops a cached PATH lookup so a command installed during
// the current run is re-resolved. Needed after bootstrapping a package
// manager whose binary was absent at startup.
func (r *OSRunner) InvalidateCommand(name string) {
	r.commandCache.Delete(name)
}

// RequireCommand ensures a command exists or returns error
func (r *OSRunner) RequireCommand(name string) error {
	if !r.CommandExists(name) {
		return fmt.Errorf("required command %q not found in PATH", name)
	}
	return nil
}

// RunCommand executes a command and returns stdout
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSRunner) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command %q failed: %w\nstderr: %s", name, err, stderr.String())
	}

	return stdout.String(), nil
}

// RunShell executes a shell predicate with output discarded. Probes are
// arbitrary shell expressions ("command -v git", "test -d ~/.oh-my-zsh"),
// so they go through sh rather than a direct exec.
func (r *OSRunner) RunShell(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("shell predicate %q failed: %w", script, err)
	}

	return nil
}

// RunCommandStreaming executes a command and streams output to provided writers.
// Pass nil for stdout/stderr to discard output (equivalent to > /dev/null)
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSRunner) RunCommandStreaming(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	if stdout != nil {
		cmd.Stdout = stdout
	}
	if stderr != nil {
		cmd.Stderr = stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", name, err)
	}

	return nil
}

// GetExitCode extracts the exit code from a command error
func (r *OSRunner) GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
