package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/fsops"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/spf13/afero"
)

const shellsFile = "/etc/shells"

// ListShells returns the login shells registered in /etc/shells
func ListShells(fs afero.Fs) ([]string, error) {
	data, err := afero.ReadFile(fs, shellsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", shellsFile, err)
	}

	var shells []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		shells = append(shells, line)
	}

	return shells, nil
}

// ApplyDefaultShell changes the user's login shell
func ApplyDefaultShell(ctx context.Context, runner execx.Runner, shellPath string) error {
	if _, err := runner.RunCommand(ctx, "chsh", "-s", shellPath); err != nil {
		return fmt.Errorf("chsh -s %s: %w", shellPath, err)
	}
	return nil
}

// ProfileForShell maps a shell to the startup file rig appends PATH
// lines to.
func ProfileForShell(shellPath, home string) string {
	switch filepath.Base(shellPath) {
	case "zsh":
		return filepath.Join(home, ".zprofile")
	case "bash":
		return filepath.Join(home, ".bash_profile")
	default:
		return filepath.Join(home, ".profile")
	}
}

// EnsureBrewShellEnv appends the Homebrew shellenv line to the shell
// profile so a new session resolves brew. Re-running never duplicates
// the line. Reports whether the profile was modified.
func EnsureBrewShellEnv(fs afero.Fs, home, arch, shellPath string) (bool, error) {
	line := fmt.Sprintf(`eval "$(%s/bin/brew shellenv)"`, platform.BrewPrefix(arch))
	return fsops.AppendLineOnce(fs, ProfileForShell(shellPath, home), line)
}

// configureShell prompts for a login shell and applies it
func (s *Steps) configureShell(ctx context.Context) error {
	shells, err := ListShells(s.fs)
	if err != nil {
		return err
	}
	if len(shells) == 0 {
		return fmt.Errorf("no shells registered in %s", shellsFile)
	}

	_, chosen, err := ui.SelectPrompt("Default shell", shells)
	if err != nil {
		return err
	}

	current := os.Getenv("SHELL")
	if chosen != current {
		if err := ApplyDefaultShell(ctx, s.runner, chosen); err != nil {
			return err
		}
		ui.PrintSuccess("default shell set to %s (takes effect next login)", chosen)
	} else {
		ui.PrintInfo("default shell unchanged")
	}

	if s.info.OS == platform.OSMacOS {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		added, err := EnsureBrewShellEnv(s.fs, home, s.info.Arch, chosen)
		if err != nil {
			return err
		}
		if added {
			ui.PrintSuccess("added brew shellenv to %s", ProfileForShell(chosen, home))
		}
	}

	return nil
}
