package registry

import (
	"context"
	"os"
	"path/filepath"

	"github.com/quantmind-br/rig/internal/execx"
)

// Vendor installer scripts. Each one is idempotent on its own: either the
// upstream installer re-checks internally, or we guard it here before
// shelling out.

const homebrewInstallURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

func installHomebrew(ctx context.Context, runner execx.Runner) error {
	return runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"bash", "-c",
		`NONINTERACTIVE=1 /bin/bash -c "$(curl -fsSL `+homebrewInstallURL+`)"`,
	)
}

func installOhMyZsh(ctx context.Context, runner execx.Runner) error {
	// The upstream installer aborts when ~/.oh-my-zsh exists; treat that
	// as already installed instead of surfacing its error.
	home, err := os.UserHomeDir()
	if err == nil {
		if _, statErr := os.Stat(filepath.Join(home, ".oh-my-zsh")); statErr == nil {
			return nil
		}
	}

	return runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sh", "-c",
		`RUNZSH=no CHSH=no sh -c "$(curl -fsSL https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh)"`,
	)
}

func installRustup(ctx context.Context, runner execx.Runner) error {
	if runner.CommandExists("rustup") {
		return nil
	}

	return runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sh", "-c",
		`curl --proto '=https' --tlsv1.2 -fsSL https://sh.rustup.rs | sh -s -- -y --no-modify-path`,
	)
}

func installOllama(ctx context.Context, runner execx.Runner) error {
	if runner.CommandExists("ollama") {
		return nil
	}

	return runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sh", "-c",
		`curl -fsSL https://ollama.com/install.sh | sh`,
	)
}
