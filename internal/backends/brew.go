package backends

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/rs/zerolog"
)

// Brew drives Homebrew on macOS. It always invokes brew by absolute path:
// a freshly bootstrapped brew is not on PATH until the user opens a new
// shell, but it is already runnable from its prefix.
type Brew struct {
	brewBin string
	runner  execx.Runner
	logger  *zerolog.Logger
}

// NewBrew creates the Homebrew backend for the detected host
func NewBrew(info platform.Info, runner execx.Runner, log *zerolog.Logger) *Brew {
	return &Brew{
		brewBin: platform.BrewPrefix(info.Arch) + "/bin/brew",
		runner:  runner,
		logger:  log,
	}
}

// Name returns the backend name
func (b *Brew) Name() string { return "brew" }

// ManagerBinary returns the absolute brew path for the bootstrap post-condition
func (b *Brew) ManagerBinary() string { return b.brewBin }

// InstallPackage installs a formula
func (b *Brew) InstallPackage(ctx context.Context, pkg string) error {
	b.logger.Debug().Str("formula", pkg).Msg("brew install")

	if err := b.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr, b.brewBin, "install", pkg); err != nil {
		return fmt.Errorf("brew install %s: %w", pkg, err)
	}
	return nil
}

// UpgradePackage upgrades a formula. brew exits non-zero when the formula
// is already current; callers treat upgrade failure as best-effort.
func (b *Brew) UpgradePackage(ctx context.Context, pkg string) error {
	b.logger.Debug().Str("formula", pkg).Msg("brew upgrade")

	if err := b.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr, b.brewBin, "upgrade", pkg); err != nil {
		return fmt.Errorf("brew upgrade %s: %w", pkg, err)
	}
	return nil
}

// InstallApp installs a cask. classic is a snap concept and is ignored.
func (b *Brew) InstallApp(ctx context.Context, app string, _ bool) error {
	b.logger.Debug().Str("cask", app).Msg("brew install --cask")

	if err := b.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr, b.brewBin, "install", "--cask", app); err != nil {
		return fmt.Errorf("brew install --cask %s: %w", app, err)
	}
	return nil
}

// UpgradeApp upgrades a cask
func (b *Brew) UpgradeApp(ctx context.Context, app string) error {
	b.logger.Debug().Str("cask", app).Msg("brew upgrade --cask")

	if err := b.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr, b.brewBin, "upgrade", "--cask", app); err != nil {
		return fmt.Errorf("brew upgrade --cask %s: %w", app, err)
	}
	return nil
}

// AddSource taps a third-party formula repository. Re-tapping an existing
// tap exits zero, but older brew versions complain; swallow that case.
func (b *Brew) AddSource(ctx context.Context, source string) error {
	b.logger.Debug().Str("tap", source).Msg("brew tap")

	_, err := b.runner.RunCommand(ctx, b.brewBin, "tap", source)
	if err != nil && !strings.Contains(err.Error(), "already tapped") {
		return fmt.Errorf("brew tap %s: %w", source, err)
	}
	return nil
}
