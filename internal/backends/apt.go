package backends

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/rs/zerolog"
)

// Apt drives apt for native packages and snap for GUI applications on
// Ubuntu/Debian. Both need root, so every mutation goes through sudo.
type Apt struct {
	runner execx.Runner
	logger *zerolog.Logger
}

// NewApt creates the apt/snap backend
func NewApt(runner execx.Runner, log *zerolog.Logger) *Apt {
	return &Apt{runner: runner, logger: log}
}

// Name returns the backend name
func (a *Apt) Name() string { return "apt" }

// ManagerBinary returns the apt executable name
func (a *Apt) ManagerBinary() string { return "apt-get" }

// InstallPackage installs a package with apt
func (a *Apt) InstallPackage(ctx context.Context, pkg string) error {
	a.logger.Debug().Str("package", pkg).Msg("apt-get install")

	if err := a.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sudo", "apt-get", "install", "-y", pkg); err != nil {
		return fmt.Errorf("apt-get install %s: %w", pkg, err)
	}
	return nil
}

// UpgradePackage upgrades an installed package without pulling in new ones
func (a *Apt) UpgradePackage(ctx context.Context, pkg string) error {
	a.logger.Debug().Str("package", pkg).Msg("apt-get upgrade")

	if err := a.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sudo", "apt-get", "install", "--only-upgrade", "-y", pkg); err != nil {
		return fmt.Errorf("apt-get upgrade %s: %w", pkg, err)
	}
	return nil
}

// InstallApp installs a snap, with classic confinement when required
func (a *Apt) InstallApp(ctx context.Context, app string, classic bool) error {
	a.logger.Debug().Str("snap", app).Bool("classic", classic).Msg("snap install")

	args := []string{"snap", "install", app}
	if classic {
		args = append(args, "--classic")
	}

	if err := a.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr, "sudo", args...); err != nil {
		return fmt.Errorf("snap install %s: %w", app, err)
	}
	return nil
}

// UpgradeApp refreshes a snap. snap exits non-zero when no update is
// pending; callers treat upgrade failure as best-effort.
func (a *Apt) UpgradeApp(ctx context.Context, app string) error {
	a.logger.Debug().Str("snap", app).Msg("snap refresh")

	if err := a.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sudo", "snap", "refresh", app); err != nil {
		return fmt.Errorf("snap refresh %s: %w", app, err)
	}
	return nil
}

// AddSource registers a PPA and refreshes the package index so the
// following install can see it. An already-registered PPA is not an error.
func (a *Apt) AddSource(ctx context.Context, source string) error {
	a.logger.Debug().Str("ppa", source).Msg("add-apt-repository")

	_, err := a.runner.RunCommand(ctx, "sudo", "add-apt-repository", "-y", source)
	if err != nil && !strings.Contains(err.Error(), "already") {
		return fmt.Errorf("add-apt-repository %s: %w", source, err)
	}

	if err := a.runner.RunCommandStreaming(ctx, os.Stdout, os.Stderr,
		"sudo", "apt-get", "update"); err != nil {
		return fmt.Errorf("apt-get update: %w", err)
	}
	return nil
}
