package backends

import (
	"context"
	"fmt"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/rs/zerolog"
)

// Backend is the platform package-manager surface the installer dispatches
// to. All methods are blocking shell-outs; none of them impose timeouts.
type Backend interface {
	// Name returns the backend name
	Name() string

	// ManagerBinary is the package manager executable; the orchestrator
	// verifies it resolves after bootstrap. May be an absolute path.
	ManagerBinary() string

	// InstallPackage installs a native package
	InstallPackage(ctx context.Context, pkg string) error

	// UpgradePackage upgrades an already-installed native package
	UpgradePackage(ctx context.Context, pkg string) error

	// InstallApp installs a GUI application (cask or snap). classic only
	// applies to snaps needing classic confinement.
	InstallApp(ctx context.Context, app string, classic bool) error

	// UpgradeApp refreshes an already-installed GUI application
	UpgradeApp(ctx context.Context, app string) error

	// AddSource registers a third-party package source (brew tap, PPA).
	// An already-registered source is not an error.
	AddSource(ctx context.Context, source string) error
}

// ForPlatform returns the backend for a detected host
func ForPlatform(info platform.Info, runner execx.Runner, log *zerolog.Logger) (Backend, error) {
	switch info.OS {
	case platform.OSMacOS:
		return NewBrew(info, runner, log), nil
	case platform.OSUbuntu:
		return NewApt(runner, log), nil
	default:
		return nil, fmt.Errorf("no install backend for %s", info.OS)
	}
}
