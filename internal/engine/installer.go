package engine

import (
	"context"

	"github.com/quantmind-br/rig/internal/backends"
	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/registry"
	"github.com/rs/zerolog"
)

// Result is the outcome of a single descriptor install attempt
type Result int

const (
	// ResultInstalled means the package was absent and installed now
	ResultInstalled Result = iota
	// ResultAlreadyPresent means the probe passed before any install ran
	ResultAlreadyPresent
	// ResultFailed means the install attempt exited non-zero
	ResultFailed
)

// String implements fmt.Stringer
func (r Result) String() string {
	switch r {
	case ResultInstalled:
		return "installed"
	case ResultAlreadyPresent:
		return "already present"
	case ResultFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Installer dispatches a descriptor to the right backend operation by Kind.
type Installer struct {
	backend backends.Backend
	prober  *Prober
	runner  execx.Runner
	logger  *zerolog.Logger
}

// NewInstaller creates an installer over a platform backend
func NewInstaller(backend backends.Backend, prober *Prober, runner execx.Runner, log *zerolog.Logger) *Installer {
	return &Installer{
		backend: backend,
		prober:  prober,
		runner:  runner,
		logger:  log,
	}
}

// Install probes first and installs only when absent. Already-present
// descriptors get a best-effort upgrade whose failure is swallowed and
// never changes the result. Install calls are idempotent: a second call
// returns ResultAlreadyPresent without invoking any install command.
func (i *Installer) Install(ctx context.Context, d registry.Descriptor) Result {
	if i.prober.IsInstalled(ctx, d) {
		i.upgrade(ctx, d)
		return ResultAlreadyPresent
	}

	var err error
	switch d.Kind {
	case registry.KindNativePackage:
		err = i.backend.InstallPackage(ctx, d.Target)
	case registry.KindCaskOrSnap:
		err = i.backend.InstallApp(ctx, d.Target, d.Classic)
	case registry.KindTap:
		source, pkg := d.SplitTarget()
		if err = i.backend.AddSource(ctx, source); err == nil {
			err = i.backend.InstallPackage(ctx, pkg)
		}
	case registry.KindScript:
		err = d.Script(ctx, i.runner)
	}

	if err != nil {
		i.logger.Error().Err(err).
			Str("key", d.Key).
			Stringer("kind", d.Kind).
			Int("exit_code", i.runner.GetExitCode(err)).
			Msg("install failed")
		return ResultFailed
	}

	i.logger.Info().Str("key", d.Key).Msg("installed")
	return ResultInstalled
}

// upgrade refreshes an already-installed descriptor. Failures are logged
// and dropped: an upgrade is opportunistic, not part of the contract.
func (i *Installer) upgrade(ctx context.Context, d registry.Descriptor) {
	var err error
	switch d.Kind {
	case registry.KindNativePackage:
		err = i.backend.UpgradePackage(ctx, d.Target)
	case registry.KindCaskOrSnap:
		err = i.backend.UpgradeApp(ctx, d.Target)
	case registry.KindTap:
		_, pkg := d.SplitTarget()
		err = i.backend.UpgradePackage(ctx, pkg)
	case registry.KindScript:
		// vendor installers manage their own updates
	}

	if err != nil {
		i.logger.Warn().Err(err).Str("key", d.Key).Msg("best-effort upgrade failed")
	}
}
