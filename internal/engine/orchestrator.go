package engine

import (
	"context"
	"fmt"

	"github.com/quantmind-br/rig/internal/backends"
	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/registry"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/rs/zerolog"
)

// commandInvalidator lets the orchestrator drop a stale PATH-lookup cache
// entry after bootstrapping the package manager.
type commandInvalidator interface {
	InvalidateCommand(name string)
}

// Orchestrator walks the registry in order, sequentially and with no
// rollback. Only an unavailable package manager aborts the run (failed
// bootstrap, or no resolvable manager binary when the platform has no
// bootstrap entry): every other descriptor's failure is reported and
// skipped over.
type Orchestrator struct {
	installer *Installer
	backend   backends.Backend
	runner    execx.Runner
	logger    *zerolog.Logger
}

// NewOrchestrator creates an orchestrator
func NewOrchestrator(installer *Installer, backend backends.Backend, runner execx.Runner, log *zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		installer: installer,
		backend:   backend,
		runner:    runner,
		logger:    log,
	}
}

// Run processes the whole registry. The returned error is fatal: the
// bootstrap entry failed or its post-condition (manager binary resolvable)
// does not hold, so no other descriptor was attempted. Per-package results
// are printed as they happen and not accumulated; the Reporter re-derives
// the final state by re-probing.
func (o *Orchestrator) Run(ctx context.Context, reg *registry.Registry) error {
	if boot, ok := reg.Bootstrap(); ok {
		ui.PrintInfo("Bootstrapping %s", boot.DisplayName)

		if res := o.installer.Install(ctx, boot); res == ResultFailed {
			return fmt.Errorf("bootstrap failed: %s could not be installed", boot.DisplayName)
		}

		// The manager binary may have been cached as missing before the
		// bootstrap ran.
		if inv, ok := o.runner.(commandInvalidator); ok {
			inv.InvalidateCommand(o.backend.ManagerBinary())
		}
		if !o.runner.CommandExists(o.backend.ManagerBinary()) {
			return fmt.Errorf("bootstrap failed: %s installed but %q does not resolve",
				boot.DisplayName, o.backend.ManagerBinary())
		}

		ui.PrintSuccess("%s ready", boot.DisplayName)
		o.logger.Info().Str("manager", o.backend.ManagerBinary()).Msg("bootstrap complete")
	} else if err := o.runner.RequireCommand(o.backend.ManagerBinary()); err != nil {
		// No bootstrap entry means the platform ships its manager with
		// the OS; a missing binary is as fatal as a failed bootstrap.
		return fmt.Errorf("package manager unavailable: %w", err)
	}

	entries := reg.Rest()
	for idx, d := range entries {
		ui.PrintStep(idx+1, len(entries), "%s", d.DisplayName)

		switch o.installer.Install(ctx, d) {
		case ResultInstalled:
			ui.PrintSuccess("%s installed", d.DisplayName)
		case ResultAlreadyPresent:
			ui.PrintInfo("%s already present", d.DisplayName)
		case ResultFailed:
			ui.PrintError("%s failed, continuing with the next package", d.DisplayName)
		}
	}

	return nil
}
