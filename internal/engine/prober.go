package engine

import (
	"context"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/registry"
)

// Prober answers "is this already installed?" by running a descriptor's
// shell predicate with output suppressed. Probes are read-only and safely
// re-runnable; a failing probe means "not installed", never an error.
type Prober struct {
	runner execx.Runner
}

// NewProber creates a prober over the given runner
func NewProber(runner execx.Runner) *Prober {
	return &Prober{runner: runner}
}

// IsInstalled reports whether the descriptor's probe exits zero
func (p *Prober) IsInstalled(ctx context.Context, d registry.Descriptor) bool {
	return p.runner.RunShell(ctx, d.Probe) == nil
}
