package engine

import (
	"context"

	"github.com/quantmind-br/rig/internal/registry"
)

// Summary is the outcome of re-probing a registry
type Summary struct {
	Installed   int
	Failed      int
	FailedNames []string
}

// Total returns the number of descriptors the summary covers
func (s Summary) Total() int {
	return s.Installed + s.Failed
}

// Reporter derives the end-of-run tally purely from current host state.
// It re-probes every descriptor except the bootstrap entry (the run would
// have aborted were that missing), so a package that failed to install
// here but was present from an earlier run still counts as installed.
type Reporter struct {
	prober *Prober
}

// NewReporter creates a reporter
func NewReporter(prober *Prober) *Reporter {
	return &Reporter{prober: prober}
}

// Summarize re-probes all non-bootstrap descriptors. onProbe, if non-nil,
// is invoked after each probe with its verdict (progress and per-package
// reporting without a second probe pass).
func (r *Reporter) Summarize(ctx context.Context, reg *registry.Registry, onProbe func(registry.Descriptor, bool)) Summary {
	var summary Summary

	for _, d := range reg.Rest() {
		installed := r.prober.IsInstalled(ctx, d)
		if installed {
			summary.Installed++
		} else {
			summary.Failed++
			summary.FailedNames = append(summary.FailedNames, d.DisplayName)
		}

		if onProbe != nil {
			onProbe(d, installed)
		}
	}

	return summary
}
