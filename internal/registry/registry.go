package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
)

// Kind selects the install backend for a descriptor
type Kind int

const (
	// KindNativePackage installs through the platform package manager (brew, apt)
	KindNativePackage Kind = iota
	// KindCaskOrSnap installs a GUI application (brew cask, snap)
	KindCaskOrSnap
	// KindTap registers a third-party source first, then installs natively
	KindTap
	// KindScript runs a vendor installer function
	KindScript
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindNativePackage:
		return "package"
	case KindCaskOrSnap:
		return "app"
	case KindTap:
		return "tap"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// ScriptFunc is a vendor installer invoked for KindScript descriptors.
// Implementations must be idempotent: safe to invoke even if a previous
// run was interrupted partway through.
type ScriptFunc func(ctx context.Context, runner execx.Runner) error

// Descriptor is a single package/application's installation metadata
type Descriptor struct {
	// Key is the stable unique identifier used for lookup and skip lists
	Key string

	// Kind selects the install backend
	Kind Kind

	// Target is the backend-specific argument: package name, cask/snap
	// name, or "source/package" for taps (source is everything up to the
	// last slash). Unused for KindScript.
	Target string

	// Probe is a shell predicate; exit 0 means "already installed".
	// Must be re-runnable with no side effects.
	Probe string

	// DisplayName is the human-readable label for output
	DisplayName string

	// Script is the installer function for KindScript descriptors
	Script ScriptFunc

	// Classic marks a snap needing classic confinement (KindCaskOrSnap,
	// Ubuntu only)
	Classic bool

	// Bootstrap marks the descriptor that installs the package manager
	// itself. At most one per registry, and it must be first: every
	// other entry depends on it.
	Bootstrap bool
}

// SplitTarget splits a tap target into its source and package name.
// "hashicorp/tap/terraform" -> ("hashicorp/tap", "terraform")
// "ppa:neovim-ppa/stable/neovim" -> ("ppa:neovim-ppa/stable", "neovim")
func (d Descriptor) SplitTarget() (source, pkg string) {
	idx := strings.LastIndex(d.Target, "/")
	if idx < 0 {
		return "", d.Target
	}
	return d.Target[:idx], d.Target[idx+1:]
}

// Registry is an immutable, ordered table of descriptors for one platform.
// Order encodes install order.
type Registry struct {
	os      platform.OS
	entries []Descriptor

	// FollowUps are manual post-install actions the tool cannot automate,
	// printed after the summary.
	FollowUps []string
}

// New validates and constructs a registry. Keys must be unique, probes
// non-empty, and a bootstrap entry (if any) must be the first descriptor.
func New(os platform.OS, entries []Descriptor, followUps []string) (*Registry, error) {
	seen := make(map[string]struct{}, len(entries))

	for i, d := range entries {
		if d.Key == "" {
			return nil, fmt.Errorf("descriptor %d: empty key", i)
		}
		if _, dup := seen[d.Key]; dup {
			return nil, fmt.Errorf("duplicate descriptor key %q", d.Key)
		}
		seen[d.Key] = struct{}{}

		if d.Probe == "" {
			return nil, fmt.Errorf("descriptor %q: empty probe", d.Key)
		}
		if d.Bootstrap && i != 0 {
			return nil, fmt.Errorf("bootstrap descriptor %q must be first", d.Key)
		}
		if d.Kind == KindScript && d.Script == nil {
			return nil, fmt.Errorf("script descriptor %q: missing script", d.Key)
		}
	}

	return &Registry{os: os, entries: entries, FollowUps: followUps}, nil
}

// ForOS returns the static registry for a detected platform
func ForOS(info platform.Info) (*Registry, error) {
	switch info.OS {
	case platform.OSMacOS:
		return macOSRegistry(info)
	case platform.OSUbuntu:
		return ubuntuRegistry()
	default:
		return nil, fmt.Errorf("no package registry for %s", info.OS)
	}
}

// OS returns the platform this registry targets
func (r *Registry) OS() platform.OS {
	return r.os
}

// Entries returns all descriptors in install order
func (r *Registry) Entries() []Descriptor {
	return r.entries
}

// Bootstrap returns the bootstrap descriptor, if the registry has one
func (r *Registry) Bootstrap() (Descriptor, bool) {
	if len(r.entries) > 0 && r.entries[0].Bootstrap {
		return r.entries[0], true
	}
	return Descriptor{}, false
}

// Rest returns every non-bootstrap descriptor in install order
func (r *Registry) Rest() []Descriptor {
	if _, ok := r.Bootstrap(); ok {
		return r.entries[1:]
	}
	return r.entries
}

// Lookup finds a descriptor by key
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	for _, d := range r.entries {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// WithoutKeys returns a copy of the registry with the named descriptors
// removed. The bootstrap entry cannot be skipped.
func (r *Registry) WithoutKeys(keys []string) *Registry {
	if len(keys) == 0 {
		return r
	}

	skip := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		skip[k] = struct{}{}
	}

	kept := make([]Descriptor, 0, len(r.entries))
	for _, d := range r.entries {
		if _, skipped := skip[d.Key]; skipped && !d.Bootstrap {
			continue
		}
		kept = append(kept, d)
	}

	return &Registry{os: r.os, entries: kept, FollowUps: r.FollowUps}
}
