package registry

import (
	"context"
	"testing"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopScript(_ context.Context, _ execx.Runner) error { return nil }

func TestNewValidation(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate keys", func(t *testing.T) {
		t.Parallel()

		_, err := New(platform.OSUbuntu, []Descriptor{
			{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "true"},
			{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "true"},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := New(platform.OSUbuntu, []Descriptor{
			{Kind: KindNativePackage, Target: "git", Probe: "true"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("rejects empty probe", func(t *testing.T) {
		t.Parallel()

		_, err := New(platform.OSUbuntu, []Descriptor{
			{Key: "git", Kind: KindNativePackage, Target: "git"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("rejects bootstrap not first", func(t *testing.T) {
		t.Parallel()

		_, err := New(platform.OSMacOS, []Descriptor{
			{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "true"},
			{Key: "pm", Kind: KindScript, Probe: "true", Script: noopScript, Bootstrap: true},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be first")
	})

	t.Run("rejects script without func", func(t *testing.T) {
		t.Parallel()

		_, err := New(platform.OSMacOS, []Descriptor{
			{Key: "omz", Kind: KindScript, Probe: "true"},
		}, nil)
		assert.Error(t, err)
	})
}

func TestBootstrapAndRest(t *testing.T) {
	t.Parallel()

	reg, err := New(platform.OSMacOS, []Descriptor{
		{Key: "pm", Kind: KindScript, Probe: "true", Script: noopScript, Bootstrap: true},
		{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "true"},
		{Key: "jq", Kind: KindNativePackage, Target: "jq", Probe: "true"},
	}, nil)
	require.NoError(t, err)

	boot, ok := reg.Bootstrap()
	require.True(t, ok)
	assert.Equal(t, "pm", boot.Key)

	rest := reg.Rest()
	require.Len(t, rest, 2)
	assert.Equal(t, "git", rest[0].Key)
	assert.Equal(t, "jq", rest[1].Key)
}

func TestRestWithoutBootstrap(t *testing.T) {
	t.Parallel()

	reg, err := New(platform.OSUbuntu, []Descriptor{
		{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "true"},
	}, nil)
	require.NoError(t, err)

	_, ok := reg.Bootstrap()
	assert.False(t, ok)
	assert.Len(t, reg.Rest(), 1)
}

func TestWithoutKeys(t *testing.T) {
	t.Parallel()

	reg, err := New(platform.OSMacOS, []Descriptor{
		{Key: "pm", Kind: KindScript, Probe: "true", Script: noopScript, Bootstrap: true},
		{Key: "git", Kind: KindNativePackage, Target: "git", Probe: "true"},
		{Key: "jq", Kind: KindNativePackage, Target: "jq", Probe: "true"},
	}, nil)
	require.NoError(t, err)

	trimmed := reg.WithoutKeys([]string{"jq", "pm"})

	// jq is gone; the bootstrap entry cannot be skipped
	_, ok := trimmed.Lookup("jq")
	assert.False(t, ok)
	_, ok = trimmed.Bootstrap()
	assert.True(t, ok)
	assert.Len(t, trimmed.Entries(), 2)

	// nil skip list returns the registry unchanged
	assert.Same(t, reg, reg.WithoutKeys(nil))
}

func TestSplitTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		source string
		pkg    string
	}{
		{"hashicorp/tap/terraform", "hashicorp/tap", "terraform"},
		{"ppa:neovim-ppa/stable/neovim", "ppa:neovim-ppa/stable", "neovim"},
		{"plain", "", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			d := Descriptor{Target: tt.target}
			source, pkg := d.SplitTarget()
			assert.Equal(t, tt.source, source)
			assert.Equal(t, tt.pkg, pkg)
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "package", KindNativePackage.String())
	assert.Equal(t, "app", KindCaskOrSnap.String())
	assert.Equal(t, "tap", KindTap.String())
	assert.Equal(t, "script", KindScript.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestForOS(t *testing.T) {
	t.Parallel()

	t.Run("macos table is valid", func(t *testing.T) {
		t.Parallel()

		reg, err := ForOS(platform.Info{OS: platform.OSMacOS, Arch: "arm64"})
		require.NoError(t, err)

		boot, ok := reg.Bootstrap()
		require.True(t, ok, "macOS registry must bootstrap Homebrew")
		assert.Equal(t, "homebrew", boot.Key)
		assert.Equal(t, KindScript, boot.Kind)
		assert.NotEmpty(t, reg.FollowUps)
	})

	t.Run("ubuntu table is valid", func(t *testing.T) {
		t.Parallel()

		reg, err := ForOS(platform.Info{OS: platform.OSUbuntu})
		require.NoError(t, err)

		_, ok := reg.Bootstrap()
		assert.False(t, ok, "apt ships with the OS, no bootstrap entry")
		assert.NotEmpty(t, reg.Entries())
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, err := ForOS(platform.Info{OS: platform.OSUnsupported})
		assert.Error(t, err)
	})
}

func TestScriptEntriesCarryInstallers(t *testing.T) {
	t.Parallel()

	// A script descriptor without its installer func fails validation in
	// New, which would make ForOS refuse the whole platform table.
	for _, info := range []platform.Info{
		{OS: platform.OSMacOS, Arch: "arm64"},
		{OS: platform.OSUbuntu},
	} {
		reg, err := ForOS(info)
		require.NoError(t, err, "registry for %s must construct", info.OS)

		for _, d := range reg.Entries() {
			if d.Kind == KindScript {
				assert.NotNil(t, d.Script, "script entry %q has no installer", d.Key)
			}
		}
	}
}

func TestScriptInstallersAreIdempotentUpFront(t *testing.T) {
	t.Parallel()

	// rustup and ollama short-circuit when the binary is already on PATH
	ctx := context.Background()
	mock := &execx.MockRunner{
		CommandExistsFunc: func(string) bool { return true },
	}

	require.NoError(t, installRustup(ctx, mock))
	require.NoError(t, installOllama(ctx, mock))

	for _, call := range mock.Calls {
		assert.NotContains(t, call, "stream:", "no installer may run when already present")
	}
}
