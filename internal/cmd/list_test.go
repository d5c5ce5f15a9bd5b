package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/quantmind-br/rig/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCmd(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)

	cmd := NewListCmd(cfg, &log)

	assert.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "list")
}

func TestListCmd_TableOutput(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)
	cmd := NewListCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--os", "macos"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "homebrew")
	assert.Contains(t, output, "git")
	assert.Contains(t, output, "(bootstrap)")
	assert.Contains(t, output, "packages registered for macos")
}

func TestListCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)
	cmd := NewListCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--os", "ubuntu", "--json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	assert.NotEmpty(t, entries)

	keys := make(map[string]bool)
	for _, e := range entries {
		keys[e.Key] = true
	}
	assert.True(t, keys["git"])
}

func TestListCmd_SkipFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Setup: config.SetupConfig{Skip: []string{"git"}},
	}
	log := zerolog.New(io.Discard)
	cmd := NewListCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--os", "ubuntu", "--json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	for _, e := range entries {
		assert.NotEqual(t, "git", e.Key)
	}
}

func TestListCmd_UnknownOS(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)
	cmd := NewListCmd(cfg, &log)

	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--os", "freebsd"})

	err := cmd.Execute()
	assert.Error(t, err)
}
