package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/rig/internal/config"
	"github.com/quantmind-br/rig/internal/engine"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewSetupCmd(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)

	cmd := NewSetupCmd(cfg, &log)

	assert.NotNil(t, cmd)
	assert.Equal(t, "setup", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("packages-only"))
	assert.NotNil(t, cmd.Flags().Lookup("yes"))
	assert.NotNil(t, cmd.Flags().Lookup("skip"))
}

func TestPrintSummary_NoFailures(t *testing.T) {
	t.Parallel()

	// Must not panic with an empty failed list
	printSummary(engine.Summary{Installed: 3})
}

func TestPrintSummary_WithFailures(t *testing.T) {
	t.Parallel()

	printSummary(engine.Summary{
		Installed:   2,
		Failed:      1,
		FailedNames: []string{"Docker Desktop"},
	})
}
