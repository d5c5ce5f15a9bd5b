package ui

import (
	"testing"

	"github.com/fatih/color"
	"github.com/quantmind-br/rig/internal/registry"
	"github.com/stretchr/testify/assert"
)

func TestColorizeKind(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, "package", ColorizeKind(registry.KindNativePackage))
	assert.Equal(t, "app", ColorizeKind(registry.KindCaskOrSnap))
	assert.Equal(t, "tap", ColorizeKind(registry.KindTap))
	assert.Equal(t, "script", ColorizeKind(registry.KindScript))
	assert.Equal(t, "unknown", ColorizeKind(registry.Kind(42)))
}

func TestSprintHelpers(t *testing.T) {
	assert.Contains(t, SprintSuccess("installed %s", "git"), "installed git")
	assert.Contains(t, SprintError("failed %s", "git"), "failed git")
}

func TestInitColorsRespectsNoColor(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	t.Setenv("NO_COLOR", "1")
	InitColors()
	assert.False(t, AreColorsEnabled())
}

func TestValidateNonEmpty(t *testing.T) {
	assert.Error(t, ValidateNonEmpty(""))
	assert.Error(t, ValidateNonEmpty("   "))
	assert.NoError(t, ValidateNonEmpty("rig"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("dev@example.com"))
	assert.Error(t, ValidateEmail("devexample.com"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("dev@"))
}

func TestValidateHostname(t *testing.T) {
	assert.NoError(t, ValidateHostname("dev-laptop"))
	assert.NoError(t, ValidateHostname("box42"))
	assert.Error(t, ValidateHostname(""))
	assert.Error(t, ValidateHostname("-box"))
	assert.Error(t, ValidateHostname("box-"))
	assert.Error(t, ValidateHostname("my box"))
	assert.Error(t, ValidateHostname("box.example.com"))
}

func TestProgressBar(t *testing.T) {
	bar := NewProgressBar(3, "installing")
	assert.NoError(t, bar.Add(1))
	bar.Describe("still installing")
	assert.NoError(t, bar.Finish())
	assert.NoError(t, bar.Clear())
}
