package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/ui"
)

// ApplyHostname sets the machine hostname. macOS keeps three separate
// names in sync via scutil; Ubuntu goes through hostnamectl.
func ApplyHostname(ctx context.Context, runner execx.Runner, host platform.OS, name string) error {
	switch host {
	case platform.OSMacOS:
		for _, key := range []string{"ComputerName", "HostName", "LocalHostName"} {
			if _, err := runner.RunCommand(ctx, "sudo", "scutil", "--set", key, name); err != nil {
				return fmt.Errorf("scutil --set %s: %w", key, err)
			}
		}
		return nil
	case platform.OSUbuntu:
		if _, err := runner.RunCommand(ctx, "sudo", "hostnamectl", "set-hostname", name); err != nil {
			return fmt.Errorf("hostnamectl set-hostname: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("cannot set hostname on %s", host)
	}
}

// configureHostname prompts for and applies a new hostname
func (s *Steps) configureHostname(ctx context.Context) error {
	current, _ := os.Hostname()

	name, err := ui.InputPrompt("Hostname", current, ui.ValidateHostname)
	if err != nil {
		return err
	}
	if name == current {
		ui.PrintInfo("hostname unchanged")
		return nil
	}

	if err := ApplyHostname(ctx, s.runner, s.info.OS, name); err != nil {
		return err
	}

	ui.PrintSuccess("hostname set to %s", name)
	return nil
}
