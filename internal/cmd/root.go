package cmd

import (
	"github.com/quantmind-br/rig/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rig",
		Short:        "Developer workstation setup",
		Long:         `Provisions a fresh macOS or Ubuntu machine: installs the developer toolchain through the native package manager and walks through first-run configuration.`,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewSetupCmd(cfg, log))
	cmd.AddCommand(NewStatusCmd(cfg, log))
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
