package cmd

import (
	"fmt"

	"github.com/quantmind-br/rig/internal/config"
	"github.com/quantmind-br/rig/internal/engine"
	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/registry"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Probe the host and report what is installed",
		Long:  `Runs every registered probe against the current host without installing anything, then prints a per-package verdict and a tally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			info, err := platform.Detect()
			if err != nil {
				ui.PrintError("%v", err)
				return fmt.Errorf("detect platform: %w", err)
			}

			reg, err := registry.ForOS(info)
			if err != nil {
				ui.PrintError("%v", err)
				return fmt.Errorf("load registry: %w", err)
			}
			reg = reg.WithoutKeys(cfg.Setup.Skip)

			runner := execx.NewOSRunner()
			prober := engine.NewProber(runner)

			ui.PrintHeader(fmt.Sprintf("Package status (%s)", info.OS))

			summary := engine.NewReporter(prober).Summarize(ctx, reg, func(d registry.Descriptor, installed bool) {
				if installed {
					ui.PrintSuccess("%s", d.DisplayName)
				} else {
					ui.PrintError("%s", d.DisplayName)
				}
			})

			fmt.Println()
			ui.PrintInfo("%d of %d packages installed", summary.Installed, summary.Total())
			log.Info().Int("installed", summary.Installed).Int("failed", summary.Failed).Msg("status check complete")

			return nil
		},
	}

	return cmd
}
