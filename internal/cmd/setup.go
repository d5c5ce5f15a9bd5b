package cmd

import (
	"context"
	"fmt"

	"github.com/quantmind-br/rig/internal/backends"
	"github.com/quantmind-br/rig/internal/config"
	"github.com/quantmind-br/rig/internal/engine"
	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/registry"
	"github.com/quantmind-br/rig/internal/setup"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewSetupCmd creates the setup command
func NewSetupCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		packagesOnly bool
		assumeYes    bool
		skip         []string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install the toolchain and configure the machine",
		Long: `Runs the full provisioning pass: bootstraps the package manager if the
platform needs one, installs every registered package in order, re-probes
the host for a final tally, and finishes with the interactive
configuration steps (git identity, hostname, default shell, avatar).

A package that fails to install is reported and skipped; only a bootstrap
failure aborts the run. The command is idempotent and safe to re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), cfg, log, setupOptions{
				packagesOnly: packagesOnly || cfg.Setup.PackagesOnly,
				assumeYes:    assumeYes || cfg.Setup.AssumeYes,
				skip:         append(append([]string{}, cfg.Setup.Skip...), skip...),
			})
		},
	}

	cmd.Flags().BoolVar(&packagesOnly, "packages-only", false, "skip the interactive configuration steps")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "run configuration steps without per-step confirmation")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "registry keys to exclude from the install pass")

	return cmd
}

type setupOptions struct {
	packagesOnly bool
	assumeYes    bool
	skip         []string
}

func runSetup(ctx context.Context, cfg *config.Config, log *zerolog.Logger, opts setupOptions) error {
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
	reg = reg.WithoutKeys(opts.skip)

	runner := execx.NewOSRunner()
	backend, err := backends.ForPlatform(info, runner, log)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("select backend: %w", err)
	}

	prober := engine.NewProber(runner)
	installer := engine.NewInstaller(backend, prober, runner, log)
	orch := engine.NewOrchestrator(installer, backend, runner, log)

	ui.PrintHeader(fmt.Sprintf("Setting up %s workstation", info.OS))
	log.Info().Str("os", string(info.OS)).Str("arch", info.Arch).Int("packages", len(reg.Entries())).Msg("setup started")

	if err := orch.Run(ctx, reg); err != nil {
		ui.PrintError("%v", err)
		log.Error().Err(err).Msg("setup aborted")
		return err
	}

	summary := summarize(ctx, engine.NewReporter(prober), reg)
	printSummary(summary)

	if len(reg.FollowUps) > 0 {
		fmt.Println()
		ui.PrintSubheader("Manual follow-ups")
		ui.PrintList(reg.FollowUps)
	}

	if !opts.packagesOnly {
		fmt.Println()
		steps := setup.New(info, runner, afero.NewOsFs(), log, opts.assumeYes)
		if err := steps.Run(ctx); err != nil {
			return fmt.Errorf("configuration steps: %w", err)
		}
	}

	log.Info().Int("installed", summary.Installed).Int("failed", summary.Failed).Msg("setup finished")
	return nil
}

// summarize re-probes the registry behind a progress bar
func summarize(ctx context.Context, reporter *engine.Reporter, reg *registry.Registry) engine.Summary {
	bar := ui.NewProgressBar(int64(len(reg.Rest())), "Verifying installs")
	summary := reporter.Summarize(ctx, reg, func(d registry.Descriptor, _ bool) {
		bar.Describe(fmt.Sprintf("Probing %s", d.DisplayName))
		_ = bar.Add(1)
	})
	_ = bar.Clear()

	return summary
}

func printSummary(summary engine.Summary) {
	fmt.Println()
	ui.PrintSubheader("Summary")
	ui.PrintSuccess("%d of %d packages installed", summary.Installed, summary.Total())

	if summary.Failed > 0 {
		ui.PrintWarning("%d packages missing:", summary.Failed)
		ui.PrintList(summary.FailedNames)
	}
}
