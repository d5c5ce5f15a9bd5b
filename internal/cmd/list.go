package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/rig/internal/config"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/registry"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		osOverride string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the package registry for this platform",
		Long:  `Prints every package the setup pass would install on this platform, in install order, without probing or installing anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := platform.Detect()
			if osOverride != "" {
				info = platform.Info{OS: platform.OS(osOverride)}
				err = nil
			}
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

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(listEntries(reg))
			}

			printRegistryTable(cmd, reg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&osOverride, "os", "", "list the registry for another platform (macos, ubuntu)")

	return cmd
}

type listEntry struct {
	Key       string `json:"key"`
	Kind      string `json:"kind"`
	Target    string `json:"target,omitempty"`
	Name      string `json:"name"`
	Bootstrap bool   `json:"bootstrap,omitempty"`
}

func listEntries(reg *registry.Registry) []listEntry {
	entries := make([]listEntry, 0, len(reg.Entries()))
	for _, d := range reg.Entries() {
		entries = append(entries, listEntry{
			Key:       d.Key,
			Kind:      d.Kind.String(),
			Target:    d.Target,
			Name:      d.DisplayName,
			Bootstrap: d.Bootstrap,
		})
	}

	return entries
}

func printRegistryTable(cmd *cobra.Command, reg *registry.Registry) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Key", "Kind", "Target", "Name"}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, d := range reg.Entries() {
		target := d.Target
		if target == "" {
			target = "-"
		}

		name := d.DisplayName
		if d.Bootstrap {
			name += " (bootstrap)"
		}

		table.Append(d.Key, ui.ColorizeKind(d.Kind), target, name)
	}

	table.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d packages registered for %s\n", len(reg.Entries()), reg.OS())
}
