package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/bizassist-cli/internal/application"
	"github.com/spf13/cobra"
)

type moduleStatusJSON struct {
	Module  string `json:"module"`
	Label   string `json:"label"`
	HasData bool   `json:"has_data"`
}

func newModulesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "Show which business modules hold data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var probes []application.ModuleProbe
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Probing modules...", func(ctx context.Context) error {
				probes = application.NewProber(app.client, app.log).Probe(ctx)
				return nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]moduleStatusJSON, 0, len(probes))
				for _, probe := range probes {
					out = append(out, moduleStatusJSON{
						Module:  string(probe.Module),
						Label:   probe.Module.Label(),
						HasData: probe.Status.HasData,
					})
				}
				return writeJSON(cmd, out)
			}

			rendered, err := app.modulesRenderer(probes)
			if err != nil {
				return fmt.Errorf("render modules: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}
