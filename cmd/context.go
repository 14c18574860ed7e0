package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newContextCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Collect module data and show the assembled assistant context",
		Long:  "context runs one collection cycle: probe every module, fetch the summaries of modules that hold data, and fetch the health score, carbon estimate and recommendations. Unavailable data is shown as absent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aggregate, err := collectWithSpinner(cmd, app)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, aggregate)
			}

			rendered, err := app.contextRenderer(aggregate)
			if err != nil {
				return fmt.Errorf("render context: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the context exactly as sent to the assistant")

	return cmd
}

func collectWithSpinner(cmd *cobra.Command, app *app) (domain.AggregateContext, error) {
	var aggregate domain.AggregateContext
	err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), collectingLabel, func(ctx context.Context) error {
		aggregate = app.aggregator.Collect(ctx)
		return nil
	})
	return aggregate, err
}
