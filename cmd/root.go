package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "ba",
		Short:         "Business assistant CLI (ba): ask questions about your business data",
		Long:          "ba collects the data your business modules hold (expenses, fraud insights, inventory, energy usage), assembles it into one context, and asks the platform assistant about it.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd.ErrOrStderr(), verbose)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newModulesCmd(app),
		newContextCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newAuthCmd(app),
	)

	return rootCmd
}
