package cmd

import (
	"os"

	"dashfix/cmd/cli/app"
	"dashfix/internal/cli/output"
	"dashfix/internal/logging"

	"github.com/spf13/cobra"
)

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "dashfix",
	Short: "Adds route, cargo type and amount to the bot dashboard order mapping",
	Long: `dashfix patches src/bot/bot.service.ts in the current directory.

Every occurrence of the unassigned-driver line in the active order mapping is
followed by the route, cargoType and amount fields. The file is written back
in all cases and one status line is printed:

  Dashboard mapping fixed     the line was found and patched
  Target line not found       the file was left as it was`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFixDashboardCommandHandler(logging.Verbose(*verbose))
		if err != nil {
			return err
		}

		return handler.Handle(os.Stdout)
	},
}

func Execute() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
