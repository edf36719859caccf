package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mikhail-Beresnev/shared-ng/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check whether the session cookie belongs to a logged in user.",
	Long: `Checks the configured session against the verify endpoint.

Without a session token nothing is sent and the session is reported as logged out.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteVerifyCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(verifyCmd)
}
