package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mikhail-Beresnev/shared-ng/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
		Long: `Manage the session used for authenticated requests.

Use 'session set-token' to store a session token in the configuration file.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	sessionSetTokenCmd = &cobra.Command{
		Use:   "set-token {token}",
		Short: "Store the session token in the configuration file",
		Long: `Writes session_token to the configuration file, keeping the other keys
and their order intact. The file is created when it does not exist.

The token is sent as the session cookie and verified right away.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteSessionSetTokenCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	sessionCmd.AddCommand(sessionSetTokenCmd)
	rootCmd.AddCommand(sessionCmd)
}
