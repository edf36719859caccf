package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mikhail-Beresnev/shared-ng/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var uploadCmd = &cobra.Command{
	Use:   "upload [flags] {file}",
	Short: "Upload an image to the media endpoint.",
	Long: `Uploads an image as a multipart form under the "file" field.

Files larger than max_upload_size are rejected before anything is sent.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app.ExecuteUploadCommand(cmd.Context(), appConfig, args[0])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(uploadCmd)
}
