package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	"github.com/Mikhail-Beresnev/shared-ng/internal/utils"
)

const serverURLFlag = "server-url"

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "shared-ng",
		Short: "Talk to the shared-ng backend API from the command line.",
		Long: `shared-ng is a CLI client for the backend API.
It supports:
- GET, DELETE, POST, PUT and PATCH requests with JSON or URL-encoded bodies
- Session verification through the session cookie
- Image uploads

Relative URIs are resolved against the configured server URL.`,
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().String(
		serverURLFlag,
		"",
		"server URL relative URIs are resolved against, overrides the configuration file.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = loadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// loadConfig reads the configuration file, falling back to defaults when it does not exist.
func loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		filename = config.DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(filename)
	if err != nil {
		return nil, err
	}

	if !exists {
		cfg := config.Default()
		cfg.Filename = filename

		return cfg, nil
	}

	return config.LoadConfig(filename)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup(serverURLFlag); flag != nil && flag.Changed {
		cfg.ServerURL, _ = flags.GetString(serverURLFlag)
	}

	return config.ValidateConfig(cfg)
}
