package cmd

import (
	"os"

	"github.com/inovacc/gitmsg/internal/application"
	"github.com/inovacc/gitmsg/internal/config"
	"github.com/inovacc/gitmsg/internal/logging"
	"github.com/spf13/cobra"
)

var (
	appConfig *config.Config

	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Post messages and mirror them into GitHub repositories",
	Long: `gitmsg stores short text messages locally and mirrors each one as a
JSON file (messages/<id>.json) into a tracked GitHub repository, recording the
resulting blob SHA on the message.

Configuration is read from the environment (GITMSG_* variables), an optional
.env file in the working directory, and the gitmsg.env file in the application
directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}

		appConfig = cfg
		logging.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
