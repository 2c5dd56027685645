package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/inovacc/gitmsg/internal/application"
	"github.com/inovacc/gitmsg/internal/process"
	"github.com/inovacc/gitmsg/internal/server/web"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
	serveGops bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (default from GITMSG_HOST)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from GITMSG_PORT)")
	serveCmd.Flags().BoolVar(&serveGops, "gops", false, "Start the gops diagnostics agent")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API and web UI",
	Long: `Start the local HTTP server that accepts messages, tracks repositories
and pushes pending messages to GitHub.

Examples:
  gitmsg serve                 # Listen on GITMSG_HOST:GITMSG_PORT (localhost:8004)
  gitmsg serve --port 9000     # Listen on a custom port
  gitmsg serve --gops          # Also expose the gops diagnostics agent`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if serveHost != "" {
			appConfig.Host = serveHost
		}
		if servePort != 0 {
			appConfig.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServe(ctx)
	},
}

// runServe runs the HTTP server until ctx is cancelled.
func runServe(ctx context.Context) error {
	pidPath, err := application.PIDFilePath()
	if err != nil {
		return err
	}

	pid, err := process.RunningServer(pidPath, application.AppName)
	if err != nil {
		return fmt.Errorf("failed to check for a running server: %w", err)
	}

	if pid != 0 {
		return fmt.Errorf("server already running (pid %d)", pid)
	}

	if err := process.WritePIDFile(pidPath); err != nil {
		return fmt.Errorf("failed to write pid file: %w", err)
	}

	defer func() { _ = os.Remove(pidPath) }()

	if serveGops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("failed to start gops agent: %w", err)
		}

		defer agent.Close()
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	defer a.Close()

	if appConfig.GitHubToken == "" {
		a.logger.Warn("no GitHub token configured, requests will be anonymous")
	} else if login, err := a.remote.Authenticate(ctx); err != nil {
		a.logger.Warn("GitHub token check failed", "error", err)
	} else {
		a.logger.Info("authenticated with GitHub", "login", login, "source", appConfig.TokenSource)
	}

	config := web.DefaultConfig()
	config.Host = appConfig.Host
	config.Port = appConfig.Port
	config.APIToken = appConfig.APIToken

	server := web.New(config, a.syncer, a.store, a.logger)

	_, _ = fmt.Fprintf(os.Stdout, "Serving on http://%s\n", server.Addr())
	_, _ = fmt.Fprintln(os.Stdout, "Press Ctrl+C to stop")

	return server.Start(ctx)
}
