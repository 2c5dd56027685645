package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/gitmsg/internal/application"
	"github.com/kardianos/service"
	"github.com/spf13/cobra"
)

var (
	serviceStart     bool
	serviceStop      bool
	serviceInstall   bool
	serviceUninstall bool
	serviceStatus    bool
	serviceRun       bool
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage gitmsg serve as a system service",
	Long: `Install, uninstall, start, stop, or check the status of the gitmsg
HTTP server as a system service.

On Windows, this creates/manages a Windows Service.
On Linux/macOS, this creates/manages a systemd/launchd service.

The service reads the same GITMSG_* environment and gitmsg.env file as
'gitmsg serve'.`,
	RunE: runService,
}

func init() {
	rootCmd.AddCommand(serviceCmd)
	serviceCmd.Flags().BoolVar(&serviceStart, "start", false, "Start the gitmsg service")
	serviceCmd.Flags().BoolVar(&serviceStop, "stop", false, "Stop the gitmsg service")
	serviceCmd.Flags().BoolVar(&serviceInstall, "install", false, "Install gitmsg as a system service")
	serviceCmd.Flags().BoolVar(&serviceUninstall, "uninstall", false, "Uninstall the gitmsg system service")
	serviceCmd.Flags().BoolVar(&serviceStatus, "status", false, "Check the gitmsg service status")
	serviceCmd.Flags().BoolVar(&serviceRun, "run", false, "Run under the service manager (used by the installed service)")
	_ = serviceCmd.Flags().MarkHidden("run")
}

// program implements service.Interface by running the HTTP server in-process.
type program struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *program) Start(_ service.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		if err := runServe(ctx); err != nil {
			_ = service.ConsoleLogger.Errorf("Server exited with error: %v", err)
		}
	}()

	return nil
}

func (p *program) Stop(_ service.Service) error {
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}

	return nil
}

func newService() (service.Service, error) {
	svcConfig := &service.Config{
		Name:        "gitmsg",
		DisplayName: "gitmsg message server",
		Description: "Local HTTP API that mirrors messages into GitHub repositories",
		Arguments:   []string{"service", "--run"},
	}

	s, err := service.New(&program{}, svcConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return s, nil
}

// selectedServiceOp returns the single requested operation.
func selectedServiceOp(flags map[string]bool) (string, error) {
	var selected []string

	for _, name := range []string{"install", "uninstall", "start", "stop", "status", "run"} {
		if flags[name] {
			selected = append(selected, name)
		}
	}

	switch len(selected) {
	case 0:
		return "", fmt.Errorf("please specify one of: --start, --stop, --install, --uninstall, --status")
	case 1:
		return selected[0], nil
	default:
		return "", fmt.Errorf("please specify only one operation at a time")
	}
}

func runService(_ *cobra.Command, _ []string) error {
	op, err := selectedServiceOp(map[string]bool{
		"install":   serviceInstall,
		"uninstall": serviceUninstall,
		"start":     serviceStart,
		"stop":      serviceStop,
		"status":    serviceStatus,
		"run":       serviceRun,
	})
	if err != nil {
		return err
	}

	s, err := newService()
	if err != nil {
		return err
	}

	switch op {
	case "install":
		return installService(s)
	case "uninstall":
		return uninstallService(s)
	case "start":
		return startService(s)
	case "stop":
		return stopService(s)
	case "status":
		return statusService(s)
	case "run":
		return s.Run()
	}

	return nil
}

func installService(s service.Service) error {
	fmt.Println("Installing gitmsg service...")
	fmt.Printf("Address: %s\n", appConfig.Addr())

	if err := s.Install(); err != nil {
		return fmt.Errorf("failed to install service: %w", err)
	}

	fmt.Println("✓ Service installed successfully!")
	fmt.Println("\nTo start the service, run:")
	fmt.Printf("  %s service --start\n", application.AppName)

	return nil
}

func uninstallService(s service.Service) error {
	fmt.Println("Uninstalling gitmsg service...")

	// Try to stop first
	_ = s.Stop()

	if err := s.Uninstall(); err != nil {
		return fmt.Errorf("failed to uninstall service: %w", err)
	}

	fmt.Println("✓ Service uninstalled successfully!")

	return nil
}

func startService(s service.Service) error {
	fmt.Println("Starting gitmsg service...")

	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	fmt.Println("✓ Service started successfully!")
	fmt.Printf("\nServing on http://%s\n", appConfig.Addr())

	return nil
}

func stopService(s service.Service) error {
	fmt.Println("Stopping gitmsg service...")

	if err := s.Stop(); err != nil {
		return fmt.Errorf("failed to stop service: %w", err)
	}

	fmt.Println("✓ Service stopped successfully!")

	return nil
}

func statusService(s service.Service) error {
	status, err := s.Status()
	if err != nil {
		if errors.Is(err, service.ErrNotInstalled) {
			fmt.Println("Service status: NOT INSTALLED")
			return nil
		}

		return fmt.Errorf("failed to get service status: %w", err)
	}

	switch status {
	case service.StatusRunning:
		fmt.Println("Service status: RUNNING")
	case service.StatusStopped:
		fmt.Println("Service status: STOPPED")
	default:
		fmt.Println("Service status: UNKNOWN")
	}

	_, _ = fmt.Fprintf(os.Stdout, "Address: %s\n", appConfig.Addr())

	return nil
}
