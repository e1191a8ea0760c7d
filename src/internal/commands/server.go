package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hostsctl/hostsctl/src/frontend"
	"github.com/hostsctl/hostsctl/src/internal/api"
	"github.com/hostsctl/hostsctl/src/internal/config"
	"github.com/hostsctl/hostsctl/src/internal/editor"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

// ServerCommand runs the local HTTP API.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	listenAddr string
	handler    *api.Handler
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "server"
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("server", flag.ExitOnError)

	c.fs.StringVar(&c.listenAddr, "listen", "", "Address to bind the HTTP server (default: [server] listen_addr)")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	// Flag wins over the configuration file.
	if c.listenAddr == "" {
		c.listenAddr = cfg.Server.ListenAddr
	}

	c.handler = api.NewHandler(newStore(cfg), newBackupManager(cfg), editor.NewLauncher(cfg.Editor.Command))

	return nil
}

// Run serves the API until SIGINT or SIGTERM.
func (c *ServerCommand) Run() error {
	log.Infof("Starting hostsctl API server on %s", c.listenAddr)
	log.Infof("Configuration loaded from: %s", c.cfg.GetConfigFilePath())
	log.Infof("Managing hosts file: %s", c.cfg.GetHostsPath())
	log.Infof("Requests from non-loopback addresses or foreign origins will be rejected with 403 Forbidden")

	ui := frontend.NewFileSystem(c.cfg.GetUIDir())
	if ui != nil {
		log.Infof("Serving web UI from %s", c.cfg.GetUIDir())
	}
	router := api.NewRouter(c.handler, ui, c.cfg.Server.AllowedOrigins)

	runner := NewRestartableRunner(RunnerConfig{
		Name:        "api-server",
		MaxRestarts: 5,
	}, func(ctx context.Context) error {
		server := api.NewServer(c.listenAddr, router)

		serverErrors := make(chan error, 1)
		go func() {
			serverErrors <- server.Start()
		}()

		select {
		case err := <-serverErrors:
			if err == nil {
				return fmt.Errorf("server stopped unexpectedly")
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Stop(shutdownCtx); err != nil {
				log.Errorf("Error during server shutdown: %v", err)
			}
			return nil
		}
	})

	if err := runner.Start(context.Background()); err != nil {
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case <-runner.Done():
		return fmt.Errorf("server error: %w", runner.LastError())

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)
		if err := runner.Stop(); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Infof("Server stopped gracefully")
	}

	return nil
}
