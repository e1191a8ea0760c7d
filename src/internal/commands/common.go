package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hostsctl/hostsctl/src/internal/backup"
	"github.com/hostsctl/hostsctl/src/internal/config"
	"github.com/hostsctl/hostsctl/src/internal/store"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// Stdout receives command output (default: os.Stdout).
	Stdout io.Writer
}

func (c *AppContext) out() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// A missing file yields the default configuration.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

func newStore(cfg *config.Config) *store.Store {
	return store.New(cfg.GetHostsPath(), cfg.GetBanner())
}

func newBackupManager(cfg *config.Config) *backup.Manager {
	return backup.NewManager(backup.ManagerConfig{
		HostsPath: cfg.GetHostsPath(),
		Dir:       cfg.GetBackupDir(),
	})
}

// positionalArgs checks that the flag set received exactly the named arguments.
func positionalArgs(name string, args []string, names ...string) error {
	if len(args) != len(names) {
		return fmt.Errorf("usage: %s <%s>", name, strings.Join(names, "> <"))
	}
	return nil
}
