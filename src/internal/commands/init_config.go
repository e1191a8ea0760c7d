package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hostsctl/hostsctl/src/internal/config"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

func CreateInitConfigCommand() *InitConfigCommand {
	return &InitConfigCommand{
		fs: flag.NewFlagSet("init-config", flag.ExitOnError),
	}
}

// InitConfigCommand writes the default configuration file.
type InitConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	force bool
}

func (c *InitConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs.BoolVar(&c.force, "force", false, "Overwrite an existing configuration file")

	return c.fs.Parse(args)
}

func (c *InitConfigCommand) Run() error {
	if _, err := os.Stat(c.ctx.ConfigPath); err == nil && !c.force {
		return fmt.Errorf("configuration file %s already exists, use -force to overwrite", c.ctx.ConfigPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %v", c.ctx.ConfigPath, err)
	}

	cfg, err := config.DefaultConfigAt(c.ctx.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write configuration: %v", err)
	}

	log.Infof("Configuration written to %s", cfg.GetConfigFilePath())
	return nil
}
