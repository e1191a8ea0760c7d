package commands

import (
	"flag"
	"fmt"

	"github.com/hostsctl/hostsctl/src/internal/log"
	"github.com/hostsctl/hostsctl/src/internal/store"
)

func CreateEnableCommand() *ToggleCommand {
	return &ToggleCommand{
		fs:      flag.NewFlagSet("enable", flag.ExitOnError),
		enabled: true,
	}
}

func CreateDisableCommand() *ToggleCommand {
	return &ToggleCommand{
		fs:      flag.NewFlagSet("disable", flag.ExitOnError),
		enabled: false,
	}
}

// ToggleCommand comments or uncomments an existing mapping.
type ToggleCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	store   *store.Store
	enabled bool

	ip       string
	hostname string
}

func (c *ToggleCommand) Name() string {
	return c.fs.Name()
}

func (c *ToggleCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := positionalArgs(c.Name(), c.fs.Args(), "ip", "hostname"); err != nil {
		return err
	}
	c.ip, c.hostname = c.fs.Arg(0), c.fs.Arg(1)

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.store = newStore(cfg)

	return nil
}

func (c *ToggleCommand) Run() error {
	if err := c.store.SetEnabled(c.ip, c.hostname, c.enabled); err != nil {
		return fmt.Errorf("failed to %s %s %s: %w", c.Name(), c.ip, c.hostname, err)
	}
	log.Infof("%s %s: done", c.Name(), c.hostname)
	return nil
}
