package commands

import (
	"flag"
	"fmt"

	"github.com/hostsctl/hostsctl/src/internal/store"
)

func CreateAddCommand() *AddCommand {
	return &AddCommand{
		fs: flag.NewFlagSet("add", flag.ExitOnError),
	}
}

// AddCommand appends one enabled mapping.
type AddCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	store *store.Store

	ip       string
	hostname string
}

func (c *AddCommand) Name() string {
	return c.fs.Name()
}

func (c *AddCommand) Init(args []string, ctx *AppContext) error {
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

func (c *AddCommand) Run() error {
	if err := c.store.AddEntry(c.ip, c.hostname); err != nil {
		return fmt.Errorf("failed to add %s %s: %w", c.ip, c.hostname, err)
	}
	return nil
}
