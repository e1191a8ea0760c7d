package commands

import (
	"flag"
	"fmt"

	"github.com/hostsctl/hostsctl/src/internal/store"
)

func CreateRemoveCommand() *RemoveCommand {
	return &RemoveCommand{
		fs: flag.NewFlagSet("remove", flag.ExitOnError),
	}
}

// RemoveCommand deletes a mapping. The file is rewritten, so comments and
// unparsable lines are dropped.
type RemoveCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	store *store.Store

	ip       string
	hostname string
}

func (c *RemoveCommand) Name() string {
	return c.fs.Name()
}

func (c *RemoveCommand) Init(args []string, ctx *AppContext) error {
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

func (c *RemoveCommand) Run() error {
	if err := c.store.Remove(c.ip, c.hostname); err != nil {
		return fmt.Errorf("failed to remove %s %s: %w", c.ip, c.hostname, err)
	}
	return nil
}
