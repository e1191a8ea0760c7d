package commands

import (
	"flag"

	"github.com/hostsctl/hostsctl/src/internal/editor"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

func CreateEditCommand() *EditCommand {
	return &EditCommand{
		fs: flag.NewFlagSet("edit", flag.ExitOnError),
	}
}

// EditCommand opens the hosts file in an external editor and returns immediately.
type EditCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	path     string
	launcher *editor.Launcher
}

func (c *EditCommand) Name() string {
	return c.fs.Name()
}

func (c *EditCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.path = cfg.GetHostsPath()
	c.launcher = editor.NewLauncher(cfg.Editor.Command)

	return nil
}

func (c *EditCommand) Run() error {
	log.Infof("Opening %s", c.path)
	return c.launcher.Open(c.path)
}
