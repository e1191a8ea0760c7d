package commands

import (
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/hostsctl/hostsctl/src/internal/backup"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

func CreateBackupCommand() *BackupCommand {
	return &BackupCommand{
		fs: flag.NewFlagSet("backup", flag.ExitOnError),
	}
}

// BackupCommand copies the hosts file to a timestamped backup.
type BackupCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	backups *backup.Manager
}

func (c *BackupCommand) Name() string {
	return c.fs.Name()
}

func (c *BackupCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.backups = newBackupManager(cfg)

	return nil
}

func (c *BackupCommand) Run() error {
	path, err := c.backups.Backup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	fmt.Fprintln(c.ctx.out(), path)
	return nil
}

func CreateBackupsCommand() *BackupsCommand {
	return &BackupsCommand{
		fs: flag.NewFlagSet("backups", flag.ExitOnError),
	}
}

// BackupsCommand lists the available backups, newest first.
type BackupsCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	backups *backup.Manager
}

func (c *BackupsCommand) Name() string {
	return c.fs.Name()
}

func (c *BackupsCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.backups = newBackupManager(cfg)

	return nil
}

func (c *BackupsCommand) Run() error {
	list, err := c.backups.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		log.Infof("No backups found")
		return nil
	}

	w := tabwriter.NewWriter(c.ctx.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCREATED\tSIZE")
	for _, b := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\n", b.Name, b.CreatedAt.Local().Format(time.DateTime), b.Size)
	}
	return w.Flush()
}

func CreateRestoreCommand() *RestoreCommand {
	return &RestoreCommand{
		fs: flag.NewFlagSet("restore", flag.ExitOnError),
	}
}

// RestoreCommand replaces the hosts file with a named backup.
type RestoreCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	backups *backup.Manager

	name string
}

func (c *RestoreCommand) Name() string {
	return c.fs.Name()
}

func (c *RestoreCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := positionalArgs(c.Name(), c.fs.Args(), "backup-name"); err != nil {
		return err
	}
	c.name = c.fs.Arg(0)

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.backups = newBackupManager(cfg)

	return nil
}

func (c *RestoreCommand) Run() error {
	safety, err := c.backups.Restore(c.name)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if safety != "" {
		log.Infof("Previous hosts file saved to %s", safety)
	}
	return nil
}
