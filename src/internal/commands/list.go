package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/hostsctl/hostsctl/src/internal/hosts"
	"github.com/hostsctl/hostsctl/src/internal/store"
)

func CreateListCommand() *ListCommand {
	return &ListCommand{
		fs: flag.NewFlagSet("list", flag.ExitOnError),
	}
}

// ListCommand prints every mapping of the hosts file.
type ListCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	store *store.Store

	asJSON      bool
	enabledOnly bool
}

func (c *ListCommand) Name() string {
	return c.fs.Name()
}

func (c *ListCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs.BoolVar(&c.asJSON, "json", false, "Print entries as JSON")
	c.fs.BoolVar(&c.enabledOnly, "enabled", false, "Print enabled entries only")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.store = newStore(cfg)

	return nil
}

func (c *ListCommand) Run() error {
	entries := c.store.LoadAll()
	if c.enabledOnly {
		filtered := make([]hosts.Entry, 0, len(entries))
		for _, e := range entries {
			if e.Enabled {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if c.asJSON {
		enc := json.NewEncoder(c.ctx.out())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := tabwriter.NewWriter(c.ctx.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tIP\tHOSTNAME")
	for _, e := range entries {
		status := "enabled"
		if !e.Enabled {
			status = "disabled"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", status, e.IP, e.Hostname)
	}
	return w.Flush()
}
