package commands

import (
	"flag"
	"fmt"

	"github.com/hostsctl/hostsctl/src/internal/check"
	"github.com/hostsctl/hostsctl/src/internal/config"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
	return gc
}

type SelfCheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	log.Infof("---------------- Configuration START -----------------")

	if cfg, err := g.cfg.SerializeConfig(); err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	} else if _, err := g.ctx.out().Write(cfg.Bytes()); err != nil {
		return fmt.Errorf("failed to output config: %w", err)
	}

	log.Infof("----------------- Configuration END ------------------")

	report := check.Run(g.cfg.GetHostsPath())
	log.Infof("Hosts file: %s (%d enabled, %d disabled, %d other lines)",
		report.HostsPath, report.Enabled, report.Disabled, report.Skipped)

	for _, f := range report.Findings {
		switch f.Severity {
		case check.SeverityOK:
			log.Infof("[%s] %s", f.Check, f.Message)
		case check.SeverityWarn:
			log.Warnf("[%s] %s", f.Check, f.Message)
		default:
			log.Errorf("[%s] %s", f.Check, f.Message)
		}
	}

	if !report.OK() {
		return fmt.Errorf("self-check completed with failures")
	}

	log.Infof("Self-check completed successfully")
	return nil
}
