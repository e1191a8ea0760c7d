package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hostsctl/hostsctl/src/internal/commands"
	"github.com/hostsctl/hostsctl/src/internal/config"
	"github.com/hostsctl/hostsctl/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath(), "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Hosts File Manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  list                    List hosts file entries\n")
		fmt.Fprintf(os.Stderr, "  add <ip> <hostname>     Add an enabled mapping\n")
		fmt.Fprintf(os.Stderr, "  enable <ip> <hostname>  Uncomment a mapping\n")
		fmt.Fprintf(os.Stderr, "  disable <ip> <hostname> Comment out a mapping\n")
		fmt.Fprintf(os.Stderr, "  remove <ip> <hostname>  Remove a mapping (rewrites the file)\n")
		fmt.Fprintf(os.Stderr, "  backup                  Back up the hosts file to the desktop\n")
		fmt.Fprintf(os.Stderr, "  backups                 List backups\n")
		fmt.Fprintf(os.Stderr, "  restore <name>          Restore a backup\n")
		fmt.Fprintf(os.Stderr, "  edit                    Open the hosts file in an external editor\n")
		fmt.Fprintf(os.Stderr, "  self-check              Run self-check\n")
		fmt.Fprintf(os.Stderr, "  server                  Serve the local HTTP API\n")
		fmt.Fprintf(os.Stderr, "  init-config             Write the default configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateListCommand(),
		commands.CreateAddCommand(),
		commands.CreateEnableCommand(),
		commands.CreateDisableCommand(),
		commands.CreateRemoveCommand(),
		commands.CreateBackupCommand(),
		commands.CreateBackupsCommand(),
		commands.CreateRestoreCommand(),
		commands.CreateEditCommand(),
		commands.CreateSelfCheckCommand(),
		commands.CreateServerCommand(),
		commands.CreateInitConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
