// Command hostsctl-types writes TypeScript declarations of the HTTP API
// payloads for the desktop frontend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coder/guts"
	"github.com/coder/guts/config"

	"github.com/hostsctl/hostsctl/src/internal/log"
)

var packages = []string{
	"github.com/hostsctl/hostsctl/src/internal/hosts",
	"github.com/hostsctl/hostsctl/src/internal/backup",
	"github.com/hostsctl/hostsctl/src/internal/check",
	"github.com/hostsctl/hostsctl/src/internal/api",
}

func main() {
	output := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	ts, err := generate()
	if err != nil {
		log.Fatalf("Failed to generate types: %v", err)
	}

	if *output == "" {
		fmt.Print(ts)
		return
	}
	if err := os.WriteFile(*output, []byte(ts), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Infof("Types written to %s", *output)
}

func generate() (string, error) {
	gen, err := guts.NewGolangParser()
	if err != nil {
		return "", fmt.Errorf("failed to create parser: %w", err)
	}

	for _, pkg := range packages {
		if err := gen.IncludeGenerate(pkg); err != nil {
			return "", fmt.Errorf("failed to include %s: %w", pkg, err)
		}
	}
	gen.IncludeCustomDeclaration(config.StandardMappings())

	ts, err := gen.ToTypescript()
	if err != nil {
		return "", fmt.Errorf("failed to convert to typescript: %w", err)
	}
	ts.ApplyMutations(
		config.ExportTypes,
		config.ReadOnly,
	)

	return ts.Serialize()
}
