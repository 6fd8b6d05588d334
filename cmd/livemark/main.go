// Package main is the entry point for the livemark CLI.
package main

import (
	"fmt"
	"os"

	"github.com/xonecas/livemark/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if err := cli.NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "livemark: %v\n", err)
		os.Exit(1)
	}
}
