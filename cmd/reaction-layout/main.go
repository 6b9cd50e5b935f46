package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reactome-tools/reaction-layout/internal/cli"
)

// version, commit, and date are injected via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)

	if err := cli.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
