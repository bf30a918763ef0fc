// Command multiview prints sample containers in every traversal order, or runs
// an interactive session when MULTIVIEW_INTERACTIVE is set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/multiview/cli"
	"github.com/amp-labs/multiview/demo"
	"github.com/amp-labs/multiview/logger"
)

func main() {
	ctx := context.Background()

	if _, err := logger.ConfigureLogging(ctx, "multiview"); err != nil {
		fmt.Fprintln(os.Stderr, "configuring logging:", err)
		os.Exit(1)
	}

	cfg, err := demo.LoadConfig(ctx)
	if err != nil {
		logger.Get(ctx).Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Interactive {
		err = demo.Interactive(ctx, cli.NewPrompter(), os.Stdout)
	} else {
		err = demo.Run(ctx, os.Stdout, cfg)
	}

	if err != nil {
		logger.Get(ctx).Error("multiview failed", "error", err)
		os.Exit(1)
	}
}
