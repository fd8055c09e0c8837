// Package main provides the standalone kubergrunt launcher.
//
// The EKS control plane module runs it from destroy-time provisioners:
//
//	find-and-run-kubergrunt -- eks cleanup-security-group --eks-cluster-arn ...
//
// The first argument is a separator and is dropped; the rest is passed to
// kubergrunt. Settings come from EKSUTIL_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/eksutil/internal/config"
	"github.com/imamik/eksutil/internal/launcher"
	"github.com/imamik/eksutil/internal/util/prerequisites"
)

func main() {
	if err := run(context.Background(), prerequisites.ForwardedArgs(os.Args, 2)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, forwarded []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	ctx = logr.NewContext(ctx, logger.WithName("find-and-run-kubergrunt"))

	return launcher.New(os.Stderr).Run(ctx, cfg, forwarded)
}
