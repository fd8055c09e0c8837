package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/eksutil/internal/launcher"
)

// newLauncher builds the kubergrunt launcher. Tests replace it.
var newLauncher = func() *launcher.Launcher { return launcher.New(stderr) }

// FindAndRunKubergrunt resolves kubergrunt and replaces the current process
// with it, passing forwarded as its arguments. On success it does not return.
func FindAndRunKubergrunt(ctx context.Context, opts GlobalOptions, forwarded []string) error {
	ctx, cfg, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	return newLauncher().Run(ctx, cfg, forwarded)
}

// CheckKubergrunt resolves kubergrunt exactly like FindAndRunKubergrunt and
// prints what it found instead of running it.
func CheckKubergrunt(ctx context.Context, opts GlobalOptions) error {
	ctx, cfg, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	res, err := newLauncher().Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "%s (v%s, %s)\n", res.Path, res.Version, res.Source)
	return nil
}
