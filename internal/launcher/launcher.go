package launcher

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/eksutil/internal/config"
	"github.com/imamik/eksutil/internal/platform/process"
	"github.com/imamik/eksutil/internal/util/prerequisites"
)

// ToolResolver resolves and version-gates a tool binary.
type ToolResolver interface {
	Resolve(ctx context.Context, tool prerequisites.Tool) (*prerequisites.Resolution, error)
}

// Launcher resolves kubergrunt from the configuration and runs it.
type Launcher struct {
	Resolver      ToolResolver
	ExecutableDir func() (string, error)
	Handoff       func(path string, argv []string) error

	// Stderr receives the remediation text when kubergrunt is unusable.
	Stderr io.Writer
}

// New returns a Launcher using the real resolver and process handoff.
func New(stderr io.Writer) *Launcher {
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Launcher{
		Resolver:      prerequisites.NewResolver(),
		ExecutableDir: config.ExecutableDir,
		Handoff:       process.Handoff,
		Stderr:        stderr,
	}
}

// Run resolves kubergrunt and replaces the current process with it, passing
// forwarded as its arguments. On success it does not return.
func (l *Launcher) Run(ctx context.Context, cfg *config.Config, forwarded []string) error {
	res, err := l.Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("handing off to kubergrunt",
		"path", res.Path, "version", res.Version, "args", forwarded)

	if err := l.Handoff(res.Path, process.Argv(res.Path, forwarded)); err != nil {
		return fmt.Errorf("failed to hand off to kubergrunt: %w", err)
	}
	return nil
}

// Resolve runs the resolver under the version probe timeout and prints the
// remediation text when kubergrunt is unusable.
func (l *Launcher) Resolve(ctx context.Context, cfg *config.Config) (*prerequisites.Resolution, error) {
	logger := logr.FromContextOrDiscard(ctx)

	dir, err := l.ExecutableDir()
	if err != nil {
		logger.Info("could not determine executable location, install path stays relative", "error", err.Error())
		dir = ""
	}
	tool := cfg.KubergruntTool(dir)

	timeouts := cfg.Timeouts
	if timeouts == nil {
		timeouts = config.LoadTimeouts()
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeouts.VersionProbe)
	defer cancel()

	res, err := l.Resolver.Resolve(probeCtx, tool)
	if err != nil {
		if prerequisites.IsUnusable(err) {
			_, _ = fmt.Fprintln(l.Stderr, prerequisites.RemediationMessage(tool.MinVersion))
		}
		return nil, fmt.Errorf("failed to find a usable kubergrunt: %w", err)
	}
	return res, nil
}
