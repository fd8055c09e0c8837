package prerequisites

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"

	"github.com/imamik/eksutil/internal/util/version"
)

// Source records where a tool was found.
type Source string

const (
	// SourceInstallPath means the tool came from Tool.InstallPath.
	SourceInstallPath Source = "install-path"

	// SourcePath means the tool came from a PATH search.
	SourcePath Source = "PATH"
)

// Resolution is a usable tool binary.
type Resolution struct {
	Tool    Tool
	Path    string
	Version string
	Source  Source
}

// Resolver finds tool binaries and checks their versions.
type Resolver struct {
	lookPath   func(file string) (string, error)
	isFile     func(path string) bool
	runVersion func(ctx context.Context, path, flag string) ([]byte, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookPath replaces the PATH search.
func WithLookPath(fn func(file string) (string, error)) Option {
	return func(r *Resolver) {
		r.lookPath = fn
	}
}

// WithFileCheck replaces the install path existence check.
func WithFileCheck(fn func(path string) bool) Option {
	return func(r *Resolver) {
		r.isFile = fn
	}
}

// WithVersionRunner replaces the command used to probe versions. It must
// return the probe's standard output.
func WithVersionRunner(fn func(ctx context.Context, path, flag string) ([]byte, error)) Option {
	return func(r *Resolver) {
		r.runVersion = fn
	}
}

// NewResolver creates a Resolver backed by the real filesystem and PATH.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		lookPath:   exec.LookPath,
		isFile:     isRegularFile,
		runVersion: runVersionCommand,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Find locates the tool binary. The install path always wins over PATH,
// even when PATH holds a binary of the same name.
func (r *Resolver) Find(tool Tool) (string, Source, error) {
	if tool.InstallPath != "" && r.isFile(tool.InstallPath) {
		return tool.InstallPath, SourceInstallPath, nil
	}

	path, err := r.lookPath(tool.Name)
	if err != nil || path == "" {
		return "", "", fmt.Errorf("%w: %s is not at %q and not in PATH", ErrNotFound, tool.Name, tool.InstallPath)
	}
	return path, SourcePath, nil
}

// Resolve finds the tool, probes its version and checks it against
// Tool.MinVersion.
func (r *Resolver) Resolve(ctx context.Context, tool Tool) (*Resolution, error) {
	logger := logr.FromContextOrDiscard(ctx).WithValues("tool", tool.Name)

	path, source, err := r.Find(tool)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("found tool", "path", path, "source", source)

	flag := tool.VersionFlag
	if flag == "" {
		flag = DefaultVersionFlag
	}

	// #nosec G204 - path is a resolved tool binary, flag comes from the Tool definition
	out, err := r.runVersion(ctx, path, flag)
	if err != nil {
		return nil, &ProbeError{Path: path, Output: string(out), Err: err}
	}

	v, err := ParseVersion(string(out))
	if err != nil {
		return nil, &ProbeError{Path: path, Output: string(out)}
	}
	logger.V(1).Info("probed tool version", "version", v, "minVersion", tool.MinVersion)

	if tool.MinVersion != "" && !version.AtLeast(v, tool.MinVersion) {
		return nil, &VersionError{Path: path, Version: v, MinVersion: tool.MinVersion}
	}

	return &Resolution{Tool: tool, Path: path, Version: v, Source: source}, nil
}

// ParseVersion extracts the version from --version output shaped like
// "<anything> v<version>". The text after the last " v" is the version.
func ParseVersion(output string) (string, error) {
	output = strings.TrimSpace(output)
	idx := strings.LastIndex(output, " v")
	if idx < 0 {
		return "", fmt.Errorf("no \" v\" marker in %q", output)
	}

	v := strings.TrimSpace(output[idx+len(" v"):])
	if v == "" {
		return "", fmt.Errorf("empty version in %q", output)
	}
	return v, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func runVersionCommand(ctx context.Context, path, flag string) ([]byte, error) {
	return exec.CommandContext(ctx, path, flag).Output()
}
