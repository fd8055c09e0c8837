package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Stdio is the set of streams given to a spawned process.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// InheritedStdio returns the current process's own streams.
func InheritedStdio() Stdio {
	return Stdio{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Argv builds the argument vector for path: the path itself as argv[0]
// followed by args.
func Argv(path string, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	return append(argv, args...)
}

// Spawn runs path with argv[1:] as arguments and waits for it. The returned
// code is the child's exit code; err is only set when the child could not
// be started or did not exit normally.
func Spawn(ctx context.Context, path string, argv []string, stdio Stdio) (int, error) {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	// #nosec G204 - path is a resolved, version-checked tool binary
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("failed to run %s: %w", path, err)
}

// Handoff replaces the current process with path, passing argv unchanged.
// It only returns on failure.
func Handoff(path string, argv []string) error {
	return handoff(path, argv)
}
