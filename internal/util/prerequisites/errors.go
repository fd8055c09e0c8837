package prerequisites

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means neither the install path nor PATH had the tool.
	ErrNotFound = errors.New("tool not found")

	// ErrTooOld means the tool reported a version below the minimum.
	ErrTooOld = errors.New("tool version too old")

	// ErrProbeFailed means the version flag could not be run or its output
	// had no recognizable version.
	ErrProbeFailed = errors.New("version probe failed")
)

// ProbeError describes a failed version probe.
type ProbeError struct {
	Path   string
	Output string
	Err    error
}

func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: failed to probe version of %s: %v", ErrProbeFailed, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: no version in output of %s: %q", ErrProbeFailed, e.Path, e.Output)
}

func (e *ProbeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProbeFailed}
	}
	return []error{ErrProbeFailed, e.Err}
}

// VersionError is returned when a tool is older than required.
type VersionError struct {
	Path       string
	Version    string
	MinVersion string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: %s reports v%s, need at least v%s", ErrTooOld, e.Path, e.Version, e.MinVersion)
}

func (e *VersionError) Unwrap() error {
	return ErrTooOld
}

// IsUnusable reports whether err means the tool cannot be used at all, as
// opposed to an unrelated failure. All three resolver failures qualify.
func IsUnusable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrTooOld) || errors.Is(err, ErrProbeFailed)
}
