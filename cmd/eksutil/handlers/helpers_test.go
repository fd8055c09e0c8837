package handlers

import (
	"bytes"
	"testing"

	"github.com/imamik/eksutil/internal/config"
)

// stubIO swaps stdout, stderr and the config loader for the duration of a
// test. Tests using it must not run in parallel.
func stubIO(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	origStdout, origStderr, origLoad := stdout, stderr, loadConfig
	t.Cleanup(func() {
		stdout, stderr, loadConfig = origStdout, origStderr, origLoad
	})

	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	stdout, stderr = out, errOut
	loadConfig = func(_ string) (*config.Config, error) {
		cfg := config.Default()
		cfg.LogFormat = "json"
		cfg.Timeouts = config.LoadTimeouts()
		return cfg, nil
	}
	return out, errOut
}
