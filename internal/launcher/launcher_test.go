package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/eksutil/internal/config"
	"github.com/imamik/eksutil/internal/util/prerequisites"
)

type resolverMock struct {
	res  *prerequisites.Resolution
	err  error
	tool prerequisites.Tool
}

func (m *resolverMock) Resolve(ctx context.Context, tool prerequisites.Tool) (*prerequisites.Resolution, error) {
	m.tool = tool
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("resolver called without a deadline")
	}
	return m.res, m.err
}

// newTestLauncher returns a launcher around mock that records handoffs
// instead of performing them.
func newTestLauncher(mock *resolverMock, handoffErr error) (*Launcher, *[]string, *bytes.Buffer) {
	var captured []string
	stderr := &bytes.Buffer{}
	l := &Launcher{
		Resolver:      mock,
		ExecutableDir: func() (string, error) { return filepath.FromSlash("/opt/eks/scripts"), nil },
		Handoff: func(path string, argv []string) error {
			captured = append([]string{"handoff:" + path}, argv...)
			return handoffErr
		},
		Stderr: stderr,
	}
	return l, &captured, stderr
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Timeouts = &config.Timeouts{VersionProbe: time.Second, Metadata: time.Second}
	return cfg
}

func TestNew(t *testing.T) {
	t.Parallel()
	l := New(nil)

	assert.NotNil(t, l.Resolver)
	assert.NotNil(t, l.ExecutableDir)
	assert.NotNil(t, l.Handoff)
	assert.NotNil(t, l.Stderr)
}

func TestRun_HandsOff(t *testing.T) {
	t.Parallel()
	mock := &resolverMock{res: &prerequisites.Resolution{
		Path:    "/opt/eks/kubergrunt-installation/kubergrunt",
		Version: "0.7.0",
		Source:  prerequisites.SourceInstallPath,
	}}
	l, captured, stderr := newTestLauncher(mock, nil)

	err := l.Run(context.Background(), testConfig(), []string{"eks", "cleanup-security-group", "--region", "us-west-2"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"handoff:/opt/eks/kubergrunt-installation/kubergrunt",
		"/opt/eks/kubergrunt-installation/kubergrunt",
		"eks", "cleanup-security-group", "--region", "us-west-2",
	}, *captured)
	assert.Empty(t, stderr.String())

	assert.Equal(t, prerequisites.KubergruntName, mock.tool.Name)
	assert.Equal(t, filepath.FromSlash("/opt/eks/kubergrunt-installation/kubergrunt"), mock.tool.InstallPath)
	assert.Equal(t, prerequisites.KubergruntMinVersion, mock.tool.MinVersion)
}

func TestRun_Unusable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		is   error
	}{
		{"not found", fmt.Errorf("%w: kubergrunt", prerequisites.ErrNotFound), prerequisites.ErrNotFound},
		{"too old", &prerequisites.VersionError{Path: "/bin/kubergrunt", Version: "0.5.0", MinVersion: "0.6.9"}, prerequisites.ErrTooOld},
		{"probe failed", &prerequisites.ProbeError{Path: "/bin/kubergrunt", Output: "garbage"}, prerequisites.ErrProbeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, captured, stderr := newTestLauncher(&resolverMock{err: tt.err}, nil)

			err := l.Run(context.Background(), testConfig(), []string{"eks"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)
			assert.Nil(t, *captured, "must not hand off")
			assert.Contains(t, stderr.String(), prerequisites.RemediationMessage(prerequisites.KubergruntMinVersion))
		})
	}
}

func TestRun_OtherErrorsSkipRemediation(t *testing.T) {
	t.Parallel()
	l, _, stderr := newTestLauncher(&resolverMock{err: context.DeadlineExceeded}, nil)

	err := l.Run(context.Background(), testConfig(), nil)
	require.Error(t, err)
	assert.NotContains(t, stderr.String(), "Failed to find a usable Kubergrunt")
}

func TestRun_HandoffFails(t *testing.T) {
	t.Parallel()
	l, _, _ := newTestLauncher(&resolverMock{res: &prerequisites.Resolution{Path: "/bin/kubergrunt", Version: "0.7.0"}}, errors.New("exec format error"))

	err := l.Run(context.Background(), testConfig(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec format error")
}

func TestResolve_ConfiguredMinVersion(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Kubergrunt.MinVersion = "0.8.1"
	cfg.Kubergrunt.InstallPath = "/custom/kubergrunt"
	mock := &resolverMock{err: prerequisites.ErrNotFound}
	l, _, stderr := newTestLauncher(mock, nil)

	_, err := l.Resolve(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, "0.8.1", mock.tool.MinVersion)
	assert.Equal(t, "/custom/kubergrunt", mock.tool.InstallPath)
	assert.Contains(t, stderr.String(), "Kubergrunt ~0.8.1 is required")
}

func TestResolve_ExecutableDirUnknown(t *testing.T) {
	t.Parallel()
	mock := &resolverMock{res: &prerequisites.Resolution{Path: "/bin/kubergrunt", Version: "0.7.0"}}
	l, _, _ := newTestLauncher(mock, nil)
	l.ExecutableDir = func() (string, error) { return "", errors.New("no /proc") }

	_, err := l.Resolve(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultKubergruntInstallPath, mock.tool.InstallPath)
}

func TestResolve_MissingTimeoutsUseDefaults(t *testing.T) {
	t.Parallel()
	mock := &resolverMock{res: &prerequisites.Resolution{Path: "/bin/kubergrunt", Version: "0.7.0"}}
	l, _, _ := newTestLauncher(mock, nil)
	cfg := config.Default()
	cfg.Timeouts = nil

	res, err := l.Resolve(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "/bin/kubergrunt", res.Path)
}
