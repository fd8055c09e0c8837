package prerequisites

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemediationMessage(t *testing.T) {
	t.Parallel()
	msg := RemediationMessage("0.6.9")
	lines := strings.Split(msg, "\n")

	assert.Len(t, lines, 11)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "ERROR: Failed to find a usable Kubergrunt!", lines[1])
	assert.Equal(t, "Kubergrunt ~0.6.9 is required to handle various EKS cleanup tasks.", lines[3])
	assert.Equal(t,
		"* Run `gruntwork-install --binary-name \"kubergrunt\" --repo \"https://github.com/gruntwork-io/kubergrunt\" --tag \"v0.6.9\"`.",
		lines[7])
	assert.Equal(t, "Exiting.", lines[10])
}

func TestRemediationMessage_Parameterized(t *testing.T) {
	t.Parallel()
	msg := RemediationMessage("1.2.3")
	assert.Contains(t, msg, "Kubergrunt ~1.2.3")
	assert.Contains(t, msg, `--tag "v1.2.3"`)
	assert.NotContains(t, msg, "0.6.9")
}

func TestForwardedArgs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		skip int
		want []string
	}{
		{"drops script and separator", []string{"launcher", "--", "eks", "cleanup", "--region", "us-east-1"}, 2, []string{"eks", "cleanup", "--region", "us-east-1"}},
		{"separator only", []string{"launcher", "--"}, 2, []string{}},
		{"shorter than skip", []string{"launcher"}, 2, []string{}},
		{"subcommand args", []string{"--", "eks", "sync-core-components"}, 1, []string{"eks", "sync-core-components"}},
		{"separator content is irrelevant", []string{"anything", "x"}, 1, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ForwardedArgs(tt.args, tt.skip))
		})
	}
}

func TestForwardedArgs_Copies(t *testing.T) {
	t.Parallel()
	args := []string{"launcher", "--", "a"}
	out := ForwardedArgs(args, 2)
	out[0] = "changed"
	assert.Equal(t, "a", args[2])
}

func TestKubergrunt(t *testing.T) {
	t.Parallel()
	tool := Kubergrunt("/opt/kubergrunt", "")
	assert.Equal(t, KubergruntName, tool.Name)
	assert.Equal(t, KubergruntMinVersion, tool.MinVersion)
	assert.Equal(t, DefaultVersionFlag, tool.VersionFlag)
	assert.Equal(t, "/opt/kubergrunt", tool.InstallPath)

	assert.Equal(t, "0.8.0", Kubergrunt("", "0.8.0").MinVersion)
}
