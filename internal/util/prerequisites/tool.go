package prerequisites

// Tool represents a client tool that must be resolved before use.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// InstallPath is checked before PATH. Empty skips the check.
	InstallPath string

	// MinVersion is the lowest acceptable version, without a leading "v".
	// Empty disables the version gate.
	MinVersion string

	// VersionFlag is passed to the binary to make it print its version.
	VersionFlag string
}

const (
	// KubergruntName is the kubergrunt binary name.
	KubergruntName = "kubergrunt"

	// KubergruntMinVersion is the oldest kubergrunt able to run the EKS
	// cleanup tasks.
	KubergruntMinVersion = "0.6.9"

	// KubergruntRepo is where kubergrunt releases are published.
	KubergruntRepo = "https://github.com/gruntwork-io/kubergrunt"

	// DefaultVersionFlag is the flag used when Tool.VersionFlag is empty.
	DefaultVersionFlag = "--version"
)

// Kubergrunt returns the kubergrunt tool definition. An empty minVersion
// falls back to KubergruntMinVersion.
func Kubergrunt(installPath, minVersion string) Tool {
	if minVersion == "" {
		minVersion = KubergruntMinVersion
	}
	return Tool{
		Name:        KubergruntName,
		InstallPath: installPath,
		MinVersion:  minVersion,
		VersionFlag: DefaultVersionFlag,
	}
}
