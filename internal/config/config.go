package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/imamik/eksutil/internal/util/labels"
	"github.com/imamik/eksutil/internal/util/prerequisites"
)

// Config is the complete eksutil configuration.
type Config struct {
	LogLevel   string           `yaml:"logLevel"`
	LogFormat  string           `yaml:"logFormat"`
	Kubergrunt KubergruntConfig `yaml:"kubergrunt"`
	NodeLabels NodeLabelsConfig `yaml:"nodeLabels"`

	// Timeouts is populated from the environment only.
	Timeouts *Timeouts `yaml:"-"`
}

// KubergruntConfig controls how the launcher finds kubergrunt.
type KubergruntConfig struct {
	// InstallPath is checked before PATH. Relative paths are resolved
	// against the directory of the running executable.
	InstallPath string `yaml:"installPath"`

	// MinVersion is the oldest acceptable kubergrunt, with or without "v".
	MinVersion string `yaml:"minVersion"`
}

// NodeLabelsConfig controls the EC2 tag to node label mapping.
type NodeLabelsConfig struct {
	Namespace string `yaml:"namespace"`
	TagPrefix string `yaml:"tagPrefix"`

	// IMDSEndpoint and EC2Endpoint override the AWS endpoints. Empty uses
	// the SDK defaults.
	IMDSEndpoint string `yaml:"imdsEndpoint"`
	EC2Endpoint  string `yaml:"ec2Endpoint"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "auto",
		Kubergrunt: KubergruntConfig{
			InstallPath: DefaultKubergruntInstallPath,
			MinVersion:  prerequisites.KubergruntMinVersion,
		},
		NodeLabels: NodeLabelsConfig{
			Namespace: labels.DefaultNamespace,
		},
	}
}

// applyDefaults fills fields left empty by the config file.
func (c *Config) applyDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.Kubergrunt.InstallPath == "" {
		c.Kubergrunt.InstallPath = d.Kubergrunt.InstallPath
	}
	if c.Kubergrunt.MinVersion == "" {
		c.Kubergrunt.MinVersion = d.Kubergrunt.MinVersion
	}
	c.Kubergrunt.MinVersion = strings.TrimPrefix(c.Kubergrunt.MinVersion, "v")
	if c.NodeLabels.Namespace == "" {
		c.NodeLabels.Namespace = d.NodeLabels.Namespace
	}
}

// applyEnv overrides fields with any EKSUTIL_* variables that are set.
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		EnvLogLevel:              &c.LogLevel,
		EnvLogFormat:             &c.LogFormat,
		EnvKubergruntInstallPath: &c.Kubergrunt.InstallPath,
		EnvKubergruntMinVersion:  &c.Kubergrunt.MinVersion,
		EnvNodeLabelsNamespace:   &c.NodeLabels.Namespace,
		EnvNodeLabelsTagPrefix:   &c.NodeLabels.TagPrefix,
		EnvIMDSEndpoint:          &c.NodeLabels.IMDSEndpoint,
		EnvEC2Endpoint:           &c.NodeLabels.EC2Endpoint,
	}
	for env, field := range overrides {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			*field = val
		}
	}
}

// KubergruntTool returns the kubergrunt tool definition with the install
// path resolved against executableDir.
func (c *Config) KubergruntTool(executableDir string) prerequisites.Tool {
	return prerequisites.Kubergrunt(ResolveInstallPath(c.Kubergrunt.InstallPath, executableDir), c.Kubergrunt.MinVersion)
}

// ResolveInstallPath makes a relative install path absolute by joining it to
// baseDir. Absolute paths and an empty baseDir are returned unchanged.
func ResolveInstallPath(installPath, baseDir string) string {
	if installPath == "" || filepath.IsAbs(installPath) || baseDir == "" {
		return installPath
	}
	return filepath.Join(baseDir, installPath)
}

// ExecutableDir returns the directory of the running binary with symlinks
// resolved, so the install path is relative to the real install location.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
