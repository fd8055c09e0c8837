package config

// Environment variables read by Load.
const (
	EnvConfigFile            = "EKSUTIL_CONFIG"
	EnvLogLevel              = "EKSUTIL_LOG_LEVEL"
	EnvLogFormat             = "EKSUTIL_LOG_FORMAT"
	EnvKubergruntInstallPath = "EKSUTIL_KUBERGRUNT_INSTALL_PATH"
	EnvKubergruntMinVersion  = "EKSUTIL_KUBERGRUNT_MIN_VERSION"
	EnvNodeLabelsNamespace   = "EKSUTIL_NODE_LABELS_NAMESPACE"
	EnvNodeLabelsTagPrefix   = "EKSUTIL_NODE_LABELS_TAG_PREFIX"
	EnvIMDSEndpoint          = "EKSUTIL_IMDS_ENDPOINT"
	EnvEC2Endpoint           = "EKSUTIL_EC2_ENDPOINT"
)

// DefaultKubergruntInstallPath is where the eks-cluster-control-plane module
// installs kubergrunt, relative to the directory holding the launcher.
const DefaultKubergruntInstallPath = "../kubergrunt-installation/kubergrunt"
