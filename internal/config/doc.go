// Package config defines the eksutil configuration model.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional YAML file (--config or EKSUTIL_CONFIG) and EKSUTIL_*
// environment variables. Timeouts are environment-only, see [LoadTimeouts].
package config
