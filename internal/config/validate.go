package config

import (
	"fmt"
	"net/url"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/imamik/eksutil/internal/util/logging"
)

// Validate checks the configuration for common errors and returns a detailed error if validation fails.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatAuto, logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("logFormat %q must be one of auto, text, json", c.LogFormat)
	}

	if c.Kubergrunt.MinVersion == "" {
		return fmt.Errorf("kubergrunt.minVersion is required")
	}
	if strings.ContainsAny(c.Kubergrunt.MinVersion, " \t\n") {
		return fmt.Errorf("kubergrunt.minVersion %q must not contain whitespace", c.Kubergrunt.MinVersion)
	}

	if errs := validation.IsDNS1123Subdomain(c.NodeLabels.Namespace); len(errs) > 0 {
		return fmt.Errorf("nodeLabels.namespace %q is not a valid label prefix: %s",
			c.NodeLabels.Namespace, strings.Join(errs, "; "))
	}

	for name, endpoint := range map[string]string{
		"nodeLabels.imdsEndpoint": c.NodeLabels.IMDSEndpoint,
		"nodeLabels.ec2Endpoint":  c.NodeLabels.EC2Endpoint,
	} {
		if err := validateEndpoint(endpoint); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must use http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q has no host", endpoint)
	}
	return nil
}
