package config

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/imamik/eksutil/internal/util/logging"
)

// NewLogger builds the logger described by LogLevel and LogFormat, writing
// to out.
func (c *Config) NewLogger(out io.Writer) (logr.Logger, error) {
	return logging.New(logging.Options{
		Level:  c.LogLevel,
		Format: logging.Format(c.LogFormat),
		Output: out,
	})
}
