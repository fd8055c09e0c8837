//go:build unix

package process

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func handoff(path string, argv []string) error {
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}
