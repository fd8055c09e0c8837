//go:build !unix

package process

import (
	"context"
	"os"
)

func handoff(path string, argv []string) error {
	code, err := Spawn(context.Background(), path, argv, InheritedStdio())
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}
