// Package main is the entry point for the eksutil CLI.
//
// eksutil bundles the helpers used by the EKS cluster modules at apply and
// destroy time: a launcher that finds and version-checks kubergrunt before
// handing over to it, and a mapper that turns the instance's EC2 tags into
// kubelet node labels.
//
// Commands: find-and-run-kubergrunt, check-kubergrunt,
// map-ec2-tags-to-node-labels, version.
//
// For detailed usage information, run:
//
//	eksutil --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/eksutil/cmd/eksutil/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
