// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/eksutil/cmd/eksutil/handlers"
)

// globalOptions is bound to the root command's persistent flags.
var globalOptions handlers.GlobalOptions

// Handler entry points, swapped in tests.
var (
	runFindAndRunKubergrunt   = handlers.FindAndRunKubergrunt
	runCheckKubergrunt        = handlers.CheckKubergrunt
	runMapEC2TagsToNodeLabels = handlers.MapEC2TagsToNodeLabels
)

// Root returns the root command for the eksutil CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "eksutil",
		Short:         "Helpers for EKS cluster modules: kubergrunt launcher and EC2 tag node labels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&globalOptions.ConfigPath, "config", "c", "", "Path to configuration file (default: $EKSUTIL_CONFIG)")
	cmd.PersistentFlags().StringVar(&globalOptions.LogLevel, "log-level", "", "Logging verbosity: error, info, debug, trace (default: info)")

	cmd.AddCommand(FindAndRunKubergrunt())
	cmd.AddCommand(CheckKubergrunt())
	cmd.AddCommand(MapEC2TagsToNodeLabels())
	cmd.AddCommand(Version())

	return cmd
}
