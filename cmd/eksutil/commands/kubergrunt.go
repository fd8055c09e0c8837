package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var errMissingSeparator = errors.New(`kubergrunt arguments must follow "--", e.g. find-and-run-kubergrunt -- eks cleanup-security-group`)

// FindAndRunKubergrunt returns the command that execs kubergrunt.
//
// eksutil flags are parsed up to "--"; everything after it is passed to
// kubergrunt untouched.
func FindAndRunKubergrunt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-and-run-kubergrunt -- [kubergrunt args...]",
		Short: "Find a usable kubergrunt and run it with the given arguments",
		Long: `Find a usable kubergrunt and replace this process with it.

kubergrunt is looked up in the module install directory first
(../kubergrunt-installation/kubergrunt next to this binary, or
$EKSUTIL_KUBERGRUNT_INSTALL_PATH) and then in PATH. Versions older than
$EKSUTIL_KUBERGRUNT_MIN_VERSION (default 0.6.9) are rejected.

Everything after "--" is forwarded. The exit code is kubergrunt's own.

Examples:
  eksutil find-and-run-kubergrunt -- eks cleanup-security-group --eks-cluster-arn arn:aws:eks:...
  eksutil --log-level debug find-and-run-kubergrunt -- --version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			forwarded, err := kubergruntArgs(cmd, args)
			if err != nil {
				return err
			}
			return runFindAndRunKubergrunt(cmd.Context(), globalOptions, forwarded)
		},
	}

	// Stop at the first positional argument so kubergrunt flags are never
	// taken for ours.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// kubergruntArgs returns the arguments given after "--". Positional
// arguments before it are rejected.
func kubergruntArgs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if cmd.ArgsLenAtDash() != 0 {
		return nil, errMissingSeparator
	}
	return args, nil
}

// CheckKubergrunt returns the command that verifies the kubergrunt install.
func CheckKubergrunt() *cobra.Command {
	return &cobra.Command{
		Use:   "check-kubergrunt",
		Short: "Verify that a usable kubergrunt is installed",
		Long: `Resolve kubergrunt exactly like find-and-run-kubergrunt and print
its path, version and where it was found, without running it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckKubergrunt(cmd.Context(), globalOptions)
		},
	}
}
