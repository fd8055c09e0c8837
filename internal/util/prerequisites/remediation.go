package prerequisites

import (
	"fmt"
	"strings"
)

// RemediationMessage returns the text shown when no usable kubergrunt could
// be resolved. It lists the three ways of getting minVersion installed.
func RemediationMessage(minVersion string) string {
	lines := []string{
		"",
		"ERROR: Failed to find a usable Kubergrunt!",
		"",
		fmt.Sprintf("Kubergrunt ~%s is required to handle various EKS cleanup tasks.", minVersion),
		"Normally it is installed when running `terraform plan` using this module.",
		"Do one of the following:",
		"* Re-run `terraform plan` with var.auto_install_kubergrunt and var.use_kubergrunt_verification enabled.",
		fmt.Sprintf("* Run `gruntwork-install --binary-name %q --repo %q --tag \"v%s\"`.", KubergruntName, KubergruntRepo, minVersion),
		fmt.Sprintf("* Download and install it manually from %s.", KubergruntRepo),
		"",
		"Exiting.",
	}
	return strings.Join(lines, "\n")
}

// ForwardedArgs returns the arguments after the first skip slots. The
// launcher is called as "<launcher> <separator> args...", so the separator
// slot is never forwarded.
func ForwardedArgs(args []string, skip int) []string {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(args) {
		return []string{}
	}
	out := make([]string, len(args)-skip)
	copy(out, args[skip:])
	return out
}
