// Package prerequisites locates and version-gates external client tools.
//
// A [Tool] names a binary, an optional preferred install location and a
// minimum version. [Resolver.Resolve] prefers the install location, falls
// back to PATH, probes the binary's --version output and rejects anything
// older than the minimum. The kubergrunt launcher uses it before handing
// the process over to kubergrunt.
package prerequisites
