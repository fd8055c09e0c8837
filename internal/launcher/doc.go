// Package launcher finds a usable kubergrunt and hands the process over to it.
//
// It is shared by the eksutil find-and-run-kubergrunt and check-kubergrunt
// commands and by the standalone find-and-run-kubergrunt binary, so every
// entry point resolves, version-gates and reports kubergrunt the same way.
package launcher
