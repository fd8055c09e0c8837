// Package process hands the current process over to another binary.
//
// On unix the process image is replaced with execve, so the caller's exit
// code is the target's exit code and nothing runs afterwards. Platforms
// without execve spawn the target with inherited stdio, wait for it and
// exit with its code.
package process
