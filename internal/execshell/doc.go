// Package execshell provides structured helpers for invoking the git CLI.
//
// It wraps os/exec with lifecycle logging via ShellExecutor, exposes
// OSCommandRunner for default process execution, and defines the abstractions
// relcut uses to run git in a testable manner.
package execshell
