// Package exitcode defines the process exit codes of the egfrchart CLI.
package exitcode

const (
	Success      = 0
	UsageError   = 1
	InvalidInput = 2
	RenderError  = 3
	WriteError   = 4
)
