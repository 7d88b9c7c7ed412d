// Package app defines the runtime contract shared by the cmd/* entrypoints.
package app

// Runner is a process that runs until it is told to stop or fails.
type Runner interface {
	Run() error
}
