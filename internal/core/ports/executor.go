// Package ports defines the core interfaces for the application.
package ports

import "context"

// Command describes an external program invocation.
type Command struct {
	// Name is the program to run (e.g., "git").
	Name string

	// Args are passed to the program verbatim.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// Executor defines the interface for running external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to finish.
	//
	// Output is streamed line by line to the logger, and to the telemetry
	// vertex carried by ctx when there is one.
	//
	// It returns an error annotated with the exit code if the program fails.
	Execute(ctx context.Context, cmd Command) error
}
