// Package runner executes external tool processes (package managers,
// scaffold generators) to completion.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// CommandRunner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes the program with args in dir and blocks until the
	// process exits. A nonzero exit status is returned as an error;
	// the caller decides whether that is fatal.
	Run(ctx context.Context, program string, args []string, dir string) error
}

// OsRunner is the production implementation of CommandRunner. The
// spawned process inherits the user's terminal streams so scaffold
// tools can render their own output.
type OsRunner struct{}

func NewOsRunner() *OsRunner {
	return &OsRunner{}
}

func (r *OsRunner) Run(ctx context.Context, program string, args []string, dir string) error {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with status %d", program, exitErr.ExitCode())
		}
		return fmt.Errorf("error running %s: %w", program, err)
	}
	return nil
}
