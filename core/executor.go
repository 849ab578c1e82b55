package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/stackup-cli/stackup/fs"
	"github.com/stackup-cli/stackup/logger"
	"github.com/stackup-cli/stackup/runner"
)

// Outcome is the terminal state of a non-fatal step.
type Outcome int

const (
	// OutcomeDone means the step performed its action.
	OutcomeDone Outcome = iota
	// OutcomeAlreadyExists means a directory-creation step found the
	// directory in place. Informational, not an error.
	OutcomeAlreadyExists
)

// StepPublisher receives progress notifications while a plan executes.
// It has no effect on control flow.
type StepPublisher interface {
	StepStarted(step Step)
	StepDone(step Step, outcome Outcome)
	// StepWarned reports a non-fatal failure; execution continues.
	StepWarned(step Step, err error)
	// StepFailed reports the fatal failure that aborts the run.
	StepFailed(step Step, err error)
}

type NullPublisher struct{}

func (NullPublisher) StepStarted(step Step)               {}
func (NullPublisher) StepDone(step Step, outcome Outcome) {}
func (NullPublisher) StepWarned(step Step, err error)     {}
func (NullPublisher) StepFailed(step Step, err error)     {}

// Executor walks plans in order, dispatching each step to the
// filesystem or the external command runner. Execution is strictly
// sequential; a fatal step aborts everything that follows.
type Executor struct {
	fs     *fs.FileSystem
	runner runner.CommandRunner
	pub    StepPublisher
	logger logger.Logger
	root   string
}

// NewExecutor creates an Executor. The filesystem is expected to be
// scoped to root; root itself is used to resolve command working
// directories.
func NewExecutor(fsys *fs.FileSystem, r runner.CommandRunner, pub StepPublisher, l logger.Logger, root string) *Executor {
	if pub == nil {
		pub = NullPublisher{}
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Executor{fs: fsys, runner: r, pub: pub, logger: l, root: root}
}

// ExecuteAll runs the given plans in order, frontend before backend.
// The first fatal error aborts the current plan and every subsequent
// one.
func (e *Executor) ExecuteAll(ctx context.Context, plans ...Plan) error {
	for _, plan := range plans {
		if err := e.Execute(ctx, plan); err != nil {
			return err
		}
	}
	return nil
}

// Execute consumes one plan, step by step. Command failures and
// directory-creation failures are fatal; file-write failures are
// reported and skipped. Artifacts of completed steps are left in place
// on failure.
func (e *Executor) Execute(ctx context.Context, plan Plan) error {
	if plan.Empty() {
		e.logger.Debug(fmt.Sprintf("No steps planned for %s branch", plan.Branch))
		return nil
	}
	e.logger.Info(fmt.Sprintf("Executing %s plan (%d steps)", plan.Branch, len(plan.Steps)))

	for _, step := range plan.Steps {
		select {
		case <-ctx.Done():
			e.logger.Info("Plan execution cancelled")
			return ctx.Err()
		default:
		}

		e.pub.StepStarted(step)
		e.logger.Debug(step.Describe())

		switch s := step.(type) {
		case CreateDirectory:
			created, err := e.fs.EnsureDir(s.Path)
			if err != nil {
				e.logger.Error(fmt.Sprintf("Failed to create directory %s: %v", s.Path, err))
				e.pub.StepFailed(step, err)
				return fmt.Errorf("creating directory %s: %w", s.Path, err)
			}
			if created {
				e.pub.StepDone(step, OutcomeDone)
			} else {
				e.logger.Info(fmt.Sprintf("Directory %s already exists", s.Path))
				e.pub.StepDone(step, OutcomeAlreadyExists)
			}

		case RunCommand:
			if err := e.runner.Run(ctx, s.Program, s.Args, filepath.Join(e.root, s.Dir)); err != nil {
				e.logger.Error(fmt.Sprintf("Command failed: %s: %v", step.Describe(), err))
				e.pub.StepFailed(step, err)
				return fmt.Errorf("%s: %w", step.Describe(), err)
			}
			e.pub.StepDone(step, OutcomeDone)

		case WriteFile:
			if err := e.fs.WriteFile(s.Path, s.Content); err != nil {
				e.logger.Warn(fmt.Sprintf("Failed to write %s: %v", s.Path, err))
				e.pub.StepWarned(step, err)
				continue
			}
			e.pub.StepDone(step, OutcomeDone)

		default:
			err := fmt.Errorf("unknown step type %T", step)
			e.pub.StepFailed(step, err)
			return err
		}
	}

	e.logger.Info(fmt.Sprintf("%s plan completed", plan.Branch))
	return nil
}
