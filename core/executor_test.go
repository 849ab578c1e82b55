package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackup-cli/stackup/fs"
	"github.com/stackup-cli/stackup/logger"
)

// stubRunner records invocations and fails the programs it is told to.
type stubRunner struct {
	calls   []string
	failing map[string]bool
}

func newStubRunner(failing ...string) *stubRunner {
	f := make(map[string]bool)
	for _, name := range failing {
		f[name] = true
	}
	return &stubRunner{failing: f}
}

func (r *stubRunner) Run(ctx context.Context, program string, args []string, dir string) error {
	r.calls = append(r.calls, program)
	if r.failing[program] {
		return fmt.Errorf("%s exited with status 1", program)
	}
	return nil
}

// recordingPublisher collects the terminal state of every step.
type recordingPublisher struct {
	started []string
	done    []string
	skipped []string
	warned  []string
	failed  []string
}

func (p *recordingPublisher) StepStarted(step Step) { p.started = append(p.started, step.Describe()) }
func (p *recordingPublisher) StepDone(step Step, outcome Outcome) {
	if outcome == OutcomeAlreadyExists {
		p.skipped = append(p.skipped, step.Describe())
		return
	}
	p.done = append(p.done, step.Describe())
}
func (p *recordingPublisher) StepWarned(step Step, err error) {
	p.warned = append(p.warned, step.Describe())
}
func (p *recordingPublisher) StepFailed(step Step, err error) {
	p.failed = append(p.failed, step.Describe())
}

func newTestExecutor(fsys *fs.FileSystem, r *stubRunner, pub StepPublisher) *Executor {
	return NewExecutor(fsys, r, pub, logger.NewNullLogger(), ".")
}

func TestExecutorRunsAllSteps(t *testing.T) {
	memFS := fs.NewMemoryFileSystem()
	r := newStubRunner()
	pub := &recordingPublisher{}
	exec := newTestExecutor(memFS, r, pub)

	plan := Plan{Branch: FrontendBranch, Steps: []Step{
		CreateDirectory{Path: "frontend"},
		RunCommand{Program: "npm", Args: []string{"init", "-y"}, Dir: "frontend"},
		WriteFile{Path: "frontend/.env", Content: "VITE_API_URL=http://localhost:5000/api\n"},
	}}

	err := exec.Execute(context.Background(), plan)
	require.NoError(t, err)

	assert.True(t, memFS.IsDir("frontend"))
	assert.True(t, memFS.Exists("frontend/.env"))
	assert.Equal(t, []string{"npm"}, r.calls)
	assert.Len(t, pub.done, 3)
	assert.Empty(t, pub.failed)
}

func TestExecutorHaltsOnFatalCommand(t *testing.T) {
	memFS := fs.NewMemoryFileSystem()
	r := newStubRunner("npm")
	pub := &recordingPublisher{}
	exec := newTestExecutor(memFS, r, pub)

	plan := Plan{Branch: BackendBranch, Steps: []Step{
		CreateDirectory{Path: "backend"},
		RunCommand{Program: "npm", Args: []string{"install", "express"}, Dir: "backend"},
		WriteFile{Path: "backend/.env", Content: "PORT=5000\n"},
	}}

	err := exec.Execute(context.Background(), plan)
	require.Error(t, err)

	assert.False(t, memFS.Exists("backend/.env"), "steps after the fatal one must not execute")
	assert.Len(t, pub.failed, 1)
	assert.Len(t, pub.started, 2)
}

func TestExecutorFatalAbortsSubsequentPlans(t *testing.T) {
	memFS := fs.NewMemoryFileSystem()
	r := newStubRunner("npm")
	exec := newTestExecutor(memFS, r, &recordingPublisher{})

	frontend := Plan{Branch: FrontendBranch, Steps: []Step{
		CreateDirectory{Path: "frontend"},
		RunCommand{Program: "npm", Args: []string{"install"}, Dir: "frontend"},
	}}
	backend := Plan{Branch: BackendBranch, Steps: []Step{
		CreateDirectory{Path: "backend"},
	}}

	err := exec.ExecuteAll(context.Background(), frontend, backend)
	require.Error(t, err)
	assert.False(t, memFS.Exists("backend"), "backend plan must not start after a frontend fatal")
}

func TestExecutorDirectoryAlreadyExistsIsNotFatal(t *testing.T) {
	memFS := fs.NewMemoryFileSystem()
	require.NoError(t, memFS.Fs.MkdirAll("frontend", 0755))

	pub := &recordingPublisher{}
	exec := newTestExecutor(memFS, newStubRunner(), pub)

	plan := Plan{Branch: FrontendBranch, Steps: []Step{
		CreateDirectory{Path: "frontend"},
		WriteFile{Path: "frontend/.env", Content: "VITE_API_URL=x\n"},
	}}

	err := exec.Execute(context.Background(), plan)
	require.NoError(t, err)
	assert.Len(t, pub.skipped, 1)
	assert.True(t, memFS.Exists("frontend/.env"), "execution proceeds past an existing directory")
}

func TestExecutorDirectoryCreationFailureIsFatal(t *testing.T) {
	memFS := fs.NewMemoryFileSystem()
	// A file occupying the branch path makes directory creation fail.
	require.NoError(t, memFS.WriteFile("frontend", "in the way"))

	pub := &recordingPublisher{}
	exec := newTestExecutor(memFS, newStubRunner(), pub)

	plan := Plan{Branch: FrontendBranch, Steps: []Step{
		CreateDirectory{Path: "frontend"},
		WriteFile{Path: "frontend/.env", Content: "x"},
	}}

	err := exec.Execute(context.Background(), plan)
	require.Error(t, err)
	assert.Len(t, pub.failed, 1)
}

func TestExecutorWriteFailureIsNotFatal(t *testing.T) {
	roFS := &fs.FileSystem{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs())}
	r := newStubRunner()
	pub := &recordingPublisher{}
	exec := newTestExecutor(roFS, r, pub)

	plan := Plan{Branch: BackendBranch, Steps: []Step{
		WriteFile{Path: "backend/server.js", Content: "content"},
		RunCommand{Program: "npm", Args: []string{"pkg", "set", "scripts.start=node server.js"}, Dir: "backend"},
	}}

	err := exec.Execute(context.Background(), plan)
	require.NoError(t, err, "a failed write must not abort the run")
	assert.Len(t, pub.warned, 1)
	assert.Equal(t, []string{"npm"}, r.calls, "subsequent steps still execute")
}

func TestExecutorCancelledContext(t *testing.T) {
	memFS := fs.NewMemoryFileSystem()
	exec := newTestExecutor(memFS, newStubRunner(), &recordingPublisher{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := Plan{Branch: FrontendBranch, Steps: []Step{
		CreateDirectory{Path: "frontend"},
	}}

	err := exec.Execute(ctx, plan)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, memFS.Exists("frontend"))
}

func TestExecutorEmptyPlan(t *testing.T) {
	exec := newTestExecutor(fs.NewMemoryFileSystem(), newStubRunner(), &recordingPublisher{})
	err := exec.Execute(context.Background(), Plan{Branch: FrontendBranch})
	assert.NoError(t, err)
}
