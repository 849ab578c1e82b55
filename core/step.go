package core

import (
	"fmt"
	"strings"
)

// Branch identifies the frontend or backend half of a scaffolding run.
type Branch int

const (
	FrontendBranch Branch = iota
	BackendBranch
)

var branchNames = map[Branch]string{
	FrontendBranch: "frontend",
	BackendBranch:  "backend",
}

func (b Branch) String() string { return branchNames[b] }

// Step is one planned action. Steps are immutable once planned; they
// carry no result until executed.
type Step interface {
	// Describe returns the label shown to the user while the step runs.
	Describe() string

	isStep()
}

// CreateDirectory creates a directory, tolerating one that already
// exists.
type CreateDirectory struct {
	Path string
}

func (s CreateDirectory) Describe() string { return fmt.Sprintf("Creating %s/", s.Path) }
func (CreateDirectory) isStep()            {}

// RunCommand runs an external program to completion in Dir (relative to
// the project root), with the user's terminal streams inherited.
type RunCommand struct {
	Program string
	Args    []string
	Dir     string
	Label   string
}

func (s RunCommand) Describe() string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("Running %s %s", s.Program, strings.Join(s.Args, " "))
}
func (RunCommand) isStep() {}

// WriteFile writes content to a path, overwriting any existing file.
type WriteFile struct {
	Path    string
	Content string
}

func (s WriteFile) Describe() string { return fmt.Sprintf("Writing %s", s.Path) }
func (WriteFile) isStep()            {}

// Plan is the ordered, side-effect-free list of steps for one branch.
type Plan struct {
	Branch Branch
	Steps  []Step
}

func (p Plan) Empty() bool { return len(p.Steps) == 0 }
