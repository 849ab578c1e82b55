package core

import (
	"fmt"

	"github.com/stackup-cli/stackup/catalog"
)

// FrontendSelection holds the frontend half of the user's choices.
type FrontendSelection struct {
	Framework catalog.FrontendFramework
	Tools     []catalog.Tool
}

// BackendSelection holds the backend half of the user's choices.
type BackendSelection struct {
	Framework catalog.BackendFramework
	Database  catalog.Database
	ORM       catalog.ORM
	Tools     []catalog.Tool
}

// Selection is the complete, validated set of user choices driving
// plan construction. It is built once from prompt results or a preset
// file and never mutated.
type Selection struct {
	ProjectName string
	ProjectType catalog.ProjectType
	Frontend    *FrontendSelection
	Backend     *BackendSelection
}

// DefaultSelection returns a Selection with default values.
func DefaultSelection() *Selection {
	return &Selection{
		ProjectName: "my-app",
		ProjectType: catalog.Fullstack,
		Frontend:    &FrontendSelection{Framework: catalog.React},
		Backend:     &BackendSelection{Framework: catalog.Express},
	}
}

// Validate checks the structural invariants: each branch is present
// exactly when the project type includes it, and an ORM is named
// exactly when the database selection defers to one.
func (s *Selection) Validate() error {
	if s.ProjectType.IncludesFrontend() != (s.Frontend != nil) {
		if s.Frontend == nil {
			return fmt.Errorf("project type %s requires a frontend selection", s.ProjectType)
		}
		return fmt.Errorf("project type %s does not take a frontend selection", s.ProjectType)
	}
	if s.ProjectType.IncludesBackend() != (s.Backend != nil) {
		if s.Backend == nil {
			return fmt.Errorf("project type %s requires a backend selection", s.ProjectType)
		}
		return fmt.Errorf("project type %s does not take a backend selection", s.ProjectType)
	}
	if s.Backend != nil {
		if s.Backend.Database == catalog.UseORM && s.Backend.ORM == catalog.ORMNone {
			return fmt.Errorf("database selection %q requires an ORM", catalog.UseORM)
		}
		if s.Backend.Database != catalog.UseORM && s.Backend.ORM != catalog.ORMNone {
			return fmt.Errorf("ORM %s is only meaningful with database selection %q", s.Backend.ORM, catalog.UseORM)
		}
	}
	return nil
}
