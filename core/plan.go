package core

import (
	"fmt"
	"path"

	"github.com/stackup-cli/stackup/catalog"
)

// BuildPlan maps a validated Selection to the ordered step lists for
// both branches. It is a pure function: no I/O, no side effects, and
// the same Selection always yields structurally identical plans. A
// branch whose framework is None (or whose half of the selection is
// absent) gets an empty plan.
func BuildPlan(sel *Selection) (frontend, backend Plan) {
	return buildFrontendPlan(sel.Frontend), buildBackendPlan(sel.Backend)
}

func buildFrontendPlan(sel *FrontendSelection) Plan {
	plan := Plan{Branch: FrontendBranch}
	if sel == nil || sel.Framework == catalog.FrontendNone {
		return plan
	}
	root := FrontendBranch.String()

	plan.Steps = append(plan.Steps, CreateDirectory{Path: root})

	if tmpl, ok := catalog.ViteTemplate(sel.Framework); ok {
		plan.Steps = append(plan.Steps, RunCommand{
			Program: "npm",
			Args:    []string{"create", "vite@latest", ".", "--", "--template", tmpl},
			Dir:     root,
			Label:   fmt.Sprintf("Scaffolding %s app", sel.Framework),
		})
	}

	// Styling/build packages the template needs before its config files
	// can reference them.
	plan.Steps = append(plan.Steps, installSteps(root, catalog.ScaffoldExtras(sel.Framework), fmt.Sprintf("Installing %s packages", sel.Framework))...)

	for _, f := range catalog.FrontendFiles(sel.Framework) {
		plan.Steps = append(plan.Steps, WriteFile{Path: path.Join(root, f.Path), Content: f.Content})
	}

	plan.Steps = append(plan.Steps, installSteps(root, catalog.FrontendPackages(sel.Tools), "Installing frontend dependencies")...)

	plan.Steps = append(plan.Steps, WriteFile{Path: path.Join(root, ".env"), Content: catalog.FrontendEnv})
	return plan
}

func buildBackendPlan(sel *BackendSelection) Plan {
	plan := Plan{Branch: BackendBranch}
	if sel == nil || sel.Framework == catalog.BackendNone {
		return plan
	}
	root := BackendBranch.String()

	plan.Steps = append(plan.Steps, CreateDirectory{Path: root})

	plan.Steps = append(plan.Steps, RunCommand{
		Program: "npm",
		Args:    []string{"init", "-y"},
		Dir:     root,
		Label:   "Initializing backend package manifest",
	})

	pkgs := catalog.BackendPackages(sel.Framework, sel.Database, sel.ORM, sel.Tools)
	plan.Steps = append(plan.Steps, installSteps(root, pkgs, "Installing backend dependencies")...)

	if sel.Database == catalog.UseORM {
		for _, args := range catalog.ORMInitArgs(sel.ORM) {
			plan.Steps = append(plan.Steps, RunCommand{
				Program: "npx",
				Args:    args,
				Dir:     root,
				Label:   fmt.Sprintf("Initializing %s", sel.ORM),
			})
		}
	}

	server := catalog.ServerFile(sel.Framework, sel.Tools)
	plan.Steps = append(plan.Steps, WriteFile{Path: path.Join(root, server.Path), Content: server.Content})

	if sel.Framework.TypeScript() {
		tsconfig := catalog.TSConfigFile()
		plan.Steps = append(plan.Steps, WriteFile{Path: path.Join(root, tsconfig.Path), Content: tsconfig.Content})
	}

	plan.Steps = append(plan.Steps, RunCommand{
		Program: "npm",
		Args:    append([]string{"pkg", "set"}, catalog.ManifestScripts(sel.Framework, sel.Tools)...),
		Dir:     root,
		Label:   "Rewriting manifest scripts",
	})

	plan.Steps = append(plan.Steps, WriteFile{Path: path.Join(root, ".env"), Content: catalog.BackendEnv})
	return plan
}

// installSteps turns a package set into at most two install commands:
// one for runtime and one for development dependencies. Empty lists
// produce no step, keeping external invocations to a minimum.
func installSteps(dir string, pkgs catalog.PackageSet, label string) []Step {
	var steps []Step
	if len(pkgs.Runtime) > 0 {
		steps = append(steps, RunCommand{
			Program: "npm",
			Args:    append([]string{"install"}, pkgs.Runtime...),
			Dir:     dir,
			Label:   label,
		})
	}
	if len(pkgs.Dev) > 0 {
		steps = append(steps, RunCommand{
			Program: "npm",
			Args:    append([]string{"install", "-D"}, pkgs.Dev...),
			Dir:     dir,
			Label:   label + " (dev)",
		})
	}
	return steps
}
