package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stackup-cli/stackup/config"
	"github.com/stackup-cli/stackup/core"
	"github.com/stackup-cli/stackup/fs"
	"github.com/stackup-cli/stackup/logger"
	"github.com/stackup-cli/stackup/runner"
)

var rootCmd = &cobra.Command{
	Use:   "stackup",
	Short: "Stackup is a CLI tool for scaffolding fullstack projects",
	Long:  `Stackup scaffolds frontend and backend starter projects: it collects your framework, database, ORM and tooling choices, then creates the directories, installs the dependencies and writes the configuration files.`,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new project",
	Run: func(cmd *cobra.Command, args []string) {
		flags, err := parseNewFlags(cmd)
		if err != nil {
			fmt.Printf("Error parsing flags: %v\n", err)
			os.Exit(1)
		}
		if err := runNew(flags); err != nil {
			errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
			fmt.Println(errStyle.Render(fmt.Sprintf("Error: %v", err)))
			os.Exit(1)
		}
	},
}

type newFlags struct {
	name   string
	config string
	dir    string
	dryRun bool
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("name", "n", "", "The name of the project. Also used as the project directory name")
	newCmd.Flags().StringP("config", "c", "", "Path to a selection preset file (skips the prompts)")
	newCmd.Flags().StringP("dir", "d", ".", "Directory to scaffold into")
	newCmd.Flags().Bool("dry-run", false, "Print the planned steps without executing them")
}

func parseNewFlags(cmd *cobra.Command) (newFlags, error) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return newFlags{}, err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return newFlags{}, err
	}
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return newFlags{}, err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return newFlags{}, err
	}
	return newFlags{name: name, config: configPath, dir: dir, dryRun: dryRun}, nil
}

func runNew(flags newFlags) error {
	log := logger.GetLogger()
	if log == nil {
		log = logger.NewNullLogger()
	}

	sel, err := resolveSelection(flags)
	if err != nil {
		return err
	}
	if sel == nil {
		// Wizard aborted.
		return nil
	}
	if err := sel.Validate(); err != nil {
		return err
	}

	root := flags.dir
	if sel.ProjectName != "" {
		root = filepath.Join(flags.dir, sel.ProjectName)
	}

	frontendPlan, backendPlan := core.BuildPlan(sel)

	if flags.dryRun {
		printPlan(frontendPlan)
		printPlan(backendPlan)
		return nil
	}

	pub := NewConsolePublisher(log)
	exec := core.NewExecutor(fs.NewScopedOsFileSystem(root), runner.NewOsRunner(), pub, log, root)
	if err := exec.ExecuteAll(context.Background(), frontendPlan, backendPlan); err != nil {
		return err
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	fmt.Printf("Project scaffolded in %s\n", nameStyle.Render(root))
	return nil
}

// resolveSelection loads the selection from a preset file when one was
// given, or runs the interactive wizard. A nil selection with nil error
// means the user quit the wizard.
func resolveSelection(flags newFlags) (*core.Selection, error) {
	if flags.config != "" {
		sel, err := config.LoadSelection(flags.config)
		if err != nil {
			return nil, err
		}
		if flags.name != "" {
			sel.ProjectName = flags.name
		}
		return sel, nil
	}

	p := tea.NewProgram(newWizardModel(flags.name))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running prompts: %w", err)
	}
	m := final.(wizardModel)
	if m.aborted || m.phase != phaseDone {
		return nil, nil
	}
	return m.selection, nil
}

func printPlan(plan core.Plan) {
	if plan.Empty() {
		return
	}
	fmt.Printf("%s plan:\n", plan.Branch)
	for i, step := range plan.Steps {
		fmt.Printf("  %2d. %s\n", i+1, step.Describe())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
