package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackup-cli/stackup/core"
	"github.com/stackup-cli/stackup/logger"
)

var (
	startStyle = lipgloss.NewStyle().Faint(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBA08"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ConsolePublisher reports step progress as styled terminal lines. It
// deliberately stays line-oriented: RunCommand steps hand the terminal
// to the external process, so a full-screen progress UI would fight
// over the output.
type ConsolePublisher struct {
	logger logger.Logger
}

func NewConsolePublisher(l logger.Logger) *ConsolePublisher {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &ConsolePublisher{logger: l}
}

func (p *ConsolePublisher) StepStarted(step core.Step) {
	fmt.Println(startStyle.Render("… " + step.Describe()))
}

func (p *ConsolePublisher) StepDone(step core.Step, outcome core.Outcome) {
	switch outcome {
	case core.OutcomeAlreadyExists:
		fmt.Println(infoStyle.Render("• " + step.Describe() + " (already exists)"))
	default:
		fmt.Println(doneStyle.Render("✓ " + step.Describe()))
	}
}

func (p *ConsolePublisher) StepWarned(step core.Step, err error) {
	p.logger.Warn(fmt.Sprintf("Step warned: %s: %v", step.Describe(), err))
	fmt.Println(warnStyle.Render(fmt.Sprintf("! %s: %v (continuing)", step.Describe(), err)))
}

func (p *ConsolePublisher) StepFailed(step core.Step, err error) {
	p.logger.Error(fmt.Sprintf("Step failed: %s: %v", step.Describe(), err))
	fmt.Println(failStyle.Render(fmt.Sprintf("✗ %s: %v", step.Describe(), err)))
}
