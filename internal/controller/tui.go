package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/linecov/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	opts   []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, opts ...tea.ProgramOption) *TUI {
	return &TUI{output: output, opts: opts}
}

// DisplayCoverage opens the coverage browser. Output that is not a terminal gets a
// static rendering instead.
func (t *TUI) DisplayCoverage(coverages []m.FileCoverage) error {
	model := newCoverageModel()
	model = model.handleCoverageMsg(coverageMsg{files: coverages})

	if !IsTTY(t.output) || len(coverages) == 0 {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	opts := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.opts...)

	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("coverage viewer: %w", err)
	}

	return nil
}

// DisplayTestOutput prints the test run output before the viewer starts.
func (t *TUI) DisplayTestOutput(output string) {
	if output == "" {
		return
	}

	_, _ = fmt.Fprint(t.output, output)
}
