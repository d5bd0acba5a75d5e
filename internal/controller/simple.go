package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linecov/internal/coverage"
	m "github.com/mouse-blink/linecov/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCoverage prints a summary table with one row per file.
func (s *SimpleUI) DisplayCoverage(coverages []m.FileCoverage) error {
	if len(coverages) == 0 {
		s.printf("No coverage data\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Uncovered", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, c := range sortedByPath(coverages) {
		table.Append([]string{
			string(c.Path),
			fmt.Sprintf("%d", c.TotalLines),
			fmt.Sprintf("%d", c.UncoveredCount()),
			coverage.FormatPercentage(c.Percentage) + "%",
		})
	}

	lines, uncovered, percentage := totals(coverages)

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(coverages)),
		fmt.Sprintf("%d", lines),
		fmt.Sprintf("%d", uncovered),
		coverage.FormatPercentage(percentage) + "%",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTestOutput echoes the test run output.
func (s *SimpleUI) DisplayTestOutput(output string) {
	if output == "" {
		return
	}

	s.printf("%s", output)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
