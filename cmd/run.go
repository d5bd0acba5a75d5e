package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linecov/internal/domain"
)

var runOpts reportFlags

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [packages...]",
		Short: "Run go test and report line coverage",
		Long: `Run "go test" with a cover profile over the given package patterns
(./... by default) and report the recorded trace. Failing tests are reported
after the coverage report and make the command exit non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf := workflowFor(cmd, runOpts.interactive)

			return wf.Run(cmd.Context(), domain.RunArgs{
				ReportArgs: runOpts.args(cmd, ""),
				Packages:   args,
			})
		},
	}
	runOpts.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
