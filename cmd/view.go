package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linecov/internal/domain"
	m "github.com/mouse-blink/linecov/internal/model"
)

var viewRootFlag string
var viewExcludeFlags []string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <profile|snapshot>",
		Short: "Browse line coverage interactively",
		Long: `Open a terminal browser over a cover profile, or over a snapshot saved
with "report --out" when the file ends in .yaml or .yml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exclude := cfg.Exclude
			if cmd.Flags().Changed("exclude") {
				exclude = append(append([]string{}, cfg.Exclude...), viewExcludeFlags...)
			}

			wf := workflowFor(cmd, true)

			return wf.View(cmd.Context(), domain.ReportArgs{
				Profile:          m.Path(args[0]),
				Root:             m.Path(viewRootFlag),
				Exclude:          exclude,
				IncludeInternal:  cfg.IncludeInternal,
				IncludeGenerated: cfg.IncludeGenerated,
				Workers:          cfg.Parallel,
				Coverage:         cfg.Coverage,
				Format:           cfg.Format,
			})
		},
	}
	cmd.Flags().StringVar(&viewRootFlag, "root", ".", "directory inside the Go module to report on")
	cmd.Flags().StringArrayVarP(&viewExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
