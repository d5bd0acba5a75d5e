package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linecov/internal/config"
	"github.com/mouse-blink/linecov/internal/domain"
	m "github.com/mouse-blink/linecov/internal/model"
)

// reportFlags are shared by the report and run commands.
type reportFlags struct {
	root             string
	exclude          []string
	includeInternal  bool
	includeGenerated bool
	parallel         int
	summary          bool
	printReport      bool
	interactive      bool
	out              string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", ".", "directory inside the Go module to report on")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&f.includeInternal, "include-internal", false, "measure vendored and out-of-module files")
	cmd.Flags().BoolVar(&f.includeGenerated, "include-generated", false, "measure files with a \"Code generated\" header")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 4, "number of replay workers")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "print a per-file summary table after the report")
	cmd.Flags().BoolVar(&f.printReport, "print", true, "print the uncovered lines report")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "browse the results in a terminal UI")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "save a YAML snapshot of the results")
}

// args merges the loaded configuration with the flags set on cmd.
func (f *reportFlags) args(cmd *cobra.Command, profile m.Path) domain.ReportArgs {
	args := domain.ReportArgs{
		Profile:          profile,
		Root:             m.Path(f.root),
		Exclude:          cfg.Exclude,
		IncludeInternal:  cfg.IncludeInternal,
		IncludeGenerated: cfg.IncludeGenerated,
		Workers:          cfg.Parallel,
		Coverage:         cfg.Coverage,
		Format:           cfg.Format,
		Out:              m.Path(f.out),
	}

	flags := cmd.Flags()

	if flags.Changed("exclude") {
		args.Exclude = append(append([]string{}, cfg.Exclude...), f.exclude...)
	}

	if flags.Changed("include-internal") {
		args.IncludeInternal = f.includeInternal
	}

	if flags.Changed("include-generated") {
		args.IncludeGenerated = f.includeGenerated
	}

	if flags.Changed("parallel") {
		args.Workers = f.parallel
	}

	if flags.Changed("print") {
		args.Coverage.PrintCoverage = f.printReport
	}

	args.Display = f.summary || f.interactive || args.Format == config.FormatJSON

	return args
}

var reportOpts reportFlags

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <profile>",
		Short: "Report line coverage of a recorded cover profile",
		Long: `Replay a profile written by "go test -coverprofile" and print, for every
source file of the module, its line coverage followed by the lines that never ran.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf := workflowFor(cmd, reportOpts.interactive)
			return wf.Report(cmd.Context(), reportOpts.args(cmd, m.Path(args[0])))
		},
	}
	reportOpts.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
