// Package cmd provides the root command and CLI setup for linecov.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linecov/internal/adapter"
	"github.com/mouse-blink/linecov/internal/config"
	"github.com/mouse-blink/linecov/internal/controller"
	"github.com/mouse-blink/linecov/internal/domain"
)

// workflow overrides the workflow built from flags; tests set it to a mock.
var workflow domain.Workflow

var configFlag string
var formatFlag string
var verboseFlag bool

// cfg is loaded by the root command before any subcommand runs.
var cfg = config.Default()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linecov",
		Short: "Line coverage reports for Go test runs",
		Long: `linecov replays the execution trace recorded by "go test -coverprofile"
through a line coverage instrument and reports, per source file, the percentage
of lines that executed and the text of every line that did not.

  linecov run ./...            run the tests and report
  linecov report cover.out     report an existing profile
  linecov view cover.out       browse coverage interactively`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), verboseFlag)

			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("format") {
				loaded.Format = formatFlag
			}

			if err := loaded.Validate(); err != nil {
				return err
			}

			cfg = loaded

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultFile, "path to the configuration file")
	cmd.PersistentFlags().StringVar(&formatFlag, "format", config.FormatText, "output format: text or json")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// workflowFor returns the workflow override or wires the local adapters to a UI
// chosen from the output format.
func workflowFor(cmd *cobra.Command, interactive bool) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	logger := slog.Default()
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalGoFileAdapter(),
		adapter.NewLocalProfileAdapter(),
		adapter.NewReportStore(),
		domain.NewOrchestrator(fsAdapter, adapter.NewLocalTestRunnerAdapter(), logger),
		controller.NewUI(cmd, cfg.Format, interactive),
		domain.WithOutput(cmd.OutOrStdout()),
		domain.WithLogger(logger),
	)
}
