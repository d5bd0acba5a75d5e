// Package domain wires the coverage core to trace files, source loading and output.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/linecov/internal/adapter"
	"github.com/mouse-blink/linecov/internal/config"
	"github.com/mouse-blink/linecov/internal/controller"
	"github.com/mouse-blink/linecov/internal/coverage"
	"github.com/mouse-blink/linecov/internal/engine"
	m "github.com/mouse-blink/linecov/internal/model"
)

// ReportArgs describes one coverage report over a recorded trace.
type ReportArgs struct {
	// Profile is the Go cover profile to replay.
	Profile m.Path
	// Root is where the go.mod lookup starts; "." when empty.
	Root m.Path
	// Exclude lists regular expressions matched against report paths.
	Exclude []string
	// IncludeInternal measures vendored and out-of-module files too.
	IncludeInternal bool
	// IncludeGenerated measures files with a "Code generated" header too.
	IncludeGenerated bool
	// Workers bounds source loading and replay concurrency.
	Workers int
	// Coverage is the instrument configuration.
	Coverage coverage.Config
	// Format is config.FormatText or config.FormatJSON.
	Format string
	// Display hands the per-file results to the UI.
	Display bool
	// Out, when set, receives a YAML snapshot of the results.
	Out m.Path
}

// RunArgs runs the tests of Packages before reporting.
type RunArgs struct {
	ReportArgs

	Packages []string
}

// Workflow defines the coverage operations exposed to the CLI.
type Workflow interface {
	Report(ctx context.Context, args ReportArgs) error
	Run(ctx context.Context, args RunArgs) error
	// View browses a cover profile or a snapshot saved with ReportArgs.Out.
	View(ctx context.Context, args ReportArgs) error
}

// ResolverFactory builds the resolver for trace file names of a module. pkgs is
// empty when no package patterns are known.
type ResolverFactory func(root m.Path, modulePath string, pkgs []string) (adapter.PathResolver, error)

// DefaultResolverFactory resolves through go/packages when package patterns are
// known and by module prefix otherwise.
func DefaultResolverFactory(root m.Path, modulePath string, pkgs []string) (adapter.PathResolver, error) {
	if len(pkgs) == 0 {
		return adapter.NewModuleResolver(root, modulePath), nil
	}

	return adapter.NewPackagesResolver(root, modulePath, pkgs...)
}

// Option configures a workflow.
type Option func(*workflow)

// WithOutput sets where the text report is printed.
func WithOutput(w io.Writer) Option {
	return func(wf *workflow) {
		wf.out = w
	}
}

// WithLogger sets the workflow logger.
func WithLogger(logger *slog.Logger) Option {
	return func(wf *workflow) {
		wf.logger = logger
	}
}

// WithResolverFactory replaces DefaultResolverFactory.
func WithResolverFactory(factory ResolverFactory) Option {
	return func(wf *workflow) {
		wf.resolvers = factory
	}
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	goAdapter adapter.GoFileAdapter
	profiles  adapter.ProfileAdapter
	store     adapter.ReportStore
	orch      Orchestrator
	ui        controller.UI
	resolvers ResolverFactory
	out       io.Writer
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goAdapter adapter.GoFileAdapter,
	profiles adapter.ProfileAdapter,
	store adapter.ReportStore,
	orch Orchestrator,
	ui controller.UI,
	opts ...Option,
) Workflow {
	wf := &workflow{
		fsAdapter: fsAdapter,
		goAdapter: goAdapter,
		profiles:  profiles,
		store:     store,
		orch:      orch,
		ui:        ui,
		resolvers: DefaultResolverFactory,
		out:       os.Stdout,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(wf)
	}

	return wf
}

// Report replays args.Profile through the coverage instrument and prints the result.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	if !args.Coverage.Enabled {
		w.logger.Info("coverage disabled, nothing to report")
		return nil
	}

	root, modulePath, err := w.project(args.Root)
	if err != nil {
		return err
	}

	resolver, err := w.resolvers(root, modulePath, nil)
	if err != nil {
		return fmt.Errorf("build path resolver: %w", err)
	}

	return w.report(ctx, args, resolver)
}

// Run records a trace with go test and reports it. Failing tests are returned as
// an error after the report has been produced.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if !args.Coverage.Enabled {
		w.logger.Info("coverage disabled, nothing to run")
		return nil
	}

	root, modulePath, err := w.project(args.Root)
	if err != nil {
		return err
	}

	pkgs := args.Packages
	if len(pkgs) == 0 {
		pkgs = []string{"./..."}
	}

	trace, err := w.orch.RecordTrace(ctx, root, pkgs)
	if err != nil {
		return fmt.Errorf("record trace: %w", err)
	}
	defer w.orch.Release(trace)

	if trace.TestErr != nil {
		w.ui.DisplayTestOutput(trace.Output)
	}

	resolver, err := w.resolvers(root, modulePath, pkgs)
	if err != nil {
		return fmt.Errorf("build path resolver: %w", err)
	}

	reportArgs := args.ReportArgs
	reportArgs.Profile = trace.Profile
	reportArgs.Root = root

	if err := w.report(ctx, reportArgs, resolver); err != nil {
		if trace.TestErr != nil {
			return fmt.Errorf("go test: %w", errors.Join(trace.TestErr, err))
		}

		return err
	}

	if trace.TestErr != nil {
		return fmt.Errorf("go test: %w", trace.TestErr)
	}

	return nil
}

// View opens the interactive browser without the text report. Profiles ending in
// .yaml or .yml are read as saved snapshots.
func (w *workflow) View(ctx context.Context, args ReportArgs) error {
	if isSnapshot(args.Profile) {
		snapshot, err := w.store.LoadSnapshot(args.Profile)
		if err != nil {
			return err
		}

		return w.ui.DisplayCoverage(snapshot.Files)
	}

	args.Coverage.PrintCoverage = false
	args.Out = ""
	args.Display = true

	return w.Report(ctx, args)
}

func (w *workflow) project(start m.Path) (m.Path, string, error) {
	if start == "" {
		start = "."
	}

	root, err := w.fsAdapter.FindProjectRoot(start)
	if err != nil {
		return "", "", fmt.Errorf("find project root: %w", err)
	}

	modulePath, err := w.fsAdapter.ModulePath(root)
	if err != nil {
		return "", "", fmt.Errorf("read module path: %w", err)
	}

	return root, modulePath, nil
}

func (w *workflow) report(ctx context.Context, args ReportArgs, resolver adapter.PathResolver) error {
	profiles, err := w.profiles.Parse(args.Profile)
	if err != nil {
		return err
	}

	units, err := w.loadUnits(ctx, profiles, resolver, args)
	if err != nil {
		return err
	}

	filter, err := engine.NewFilter(args.IncludeInternal, args.Exclude)
	if err != nil {
		return err
	}

	eng := engine.New(
		engine.WithFilter(filter),
		engine.WithWorkers(args.Workers),
		engine.WithLogger(w.logger),
	)

	inst := coverage.NewInstrument(
		coverage.Config{
			Enabled:       true,
			PrintCoverage: args.Coverage.PrintCoverage && args.Format != config.FormatJSON,
		},
		coverage.WithOutput(w.out),
		coverage.WithLogger(w.logger),
	)
	inst.Attach(eng)

	if _, err := eng.Run(ctx, units); err != nil {
		return fmt.Errorf("replay trace: %w", err)
	}

	if err := inst.Shutdown(); err != nil {
		return err
	}

	coverages := inst.Reporter().Coverages()

	if args.Out != "" {
		snapshot := adapter.Snapshot{
			Session:   inst.Session(),
			Generated: time.Now().UTC(),
			Profile:   args.Profile,
			Files:     coverages,
		}

		if err := w.store.SaveSnapshot(args.Out, snapshot); err != nil {
			return err
		}

		w.logger.Info("coverage snapshot saved", "path", args.Out, "files", len(coverages))
	}

	if !args.Display {
		return nil
	}

	return w.ui.DisplayCoverage(coverages)
}

func isSnapshot(path m.Path) bool {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// loadUnits reads the sources named by profiles concurrently. File names that do
// not belong to the project are skipped.
func (w *workflow) loadUnits(ctx context.Context, profiles []m.FileProfile, resolver adapter.PathResolver, args ReportArgs) ([]engine.Unit, error) {
	loaded := make([]*engine.Unit, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	if args.Workers > 0 {
		g.SetLimit(args.Workers)
	}

	for i, profile := range profiles {
		resolved, err := resolver.Resolve(profile.FileName)
		if errors.Is(err, adapter.ErrUnresolved) {
			w.logger.Debug("skipping unresolved file", "file", profile.FileName)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", profile.FileName, err)
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if !args.IncludeGenerated && w.generated(resolved.Path) {
				w.logger.Debug("skipping generated file", "file", resolved.Display)
				return nil
			}

			internal := resolved.Internal && !args.IncludeInternal

			source, err := w.fsAdapter.LoadSource(resolved.Path, resolved.Display, internal)
			if err != nil {
				return err
			}

			loaded[i] = &engine.Unit{Source: source, Blocks: profile.Blocks}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	units := make([]engine.Unit, 0, len(loaded))

	for _, unit := range loaded {
		if unit != nil {
			units = append(units, *unit)
		}
	}

	return units, nil
}

func (w *workflow) generated(path m.Path) bool {
	generated, err := w.goAdapter.IsGenerated(path, nil)
	if err != nil {
		w.logger.Debug("cannot parse source header", "file", path, "error", err)
		return false
	}

	return generated
}
