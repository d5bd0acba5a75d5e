package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/linecov/internal/adapter"
	m "github.com/mouse-blink/linecov/internal/model"
)

const profileName = "coverage.out"

// Trace is an execution trace recorded by running the project's tests.
type Trace struct {
	// Dir is the scratch directory holding the profile.
	Dir m.Path
	// Profile is the cover profile written by go test.
	Profile m.Path
	// Output is the combined go test output.
	Output string
	// TestErr is non-nil when go test exited with a failure. The profile may
	// still be usable when only some tests failed.
	TestErr error
}

// Orchestrator coordinates running the tests of a project in its root with a
// cover profile written to a temporary directory.
type Orchestrator interface {
	RecordTrace(ctx context.Context, root m.Path, pkgs []string) (Trace, error)
	Release(trace Trace)
}

type orchestrator struct {
	fsAdapter   adapter.SourceFSAdapter
	testAdapter adapter.TestRunnerAdapter
	logger      *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and test runner adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, testAdapter adapter.TestRunnerAdapter, logger *slog.Logger) Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		fsAdapter:   fsAdapter,
		testAdapter: testAdapter,
		logger:      logger,
	}
}

// RecordTrace runs go test for pkgs inside root. A failing test run is reported
// through Trace.TestErr; only workspace problems and cancellation return an error.
func (to *orchestrator) RecordTrace(ctx context.Context, root m.Path, pkgs []string) (Trace, error) {
	if root == "" {
		return Trace{}, fmt.Errorf("project root is empty")
	}

	tmpDir, err := to.fsAdapter.CreateTempDir("linecov-trace-*")
	if err != nil {
		return Trace{}, fmt.Errorf("failed to create temp dir: %w", err)
	}

	trace := Trace{
		Dir:     tmpDir,
		Profile: to.fsAdapter.JoinPath(string(tmpDir), profileName),
	}

	to.logger.Debug("running tests", "root", root, "packages", pkgs, "profile", trace.Profile)

	trace.Output, trace.TestErr = to.testAdapter.RunGoTest(ctx, root, pkgs, trace.Profile)

	if ctxErr := ctx.Err(); ctxErr != nil {
		to.Release(trace)
		return Trace{}, ctxErr
	}

	if trace.TestErr != nil {
		to.logger.Warn("tests failed", "error", trace.TestErr)
	}

	return trace, nil
}

// Release removes the scratch directory of trace, logging errors if cleanup fails.
func (to *orchestrator) Release(trace Trace) {
	if trace.Dir == "" {
		return
	}

	if err := to.fsAdapter.RemoveAll(trace.Dir); err != nil {
		to.logger.Warn("failed to remove trace directory", "dir", trace.Dir, "error", err)
	}
}
