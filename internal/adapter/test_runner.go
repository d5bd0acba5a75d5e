package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	m "github.com/mouse-blink/linecov/internal/model"
)

// TestRunnerAdapter runs the Go test tool to record an execution trace.
type TestRunnerAdapter interface {
	// RunGoTest runs `go test -coverprofile=profile pkgs...` in dir and returns the
	// combined output. A failing test run returns the output together with an error.
	RunGoTest(ctx context.Context, dir m.Path, pkgs []string, profile m.Path) (string, error)
}

// LocalTestRunnerAdapter runs the go binary found on PATH.
type LocalTestRunnerAdapter struct {
	goBin string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{goBin: "go"}
}

// RunGoTest executes go test with a cover profile.
func (a *LocalTestRunnerAdapter) RunGoTest(ctx context.Context, dir m.Path, pkgs []string, profile m.Path) (string, error) {
	if len(pkgs) == 0 {
		pkgs = []string{"./..."}
	}

	args := append([]string{"test", "-covermode=set", "-coverprofile=" + string(profile)}, pkgs...)

	// #nosec G204 - arguments are package patterns passed by the user
	cmd := exec.CommandContext(ctx, a.goBin, args...)
	cmd.Dir = string(dir)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("go test failed: %w", err)
	}

	return out.String(), nil
}
