package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/linecov/internal/config"
	"github.com/mouse-blink/linecov/internal/domain"
	domainmocks "github.com/mouse-blink/linecov/internal/domain/mocks"
)

func newTestRoot(t *testing.T) (*domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, &bytes.Buffer{}
}

func TestRootCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd(), newRunCmd(), newViewCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "linecov")
	assert.Contains(t, out.String(), "report")
	assert.Contains(t, out.String(), "run")
	assert.Contains(t, out.String(), "view")
}

func TestRootCmd_LoadsConfigFile(t *testing.T) {
	mockWorkflow, stderr := newTestRoot(t)

	path := filepath.Join(t.TempDir(), "linecov.yaml")
	contents := `coverage:
  enable: true
  print_coverage: false
exclude:
  - _test\.go$
include_generated: true
parallel: 2
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)

	mockWorkflow.On("Report", mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Workers == 2 &&
			!args.Coverage.PrintCoverage &&
			args.Coverage.Enabled &&
			args.IncludeGenerated &&
			len(args.Exclude) == 1
	})).Return(nil)

	cmd.SetArgs([]string{"--config", path, "report", "cover.out"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	_, stderr := newTestRoot(t)

	path := filepath.Join(t.TempDir(), "linecov.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel: 0\n"), 0o600))

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--config", path, "report", "cover.out"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRootCmd_UnknownFormat(t *testing.T) {
	_, stderr := newTestRoot(t)

	cmd := newRootCmd()
	cmd.AddCommand(newReportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--format", "xml", "report", "cover.out"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestWorkflowFor_UsesOverride(t *testing.T) {
	mockWorkflow, _ := newTestRoot(t)

	assert.Same(t, mockWorkflow, workflowFor(newRootCmd(), false))
}

func TestWorkflowFor_BuildsWorkflow(t *testing.T) {
	originalWorkflow := workflow
	workflow = nil
	t.Cleanup(func() { workflow = originalWorkflow })

	cfg = config.Default()

	assert.NotNil(t, workflowFor(newRootCmd(), false))
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return errors.New("command failed")
			},
		}
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "error occurred")
}
