package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/linecov/internal/domain"
	m "github.com/mouse-blink/linecov/internal/model"
)

func TestViewCmd_Profile(t *testing.T) {
	mockWorkflow, stderr := newTestRoot(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Profile == m.Path("cover.out") &&
			args.Root == m.Path(".") &&
			args.Coverage.Enabled
	})).Return(nil)

	cmd.SetArgs([]string{"view", "cover.out"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_SnapshotWithExclude(t *testing.T) {
	mockWorkflow, stderr := newTestRoot(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ReportArgs) bool {
		return args.Profile == m.Path("coverage.yaml") &&
			len(args.Exclude) == 1 &&
			args.Exclude[0] == "^vendor/"
	})).Return(nil)

	cmd.SetArgs([]string{"view", "-x", "^vendor/", "coverage.yaml"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_Error(t *testing.T) {
	mockWorkflow, stderr := newTestRoot(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)

	mockWorkflow.On("View", mock.Anything, mock.Anything).Return(errors.New("parse snapshot coverage.yaml"))

	cmd.SetArgs([]string{"view", "coverage.yaml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse snapshot")
}
