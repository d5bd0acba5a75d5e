package adapter

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linecov/internal/model"
)

func TestLocalTestRunnerAdapter_MissingBinary(t *testing.T) {
	runner := &LocalTestRunnerAdapter{goBin: filepath.Join(t.TempDir(), "no-such-go")}

	_, err := runner.RunGoTest(context.Background(), m.Path(t.TempDir()), nil, "cover.out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go test failed")
}

func TestLocalTestRunnerAdapter_Cancelled(t *testing.T) {
	runner := NewLocalTestRunnerAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.RunGoTest(ctx, m.Path(t.TempDir()), []string{"./..."}, "cover.out")
	require.Error(t, err)
}

func TestLocalTestRunnerAdapter_RecordsProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go test")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go binary not on PATH")
	}

	runner := NewLocalTestRunnerAdapter()
	dir, err := filepath.Abs(filepath.Join("..", "..", "examples", "branches"))
	require.NoError(t, err)

	profile := filepath.Join(t.TempDir(), "cover.out")

	out, err := runner.RunGoTest(context.Background(), m.Path(dir), nil, m.Path(profile))
	require.NoError(t, err, out)

	profiles, err := NewLocalProfileAdapter().Parse(m.Path(profile))
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "github.com/mouse-blink/linecov/examples/branches/main.go", profiles[0].FileName)
	assert.NotEmpty(t, profiles[0].Blocks)
}
