package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linecov/internal/model"
)

func TestLocalReportStore_SaveAndLoadSnapshot(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "coverage.yaml"))
	rs := NewReportStore()

	content := "package main\n\nfunc main() {\n\tif run() != nil {\n\t\treturn\n\t}\n\tpanic(\"x\")\n\n}\n"

	snapshot := Snapshot{
		Session:   "7c1f4a52-3e0b-4c69-9d1e-2f6a8b0c4d11",
		Generated: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Profile:   "cover.out",
		Files: []m.FileCoverage{
			{
				Path:           "main.go",
				TotalLines:     9,
				UncoveredLines: []int{7, 8, 9},
				Percentage:     66.66666666666667,
				Source:         m.NewFile("main.go", []byte(content), false),
			},
		},
	}

	require.NoError(t, rs.SaveSnapshot(path, snapshot))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "uncovered_lines: [7, 8, 9]")
	assert.Contains(t, string(data), "session: 7c1f4a52-3e0b-4c69-9d1e-2f6a8b0c4d11")
	assert.NotContains(t, strings.ToLower(string(data)), "source:")

	loaded, err := rs.LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, snapshot.Session, loaded.Session)
	assert.Equal(t, snapshot.Profile, loaded.Profile)
	assert.True(t, snapshot.Generated.Equal(loaded.Generated))
	require.Len(t, loaded.Files, 1)

	file := loaded.Files[0]
	assert.Equal(t, m.Path("main.go"), file.Path)
	assert.Equal(t, 9, file.TotalLines)
	assert.Equal(t, []int{7, 8, 9}, file.UncoveredLines)
	assert.InDelta(t, 66.67, file.Percentage, 0.01)

	assert.Equal(t, "\tpanic(\"x\")", file.LineText(7))
	assert.Equal(t, "", file.LineText(8))
	assert.Equal(t, "}", file.LineText(9))
	assert.Equal(t, "", file.LineText(1))
}

func TestLocalReportStore_SnapshotWithoutSource(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "coverage.yaml"))
	rs := NewReportStore()

	snapshot := Snapshot{
		Profile: "cover.out",
		Files:   []m.FileCoverage{{Path: "gone.go", TotalLines: 3, UncoveredLines: []int{2}, Percentage: 66.67}},
	}

	require.NoError(t, rs.SaveSnapshot(path, snapshot))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "text:")
	assert.NotContains(t, string(data), "session:")

	loaded, err := rs.LoadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, loaded.Files, 1)
	assert.Equal(t, "", loaded.Files[0].LineText(2))
}

func TestLocalReportStore_LoadSnapshotErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := NewReportStore()

	_, err := rs.LoadSnapshot(m.Path(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read snapshot")

	bad := filepath.Join(dir, "bad.yaml")
	writeTestFile(t, bad, "files:\n  - path: a.go\n    colour: red\n")

	_, err = rs.LoadSnapshot(m.Path(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse snapshot")
}

func TestLocalReportStore_SaveSnapshotError(t *testing.T) {
	t.Parallel()

	err := NewReportStore().SaveSnapshot(m.Path(filepath.Join(t.TempDir(), "no", "such", "dir.yaml")), Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write snapshot")
}
