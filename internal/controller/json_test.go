package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linecov/internal/model"
)

func TestJSONUI_DisplayCoverage(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONUI(&buf).DisplayCoverage(sampleCoverages()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "lib/empty.go", got[0]["path"])
	assert.Equal(t, "src/app.go", got[1]["path"])
	assert.Equal(t, []any{float64(5)}, got[1]["uncovered_lines"])
	assert.InDelta(t, 80.0, got[1]["percentage"], 1e-9)
	assert.NotContains(t, got[1], "Source")
}

func TestJSONUI_EmptyUncoveredIsArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONUI(&buf).DisplayCoverage([]m.FileCoverage{{Path: "a.go", TotalLines: 1, Percentage: 100}}))
	assert.Contains(t, buf.String(), `"uncovered_lines": []`)

	buf.Reset()
	require.NoError(t, NewJSONUI(&buf).DisplayCoverage(nil))
	assert.Equal(t, "[]\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestJSONUI_WriteError(t *testing.T) {
	err := NewJSONUI(brokenWriter{}).DisplayCoverage(sampleCoverages())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode coverage")
}
