package controller

import (
	"encoding/json"
	"fmt"
	"io"

	m "github.com/mouse-blink/linecov/internal/model"
)

// JSONUI writes coverage as a JSON array for scripting.
type JSONUI struct {
	output io.Writer
}

// NewJSONUI creates a new JSONUI writing to output.
func NewJSONUI(output io.Writer) *JSONUI {
	return &JSONUI{output: output}
}

// DisplayCoverage encodes coverages ordered by path.
func (j *JSONUI) DisplayCoverage(coverages []m.FileCoverage) error {
	sorted := sortedByPath(coverages)
	for i := range sorted {
		if sorted[i].UncoveredLines == nil {
			sorted[i].UncoveredLines = []int{}
		}
	}

	encoder := json.NewEncoder(j.output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(sorted); err != nil {
		return fmt.Errorf("encode coverage: %w", err)
	}

	return nil
}

// DisplayTestOutput is a no-op: the JSON stream carries coverage only.
func (j *JSONUI) DisplayTestOutput(string) {}
