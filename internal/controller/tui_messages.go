package controller

import (
	"time"

	m "github.com/mouse-blink/linecov/internal/model"
)

// Message types.
type tickMsg time.Time

type coverageMsg struct {
	files []m.FileCoverage
}

// List item types.
type fileItem struct {
	path       string
	percentage float64
	total      int
	uncovered  int
}

func (f fileItem) FilterValue() string {
	return f.path
}

func newFileItem(c m.FileCoverage) fileItem {
	return fileItem{
		path:       string(c.Path),
		percentage: c.Percentage,
		total:      c.TotalLines,
		uncovered:  c.UncoveredCount(),
	}
}
