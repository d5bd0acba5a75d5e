package coverage

import (
	"fmt"
	"io"
	"strconv"

	m "github.com/mouse-blink/linecov/internal/model"
)

// Report block markers.
const (
	sectionDelimiter = "=="
	uncoveredLabel   = "Lines not covered by execution:"
)

// Reporter turns registry state into line-level coverage and renders reports.
type Reporter struct {
	registry *Registry
}

// NewReporter creates a Reporter reading from registry.
func NewReporter(registry *Registry) *Reporter {
	return &Reporter{registry: registry}
}

// UncoveredLines returns the sorted line numbers of source that never executed.
func (r *Reporter) UncoveredLines(source m.Source) []int {
	return UncoveredLineNumbers(r.registry.UncoveredRegions(source))
}

// Coverage computes the line coverage of source.
func (r *Reporter) Coverage(source m.Source) m.FileCoverage {
	lines := r.UncoveredLines(source)

	return m.FileCoverage{
		Path:           source.Path(),
		TotalLines:     source.LineCount(),
		UncoveredLines: lines,
		Percentage:     CoveredPercentage(source.LineCount(), lines),
		Source:         source,
	}
}

// Coverages computes the coverage of every tracked source in registry order.
func (r *Reporter) Coverages() []m.FileCoverage {
	sources := r.registry.Sources()

	out := make([]m.FileCoverage, 0, len(sources))
	for _, source := range sources {
		out = append(out, r.Coverage(source))
	}

	return out
}

// PrintReport writes one report block per tracked source to w.
// The registry is snapshotted first, so concurrent executions do not affect a report
// that is being written. The first write error stops the report and is returned.
func (r *Reporter) PrintReport(w io.Writer) error {
	type entry struct {
		source   m.Source
		coverage m.FileCoverage
	}

	sources := r.registry.Sources()

	entries := make([]entry, 0, len(sources))
	for _, source := range sources {
		entries = append(entries, entry{source: source, coverage: r.Coverage(source)})
	}

	pw := &reportWriter{w: w}

	for _, e := range entries {
		pw.println(sectionDelimiter)
		pw.println("Coverage of " + string(e.coverage.Path) + " is " + FormatPercentage(e.coverage.Percentage) + "%")
		pw.println(uncoveredLabel)

		for _, line := range e.coverage.UncoveredLines {
			pw.println(strconv.Itoa(line) + " " + e.source.Line(line))
		}

		if pw.err != nil {
			return fmt.Errorf("write coverage report for %s: %w", e.coverage.Path, pw.err)
		}
	}

	return nil
}

// reportWriter remembers the first write error and drops every later write.
type reportWriter struct {
	w   io.Writer
	err error
}

func (p *reportWriter) println(s string) {
	if p.err != nil {
		return
	}

	_, p.err = io.WriteString(p.w, s+"\n")
}
