package controller

import (
	"bytes"
	"strings"
	"testing"
)

func TestTUI_DisplayCoverage_StaticWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayCoverage(sampleCoverages()); err != nil {
		t.Fatalf("DisplayCoverage() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Line Coverage", "src/app.go", "lib/empty.go", "80.00%"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayCoverage_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayCoverage(nil); err != nil {
		t.Fatalf("DisplayCoverage() error = %v", err)
	}

	if got := buf.String(); got != "No coverage data\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestTUI_DisplayTestOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayTestOutput("")
	tui.DisplayTestOutput("PASS\n")

	if got := buf.String(); got != "PASS\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestFileItem_FilterValue(t *testing.T) {
	item := fileItem{path: "path/to/file.go", percentage: 50}
	if got := item.FilterValue(); got != item.path {
		t.Fatalf("FilterValue() = %q, want %q", got, item.path)
	}
}
