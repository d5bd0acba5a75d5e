package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/linecov/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	got := animateScroll("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScroll scrolled = %q, want len 3 and not truncated", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "hello", width: 0, want: ""},
		{text: "hello", width: 10, want: "hello"},
		{text: "hello", width: 1, want: "…"},
		{text: "hello", width: 2, want: "h…"},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPercentColor(t *testing.T) {
	if percentColor(80) != "10" || percentColor(50) != "11" || percentColor(49.99) != "9" {
		t.Fatalf("unexpected thresholds")
	}
}

func TestCoverageModel_HandleCoverageMsgAndView(t *testing.T) {
	cm := newCoverageModel()
	if got := cm.View(); got != "Loading coverage…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	cm = cm.handleCoverageMsg(coverageMsg{files: sampleCoverages()})
	if !cm.rendered || cm.totalFiles != 2 || cm.totalLines != 5 || cm.uncovered != 1 {
		t.Fatalf("handleCoverageMsg did not set totals: %+v", cm)
	}

	if cm.lastSelected != 0 {
		t.Fatalf("lastSelected = %d, want 0", cm.lastSelected)
	}

	items := cm.fileList.Items()
	if first := items[0].(fileItem); first.path != "lib/empty.go" {
		t.Fatalf("first item = %q, want lib/empty.go", first.path)
	}

	cm.width = 80
	cm.height = 25

	view := cm.View()
	for _, want := range []string{"Line Coverage", "80.00%", "File Path"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	if cmd := cm.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}

	// force small height to hit min list height branch
	cm.height = 0
	cm.width = 20
	_ = cm.renderTable()
}

func TestCoverageModel_DetailView(t *testing.T) {
	cm := newCoverageModel()
	cm = cm.handleCoverageMsg(coverageMsg{files: sampleCoverages()})
	cm.width = 80
	cm.height = 30

	// move to src/app.go and open it
	model, _ := cm.Update(tea.KeyMsg{Type: tea.KeyDown})
	cm = model.(coverageModel)

	model, _ = cm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cm = model.(coverageModel)

	if cm.detail == nil || cm.detail.Path != "src/app.go" {
		t.Fatalf("enter did not open src/app.go detail: %+v", cm.detail)
	}

	view := cm.View()
	if !strings.Contains(view, "func Sub() {}") {
		t.Fatalf("detail view missing uncovered line text\n%s", view)
	}

	model, _ = cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	cm = model.(coverageModel)
	if cm.detailOffset != 0 {
		t.Fatalf("detailOffset = %d, want 0 for a single line", cm.detailOffset)
	}

	model, _ = cm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	cm = model.(coverageModel)
	if cm.detail != nil {
		t.Fatalf("esc did not close detail view")
	}
}

func TestCoverageModel_DetailScrolling(t *testing.T) {
	lines := make([]int, 20)
	for i := range lines {
		lines[i] = i + 1
	}

	cm := newCoverageModel()
	cm.height = 13 // page size 5
	cm.detail = &m.FileCoverage{Path: "big.go", TotalLines: 20, UncoveredLines: lines}

	for range 30 {
		model, _ := cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
		cm = model.(coverageModel)
	}

	if cm.detailOffset != 15 {
		t.Fatalf("detailOffset = %d, want 15", cm.detailOffset)
	}

	model, _ := cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	cm = model.(coverageModel)
	if cm.detailOffset != 0 {
		t.Fatalf("detailOffset after g = %d, want 0", cm.detailOffset)
	}

	model, _ = cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	cm = model.(coverageModel)
	if cm.detailOffset != 15 {
		t.Fatalf("detailOffset after G = %d, want 15", cm.detailOffset)
	}

	model, _ = cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	cm = model.(coverageModel)
	if cm.detailOffset != 14 {
		t.Fatalf("detailOffset after k = %d, want 14", cm.detailOffset)
	}

	_, cmd := cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd from detail view")
	}
}

func TestCoverageModel_UpdateBranches(t *testing.T) {
	cm := newCoverageModel()
	cm.rendered = true
	cm.fileList.SetItems([]list.Item{fileItem{path: "a", percentage: 1}})

	model, cmd := cm.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}
	updated := model.(coverageModel)
	if updated.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", updated.animOffset)
	}

	model, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated = model.(coverageModel)
	if updated.width != 100 || updated.height != 40 {
		t.Fatalf("window size not applied")
	}

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit cmd on ctrl+c")
	}

	updated.rendered = false
	model, _ = updated.Update(coverageMsg{files: []m.FileCoverage{{Path: "a", TotalLines: 1, Percentage: 100}}})
	if !model.(coverageModel).rendered {
		t.Fatalf("expected rendered after coverageMsg")
	}

	notRendered := newCoverageModel()
	if _, cmd := notRendered.Update(tickMsg(time.Now())); cmd != nil {
		t.Fatalf("tick before render should not reschedule")
	}
}

func TestCoverageDelegate_Render(t *testing.T) {
	delegate := coverageDelegate{offset: 0}
	items := []list.Item{fileItem{path: "path/to/file.go", percentage: 42}}
	lm := list.New(items, delegate, 40, 5)

	var buf bytes.Buffer
	delegate.Render(&buf, lm, 0, items[0])
	if !strings.Contains(buf.String(), "path") || !strings.Contains(buf.String(), "42.00%") {
		t.Fatalf("render output = %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, lm, 1, items[0])
	if buf.Len() == 0 {
		t.Fatalf("render output empty")
	}

	buf.Reset()
	delegate.Render(&buf, lm, 0, struct{ list.Item }{})
	if buf.Len() != 0 {
		t.Fatalf("render of foreign item wrote %q", buf.String())
	}

	if delegate.Height() != 1 || delegate.Spacing() != 0 {
		t.Fatalf("unexpected delegate dimensions")
	}
	if cmd := delegate.Update(nil, &lm); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}
}
