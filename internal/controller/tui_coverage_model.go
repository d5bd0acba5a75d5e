package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/linecov/internal/coverage"
	m "github.com/mouse-blink/linecov/internal/model"
)

const percentWidth = 8

// Simple delegate for coverage list items.
type coverageDelegate struct {
	offset int
}

func (d coverageDelegate) Height() int  { return 1 }
func (d coverageDelegate) Spacing() int { return 0 }
func (d coverageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d coverageDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var pathStyle, percentStyle lipgloss.Style

	var displayPath string

	width := m.Width() - percentWidth - 2

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(percentWidth).
			Align(lipgloss.Right)

		displayPath = animateScroll(file.path, width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		percentStyle = lipgloss.NewStyle().
			Foreground(percentColor(file.percentage)).
			Bold(true).
			Width(percentWidth).
			Align(lipgloss.Right)

		displayPath = truncateToWidth(file.path, width)
	}

	line := fmt.Sprintf("%s  %s",
		percentStyle.Render(coverage.FormatPercentage(file.percentage)+"%"),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func percentColor(p float64) lipgloss.Color {
	switch {
	case p >= 80:
		return lipgloss.Color("10")
	case p >= 50:
		return lipgloss.Color("11")
	default:
		return lipgloss.Color("9")
	}
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// coverageModel browses per-file coverage. Enter opens the uncovered lines of the
// selected file.
type coverageModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     coverageDelegate
	files        map[string]m.FileCoverage
	totalFiles   int
	totalLines   int
	uncovered    int
	percentage   float64
	rendered     bool
	animOffset   int
	lastSelected int
	detail       *m.FileCoverage
	detailOffset int
}

func newCoverageModel() coverageModel {
	delegate := coverageDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return coverageModel{
		fileList:     fileList,
		delegate:     delegate,
		files:        map[string]m.FileCoverage{},
		lastSelected: -1,
	}
}

func (cm coverageModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (cm coverageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		cm.height = msg.Height
		cm.fileList.SetWidth(cm.width)

	case tickMsg:
		if cm.fileList.FilterState() != list.Filtering && cm.rendered {
			cm.animOffset++
			cm.delegate.offset = cm.animOffset
			cm.fileList.SetDelegate(cm.delegate)

			return cm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return cm, nil

	case tea.KeyMsg:
		if cm.detail != nil {
			return cm.handleDetailKey(msg)
		}

		return cm.handleListKey(msg)

	case coverageMsg:
		cm = cm.handleCoverageMsg(msg)
	}

	return cm, cmd
}

func (cm coverageModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := cm.fileList.FilterState() == list.Filtering

	switch msg.String() {
	case "ctrl+c":
		return cm, tea.Quit
	case "q":
		if !filtering {
			return cm, tea.Quit
		}
	case "enter":
		if !filtering {
			if item, ok := cm.fileList.SelectedItem().(fileItem); ok {
				file := cm.files[item.path]
				cm.detail = &file
				cm.detailOffset = 0
			}

			return cm, nil
		}
	}

	newList, cmd := cm.fileList.Update(msg)
	cm.fileList = newList

	// selection change restarts the scroll animation
	if cm.fileList.Index() != cm.lastSelected {
		cm.lastSelected = cm.fileList.Index()
		cm.animOffset = 0
		cm.delegate.offset = 0
		cm.fileList.SetDelegate(cm.delegate)
	}

	return cm, cmd
}

func (cm coverageModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return cm, tea.Quit
	case "esc", "enter", "backspace":
		cm.detail = nil
	case "down", "j":
		if cm.detailOffset < cm.maxDetailOffset() {
			cm.detailOffset++
		}
	case "up", "k":
		if cm.detailOffset > 0 {
			cm.detailOffset--
		}
	case "g", "home":
		cm.detailOffset = 0
	case "G", "end":
		cm.detailOffset = cm.maxDetailOffset()
	}

	return cm, nil
}

func (cm coverageModel) detailPageSize() int {
	size := cm.height - 8
	if size < 5 {
		size = 5
	}

	return size
}

func (cm coverageModel) maxDetailOffset() int {
	if cm.detail == nil {
		return 0
	}

	maxOff := len(cm.detail.UncoveredLines) - cm.detailPageSize()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (cm coverageModel) handleCoverageMsg(msg coverageMsg) coverageModel {
	sorted := sortedByPath(msg.files)

	items := make([]list.Item, 0, len(sorted))
	for _, c := range sorted {
		cm.files[string(c.Path)] = c
		items = append(items, newFileItem(c))
	}

	cm.totalFiles = len(sorted)
	cm.totalLines, cm.uncovered, cm.percentage = totals(sorted)

	cm.fileList.SetItems(items)
	cm.rendered = true

	if len(items) > 0 && cm.lastSelected == -1 {
		cm.lastSelected = 0
	}

	return cm
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func (cm coverageModel) summary() string {
	return summaryStyle.Render(fmt.Sprintf(
		"Coverage: %s   Files: %s   Lines: %s   Uncovered: %s",
		accentStyle.Render(coverage.FormatPercentage(cm.percentage)+"%"),
		accentStyle.Render(fmt.Sprintf("%d", cm.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", cm.totalLines)),
		accentStyle.Render(fmt.Sprintf("%d", cm.uncovered)),
	))
}

func (cm coverageModel) View() string {
	if !cm.rendered {
		return "Loading coverage…\n"
	}

	title := titleStyle.Render("Line Coverage")

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(cm.width)

	if cm.detail != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			cm.summary(),
			cm.renderDetail(),
			footerStyle.Render("↑/k up • ↓/j down • esc back • q quit"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		cm.summary(),
		cm.renderTable(),
		footerStyle.Render("↑/k up • ↓/j down • enter lines • / filter • q quit"),
	)
}

// staticView renders every file without paging, for output that is not a terminal.
func (cm coverageModel) staticView() string {
	if cm.totalFiles == 0 {
		return "No coverage data\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Line Coverage"))
	b.WriteString("\n")
	b.WriteString(cm.summary())
	b.WriteString("\n")

	for _, item := range cm.fileList.Items() {
		file, ok := item.(fileItem)
		if !ok {
			continue
		}

		percent := lipgloss.NewStyle().
			Foreground(percentColor(file.percentage)).
			Width(percentWidth).
			Align(lipgloss.Right).
			Render(coverage.FormatPercentage(file.percentage) + "%")

		fmt.Fprintf(&b, "  %s  %s\n", percent, file.path)
	}

	return b.String()
}

func (cm coverageModel) renderTable() string {
	listHeight := cm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := cm.width - 6

	cm.fileList.SetHeight(listHeight)
	cm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %s", percentWidth, "Coverage", "File Path"))

	return tableContainer().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			cm.fileList.View(),
		),
	)
}

func (cm coverageModel) renderDetail() string {
	file := cm.detail

	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n",
		accentStyle.Render(string(file.Path)),
		coverage.FormatPercentage(file.Percentage)+"%",
	)

	if len(file.UncoveredLines) == 0 {
		b.WriteString("All lines covered")
		return tableContainer().Render(b.String())
	}

	width := cm.width - 14

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(6).Align(lipgloss.Right)

	end := cm.detailOffset + cm.detailPageSize()
	if end > len(file.UncoveredLines) {
		end = len(file.UncoveredLines)
	}

	for _, n := range file.UncoveredLines[cm.detailOffset:end] {
		fmt.Fprintf(&b, "%s  %s\n", lineStyle.Render(fmt.Sprintf("%d", n)), truncateToWidth(file.LineText(n), width))
	}

	return tableContainer().Render(strings.TrimSuffix(b.String(), "\n"))
}

func tableContainer() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)
}
