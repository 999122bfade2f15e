package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ethanolliesCODE/aim-warmup/internal/stats"
)

const (
	tabOverview = iota
	tabSamples
)

const plotHeight = 6

var gradeColors = map[stats.Grade]lipgloss.Color{
	stats.GradeS: lipgloss.Color("#C89A3A"),
	stats.GradeA: lipgloss.Color("#52C41A"),
	stats.GradeB: lipgloss.Color("#40A9FF"),
	stats.GradeC: lipgloss.Color("#FAAD14"),
	stats.GradeD: lipgloss.Color("#FF4D4F"),
}

// resultsView renders the graded report in tabs.
type resultsView struct {
	report    stats.Report
	tabs      []string
	activeTab int
	viewports []viewport.Model
	samples   table.Model

	width  int
	height int
}

func newResultsView(report stats.Report, width, height int) *resultsView {
	r := &resultsView{
		report: report,
		tabs:   []string{"Overview", "Samples"},
	}
	r.viewports = make([]viewport.Model, len(r.tabs))
	for i := range r.viewports {
		r.viewports[i] = viewport.New(0, 0)
	}
	r.samples = buildSamplesTable(report, 1)
	r.setSize(width, height)
	return r
}

func (r *resultsView) tabsHeight() int {
	return max(lipgloss.Height(activeNavStyle.Render("X")), 1)
}

// setSize lays the view out in width x height cells, excluding the help line.
func (r *resultsView) setSize(width, height int) {
	r.width = width
	r.height = height
	bodyHeight := max(height-r.tabsHeight()-1, 1)
	for i := range r.viewports {
		r.viewports[i].Width = width
		r.viewports[i].Height = bodyHeight
	}
	r.samples.SetWidth(width)
	r.samples.SetHeight(max(bodyHeight-1, 1))
	r.renderContents()
}

func (r *resultsView) renderContents() {
	width := r.width
	if width <= 0 {
		width = 80
	}
	r.viewports[tabOverview].SetContent(renderOverview(r.report, width))
}

func (r *resultsView) moveTab(delta int) {
	count := len(r.tabs)
	r.activeTab = (r.activeTab + delta + count) % count
	if r.activeTab == tabSamples {
		r.samples.Focus()
	} else {
		r.samples.Blur()
	}
}

func (r *resultsView) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if r.activeTab == tabSamples {
		r.samples, cmd = r.samples.Update(msg)
		return cmd
	}
	r.viewports[r.activeTab], cmd = r.viewports[r.activeTab].Update(msg)
	return cmd
}

func (r *resultsView) renderTabs() string {
	parts := make([]string, 0, len(r.tabs))
	for i, tab := range r.tabs {
		if i == r.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *resultsView) view() string {
	tabs := fitLines(r.renderTabs(), r.width, r.tabsHeight())
	title := headerStyle.Render(truncateLine(fmt.Sprintf("Results · %d min session · %s", r.report.DurationMinutes, r.report.SessionID), r.width))
	bodyHeight := max(r.height-r.tabsHeight()-1, 1)
	var body string
	if r.activeTab == tabSamples {
		body = tableMutedStyle.Render(r.samples.View())
	} else {
		body = r.viewports[r.activeTab].View()
	}
	return strings.Join([]string{tabs, fitLines(title, r.width, 1), fitLines(body, r.width, bodyHeight)}, "\n")
}

func renderOverview(report stats.Report, width int) string {
	if len(report.Entries) == 0 {
		return "No drills completed."
	}
	cards := make([]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		cards = append(cards, gradeCard(e))
	}
	summary := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(summary) > width {
		summary = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	var buf bytes.Buffer
	if err := stats.RenderSamples(&buf, report, width, plotHeight, true); err != nil {
		return summary + "\n\n" + fmt.Sprintf("Failed to render samples: %v", err)
	}
	return strings.TrimRight(summary+"\n\n"+buf.String(), "\n")
}

func gradeCard(e stats.Entry) string {
	grade := cardValueStyle.Foreground(gradeColors[e.Grade]).Render(string(e.Grade))
	if e.Note != "" {
		grade += " " + pendingStyle.Render("("+e.Note+")")
	}
	lines := []string{cardTitleStyle.Render(e.Kind.Title()), grade}
	for _, s := range stats.StatLines(e.Result) {
		lines = append(lines, fmt.Sprintf("%s %s", cardTitleStyle.Render(s.Label), s.Value))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func buildSamplesTable(report stats.Report, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Reaction (ms)", Width: 14},
		{Title: "Hit (ms)", Width: 9},
	}
	reaction, hits := report.ReactionTimes(), report.HitTimes()
	count := max(len(reaction), len(hits))
	rows := make([]table.Row, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			sampleCell(reaction, i),
			sampleCell(hits, i),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	t.SetStyles(samplesTableStyles())
	return t
}

func sampleCell(values []int, i int) string {
	if i >= len(values) {
		return ""
	}
	return fmt.Sprintf("%d", values[i])
}

func samplesTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
