// Package tui provides the Bubble Tea aim-training interface.
package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ethanolliesCODE/aim-warmup/internal/drill"
	"github.com/ethanolliesCODE/aim-warmup/internal/flow"
	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/sampler"
	"github.com/ethanolliesCODE/aim-warmup/internal/stats"
)

// DefaultFPS is the tracking animation rate used when none is configured.
const DefaultFPS = 30

// Rows above the play area (header, HUD) and below it (time bar, help).
const (
	playTop    = 2
	playBottom = 2
)

// Messages carry the mount generation of the drill that scheduled them.
// Anything from an older generation belongs to a torn-down drill.
type (
	tickMsg  struct{ gen uint64 }
	frameMsg struct{ gen uint64 }
	timerMsg struct {
		gen uint64
		id  uint64
	}
)

// Model implements the Bubble Tea aim-training UI.
type Model struct {
	config model.Config
	flow   *flow.Controller
	opts   flow.MountOptions
	now    func() time.Time
	// after delivers msg once d has elapsed.
	after func(d time.Duration, msg tea.Msg) tea.Cmd

	keys keyMap
	help help.Model
	bar  progress.Model

	width  int
	height int
	choice int

	active   drill.Drill
	gen      uint64
	intro    bool
	finished *model.DrillResult

	results   *resultsView
	completed *model.Session
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	textStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	targetStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hitTargetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	onTargetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	offTargetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	dotStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	pointerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	cardTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	activeNavStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
)

var phaseColors = map[drill.ReactionPhase]lipgloss.Color{
	drill.PhaseWaiting: lipgloss.Color("#2B2B2B"),
	drill.PhaseRed:     lipgloss.Color("#A8071A"),
	drill.PhaseGreen:   lipgloss.Color("#237804"),
	drill.PhaseTooSoon: lipgloss.Color("#AD6800"),
	drill.PhaseResult:  lipgloss.Color("#1D39C4"),
}

// NewModel constructs the aim-training TUI model.
func NewModel(cfg model.Config) *Model {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	m := &Model{
		config: cfg,
		flow:   flow.New(),
		opts:   flow.DefaultMountOptions(cfg.FPS, sampler.New(cfg.Seed)),
		now:    time.Now,
		after:  deliverAfter,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar:    progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage()),
	}
	if cfg.DurationMinutes == flow.LongSession {
		m.choice = 1
	}
	return m
}

func deliverAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// CompletedSession returns the last session that reached the results screen.
func (m *Model) CompletedSession() (model.Session, bool) {
	if m.completed == nil {
		return model.Session{}, false
	}
	return *m.completed, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(msg.Width-2, 10)
		m.help.Width = msg.Width
		m.applyBounds()
		if m.results != nil {
			m.results.setSize(m.width, m.height-1)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tickMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		m.active.Tick()
		if cmd, ended := m.collect(); ended {
			return m, cmd
		}
		return m, m.after(time.Second, tickMsg{gen: msg.gen})
	case frameMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		if tr, ok := m.active.(*drill.Tracking); ok {
			tr.Frame()
		}
		return m, m.after(m.frameInterval(), frameMsg{gen: msg.gen})
	case timerMsg:
		if !m.current(msg.gen) {
			return m, nil
		}
		return m, m.schedule(m.active.Fire(msg.id, m.now()))
	default:
		return m, nil
	}
}

// current reports whether gen belongs to the mounted, running drill.
func (m *Model) current(gen uint64) bool {
	return m.active != nil && gen == m.gen
}

func (m *Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.config.FPS)
}

func (m *Model) schedule(timers []drill.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	gen := m.gen
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, m.after(t.After, timerMsg{gen: gen, id: t.ID}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.teardown()
		return m, tea.Quit
	}
	switch m.flow.Screen() {
	case flow.ScreenHome:
		if key.Matches(msg, m.keys.Begin) {
			return m, m.begin()
		}
	case flow.ScreenDurationSelect:
		switch {
		case key.Matches(msg, m.keys.Short):
			return m, m.selectDuration(flow.ShortSession)
		case key.Matches(msg, m.keys.Long):
			return m, m.selectDuration(flow.LongSession)
		case key.Matches(msg, m.keys.Prev):
			m.choice = max(m.choice-1, 0)
		case key.Matches(msg, m.keys.Next):
			m.choice = min(m.choice+1, len(flow.SessionChoices)-1)
		case key.Matches(msg, m.keys.Select):
			return m, m.selectDuration(flow.SessionChoices[m.choice])
		}
	case flow.ScreenDrill:
		if m.active == nil || !key.Matches(msg, m.keys.Click) {
			return m, nil
		}
		if m.intro {
			return m, m.startDrill()
		}
		if r, ok := m.active.(*drill.Reaction); ok {
			return m, m.schedule(r.Click(m.now()))
		}
	case flow.ScreenResults:
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.restart()
		case key.Matches(msg, m.keys.TabPrev):
			m.results.moveTab(-1)
			return m, tea.ClearScreen
		case key.Matches(msg, m.keys.TabNext):
			m.results.moveTab(1)
			return m, tea.ClearScreen
		default:
			return m, m.results.update(msg)
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	switch m.flow.Screen() {
	case flow.ScreenHome:
		if press {
			return m.begin()
		}
	case flow.ScreenDurationSelect:
		if !press {
			return nil
		}
		if i, ok := m.durationCardAt(msg.X, msg.Y); ok {
			m.choice = i
			return m.selectDuration(flow.SessionChoices[i])
		}
	case flow.ScreenDrill:
		return m.drillMouse(msg, press)
	}
	return nil
}

// durationCardAt maps a screen cell to the session option card under it,
// following the placement done by framed.
func (m *Model) durationCardAt(x, y int) (int, bool) {
	cards := m.durationCards()
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	content := m.renderDurationSelect()
	bodyHeight := m.height
	if m.height >= 3 {
		bodyHeight = m.height - 1
	}
	top := centerOffset(bodyHeight, lipgloss.Height(content)) + lipgloss.Height(durationTitle()) + 1
	// The card row is the widest line, so it starts at the content's left edge.
	left := centerOffset(m.width, lipgloss.Width(content))
	if y < top || y >= top+lipgloss.Height(row) {
		return 0, false
	}
	for i, card := range cards {
		w := lipgloss.Width(card)
		if x >= left && x < left+w {
			return i, true
		}
		left += w
	}
	return 0, false
}

func (m *Model) drillMouse(msg tea.MouseMsg, press bool) tea.Cmd {
	if m.active == nil {
		return nil
	}
	p, inside := m.playPoint(msg.X, msg.Y)
	if tr, ok := m.active.(*drill.Tracking); ok {
		tr.SetPointer(p)
	}
	if !press {
		return nil
	}
	if m.intro {
		return m.startDrill()
	}
	now := m.now()
	switch d := m.active.(type) {
	case *drill.Reaction:
		return m.schedule(d.Click(now))
	case *drill.Click:
		if inside {
			return m.schedule(d.ClickAt(p, now))
		}
	}
	return nil
}

// playPoint converts a terminal cell to play-area units.
func (m *Model) playPoint(x, y int) (model.Point, bool) {
	row := y - playTop
	inside := x >= 0 && x < m.width && row >= 0 && row < m.playRows()
	return cellPoint(x, row), inside
}

func (m *Model) playRows() int {
	return max(m.height-playTop-playBottom, 1)
}

func (m *Model) playBounds() model.Bounds {
	if m.width <= 0 || m.height <= 0 {
		return model.Bounds{}
	}
	return model.Bounds{Width: float64(m.width), Height: float64(m.playRows() * 2)}
}

func (m *Model) applyBounds() {
	b := m.playBounds()
	if b.Empty() {
		return
	}
	switch d := m.active.(type) {
	case *drill.Click:
		d.SetBounds(b, m.now())
	case *drill.Tracking:
		d.SetBounds(b)
	}
}

func (m *Model) begin() tea.Cmd {
	if err := m.flow.Begin(); err != nil {
		log.Printf("failed to begin: %v", err)
		return nil
	}
	if flow.ValidDuration(m.config.DurationMinutes) {
		return m.selectDuration(m.config.DurationMinutes)
	}
	return nil
}

func (m *Model) selectDuration(minutes int) tea.Cmd {
	if err := m.flow.SelectDuration(minutes); err != nil {
		log.Printf("failed to select duration: %v", err)
		return nil
	}
	log.Printf("session=%s started minutes=%d", m.flow.Session().ID, minutes)
	return m.mount()
}

// mount builds the active drill of the flow under a new generation. The
// reaction drill starts at once; the others wait for a click.
func (m *Model) mount() tea.Cmd {
	m.gen++
	gen := m.gen
	kind := m.flow.CurrentDrill()
	d, err := flow.Mount(kind, m.flow.Duration(), m.opts, func(res model.DrillResult) {
		if gen == m.gen {
			m.finished = &res
		}
	})
	if err != nil {
		log.Printf("failed to mount drill: %v", err)
		return nil
	}
	m.active = d
	m.applyBounds()
	log.Printf("session=%s mounted drill=%s index=%d seconds=%d", m.flow.Session().ID, kind, m.flow.DrillIndex(), d.Total())
	if kind == model.DrillReaction {
		return m.startDrill()
	}
	m.intro = true
	return nil
}

func (m *Model) startDrill() tea.Cmd {
	m.intro = false
	cmds := []tea.Cmd{
		m.after(time.Second, tickMsg{gen: m.gen}),
		m.schedule(m.active.Start(m.now())),
	}
	if m.active.Kind() == model.DrillTracking {
		cmds = append(cmds, m.after(m.frameInterval(), frameMsg{gen: m.gen}))
	}
	return tea.Batch(cmds...)
}

// collect hands a finished drill's result to the flow and mounts the next drill.
func (m *Model) collect() (tea.Cmd, bool) {
	if m.finished == nil {
		return nil, false
	}
	res := *m.finished
	m.finished = nil
	m.teardown()
	sessionID := m.flow.Session().ID
	if err := m.flow.Complete(res); err != nil {
		log.Printf("session=%s failed to record result: %v", sessionID, err)
		return nil, true
	}
	log.Printf("session=%s completed drill=%s grade=%s", sessionID, res.Kind, stats.GradeResult(res))
	if m.flow.Screen() != flow.ScreenResults {
		return m.mount(), true
	}
	session := m.flow.Session()
	m.completed = &session
	m.results = newResultsView(stats.BuildReport(session), m.width, m.height-1)
	log.Printf("session=%s finished", sessionID)
	return nil, true
}

// teardown stops the mounted drill and invalidates its pending messages.
func (m *Model) teardown() {
	if m.active != nil {
		m.active.Stop()
	}
	m.active = nil
	m.intro = false
	m.gen++
}

func (m *Model) restart() {
	log.Printf("session=%s restarted", m.flow.Session().ID)
	m.teardown()
	m.results = nil
	m.flow.Restart()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	switch m.flow.Screen() {
	case flow.ScreenHome:
		return m.framed(m.renderHome())
	case flow.ScreenDurationSelect:
		return m.framed(m.renderDurationSelect())
	case flow.ScreenDrill:
		return m.renderDrill()
	case flow.ScreenResults:
		if m.results == nil {
			return m.framed("")
		}
		return m.results.view() + "\n" + m.renderHelp()
	default:
		return ""
	}
}

// framed centres content above the help line.
func (m *Model) framed(content string) string {
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + m.renderHelp()
}

func (m *Model) renderHelp() string {
	_, reaction := m.active.(*drill.Reaction)
	bindings := m.keys.bindingsFor(m.flow.Screen(), reaction)
	return fitLines(footerStyle.Render(m.help.ShortHelpView(bindings)), m.width, 1)
}

func (m *Model) renderHome() string {
	kinds := make([]string, 0, len(model.DrillOrder))
	for _, kind := range model.DrillOrder {
		kinds = append(kinds, kind.Title())
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("AIM WARMUP"),
		"",
		textStyle.Render(strings.Join(kinds, " · ")),
		"",
		pendingStyle.Render("Click or press enter to start"),
	)
}

func durationTitle() string {
	return titleStyle.Render("Session length")
}

func (m *Model) renderDurationSelect() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		durationTitle(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.durationCards()...),
	)
}

func (m *Model) durationCards() []string {
	options := make([]string, 0, len(flow.SessionChoices))
	for i, minutes := range flow.SessionChoices {
		parts := make([]string, 0, len(model.DrillOrder))
		for _, secs := range flow.Plan(minutes) {
			parts = append(parts, fmt.Sprintf("%ds", secs))
		}
		label := fmt.Sprintf("%d. %d min\n%s", i+1, minutes, pendingStyle.Render(strings.Join(parts, " · ")))
		if i == m.choice {
			options = append(options, activeNavStyle.Render(label))
		} else {
			options = append(options, inactiveNavStyle.Render(label))
		}
	}
	return options
}

func (m *Model) renderDrill() string {
	if m.active == nil {
		return m.framed("")
	}
	rows := m.playRows()
	fraction := 0.0
	if total := m.active.Total(); total > 0 {
		fraction = float64(m.active.Remaining()) / float64(total)
	}
	lines := []string{
		fitLines(m.renderHeader(), m.width, 1),
		fitLines(truncateLine(m.renderHUD(), m.width), m.width, 1),
		fitLines(m.renderPlay(rows), m.width, rows),
		fitLines(m.bar.ViewAs(fraction), m.width, 1),
		m.renderHelp(),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader() string {
	kind := m.active.Kind()
	left := titleStyle.Render(kind.Title()) + headerStyle.Render(fmt.Sprintf("  %d / %d", m.flow.DrillIndex()+1, len(model.DrillOrder)))
	right := textStyle.Render(fmt.Sprintf("%ds left", m.active.Remaining()))
	return spread(left, right, m.width)
}

func (m *Model) renderHUD() string {
	if m.intro {
		return pendingStyle.Render("Click anywhere to begin")
	}
	switch d := m.active.(type) {
	case *drill.Reaction:
		return headerStyle.Render(fmt.Sprintf("Round %d · Avg %d ms · Last %d ms · False clicks %d", d.Rounds()+1, d.AvgMs(), d.LastMs(), d.FalseClicks()))
	case *drill.Click:
		return headerStyle.Render(fmt.Sprintf("Hits %d · Misses %d · Wave %d", d.Hits(), d.Misses(), d.Waves()))
	case *drill.Tracking:
		status := offTargetStyle.Render("OFF TARGET")
		if d.OnTarget() {
			status = onTargetStyle.Render("ON TARGET")
		}
		return status + headerStyle.Render(fmt.Sprintf(" · Distance %.1f u", d.LastDistance()))
	default:
		return ""
	}
}

func (m *Model) renderPlay(rows int) string {
	if m.intro {
		return lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center, introText(m.active.Kind()))
	}
	switch d := m.active.(type) {
	case *drill.Reaction:
		return renderReaction(d, m.width, rows)
	case *drill.Click:
		return renderClick(d, m.width, rows)
	case *drill.Tracking:
		return renderTracking(d, m.width, rows)
	default:
		return ""
	}
}

func introText(kind model.DrillKind) string {
	hint := ""
	switch kind {
	case model.DrillClick:
		hint = "Hit every target as fast as you can"
	case model.DrillTracking:
		hint = "Keep the pointer on the moving dot"
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(kind.Title()),
		textStyle.Render(hint),
		"",
		pendingStyle.Render("Click to begin"),
	)
}

func renderReaction(r *drill.Reaction, width, rows int) string {
	text := "Click to start a round"
	switch r.Phase() {
	case drill.PhaseRed:
		text = "Wait for green..."
	case drill.PhaseGreen:
		text = "CLICK!"
	case drill.PhaseTooSoon:
		text = "Too soon!"
	case drill.PhaseResult:
		text = fmt.Sprintf("%d ms", r.LastMs())
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(rows).
		Align(lipgloss.Center, lipgloss.Center).
		Background(phaseColors[r.Phase()]).
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true).
		Render(text)
}

func renderClick(c *drill.Click, width, rows int) string {
	cv := newCanvas(width, rows)
	for _, t := range c.Targets() {
		if t.Hit {
			cv.fillCircle(t.Center, c.Radius(), '·', hitTargetStyle)
			continue
		}
		cv.fillCircle(t.Center, c.Radius(), '█', targetStyle)
	}
	return cv.render()
}

func renderTracking(t *drill.Tracking, width, rows int) string {
	cv := newCanvas(width, rows)
	style := dotStyle
	if t.OnTarget() {
		style = onTargetStyle
	}
	cv.fillCircle(t.Dot().Pos, t.Radius(), '█', style)
	col, row := pointCell(t.Pointer())
	cv.set(col, row, '+', pointerStyle)
	return cv.render()
}
