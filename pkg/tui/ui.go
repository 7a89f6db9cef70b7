package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/bakelog/pkg/app"
	"tableflip.dev/bakelog/pkg/calendar"
	"tableflip.dev/bakelog/pkg/idea"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/stats"
	"tableflip.dev/bakelog/pkg/store"
	"tableflip.dev/bakelog/pkg/timeutil"
)

// Model contains dashboard state. The calendar index and the window
// summary are always rebuilt from loaded records, never cached across
// data refreshes.
type Model struct {
	svc *app.Service
	ctx context.Context

	anchor   time.Time // first of the displayed month
	selected record.DayKey
	today    record.DayKey

	ix    calendar.Index
	bakes []*record.Bake

	windowKind timeutil.Kind
	window     timeutil.Window
	summary    stats.Summary

	prevIdea   *idea.Candidate
	suggestion string

	dayOpen  bool
	dayBakes []*record.Bake

	events <-chan store.Event
	rng    *rand.Rand

	keys   keyMap
	help   help.Model
	status string

	termWidth  int
	termHeight int
}

// New creates a dashboard model backed by the Service. The events
// channel may be nil when change notification is unavailable.
func New(svc *app.Service, events <-chan store.Event) Model {
	today := record.Today()
	return Model{
		svc:        svc,
		ctx:        context.Background(),
		anchor:     monthOf(today),
		selected:   today,
		today:      today,
		windowKind: timeutil.DefaultKind,
		events:     events,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		keys:       defaultKeyMap(),
		help:       help.New(),
		status:     "enter open day, w cycle window, i suggest, q quit",
	}
}

// messages
type errMsg struct{ err error }
type storeEventMsg struct{ ev store.Event }
type dataLoadedMsg struct {
	bakes    []*record.Bake
	upcoming []*record.Upcoming
}

// Init loads initial data and begins listening for store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadData(), m.waitForEvent())
}

func (m *Model) loadData() tea.Cmd {
	return func() tea.Msg {
		bakes, err := m.svc.Bakes(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		upcoming, err := m.svc.Upcoming(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return dataLoadedMsg{bakes: bakes, upcoming: upcoming}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{ev: ev}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case dataLoadedMsg:
		m.bakes = msg.bakes
		m.ix = calendar.BuildIndex(msg.bakes, msg.upcoming)
		m.refreshStats()
		if m.dayOpen {
			m.dayBakes = m.journalOn(m.selected)
		}
	case storeEventMsg:
		return m, tea.Batch(m.loadData(), m.waitForEvent())
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.dayOpen {
			m.dayOpen = false
			m.dayBakes = nil
		}

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(7)

	case key.Matches(msg, m.keys.PrevMonth):
		m.jumpMonth(calendar.PrevMonth(m.anchor))
	case key.Matches(msg, m.keys.NextMonth):
		m.jumpMonth(calendar.NextMonth(m.anchor))

	case key.Matches(msg, m.keys.Open):
		m.clickDay(m.selected)

	case key.Matches(msg, m.keys.Window):
		m.cycleWindow()

	case key.Matches(msg, m.keys.Idea):
		m.suggest()

	case key.Matches(msg, m.keys.Accept):
		return m.accept(false)
	case key.Matches(msg, m.keys.AcceptLog):
		return m.accept(true)
	}
	return m, nil
}

func (m *Model) moveSelection(days int) {
	m.selected = m.selected.AddDays(days)
	if anchor := monthOf(m.selected); !anchor.Equal(m.anchor) {
		m.anchor = anchor
		m.refreshStats()
	}
	if m.dayOpen {
		m.dayBakes = m.journalOn(m.selected)
	}
}

func (m *Model) jumpMonth(anchor time.Time) {
	m.anchor = anchor
	m.selected = record.DayKeyOf(anchor)
	m.dayOpen = false
	m.dayBakes = nil
	m.refreshStats()
}

// clickDay routes a day press the same way the calendar click contract
// does: a completed bake opens the day journal, a planned-only day
// reports the plan, an empty day does nothing.
func (m *Model) clickDay(k record.DayKey) {
	switch m.ix.Click(k) {
	case calendar.ClickOpenJournal:
		m.dayOpen = true
		m.dayBakes = m.journalOn(k)
		m.status = fmt.Sprintf("journal for %s", k)
	case calendar.ClickPlannedInfo:
		m.status = fmt.Sprintf("%s has a planned bake, nothing logged yet", k)
	default:
		m.status = fmt.Sprintf("nothing on %s", k)
	}
}

func (m *Model) cycleWindow() {
	switch m.windowKind {
	case timeutil.KindWeek:
		m.windowKind = timeutil.KindLastWeek
	case timeutil.KindLastWeek:
		m.windowKind = timeutil.KindMonth
	case timeutil.KindMonth:
		m.windowKind = timeutil.KindAllTime
	default:
		m.windowKind = timeutil.KindWeek
	}
	m.refreshStats()
}

// refreshStats re-resolves the window against the clock. Month windows
// follow the displayed month, not the current one.
func (m *Model) refreshStats() {
	m.window = timeutil.Resolve(m.windowKind, time.Now(), m.anchor)
	m.summary = stats.Aggregate(m.bakes, m.window)
}

func (m *Model) journalOn(k record.DayKey) []*record.Bake {
	return stats.Filter(m.bakes, timeutil.Day(k))
}

func (m *Model) suggest() {
	c, outcome, err := m.svc.SuggestIdea(m.ctx, m.prevIdea, m.rng)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	switch outcome {
	case idea.Suggested:
		m.prevIdea = &c
		m.suggestion = c.Name
		m.status = "a accept, A accept and log today, i draw again"
	case idea.Exhausted:
		m.status = "only one idea left, it is the one already shown"
	default:
		m.suggestion = ""
		m.status = "no ideas saved yet, add some with: bakelog idea add"
	}
}

func (m Model) accept(logIt bool) (tea.Model, tea.Cmd) {
	if m.prevIdea == nil {
		m.status = "nothing suggested, press i first"
		return m, nil
	}
	c := *m.prevIdea
	if _, err := m.svc.AcceptIdea(m.ctx, c, logIt, record.Today()); err != nil {
		m.status = "ERR: " + err.Error()
		return m, nil
	}
	m.prevIdea = nil
	m.suggestion = ""
	if logIt {
		m.status = fmt.Sprintf("baked it: %s", c.Name)
	} else {
		m.status = fmt.Sprintf("accepted: %s", c.Name)
	}
	return m, m.loadData()
}

var (
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	subStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the calendar, the stats pane, the idea pane, and either
// the day journal or the help line below them.
func (m Model) View() string {
	grid := renderGrid(m.anchor, calendar.MonthCells(m.anchor, m.today, m.ix), m.selected, defaultGridStyles())

	statsPane := strings.Join([]string{
		labelStyle.Render(m.window.Label),
		subStyle.Render(m.window.Sublabel),
		fmt.Sprintf("%d bakes, %dh in the kitchen", m.summary.Count, m.summary.TotalHours),
	}, "\n")

	ideaPane := subStyle.Render("press i for an idea")
	if m.suggestion != "" {
		ideaPane = labelStyle.Render("how about: ") + m.suggestion
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(grid),
		paneStyle.Render(statsPane+"\n\n"+ideaPane),
	)

	if m.dayOpen {
		body += "\n" + paneStyle.Render(m.renderDay())
	}

	return body + "\n" + statusStyle.Render(m.status) + "\n" + m.help.View(m.keys)
}

func (m Model) renderDay() string {
	lines := []string{labelStyle.Render(m.selected.String())}
	if len(m.dayBakes) == 0 {
		lines = append(lines, subStyle.Render("nothing logged"))
	}
	for _, b := range m.dayBakes {
		line := b.Title
		if b.Hours > 0 || b.Minutes > 0 {
			line += subStyle.Render(fmt.Sprintf("  %dh%02dm", b.Hours, b.Minutes))
		}
		if b.Taste > 0 {
			line += subStyle.Render(fmt.Sprintf("  taste %d/5", b.Taste))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func monthOf(k record.DayKey) time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.Local)
}

// Run starts the dashboard and blocks until it exits. The store watch
// feeds refreshes; a store without watch support still works, it just
// will not pick up edits made by other processes.
func Run(svc *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events <-chan store.Event
	if svc.Persistence != nil {
		if ch, err := svc.Persistence.Watch(ctx); err == nil {
			events = ch
		}
	}

	p := tea.NewProgram(New(svc, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
