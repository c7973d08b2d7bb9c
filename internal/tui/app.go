package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

const statusNoteDuration = 2 * time.Second

// App is the top-level Bubble Tea model. It owns page switching and the
// enter/exit lifecycle: exactly one page is active at a time, and a switch
// always runs the old page's OnExit to completion before the new page's
// OnEnter.
type App struct {
	store  *params.Store
	pages  map[string]Page
	order  []string
	active string

	width  int
	height int
	keys   KeyMap

	statusNote string

	// DetailURL builds the drill-down URL carrying the full current
	// snapshot. OpenURL and CopyText are injectable for tests; they
	// default to the system browser and clipboard.
	DetailURL func(detailType, detailID string) string
	OpenURL   func(url string) error
	CopyText  func(text string) error
}

// NewApp creates the coordinator with the given pages. The first page is
// active and entered on Init.
func NewApp(store *params.Store, pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	order := make([]string, 0, len(pages))
	for _, p := range pages {
		pageMap[p.ID()] = p
		order = append(order, p.ID())
	}

	a := &App{
		store:    store,
		pages:    pageMap,
		order:    order,
		keys:     DefaultKeyMap(),
		CopyText: clipboard.WriteAll,
	}
	if len(order) > 0 {
		a.active = order[0]
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.active]; ok {
		return p.OnEnter()
	}
	return nil
}

// ActivePage returns the ID of the currently active page.
func (a *App) ActivePage() string { return a.active }

// SwitchPage makes name the active page. An unregistered name is a no-op:
// nothing exits, nothing enters. Switching to the already-active page is
// also a no-op, so lifecycle hooks fire exactly once per real transition.
func (a *App) SwitchPage(name string) tea.Cmd {
	next, ok := a.pages[name]
	if !ok || name == a.active {
		return nil
	}

	if current, ok := a.pages[a.active]; ok {
		current.OnExit()
	}
	a.active = name
	return next.OnEnter()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case ExternalParamsMsg:
		// Merge on the UI goroutine so subscriber callbacks never race
		// with rendering.
		a.store.Merge(msg.Values)
		return a, nil

	case statusNoteMsg:
		a.statusNote = string(msg)
		return a, tea.Tick(statusNoteDuration, func(time.Time) tea.Msg {
			return clearStatusNoteMsg{}
		})

	case clearStatusNoteMsg:
		a.statusNote = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.routeToActive(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	// A focused text field on the active page gets the event first.
	if p, ok := a.pages[a.active]; ok {
		if cap, ok := p.(InputCapturer); ok && cap.CapturesInput() {
			return a.routeToActive(msg)
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		_ = a.store.SaveNow()
		return a, tea.Quit

	case key.Matches(msg, a.keys.NextPage):
		return a, a.switchRelative(1)

	case key.Matches(msg, a.keys.PrevPage):
		return a, a.switchRelative(-1)

	case key.Matches(msg, a.keys.Overview):
		return a, a.SwitchPage(PageOverview)
	case key.Matches(msg, a.keys.Config):
		return a, a.SwitchPage(PageConfig)
	case key.Matches(msg, a.keys.Trajectory):
		return a, a.SwitchPage(PageTrajectory)
	case key.Matches(msg, a.keys.Coverage):
		return a, a.SwitchPage(PageCoverage)
	case key.Matches(msg, a.keys.Performance):
		return a, a.SwitchPage(PagePerformance)

	case key.Matches(msg, a.keys.CopyLink):
		return a, a.copyShareLink()

	case key.Matches(msg, a.keys.OpenDetail):
		return a, a.openDetail(&DetailRequest{Type: a.active})
	}

	return a.routeToActive(msg)
}

func (a *App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	p, ok := a.pages[a.active]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav == nil {
		return a, cmd
	}
	if nav.Detail != nil {
		return a, tea.Batch(cmd, a.openDetail(nav.Detail))
	}
	return a, tea.Batch(cmd, a.SwitchPage(nav.PageID))
}

func (a *App) switchRelative(delta int) tea.Cmd {
	if len(a.order) == 0 {
		return nil
	}
	idx := 0
	for i, id := range a.order {
		if id == a.active {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(a.order)) % len(a.order)
	return a.SwitchPage(a.order[idx])
}

func (a *App) copyShareLink() tea.Cmd {
	link := a.store.Link()
	if a.CopyText == nil {
		return nil
	}
	if err := a.CopyText(link); err != nil {
		return func() tea.Msg { return statusNoteMsg("clipboard unavailable") }
	}
	return func() tea.Msg { return statusNoteMsg("share link copied") }
}

func (a *App) openDetail(req *DetailRequest) tea.Cmd {
	if a.DetailURL == nil || a.OpenURL == nil {
		return func() tea.Msg { return statusNoteMsg("detail view unavailable") }
	}
	url := a.DetailURL(req.Type, req.ID)
	if err := a.OpenURL(url); err != nil {
		return func() tea.Msg { return statusNoteMsg("could not open browser") }
	}
	return func() tea.Msg { return statusNoteMsg("detail opened in browser") }
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing dashboard..."
	}

	header := a.renderTabs()
	footer := a.renderStatusLine()
	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	if p, ok := a.pages[a.active]; ok {
		content = p.View(a.width, contentHeight)
	} else {
		content = "No active page"
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(a.order))
	for i, id := range a.order {
		p := a.pages[id]
		label := p.Title()
		if i < 9 {
			label = string(rune('1'+i)) + " " + label
		}
		if id == a.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderStatusLine() string {
	left := a.statusNote
	if left == "" {
		left = a.store.Get(params.KeyConstellationName) + "  ?" + a.store.Link()
	}

	right := "y copy link · d detail · tab switch · q quit"
	w := a.width
	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		if lipgloss.Width(left) > w-2 {
			left = truncate(left, w-2)
		}
		return statusBarStyle.Width(w).Render(" " + left)
	}

	line := " " + left + spaces(gap) + right + " "
	return statusBarStyle.Width(w).Render(line)
}

func spaces(n int) string {
	if n < 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
