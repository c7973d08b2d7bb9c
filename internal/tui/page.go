package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one top-level dashboard screen. Pages are constructed once at
// startup, subscribe to the parameter store in their constructor, and are
// never torn down; only their active status changes.
//
// OnEnter runs when the page becomes active and may return a command (for
// example the first refresh tick). OnExit runs when the page stops being
// active and must release any timer it started; it is called exactly once
// per switch, before the next page's OnEnter.
//
// OnParamsChanged fires on every store mutation whether or not the page is
// active, so implementations keep it cheap and idempotent.
type Page interface {
	ID() string
	Title() string
	OnEnter() tea.Cmd
	OnExit()
	OnParamsChanged(snapshot map[string]string)
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// Page IDs, used for switching and as drill-down detail types.
const (
	PageOverview    = "overview"
	PageConfig      = "satellite-config"
	PageTrajectory  = "trajectory"
	PageCoverage    = "coverage"
	PagePerformance = "performance"
)

// PageNav is returned from Update to request navigation: either an
// in-place switch to PageID or a drill-down into a separate browsing
// context.
type PageNav struct {
	PageID string
	Detail *DetailRequest
}

// DetailRequest names the drill-down view to open with the full current
// parameter snapshot.
type DetailRequest struct {
	Type string
	ID   string
}

// InputCapturer is implemented by pages that want raw key events while a
// text field is focused, bypassing the global shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}

// ExternalParamsMsg delivers a parameter mapping loaded outside the UI
// loop (the snapshot-file watcher). The app merges it through the store on
// the UI goroutine so subscribers never run concurrently with rendering.
type ExternalParamsMsg struct {
	Values map[string]string
}

// statusNoteMsg sets a transient note on the status line.
type statusNoteMsg string

// clearStatusNoteMsg clears it again.
type clearStatusNoteMsg struct{}
