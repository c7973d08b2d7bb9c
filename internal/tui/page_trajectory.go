package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackyw99/NR-NTN-satellite/internal/metrics"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

var trackRunes = []rune{'•', '◦', '∙', '·', '*', '+'}

// TrajectoryPage plots one illustrative ground-track sine curve per
// tracked satellite and lists per-satellite elevations. Up/down selects a
// satellite; enter drills into its detail view.
type TrajectoryPage struct {
	store *params.Store

	satCount    int
	inclination float64
	elevations  []float64
	selected    int
}

// NewTrajectoryPage creates the page and subscribes it to the store.
func NewTrajectoryPage(store *params.Store) *TrajectoryPage {
	p := &TrajectoryPage{store: store}
	p.recompute(store.Snapshot())
	store.SubscribeAll(func(snapshot map[string]string, _ string) {
		p.OnParamsChanged(snapshot)
	})
	return p
}

func (p *TrajectoryPage) ID() string    { return PageTrajectory }
func (p *TrajectoryPage) Title() string { return "Trajectory" }

func (p *TrajectoryPage) OnEnter() tea.Cmd {
	p.recompute(p.store.Snapshot())
	return nil
}

func (p *TrajectoryPage) OnExit() {}

func (p *TrajectoryPage) OnParamsChanged(snapshot map[string]string) {
	p.recompute(snapshot)
}

func (p *TrajectoryPage) recompute(snapshot map[string]string) {
	p.satCount = parseIntOr(snapshot[params.KeySatelliteCount], 1)
	p.inclination = parseFloatOr(snapshot[params.KeyInclination], 53)
	p.elevations = metrics.Elevations(p.satCount)
	if p.selected >= len(p.elevations) {
		p.selected = max(0, len(p.elevations)-1)
	}
}

func (p *TrajectoryPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.elevations)-1 {
			p.selected++
		}
	case "enter":
		return nil, &PageNav{Detail: &DetailRequest{
			Type: "satellite",
			ID:   fmt.Sprintf("SAT-%d", p.selected+1),
		}}
	}
	return nil, nil
}

func (p *TrajectoryPage) View(width, height int) string {
	chartW := width - 26
	if chartW < 30 {
		chartW = 30
	}
	chartH := height - 4
	if chartH < 6 {
		chartH = 6
	}

	canvas := newRuneCanvas(chartW, chartH)
	canvas.hLine(chartH/2, '─') // equator

	tracks := len(p.elevations)
	for i := 0; i < tracks; i++ {
		idx, count := i, tracks
		ch := trackRunes[i%len(trackRunes)]
		canvas.plotCurve(func(x float64) float64 {
			// Normalise latitude to [-1,1] against a 90° pole.
			return metrics.GroundTrackLat(p.inclination, idx, count, x) / 90.0
		}, ch)
	}

	chartBox := sectionStyle.Render(
		pageTitleStyle.Render("Ground tracks") + "\n" + canvas.String())

	var legend string
	for i, elev := range p.elevations {
		marker := "  "
		if i == p.selected {
			marker = "> "
		}
		legend += fmt.Sprintf("%s%c SAT-%d  %s°\n",
			marker, trackRunes[i%len(trackRunes)], i+1,
			valueStyle.Render(fmt.Sprintf("%.1f", elev)))
	}
	legendBox := sectionStyle.Width(20).Render(
		pageTitleStyle.Render("Elevation") + "\n" + legend)

	body := lipgloss.JoinHorizontal(lipgloss.Top, chartBox, " ", legendBox)
	hint := helpStyle.Render("↑/↓ select satellite · enter open satellite detail")
	return lipgloss.JoinVertical(lipgloss.Left, body, hint)
}
