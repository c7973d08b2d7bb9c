package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackyw99/NR-NTN-satellite/internal/metrics"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

// CoveragePage draws the combined coverage disc. Disc radius scales with
// the square root of the covered area so doubling the constellation does
// not double the apparent diameter.
type CoveragePage struct {
	store *params.Store

	satCount int
	areaKm2  float64
	altitude float64
}

// NewCoveragePage creates the page and subscribes it to the store.
func NewCoveragePage(store *params.Store) *CoveragePage {
	p := &CoveragePage{store: store}
	p.recompute(store.Snapshot())
	store.SubscribeAll(func(snapshot map[string]string, _ string) {
		p.OnParamsChanged(snapshot)
	})
	return p
}

func (p *CoveragePage) ID() string    { return PageCoverage }
func (p *CoveragePage) Title() string { return "Coverage" }

func (p *CoveragePage) OnEnter() tea.Cmd {
	p.recompute(p.store.Snapshot())
	return nil
}

func (p *CoveragePage) OnExit() {}

func (p *CoveragePage) OnParamsChanged(snapshot map[string]string) {
	p.recompute(snapshot)
}

func (p *CoveragePage) recompute(snapshot map[string]string) {
	p.satCount = parseIntOr(snapshot[params.KeySatelliteCount], 1)
	p.altitude = parseFloatOr(snapshot[params.KeyOrbitAltitude], 600)
	p.areaKm2 = metrics.CoverageArea(p.satCount)
}

func (p *CoveragePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	return nil, nil
}

func (p *CoveragePage) View(width, height int) string {
	chartW := width - 30
	if chartW < 30 {
		chartW = 30
	}
	chartH := height - 4
	if chartH < 8 {
		chartH = 8
	}

	canvas := newRuneCanvas(chartW, chartH)

	// Radius relative to the single-satellite footprint, capped so the
	// disc stays inside the canvas.
	maxR := float64(chartH)/2 - 1
	r := 0.0
	if p.areaKm2 > 0 {
		scale := math.Sqrt(p.areaKm2 / metrics.CoverageArea(1))
		r = math.Min(maxR, (maxR/3)*scale)
	}
	canvas.disc(chartW/2, chartH/2, r, '▒', '█')

	chartBox := sectionStyle.Render(
		pageTitleStyle.Render("Combined footprint") + "\n" + canvas.String())

	var stats string
	stats += fmt.Sprintf("%s %s km²\n",
		labelStyle.Width(14).Render("Covered area"),
		valueStyle.Render(fmt.Sprintf("%.0f", p.areaKm2)))
	stats += fmt.Sprintf("%s %s\n",
		labelStyle.Width(14).Render("Satellites"),
		valueStyle.Render(fmt.Sprintf("%d", p.satCount)))
	stats += fmt.Sprintf("%s %s km\n",
		labelStyle.Width(14).Render("Altitude"),
		valueStyle.Render(fmt.Sprintf("%.0f", p.altitude)))
	statsBox := sectionStyle.Width(26).Render(
		pageTitleStyle.Render("Coverage") + "\n" + stats)

	return lipgloss.JoinHorizontal(lipgloss.Top, chartBox, " ", statsBox)
}
