package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackyw99/NR-NTN-satellite/internal/metrics"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

// OverviewPage summarises the constellation: current parameters on the
// left, derived link figures on the right.
type OverviewPage struct {
	store *params.Store

	snrDB    float64
	powerDBm float64
	quality  metrics.Quality
	areaKm2  float64
	satCount int
}

// NewOverviewPage creates the page and subscribes it to the store. The
// subscription stays alive for the process lifetime.
func NewOverviewPage(store *params.Store) *OverviewPage {
	p := &OverviewPage{store: store}
	p.recompute(store.Snapshot())
	store.SubscribeAll(func(snapshot map[string]string, _ string) {
		p.OnParamsChanged(snapshot)
	})
	return p
}

func (p *OverviewPage) ID() string    { return PageOverview }
func (p *OverviewPage) Title() string { return "Overview" }

func (p *OverviewPage) OnEnter() tea.Cmd {
	p.recompute(p.store.Snapshot())
	return nil
}

func (p *OverviewPage) OnExit() {}

func (p *OverviewPage) OnParamsChanged(snapshot map[string]string) {
	p.recompute(snapshot)
}

func (p *OverviewPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	return nil, nil
}

func (p *OverviewPage) recompute(snapshot map[string]string) {
	carrier := parseFloatOr(snapshot[params.KeyCarrierFrequency], metrics.ReferenceFrequencyGHz)
	p.satCount = parseIntOr(snapshot[params.KeySatelliteCount], 1)

	p.snrDB = metrics.SignalNoiseRatio(carrier)
	p.powerDBm = metrics.ReceivedPower(carrier)
	p.quality = metrics.Classify(p.snrDB)
	p.areaKm2 = metrics.CoverageArea(p.satCount)
}

func (p *OverviewPage) View(width, height int) string {
	half := width/2 - 2
	if half < 20 {
		half = 20
	}

	var left string
	for _, def := range params.Definitions() {
		v := p.store.Get(def.Key)
		if v == "" {
			v = "—"
		}
		left += fmt.Sprintf("%s %s %s\n",
			labelStyle.Width(18).Render(def.Label),
			valueStyle.Render(v),
			unitStyle.Render(def.Unit))
	}
	leftBox := sectionStyle.Width(half).Render(
		pageTitleStyle.Render("Parameters") + "\n" + left)

	right := fmt.Sprintf("%s %s dB  %s\n",
		labelStyle.Width(18).Render("SNR"),
		valueStyle.Render(fmt.Sprintf("%.1f", p.snrDB)),
		qualityStyle(p.quality.String()).Render(p.quality.String()))
	right += fmt.Sprintf("%s %s dBm\n",
		labelStyle.Width(18).Render("Received power"),
		valueStyle.Render(fmt.Sprintf("%.1f", p.powerDBm)))
	right += fmt.Sprintf("%s %s km²\n",
		labelStyle.Width(18).Render("Coverage area"),
		valueStyle.Render(fmt.Sprintf("%.0f", p.areaKm2)))
	right += fmt.Sprintf("%s %s %%\n",
		labelStyle.Width(18).Render("Handover success"),
		valueStyle.Render(fmt.Sprintf("%.1f", metrics.HandoverSuccessRatePct)))
	right += fmt.Sprintf("%s %s\n",
		labelStyle.Width(18).Render("Satellites"),
		valueStyle.Render(fmt.Sprintf("%d", p.satCount)))
	rightBox := sectionStyle.Width(half).Render(
		pageTitleStyle.Render("Link status") + "\n" + right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, " ", rightBox)
	hint := helpStyle.Render("press 2 to edit parameters, d to open the detail view")
	return lipgloss.JoinVertical(lipgloss.Left, body, hint)
}

func parseFloatOr(s string, fallback float64) float64 {
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return fallback
	}
	return v
}

func parseIntOr(s string, fallback int) int {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return fallback
	}
	return v
}
