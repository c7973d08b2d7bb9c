package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackyw99/NR-NTN-satellite/internal/metrics"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

// sampleCapacity is the trailing window of the live throughput chart.
const sampleCapacity = 60

// perfTickMsg drives the live refresh. The generation stamp invalidates
// ticks from a timer that was cancelled by OnExit: a stale tick carries an
// old generation and is dropped instead of re-arming.
type perfTickMsg struct {
	gen int
	at  time.Time
}

// PerformancePage shows live link metrics: a rolling throughput chart fed
// by a synthetic sample every refresh interval, and per-satellite signal
// bars. The refresh timer runs only while the page is active; the sample
// buffer itself survives page switches.
type PerformancePage struct {
	store    *params.Store
	interval time.Duration

	buffer   *metrics.SampleBuffer
	timerGen int

	snrDB      float64
	throughput float64
	satCount   int
}

// NewPerformancePage creates the page and subscribes it to the store.
func NewPerformancePage(store *params.Store, interval time.Duration) *PerformancePage {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	p := &PerformancePage{
		store:    store,
		interval: interval,
		buffer:   metrics.NewSampleBuffer(sampleCapacity),
	}
	p.recompute(store.Snapshot())
	store.SubscribeAll(func(snapshot map[string]string, _ string) {
		p.OnParamsChanged(snapshot)
	})
	return p
}

func (p *PerformancePage) ID() string    { return PagePerformance }
func (p *PerformancePage) Title() string { return "Performance" }

// OnEnter starts the refresh timer.
func (p *PerformancePage) OnEnter() tea.Cmd {
	p.recompute(p.store.Snapshot())
	p.timerGen++
	return p.tick(p.timerGen)
}

// OnExit cancels the refresh timer by bumping the generation. Idempotent:
// calling it with no timer active just invalidates nothing.
func (p *PerformancePage) OnExit() {
	p.timerGen++
}

func (p *PerformancePage) OnParamsChanged(snapshot map[string]string) {
	p.recompute(snapshot)
}

func (p *PerformancePage) recompute(snapshot map[string]string) {
	carrier := parseFloatOr(snapshot[params.KeyCarrierFrequency], metrics.ReferenceFrequencyGHz)
	bandwidth := parseFloatOr(snapshot[params.KeyBandwidth], 20)
	p.satCount = parseIntOr(snapshot[params.KeySatelliteCount], 1)

	p.snrDB = metrics.SignalNoiseRatio(carrier)
	p.throughput = metrics.Throughput(bandwidth, p.snrDB)
}

func (p *PerformancePage) tick(gen int) tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return perfTickMsg{gen: gen, at: t}
	})
}

func (p *PerformancePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	tickMsg, ok := msg.(perfTickMsg)
	if !ok {
		return nil, nil
	}
	if tickMsg.gen != p.timerGen {
		// Cancelled timer; do not re-arm.
		return nil, nil
	}

	p.buffer.Push(metrics.Sample{
		At:    tickMsg.at,
		Value: metrics.SyntheticThroughput(tickMsg.at, p.throughput),
	})
	return p.tick(tickMsg.gen), nil
}

func (p *PerformancePage) View(width, height int) string {
	chartW := width - 30
	if chartW < 30 {
		chartW = 30
	}
	chartH := height - 10
	if chartH < 5 {
		chartH = 5
	}

	throughputBox := sectionStyle.Render(
		pageTitleStyle.Render("Throughput (Mbps)") + "\n" +
			p.renderThroughputChart(chartW, chartH))

	signalBox := sectionStyle.Render(
		pageTitleStyle.Render("Per-satellite signal") + "\n" +
			p.renderSignalBars(chartW, 5))

	var stats string
	stats += fmt.Sprintf("%s %s dB\n",
		labelStyle.Width(13).Render("SNR"),
		valueStyle.Render(fmt.Sprintf("%.1f", p.snrDB)))
	stats += fmt.Sprintf("%s %s Mbps\n",
		labelStyle.Width(13).Render("Throughput"),
		valueStyle.Render(fmt.Sprintf("%.1f", p.throughput)))
	if latest, ok := p.buffer.Latest(); ok {
		stats += fmt.Sprintf("%s %s Mbps\n",
			labelStyle.Width(13).Render("Last sample"),
			valueStyle.Render(fmt.Sprintf("%.1f", latest.Value)))
	}
	stats += fmt.Sprintf("%s %s %%\n",
		labelStyle.Width(13).Render("Handover"),
		valueStyle.Render(fmt.Sprintf("%.1f", metrics.HandoverSuccessRatePct)))
	stats += fmt.Sprintf("%s %d/%d\n",
		labelStyle.Width(13).Render("Samples"),
		p.buffer.Len(), p.buffer.Cap())
	statsBox := sectionStyle.Width(26).Render(
		pageTitleStyle.Render("Live metrics") + "\n" + stats)

	left := lipgloss.JoinVertical(lipgloss.Left, throughputBox, signalBox)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", statsBox)
}

// renderThroughputChart draws the rolling buffer. Fewer than two samples
// draw an empty chart rather than a degenerate line.
func (p *PerformancePage) renderThroughputChart(width, height int) string {
	values := p.buffer.Values()
	if len(values) < 2 {
		return helpStyle.Render("Collecting samples...")
	}

	sl := sparkline.New(width, height)
	sl.PushAll(values)
	sl.Draw()
	return sl.View()
}

func (p *PerformancePage) renderSignalBars(width, height int) string {
	if p.satCount <= 0 {
		return helpStyle.Render("No satellites configured")
	}

	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
		barchart.WithNoAxis(),
	)

	barStyle := lipgloss.NewStyle().
		Foreground(ColorSky).
		Background(ColorSky)

	for _, elev := range metrics.Elevations(p.satCount) {
		// Per-satellite signal scales with elevation: lower look angles
		// see more atmosphere.
		v := p.snrDB * elev / 90.0
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "snr", Value: v, Style: barStyle},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
