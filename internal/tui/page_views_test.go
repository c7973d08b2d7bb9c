package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

func seededStore() *params.Store {
	s := params.New()
	s.Load(params.Defaults())
	return s
}

func TestOverviewPage_RecomputesOnParamChange(t *testing.T) {
	t.Parallel()

	store := seededStore()
	p := NewOverviewPage(store)

	atRef := p.snrDB
	store.Set(params.KeyCarrierFrequency, "3.5")

	if p.snrDB >= atRef {
		t.Errorf("snr = %v, want below reference value %v after detuning", p.snrDB, atRef)
	}
}

func TestOverviewPage_ViewShowsDerivedFigures(t *testing.T) {
	t.Parallel()

	p := NewOverviewPage(seededStore())
	out := p.View(100, 30)

	for _, want := range []string{"SNR", "Received power", "Coverage area", "Handover success"} {
		if !strings.Contains(out, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestTrajectoryPage_SelectionClampedToSatCount(t *testing.T) {
	t.Parallel()

	store := seededStore()
	store.Set(params.KeySatelliteCount, "3")
	p := NewTrajectoryPage(store)

	for i := 0; i < 10; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if p.selected != 2 {
		t.Errorf("selected = %d, want 2", p.selected)
	}

	// Shrinking the constellation pulls the selection back in range.
	store.Set(params.KeySatelliteCount, "1")
	if p.selected != 0 {
		t.Errorf("selected = %d, want 0 after shrink", p.selected)
	}
}

func TestTrajectoryPage_EnterRequestsSatelliteDetail(t *testing.T) {
	t.Parallel()

	store := seededStore()
	p := NewTrajectoryPage(store)
	p.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, nav := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if nav == nil || nav.Detail == nil {
		t.Fatal("enter should request a detail view")
	}
	if nav.Detail.Type != "satellite" || nav.Detail.ID != "SAT-2" {
		t.Errorf("detail = %+v, want satellite/SAT-2", nav.Detail)
	}
}

func TestTrajectoryPage_RendersWithoutSatellites(t *testing.T) {
	t.Parallel()

	store := seededStore()
	store.Set(params.KeySatelliteCount, "0")
	p := NewTrajectoryPage(store)

	if out := p.View(100, 30); out == "" {
		t.Error("empty render")
	}
}

func TestCoveragePage_AreaGrowsWithConstellation(t *testing.T) {
	t.Parallel()

	store := seededStore()
	p := NewCoveragePage(store)

	store.Set(params.KeySatelliteCount, "2")
	small := p.areaKm2
	store.Set(params.KeySatelliteCount, "8")
	large := p.areaKm2

	if large <= small {
		t.Errorf("area did not grow: %v <= %v", large, small)
	}
}

func TestCoveragePage_ZeroSatellitesRendersEmptyDisc(t *testing.T) {
	t.Parallel()

	store := seededStore()
	store.Set(params.KeySatelliteCount, "0")
	p := NewCoveragePage(store)

	out := p.View(100, 30)
	if strings.ContainsAny(out, "▒█") {
		t.Error("zero satellites must not draw a footprint")
	}
}

func TestPages_HiddenRedrawIsCheapAndSafe(t *testing.T) {
	t.Parallel()

	store := seededStore()
	pages := []Page{
		NewOverviewPage(store),
		NewConfigPage(store),
		NewTrajectoryPage(store),
		NewCoveragePage(store),
	}

	// Mutations land on every page, active or not; rendering afterwards
	// from any of them must be safe at any size.
	store.Set(params.KeyCarrierFrequency, "7")
	store.Set(params.KeySatelliteCount, "not-a-number")

	for _, p := range pages {
		_ = p.View(10, 5)
		_ = p.View(200, 60)
	}
}
