package tui

import (
	"testing"
	"time"

	"github.com/jackyw99/NR-NTN-satellite/internal/metrics"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

func newPerfPage(t *testing.T) *PerformancePage {
	t.Helper()
	store := params.New()
	store.Load(params.Defaults())
	return NewPerformancePage(store, time.Second)
}

func TestPerformance_TickAppendsAndRearms(t *testing.T) {
	t.Parallel()

	p := newPerfPage(t)
	p.OnEnter()

	cmd, _ := p.Update(perfTickMsg{gen: p.timerGen, at: time.Unix(1700000000, 0)})

	if p.buffer.Len() != 1 {
		t.Errorf("buffer len = %d, want 1", p.buffer.Len())
	}
	if cmd == nil {
		t.Error("live tick must re-arm the timer")
	}
}

func TestPerformance_StaleTickDroppedAfterExit(t *testing.T) {
	t.Parallel()

	p := newPerfPage(t)
	p.OnEnter()
	staleGen := p.timerGen
	p.OnExit()

	cmd, _ := p.Update(perfTickMsg{gen: staleGen, at: time.Now()})

	if p.buffer.Len() != 0 {
		t.Errorf("stale tick appended a sample, len = %d", p.buffer.Len())
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm the timer")
	}
}

func TestPerformance_ExitIsIdempotent(t *testing.T) {
	t.Parallel()

	p := newPerfPage(t)

	// Exit without a running timer, repeatedly: no panic, no effect.
	p.OnExit()
	p.OnExit()

	p.OnEnter()
	gen := p.timerGen
	p.OnExit()
	p.OnExit()

	if cmd, _ := p.Update(perfTickMsg{gen: gen, at: time.Now()}); cmd != nil {
		t.Error("tick from a doubly-cancelled timer re-armed")
	}
}

func TestPerformance_ReenterInvalidatesOldTimer(t *testing.T) {
	t.Parallel()

	p := newPerfPage(t)
	p.OnEnter()
	firstGen := p.timerGen
	p.OnExit()
	p.OnEnter()

	// The first timer's tick arrives late; only the current one counts.
	if cmd, _ := p.Update(perfTickMsg{gen: firstGen, at: time.Now()}); cmd != nil {
		t.Error("old generation tick re-armed after re-enter")
	}
	if cmd, _ := p.Update(perfTickMsg{gen: p.timerGen, at: time.Now()}); cmd == nil {
		t.Error("current generation tick should re-arm")
	}
}

func TestPerformance_RenderWithSparseBuffer(t *testing.T) {
	t.Parallel()

	p := newPerfPage(t)

	// Zero samples.
	before := p.buffer.Len()
	_ = p.View(100, 30)
	if p.buffer.Len() != before {
		t.Error("render mutated the buffer")
	}

	// One sample: still no line to draw, still no error.
	p.buffer.Push(metrics.Sample{At: time.Now(), Value: 42})
	_ = p.View(100, 30)
	if p.buffer.Len() != 1 {
		t.Errorf("buffer len = %d, want 1 after render", p.buffer.Len())
	}

	// Two samples: a real chart renders.
	p.buffer.Push(metrics.Sample{At: time.Now(), Value: 43})
	if out := p.View(100, 30); out == "" {
		t.Error("empty render with two samples")
	}
}

func TestPerformance_TinyTerminalDoesNotPanic(t *testing.T) {
	t.Parallel()

	p := newPerfPage(t)
	for i := 0; i < 5; i++ {
		p.buffer.Push(metrics.Sample{At: time.Now(), Value: float64(i)})
	}

	_ = p.View(1, 1)
	_ = p.View(0, 0)
}
