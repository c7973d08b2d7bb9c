package metrics

import (
	"math"
	"time"
)

// Sample is one timestamped point in a rolling chart history.
type Sample struct {
	At    time.Time
	Value float64
}

// SampleBuffer is a fixed-capacity FIFO of samples backing a
// trailing-window chart. Pushing past capacity evicts the oldest sample;
// length never exceeds capacity.
type SampleBuffer struct {
	capacity int
	samples  []Sample
}

// NewSampleBuffer creates a buffer holding at most capacity samples.
// A capacity below one is treated as one.
func NewSampleBuffer(capacity int) *SampleBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleBuffer{
		capacity: capacity,
		samples:  make([]Sample, 0, capacity),
	}
}

// Push appends a sample, evicting the oldest when full.
func (b *SampleBuffer) Push(s Sample) {
	if len(b.samples) == b.capacity {
		copy(b.samples, b.samples[1:])
		b.samples[len(b.samples)-1] = s
		return
	}
	b.samples = append(b.samples, s)
}

// Len returns the number of buffered samples.
func (b *SampleBuffer) Len() int { return len(b.samples) }

// Cap returns the buffer capacity.
func (b *SampleBuffer) Cap() int { return b.capacity }

// Samples returns the buffered samples oldest-first. The returned slice is
// a copy.
func (b *SampleBuffer) Samples() []Sample {
	return append([]Sample(nil), b.samples...)
}

// Values returns just the sample values oldest-first, as a copy.
func (b *SampleBuffer) Values() []float64 {
	out := make([]float64, len(b.samples))
	for i, s := range b.samples {
		out[i] = s.Value
	}
	return out
}

// Latest returns the newest sample and whether one exists.
func (b *SampleBuffer) Latest() (Sample, bool) {
	if len(b.samples) == 0 {
		return Sample{}, false
	}
	return b.samples[len(b.samples)-1], true
}

// SyntheticThroughput produces the live-chart feed: the deterministic
// throughput figure for the current parameters with a wobble derived from
// the sample timestamp, so the chart moves without any real measurement
// behind it.
func SyntheticThroughput(at time.Time, baseMbps float64) float64 {
	t := float64(at.Unix())
	wobble := 0.08*math.Sin(t/7.0) + 0.04*math.Sin(t/2.3)
	return baseMbps * (1 + wobble)
}
