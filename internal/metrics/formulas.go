// Package metrics computes the derived display values shown on the
// dashboard. Every function is a pure, deterministic function of its
// inputs; rendering never happens here. The formulas are illustrative
// approximations for a simulated constellation, not validated link-budget
// or orbital models.
package metrics

import "math"

// Reference operating point and clamp bounds for the signal formulas.
// SNR and received power degrade linearly with carrier offset from the
// 2.0 GHz reference and are clamped to keep the display plausible.
const (
	ReferenceFrequencyGHz = 2.0

	maxSNRdB      = 24.0
	minSNRdB      = 4.0
	snrSlopeDBGHz = 6.0

	bestPowerDBm     = -95.0
	worstPowerDBm    = -120.0
	powerSlopeDBmGHz = 8.0
)

// Coverage model: a fixed per-satellite footprint with a constant overlap
// discount as the constellation grows.
const (
	footprintAreaKm2 = 1_450_000.0
	overlapFactor    = 0.85
)

// Elevation model: evenly staggered look angles, floored so no satellite
// is shown below a usable horizon.
const (
	baseElevationDeg   = 62.0
	elevationStepDeg   = 7.5
	elevationFloorDeg  = 12.0
	maxTrackedSats     = 12
	groundTrackPeriods = 1.5
)

// HandoverSuccessRatePct is a fixed display constant, not a computed value.
// The dashboard has no handover simulation to derive it from.
const HandoverSuccessRatePct = 98.6

// SignalNoiseRatio returns the displayed SNR in dB for a carrier at
// carrierGHz, clamped to [minSNRdB, maxSNRdB].
func SignalNoiseRatio(carrierGHz float64) float64 {
	offset := math.Abs(carrierGHz - ReferenceFrequencyGHz)
	return clamp(maxSNRdB-snrSlopeDBGHz*offset, minSNRdB, maxSNRdB)
}

// ReceivedPower returns the displayed received power in dBm for a carrier
// at carrierGHz, clamped to [worstPowerDBm, bestPowerDBm].
func ReceivedPower(carrierGHz float64) float64 {
	offset := math.Abs(carrierGHz - ReferenceFrequencyGHz)
	return clamp(bestPowerDBm-powerSlopeDBmGHz*offset, worstPowerDBm, bestPowerDBm)
}

// CoverageArea returns the combined footprint in km² for satCount
// satellites, discounting footprint overlap. Zero or negative counts
// cover nothing.
func CoverageArea(satCount int) float64 {
	if satCount <= 0 {
		return 0
	}
	return footprintAreaKm2 * float64(satCount) * overlapFactor
}

// Elevation returns the displayed look angle in degrees for the satellite
// at index (0-based). Angles decrease down the constellation and never
// drop below the floor.
func Elevation(index int) float64 {
	e := baseElevationDeg - float64(index)*elevationStepDeg
	if e < elevationFloorDeg {
		return elevationFloorDeg
	}
	return e
}

// Elevations returns look angles for a constellation of satCount
// satellites, capped at the number of tracks the dashboard draws.
func Elevations(satCount int) []float64 {
	if satCount <= 0 {
		return nil
	}
	if satCount > maxTrackedSats {
		satCount = maxTrackedSats
	}
	out := make([]float64, satCount)
	for i := range out {
		out[i] = Elevation(i)
	}
	return out
}

// GroundTrackLat returns the illustrative ground-track latitude in degrees
// for one satellite at horizontal position x in [0,1]. The track is a sine
// with amplitude equal to the orbital inclination and a fixed phase offset
// per satellite so the constellation fans out across the plot.
func GroundTrackLat(inclinationDeg float64, satIndex, satCount int, x float64) float64 {
	if satCount < 1 {
		satCount = 1
	}
	phase := 2 * math.Pi * float64(satIndex) / float64(satCount)
	return inclinationDeg * math.Sin(groundTrackPeriods*2*math.Pi*x+phase)
}

// Throughput returns the displayed aggregate throughput in Mbps for the
// given bandwidth and SNR. Spectral efficiency is a coarse staircase of the
// SNR, not a capacity computation.
func Throughput(bandwidthMHz, snrDB float64) float64 {
	if bandwidthMHz <= 0 {
		return 0
	}
	eff := clamp(snrDB/4.0, 0.5, 6.0) // bits/s/Hz
	return bandwidthMHz * eff
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
