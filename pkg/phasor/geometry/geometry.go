// Package geometry computes phase angles and phase-difference arcs for
// phasor diagrams.
//
// Angles follow the diagram convention: 0° points east and angles grow in
// the drawing direction of the polar axis. A positive difference means
// voltage leads current.
package geometry

import (
	"math"

	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const fullTurn = 2 * math.Pi

// Normalize maps degrees into [0, 360).
func Normalize(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// SignedDiff returns voltage minus current in (-180, 180]. Both angles must
// already be normalized. Opposition is always reported as +180.
func SignedDiff(voltage, current float64) float64 {
	d := math.Mod(voltage-current+360, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// wrapRadians maps radians into [0, 2π).
func wrapRadians(rad float64) float64 {
	r := math.Mod(math.Mod(rad, fullTurn)+fullTurn, fullTurn)
	if r >= fullTurn {
		return 0
	}
	return r
}

// ComputeArc derives the difference arc of one phase. The arc starts at the
// current angle and ends at the voltage angle, sweeping through |SignedDiff|
// in the direction of its sign. ok is false when the angles coincide, in
// which case no arc or label is drawn.
func ComputeArc(pair models.PhasePair) (arc models.DifferenceArc, ok bool, err error) {
	if err := CheckFinite(pair); err != nil {
		return models.DifferenceArc{}, false, err
	}

	v := Normalize(pair.Voltage)
	i := Normalize(pair.Current)
	diff := SignedDiff(v, i)
	if diff == 0 {
		return models.DifferenceArc{}, false, nil
	}

	start := Radians(i)
	end := Radians(v)
	arc = models.DifferenceArc{
		Phase:      pair.Phase,
		Start:      start,
		SignedDiff: diff,
	}
	if (diff < 0 && end > start) || (diff > 0 && end < start) {
		end += math.Copysign(fullTurn, diff)
		arc.SweepExtended = true
	}
	arc.End = end
	arc.Mid = wrapRadians(stat.Mean([]float64{start, end}, nil))

	if diff > 0 {
		arc.Leading = true
		return arc, true, nil
	}

	rot := Degrees(arc.Mid)
	if rot > 90 && rot < 270 {
		rot += 180
	}
	arc.LabelRotation = math.Mod(rot, 360)
	return arc, true, nil
}

// Sample returns n evenly spaced angles from arc.Start to arc.End, both
// included. n is raised to 2 when smaller.
func Sample(arc models.DifferenceArc, n int) []float64 {
	if n < 2 {
		n = 2
	}
	return floats.Span(make([]float64, n), arc.Start, arc.End)
}
