package models

import (
	"encoding/json"
	"math"
)

// Phase is one of the three conductors of a three-phase system.
type Phase string

const (
	PhaseA Phase = "A"
	PhaseB Phase = "B"
	PhaseC Phase = "C"
)

// Phases lists the phases in column order of the report rows.
var Phases = [3]Phase{PhaseA, PhaseB, PhaseC}

// Quantity names which angle of a phase a value belongs to.
type Quantity string

const (
	QuantityVoltage Quantity = "voltage"
	QuantityCurrent Quantity = "current"
)

// PhasePair holds the raw voltage and current angles of one phase, in degrees.
type PhasePair struct {
	// Phase is the conductor the angles belong to.
	Phase Phase `json:"phase"`
	// Voltage is the voltage phase angle as read from the report.
	Voltage float64 `json:"voltage_deg"`
	// Current is the current phase angle as read from the report.
	Current float64 `json:"current_deg"`
}

// MarshalJSON encodes non-finite angles as null.
func (p PhasePair) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase   Phase    `json:"phase"`
		Voltage *float64 `json:"voltage_deg"`
		Current *float64 `json:"current_deg"`
	}{p.Phase, finitePtr(p.Voltage), finitePtr(p.Current)})
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// DifferenceArc describes the arc drawn between the current and voltage
// vectors of one phase.
type DifferenceArc struct {
	// Phase is the conductor the arc belongs to.
	Phase Phase `json:"phase"`
	// Start is the normalized current angle in radians.
	Start float64 `json:"start_rad"`
	// End is the normalized voltage angle in radians, shifted by one turn when
	// SweepExtended is set.
	End float64 `json:"end_rad"`
	// SignedDiff is voltage minus current in degrees, in (-180, 180].
	SignedDiff float64 `json:"signed_diff_deg"`
	// SweepExtended reports whether End was moved by a full turn.
	SweepExtended bool `json:"sweep_extended"`
	// Mid is the label angle in radians, in [0, 2π).
	Mid float64 `json:"mid_rad"`
	// LabelRotation is the counter-clockwise text rotation in degrees.
	LabelRotation float64 `json:"label_rotation_deg"`
	// Leading is true when voltage leads current.
	Leading bool `json:"leading"`
}
