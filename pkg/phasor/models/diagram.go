package models

// VectorKind identifies the role of a vector in the diagram.
type VectorKind string

const (
	VectorReference VectorKind = "reference"
	VectorVoltage   VectorKind = "voltage"
	VectorCurrent   VectorKind = "current"
)

// Vector represents an arrow drawn from the origin.
type Vector struct {
	// Kind is the vector role.
	Kind VectorKind `json:"kind"`
	// Phase is empty for the reference vector.
	Phase Phase `json:"phase,omitempty"`
	// Label is the text drawn near the arrow head.
	Label string `json:"label"`
	// Angle is the normalized direction in degrees.
	Angle float64 `json:"angle_deg"`
	// Length is the unit-relative arrow length.
	Length float64 `json:"length"`
	// Dashed selects a dashed stroke.
	Dashed bool `json:"dashed,omitempty"`
}

// ArcSpec is a difference arc placed in the diagram.
type ArcSpec struct {
	DifferenceArc
	// Label is the arc label text (e.g. "ΘA").
	Label string `json:"label"`
	// Radius is the unit-relative arc radius.
	Radius float64 `json:"radius"`
	// LabelRadius is the unit-relative distance of the label from the origin.
	LabelRadius float64 `json:"label_radius"`
}

// DiagramSpec is the renderer-independent description of a phasor diagram.
type DiagramSpec struct {
	// Reference is the fixed 0° axis.
	Reference Vector `json:"reference"`
	// Voltages contains up to three voltage vectors.
	Voltages []Vector `json:"voltages"`
	// Currents contains up to three current vectors.
	Currents []Vector `json:"currents"`
	// Arcs contains zero to three phase-difference arcs.
	Arcs []ArcSpec `json:"arcs"`
	// Pairs are the phase angles the diagram was built from.
	Pairs []PhasePair `json:"pairs"`
	// Warnings lists phases left out because of invalid angles.
	Warnings []string `json:"warnings,omitempty"`
}
