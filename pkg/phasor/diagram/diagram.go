// Package diagram assembles renderer-independent phasor diagram descriptions.
package diagram

import (
	"fmt"

	"github.com/ukaji3/phasor-go/pkg/phasor/geometry"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// Unit-relative lengths of the diagram elements.
const (
	ReferenceLength = 1.0
	VoltageLength   = 1.0
	CurrentLength   = 0.9
	ArcRadius       = 0.4
	ArcLabelRadius  = 0.45
)

// ReferenceLabel is the text drawn next to the 0° axis.
const ReferenceLabel = "Referencia (0°)"

// InvalidAnglePolicy selects how non-finite angles are handled.
type InvalidAnglePolicy string

const (
	// PolicyFail aborts the whole diagram on the first non-finite angle.
	PolicyFail InvalidAnglePolicy = "fail"
	// PolicyDegrade drops the arc and non-finite vectors of the affected phase.
	PolicyDegrade InvalidAnglePolicy = "degrade"
)

// ParsePolicy parses a policy name; "" selects PolicyFail.
func ParsePolicy(s string) (InvalidAnglePolicy, error) {
	switch InvalidAnglePolicy(s) {
	case "", PolicyFail:
		return PolicyFail, nil
	case PolicyDegrade:
		return PolicyDegrade, nil
	default:
		return "", fmt.Errorf("invalid angle policy: %s (must be fail or degrade)", s)
	}
}

// Reference returns the fixed dashed 0° axis.
func Reference() models.Vector {
	return models.Vector{
		Kind:   models.VectorReference,
		Label:  ReferenceLabel,
		Angle:  0,
		Length: ReferenceLength,
		Dashed: true,
	}
}

// Assemble combines phase angles and their difference arcs into a diagram.
// Vectors with non-finite angles are left out.
func Assemble(pairs []models.PhasePair, arcs []models.DifferenceArc) models.DiagramSpec {
	spec := models.DiagramSpec{
		Reference: Reference(),
		Voltages:  make([]models.Vector, 0, len(pairs)),
		Currents:  make([]models.Vector, 0, len(pairs)),
		Arcs:      make([]models.ArcSpec, 0, len(arcs)),
		Pairs:     append([]models.PhasePair(nil), pairs...),
	}

	for _, p := range pairs {
		if geometry.IsFinite(p.Voltage) {
			spec.Voltages = append(spec.Voltages, models.Vector{
				Kind:   models.VectorVoltage,
				Phase:  p.Phase,
				Label:  "V" + string(p.Phase),
				Angle:  geometry.Normalize(p.Voltage),
				Length: VoltageLength,
			})
		}
		if geometry.IsFinite(p.Current) {
			spec.Currents = append(spec.Currents, models.Vector{
				Kind:   models.VectorCurrent,
				Phase:  p.Phase,
				Label:  "I" + string(p.Phase),
				Angle:  geometry.Normalize(p.Current),
				Length: CurrentLength,
			})
		}
	}

	for _, a := range arcs {
		spec.Arcs = append(spec.Arcs, models.ArcSpec{
			DifferenceArc: a,
			Label:         "Θ" + string(a.Phase),
			Radius:        ArcRadius,
			LabelRadius:   ArcLabelRadius,
		})
	}

	return spec
}

// Build computes the difference arc of every phase and assembles the
// diagram. Under PolicyFail the first invalid angle is returned as an error;
// under PolicyDegrade it is recorded in the diagram warnings instead.
func Build(pairs []models.PhasePair, policy InvalidAnglePolicy) (models.DiagramSpec, error) {
	arcs := make([]models.DifferenceArc, 0, len(pairs))
	var warnings []string

	for _, p := range pairs {
		arc, ok, err := geometry.ComputeArc(p)
		if err != nil {
			if policy != PolicyDegrade {
				return models.DiagramSpec{}, err
			}
			warnings = append(warnings, err.Error())
			continue
		}
		if ok {
			arcs = append(arcs, arc)
		}
	}

	spec := Assemble(pairs, arcs)
	spec.Warnings = warnings
	return spec, nil
}
