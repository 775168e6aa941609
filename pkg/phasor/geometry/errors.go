package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// ErrInvalidAngle indicates a NaN or infinite angle.
var ErrInvalidAngle = errors.New("invalid angle")

// InvalidAngleError identifies the phase and quantity holding a non-finite angle.
type InvalidAngleError struct {
	Phase    models.Phase
	Quantity models.Quantity
	Value    float64
}

func (e *InvalidAngleError) Error() string {
	return fmt.Sprintf("phase %s %s angle is not finite (%v)", e.Phase, e.Quantity, e.Value)
}

func (e *InvalidAngleError) Unwrap() error {
	return ErrInvalidAngle
}

// IsFinite reports whether deg is neither NaN nor infinite.
func IsFinite(deg float64) bool {
	return !math.IsNaN(deg) && !math.IsInf(deg, 0)
}

// CheckFinite returns an *InvalidAngleError for the first non-finite angle
// of pair, voltage first.
func CheckFinite(pair models.PhasePair) error {
	if !IsFinite(pair.Voltage) {
		return &InvalidAngleError{Phase: pair.Phase, Quantity: models.QuantityVoltage, Value: pair.Voltage}
	}
	if !IsFinite(pair.Current) {
		return &InvalidAngleError{Phase: pair.Phase, Quantity: models.QuantityCurrent, Value: pair.Current}
	}
	return nil
}
