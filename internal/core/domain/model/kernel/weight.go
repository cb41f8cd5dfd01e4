package kernel

import (
	"fmt"

	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

// ErrInvalidWeight is returned when a shipment weight is zero or negative.
// Callers can detect this condition with errors.Is.
var ErrInvalidWeight = errs.NewValueIsInvalidError("weight must be greater than zero")

// ErrWeightIsNotConstructed indicates a Weight that was not created via NewWeight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight constructor")

// Weight is an immutable value object representing a shipment weight in
// kilograms. The zero value is invalid; use NewWeight.
//
// Example:
//
//	w, err := kernel.NewWeight(2.5)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(w) // Output: 2.5kg
type Weight struct {
	kg    float64
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from kilograms.
//
// Returns:
//   - Weight: a valid weight
//   - error: ErrInvalidWeight if kg <= 0
func NewWeight(kg float64) (Weight, error) {
	if kg <= 0 {
		return Weight{}, ErrInvalidWeight
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks if the Weight was properly constructed using NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kg returns the weight in kilograms.
// Guaranteed positive for properly constructed Weight instances.
func (w Weight) Kg() float64 {
	return w.kg
}

// String returns a human-readable representation such as "2.5kg".
// This method implements the fmt.Stringer interface.
func (w Weight) String() string {
	return fmt.Sprintf("%gkg", w.kg)
}
