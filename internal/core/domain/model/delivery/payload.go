package delivery

import (
	"errors"
	"fmt"
	"time"

	"zoneship/internal/pkg/errs"
)

var (
	// ErrDropPointsRequired is returned when a multi-drop delivery carries
	// fewer than two drop points.
	ErrDropPointsRequired = errors.New("multi-drop delivery requires at least two drop points")

	// ErrDimensionsRequired is returned when a large-package delivery has
	// no package dimensions.
	ErrDimensionsRequired = errors.New("large-package delivery requires package dimensions")

	// ErrScheduleWindowRequired is returned when a scheduled delivery has
	// no schedule window.
	ErrScheduleWindowRequired = errors.New("scheduled delivery requires a schedule window")

	// ErrRequestTextRequired is returned when a buy-for-me delivery has an
	// empty request description.
	ErrRequestTextRequired = errors.New("buy-for-me delivery requires a request description")
)

// Dimensions describes a large package in centimeters.
type Dimensions struct {
	LengthCm int
	WidthCm  int
	HeightCm int
}

// Validate checks that every dimension is positive.
func (d Dimensions) Validate() error {
	if d.LengthCm <= 0 || d.WidthCm <= 0 || d.HeightCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%dx%dx%d contains a non-positive side", d.LengthCm, d.WidthCm, d.HeightCm))
	}
	return nil
}

// ScheduleWindow is the time range a scheduled delivery is booked for.
type ScheduleWindow struct {
	Start time.Time
	End   time.Time
}

// Validate checks that the window is non-empty and ordered.
func (w ScheduleWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() || !w.Start.Before(w.End) {
		return errs.NewValueIsInvalidErrorWithCause("scheduleWindow",
			fmt.Errorf("window start %s must be before end %s", w.Start, w.End))
	}
	return nil
}

// Payload carries the kind-specific data of a delivery. Exactly the
// fields relevant to the delivery's kind are validated; the rest stay
// empty. The payload is frozen at creation and never mutated by the
// lifecycle.
type Payload struct {
	// DropPoints lists the drop descriptions for multi-drop deliveries.
	DropPoints []string

	// Dimensions holds the package size for large-package deliveries.
	Dimensions *Dimensions

	// Window holds the booking window for scheduled deliveries.
	Window *ScheduleWindow

	// Request holds the free-text purchase request for buy-for-me deliveries.
	Request string
}

// ValidateFor checks the payload against the requirements of the given kind.
func (p Payload) ValidateFor(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	switch kind {
	case KindMultiDrop:
		if len(p.DropPoints) < 2 {
			return ErrDropPointsRequired
		}
		for _, point := range p.DropPoints {
			if point == "" {
				return errs.NewValueIsRequiredError("drop point description")
			}
		}
	case KindLargePackage:
		if p.Dimensions == nil {
			return ErrDimensionsRequired
		}
		return p.Dimensions.Validate()
	case KindScheduled:
		if p.Window == nil {
			return ErrScheduleWindowRequired
		}
		return p.Window.Validate()
	case KindBuyForMe:
		if p.Request == "" {
			return ErrRequestTextRequired
		}
	case KindFoodOrder, KindSendNow:
		// No kind-specific payload.
	}

	return nil
}
