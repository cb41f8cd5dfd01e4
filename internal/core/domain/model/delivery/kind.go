package delivery

import (
	"fmt"

	"zoneship/internal/pkg/errs"
)

// Kind discriminates the unit of work being tracked: a food order or one
// of the standalone delivery-service request variants.
//
// The kind is fixed at creation and determines which status track the
// delivery moves along: KindFoodOrder follows the food-order track,
// every other kind follows the delivery-service track.
type Kind string

const (
	// KindFoodOrder is a restaurant food order.
	KindFoodOrder Kind = "food_order"

	// KindScheduled is a delivery booked for a future time window.
	KindScheduled Kind = "scheduled"

	// KindMultiDrop is a single pickup with multiple drop points.
	KindMultiDrop Kind = "multi_drop"

	// KindLargePackage is an oversized package with explicit dimensions.
	KindLargePackage Kind = "large_package"

	// KindSendNow is an immediate point-to-point delivery.
	KindSendNow Kind = "send_now"

	// KindBuyForMe is a purchase-and-deliver request described in free text.
	KindBuyForMe Kind = "buy_for_me"
)

// getValidKinds returns the set of valid Kind values mapped to their track.
func getValidKinds() map[Kind]Track {
	return map[Kind]Track{
		KindFoodOrder:    TrackFoodOrder,
		KindScheduled:    TrackService,
		KindMultiDrop:    TrackService,
		KindLargePackage: TrackService,
		KindSendNow:      TrackService,
		KindBuyForMe:     TrackService,
	}
}

// Validate checks if the Kind value is one of the known discriminators.
func (k Kind) Validate() error {
	if _, ok := getValidKinds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%q is not a valid delivery kind", string(k)))
	}
	return nil
}

// Track returns the status track this kind moves along.
// Returns TrackUnknown for invalid kinds.
func (k Kind) Track() Track {
	if track, ok := getValidKinds()[k]; ok {
		return track
	}
	return TrackUnknown
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	return string(k)
}
