package delivery

import (
	"errors"
	"fmt"

	"zoneship/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a requested status change is not
// an edge of the delivery's track. Callers can detect this condition
// with errors.Is.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of a delivery.
//
// Both tracks share one vocabulary; the Track decides which statuses and
// edges apply. StatusDelivered and StatusCancelled are the only terminal
// states on either track.
type Status string

const (
	// StatusPending is the initial status on both tracks.
	StatusPending Status = "pending"

	// StatusPreparing means the restaurant is preparing the order (food track).
	StatusPreparing Status = "preparing"

	// StatusDelivering means the order is on its way to the customer (food track).
	StatusDelivering Status = "delivering"

	// StatusAccepted means a manager accepted the request (service track).
	StatusAccepted Status = "accepted"

	// StatusPickedUp means the driver took custody of the goods (service track).
	StatusPickedUp Status = "picked_up"

	// StatusInTransit means the goods are moving to the dropoff (service track).
	StatusInTransit Status = "in_transit"

	// StatusDelivered is the successful terminal state on both tracks.
	StatusDelivered Status = "delivered"

	// StatusCancelled is the unsuccessful terminal state on both tracks.
	// Only reachable before custody of the goods transfers to a driver.
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further transitions are possible from
// this status on any track.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status belongs to the shared vocabulary of
// either track. Track-specific legality is checked by Track.ValidateStatus.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivering,
		StatusAccepted, StatusPickedUp, StatusInTransit,
		StatusDelivered, StatusCancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", string(s)))
}

// Track selects the edge set of the generalized status state machine.
//
// Food-order track:
//
//	pending ──> preparing ──> delivering ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Delivery-service track:
//
//	pending ──> accepted ──> picked_up ──> in_transit ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Both tracks encode the same business rule: once physical custody of
// the goods transfers to a driver, the transaction cannot be unwound,
// only completed. Cancellation is therefore unreachable past preparing
// (food) and accepted (service).
type Track int

const (
	// TrackUnknown represents an invalid or undefined track.
	TrackUnknown Track = iota

	// TrackFoodOrder is the restaurant order lifecycle.
	TrackFoodOrder

	// TrackService is the lifecycle shared by all delivery-service kinds.
	TrackService
)

// getTrackEdges returns the allowed (from -> to set) edges per track.
// Terminal statuses have no outgoing edges.
func getTrackEdges() map[Track]map[Status][]Status {
	return map[Track]map[Status][]Status{
		TrackFoodOrder: {
			StatusPending:   {StatusPreparing, StatusCancelled},
			StatusPreparing: {StatusDelivering, StatusCancelled},
			// No cancellation once in transit: a driver already committed.
			StatusDelivering: {StatusDelivered},
		},
		TrackService: {
			StatusPending:   {StatusAccepted, StatusCancelled},
			StatusAccepted:  {StatusPickedUp, StatusCancelled},
			StatusPickedUp:  {StatusInTransit},
			StatusInTransit: {StatusDelivered},
		},
	}
}

// getTrackAssignableStatuses returns the statuses during which a driver
// may be assigned or reassigned, per track. The window closes when
// custody transfers.
func getTrackAssignableStatuses() map[Track][]Status {
	return map[Track][]Status{
		TrackFoodOrder: {StatusPending, StatusPreparing},
		TrackService:   {StatusPending, StatusAccepted},
	}
}

// getTrackNames returns the display names per track.
func getTrackNames() map[Track]string {
	return map[Track]string{
		TrackUnknown:   "Unknown",
		TrackFoodOrder: "food-order",
		TrackService:   "delivery-service",
	}
}

// Validate checks if the Track value is valid.
func (t Track) Validate() error {
	if _, ok := getTrackEdges()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("track",
			fmt.Errorf("%d is not a valid track", int(t)))
	}
	return nil
}

// String returns the human-readable name of the track.
func (t Track) String() string {
	if name, ok := getTrackNames()[t]; ok {
		return name
	}
	return "Unknown"
}

// ValidateStatus checks that the status belongs to this track's state set.
func (t Track) ValidateStatus(s Status) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return nil
	}
	if _, ok := getTrackEdges()[t][s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status on the %s track", string(s), t))
	}
	return nil
}

// CanTransition reports whether (from -> to) is an edge of this track.
func (t Track) CanTransition(from, to Status) bool {
	for _, next := range getTrackEdges()[t][from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the (from -> to) edge and returns the new status.
//
// Returns:
//   - (to, nil) when the edge exists
//   - ("", ErrIllegalTransition-wrapping error) otherwise, including every
//     attempt to leave a terminal status
func (t Track) Transition(from, to Status) (Status, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	if !t.CanTransition(from, to) {
		return "", fmt.Errorf("%w: %s -> %s is not allowed on the %s track",
			ErrIllegalTransition, from, to, t)
	}
	return to, nil
}

// CanAssignDriver reports whether a driver may be assigned or reassigned
// while the delivery is in the given status.
func (t Track) CanAssignDriver(s Status) bool {
	for _, assignable := range getTrackAssignableStatuses()[t] {
		if assignable == s {
			return true
		}
	}
	return false
}
