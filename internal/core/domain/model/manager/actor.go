package manager

import (
	"errors"

	"zoneship/internal/core/domain/model/kernel"
)

// ErrZoneForbidden is returned when an actor tries to observe or mutate a
// delivery outside its assigned zone, or to list a foreign zone. Callers
// can detect this condition with errors.Is.
var ErrZoneForbidden = errors.New("actor is not authorized for this zone")

// Actor is anyone invoking lifecycle operations: a platform admin or a
// zone-assigned shipping manager.
//
// Authorization is always evaluated against the delivery's frozen
// deliveryZone and fails closed: an actor that cannot prove access to a
// zone gets ErrZoneForbidden, even on direct id lookups.
type Actor interface {
	// AuthorizeZone returns nil if the actor may act on the given zone,
	// or an ErrZoneForbidden-wrapping error otherwise.
	AuthorizeZone(zone kernel.Zone) error
}

// Admin is the platform administrator. Admins bypass zone scoping; zone
// managers never can.
type Admin struct{}

// NewAdmin creates the admin actor.
func NewAdmin() Admin {
	return Admin{}
}

// AuthorizeZone always succeeds for admins.
func (Admin) AuthorizeZone(kernel.Zone) error {
	return nil
}
