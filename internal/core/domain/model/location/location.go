package location

import (
	"errors"
	"fmt"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var (
	// ErrLocationIsNotConstructed is returned when a Location instance was not created
	// through the NewLocation or RestoreLocation factory methods.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

	// ErrNameIsRequired is returned when the location name is empty.
	ErrNameIsRequired = errors.New("location name is required")

	// ErrProvinceIsRequired is returned when the province is empty.
	// Provinces are free text, derived by grouping locations, not structural entities.
	ErrProvinceIsRequired = errors.New("province is required")

	// ErrPostalCodeIsRequired is returned when the postal code is empty.
	ErrPostalCodeIsRequired = errors.New("postal code is required")
)

// Kind discriminates the two administrative levels a shipping endpoint can be.
type Kind string

const (
	// KindCity marks a city-level location.
	KindCity Kind = "city"

	// KindRegency marks a regency-level (kabupaten) location.
	KindRegency Kind = "regency"
)

// Validate checks that the Kind is one of the two known values.
func (k Kind) Validate() error {
	if k != KindCity && k != KindRegency {
		return errs.NewValueIsInvalidErrorWithCause("location kind",
			fmt.Errorf("%q is not a valid location kind", string(k)))
	}
	return nil
}

// Location represents a city or regency that can serve as a shipping endpoint.
//
// Location follows these invariants:
//   - Must have a valid unique identifier
//   - Name, province and postal code must be non-empty
//   - Kind must be city or regency
//   - Zone assignment is mandatory before the location can be quoted against
//
// The struct uses private fields to ensure encapsulation; use the
// constructor so the invariants hold.
type Location struct {
	id         kernel.UUID
	name       string
	province   string
	kind       Kind
	postalCode string
	zone       kernel.Zone

	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with validation. This is the only way
// to create a valid Location, ensuring a zone is assigned up front.
//
// Parameters:
//   - id: unique identifier
//   - name: city/regency name
//   - province: free-text province name
//   - kind: city or regency
//   - postalCode: postal code of the administrative center
//   - zone: the pricing/authorization zone this location resolves to
//
// Returns:
//   - *Location: the created location if all validations pass
//   - error: joined validation errors otherwise
func NewLocation(
	id kernel.UUID,
	name string,
	province string,
	kind Kind,
	postalCode string,
	zone kernel.Zone,
) (*Location, error) {
	loc := &Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setProvince(province),
		loc.setKind(kind),
		loc.setPostalCode(postalCode),
		loc.setZone(zone),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// RestoreLocation reconstructs a Location from persistence.
// All invariants are re-validated so corrupted rows never leak into the domain.
func RestoreLocation(
	id kernel.UUID,
	name string,
	province string,
	kind Kind,
	postalCode string,
	zone kernel.Zone,
) (*Location, error) {
	return NewLocation(id, name, province, kind, postalCode, zone)
}

// Validate ensures the Location instance was properly constructed.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares two locations by their unique identifiers.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the city/regency name.
func (l *Location) Name() string {
	return l.name
}

// Province returns the free-text province name.
func (l *Location) Province() string {
	return l.province
}

// Kind returns whether the location is a city or a regency.
func (l *Location) Kind() Kind {
	return l.kind
}

// PostalCode returns the postal code.
func (l *Location) PostalCode() string {
	return l.postalCode
}

// Zone returns the pricing/authorization zone the location resolves to.
// Every location resolves to exactly one zone.
func (l *Location) Zone() kernel.Zone {
	return l.zone
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	l.name = name
	return nil
}

func (l *Location) setProvince(province string) error {
	if province == "" {
		return ErrProvinceIsRequired
	}
	l.province = province
	return nil
}

func (l *Location) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	l.kind = kind
	return nil
}

func (l *Location) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}
	l.postalCode = postalCode
	return nil
}

func (l *Location) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	l.zone = zone
	return nil
}
