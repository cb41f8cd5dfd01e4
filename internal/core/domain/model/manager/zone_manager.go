package manager

import (
	"errors"
	"fmt"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/pkg/guard"
)

var (
	// ErrZoneManagerIsNotConstructed is returned when a ZoneManager was not
	// created through the NewZoneManager factory method.
	ErrZoneManagerIsNotConstructed = errors.New("ZoneManager must be created via NewZoneManager constructor")

	// ErrManagerNameIsRequired is returned when the manager name is empty.
	ErrManagerNameIsRequired = errors.New("manager name is required")

	// ErrTokenIsRequired is returned when the bearer token is empty.
	ErrTokenIsRequired = errors.New("manager token is required")
)

// ZoneManager is an actor authorized to view and mutate only the
// deliveries whose frozen deliveryZone equals the manager's assigned
// zone. It holds a unique bearer token used by the HTTP adapter to
// resolve the actor.
type ZoneManager struct {
	id    kernel.UUID
	name  string
	zone  kernel.Zone
	token string

	guard guard.ConstructorGuard
}

// NewZoneManager creates a ZoneManager with validation.
//
// Parameters:
//   - id: unique identifier
//   - name: display name
//   - zone: the single zone this manager is scoped to
//   - token: unique bearer token for authentication
func NewZoneManager(id kernel.UUID, name string, zone kernel.Zone, token string) (*ZoneManager, error) {
	m := &ZoneManager{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setZone(zone),
		m.setToken(token),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreZoneManager reconstructs a ZoneManager from persistence, re-validating all invariants.
func RestoreZoneManager(id kernel.UUID, name string, zone kernel.Zone, token string) (*ZoneManager, error) {
	return NewZoneManager(id, name, zone, token)
}

// Validate ensures the ZoneManager instance was properly constructed.
func (m *ZoneManager) Validate() error {
	if m == nil {
		return ErrZoneManagerIsNotConstructed
	}
	return m.guard.Validate(ErrZoneManagerIsNotConstructed)
}

// ID returns the manager's unique identifier.
func (m *ZoneManager) ID() kernel.UUID {
	return m.id
}

// Name returns the manager's display name.
func (m *ZoneManager) Name() string {
	return m.name
}

// Zone returns the single zone the manager is scoped to.
func (m *ZoneManager) Zone() kernel.Zone {
	return m.zone
}

// Token returns the manager's bearer token.
func (m *ZoneManager) Token() string {
	return m.token
}

// AuthorizeZone implements Actor. A zone manager may only act on its own
// assigned zone; every other zone fails closed with ErrZoneForbidden.
func (m *ZoneManager) AuthorizeZone(zone kernel.Zone) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrZoneForbidden, err)
	}
	// The message names only the manager's own assignment: a probing
	// manager must not learn which zone the target belongs to.
	if m.zone != zone {
		return fmt.Errorf("%w: manager is assigned to %s", ErrZoneForbidden, m.zone)
	}
	return nil
}

func (m *ZoneManager) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *ZoneManager) setName(name string) error {
	if name == "" {
		return ErrManagerNameIsRequired
	}
	m.name = name
	return nil
}

func (m *ZoneManager) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	m.zone = zone
	return nil
}

func (m *ZoneManager) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}
	m.token = token
	return nil
}
