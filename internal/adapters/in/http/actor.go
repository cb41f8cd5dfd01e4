package http

import (
	"context"
	"errors"
	"strings"

	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/core/ports"
	"zoneship/internal/pkg/errs"
)

var (
	// ErrTokenIsMissing is returned when a protected route is called
	// without an Authorization header.
	ErrTokenIsMissing = errors.New("bearer token is required")

	// ErrTokenIsUnknown is returned when a presented token matches
	// neither the admin token nor any registered zone manager.
	ErrTokenIsUnknown = errors.New("bearer token is not recognized")
)

const bearerPrefix = "Bearer "

// ActorResolver turns bearer tokens into acting principals. The admin
// token from configuration maps to the Admin actor; any other token is
// looked up against the registered zone managers, which scopes every
// subsequent authorization check to the manager's zone.
type ActorResolver struct {
	adminToken string
	managers   ports.ZoneManagerRepository
}

// NewActorResolver creates a resolver backed by the given admin token
// and zone manager repository.
func NewActorResolver(adminToken string, managers ports.ZoneManagerRepository) *ActorResolver {
	return &ActorResolver{
		adminToken: adminToken,
		managers:   managers,
	}
}

// Resolve maps the Authorization header value to an actor.
// Unknown tokens are rejected without revealing whether the token ever
// existed.
func (r *ActorResolver) Resolve(ctx context.Context, authorization string) (manager.Actor, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, ErrTokenIsMissing
	}

	token := strings.TrimPrefix(authorization, bearerPrefix)
	if token == "" {
		return nil, ErrTokenIsMissing
	}

	if r.adminToken != "" && token == r.adminToken {
		return manager.NewAdmin(), nil
	}

	zoneManager, err := r.managers.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrTokenIsUnknown
		}
		return nil, err
	}

	return zoneManager, nil
}
