// Package http is the inbound HTTP adapter: echo routes, bearer-token
// actor resolution, and the mapping from domain errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"zoneship/internal/core/application/usecases/commands"
	"zoneship/internal/core/application/usecases/queries"
	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"
	"zoneship/internal/core/domain/model/manager"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// Customer-facing routes (quotes, delivery creation) are public;
// lifecycle and listing routes require a bearer token that resolves to
// an actor; configuration routes additionally require the admin token.
type Server struct {
	// Command handlers
	createDeliveryHandler     commands.CreateDeliveryCommandHandler
	transitionDeliveryHandler commands.TransitionDeliveryCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	createLocationHandler     commands.CreateLocationCommandHandler
	upsertServiceTierHandler  commands.UpsertServiceTierCommandHandler
	upsertZoneTariffHandler   commands.UpsertZoneTariffCommandHandler
	createZoneManagerHandler  commands.CreateZoneManagerCommandHandler

	// Query handlers
	getQuoteHandler       queries.GetQuoteQueryHandler
	listDeliveriesHandler queries.ListDeliveriesByZoneQueryHandler

	actors *ActorResolver
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	transitionDeliveryHandler commands.TransitionDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	createLocationHandler commands.CreateLocationCommandHandler,
	upsertServiceTierHandler commands.UpsertServiceTierCommandHandler,
	upsertZoneTariffHandler commands.UpsertZoneTariffCommandHandler,
	createZoneManagerHandler commands.CreateZoneManagerCommandHandler,
	getQuoteHandler queries.GetQuoteQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesByZoneQueryHandler,
	actors *ActorResolver,
) *Server {
	return &Server{
		createDeliveryHandler:     createDeliveryHandler,
		transitionDeliveryHandler: transitionDeliveryHandler,
		assignDriverHandler:       assignDriverHandler,
		createLocationHandler:     createLocationHandler,
		upsertServiceTierHandler:  upsertServiceTierHandler,
		upsertZoneTariffHandler:   upsertZoneTariffHandler,
		createZoneManagerHandler:  createZoneManagerHandler,
		getQuoteHandler:           getQuoteHandler,
		listDeliveriesHandler:     listDeliveriesHandler,
		actors:                    actors,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/quotes", s.GetQuote)
	api.POST("/deliveries", s.CreateDelivery)
	api.POST("/deliveries/:id/status", s.TransitionDelivery)
	api.POST("/deliveries/:id/driver", s.AssignDriver)
	api.GET("/zones/:zone/deliveries", s.ListZoneDeliveries)
	api.POST("/locations", s.CreateLocation)
	api.POST("/service-tiers", s.UpsertServiceTier)
	api.POST("/zone-tariffs", s.UpsertZoneTariff)
	api.POST("/zone-managers", s.CreateZoneManager)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetQuote handles POST /api/v1/quotes - prices a shipment without creating anything.
func (s *Server) GetQuote(ctx echo.Context) error {
	var req quoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	pickupID, err := kernel.UUIDFromString(req.PickupLocationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	dropoffID, err := kernel.UUIDFromString(req.DropoffLocationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	weight, err := kernel.NewWeight(req.WeightKg)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetQuoteQuery(pickupID, dropoffID, req.TierName, weight)
	if err != nil {
		return badRequest(ctx, err)
	}

	quote, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quote)
}

// CreateDelivery handles POST /api/v1/deliveries - places a delivery.
// The price is computed server-side; any price fields a client sends are ignored.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	pickupID, err := kernel.UUIDFromString(req.PickupLocationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	dropoffID, err := kernel.UUIDFromString(req.DropoffLocationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	weight, err := kernel.NewWeight(req.WeightKg)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID,
		customerID,
		pickupID,
		dropoffID,
		req.PickupAddress,
		req.DropoffAddress,
		delivery.Kind(req.Kind),
		req.Payload.toDomain(),
		req.TierName,
		weight,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: deliveryID.String()})
}

// TransitionDelivery handles POST /api/v1/deliveries/:id/status - moves a
// delivery along its track on behalf of the authenticated actor.
func (s *Server) TransitionDelivery(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req transitionDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, delivery.Status(req.Status), actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.transitionDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/deliveries/:id/driver - assigns or
// reassigns a driver while the delivery is still assignable.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req assignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListZoneDeliveries handles GET /api/v1/zones/:zone/deliveries - the zone
// dashboard listing, optionally narrowed with a ?status= filter.
func (s *Server) ListZoneDeliveries(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	zoneNumber, err := strconv.Atoi(ctx.Param("zone"))
	if err != nil {
		return badRequest(ctx, errors.New("zone must be a number"))
	}

	zone, err := kernel.NewZone(zoneNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	var query queries.ListDeliveriesByZoneQuery
	if status := ctx.QueryParam("status"); status != "" {
		query, err = queries.NewListDeliveriesByZoneQueryWithStatus(zone, delivery.Status(status), actor)
	} else {
		query, err = queries.NewListDeliveriesByZoneQuery(zone, actor)
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveries, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

// CreateLocation handles POST /api/v1/locations - registers a shipping endpoint.
func (s *Server) CreateLocation(ctx echo.Context) error {
	if ok, err := s.requireAdmin(ctx); !ok {
		return err
	}

	var req createLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	zone, err := kernel.NewZone(req.Zone)
	if err != nil {
		return badRequest(ctx, err)
	}

	locationID := kernel.NewUUID()

	cmd, err := commands.NewCreateLocationCommand(
		locationID,
		req.Name,
		req.Province,
		location.Kind(req.Kind),
		req.PostalCode,
		zone,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: locationID.String()})
}

// UpsertServiceTier handles POST /api/v1/service-tiers - creates or replaces
// a shipping product, keyed by name.
func (s *Server) UpsertServiceTier(ctx echo.Context) error {
	if ok, err := s.requireAdmin(ctx); !ok {
		return err
	}

	var req upsertServiceTierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewUpsertServiceTierCommand(
		kernel.NewUUID(),
		req.Name,
		req.BaseRatePerKg,
		req.Multiplier,
		req.Estimate,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.upsertServiceTierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpsertZoneTariff handles POST /api/v1/zone-tariffs - sets the per-kg rate
// for one ordered zone pair.
func (s *Server) UpsertZoneTariff(ctx echo.Context) error {
	if ok, err := s.requireAdmin(ctx); !ok {
		return err
	}

	var req upsertZoneTariffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	originZone, err := kernel.NewZone(req.OriginZone)
	if err != nil {
		return badRequest(ctx, err)
	}

	destZone, err := kernel.NewZone(req.DestZone)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpsertZoneTariffCommand(originZone, destZone, req.RatePerKg)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.upsertZoneTariffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateZoneManager handles POST /api/v1/zone-managers - registers an
// operations manager scoped to one zone.
func (s *Server) CreateZoneManager(ctx echo.Context) error {
	if ok, err := s.requireAdmin(ctx); !ok {
		return err
	}

	var req createZoneManagerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	zone, err := kernel.NewZone(req.Zone)
	if err != nil {
		return badRequest(ctx, err)
	}

	managerID := kernel.NewUUID()

	cmd, err := commands.NewCreateZoneManagerCommand(managerID, req.Name, zone, req.Token)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createZoneManagerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: managerID.String()})
}

// resolveActor maps the request's bearer token to an actor.
func (s *Server) resolveActor(ctx echo.Context) (manager.Actor, error) {
	return s.actors.Resolve(ctx.Request().Context(), ctx.Request().Header.Get(echo.HeaderAuthorization))
}

// requireAdmin resolves the actor and writes the error response itself
// when the caller is not the platform admin. The boolean reports
// whether the request may proceed.
func (s *Server) requireAdmin(ctx echo.Context) (bool, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return false, unauthorized(ctx, err)
	}

	if _, ok := actor.(manager.Admin); !ok {
		return false, ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "admin access required",
		})
	}

	return true, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func domainError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func unauthorized(ctx echo.Context, err error) error {
	code := http.StatusUnauthorized
	if !errors.Is(err, ErrTokenIsMissing) && !errors.Is(err, ErrTokenIsUnknown) {
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
