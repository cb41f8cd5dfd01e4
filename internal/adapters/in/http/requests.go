package http

import (
	"time"

	"zoneship/internal/core/domain/model/delivery"
)

// Request bodies accepted by the API. Identifiers arrive as UUID
// strings and are validated by the kernel; enum-like fields (kind,
// status, location kind) are validated by their domain types.

type quoteRequest struct {
	PickupLocationID  string  `json:"pickup_location_id"`
	DropoffLocationID string  `json:"dropoff_location_id"`
	TierName          string  `json:"tier_name"`
	WeightKg          float64 `json:"weight_kg"`
}

type createDeliveryRequest struct {
	CustomerID        string          `json:"customer_id"`
	PickupLocationID  string          `json:"pickup_location_id"`
	DropoffLocationID string          `json:"dropoff_location_id"`
	PickupAddress     string          `json:"pickup_address"`
	DropoffAddress    string          `json:"dropoff_address"`
	Kind              string          `json:"kind"`
	Payload           *payloadRequest `json:"payload,omitempty"`
	TierName          string          `json:"tier_name"`
	WeightKg          float64         `json:"weight_kg"`
}

type payloadRequest struct {
	DropPoints []string           `json:"drop_points,omitempty"`
	Dimensions *dimensionsRequest `json:"dimensions,omitempty"`
	Window     *windowRequest     `json:"window,omitempty"`
	Request    string             `json:"request,omitempty"`
}

type dimensionsRequest struct {
	LengthCm int `json:"length_cm"`
	WidthCm  int `json:"width_cm"`
	HeightCm int `json:"height_cm"`
}

type windowRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// toDomain maps the request payload onto the kind-specific domain
// payload. A nil request maps to the empty payload, which is what
// kinds without extra data expect.
func (p *payloadRequest) toDomain() delivery.Payload {
	if p == nil {
		return delivery.Payload{}
	}

	payload := delivery.Payload{
		DropPoints: p.DropPoints,
		Request:    p.Request,
	}

	if p.Dimensions != nil {
		payload.Dimensions = &delivery.Dimensions{
			LengthCm: p.Dimensions.LengthCm,
			WidthCm:  p.Dimensions.WidthCm,
			HeightCm: p.Dimensions.HeightCm,
		}
	}

	if p.Window != nil {
		payload.Window = &delivery.ScheduleWindow{
			Start: p.Window.Start,
			End:   p.Window.End,
		}
	}

	return payload
}

type transitionDeliveryRequest struct {
	Status string `json:"status"`
}

type assignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

type createLocationRequest struct {
	Name       string `json:"name"`
	Province   string `json:"province"`
	Kind       string `json:"kind"`
	PostalCode string `json:"postal_code"`
	Zone       int    `json:"zone"`
}

type upsertServiceTierRequest struct {
	Name          string  `json:"name"`
	BaseRatePerKg int64   `json:"base_rate_per_kg"`
	Multiplier    float64 `json:"multiplier"`
	Estimate      string  `json:"estimate"`
}

type upsertZoneTariffRequest struct {
	OriginZone int   `json:"origin_zone"`
	DestZone   int   `json:"dest_zone"`
	RatePerKg  int64 `json:"rate_per_kg"`
}

type createZoneManagerRequest struct {
	Name  string `json:"name"`
	Zone  int    `json:"zone"`
	Token string `json:"token"`
}

// createdResponse reports the server-generated identifier of a newly
// created resource.
type createdResponse struct {
	ID string `json:"id"`
}
