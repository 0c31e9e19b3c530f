package usecase

import (
	"context"
	"time"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
	"loadboard-service/pkg/logger"
)

// LoadCreate is the accepted shape for posting a load. Required fields are
// pointers too so that "missing" is detectable and reported by name instead
// of silently zero-valued.
type LoadCreate struct {
	OriginCounty      *string    `json:"origin_county"`
	OriginState       *string    `json:"origin_state"`
	DestinationCounty *string    `json:"destination_county"`
	DestinationState  *string    `json:"destination_state"`
	PickupDatetime    *time.Time `json:"pickup_datetime"`
	DeliveryDatetime  *time.Time `json:"delivery_datetime"`
	EquipmentType     *string    `json:"equipment_type"`
	LoadboardRate     *float64   `json:"loadboard_rate"`
	MaxLoadboardRate  *float64   `json:"max_loadboard_rate"`
	Notes             *string    `json:"notes"`
	Weight            *float64   `json:"weight"`
	CommodityType     *string    `json:"commodity_type"`
	NumOfPieces       *int       `json:"num_of_pieces"`
	Miles             *float64   `json:"miles"`
	Length            *float64   `json:"length"`
	Width             *float64   `json:"width"`
	Height            *float64   `json:"height"`
}

// Validate checks the required fields and produces the entity to persist.
// No cross-field checks: delivery before pickup is accepted.
func (r *LoadCreate) Validate() (*entity.Load, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"origin_county", r.OriginCounty != nil},
		{"origin_state", r.OriginState != nil},
		{"destination_county", r.DestinationCounty != nil},
		{"destination_state", r.DestinationState != nil},
		{"pickup_datetime", r.PickupDatetime != nil},
		{"delivery_datetime", r.DeliveryDatetime != nil},
	}
	for _, f := range required {
		if !f.ok {
			return nil, apperrors.NewFieldError(f.name, "required")
		}
	}

	return &entity.Load{
		OriginCounty:      *r.OriginCounty,
		OriginState:       *r.OriginState,
		DestinationCounty: *r.DestinationCounty,
		DestinationState:  *r.DestinationState,
		PickupDatetime:    *r.PickupDatetime,
		DeliveryDatetime:  *r.DeliveryDatetime,
		EquipmentType:     r.EquipmentType,
		LoadboardRate:     r.LoadboardRate,
		MaxLoadboardRate:  r.MaxLoadboardRate,
		Notes:             r.Notes,
		Weight:            r.Weight,
		CommodityType:     r.CommodityType,
		NumOfPieces:       r.NumOfPieces,
		Miles:             r.Miles,
		Length:            r.Length,
		Width:             r.Width,
		Height:            r.Height,
	}, nil
}

// LoadService handles posting and querying loads
type LoadService struct {
	loads repository.LoadRepository
	log   logger.Logger
	now   func() time.Time
}

// NewLoadService creates a new load service
func NewLoadService(loads repository.LoadRepository, log logger.Logger) *LoadService {
	return &LoadService{
		loads: loads,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and persists a new load posting.
func (s *LoadService) Create(ctx context.Context, req *LoadCreate) (*entity.Load, error) {
	load, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.loads.Create(ctx, load); err != nil {
		return nil, err
	}
	s.log.Info("load created", "load_id", load.LoadID,
		"origin_state", load.OriginState, "destination_state", load.DestinationState)
	return load, nil
}

// List returns loads with a pickup still in the future.
func (s *LoadService) List(ctx context.Context) ([]entity.Load, error) {
	return s.loads.Search(ctx, repository.LoadFilter{Now: s.now()})
}

// Search returns loads matching the supplied criteria; the future-pickup rule
// applies unless the filter asks for past loads.
func (s *LoadService) Search(ctx context.Context, filter repository.LoadFilter) ([]entity.Load, error) {
	filter.Now = s.now()
	return s.loads.Search(ctx, filter)
}
