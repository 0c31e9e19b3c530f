package repository

import (
	"context"
	"time"

	"loadboard-service/internal/domain/entity"
)

// LoadFilter is the full set of optional search criteria over loads. Every
// criterion is a pointer so that a zero value (weight_min=0) is distinct from
// an absent one; nil imposes no constraint. All supplied criteria AND together.
type LoadFilter struct {
	OriginState      *string
	DestinationState *string
	PickupFrom       *time.Time
	PickupTo         *time.Time
	DeliveryFrom     *time.Time
	DeliveryTo       *time.Time
	EquipmentType    *string // case-insensitive substring match
	WeightMin        *float64
	WeightMax        *float64
	MilesMin         *float64
	MilesMax         *float64
	ShowPast         bool // when false, only loads with pickup strictly after Now
	Now              time.Time
}

// LoadRepository defines the interface for load storage operations
type LoadRepository interface {
	Create(ctx context.Context, load *entity.Load) error
	Search(ctx context.Context, filter LoadFilter) ([]entity.Load, error)
}
