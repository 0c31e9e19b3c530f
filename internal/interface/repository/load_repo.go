package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
)

// GormLoadRepository implements LoadRepository on a relational store
type GormLoadRepository struct {
	db *gorm.DB
}

// NewGormLoadRepository creates a new load repository
func NewGormLoadRepository(db *gorm.DB) repository.LoadRepository {
	return &GormLoadRepository{db: db}
}

// Create inserts a load and fills in its generated id.
func (r *GormLoadRepository) Create(ctx context.Context, load *entity.Load) error {
	if err := r.db.WithContext(ctx).Create(load).Error; err != nil {
		return apperrors.Storage("create load", err)
	}
	return nil
}

// Search returns the loads matching every supplied criterion. Absent criteria
// impose no constraint; no result ordering is guaranteed.
func (r *GormLoadRepository) Search(ctx context.Context, filter repository.LoadFilter) ([]entity.Load, error) {
	query := r.db.WithContext(ctx).Model(&entity.Load{})

	if !filter.ShowPast {
		query = query.Where("pickup_datetime > ?", filter.Now)
	}
	if filter.OriginState != nil {
		query = query.Where("origin_state = ?", *filter.OriginState)
	}
	if filter.DestinationState != nil {
		query = query.Where("destination_state = ?", *filter.DestinationState)
	}
	if filter.PickupFrom != nil {
		query = query.Where("pickup_datetime >= ?", *filter.PickupFrom)
	}
	if filter.PickupTo != nil {
		query = query.Where("pickup_datetime <= ?", *filter.PickupTo)
	}
	if filter.DeliveryFrom != nil {
		query = query.Where("delivery_datetime >= ?", *filter.DeliveryFrom)
	}
	if filter.DeliveryTo != nil {
		query = query.Where("delivery_datetime <= ?", *filter.DeliveryTo)
	}
	if filter.EquipmentType != nil {
		query = query.Where("LOWER(equipment_type) LIKE ?", "%"+strings.ToLower(*filter.EquipmentType)+"%")
	}
	if filter.WeightMin != nil {
		query = query.Where("weight >= ?", *filter.WeightMin)
	}
	if filter.WeightMax != nil {
		query = query.Where("weight <= ?", *filter.WeightMax)
	}
	if filter.MilesMin != nil {
		query = query.Where("miles >= ?", *filter.MilesMin)
	}
	if filter.MilesMax != nil {
		query = query.Where("miles <= ?", *filter.MilesMax)
	}

	var loads []entity.Load
	if err := query.Find(&loads).Error; err != nil {
		return nil, apperrors.Storage("search loads", err)
	}
	return loads, nil
}
