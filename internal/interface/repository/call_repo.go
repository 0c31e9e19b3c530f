package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
)

// GormCallRepository implements CallRepository on a relational store
type GormCallRepository struct {
	db *gorm.DB
}

// NewGormCallRepository creates a new call repository
func NewGormCallRepository(db *gorm.DB) repository.CallRepository {
	return &GormCallRepository{db: db}
}

// Create inserts a call and fills in its generated id.
func (r *GormCallRepository) Create(ctx context.Context, call *entity.Call) error {
	if err := r.db.WithContext(ctx).Create(call).Error; err != nil {
		return apperrors.Storage("create call", err)
	}
	return nil
}

// FindByID returns one call or ErrNotFound.
func (r *GormCallRepository) FindByID(ctx context.Context, id int) (*entity.Call, error) {
	var call entity.Call
	err := r.db.WithContext(ctx).First(&call, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("call", id)
	}
	if err != nil {
		return nil, apperrors.Storage("find call", err)
	}
	return &call, nil
}

// List returns one page of calls, newest timestamp first.
func (r *GormCallRepository) List(ctx context.Context, page repository.CallPage) ([]entity.Call, error) {
	var calls []entity.Call
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&calls).Error
	if err != nil {
		return nil, apperrors.Storage("list calls", err)
	}
	return calls, nil
}

// FindAll returns the entire call collection, for metrics computation.
func (r *GormCallRepository) FindAll(ctx context.Context) ([]entity.Call, error) {
	var calls []entity.Call
	if err := r.db.WithContext(ctx).Find(&calls).Error; err != nil {
		return nil, apperrors.Storage("load calls", err)
	}
	return calls, nil
}

// Update applies a sparse patch to one call and returns the fresh row.
// Columns absent from the patch keep their prior values.
func (r *GormCallRepository) Update(ctx context.Context, id int, patch repository.CallPatch) (*entity.Call, error) {
	call, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		err = r.db.WithContext(ctx).
			Model(&entity.Call{}).
			Where("id = ?", id).
			Updates(map[string]interface{}(patch)).Error
		if err != nil {
			return nil, apperrors.Storage("update call", err)
		}
	}
	// Re-read so defaults and the patch are reflected in one place.
	if err := r.db.WithContext(ctx).First(call, id).Error; err != nil {
		return nil, apperrors.Storage("reload call", err)
	}
	return call, nil
}

// DeleteAll removes every call and reports how many rows went away.
func (r *GormCallRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.Call{})
	if result.Error != nil {
		return 0, apperrors.Storage("delete calls", result.Error)
	}
	return result.RowsAffected, nil
}
