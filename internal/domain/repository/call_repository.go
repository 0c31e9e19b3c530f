package repository

import (
	"context"

	"loadboard-service/internal/domain/entity"
)

// CallPage selects a slice of the call listing, newest timestamp first.
type CallPage struct {
	Skip  int
	Limit int
}

// CallPatch is a sparse set of column changes for one call. Only keys present
// in the map are written; a key mapped to nil clears the column.
type CallPatch map[string]interface{}

// CallRepository defines the interface for call storage operations
type CallRepository interface {
	Create(ctx context.Context, call *entity.Call) error
	FindByID(ctx context.Context, id int) (*entity.Call, error)
	List(ctx context.Context, page CallPage) ([]entity.Call, error)
	FindAll(ctx context.Context) ([]entity.Call, error)
	Update(ctx context.Context, id int, patch CallPatch) (*entity.Call, error)
	DeleteAll(ctx context.Context) (int64, error)
}
