package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
	"loadboard-service/pkg/logger"
)

// MockLoadRepository is a mock implementation of LoadRepository
type MockLoadRepository struct {
	mock.Mock
}

func (m *MockLoadRepository) Create(ctx context.Context, load *entity.Load) error {
	args := m.Called(ctx, load)
	return args.Error(0)
}

func (m *MockLoadRepository) Search(ctx context.Context, filter repository.LoadFilter) ([]entity.Load, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Load), args.Error(1)
}

func validLoadCreate() *LoadCreate {
	pickup := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	delivery := time.Date(2025, 7, 2, 17, 0, 0, 0, time.UTC)
	return &LoadCreate{
		OriginCounty:      sptr("Travis"),
		OriginState:       sptr("TX"),
		DestinationCounty: sptr("Maricopa"),
		DestinationState:  sptr("AZ"),
		PickupDatetime:    &pickup,
		DeliveryDatetime:  &delivery,
	}
}

func TestLoadCreate_Validate(t *testing.T) {
	load, err := validLoadCreate().Validate()
	require.NoError(t, err)
	assert.Equal(t, "TX", load.OriginState)
	assert.Nil(t, load.Weight)
}

func TestLoadCreate_MissingRequiredFieldNamed(t *testing.T) {
	cases := []struct {
		field string
		strip func(*LoadCreate)
	}{
		{"origin_county", func(r *LoadCreate) { r.OriginCounty = nil }},
		{"origin_state", func(r *LoadCreate) { r.OriginState = nil }},
		{"destination_county", func(r *LoadCreate) { r.DestinationCounty = nil }},
		{"destination_state", func(r *LoadCreate) { r.DestinationState = nil }},
		{"pickup_datetime", func(r *LoadCreate) { r.PickupDatetime = nil }},
		{"delivery_datetime", func(r *LoadCreate) { r.DeliveryDatetime = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validLoadCreate()
			tc.strip(req)

			_, err := req.Validate()
			require.Error(t, err)

			var fieldErr *apperrors.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestLoadCreate_NoDateOrderingCheck(t *testing.T) {
	// Delivery before pickup is accepted; the store does not police it.
	req := validLoadCreate()
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	req.DeliveryDatetime = &early

	_, err := req.Validate()
	assert.NoError(t, err)
}

func TestLoadList_UsesFuturePickupRule(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MockLoadRepository)
	repo.On("Search", mock.Anything, repository.LoadFilter{Now: now}).
		Return([]entity.Load{}, nil)

	svc := NewLoadService(repo, logger.NewNop())
	svc.now = func() time.Time { return now }

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLoadSearch_StampsQueryTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := "TX"

	repo := new(MockLoadRepository)
	repo.On("Search", mock.Anything, mock.MatchedBy(func(f repository.LoadFilter) bool {
		return f.Now.Equal(now) && f.OriginState != nil && *f.OriginState == state
	})).Return([]entity.Load{}, nil)

	svc := NewLoadService(repo, logger.NewNop())
	svc.now = func() time.Time { return now }

	_, err := svc.Search(context.Background(), repository.LoadFilter{OriginState: &state})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
