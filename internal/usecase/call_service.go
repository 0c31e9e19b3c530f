package usecase

import (
	"context"
	"time"

	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
	"loadboard-service/pkg/logger"
)

const defaultCallPageLimit = 100

// CallCreate is the accepted shape for recording a call. Everything is
// optional; timestamp defaults to now at creation time.
type CallCreate struct {
	Timestamp           *time.Time `json:"timestamp"`
	CarrierMCNumber     *string    `json:"carrier_mc_number"`
	Authorized          *bool      `json:"authorized"`
	OriginState         *string    `json:"origin_state"`
	WeightMax           *float64   `json:"weight_max"`
	CallOutcome         *string    `json:"call_outcome"`
	Sentiment           *string    `json:"sentiment"`
	Summary             *string    `json:"summary"`
	NegotiationAttempts *int       `json:"negotiation_attempts"`
	OriginalPrice       *float64   `json:"original_price"`
	FinalOffer          *float64   `json:"final_offer"`
	SelectedLoadID      *int       `json:"selected_load_id"`
	Transcript          *string    `json:"transcript"`
	Notes               *string    `json:"notes"`
}

// CallUpdate is the sparse patch shape. Fields absent from the request body
// keep Set=false and are never written; an explicit null clears the column.
type CallUpdate struct {
	Timestamp           Optional[time.Time] `json:"timestamp"`
	CarrierMCNumber     Optional[string]    `json:"carrier_mc_number"`
	Authorized          Optional[bool]      `json:"authorized"`
	OriginState         Optional[string]    `json:"origin_state"`
	WeightMax           Optional[float64]   `json:"weight_max"`
	CallOutcome         Optional[string]    `json:"call_outcome"`
	Sentiment           Optional[string]    `json:"sentiment"`
	Summary             Optional[string]    `json:"summary"`
	NegotiationAttempts Optional[int]       `json:"negotiation_attempts"`
	OriginalPrice       Optional[float64]   `json:"original_price"`
	FinalOffer          Optional[float64]   `json:"final_offer"`
	SelectedLoadID      Optional[int]       `json:"selected_load_id"`
	Transcript          Optional[string]    `json:"transcript"`
	Notes               Optional[string]    `json:"notes"`
}

// Patch flattens the update into column assignments for the fields that were
// actually supplied. Field-by-field, no reflection.
func (u *CallUpdate) Patch() repository.CallPatch {
	patch := repository.CallPatch{}
	put := func(column string, set bool, value interface{}) {
		if set {
			patch[column] = value
		}
	}
	put("timestamp", u.Timestamp.Set, u.Timestamp.columnValue())
	put("carrier_mc_number", u.CarrierMCNumber.Set, u.CarrierMCNumber.columnValue())
	put("authorized", u.Authorized.Set, u.Authorized.columnValue())
	put("origin_state", u.OriginState.Set, u.OriginState.columnValue())
	put("weight_max", u.WeightMax.Set, u.WeightMax.columnValue())
	put("call_outcome", u.CallOutcome.Set, u.CallOutcome.columnValue())
	put("sentiment", u.Sentiment.Set, u.Sentiment.columnValue())
	put("summary", u.Summary.Set, u.Summary.columnValue())
	put("negotiation_attempts", u.NegotiationAttempts.Set, u.NegotiationAttempts.columnValue())
	put("original_price", u.OriginalPrice.Set, u.OriginalPrice.columnValue())
	put("final_offer", u.FinalOffer.Set, u.FinalOffer.columnValue())
	put("selected_load_id", u.SelectedLoadID.Set, u.SelectedLoadID.columnValue())
	put("transcript", u.Transcript.Set, u.Transcript.columnValue())
	put("notes", u.Notes.Set, u.Notes.columnValue())
	return patch
}

// CallService handles recording and maintaining negotiation calls
type CallService struct {
	calls repository.CallRepository
	log   logger.Logger
	now   func() time.Time
}

// NewCallService creates a new call service
func NewCallService(calls repository.CallRepository, log logger.Logger) *CallService {
	return &CallService{
		calls: calls,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a call record, defaulting its timestamp to the current time
// when the caller did not say when the call happened.
func (s *CallService) Create(ctx context.Context, req *CallCreate) (*entity.Call, error) {
	call := &entity.Call{
		Timestamp:       s.now(),
		CarrierMCNumber: req.CarrierMCNumber,
		OriginState:     req.OriginState,
		WeightMax:       req.WeightMax,
		CallOutcome:     req.CallOutcome,
		Sentiment:       req.Sentiment,
		Summary:         req.Summary,
		OriginalPrice:   req.OriginalPrice,
		FinalOffer:      req.FinalOffer,
		SelectedLoadID:  req.SelectedLoadID,
		Transcript:      req.Transcript,
		Notes:           req.Notes,
	}
	if req.Timestamp != nil {
		call.Timestamp = *req.Timestamp
	}
	if req.Authorized != nil {
		call.Authorized = *req.Authorized
	}
	if req.NegotiationAttempts != nil {
		call.NegotiationAttempts = *req.NegotiationAttempts
	}

	if err := s.calls.Create(ctx, call); err != nil {
		return nil, err
	}
	s.log.Info("call created", "id", call.ID, "booked", call.Booked())
	return call, nil
}

// Get returns one call by id.
func (s *CallService) Get(ctx context.Context, id int) (*entity.Call, error) {
	return s.calls.FindByID(ctx, id)
}

// List returns one page of calls, newest first. Negative skip and limit fall
// back to the defaults; an explicit limit of 0 means an empty page.
func (s *CallService) List(ctx context.Context, skip, limit int) ([]entity.Call, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = defaultCallPageLimit
	}
	return s.calls.List(ctx, repository.CallPage{Skip: skip, Limit: limit})
}

// Update applies a sparse patch to one call.
func (s *CallService) Update(ctx context.Context, id int, req *CallUpdate) (*entity.Call, error) {
	call, err := s.calls.Update(ctx, id, req.Patch())
	if err != nil {
		return nil, err
	}
	s.log.Info("call updated", "id", id)
	return call, nil
}

// DeleteAll removes every call record and reports the count.
func (s *CallService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.calls.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info("calls deleted", "count", count)
	return count, nil
}
