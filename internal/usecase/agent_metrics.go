package usecase

import (
	"context"
	"math"

	"loadboard-service/internal/domain/entity"
	"loadboard-service/internal/domain/repository"
	"loadboard-service/pkg/logger"
)

// AgentMetricsService computes the negotiation metrics snapshot over the full
// call collection in a single storage pass.
type AgentMetricsService struct {
	calls repository.CallRepository
	log   logger.Logger
}

// NewAgentMetricsService creates a new metrics service
func NewAgentMetricsService(calls repository.CallRepository, log logger.Logger) *AgentMetricsService {
	return &AgentMetricsService{calls: calls, log: log}
}

// Snapshot computes all metrics or fails as a whole; partial results are
// never returned.
func (s *AgentMetricsService) Snapshot(ctx context.Context) (*entity.AgentMetrics, error) {
	calls, err := s.calls.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &entity.AgentMetrics{
		TotalCalls:            int64(len(calls)),
		SentimentDistribution: map[string]int64{},
	}

	var attemptsSum, increaseSum, increasePctSum float64
	var increasePctCount int64
	for i := range calls {
		c := &calls[i]
		if c.Booked() {
			metrics.BookedCalls++
		}
		attemptsSum += float64(c.NegotiationAttempts)

		// Missing prices count as zero rather than dropping the call.
		increaseSum += deref(c.FinalOffer) - deref(c.OriginalPrice)

		// Percent mean: calls without a positive original price contribute
		// zero but stay in the denominator. A call with a positive original
		// price and no final offer has no percentage at all and is dropped
		// from this mean, numerator and denominator both.
		switch {
		case c.OriginalPrice != nil && *c.OriginalPrice > 0 && c.FinalOffer == nil:
			// skip
		case c.OriginalPrice != nil && *c.OriginalPrice > 0:
			increasePctSum += (*c.FinalOffer - *c.OriginalPrice) / *c.OriginalPrice * 100
			increasePctCount++
		default:
			increasePctCount++
		}

		metrics.SentimentDistribution[deref(c.Sentiment)]++
	}

	if metrics.TotalCalls > 0 {
		n := float64(metrics.TotalCalls)
		metrics.ConversionRate = round(float64(metrics.BookedCalls)/n, 3)
		metrics.AvgNegotiationAttempts = round(attemptsSum/n, 2)
		metrics.AvgPriceIncrease = round(increaseSum/n, 2)
	}
	if increasePctCount > 0 {
		metrics.AvgPriceIncreasePct = round(increasePctSum/float64(increasePctCount), 2)
	}

	s.log.Debug("agent metrics computed",
		"total_calls", metrics.TotalCalls, "booked_calls", metrics.BookedCalls)
	return metrics, nil
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
