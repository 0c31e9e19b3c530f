package entity

// AgentMetrics is a point-in-time snapshot of negotiation performance over the
// whole call collection. Sentiment keys are the stored labels; calls without a
// sentiment land in the "" bucket.
type AgentMetrics struct {
	TotalCalls             int64            `json:"total_calls"`
	BookedCalls            int64            `json:"booked_calls"`
	ConversionRate         float64          `json:"conversion_rate"`
	AvgNegotiationAttempts float64          `json:"avg_negotiation_attempts"`
	AvgPriceIncrease       float64          `json:"avg_price_increase"`
	AvgPriceIncreasePct    float64          `json:"avg_price_increase_pct"`
	SentimentDistribution  map[string]int64 `json:"sentiment_distribution"`
}
