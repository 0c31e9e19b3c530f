package entity

import (
	"time"
)

// Call is one carrier negotiation interaction. Timestamp is when the call
// happened (caller-supplied or defaulted at creation), CreatedAt is when the
// row was written; the two are independent.
type Call struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`

	Timestamp time.Time `json:"timestamp" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Carrier info
	CarrierMCNumber *string `json:"carrier_mc_number" gorm:"type:varchar(20);index"`
	Authorized      bool    `json:"authorized" gorm:"default:false"`

	// Carrier preferences
	OriginState *string  `json:"origin_state"`
	WeightMax   *float64 `json:"weight_max"`

	// Outcome and classification
	CallOutcome *string `json:"call_outcome"`
	Sentiment   *string `json:"sentiment"`
	Summary     *string `json:"summary" gorm:"type:text"`

	// Negotiation
	NegotiationAttempts int      `json:"negotiation_attempts" gorm:"default:0"`
	OriginalPrice       *float64 `json:"original_price"`
	FinalOffer          *float64 `json:"final_offer"`

	// Soft reference to the booked load, no foreign key
	SelectedLoadID *int `json:"selected_load_id"`

	// Optional metadata
	Transcript *string `json:"transcript" gorm:"type:text"`
	Notes      *string `json:"notes" gorm:"type:text"`
}

func (Call) TableName() string { return "calls" }

// Booked reports whether the call resulted in a selected load.
func (c *Call) Booked() bool { return c.SelectedLoadID != nil }
