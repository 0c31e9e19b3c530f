package entity

import (
	"time"
)

// Load is a freight posting on the board. Required columns mirror what a
// posting cannot exist without: both endpoints of the lane and the schedule.
// Everything else is nullable and stays nil when the poster omitted it.
type Load struct {
	LoadID int `json:"load_id" gorm:"primaryKey;autoIncrement"`

	// Lane
	OriginCounty      string `json:"origin_county" gorm:"not null"`
	OriginState       string `json:"origin_state" gorm:"not null"`
	DestinationCounty string `json:"destination_county" gorm:"not null"`
	DestinationState  string `json:"destination_state" gorm:"not null"`

	// Schedule
	PickupDatetime   time.Time `json:"pickup_datetime" gorm:"not null;index"`
	DeliveryDatetime time.Time `json:"delivery_datetime" gorm:"not null"`

	// Load details
	EquipmentType    *string  `json:"equipment_type"`
	LoadboardRate    *float64 `json:"loadboard_rate"`
	MaxLoadboardRate *float64 `json:"max_loadboard_rate"`
	Notes            *string  `json:"notes"`
	Weight           *float64 `json:"weight"`
	CommodityType    *string  `json:"commodity_type"`
	NumOfPieces      *int     `json:"num_of_pieces"`
	Miles            *float64 `json:"miles"`

	// Dimensions
	Length *float64 `json:"length"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

func (Load) TableName() string { return "loads" }
