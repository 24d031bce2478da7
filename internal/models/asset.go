package models

import "time"

// Asset is one donated or recycled piece of equipment tracked through its
// lifecycle.
type Asset struct {
	ID           int        `json:"id"`
	Tag          string     `json:"tag"`
	AssetType    string     `json:"asset_type"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serial_number"`
	Condition    string     `json:"condition"`
	Status       string     `json:"status"`
	Location     string     `json:"location"`
	AcquiredDate *time.Time `json:"acquired_date"`
	WeightKg     *float64   `json:"weight_kg"`
	Notes        string     `json:"notes"`
	DonorID      *int       `json:"donor_id"`
	RecipientID  *int       `json:"recipient_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Joined display names, populated on reads.
	DonorName     string `json:"donor_name,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
}

// AssetFilter narrows asset listings.
type AssetFilter struct {
	Status  string
	DonorID int
	Search  string
}

// StatusCounts maps lifecycle status to asset count.
type StatusCounts map[string]int
