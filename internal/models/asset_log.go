package models

import "time"

// AssetLog is one immutable audit entry for an asset's lifecycle.
type AssetLog struct {
	ID         int       `json:"id"`
	AssetID    int       `json:"asset_id"`
	Status     string    `json:"status"`
	Note       string    `json:"note"`
	RecordedBy string    `json:"recorded_by"`
	RecordedAt time.Time `json:"recorded_at"`
}
