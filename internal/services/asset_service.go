package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/models"
)

// AssetStore is the persistence surface AssetService needs.
type AssetStore interface {
	Create(ctx context.Context, a *models.Asset) error
	Get(ctx context.Context, id int) (*models.Asset, error)
	GetByTag(ctx context.Context, tag string) (*models.Asset, error)
	List(ctx context.Context, filter models.AssetFilter) ([]*models.Asset, error)
	Update(ctx context.Context, a *models.Asset) error
	UpdateStatus(ctx context.Context, a *models.Asset) error
}

// AssetLogStore persists the per-asset audit trail.
type AssetLogStore interface {
	Create(ctx context.Context, l *models.AssetLog) error
	ListByAsset(ctx context.Context, assetID int) ([]*models.AssetLog, error)
}

// AssetInput carries raw form values for creating or editing an asset.
// Numeric and date fields arrive as strings and are validated here.
type AssetInput struct {
	Tag          string
	AssetType    string
	Brand        string
	Model        string
	SerialNumber string
	Condition    string
	Status       string
	Location     string
	AcquiredDate string // YYYY-MM-DD
	WeightKg     string
	Notes        string
	DonorID      string
	RecipientID  string
}

// StatusUpdate carries one lifecycle transition request.
type StatusUpdate struct {
	Status      string
	Note        string
	RecordedBy  string
	Location    string
	DonorID     string
	RecipientID string
}

// AssetService owns asset lifecycle rules: tag uniqueness, status
// vocabulary, and the audit trail that accompanies every transition.
type AssetService struct {
	Assets AssetStore
	Logs   AssetLogStore
}

func NewAssetService(assets AssetStore, logs AssetLogStore) *AssetService {
	return &AssetService{Assets: assets, Logs: logs}
}

// Create validates the input, rejects duplicate tags, persists the asset and
// records its initial audit entry.
func (s *AssetService) Create(ctx context.Context, in AssetInput) (*models.Asset, error) {
	a, err := s.buildAsset(in, nil)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = lifecycle.InitialStatus
	}
	if err := lifecycle.Validate(status); err != nil {
		return nil, ValidationError("Invalid status selected.")
	}
	a.Status = status

	if existing, err := s.Assets.GetByTag(ctx, a.Tag); err == nil && existing != nil {
		return nil, ErrDuplicateTag
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.Assets.Create(ctx, a); err != nil {
		return nil, err
	}

	note := in.Notes
	if note == "" {
		note = "Asset created"
	}
	log := &models.AssetLog{AssetID: a.ID, Status: status, Note: note, RecordedBy: "system"}
	if err := s.Logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssetService) Get(ctx context.Context, id int) (*models.Asset, error) {
	a, err := s.Assets.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *AssetService) List(ctx context.Context, filter models.AssetFilter) ([]*models.Asset, error) {
	if filter.Status != "" && !lifecycle.Known(filter.Status) {
		return nil, ValidationError("Unknown status filter provided.")
	}
	return s.Assets.List(ctx, filter)
}

// Update edits descriptive fields. Status is untouched; transitions go
// through RecordEvent so they always leave an audit entry.
func (s *AssetService) Update(ctx context.Context, id int, in AssetInput) (*models.Asset, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := s.buildAsset(in, current)
	if err != nil {
		return nil, err
	}

	if existing, err := s.Assets.GetByTag(ctx, a.Tag); err == nil && existing != nil && existing.ID != id {
		return nil, ValidationError("Another asset already uses this tag.")
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.Assets.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// RecordEvent moves the asset to a new status and appends the matching audit
// entry. An unknown status leaves both the asset and its trail untouched.
func (s *AssetService) RecordEvent(ctx context.Context, id int, upd StatusUpdate) (*models.Asset, error) {
	if err := lifecycle.Validate(upd.Status); err != nil {
		return nil, ValidationError("Invalid status update.")
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.RecipientID != "" {
		rid, err := parseID(upd.RecipientID)
		if err != nil {
			return nil, err
		}
		a.RecipientID = &rid
	} else if upd.Status != lifecycle.StatusDonated && upd.Status != lifecycle.StatusReadyForDistribution {
		// A recipient link only makes sense while the asset is headed out
		// the door.
		a.RecipientID = nil
	}
	if upd.DonorID != "" {
		did, err := parseID(upd.DonorID)
		if err != nil {
			return nil, err
		}
		a.DonorID = &did
	}
	if upd.Location != "" {
		a.Location = upd.Location
	}
	a.Status = upd.Status

	if err := s.Assets.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}

	log := &models.AssetLog{
		AssetID:    a.ID,
		Status:     upd.Status,
		Note:       upd.Note,
		RecordedBy: upd.RecordedBy,
	}
	if err := s.Logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return a, nil
}

// History returns the asset's audit trail, newest first.
func (s *AssetService) History(ctx context.Context, assetID int) ([]*models.AssetLog, error) {
	return s.Logs.ListByAsset(ctx, assetID)
}

func (s *AssetService) buildAsset(in AssetInput, current *models.Asset) (*models.Asset, error) {
	if in.Tag == "" || in.AssetType == "" {
		return nil, ValidationError("Tag and asset type are required.")
	}

	a := &models.Asset{}
	if current != nil {
		*a = *current
	}
	a.Tag = in.Tag
	a.AssetType = in.AssetType
	a.Brand = in.Brand
	a.Model = in.Model
	a.SerialNumber = in.SerialNumber
	a.Condition = in.Condition
	a.Location = in.Location
	a.Notes = in.Notes

	if in.WeightKg != "" {
		w, err := strconv.ParseFloat(in.WeightKg, 64)
		if err != nil {
			return nil, ValidationError("Please enter a valid number for weight.")
		}
		a.WeightKg = &w
	} else {
		a.WeightKg = nil
	}

	if in.AcquiredDate != "" {
		d, err := time.Parse("2006-01-02", in.AcquiredDate)
		if err != nil {
			return nil, ValidationError("Dates must be in YYYY-MM-DD format.")
		}
		a.AcquiredDate = &d
	} else {
		a.AcquiredDate = nil
	}

	a.DonorID = nil
	if in.DonorID != "" {
		did, err := parseID(in.DonorID)
		if err != nil {
			return nil, err
		}
		a.DonorID = &did
	}
	a.RecipientID = nil
	if in.RecipientID != "" {
		rid, err := parseID(in.RecipientID)
		if err != nil {
			return nil, err
		}
		a.RecipientID = &rid
	}
	return a, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, ValidationError("Invalid selection provided.")
	}
	return id, nil
}
