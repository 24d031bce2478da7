package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ewaste-tracker/internal/models"
)

// DonorStore is the persistence surface DonorService needs.
type DonorStore interface {
	Create(ctx context.Context, d *models.Donor) error
	Get(ctx context.Context, id int) (*models.Donor, error)
	List(ctx context.Context) ([]*models.Donor, error)
}

type DonorService struct {
	Donors DonorStore
}

func NewDonorService(donors DonorStore) *DonorService {
	return &DonorService{Donors: donors}
}

func (s *DonorService) Create(ctx context.Context, d *models.Donor) error {
	if d.Name == "" {
		return ValidationError("Name is required to add a donor.")
	}
	return s.Donors.Create(ctx, d)
}

func (s *DonorService) Get(ctx context.Context, id int) (*models.Donor, error) {
	d, err := s.Donors.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (s *DonorService) List(ctx context.Context) ([]*models.Donor, error) {
	return s.Donors.List(ctx)
}
