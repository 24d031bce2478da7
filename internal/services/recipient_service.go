package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ewaste-tracker/internal/models"
)

// RecipientStore is the persistence surface RecipientService needs.
type RecipientStore interface {
	Create(ctx context.Context, r *models.Recipient) error
	Get(ctx context.Context, id int) (*models.Recipient, error)
	List(ctx context.Context) ([]*models.Recipient, error)
}

type RecipientService struct {
	Recipients RecipientStore
}

func NewRecipientService(recipients RecipientStore) *RecipientService {
	return &RecipientService{Recipients: recipients}
}

func (s *RecipientService) Create(ctx context.Context, r *models.Recipient) error {
	if r.Name == "" {
		return ValidationError("Name is required to add a recipient organisation.")
	}
	return s.Recipients.Create(ctx, r)
}

func (s *RecipientService) Get(ctx context.Context, id int) (*models.Recipient, error) {
	r, err := s.Recipients.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *RecipientService) List(ctx context.Context) ([]*models.Recipient, error) {
	return s.Recipients.List(ctx)
}
