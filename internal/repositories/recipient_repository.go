package repositories

import (
	"context"

	"ewaste-tracker/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecipientRepository struct {
	DB *pgxpool.Pool
}

func NewRecipientRepository(db *pgxpool.Pool) *RecipientRepository {
	return &RecipientRepository{DB: db}
}

func (r *RecipientRepository) Create(ctx context.Context, rc *models.Recipient) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO recipients(name, contact_name, email, phone, notes)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		rc.Name, rc.ContactName, rc.Email, rc.Phone, rc.Notes,
	).Scan(&rc.ID, &rc.CreatedAt, &rc.UpdatedAt)
}

func (r *RecipientRepository) Get(ctx context.Context, id int) (*models.Recipient, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(contact_name, '') as contact_name, COALESCE(email, '') as email,
                COALESCE(phone, '') as phone, COALESCE(notes, '') as notes, created_at, updated_at
         FROM recipients WHERE id=$1`, id)

	var recipient models.Recipient
	err := row.Scan(&recipient.ID, &recipient.Name, &recipient.ContactName, &recipient.Email,
		&recipient.Phone, &recipient.Notes, &recipient.CreatedAt, &recipient.UpdatedAt)
	return &recipient, err
}

func (r *RecipientRepository) List(ctx context.Context) ([]*models.Recipient, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, COALESCE(contact_name, '') as contact_name, COALESCE(email, '') as email,
                COALESCE(phone, '') as phone, COALESCE(notes, '') as notes, created_at, updated_at
         FROM recipients ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []*models.Recipient
	for rows.Next() {
		var recipient models.Recipient
		err := rows.Scan(&recipient.ID, &recipient.Name, &recipient.ContactName, &recipient.Email,
			&recipient.Phone, &recipient.Notes, &recipient.CreatedAt, &recipient.UpdatedAt)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, &recipient)
	}
	return recipients, rows.Err()
}
