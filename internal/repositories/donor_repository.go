package repositories

import (
	"context"

	"ewaste-tracker/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DonorRepository struct {
	DB *pgxpool.Pool
}

func NewDonorRepository(db *pgxpool.Pool) *DonorRepository {
	return &DonorRepository{DB: db}
}

func (r *DonorRepository) Create(ctx context.Context, d *models.Donor) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO donors(name, contact_name, email, phone, notes)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		d.Name, d.ContactName, d.Email, d.Phone, d.Notes,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DonorRepository) Get(ctx context.Context, id int) (*models.Donor, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(contact_name, '') as contact_name, COALESCE(email, '') as email,
                COALESCE(phone, '') as phone, COALESCE(notes, '') as notes, created_at, updated_at
         FROM donors WHERE id=$1`, id)

	var donor models.Donor
	err := row.Scan(&donor.ID, &donor.Name, &donor.ContactName, &donor.Email, &donor.Phone,
		&donor.Notes, &donor.CreatedAt, &donor.UpdatedAt)
	return &donor, err
}

func (r *DonorRepository) List(ctx context.Context) ([]*models.Donor, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, COALESCE(contact_name, '') as contact_name, COALESCE(email, '') as email,
                COALESCE(phone, '') as phone, COALESCE(notes, '') as notes, created_at, updated_at
         FROM donors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []*models.Donor
	for rows.Next() {
		var donor models.Donor
		err := rows.Scan(&donor.ID, &donor.Name, &donor.ContactName, &donor.Email, &donor.Phone,
			&donor.Notes, &donor.CreatedAt, &donor.UpdatedAt)
		if err != nil {
			return nil, err
		}
		donors = append(donors, &donor)
	}
	return donors, rows.Err()
}
