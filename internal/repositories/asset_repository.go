package repositories

import (
	"context"
	"fmt"

	"ewaste-tracker/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetColumns = `a.id, a.tag, a.asset_type, COALESCE(a.brand, '') as brand,
         COALESCE(a.model, '') as model, COALESCE(a.serial_number, '') as serial_number,
         COALESCE(a.condition, '') as condition, a.status, COALESCE(a.location, '') as location,
         a.acquired_date, a.weight_kg, COALESCE(a.notes, '') as notes,
         a.donor_id, a.recipient_id, a.created_at, a.updated_at,
         COALESCE(d.name, '') as donor_name, COALESCE(rc.name, '') as recipient_name`

const assetJoins = `FROM assets a
         LEFT JOIN donors d ON d.id = a.donor_id
         LEFT JOIN recipients rc ON rc.id = a.recipient_id`

type AssetRepository struct {
	DB *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{DB: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *models.Asset) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO assets(tag, asset_type, brand, model, serial_number, condition, status,
                            location, acquired_date, weight_kg, notes, donor_id, recipient_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
         RETURNING id, created_at, updated_at`,
		a.Tag, a.AssetType, a.Brand, a.Model, a.SerialNumber, a.Condition, a.Status,
		a.Location, a.AcquiredDate, a.WeightKg, a.Notes, a.DonorID, a.RecipientID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AssetRepository) Get(ctx context.Context, id int) (*models.Asset, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+assetColumns+` `+assetJoins+` WHERE a.id=$1`, id)
	return scanAsset(row)
}

func (r *AssetRepository) GetByTag(ctx context.Context, tag string) (*models.Asset, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+assetColumns+` `+assetJoins+` WHERE a.tag=$1`, tag)
	return scanAsset(row)
}

// List returns assets matching the filter, most recently updated first. The
// search term matches tag, model, brand or serial number, case-insensitively.
func (r *AssetRepository) List(ctx context.Context, filter models.AssetFilter) ([]*models.Asset, error) {
	query := `SELECT ` + assetColumns + ` ` + assetJoins + ` WHERE 1=1`
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND a.status=$%d", len(args))
	}
	if filter.DonorID > 0 {
		args = append(args, filter.DonorID)
		query += fmt.Sprintf(" AND a.donor_id=$%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (a.tag ILIKE $%d OR a.model ILIKE $%d OR a.brand ILIKE $%d OR a.serial_number ILIKE $%d)", n, n, n, n)
	}
	query += " ORDER BY a.updated_at DESC"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Recent returns the most recently updated assets.
func (r *AssetRepository) Recent(ctx context.Context, limit int) ([]*models.Asset, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+assetColumns+` `+assetJoins+` ORDER BY a.updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *AssetRepository) Update(ctx context.Context, a *models.Asset) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE assets SET tag=$1, asset_type=$2, brand=$3, model=$4, serial_number=$5,
                condition=$6, location=$7, acquired_date=$8, weight_kg=$9, notes=$10,
                donor_id=$11, recipient_id=$12, updated_at=CURRENT_TIMESTAMP
         WHERE id=$13`,
		a.Tag, a.AssetType, a.Brand, a.Model, a.SerialNumber,
		a.Condition, a.Location, a.AcquiredDate, a.WeightKg, a.Notes,
		a.DonorID, a.RecipientID, a.ID)
	return err
}

// UpdateStatus moves the asset to a new status, optionally updating location
// and party links in the same statement.
func (r *AssetRepository) UpdateStatus(ctx context.Context, a *models.Asset) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE assets SET status=$1, location=$2, donor_id=$3, recipient_id=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		a.Status, a.Location, a.DonorID, a.RecipientID, a.ID)
	return err
}

// CountByStatus returns asset counts grouped by lifecycle status.
func (r *AssetRepository) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	rows, err := r.DB.Query(ctx, `SELECT status, COUNT(id) FROM assets GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(models.StatusCounts)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// TotalWeight returns the summed weight of all assets in kilograms.
func (r *AssetRepository) TotalWeight(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(weight_kg), 0) FROM assets`).Scan(&total)
	return total, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*models.Asset, error) {
	var a models.Asset
	err := row.Scan(&a.ID, &a.Tag, &a.AssetType, &a.Brand, &a.Model, &a.SerialNumber,
		&a.Condition, &a.Status, &a.Location, &a.AcquiredDate, &a.WeightKg, &a.Notes,
		&a.DonorID, &a.RecipientID, &a.CreatedAt, &a.UpdatedAt,
		&a.DonorName, &a.RecipientName)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
