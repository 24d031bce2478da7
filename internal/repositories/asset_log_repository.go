package repositories

import (
	"context"

	"ewaste-tracker/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetLogRepository struct {
	DB *pgxpool.Pool
}

func NewAssetLogRepository(db *pgxpool.Pool) *AssetLogRepository {
	return &AssetLogRepository{DB: db}
}

func (r *AssetLogRepository) Create(ctx context.Context, l *models.AssetLog) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO asset_logs(asset_id, status, note, recorded_by)
         VALUES($1, $2, $3, $4)
         RETURNING id, recorded_at`,
		l.AssetID, l.Status, l.Note, l.RecordedBy,
	).Scan(&l.ID, &l.RecordedAt)
}

// ListByAsset returns the audit trail for one asset, newest entry first.
func (r *AssetLogRepository) ListByAsset(ctx context.Context, assetID int) ([]*models.AssetLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, asset_id, status, COALESCE(note, '') as note,
                COALESCE(recorded_by, '') as recorded_by, recorded_at
         FROM asset_logs WHERE asset_id=$1 ORDER BY recorded_at DESC, id DESC`, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AssetLog
	for rows.Next() {
		var l models.AssetLog
		err := rows.Scan(&l.ID, &l.AssetID, &l.Status, &l.Note, &l.RecordedBy, &l.RecordedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
