package repository

import (
	"context"

	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/usecase/shared"
)

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(dbtx db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: dbtx}
}

// Save upserts the singleton settings row.
func (r *SettingsRepository) Save(ctx context.Context, s shared.SettingsSnapshot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO loyalty_settings (
			id, enabled, points_per_item, point_value_idr, min_points_to_redeem,
			max_points_per_txn, max_redemption_percent, version, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			points_per_item = EXCLUDED.points_per_item,
			point_value_idr = EXCLUDED.point_value_idr,
			min_points_to_redeem = EXCLUDED.min_points_to_redeem,
			max_points_per_txn = EXCLUDED.max_points_per_txn,
			max_redemption_percent = EXCLUDED.max_redemption_percent,
			version = EXCLUDED.version,
			updated_at = now()`,
		s.Enabled,
		s.PointsPerItem,
		s.PointValueIDR,
		s.MinPointsToRedeem,
		s.MaxPointsPerTxn,
		s.MaxRedemptionPercent,
		s.Version,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save loyalty settings", err, infra.ClassifyPgErr(err))
	}
	return nil
}
