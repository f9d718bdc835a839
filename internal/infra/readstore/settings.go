package readstore

import (
	"context"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/pkg/pgconv"
	"warung-loyalty/internal/usecase/shared"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

// Settings reads the singleton row. A missing row yields the built-in
// defaults so a fresh database behaves sensibly before any admin write.
func (r *SettingsReadStore) Settings(ctx context.Context) (*shared.SettingsSnapshot, error) {
	var snap shared.SettingsSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT enabled, points_per_item, point_value_idr, min_points_to_redeem,
		       max_points_per_txn, max_redemption_percent, version
		FROM loyalty_settings
		WHERE id = 1`,
	).Scan(
		&snap.Enabled,
		&snap.PointsPerItem,
		&snap.PointValueIDR,
		&snap.MinPointsToRedeem,
		&snap.MaxPointsPerTxn,
		&snap.MaxRedemptionPercent,
		&snap.Version,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			d := loyalty.DefaultSettings()
			return &shared.SettingsSnapshot{
				Enabled:              d.Enabled,
				PointsPerItem:        d.PointsPerItem,
				PointValueIDR:        d.PointValueIDR,
				MinPointsToRedeem:    d.MinPointsToRedeem,
				MaxPointsPerTxn:      d.MaxPointsPerTxn,
				MaxRedemptionPercent: d.MaxRedemptionPercent,
				Version:              d.Version,
			}, nil
		}
		return nil, infra.WrapRepoErr("failed to load loyalty settings", err)
	}
	return &snap, nil
}
