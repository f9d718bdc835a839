package readstore

import (
	"context"

	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/pkg/pgconv"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoyaltyReadStore struct {
	db db.DBTX
}

func NewLoyaltyReadStore(dbtx db.DBTX) *LoyaltyReadStore {
	return &LoyaltyReadStore{db: dbtx}
}

func (r *LoyaltyReadStore) Account(ctx context.Context, userID uuid.UUID) (*shared.LoyaltyAccountSnapshot, error) {
	var snap shared.LoyaltyAccountSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT user_id, points, total_spent_idr, tier_id
		FROM loyalty_accounts
		WHERE user_id = $1`,
		userID,
	).Scan(&snap.UserID, &snap.Points, &snap.TotalSpentIDR, &snap.TierID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loyalty account", err)
	}
	return &snap, nil
}

func (r *LoyaltyReadStore) Tiers(ctx context.Context) ([]shared.TierSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, level, name, min_points, max_points, benefits
		FROM membership_tiers
		ORDER BY level`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tiers", err)
	}
	defer rows.Close()

	var snaps []shared.TierSnapshot
	for rows.Next() {
		var snap shared.TierSnapshot
		if err := rows.Scan(&snap.ID, &snap.Level, &snap.Name, &snap.MinPoints, &snap.MaxPoints, &snap.Benefits); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tier", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tiers", err)
	}
	return snaps, nil
}
