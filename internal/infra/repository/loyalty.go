package repository

import (
	"context"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/pkg/pgconv"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoyaltyRepository struct {
	db db.DBTX
}

func NewLoyaltyRepository(dbtx db.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{db: dbtx}
}

func (r *LoyaltyRepository) CreateAccount(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO loyalty_accounts (user_id, points, total_spent_idr)
		VALUES ($1, 0, 0)
		ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create loyalty account", err, infra.ClassifyPgErr(err))
	}
	return nil
}

// GetForUpdate locks the account row for the rest of the transaction.
// Concurrent settlements for the same user queue here.
func (r *LoyaltyRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*shared.LoyaltyAccountSnapshot, error) {
	var snap shared.LoyaltyAccountSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT user_id, points, total_spent_idr, tier_id
		FROM loyalty_accounts
		WHERE user_id = $1
		FOR UPDATE`,
		userID,
	).Scan(&snap.UserID, &snap.Points, &snap.TotalSpentIDR, &snap.TierID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock loyalty account", err)
	}
	return &snap, nil
}

func (r *LoyaltyRepository) Save(ctx context.Context, account loyalty.Account) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE loyalty_accounts
		SET points = $2, total_spent_idr = $3, tier_id = $4, updated_at = now()
		WHERE user_id = $1`,
		account.UserID, account.Points, account.TotalSpentIDR, account.TierID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save loyalty account", err, infra.ClassifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("loyalty account not found", nil, infra.KindNotFound)
	}
	return nil
}
