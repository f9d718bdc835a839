package readstore

import (
	"context"

	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/pkg/pgconv"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(dbtx db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: dbtx}
}

const voucherColumns = `
	id, code, discount_type, discount_value, max_discount_idr, point_cost,
	is_active, is_redeemable, starts_at, ends_at, target_tier_id,
	order_types, min_subtotal_idr, per_user_limit, global_limit`

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	row := r.db.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`, code)

	snap, err := scanVoucher(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}
	return snap, nil
}

func (r *VoucherReadStore) Usage(ctx context.Context, voucherID, userID uuid.UUID) (*shared.VoucherUsageCount, error) {
	var usage shared.VoucherUsageCount
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE user_id = $2),
			COUNT(*)
		FROM voucher_usages
		WHERE voucher_id = $1`,
		voucherID, userID,
	).Scan(&usage.ByUser, &usage.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count voucher usage", err)
	}
	return &usage, nil
}

func (r *VoucherReadStore) ListActive(ctx context.Context) ([]shared.VoucherSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+voucherColumns+`
		FROM vouchers
		WHERE is_active AND now() BETWEEN starts_at AND ends_at
		ORDER BY ends_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers", err)
	}
	defer rows.Close()

	var snaps []shared.VoucherSnapshot
	for rows.Next() {
		snap, err := scanVoucher(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher", err)
		}
		snaps = append(snaps, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vouchers", err)
	}
	return snaps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoucher(row rowScanner) (*shared.VoucherSnapshot, error) {
	var snap shared.VoucherSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Code,
		&snap.DiscountType,
		&snap.DiscountValue,
		&snap.MaxDiscountIDR,
		&snap.PointCost,
		&snap.IsActive,
		&snap.IsRedeemable,
		&snap.StartsAt,
		&snap.EndsAt,
		&snap.TargetTierID,
		&snap.OrderTypes,
		&snap.MinSubtotalIDR,
		&snap.PerUserLimit,
		&snap.GlobalLimit,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
