package repository

import (
	"context"
	"time"

	"warung-loyalty/internal/domain/voucher"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"

	"github.com/google/uuid"
)

type VoucherRepository struct {
	db db.DBTX
}

func NewVoucherRepository(dbtx db.DBTX) *VoucherRepository {
	return &VoucherRepository{db: dbtx}
}

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) (uuid.UUID, error) {
	orderTypes := make([]string, 0, len(v.OrderTypes()))
	for _, t := range v.OrderTypes() {
		orderTypes = append(orderTypes, t.String())
	}

	discount := v.Discount()
	_, err := r.db.Exec(ctx, `
		INSERT INTO vouchers (
			id, code, discount_type, discount_value, max_discount_idr, point_cost,
			is_active, is_redeemable, starts_at, ends_at, target_tier_id,
			order_types, min_subtotal_idr, per_user_limit, global_limit
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		v.ID(),
		v.Code().String(),
		discount.Type().String(),
		discount.Value(),
		discount.MaxIDR(),
		v.PointCost(),
		v.Active(),
		v.Redeemable(),
		v.StartsAt(),
		v.EndsAt(),
		v.TargetTierID(),
		orderTypes,
		v.MinSubtotalIDR(),
		v.PerUserLimit(),
		v.GlobalLimit(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create voucher", err, infra.ClassifyPgErr(err))
	}
	return v.ID(), nil
}

type VoucherUsageRepository struct {
	db db.DBTX
}

func NewVoucherUsageRepository(dbtx db.DBTX) *VoucherUsageRepository {
	return &VoucherUsageRepository{db: dbtx}
}

func (r *VoucherUsageRepository) Record(ctx context.Context, voucherID, userID, orderID uuid.UUID, usedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO voucher_usages (id, voucher_id, user_id, order_id, used_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), voucherID, userID, orderID, usedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record voucher usage", err, infra.ClassifyPgErr(err))
	}
	return nil
}
