//go:build unit || e2e

package builder

import (
	"time"

	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VoucherBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  int64
	MaxDiscountIDR *int64
	PointCost      *int64
	IsActive       bool
	IsRedeemable   bool
	StartsAt       time.Time
	EndsAt         time.Time
	TargetTierID   *uuid.UUID
	OrderTypes     []string
	MinSubtotalIDR *int64
	PerUserLimit   *int64
	GlobalLimit    *int64
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Now()
	return &VoucherBuilder{
		ID:            uuid.New(),
		Code:          "HEMAT10",
		DiscountType:  "fixed",
		DiscountValue: 10_000,
		IsActive:      true,
		IsRedeemable:  true,
		StartsAt:      now.Add(-24 * time.Hour),
		EndsAt:        now.Add(24 * time.Hour),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) BuildSnapshot() *shared.VoucherSnapshot {
	snap := &shared.VoucherSnapshot{}
	if err := copier.Copy(snap, b); err != nil {
		panic(err)
	}
	return snap
}

func (b *VoucherBuilder) BuildView() *queries.VoucherView {
	view := &queries.VoucherView{}
	if err := copier.Copy(view, b); err != nil {
		panic(err)
	}
	return view
}

func (b *VoucherBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"code":           b.Code,
		"discount_type":  b.DiscountType,
		"discount_value": b.DiscountValue,
		"is_active":      b.IsActive,
		"is_redeemable":  b.IsRedeemable,
		"starts_at":      b.StartsAt.UTC().Format(time.RFC3339),
		"ends_at":        b.EndsAt.UTC().Format(time.RFC3339),
	}
}
