package request

import (
	"time"

	"github.com/google/uuid"
)

type UpdateSettingsRequest struct {
	Enabled              *bool  `json:"enabled,omitempty"`
	PointsPerItem        *int64 `json:"points_per_item,omitempty" binding:"omitempty,gte=0"`
	PointValueIDR        *int64 `json:"point_value_idr,omitempty" binding:"omitempty,gt=0"`
	MinPointsToRedeem    *int64 `json:"min_points_to_redeem,omitempty" binding:"omitempty,gte=0"`
	MaxPointsPerTxn      *int64 `json:"max_points_per_txn,omitempty" binding:"omitempty,gt=0"`
	ClearMaxPointsPerTxn bool   `json:"clear_max_points_per_txn,omitempty"`
	MaxRedemptionPercent *int32 `json:"max_redemption_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
}

type CreateVoucherRequest struct {
	Code           string     `json:"code" binding:"required"`
	DiscountType   string     `json:"discount_type" binding:"required,oneof=fixed percentage"`
	DiscountValue  int64      `json:"discount_value" binding:"required,gt=0"`
	MaxDiscountIDR *int64     `json:"max_discount_idr,omitempty" binding:"omitempty,gt=0"`
	PointCost      *int64     `json:"point_cost,omitempty" binding:"omitempty,gte=0"`
	Active         bool       `json:"is_active"`
	Redeemable     bool       `json:"is_redeemable"`
	StartsAt       time.Time  `json:"starts_at" binding:"required"`
	EndsAt         time.Time  `json:"ends_at" binding:"required"`
	TargetTierID   *uuid.UUID `json:"target_tier_id,omitempty"`
	OrderTypes     []string   `json:"order_types,omitempty" binding:"omitempty,dive,oneof=dine_in pickup delivery"`
	MinSubtotalIDR *int64     `json:"min_subtotal_idr,omitempty" binding:"omitempty,gte=0"`
	PerUserLimit   *int64     `json:"per_user_limit,omitempty" binding:"omitempty,gt=0"`
	GlobalLimit    *int64     `json:"global_limit,omitempty" binding:"omitempty,gt=0"`
}
