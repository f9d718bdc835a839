package response

import (
	"time"

	"warung-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type TierResponse struct {
	ID        uuid.UUID `json:"id"`
	Level     int32     `json:"level"`
	Name      string    `json:"name"`
	MinPoints int64     `json:"min_points"`
	MaxPoints *int64    `json:"max_points,omitempty"`
	Benefits  string    `json:"benefits"`
}

type LoyaltyProfileResponse struct {
	Points           int64         `json:"points"`
	TotalSpentIDR    int64         `json:"total_spent_idr"`
	Tier             *TierResponse `json:"tier,omitempty"`
	NextTier         *TierResponse `json:"next_tier,omitempty"`
	PointsToNextTier *int64        `json:"points_to_next_tier,omitempty"`
}

type SettingsResponse struct {
	Enabled              bool   `json:"enabled"`
	PointsPerItem        int64  `json:"points_per_item"`
	PointValueIDR        int64  `json:"point_value_idr"`
	MinPointsToRedeem    int64  `json:"min_points_to_redeem"`
	MaxPointsPerTxn      *int64 `json:"max_points_per_txn,omitempty"`
	MaxRedemptionPercent int32  `json:"max_redemption_percent"`
	Version              int64  `json:"version"`
}

type VoucherResponse struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  int64      `json:"discount_value"`
	MaxDiscountIDR *int64     `json:"max_discount_idr,omitempty"`
	PointCost      *int64     `json:"point_cost,omitempty"`
	IsActive       bool       `json:"is_active"`
	IsRedeemable   bool       `json:"is_redeemable"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         time.Time  `json:"ends_at"`
	TargetTierID   *uuid.UUID `json:"target_tier_id,omitempty"`
	OrderTypes     []string   `json:"order_types,omitempty"`
	MinSubtotalIDR *int64     `json:"min_subtotal_idr,omitempty"`
	PerUserLimit   *int64     `json:"per_user_limit,omitempty"`
	GlobalLimit    *int64     `json:"global_limit,omitempty"`
}

func FromTierView(v *queries.TierView) *TierResponse {
	return &TierResponse{
		ID:        v.ID,
		Level:     v.Level,
		Name:      v.Name,
		MinPoints: v.MinPoints,
		MaxPoints: v.MaxPoints,
		Benefits:  v.Benefits,
	}
}

func FromLoyaltyProfileView(v *queries.LoyaltyProfileView) *LoyaltyProfileResponse {
	resp := &LoyaltyProfileResponse{
		Points:           v.Points,
		TotalSpentIDR:    v.TotalSpentIDR,
		PointsToNextTier: v.PointsToNextTier,
	}
	if v.Tier != nil {
		resp.Tier = FromTierView(v.Tier)
	}
	if v.NextTier != nil {
		resp.NextTier = FromTierView(v.NextTier)
	}
	return resp
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse {
	return &SettingsResponse{
		Enabled:              v.Enabled,
		PointsPerItem:        v.PointsPerItem,
		PointValueIDR:        v.PointValueIDR,
		MinPointsToRedeem:    v.MinPointsToRedeem,
		MaxPointsPerTxn:      v.MaxPointsPerTxn,
		MaxRedemptionPercent: v.MaxRedemptionPercent,
		Version:              v.Version,
	}
}

func FromVoucherView(v *queries.VoucherView) *VoucherResponse {
	return &VoucherResponse{
		ID:             v.ID,
		Code:           v.Code,
		DiscountType:   v.DiscountType,
		DiscountValue:  v.DiscountValue,
		MaxDiscountIDR: v.MaxDiscountIDR,
		PointCost:      v.PointCost,
		IsActive:       v.IsActive,
		IsRedeemable:   v.IsRedeemable,
		StartsAt:       v.StartsAt,
		EndsAt:         v.EndsAt,
		TargetTierID:   v.TargetTierID,
		OrderTypes:     v.OrderTypes,
		MinSubtotalIDR: v.MinSubtotalIDR,
		PerUserLimit:   v.PerUserLimit,
		GlobalLimit:    v.GlobalLimit,
	}
}
