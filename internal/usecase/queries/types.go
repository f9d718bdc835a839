package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TierView struct {
	ID        uuid.UUID `json:"id"`
	Level     int32     `json:"level"`
	Name      string    `json:"name"`
	MinPoints int64     `json:"min_points"`
	MaxPoints *int64    `json:"max_points,omitempty"`
	Benefits  string    `json:"benefits"`
}

type LoyaltyProfileView struct {
	UserID           uuid.UUID `json:"user_id"`
	Points           int64     `json:"points"`
	TotalSpentIDR    int64     `json:"total_spent_idr"`
	Tier             *TierView `json:"tier,omitempty"`
	NextTier         *TierView `json:"next_tier,omitempty"`
	PointsToNextTier *int64    `json:"points_to_next_tier,omitempty"`
}

type VoucherCheckView struct {
	Code        string `json:"code"`
	Valid       bool   `json:"valid"`
	DiscountIDR int64  `json:"discount_idr"`
	Reason      string `json:"reason,omitempty"`
}

type PointsCheckView struct {
	RequestedPoints int64  `json:"requested_points"`
	AllowedPoints   int64  `json:"allowed_points"`
	DiscountIDR     int64  `json:"discount_idr"`
	CapApplied      bool   `json:"cap_applied"`
	Reason          string `json:"reason,omitempty"`
}

type QuoteView struct {
	SubtotalIDR int64             `json:"subtotal_idr"`
	Voucher     *VoucherCheckView `json:"voucher,omitempty"`
	Points      *PointsCheckView  `json:"points,omitempty"`
	TotalIDR    int64             `json:"total_idr"`
}

type VoucherView struct {
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

type OrderItemView struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	UnitPriceIDR int64     `json:"unit_price_idr"`
}

type OrderView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	OrderType          string          `json:"order_type"`
	Items              []OrderItemView `json:"items"`
	SubtotalIDR        int64           `json:"subtotal_idr"`
	VoucherID          *uuid.UUID      `json:"voucher_id,omitempty"`
	VoucherCode        *string         `json:"voucher_code,omitempty"`
	VoucherDiscountIDR int64           `json:"voucher_discount_idr"`
	PointsRedeemed     int64           `json:"points_redeemed"`
	PointsDiscountIDR  int64           `json:"points_discount_idr"`
	TotalIDR           int64           `json:"total_idr"`
	PointsAccrued      int64           `json:"points_accrued"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	OrderType   string    `json:"order_type"`
	SubtotalIDR int64     `json:"subtotal_idr"`
	TotalIDR    int64     `json:"total_idr"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type SettingsView struct {
	Enabled              bool   `json:"enabled"`
	PointsPerItem        int64  `json:"points_per_item"`
	PointValueIDR        int64  `json:"point_value_idr"`
	MinPointsToRedeem    int64  `json:"min_points_to_redeem"`
	MaxPointsPerTxn      *int64 `json:"max_points_per_txn,omitempty"`
	MaxRedemptionPercent int32  `json:"max_redemption_percent"`
	Version              int64  `json:"version"`
}
