package shared

import (
	"time"

	"github.com/google/uuid"
)

// Snapshots are the fully-typed, read-only inputs the decision layer consumes.
// Repositories produce them; usecases turn them into domain values.

type VoucherSnapshot struct {
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

type VoucherUsageCount struct {
	ByUser int64
	Total  int64
}

type TierSnapshot struct {
	ID        uuid.UUID
	Level     int32
	Name      string
	MinPoints int64
	MaxPoints *int64
	Benefits  string
}

type SettingsSnapshot struct {
	Enabled              bool
	PointsPerItem        int64
	PointValueIDR        int64
	MinPointsToRedeem    int64
	MaxPointsPerTxn      *int64
	MaxRedemptionPercent int32
	Version              int64
}

type LoyaltyAccountSnapshot struct {
	UserID        uuid.UUID
	Points        int64
	TotalSpentIDR int64
	TierID        *uuid.UUID
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}
