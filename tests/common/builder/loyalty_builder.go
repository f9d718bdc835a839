//go:build unit || e2e

package builder

import (
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

// DefaultTierSnapshots is the three-tier ladder most tests run against:
// Bronze 0..499, Silver 500..1999, Gold 2000+.
func DefaultTierSnapshots() []shared.TierSnapshot {
	silverMax := int64(1999)
	bronzeMax := int64(499)
	return []shared.TierSnapshot{
		{ID: uuid.New(), Level: 1, Name: "Bronze", MinPoints: 0, MaxPoints: &bronzeMax},
		{ID: uuid.New(), Level: 2, Name: "Silver", MinPoints: 500, MaxPoints: &silverMax},
		{ID: uuid.New(), Level: 3, Name: "Gold", MinPoints: 2000},
	}
}

type LoyaltyAccountBuilder struct {
	UserID        uuid.UUID
	Points        int64
	TotalSpentIDR int64
	TierID        *uuid.UUID
}

func NewLoyaltyAccountBuilder() *LoyaltyAccountBuilder {
	return &LoyaltyAccountBuilder{
		UserID: uuid.New(),
		Points: 100,
	}
}

func (b *LoyaltyAccountBuilder) With(mutate func(*LoyaltyAccountBuilder)) *LoyaltyAccountBuilder {
	mutate(b)
	return b
}

func (b *LoyaltyAccountBuilder) BuildSnapshot() *shared.LoyaltyAccountSnapshot {
	return &shared.LoyaltyAccountSnapshot{
		UserID:        b.UserID,
		Points:        b.Points,
		TotalSpentIDR: b.TotalSpentIDR,
		TierID:        b.TierID,
	}
}

type SettingsBuilder struct {
	Enabled              bool
	PointsPerItem        int64
	PointValueIDR        int64
	MinPointsToRedeem    int64
	MaxPointsPerTxn      *int64
	MaxRedemptionPercent int32
	Version              int64
}

func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		Enabled:              true,
		PointsPerItem:        1,
		PointValueIDR:        1000,
		MinPointsToRedeem:    10,
		MaxRedemptionPercent: 50,
		Version:              1,
	}
}

func (b *SettingsBuilder) With(mutate func(*SettingsBuilder)) *SettingsBuilder {
	mutate(b)
	return b
}

func (b *SettingsBuilder) BuildSnapshot() *shared.SettingsSnapshot {
	return &shared.SettingsSnapshot{
		Enabled:              b.Enabled,
		PointsPerItem:        b.PointsPerItem,
		PointValueIDR:        b.PointValueIDR,
		MinPointsToRedeem:    b.MinPointsToRedeem,
		MaxPointsPerTxn:      b.MaxPointsPerTxn,
		MaxRedemptionPercent: b.MaxRedemptionPercent,
		Version:              b.Version,
	}
}
