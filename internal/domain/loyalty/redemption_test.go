//go:build unit

package loyalty_test

import (
	"testing"

	"warung-loyalty/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
)

func baseSettings() loyalty.Settings {
	return loyalty.Settings{
		Enabled:              true,
		PointsPerItem:        1,
		PointValueIDR:        1000,
		MinPointsToRedeem:    10,
		MaxRedemptionPercent: 50,
	}
}

func TestAuthorizeRedemption(t *testing.T) {
	testCases := []struct {
		name      string
		requested int64
		balance   int64
		subtotal  int64
		mutate    func(*loyalty.Settings)
		want      loyalty.Redemption
	}{
		{
			name:      "zero points requested is a no-op",
			requested: 0,
			balance:   100,
			subtotal:  50_000,
			want:      loyalty.Redemption{},
		},
		{
			name:      "negative request treated as no-op",
			requested: -5,
			balance:   100,
			subtotal:  50_000,
			want:      loyalty.Redemption{},
		},
		{
			name:      "program disabled",
			requested: 20,
			balance:   100,
			subtotal:  50_000,
			mutate:    func(s *loyalty.Settings) { s.Enabled = false },
			want:      loyalty.Redemption{Reason: loyalty.ReasonLoyaltyDisabled},
		},
		{
			name:      "non positive point value refuses like disabled",
			requested: 20,
			balance:   100,
			subtotal:  50_000,
			mutate:    func(s *loyalty.Settings) { s.PointValueIDR = 0 },
			want:      loyalty.Redemption{Reason: loyalty.ReasonLoyaltyDisabled},
		},
		{
			name:      "requesting more than the balance",
			requested: 150,
			balance:   100,
			subtotal:  500_000,
			want:      loyalty.Redemption{Reason: loyalty.ReasonInsufficientPoints},
		},
		{
			name:      "below the redemption minimum",
			requested: 5,
			balance:   100,
			subtotal:  500_000,
			want:      loyalty.Redemption{Reason: loyalty.ReasonBelowMinimum},
		},
		{
			name:      "full request within all caps",
			requested: 20,
			balance:   100,
			subtotal:  500_000,
			want:      loyalty.Redemption{AllowedPoints: 20, DiscountIDR: 20_000},
		},
		{
			name:      "clamped by per transaction cap",
			requested: 80,
			balance:   100,
			subtotal:  500_000,
			mutate:    func(s *loyalty.Settings) { v := int64(50); s.MaxPointsPerTxn = &v },
			want:      loyalty.Redemption{AllowedPoints: 50, DiscountIDR: 50_000, CapApplied: true},
		},
		{
			name:      "clamped by the percentage cap",
			requested: 100,
			balance:   100,
			subtotal:  10_000,
			want:      loyalty.Redemption{AllowedPoints: 5, DiscountIDR: 5_000, CapApplied: true},
		},
		{
			name:      "percentage cap rounds down to whole points",
			requested: 100,
			balance:   100,
			subtotal:  10_500,
			// 50% of 10500 is 5250, only 5 whole points fit.
			want: loyalty.Redemption{AllowedPoints: 5, DiscountIDR: 5_000, CapApplied: true},
		},
		{
			name:      "zero percentage cap clamps everything away",
			requested: 20,
			balance:   100,
			subtotal:  500_000,
			mutate:    func(s *loyalty.Settings) { s.MaxRedemptionPercent = 0 },
			want:      loyalty.Redemption{AllowedPoints: 0, DiscountIDR: 0, CapApplied: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := baseSettings()
			if tc.mutate != nil {
				tc.mutate(&settings)
			}

			got := loyalty.AuthorizeRedemption(tc.requested, tc.balance, tc.subtotal, settings)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Reason == "", got.OK())
		})
	}
}

func TestRedemption_ClampToRemainder(t *testing.T) {
	testCases := []struct {
		name       string
		redemption loyalty.Redemption
		remainder  int64
		pointValue int64
		want       loyalty.Redemption
	}{
		{
			name:       "fits in the remainder unchanged",
			redemption: loyalty.Redemption{AllowedPoints: 20, DiscountIDR: 20_000},
			remainder:  50_000,
			pointValue: 1000,
			want:       loyalty.Redemption{AllowedPoints: 20, DiscountIDR: 20_000},
		},
		{
			name:       "reduced to whole points within the remainder",
			redemption: loyalty.Redemption{AllowedPoints: 20, DiscountIDR: 20_000},
			remainder:  5_500,
			pointValue: 1000,
			want:       loyalty.Redemption{AllowedPoints: 5, DiscountIDR: 5_000, CapApplied: true},
		},
		{
			name:       "negative remainder clamps to zero",
			redemption: loyalty.Redemption{AllowedPoints: 20, DiscountIDR: 20_000},
			remainder:  -1,
			pointValue: 1000,
			want:       loyalty.Redemption{AllowedPoints: 0, DiscountIDR: 0, CapApplied: true},
		},
		{
			name:       "refused redemption passes through",
			redemption: loyalty.Redemption{Reason: loyalty.ReasonInsufficientPoints},
			remainder:  5_000,
			pointValue: 1000,
			want:       loyalty.Redemption{Reason: loyalty.ReasonInsufficientPoints},
		},
		{
			name:       "earlier cap flag survives when nothing changes",
			redemption: loyalty.Redemption{AllowedPoints: 50, DiscountIDR: 50_000, CapApplied: true},
			remainder:  50_000,
			pointValue: 1000,
			want:       loyalty.Redemption{AllowedPoints: 50, DiscountIDR: 50_000, CapApplied: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.redemption.ClampToRemainder(tc.remainder, tc.pointValue)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSettings_Accrue(t *testing.T) {
	settings := baseSettings()
	settings.PointsPerItem = 3

	assert.Equal(t, int64(9), settings.Accrue(3))
	assert.Equal(t, int64(0), settings.Accrue(0))

	settings.Enabled = false
	assert.Equal(t, int64(0), settings.Accrue(3))
}

func TestSettings_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*loyalty.Settings)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*loyalty.Settings) {}},
		{
			name:    "point value must be positive",
			mutate:  func(s *loyalty.Settings) { s.PointValueIDR = 0 },
			wantErr: loyalty.ErrInvalidPointValue,
		},
		{
			name:    "points per item cannot be negative",
			mutate:  func(s *loyalty.Settings) { s.PointsPerItem = -1 },
			wantErr: loyalty.ErrInvalidPointsPerItem,
		},
		{
			name:    "minimum redeem cannot be negative",
			mutate:  func(s *loyalty.Settings) { s.MinPointsToRedeem = -1 },
			wantErr: loyalty.ErrInvalidMinRedeem,
		},
		{
			name:    "max points per txn must be positive when set",
			mutate:  func(s *loyalty.Settings) { v := int64(0); s.MaxPointsPerTxn = &v },
			wantErr: loyalty.ErrInvalidMaxPointsPerTxn,
		},
		{
			name:    "redemption percentage above 100",
			mutate:  func(s *loyalty.Settings) { s.MaxRedemptionPercent = 101 },
			wantErr: loyalty.ErrInvalidRedemptionLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := loyalty.DefaultSettings()
			tc.mutate(&settings)

			err := settings.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
