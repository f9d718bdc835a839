//go:build unit

package loyalty_test

import (
	"testing"

	"warung-loyalty/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Settle(t *testing.T) {
	tiers := ladder(t)
	userID := uuid.New()

	t.Run("debits redemption, credits accrual, accumulates spend", func(t *testing.T) {
		account := loyalty.Account{UserID: userID, Points: 480, TotalSpentIDR: 200_000}

		next, err := account.Settle(30, 60, 45_000, tiers)
		require.NoError(t, err)

		assert.Equal(t, int64(510), next.Points)
		assert.Equal(t, int64(245_000), next.TotalSpentIDR)
		require.NotNil(t, next.TierID)
		silver := tiers.Classify(510)
		assert.Equal(t, silver.ID, *next.TierID)
	})

	t.Run("crossing a tier boundary upgrades the tier", func(t *testing.T) {
		account := loyalty.Account{UserID: userID, Points: 1990}

		next, err := account.Settle(0, 20, 10_000, tiers)
		require.NoError(t, err)

		gold := tiers.Classify(2010)
		require.NotNil(t, next.TierID)
		assert.Equal(t, gold.ID, *next.TierID)
	})

	t.Run("spending points can demote the tier", func(t *testing.T) {
		account := loyalty.Account{UserID: userID, Points: 520}

		next, err := account.Settle(100, 2, 5_000, tiers)
		require.NoError(t, err)

		bronze := tiers.Classify(422)
		require.NotNil(t, next.TierID)
		assert.Equal(t, bronze.ID, *next.TierID)
	})

	t.Run("rejects a settlement that would go negative", func(t *testing.T) {
		account := loyalty.Account{UserID: userID, Points: 10}

		_, err := account.Settle(20, 5, 1_000, tiers)
		assert.ErrorIs(t, err, loyalty.ErrNegativeBalance)
	})

	t.Run("rejects negative spend", func(t *testing.T) {
		account := loyalty.Account{UserID: userID, Points: 10}

		_, err := account.Settle(0, 0, -1, tiers)
		assert.ErrorIs(t, err, loyalty.ErrNegativeSpend)
	})

	t.Run("original account is untouched", func(t *testing.T) {
		account := loyalty.Account{UserID: userID, Points: 100, TotalSpentIDR: 1_000}

		_, err := account.Settle(10, 5, 500, tiers)
		require.NoError(t, err)

		assert.Equal(t, int64(100), account.Points)
		assert.Equal(t, int64(1_000), account.TotalSpentIDR)
	})
}
