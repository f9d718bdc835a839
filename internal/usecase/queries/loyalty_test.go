//go:build unit

package queries_test

import (
	"context"
	"testing"

	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/internal/usecase/shared"
	"warung-loyalty/tests/common/builder"
	queriesmock "warung-loyalty/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoyaltyQueries(t *testing.T) (*queriesmock.MockLoyaltyReadStore, *queriesmock.MockSettingsReadStore, queries.LoyaltyQueries) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockLoyaltyReadStore(ctrl)
	settingsStore := queriesmock.NewMockSettingsReadStore(ctrl)
	return store, settingsStore, queries.NewLoyaltyQueries(store, settingsStore)
}

func TestLoyaltyQueries_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("mid tier profile shows the next tier and the gap", func(t *testing.T) {
		store, _, q := newLoyaltyQueries(t)

		tiers := builder.DefaultTierSnapshots()
		account := builder.NewLoyaltyAccountBuilder().
			With(func(b *builder.LoyaltyAccountBuilder) {
				b.UserID = userID
				b.Points = 750
				b.TotalSpentIDR = 300_000
			}).
			BuildSnapshot()

		store.EXPECT().Account(gomock.Any(), userID).Return(account, nil)
		store.EXPECT().Tiers(gomock.Any()).Return(tiers, nil)

		view, err := q.Profile(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, int64(750), view.Points)
		assert.Equal(t, int64(300_000), view.TotalSpentIDR)
		require.NotNil(t, view.Tier)
		assert.Equal(t, "Silver", view.Tier.Name)
		require.NotNil(t, view.NextTier)
		assert.Equal(t, "Gold", view.NextTier.Name)
		require.NotNil(t, view.PointsToNextTier)
		assert.Equal(t, int64(1250), *view.PointsToNextTier)
	})

	t.Run("top tier profile has no next tier", func(t *testing.T) {
		store, _, q := newLoyaltyQueries(t)

		account := builder.NewLoyaltyAccountBuilder().
			With(func(b *builder.LoyaltyAccountBuilder) {
				b.UserID = userID
				b.Points = 5000
			}).
			BuildSnapshot()

		store.EXPECT().Account(gomock.Any(), userID).Return(account, nil)
		store.EXPECT().Tiers(gomock.Any()).Return(builder.DefaultTierSnapshots(), nil)

		view, err := q.Profile(context.Background(), userID)
		require.NoError(t, err)

		require.NotNil(t, view.Tier)
		assert.Equal(t, "Gold", view.Tier.Name)
		assert.Nil(t, view.NextTier)
		assert.Nil(t, view.PointsToNextTier)
	})

	t.Run("missing account maps to the not found sentinel", func(t *testing.T) {
		store, _, q := newLoyaltyQueries(t)

		store.EXPECT().Account(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := q.Profile(context.Background(), userID)
		assert.ErrorIs(t, err, queries.ErrLoyaltyAccountNotFound)
	})

	t.Run("broken tier ladder is a misconfiguration", func(t *testing.T) {
		store, _, q := newLoyaltyQueries(t)

		account := builder.NewLoyaltyAccountBuilder().BuildSnapshot()
		store.EXPECT().Account(gomock.Any(), account.UserID).Return(account, nil)
		store.EXPECT().Tiers(gomock.Any()).Return([]shared.TierSnapshot{
			{ID: uuid.New(), Level: 1, Name: "Bronze", MinPoints: 0},
			{ID: uuid.New(), Level: 2, Name: "Silver", MinPoints: 500},
		}, nil)

		_, err := q.Profile(context.Background(), account.UserID)
		assert.ErrorIs(t, err, errs.ErrLoyaltyMisconfigured)
	})
}

func TestLoyaltyQueries_Tiers(t *testing.T) {
	store, _, q := newLoyaltyQueries(t)

	store.EXPECT().Tiers(gomock.Any()).Return(builder.DefaultTierSnapshots(), nil)

	views, err := q.Tiers(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Bronze", views[0].Name)
	assert.Equal(t, "Gold", views[2].Name)
}

func TestLoyaltyQueries_Settings(t *testing.T) {
	_, settingsStore, q := newLoyaltyQueries(t)

	settingsStore.EXPECT().Settings(gomock.Any()).Return(builder.NewSettingsBuilder().BuildSnapshot(), nil)

	view, err := q.Settings(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Enabled)
	assert.Equal(t, int64(1000), view.PointValueIDR)
	assert.Equal(t, int32(50), view.MaxRedemptionPercent)
}
