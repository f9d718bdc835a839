package queries

import (
	"context"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrLoyaltyAccountNotFound = errs.New("loyalty account not found")

//go:generate mockgen -source=loyalty.go -destination=../../../tests/mock/queries/loyalty.go -package=queriesmock

type LoyaltyReadStore interface {
	Account(ctx context.Context, userID uuid.UUID) (*shared.LoyaltyAccountSnapshot, error)
	Tiers(ctx context.Context) ([]shared.TierSnapshot, error)
}

// SettingsReadStore yields the current loyalty settings snapshot. The
// cache-backed implementation may serve a value up to its TTL old; the
// settlement path bypasses it and reads within the transaction.
type SettingsReadStore interface {
	Settings(ctx context.Context) (*shared.SettingsSnapshot, error)
}

type LoyaltyQueries interface {
	Profile(ctx context.Context, userID uuid.UUID) (*LoyaltyProfileView, error)
	Tiers(ctx context.Context) ([]*TierView, error)
	Settings(ctx context.Context) (*SettingsView, error)
}

type loyaltyQueriesImpl struct {
	store         LoyaltyReadStore
	settingsStore SettingsReadStore
}

func NewLoyaltyQueries(store LoyaltyReadStore, settingsStore SettingsReadStore) LoyaltyQueries {
	return &loyaltyQueriesImpl{store: store, settingsStore: settingsStore}
}

func (q *loyaltyQueriesImpl) Profile(ctx context.Context, userID uuid.UUID) (*LoyaltyProfileView, error) {
	account, err := q.store.Account(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoyaltyAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to load loyalty account")
	}

	tierRows, err := q.store.Tiers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load tiers")
	}

	tierSet, err := TierSetFromSnapshots(tierRows)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrLoyaltyMisconfigured)
	}

	view := &LoyaltyProfileView{
		UserID:        account.UserID,
		Points:        account.Points,
		TotalSpentIDR: account.TotalSpentIDR,
	}

	current := tierSet.Classify(account.Points)
	if current != nil {
		view.Tier = tierViewFromDomain(*current)
	}
	if next := tierSet.Next(current); next != nil {
		view.NextTier = tierViewFromDomain(*next)
		gap := next.MinPoints - account.Points
		if gap < 0 {
			gap = 0
		}
		view.PointsToNextTier = &gap
	}

	return view, nil
}

func (q *loyaltyQueriesImpl) Tiers(ctx context.Context) ([]*TierView, error) {
	rows, err := q.store.Tiers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load tiers")
	}

	tierSet, err := TierSetFromSnapshots(rows)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrLoyaltyMisconfigured)
	}

	tiers := tierSet.Tiers()
	views := make([]*TierView, len(tiers))
	for i, t := range tiers {
		views[i] = tierViewFromDomain(t)
	}
	return views, nil
}

func (q *loyaltyQueriesImpl) Settings(ctx context.Context) (*SettingsView, error) {
	snap, err := q.settingsStore.Settings(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load loyalty settings")
	}
	return &SettingsView{
		Enabled:              snap.Enabled,
		PointsPerItem:        snap.PointsPerItem,
		PointValueIDR:        snap.PointValueIDR,
		MinPointsToRedeem:    snap.MinPointsToRedeem,
		MaxPointsPerTxn:      snap.MaxPointsPerTxn,
		MaxRedemptionPercent: snap.MaxRedemptionPercent,
		Version:              snap.Version,
	}, nil
}

// TierSetFromSnapshots validates the configured ladder; a broken ladder is a
// precondition violation, not a user-facing validation failure.
func TierSetFromSnapshots(rows []shared.TierSnapshot) (loyalty.TierSet, error) {
	tiers := make([]loyalty.Tier, len(rows))
	for i, r := range rows {
		tiers[i] = loyalty.Tier{
			ID:        r.ID,
			Level:     r.Level,
			Name:      r.Name,
			MinPoints: r.MinPoints,
			MaxPoints: r.MaxPoints,
			Benefits:  r.Benefits,
		}
	}
	return loyalty.NewTierSet(tiers)
}

// SettingsFromSnapshot converts and validates a settings snapshot.
func SettingsFromSnapshot(snap *shared.SettingsSnapshot) (loyalty.Settings, error) {
	s := loyalty.Settings{
		Enabled:              snap.Enabled,
		PointsPerItem:        snap.PointsPerItem,
		PointValueIDR:        snap.PointValueIDR,
		MinPointsToRedeem:    snap.MinPointsToRedeem,
		MaxPointsPerTxn:      snap.MaxPointsPerTxn,
		MaxRedemptionPercent: snap.MaxRedemptionPercent,
		Version:              snap.Version,
	}
	if err := s.Validate(); err != nil {
		return loyalty.Settings{}, err
	}
	return s, nil
}

func tierViewFromDomain(t loyalty.Tier) *TierView {
	return &TierView{
		ID:        t.ID,
		Level:     t.Level,
		Name:      t.Name,
		MinPoints: t.MinPoints,
		MaxPoints: t.MaxPoints,
		Benefits:  t.Benefits,
	}
}
