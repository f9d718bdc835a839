package loyalty

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativeBalance = errors.New("loyalty balance cannot go negative")
	ErrNegativeSpend   = errors.New("order spend cannot be negative")
)

// Account is a user's loyalty state. Points only decrease through redemption
// and TotalSpentIDR only grows; both mutations happen exclusively through
// Settle at order completion.
type Account struct {
	UserID        uuid.UUID
	Points        int64
	TotalSpentIDR int64
	TierID        *uuid.UUID
}

func NewAccount(userID uuid.UUID) Account {
	return Account{UserID: userID}
}

// Settle applies a completed order: debits redeemed points, credits accrued
// points, accumulates spend, and re-classifies the tier from the resulting
// balance. The caller must hold the account row lock for the duration.
func (a Account) Settle(redeemedPoints, accruedPoints, paidIDR int64, tiers TierSet) (Account, error) {
	if paidIDR < 0 {
		return Account{}, ErrNegativeSpend
	}
	points := a.Points - redeemedPoints + accruedPoints
	if points < 0 {
		return Account{}, ErrNegativeBalance
	}

	next := Account{
		UserID:        a.UserID,
		Points:        points,
		TotalSpentIDR: a.TotalSpentIDR + paidIDR,
	}
	if tier := tiers.Classify(points); tier != nil {
		id := tier.ID
		next.TierID = &id
	}
	return next, nil
}
