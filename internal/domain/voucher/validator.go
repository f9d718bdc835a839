package voucher

import (
	"time"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/domain/order"
)

// Reason is a stable rejection code for voucher checks, suitable for mapping
// to user-facing messages without string matching.
type Reason string

const (
	ReasonNotFound            Reason = "NOT_FOUND"
	ReasonInactive            Reason = "INACTIVE"
	ReasonNotYetValid         Reason = "NOT_YET_VALID"
	ReasonExpired             Reason = "EXPIRED"
	ReasonTierIneligible      Reason = "TIER_INELIGIBLE"
	ReasonLimitReached        Reason = "LIMIT_REACHED"
	ReasonOrderTypeIneligible Reason = "ORDER_TYPE_INELIGIBLE"
	ReasonSubtotalTooLow      Reason = "SUBTOTAL_TOO_LOW"
)

// Eligibility is the outcome of a voucher check. Checks are read-only and
// idempotent; only a confirmed settlement records usage.
type Eligibility struct {
	Valid       bool
	DiscountIDR int64
	Reason      Reason
}

func rejected(reason Reason) Eligibility {
	return Eligibility{Reason: reason}
}

// NotFound is the eligibility result for a code with no matching voucher.
func NotFound() Eligibility {
	return rejected(ReasonNotFound)
}

// CheckInput is the snapshot a voucher is evaluated against. UsedByUser and
// UsedTotal come from the usage ledger; UserTier from the tier classifier.
type CheckInput struct {
	Now         time.Time
	UserTier    *loyalty.Tier
	SubtotalIDR int64
	OrderType   order.Type
	UsedByUser  int64
	UsedTotal   int64
}

// Evaluate runs the eligibility checks in their documented order and
// short-circuits on the first failure, so a voucher that is both expired and
// tier-restricted always reports EXPIRED.
func (v *Voucher) Evaluate(in CheckInput) Eligibility {
	if !v.active || !v.redeemable {
		return rejected(ReasonInactive)
	}
	if in.Now.Before(v.startsAt) {
		return rejected(ReasonNotYetValid)
	}
	if in.Now.After(v.endsAt) {
		return rejected(ReasonExpired)
	}
	if v.targetTierID != nil {
		if in.UserTier == nil || in.UserTier.ID != *v.targetTierID {
			return rejected(ReasonTierIneligible)
		}
	}
	if v.perUserLimit != nil && in.UsedByUser >= *v.perUserLimit {
		return rejected(ReasonLimitReached)
	}
	if v.globalLimit != nil && in.UsedTotal >= *v.globalLimit {
		return rejected(ReasonLimitReached)
	}
	if !v.appliesToOrderType(in.OrderType) {
		return rejected(ReasonOrderTypeIneligible)
	}
	if v.minSubtotalIDR != nil && in.SubtotalIDR < *v.minSubtotalIDR {
		return rejected(ReasonSubtotalTooLow)
	}

	return Eligibility{
		Valid:       true,
		DiscountIDR: v.discount.AmountFor(in.SubtotalIDR),
	}
}
