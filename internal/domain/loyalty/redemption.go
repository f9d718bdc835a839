package loyalty

// RedemptionReason is a stable code explaining why a point redemption was
// refused. Codes are consumed verbatim by the presentation layer.
type RedemptionReason string

const (
	ReasonLoyaltyDisabled    RedemptionReason = "LOYALTY_DISABLED"
	ReasonInsufficientPoints RedemptionReason = "INSUFFICIENT_POINTS"
	ReasonBelowMinimum       RedemptionReason = "BELOW_MINIMUM"
)

// Redemption is the outcome of AuthorizeRedemption. When Reason is empty the
// redemption is allowed for AllowedPoints worth DiscountIDR. CapApplied is
// set when the request was clamped by maxPointsPerTransaction or by the
// redemption percentage cap.
type Redemption struct {
	AllowedPoints int64
	DiscountIDR   int64
	CapApplied    bool
	Reason        RedemptionReason
}

func (r Redemption) OK() bool { return r.Reason == "" }

func refuse(reason RedemptionReason) Redemption {
	return Redemption{Reason: reason}
}

// AuthorizeRedemption decides how many of the requested points a user may
// spend against an order. It is a pure function over the supplied snapshot.
//
// Requesting zero points is always allowed and is a no-op. Requests above
// maxPointsPerTransaction or above the value cap
// (subtotal * maxRedemptionPercentage / 100) are clamped down rather than
// rejected; the friendlier choice for a cart UI, and flagged via CapApplied.
func AuthorizeRedemption(requested, balance, subtotalIDR int64, s Settings) Redemption {
	if requested <= 0 {
		return Redemption{}
	}
	if !s.Enabled || s.PointValueIDR <= 0 {
		return refuse(ReasonLoyaltyDisabled)
	}
	if requested > balance {
		return refuse(ReasonInsufficientPoints)
	}
	if requested < s.MinPointsToRedeem {
		return refuse(ReasonBelowMinimum)
	}

	allowed := requested
	capped := false

	if s.MaxPointsPerTxn != nil && allowed > *s.MaxPointsPerTxn {
		allowed = *s.MaxPointsPerTxn
		capped = true
	}

	// Largest point count whose value stays within the percentage cap,
	// rounding down to whole points.
	maxValueIDR := subtotalIDR * int64(s.MaxRedemptionPercent) / 100
	if allowed*s.PointValueIDR > maxValueIDR {
		allowed = maxValueIDR / s.PointValueIDR
		capped = true
	}
	if allowed < 0 {
		allowed = 0
	}

	return Redemption{
		AllowedPoints: allowed,
		DiscountIDR:   allowed * s.PointValueIDR,
		CapApplied:    capped,
	}
}

// ClampToRemainder reduces an allowed redemption so its value fits in what
// other discounts left of the subtotal, in whole points rounded down. A
// reduction sets CapApplied.
func (r Redemption) ClampToRemainder(remainderIDR, pointValueIDR int64) Redemption {
	if !r.OK() || pointValueIDR <= 0 {
		return r
	}
	if remainderIDR < 0 {
		remainderIDR = 0
	}
	if r.DiscountIDR <= remainderIDR {
		return r
	}
	points := remainderIDR / pointValueIDR
	return Redemption{
		AllowedPoints: points,
		DiscountIDR:   points * pointValueIDR,
		CapApplied:    true,
	}
}
