package order

// PriceBreakdown is the composition of an order total from its subtotal and
// the two independent discount sources.
type PriceBreakdown struct {
	SubtotalIDR        int64
	VoucherDiscountIDR int64
	PointsDiscountIDR  int64
	TotalIDR           int64
}

// Price combines a voucher discount and a points discount against a subtotal.
// The voucher applies first; the points discount is then clamped to whatever
// remains, so the combined discount can never drive the payable total below
// zero. The clamped amounts are reported back so the caller settles exactly
// what was charged.
func Price(subtotalIDR, voucherDiscountIDR, pointsDiscountIDR int64) PriceBreakdown {
	if subtotalIDR < 0 {
		subtotalIDR = 0
	}

	voucher := voucherDiscountIDR
	if voucher < 0 {
		voucher = 0
	}
	if voucher > subtotalIDR {
		voucher = subtotalIDR
	}

	remaining := subtotalIDR - voucher

	points := pointsDiscountIDR
	if points < 0 {
		points = 0
	}
	if points > remaining {
		points = remaining
	}

	return PriceBreakdown{
		SubtotalIDR:        subtotalIDR,
		VoucherDiscountIDR: voucher,
		PointsDiscountIDR:  points,
		TotalIDR:           subtotalIDR - voucher - points,
	}
}
