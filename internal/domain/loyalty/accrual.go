package loyalty

// Accrue computes the points credited for a completed order. Accrual is
// item-based: pointsPerItem per unit in the cart. It returns zero when the
// program is disabled or the cart is empty. Callers must only invoke this
// for orders in a terminal completed state, never speculatively.
func (s Settings) Accrue(itemCount int64) int64 {
	if !s.Enabled || itemCount <= 0 {
		return 0
	}
	return s.PointsPerItem * itemCount
}
