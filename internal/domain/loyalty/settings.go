package loyalty

import "errors"

var (
	ErrInvalidPointValue      = errors.New("point value must be positive")
	ErrInvalidPointsPerItem   = errors.New("points per item cannot be negative")
	ErrInvalidMinRedeem       = errors.New("minimum points to redeem cannot be negative")
	ErrInvalidMaxPointsPerTxn = errors.New("max points per transaction must be positive when set")
	ErrInvalidRedemptionLimit = errors.New("max redemption percentage must be between 0 and 100")
)

// Settings is the tenant-wide loyalty configuration. It is a read-only
// snapshot: callers load it once per request or transaction and pass it to
// the pure decision functions below.
type Settings struct {
	Enabled              bool
	PointsPerItem        int64
	PointValueIDR        int64
	MinPointsToRedeem    int64
	MaxPointsPerTxn      *int64
	MaxRedemptionPercent int32
	Version              int64
}

// DefaultSettings are applied when a tenant has never configured loyalty:
// 1 point per item, each point worth Rp1.000, redeemable from 10 points,
// covering at most half of an order.
func DefaultSettings() Settings {
	return Settings{
		Enabled:              true,
		PointsPerItem:        1,
		PointValueIDR:        1000,
		MinPointsToRedeem:    10,
		MaxRedemptionPercent: 50,
	}
}

func (s Settings) Validate() error {
	if s.PointValueIDR <= 0 {
		return ErrInvalidPointValue
	}
	if s.PointsPerItem < 0 {
		return ErrInvalidPointsPerItem
	}
	if s.MinPointsToRedeem < 0 {
		return ErrInvalidMinRedeem
	}
	if s.MaxPointsPerTxn != nil && *s.MaxPointsPerTxn <= 0 {
		return ErrInvalidMaxPointsPerTxn
	}
	if s.MaxRedemptionPercent < 0 || s.MaxRedemptionPercent > 100 {
		return ErrInvalidRedemptionLimit
	}
	return nil
}
