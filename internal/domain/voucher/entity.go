package voucher

import (
	"time"

	"warung-loyalty/internal/domain/order"

	"github.com/google/uuid"
)

// Voucher is an administrator-issued discount code with a bounded validity
// window. Checking a voucher never mutates it; usage is recorded in a
// separate ledger by the settlement transaction.
type Voucher struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	pointCost      *int64
	active         bool
	redeemable     bool
	startsAt       time.Time
	endsAt         time.Time
	targetTierID   *uuid.UUID
	orderTypes     []order.Type
	minSubtotalIDR *int64
	perUserLimit   *int64
	globalLimit    *int64
}

type Config struct {
	ID             uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  int64
	MaxDiscountIDR *int64
	PointCost      *int64
	Active         bool
	Redeemable     bool
	StartsAt       time.Time
	EndsAt         time.Time
	TargetTierID   *uuid.UUID
	OrderTypes     []order.Type
	MinSubtotalIDR *int64
	PerUserLimit   *int64
	GlobalLimit    *int64
}

func New(cfg Config) (*Voucher, error) {
	code, err := NewCode(cfg.Code)
	if err != nil {
		return nil, err
	}

	dtype, err := NewDiscountType(cfg.DiscountType)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(dtype, cfg.DiscountValue, cfg.MaxDiscountIDR)
	if err != nil {
		return nil, err
	}

	return &Voucher{
		id:             cfg.ID,
		code:           code,
		discount:       discount,
		pointCost:      cfg.PointCost,
		active:         cfg.Active,
		redeemable:     cfg.Redeemable,
		startsAt:       cfg.StartsAt,
		endsAt:         cfg.EndsAt,
		targetTierID:   cfg.TargetTierID,
		orderTypes:     cfg.OrderTypes,
		minSubtotalIDR: cfg.MinSubtotalIDR,
		perUserLimit:   cfg.PerUserLimit,
		globalLimit:    cfg.GlobalLimit,
	}, nil
}

func (v *Voucher) ID() uuid.UUID            { return v.id }
func (v *Voucher) Code() Code               { return v.code }
func (v *Voucher) Discount() Discount       { return v.discount }
func (v *Voucher) PointCost() *int64        { return v.pointCost }
func (v *Voucher) Active() bool             { return v.active }
func (v *Voucher) Redeemable() bool         { return v.redeemable }
func (v *Voucher) StartsAt() time.Time      { return v.startsAt }
func (v *Voucher) EndsAt() time.Time        { return v.endsAt }
func (v *Voucher) TargetTierID() *uuid.UUID { return v.targetTierID }
func (v *Voucher) OrderTypes() []order.Type { return v.orderTypes }
func (v *Voucher) MinSubtotalIDR() *int64   { return v.minSubtotalIDR }
func (v *Voucher) PerUserLimit() *int64     { return v.perUserLimit }
func (v *Voucher) GlobalLimit() *int64      { return v.globalLimit }

func (v *Voucher) appliesToOrderType(t order.Type) bool {
	if len(v.orderTypes) == 0 {
		return true
	}
	for _, ot := range v.orderTypes {
		if ot == t {
			return true
		}
	}
	return false
}
