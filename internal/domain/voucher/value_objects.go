package voucher

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid voucher code format")
	ErrInvalidDiscountType    = errors.New("invalid discount type")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,24}$`)

// Code is a normalized voucher code. Normalization (trim + uppercase) happens
// here so that lookup and storage agree on one canonical form; matching is
// therefore effectively case-insensitive.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !codeRegex.MatchString(normalized) {
		return "", ErrInvalidCode
	}
	return Code(normalized), nil
}

func (c Code) String() string { return string(c) }

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountFixed, DiscountPercentage:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) String() string { return string(t) }

// Discount is either a fixed rupiah amount or a percentage of the subtotal,
// the latter optionally capped by a maximum discount ceiling.
type Discount struct {
	dtype  DiscountType
	value  int64
	maxIDR *int64
}

func NewFixedDiscount(amountIDR int64) (Discount, error) {
	if amountIDR < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{dtype: DiscountFixed, value: amountIDR}, nil
}

func NewPercentageDiscount(percent int64, maxIDR *int64) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if maxIDR != nil && *maxIDR < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{dtype: DiscountPercentage, value: percent, maxIDR: maxIDR}, nil
}

func NewDiscount(dtype DiscountType, value int64, maxIDR *int64) (Discount, error) {
	switch dtype {
	case DiscountFixed:
		return NewFixedDiscount(value)
	case DiscountPercentage:
		return NewPercentageDiscount(value, maxIDR)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType { return d.dtype }
func (d Discount) Value() int64       { return d.value }
func (d Discount) MaxIDR() *int64     { return d.maxIDR }

// AmountFor returns the discount in rupiah for the given subtotal. The result
// never exceeds the subtotal, so applying it cannot produce a negative total.
func (d Discount) AmountFor(subtotalIDR int64) int64 {
	if subtotalIDR <= 0 {
		return 0
	}

	var amount int64
	switch d.dtype {
	case DiscountPercentage:
		amount = subtotalIDR * d.value / 100
		if d.maxIDR != nil && amount > *d.maxIDR {
			amount = *d.maxIDR
		}
	default:
		amount = d.value
	}

	if amount > subtotalIDR {
		return subtotalIDR
	}
	return amount
}
