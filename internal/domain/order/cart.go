package order

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart        = errors.New("cart has no items")
	ErrInvalidQuantity  = errors.New("line item quantity must be positive")
	ErrInvalidUnitPrice = errors.New("line item unit price cannot be negative")
	ErrInvalidOrderType = errors.New("invalid order type")
)

// Type scopes an order (and optionally a voucher) to a fulfilment channel.
type Type string

const (
	TypeDineIn   Type = "dine_in"
	TypePickup   Type = "pickup"
	TypeDelivery Type = "delivery"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeDineIn, TypePickup, TypeDelivery:
		return Type(s), nil
	default:
		return "", ErrInvalidOrderType
	}
}

func (t Type) String() string { return string(t) }

type LineItem struct {
	ProductID    uuid.UUID
	Name         string
	Quantity     int64
	UnitPriceIDR int64
}

// Cart is an ordered sequence of validated line items.
type Cart struct {
	items []LineItem
}

func NewCart(items []LineItem) (Cart, error) {
	if len(items) == 0 {
		return Cart{}, ErrEmptyCart
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return Cart{}, ErrInvalidQuantity
		}
		if it.UnitPriceIDR < 0 {
			return Cart{}, ErrInvalidUnitPrice
		}
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return Cart{items: copied}, nil
}

func (c Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// SubtotalIDR is the cart value before any discount.
func (c Cart) SubtotalIDR() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Quantity * it.UnitPriceIDR
	}
	return total
}

// ItemCount is the total unit count across lines, the basis for accrual.
func (c Cart) ItemCount() int64 {
	var count int64
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}
