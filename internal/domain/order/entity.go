package order

import (
	"github.com/google/uuid"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Order is a settled checkout. Orders are created directly in a terminal
// state by the settlement transaction; there is no in-flight lifecycle here.
type Order struct {
	id             uuid.UUID
	userID         uuid.UUID
	orderType      Type
	cart           Cart
	voucherID      *uuid.UUID
	pointsRedeemed int64
	pointsAccrued  int64
	price          PriceBreakdown
	status         Status
}

func NewOrder(
	userID uuid.UUID,
	orderType Type,
	cart Cart,
	voucherID *uuid.UUID,
	pointsRedeemed, pointsAccrued int64,
	price PriceBreakdown,
) *Order {
	return &Order{
		id:             uuid.New(),
		userID:         userID,
		orderType:      orderType,
		cart:           cart,
		voucherID:      voucherID,
		pointsRedeemed: pointsRedeemed,
		pointsAccrued:  pointsAccrued,
		price:          price,
		status:         StatusCompleted,
	}
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) UserID() uuid.UUID     { return o.userID }
func (o *Order) OrderType() Type       { return o.orderType }
func (o *Order) Cart() Cart            { return o.cart }
func (o *Order) VoucherID() *uuid.UUID { return o.voucherID }
func (o *Order) PointsRedeemed() int64 { return o.pointsRedeemed }
func (o *Order) PointsAccrued() int64  { return o.pointsAccrued }
func (o *Order) Price() PriceBreakdown { return o.price }
func (o *Order) Status() Status        { return o.status }
