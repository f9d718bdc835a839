//go:build unit || e2e

package builder

import (
	"time"

	"warung-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	OrderType          string
	Items              []queries.OrderItemView
	SubtotalIDR        int64
	VoucherDiscountIDR int64
	PointsRedeemed     int64
	PointsDiscountIDR  int64
	PointsAccrued      int64
	Status             string
	CreatedAt          time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		OrderType: "dine_in",
		Items: []queries.OrderItemView{
			{ProductID: uuid.New(), Name: "Nasi Goreng", Quantity: 2, UnitPriceIDR: 25_000},
		},
		SubtotalIDR:   50_000,
		PointsAccrued: 2,
		Status:        "completed",
		CreatedAt:     time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:                 b.ID,
		UserID:             b.UserID,
		OrderType:          b.OrderType,
		Items:              b.Items,
		SubtotalIDR:        b.SubtotalIDR,
		VoucherDiscountIDR: b.VoucherDiscountIDR,
		PointsRedeemed:     b.PointsRedeemed,
		PointsDiscountIDR:  b.PointsDiscountIDR,
		TotalIDR:           b.SubtotalIDR - b.VoucherDiscountIDR - b.PointsDiscountIDR,
		PointsAccrued:      b.PointsAccrued,
		Status:             b.Status,
		CreatedAt:          b.CreatedAt,
	}
}

// BuildPlaceOrderRequestMap is the JSON body for quote and place-order calls,
// as a map so tests can knock out or mutate individual fields.
func (b *OrderBuilder) BuildPlaceOrderRequestMap() map[string]any {
	items := make([]map[string]any, len(b.Items))
	for i, it := range b.Items {
		items[i] = map[string]any{
			"product_id":     it.ProductID.String(),
			"name":           it.Name,
			"quantity":       it.Quantity,
			"unit_price_idr": it.UnitPriceIDR,
		}
	}
	return map[string]any{
		"items":      items,
		"order_type": b.OrderType,
	}
}
