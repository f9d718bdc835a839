package repository

import (
	"context"

	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	price := o.Price()
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (
			id, user_id, order_type, subtotal_idr,
			voucher_id, voucher_discount_idr,
			points_redeemed, points_discount_idr,
			total_idr, points_accrued, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())`,
		o.ID(),
		o.UserID(),
		o.OrderType().String(),
		price.SubtotalIDR,
		o.VoucherID(),
		price.VoucherDiscountIDR,
		o.PointsRedeemed(),
		price.PointsDiscountIDR,
		price.TotalIDR,
		o.PointsAccrued(),
		string(o.Status()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err, infra.ClassifyPgErr(err))
	}

	for i, item := range o.Cart().Items() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO order_items (order_id, position, product_id, name, quantity, unit_price_idr)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.ID(), i, item.ProductID, item.Name, item.Quantity, item.UnitPriceIDR,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err, infra.ClassifyPgErr(err))
		}
	}

	return o.ID(), nil
}
