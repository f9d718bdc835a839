package readstore

import (
	"context"

	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/infra/db"
	"warung-loyalty/internal/pkg/pgconv"
	"warung-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView
	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.user_id, o.order_type, o.subtotal_idr,
		       o.voucher_id, v.code, o.voucher_discount_idr,
		       o.points_redeemed, o.points_discount_idr,
		       o.total_idr, o.points_accrued, o.status, o.created_at
		FROM orders o
		LEFT JOIN vouchers v ON v.id = o.voucher_id
		WHERE o.id = $1`,
		id,
	).Scan(
		&view.ID,
		&view.UserID,
		&view.OrderType,
		&view.SubtotalIDR,
		&view.VoucherID,
		&view.VoucherCode,
		&view.VoucherDiscountIDR,
		&view.PointsRedeemed,
		&view.PointsDiscountIDR,
		&view.TotalIDR,
		&view.PointsAccrued,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return &view, nil
}

func (r *OrderReadStore) items(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, name, quantity, unit_price_idr
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`,
		orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.UnitPriceIDR); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_type, subtotal_idr, total_idr, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.OrderType, &item.SubtotalIDR, &item.TotalIDR, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return items, nil
}
