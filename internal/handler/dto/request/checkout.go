package request

import (
	"strings"

	"warung-loyalty/internal/domain/order"

	"github.com/google/uuid"
)

type LineItemRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Quantity     int64     `json:"quantity" binding:"required,gt=0"`
	UnitPriceIDR int64     `json:"unit_price_idr" binding:"required,gte=0"`
}

type QuoteRequest struct {
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	OrderType      string            `json:"order_type" binding:"required,oneof=dine_in pickup delivery"`
	VoucherCode    *string           `json:"voucher_code,omitempty"`
	PointsToRedeem int64             `json:"points_to_redeem" binding:"gte=0"`
}

type PlaceOrderRequest struct {
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	OrderType      string            `json:"order_type" binding:"required,oneof=dine_in pickup delivery"`
	VoucherCode    *string           `json:"voucher_code,omitempty"`
	PointsToRedeem int64             `json:"points_to_redeem" binding:"gte=0"`
}

type ValidateVoucherRequest struct {
	Code        string `json:"code" binding:"required"`
	SubtotalIDR int64  `json:"subtotal_idr" binding:"required,gte=0"`
	OrderType   string `json:"order_type" binding:"required,oneof=dine_in pickup delivery"`
}

func (r QuoteRequest) GetVoucherCode() *string { return normalizeCodePtr(r.VoucherCode) }

func (r PlaceOrderRequest) GetVoucherCode() *string { return normalizeCodePtr(r.VoucherCode) }

func normalizeCodePtr(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ToLineItems(items []LineItemRequest) []order.LineItem {
	out := make([]order.LineItem, len(items))
	for i, it := range items {
		out[i] = order.LineItem{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPriceIDR: it.UnitPriceIDR,
		}
	}
	return out
}
