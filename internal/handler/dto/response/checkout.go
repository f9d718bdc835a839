package response

import (
	"time"

	"warung-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	SubtotalIDR int64                 `json:"subtotal_idr"`
	Voucher     *VoucherCheckResponse `json:"voucher,omitempty"`
	Points      *PointsCheckResponse  `json:"points,omitempty"`
	TotalIDR    int64                 `json:"total_idr"`
}

type VoucherCheckResponse struct {
	Code        string `json:"code"`
	Valid       bool   `json:"valid"`
	DiscountIDR int64  `json:"discount_idr"`
	Reason      string `json:"reason,omitempty"`
}

type PointsCheckResponse struct {
	RequestedPoints int64  `json:"requested_points"`
	AllowedPoints   int64  `json:"allowed_points"`
	DiscountIDR     int64  `json:"discount_idr"`
	CapApplied      bool   `json:"cap_applied"`
	Reason          string `json:"reason,omitempty"`
}

type OrderItemResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	UnitPriceIDR int64     `json:"unit_price_idr"`
}

type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	OrderType          string              `json:"order_type"`
	Items              []OrderItemResponse `json:"items"`
	SubtotalIDR        int64               `json:"subtotal_idr"`
	VoucherCode        *string             `json:"voucher_code,omitempty"`
	VoucherDiscountIDR int64               `json:"voucher_discount_idr"`
	PointsRedeemed     int64               `json:"points_redeemed"`
	PointsDiscountIDR  int64               `json:"points_discount_idr"`
	TotalIDR           int64               `json:"total_idr"`
	PointsAccrued      int64               `json:"points_accrued"`
	Status             string              `json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderType   string    `json:"order_type"`
	SubtotalIDR int64     `json:"subtotal_idr"`
	TotalIDR    int64     `json:"total_idr"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{
		SubtotalIDR: v.SubtotalIDR,
		TotalIDR:    v.TotalIDR,
	}
	if v.Voucher != nil {
		resp.Voucher = FromVoucherCheckView(v.Voucher)
	}
	if v.Points != nil {
		resp.Points = &PointsCheckResponse{
			RequestedPoints: v.Points.RequestedPoints,
			AllowedPoints:   v.Points.AllowedPoints,
			DiscountIDR:     v.Points.DiscountIDR,
			CapApplied:      v.Points.CapApplied,
			Reason:          v.Points.Reason,
		}
	}
	return resp
}

func FromVoucherCheckView(v *queries.VoucherCheckView) *VoucherCheckResponse {
	return &VoucherCheckResponse{
		Code:        v.Code,
		Valid:       v.Valid,
		DiscountIDR: v.DiscountIDR,
		Reason:      v.Reason,
	}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItemResponse{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPriceIDR: it.UnitPriceIDR,
		}
	}
	return &OrderResponse{
		ID:                 v.ID,
		OrderType:          v.OrderType,
		Items:              items,
		SubtotalIDR:        v.SubtotalIDR,
		VoucherCode:        v.VoucherCode,
		VoucherDiscountIDR: v.VoucherDiscountIDR,
		PointsRedeemed:     v.PointsRedeemed,
		PointsDiscountIDR:  v.PointsDiscountIDR,
		TotalIDR:           v.TotalIDR,
		PointsAccrued:      v.PointsAccrued,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt,
	}
}

func FromOrderListItem(v *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:          v.ID,
		OrderType:   v.OrderType,
		SubtotalIDR: v.SubtotalIDR,
		TotalIDR:    v.TotalIDR,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
}
