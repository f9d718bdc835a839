//go:build unit

package order_test

import (
	"testing"

	"warung-loyalty/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	testCases := []struct {
		name     string
		subtotal int64
		voucher  int64
		points   int64
		want     order.PriceBreakdown
	}{
		{
			name:     "no discounts",
			subtotal: 50_000,
			want:     order.PriceBreakdown{SubtotalIDR: 50_000, TotalIDR: 50_000},
		},
		{
			name:     "voucher and points both fit",
			subtotal: 50_000,
			voucher:  10_000,
			points:   5_000,
			want: order.PriceBreakdown{
				SubtotalIDR:        50_000,
				VoucherDiscountIDR: 10_000,
				PointsDiscountIDR:  5_000,
				TotalIDR:           35_000,
			},
		},
		{
			name:     "voucher clamps to the subtotal",
			subtotal: 8_000,
			voucher:  10_000,
			want: order.PriceBreakdown{
				SubtotalIDR:        8_000,
				VoucherDiscountIDR: 8_000,
				TotalIDR:           0,
			},
		},
		{
			name:     "points clamp to what the voucher left",
			subtotal: 20_000,
			voucher:  15_000,
			points:   10_000,
			want: order.PriceBreakdown{
				SubtotalIDR:        20_000,
				VoucherDiscountIDR: 15_000,
				PointsDiscountIDR:  5_000,
				TotalIDR:           0,
			},
		},
		{
			name:     "negative inputs are treated as zero",
			subtotal: -1,
			voucher:  -5,
			points:   -5,
			want:     order.PriceBreakdown{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := order.Price(tc.subtotal, tc.voucher, tc.points)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got.TotalIDR, int64(0))
		})
	}
}

func TestNewCart(t *testing.T) {
	item := func(qty, price int64) order.LineItem {
		return order.LineItem{Name: "Nasi Goreng", Quantity: qty, UnitPriceIDR: price}
	}

	t.Run("computes subtotal and item count", func(t *testing.T) {
		cart, err := order.NewCart([]order.LineItem{item(2, 25_000), item(1, 8_000)})
		require.NoError(t, err)

		assert.Equal(t, int64(58_000), cart.SubtotalIDR())
		assert.Equal(t, int64(3), cart.ItemCount())
		assert.Len(t, cart.Items(), 2)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		_, err := order.NewCart(nil)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		_, err := order.NewCart([]order.LineItem{item(0, 25_000)})
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := order.NewCart([]order.LineItem{item(1, -1)})
		assert.ErrorIs(t, err, order.ErrInvalidUnitPrice)
	})

	t.Run("copies the input slice", func(t *testing.T) {
		items := []order.LineItem{item(1, 10_000)}
		cart, err := order.NewCart(items)
		require.NoError(t, err)

		items[0].UnitPriceIDR = 99_999
		assert.Equal(t, int64(10_000), cart.SubtotalIDR())
	})
}

func TestNewType(t *testing.T) {
	for _, valid := range []string{"dine_in", "pickup", "delivery"} {
		got, err := order.NewType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got.String())
	}

	_, err := order.NewType("drive_thru")
	assert.ErrorIs(t, err, order.ErrInvalidOrderType)
}
