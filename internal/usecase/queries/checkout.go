package queries

import (
	"context"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/pkg/clock"
	"warung-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/queries/checkout.go -package=queriesmock

type QuoteParams struct {
	Items           []order.LineItem
	OrderType       order.Type
	VoucherCode     *string
	PointsRequested int64
}

type CheckoutQueries interface {
	// Quote prices a cart without side effects: the voucher check and the
	// redemption authorization both run against current snapshots and report
	// their reasons instead of failing, so a UI can re-quote on every change.
	Quote(ctx context.Context, userID uuid.UUID, params QuoteParams) (*QuoteView, error)
}

type checkoutQueriesImpl struct {
	vouchers      VoucherReadStore
	loyaltyStore  LoyaltyReadStore
	settingsStore SettingsReadStore
	clock         clock.Clock
}

func NewCheckoutQueries(
	vouchers VoucherReadStore,
	loyaltyStore LoyaltyReadStore,
	settingsStore SettingsReadStore,
	clk clock.Clock,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		vouchers:      vouchers,
		loyaltyStore:  loyaltyStore,
		settingsStore: settingsStore,
		clock:         clk,
	}
}

func (q *checkoutQueriesImpl) Quote(ctx context.Context, userID uuid.UUID, params QuoteParams) (*QuoteView, error) {
	cart, err := order.NewCart(params.Items)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	subtotal := cart.SubtotalIDR()

	view := &QuoteView{SubtotalIDR: subtotal}

	var voucherDiscount int64
	if params.VoucherCode != nil {
		eligibility, err := EvaluateVoucher(ctx, q.vouchers, q.loyaltyStore, q.clock, userID, VoucherCheckParams{
			Code:        *params.VoucherCode,
			SubtotalIDR: subtotal,
			OrderType:   params.OrderType,
		})
		if err != nil {
			return nil, err
		}
		view.Voucher = voucherCheckView(*params.VoucherCode, eligibility)
		voucherDiscount = eligibility.DiscountIDR
	}

	var pointsDiscount int64
	if params.PointsRequested > 0 {
		redemption, pointValueIDR, err := q.authorizePoints(ctx, userID, params.PointsRequested, subtotal)
		if err != nil {
			return nil, err
		}
		// Mirror settlement: the points discount only gets what the voucher
		// left of the subtotal.
		redemption = redemption.ClampToRemainder(subtotal-voucherDiscount, pointValueIDR)
		view.Points = &PointsCheckView{
			RequestedPoints: params.PointsRequested,
			AllowedPoints:   redemption.AllowedPoints,
			DiscountIDR:     redemption.DiscountIDR,
			CapApplied:      redemption.CapApplied,
			Reason:          string(redemption.Reason),
		}
		pointsDiscount = redemption.DiscountIDR
	}

	view.TotalIDR = order.Price(subtotal, voucherDiscount, pointsDiscount).TotalIDR
	return view, nil
}

func (q *checkoutQueriesImpl) authorizePoints(ctx context.Context, userID uuid.UUID, requested, subtotalIDR int64) (loyalty.Redemption, int64, error) {
	snap, err := q.settingsStore.Settings(ctx)
	if err != nil {
		return loyalty.Redemption{}, 0, errs.Wrap(err, "failed to load loyalty settings")
	}

	settings, err := SettingsFromSnapshot(snap)
	if err != nil {
		return loyalty.Redemption{}, 0, errs.Mark(err, errs.ErrLoyaltyMisconfigured)
	}

	var balance int64
	account, err := q.loyaltyStore.Account(ctx, userID)
	switch {
	case err == nil:
		balance = account.Points
	case infra.IsKind(err, infra.KindNotFound):
		balance = 0
	default:
		return loyalty.Redemption{}, 0, errs.Wrap(err, "failed to load loyalty account")
	}

	return loyalty.AuthorizeRedemption(requested, balance, subtotalIDR, settings), settings.PointValueIDR, nil
}
