package queries

import (
	"context"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/domain/voucher"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/pkg/clock"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher.go -package=queriesmock

type VoucherReadStore interface {
	FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error)
	Usage(ctx context.Context, voucherID, userID uuid.UUID) (*shared.VoucherUsageCount, error)
	ListActive(ctx context.Context) ([]shared.VoucherSnapshot, error)
}

type VoucherCheckParams struct {
	Code        string
	SubtotalIDR int64
	OrderType   order.Type
}

type VoucherQueries interface {
	// Check is the read-only voucher validation: no usage is recorded, so it
	// can run on every cart change.
	Check(ctx context.Context, userID uuid.UUID, params VoucherCheckParams) (*VoucherCheckView, error)
	ListActive(ctx context.Context) ([]*VoucherView, error)
}

type voucherQueriesImpl struct {
	vouchers VoucherReadStore
	loyalty  LoyaltyReadStore
	clock    clock.Clock
}

func NewVoucherQueries(vouchers VoucherReadStore, loyaltyStore LoyaltyReadStore, clk clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{
		vouchers: vouchers,
		loyalty:  loyaltyStore,
		clock:    clk,
	}
}

func (q *voucherQueriesImpl) Check(ctx context.Context, userID uuid.UUID, params VoucherCheckParams) (*VoucherCheckView, error) {
	result, err := EvaluateVoucher(ctx, q.vouchers, q.loyalty, q.clock, userID, params)
	if err != nil {
		return nil, err
	}
	return voucherCheckView(params.Code, result), nil
}

func (q *voucherQueriesImpl) ListActive(ctx context.Context) ([]*VoucherView, error) {
	rows, err := q.vouchers.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list vouchers")
	}

	views := make([]*VoucherView, len(rows))
	for i := range rows {
		views[i] = voucherViewFromSnapshot(&rows[i])
	}
	return views, nil
}

// EvaluateVoucher resolves a code and runs the eligibility checks against the
// caller's current tier and usage counts. Shared by the quote path and the
// standalone check endpoint; the settlement command re-runs it inside its
// transaction against fresh reads.
func EvaluateVoucher(
	ctx context.Context,
	vouchers VoucherReadStore,
	loyaltyStore LoyaltyReadStore,
	clk clock.Clock,
	userID uuid.UUID,
	params VoucherCheckParams,
) (voucher.Eligibility, error) {
	code, err := voucher.NewCode(params.Code)
	if err != nil {
		return voucher.NotFound(), nil
	}

	snap, err := vouchers.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return voucher.NotFound(), nil
		}
		return voucher.Eligibility{}, errs.Wrap(err, "failed to find voucher")
	}

	entity, err := VoucherFromSnapshot(snap)
	if err != nil {
		return voucher.Eligibility{}, errs.Mark(err, errs.ErrLoyaltyMisconfigured)
	}

	usage, err := vouchers.Usage(ctx, snap.ID, userID)
	if err != nil {
		return voucher.Eligibility{}, errs.Wrap(err, "failed to read voucher usage")
	}

	userTier, err := classifyUser(ctx, loyaltyStore, userID)
	if err != nil {
		return voucher.Eligibility{}, err
	}

	return entity.Evaluate(voucher.CheckInput{
		Now:         clk.Now(),
		UserTier:    userTier,
		SubtotalIDR: params.SubtotalIDR,
		OrderType:   params.OrderType,
		UsedByUser:  usage.ByUser,
		UsedTotal:   usage.Total,
	}), nil
}

func classifyUser(ctx context.Context, loyaltyStore LoyaltyReadStore, userID uuid.UUID) (*loyalty.Tier, error) {
	account, err := loyaltyStore.Account(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// A user without an account simply has no tier.
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load loyalty account")
	}

	rows, err := loyaltyStore.Tiers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load tiers")
	}

	tierSet, err := TierSetFromSnapshots(rows)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrLoyaltyMisconfigured)
	}
	return tierSet.Classify(account.Points), nil
}

// VoucherFromSnapshot rebuilds the domain entity from a persisted row.
func VoucherFromSnapshot(snap *shared.VoucherSnapshot) (*voucher.Voucher, error) {
	orderTypes := make([]order.Type, 0, len(snap.OrderTypes))
	for _, s := range snap.OrderTypes {
		t, err := order.NewType(s)
		if err != nil {
			return nil, err
		}
		orderTypes = append(orderTypes, t)
	}

	return voucher.New(voucher.Config{
		ID:             snap.ID,
		Code:           snap.Code,
		DiscountType:   snap.DiscountType,
		DiscountValue:  snap.DiscountValue,
		MaxDiscountIDR: snap.MaxDiscountIDR,
		PointCost:      snap.PointCost,
		Active:         snap.IsActive,
		Redeemable:     snap.IsRedeemable,
		StartsAt:       snap.StartsAt,
		EndsAt:         snap.EndsAt,
		TargetTierID:   snap.TargetTierID,
		OrderTypes:     orderTypes,
		MinSubtotalIDR: snap.MinSubtotalIDR,
		PerUserLimit:   snap.PerUserLimit,
		GlobalLimit:    snap.GlobalLimit,
	})
}

func voucherCheckView(code string, e voucher.Eligibility) *VoucherCheckView {
	return &VoucherCheckView{
		Code:        code,
		Valid:       e.Valid,
		DiscountIDR: e.DiscountIDR,
		Reason:      string(e.Reason),
	}
}

func voucherViewFromSnapshot(s *shared.VoucherSnapshot) *VoucherView {
	return &VoucherView{
		ID:             s.ID,
		Code:           s.Code,
		DiscountType:   s.DiscountType,
		DiscountValue:  s.DiscountValue,
		MaxDiscountIDR: s.MaxDiscountIDR,
		PointCost:      s.PointCost,
		IsActive:       s.IsActive,
		IsRedeemable:   s.IsRedeemable,
		StartsAt:       s.StartsAt,
		EndsAt:         s.EndsAt,
		TargetTierID:   s.TargetTierID,
		OrderTypes:     s.OrderTypes,
		MinSubtotalIDR: s.MinSubtotalIDR,
		PerUserLimit:   s.PerUserLimit,
		GlobalLimit:    s.GlobalLimit,
	}
}
