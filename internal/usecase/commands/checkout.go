package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/domain/voucher"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/pkg/clock"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateOrder = errs.New("duplicate order request")

// VoucherRejectedError carries the stable reason code from the eligibility
// checks so the handler can surface a specific message.
type VoucherRejectedError struct {
	Reason voucher.Reason
}

func (e *VoucherRejectedError) Error() string {
	return fmt.Sprintf("voucher rejected: %s", e.Reason)
}

// RedemptionRejectedError carries the reason a point redemption was refused.
type RedemptionRejectedError struct {
	Reason loyalty.RedemptionReason
}

func (e *RedemptionRejectedError) Error() string {
	return fmt.Sprintf("point redemption rejected: %s", e.Reason)
}

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

type PlaceOrderParams struct {
	Items          []order.LineItem
	OrderType      order.Type
	VoucherCode    *string
	PointsToRedeem int64
}

type PlaceOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type CheckoutCommands interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams, userID, idempotencyKey uuid.UUID) (*PlaceOrderResult, error)
}

type checkoutCommandsImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewCheckoutCommands(uow shared.UnitOfWork, orderQueries queries.OrderQueries, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:          uow,
		orderQueries: orderQueries,
		clock:        clk,
	}
}

// PlaceOrder settles an order in a single transaction: it takes the loyalty
// account row lock, re-validates voucher and points against fresh reads,
// writes the order, records voucher usage, debits and credits points, and
// re-classifies the tier. Two concurrent checkouts for the same user
// serialize on the row lock, so they can never both spend the same points.
func (c *checkoutCommandsImpl) PlaceOrder(
	ctx context.Context,
	params PlaceOrderParams,
	userID, idempotencyKey uuid.UUID,
) (*PlaceOrderResult, error) {
	requestHash := c.calculateRequestHash(params)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &PlaceOrderResult{Order: replayed, IsReplayed: true}, nil
	}

	cart, err := order.NewCart(params.Items)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	orderID, err := c.settle(ctx, params, cart, userID, idempotencyKey, requestHash)
	if err != nil {
		return nil, err
	}

	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &PlaceOrderResult{Order: view, IsReplayed: false}, nil
}

func (c *checkoutCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.OrderView, error) {
	var claimed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Idempotency().TryInsert(ctx, idempotencyKey, userID, "POST /orders", requestHash, expiresAt)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := c.uow.Reads().IdempotencyByKey(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultOrderID != nil {
			return c.orderQueries.GetByIDSystem(ctx, *existing.ResultOrderID)
		}
		return nil, errs.New("completed request missing result order ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateOrder
		}
		// Another request holds the key and is mid-settlement.
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *checkoutCommandsImpl) settle(
	ctx context.Context,
	params PlaceOrderParams,
	cart order.Cart,
	userID, idempotencyKey uuid.UUID,
	requestHash string,
) (uuid.UUID, error) {
	var orderID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		settingsSnap, err := reads.Settings(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		settings, err := queries.SettingsFromSnapshot(settingsSnap)
		if err != nil {
			return errs.Mark(err, errs.ErrLoyaltyMisconfigured)
		}

		tierRows, err := reads.Tiers(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		tierSet, err := queries.TierSetFromSnapshots(tierRows)
		if err != nil {
			return errs.Mark(err, errs.ErrLoyaltyMisconfigured)
		}

		account, err := c.lockAccount(ctx, tx, userID)
		if err != nil {
			return err
		}

		subtotal := cart.SubtotalIDR()

		var voucherID *uuid.UUID
		var voucherDiscount int64
		if params.VoucherCode != nil {
			id, discount, err := c.checkVoucher(ctx, reads, *params.VoucherCode, account, tierSet, subtotal, params.OrderType)
			if err != nil {
				return err
			}
			voucherID = id
			voucherDiscount = discount
		}

		redemption := loyalty.AuthorizeRedemption(params.PointsToRedeem, account.Points, subtotal, settings)
		if !redemption.OK() {
			return &RedemptionRejectedError{Reason: redemption.Reason}
		}

		// The percentage cap is computed against the full subtotal; when the
		// voucher already consumed part of it, the points discount is clamped
		// further so both together never exceed the subtotal. Points are
		// charged only for what was actually discounted.
		redemption = redemption.ClampToRemainder(subtotal-voucherDiscount, settings.PointValueIDR)

		price := order.Price(subtotal, voucherDiscount, redemption.DiscountIDR)
		accrued := settings.Accrue(cart.ItemCount())

		settled, err := account.Settle(redemption.AllowedPoints, accrued, price.TotalIDR, tierSet)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		o := order.NewOrder(userID, params.OrderType, cart, voucherID, redemption.AllowedPoints, accrued, price)
		orderID, err = tx.Orders().Create(ctx, o)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if voucherID != nil {
			if err := tx.VoucherUsages().Record(ctx, *voucherID, userID, orderID, c.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Loyalty().Save(ctx, settled); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.createNotificationJob(ctx, tx, orderID, userID, settled); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		responseHash := c.calculateIDHash(orderID)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, userID, responseHash, orderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return orderID, nil
}

func (c *checkoutCommandsImpl) lockAccount(ctx context.Context, tx shared.Tx, userID uuid.UUID) (loyalty.Account, error) {
	snap, err := tx.Loyalty().GetForUpdate(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Accounts are created at registration; tolerate users that
			// predate the loyalty program.
			if err := tx.Loyalty().CreateAccount(ctx, userID); err != nil {
				return loyalty.Account{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return loyalty.NewAccount(userID), nil
		}
		return loyalty.Account{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return loyalty.Account{
		UserID:        snap.UserID,
		Points:        snap.Points,
		TotalSpentIDR: snap.TotalSpentIDR,
		TierID:        snap.TierID,
	}, nil
}

func (c *checkoutCommandsImpl) checkVoucher(
	ctx context.Context,
	reads shared.CommandReads,
	rawCode string,
	account loyalty.Account,
	tierSet loyalty.TierSet,
	subtotalIDR int64,
	orderType order.Type,
) (*uuid.UUID, int64, error) {
	code, err := voucher.NewCode(rawCode)
	if err != nil {
		return nil, 0, &VoucherRejectedError{Reason: voucher.ReasonNotFound}
	}

	snap, err := reads.VoucherByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, &VoucherRejectedError{Reason: voucher.ReasonNotFound}
		}
		return nil, 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := queries.VoucherFromSnapshot(snap)
	if err != nil {
		return nil, 0, errs.Mark(err, errs.ErrLoyaltyMisconfigured)
	}

	usage, err := reads.VoucherUsage(ctx, snap.ID, account.UserID)
	if err != nil {
		return nil, 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	eligibility := entity.Evaluate(voucher.CheckInput{
		Now:         c.clock.Now(),
		UserTier:    tierSet.Classify(account.Points),
		SubtotalIDR: subtotalIDR,
		OrderType:   orderType,
		UsedByUser:  usage.ByUser,
		UsedTotal:   usage.Total,
	})
	if !eligibility.Valid {
		return nil, 0, &VoucherRejectedError{Reason: eligibility.Reason}
	}

	id := snap.ID
	return &id, eligibility.DiscountIDR, nil
}

func (c *checkoutCommandsImpl) createNotificationJob(
	ctx context.Context,
	tx shared.Tx,
	orderID, userID uuid.UUID,
	account loyalty.Account,
) error {
	payload, err := json.Marshal(map[string]any{
		"order_id":       orderID,
		"user_id":        userID,
		"points_balance": account.Points,
		"type":           "order_completed",
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, "email", "order_completed", payload, c.clock.Now())
}

func (c *checkoutCommandsImpl) calculateRequestHash(params PlaceOrderParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (c *checkoutCommandsImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
