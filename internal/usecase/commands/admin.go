package commands

import (
	"context"
	"log/slog"
	"time"

	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/domain/voucher"
	"warung-loyalty/internal/infra"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/pkg/patch"
	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVoucherCodeTaken = errs.New("voucher code already exists")

// SettingsCacheInvalidator drops the cached settings snapshot after a write
// so reads converge before the TTL expires.
type SettingsCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

// UpdateSettingsParams is a partial update: nil fields keep their current
// value. ClearMaxPointsPerTxn removes the per-transaction cap.
type UpdateSettingsParams struct {
	Enabled              *bool
	PointsPerItem        *int64
	PointValueIDR        *int64
	MinPointsToRedeem    *int64
	MaxPointsPerTxn      *int64
	ClearMaxPointsPerTxn bool
	MaxRedemptionPercent *int32
}

type CreateVoucherParams struct {
	Code           string
	DiscountType   string
	DiscountValue  int64
	MaxDiscountIDR *int64
	PointCost      *int64
	Active         bool
	Redeemable     bool
	StartsAt       time.Time
	EndsAt         time.Time
	TargetTierID   *uuid.UUID
	OrderTypes     []string
	MinSubtotalIDR *int64
	PerUserLimit   *int64
	GlobalLimit    *int64
}

type AdminCommands interface {
	UpdateSettings(ctx context.Context, params UpdateSettingsParams) (*queries.SettingsView, error)
	CreateVoucher(ctx context.Context, params CreateVoucherParams) (uuid.UUID, error)
}

type adminCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator SettingsCacheInvalidator
}

func NewAdminCommands(uow shared.UnitOfWork, invalidator SettingsCacheInvalidator) AdminCommands {
	return &adminCommandsImpl{
		uow:         uow,
		invalidator: invalidator,
	}
}

func (a *adminCommandsImpl) UpdateSettings(ctx context.Context, params UpdateSettingsParams) (*queries.SettingsView, error) {
	var updated shared.SettingsSnapshot

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().Settings(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		next := shared.SettingsSnapshot{
			Enabled:              patch.Coalesce(params.Enabled, current.Enabled),
			PointsPerItem:        patch.Coalesce(params.PointsPerItem, current.PointsPerItem),
			PointValueIDR:        patch.Coalesce(params.PointValueIDR, current.PointValueIDR),
			MinPointsToRedeem:    patch.Coalesce(params.MinPointsToRedeem, current.MinPointsToRedeem),
			MaxPointsPerTxn:      current.MaxPointsPerTxn,
			MaxRedemptionPercent: patch.Coalesce(params.MaxRedemptionPercent, current.MaxRedemptionPercent),
			Version:              current.Version + 1,
		}
		if params.ClearMaxPointsPerTxn {
			next.MaxPointsPerTxn = nil
		} else if params.MaxPointsPerTxn != nil {
			next.MaxPointsPerTxn = params.MaxPointsPerTxn
		}

		if _, err := queries.SettingsFromSnapshot(&next); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Settings().Save(ctx, next); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := a.invalidator.Invalidate(ctx); err != nil {
		// Stale cache entries age out at the TTL.
		slog.Warn("failed to invalidate settings cache", "error", err.Error())
	}

	return &queries.SettingsView{
		Enabled:              updated.Enabled,
		PointsPerItem:        updated.PointsPerItem,
		PointValueIDR:        updated.PointValueIDR,
		MinPointsToRedeem:    updated.MinPointsToRedeem,
		MaxPointsPerTxn:      updated.MaxPointsPerTxn,
		MaxRedemptionPercent: updated.MaxRedemptionPercent,
		Version:              updated.Version,
	}, nil
}

func (a *adminCommandsImpl) CreateVoucher(ctx context.Context, params CreateVoucherParams) (uuid.UUID, error) {
	orderTypes := make([]order.Type, 0, len(params.OrderTypes))
	for _, s := range params.OrderTypes {
		t, err := order.NewType(s)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		orderTypes = append(orderTypes, t)
	}

	entity, err := voucher.New(voucher.Config{
		ID:             uuid.New(),
		Code:           params.Code,
		DiscountType:   params.DiscountType,
		DiscountValue:  params.DiscountValue,
		MaxDiscountIDR: params.MaxDiscountIDR,
		PointCost:      params.PointCost,
		Active:         params.Active,
		Redeemable:     params.Redeemable,
		StartsAt:       params.StartsAt,
		EndsAt:         params.EndsAt,
		TargetTierID:   params.TargetTierID,
		OrderTypes:     orderTypes,
		MinSubtotalIDR: params.MinSubtotalIDR,
		PerUserLimit:   params.PerUserLimit,
		GlobalLimit:    params.GlobalLimit,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Vouchers().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrVoucherCodeTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
