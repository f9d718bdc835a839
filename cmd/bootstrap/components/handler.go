package components

import (
	"warung-loyalty/internal/handler"
	"warung-loyalty/internal/handler/api"
	"warung-loyalty/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCheckoutHandler,
		api.NewLoyaltyHandler,
		api.NewVoucherHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	checkout *api.CheckoutHandler,
	loyalty *api.LoyaltyHandler,
	voucher *api.VoucherHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Checkout: checkout,
		Loyalty:  loyalty,
		Voucher:  voucher,
		Admin:    admin,
	}
}
