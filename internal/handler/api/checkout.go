package api

import (
	"errors"
	"net/http"

	reqdto "warung-loyalty/internal/handler/dto/request"
	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/handler/middleware"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/usecase/commands"
	"warung-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	checkoutQueries  queries.CheckoutQueries
	orderQueries     queries.OrderQueries
}

func NewCheckoutHandler(
	checkoutCommands commands.CheckoutCommands,
	checkoutQueries queries.CheckoutQueries,
	orderQueries queries.OrderQueries,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		checkoutQueries:  checkoutQueries,
		orderQueries:     orderQueries,
	}
}

// @Summary Quote a cart
// @Description Price a cart with optional voucher and point redemption, without placing an order
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.checkoutQueries.Quote(c.Request.Context(), userID, queries.QuoteParams{
		Items:           reqdto.ToLineItems(req.Items),
		OrderType:       mustOrderType(req.OrderType),
		VoucherCode:     req.GetVoucherCode(),
		PointsRequested: req.PointsToRedeem,
	})
	if err != nil {
		switch {
		case isDomainValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cart",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Place order
// @Description Settle a cart: validate voucher and points, write the order, update the loyalty account
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 200 {object} resdto.OrderResponse "Replayed result for a known key"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.PlaceOrder(c.Request.Context(), commands.PlaceOrderParams{
		Items:          reqdto.ToLineItems(req.Items),
		OrderType:      mustOrderType(req.OrderType),
		VoucherCode:    req.GetVoucherCode(),
		PointsToRedeem: req.PointsToRedeem,
	}, userID, idempotencyKey)
	if err != nil {
		h.renderPlaceOrderError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromOrderView(result.Order))
}

func (h *CheckoutHandler) renderPlaceOrderError(c *gin.Context, err error) {
	var voucherErr *commands.VoucherRejectedError
	var redemptionErr *commands.RedemptionRejectedError

	switch {
	case errors.As(err, &voucherErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Voucher rejected",
			"reason": string(voucherErr.Reason),
		})
	case errors.As(err, &redemptionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Point redemption rejected",
			"reason": string(redemptionErr.Reason),
		})
	case errors.Is(err, commands.ErrDuplicateOrder):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate order request with different parameters",
		})
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order request is currently being processed",
		})
	case isDomainValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get order
// @Description Get one of the caller's orders by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound), errors.Is(err, queries.ErrOrderForbidden):
			// Hide other users' orders behind a 404.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.orderQueries.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.OrderListResponse, len(items))
	for i, item := range items {
		responses[i] = resdto.FromOrderListItem(item)
	}
	c.JSON(http.StatusOK, responses)
}
