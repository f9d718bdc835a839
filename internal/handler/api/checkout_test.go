//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/domain/user"
	"warung-loyalty/internal/domain/voucher"
	"warung-loyalty/internal/handler/api"
	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/pkg/errs"
	"warung-loyalty/internal/usecase/commands"
	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/tests/common/builder"
	"warung-loyalty/tests/common/httptest"
	"warung-loyalty/tests/common/testutil"
	commandsmock "warung-loyalty/tests/mock/commands"
	queriesmock "warung-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockCommands        *commandsmock.MockCheckoutCommands
	mockCheckoutQueries *queriesmock.MockCheckoutQueries
	mockOrderQueries    *queriesmock.MockOrderQueries
	handler             *api.CheckoutHandler
	userID              uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockCheckoutQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.mockOrderQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockCheckoutQueries, s.mockOrderQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/checkout/quote", authMiddleware, s.handler.Quote)
	s.router.POST("/orders", authMiddleware, s.handler.PlaceOrder)
	s.router.GET("/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func idempotencyHeader(key uuid.UUID) http.Header {
	h := http.Header{}
	h.Set("Idempotency-Key", key.String())
	return h
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestQuote() {
	url := "/checkout/quote"
	reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()

	s.Run("success: returns 200 with the priced cart", func() {
		view := &queries.QuoteView{SubtotalIDR: 50_000, TotalIDR: 50_000}
		s.mockCheckoutQueries.EXPECT().Quote(gomock.Any(), s.userID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(50_000), resp.TotalIDR)
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing items", mutate: testutil.Field("items", nil)},
		{name: "empty items", mutate: testutil.Field("items", []map[string]any{})},
		{name: "missing order_type", mutate: testutil.Field("order_type", nil)},
		{name: "unknown order_type", mutate: testutil.Field("order_type", "drive_thru")},
		{name: "negative points", mutate: testutil.Field("points_to_redeem", -1)},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
			tc.mutate(body)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}

// ================================================================================
// TestPlaceOrder
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestPlaceOrder() {
	url := "/orders"

	s.Run("success: returns 201 for a first run", func() {
		orderView := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.UserID = s.userID }).
			BuildView()
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.PlaceOrderResult{Order: orderView}, nil).Times(1)

		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(uuid.New()))

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(orderView.ID, resp.ID)
	})

	s.Run("replay: returns 200 with the original order", func() {
		orderView := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.UserID = s.userID }).
			BuildView()
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.PlaceOrderResult{Order: orderView, IsReplayed: true}, nil).Times(1)

		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(uuid.New()))

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(orderView.ID, resp.ID)
	})

	s.Run("missing Idempotency-Key header returns 400", func() {
		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("malformed Idempotency-Key returns 400", func() {
		h := http.Header{}
		h.Set("Idempotency-Key", "not-a-uuid")
		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", h)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("rejected voucher returns 422 with the reason code", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, &commands.VoucherRejectedError{Reason: voucher.ReasonExpired}).Times(1)

		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(uuid.New()))
		httptest.AssertRejectionReason(s.T(), rec, http.StatusUnprocessableEntity, "EXPIRED")
	})

	s.Run("refused redemption returns 422 with the reason code", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, &commands.RedemptionRejectedError{Reason: loyalty.ReasonInsufficientPoints}).Times(1)

		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(uuid.New()))
		httptest.AssertRejectionReason(s.T(), rec, http.StatusUnprocessableEntity, "INSUFFICIENT_POINTS")
	})

	s.Run("reused key with different parameters returns 409", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrDuplicateOrder).Times(1)

		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("key still being processed returns 409", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.ErrIdempotencyInProgress).Times(1)

		reqBody := builder.NewOrderBuilder().BuildPlaceOrderRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Order request is currently being processed")
	})
}

// ================================================================================
// TestGetOrder / TestListOrders
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestGetOrder() {
	s.Run("success: returns the order", func() {
		orderView := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.UserID = s.userID }).
			BuildView()
		s.mockOrderQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderView.ID).
			Return(orderView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderView.ID.String(), nil, "bearer-token")

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(orderView.ID, resp.ID)
	})

	s.Run("another user's order hides behind 404", func() {
		orderID := uuid.New()
		s.mockOrderQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).
			Return(nil, queries.ErrOrderForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("missing order returns 404", func() {
		orderID := uuid.New()
		s.mockOrderQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CheckoutHandlerTestSuite) TestListOrders() {
	s.Run("success: returns the caller's orders", func() {
		items := []*queries.OrderListItem{
			{ID: uuid.New(), OrderType: "pickup", SubtotalIDR: 30_000, TotalIDR: 30_000, Status: "completed"},
		}
		s.mockOrderQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

		var resp []resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal(items[0].ID, resp[0].ID)
	})
}
