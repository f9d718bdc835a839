//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"warung-loyalty/internal/domain/user"
	"warung-loyalty/internal/handler/api"
	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/tests/common/httptest"
	"warung-loyalty/tests/common/testutil"
	queriesmock "warung-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVoucherQueries
	handler     *api.VoucherHandler
	userID      uuid.UUID
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewVoucherHandler(s.mockQueries)
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

	s.router.POST("/vouchers/validate", authMiddleware, s.handler.Validate)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func validateBody() map[string]any {
	return map[string]any{
		"code":         "HEMAT10",
		"subtotal_idr": 100_000,
		"order_type":   "dine_in",
	}
}

func (s *VoucherHandlerTestSuite) TestValidate() {
	url := "/vouchers/validate"

	s.Run("valid voucher reports its discount", func() {
		view := &queries.VoucherCheckView{Code: "HEMAT10", Valid: true, DiscountIDR: 10_000}
		s.mockQueries.EXPECT().Check(gomock.Any(), s.userID, gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validateBody(), "bearer-token")

		var resp resdto.VoucherCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Valid)
		s.Equal(int64(10_000), resp.DiscountIDR)
	})

	s.Run("ineligible voucher reports the reason, still 200", func() {
		view := &queries.VoucherCheckView{Code: "HEMAT10", Valid: false, Reason: "EXPIRED"}
		s.mockQueries.EXPECT().Check(gomock.Any(), s.userID, gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validateBody(), "bearer-token")

		var resp resdto.VoucherCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.Valid)
		s.Equal("EXPIRED", resp.Reason)
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing code", mutate: testutil.Field("code", nil)},
		{name: "missing subtotal", mutate: testutil.Field("subtotal_idr", nil)},
		{name: "unknown order type", mutate: testutil.Field("order_type", "drive_thru")},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := validateBody()
			tc.mutate(body)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}
