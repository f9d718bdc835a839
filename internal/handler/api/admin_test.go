//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"warung-loyalty/internal/domain/user"
	"warung-loyalty/internal/handler/api"
	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/handler/middleware"
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

type AdminHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockCommands       *commandsmock.MockAdminCommands
	mockLoyaltyQueries *queriesmock.MockLoyaltyQueries
	mockVoucherQueries *queriesmock.MockVoucherQueries
	handler            *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockLoyaltyQueries = queriesmock.NewMockLoyaltyQueries(s.mockCtrl)
	s.mockVoucherQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockLoyaltyQueries, s.mockVoucherQueries)

	// Stand-in for RequireAuth: the X-Role header picks the caller's role.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		role := user.RoleAdmin
		if header := c.GetHeader("X-Role"); header != "" {
			role = user.Role(header)
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", role)
		c.Next()
	}

	authMW := middleware.NewAuthMiddleware(nil)
	group := s.router.Group("/admin", authMiddleware, authMW.RequireRoleAtLeast(user.RoleAdmin))
	group.GET("/loyalty/settings", s.handler.GetSettings)
	group.PUT("/loyalty/settings", s.handler.UpdateSettings)
	group.POST("/vouchers", s.handler.CreateVoucher)
	group.GET("/vouchers", s.handler.ListVouchers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func adminHeader(role string) http.Header {
	h := http.Header{}
	h.Set("X-Role", role)
	return h
}

// ================================================================================
// TestRoleGate
// ================================================================================

func (s *AdminHandlerTestSuite) TestRoleGate() {
	s.Run("customer is refused with 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/loyalty/settings", nil, "bearer-token", adminHeader("customer"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("staff is refused with 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/loyalty/settings", nil, "bearer-token", adminHeader("staff"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("anonymous is refused with 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/loyalty/settings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestSettings
// ================================================================================

func (s *AdminHandlerTestSuite) TestGetSettings() {
	s.Run("success: returns the current configuration", func() {
		view := &queries.SettingsView{Enabled: true, PointsPerItem: 1, PointValueIDR: 1000, MinPointsToRedeem: 10, MaxRedemptionPercent: 50, Version: 3}
		s.mockLoyaltyQueries.EXPECT().Settings(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/loyalty/settings", nil, "bearer-token")

		var resp resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(1000), resp.PointValueIDR)
		s.Equal(int64(3), resp.Version)
	})
}

func (s *AdminHandlerTestSuite) TestUpdateSettings() {
	url := "/admin/loyalty/settings"

	s.Run("success: returns the updated configuration", func() {
		view := &queries.SettingsView{Enabled: true, PointsPerItem: 2, PointValueIDR: 500, MinPointsToRedeem: 10, MaxRedemptionPercent: 50, Version: 4}
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		body := map[string]any{"points_per_item": 2, "point_value_idr": 500}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		var resp resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(2), resp.PointsPerItem)
		s.Equal(int64(4), resp.Version)
	})

	s.Run("invalid combination returns 422", func() {
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("point value must be positive"), errs.ErrDomainValidation)).Times(1)

		body := map[string]any{"enabled": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	validation := []struct {
		name string
		body map[string]any
	}{
		{name: "zero point value", body: map[string]any{"point_value_idr": 0}},
		{name: "negative points per item", body: map[string]any{"points_per_item": -1}},
		{name: "percentage above 100", body: map[string]any{"max_redemption_percent": 101}},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}

// ================================================================================
// TestVouchers
// ================================================================================

func (s *AdminHandlerTestSuite) TestCreateVoucher() {
	url := "/admin/vouchers"

	s.Run("success: returns 201 with the new id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).Return(id, nil).Times(1)

		body := builder.NewVoucherBuilder().BuildCreateRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(id.String(), resp["id"])
	})

	s.Run("duplicate code returns 409", func() {
		s.mockCommands.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrVoucherCodeTaken).Times(1)

		body := builder.NewVoucherBuilder().BuildCreateRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Voucher code already exists")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing code", mutate: testutil.Field("code", nil)},
		{name: "unknown discount type", mutate: testutil.Field("discount_type", "bogus")},
		{name: "zero discount value", mutate: testutil.Field("discount_value", 0)},
		{name: "missing window start", mutate: testutil.Field("starts_at", nil)},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := builder.NewVoucherBuilder().BuildCreateRequestMap()
			tc.mutate(body)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}

func (s *AdminHandlerTestSuite) TestListVouchers() {
	s.Run("success: returns active vouchers", func() {
		views := []*queries.VoucherView{builder.NewVoucherBuilder().BuildView()}
		s.mockVoucherQueries.EXPECT().ListActive(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/vouchers", nil, "bearer-token")

		var resp []resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal(views[0].Code, resp[0].Code)
	})
}
