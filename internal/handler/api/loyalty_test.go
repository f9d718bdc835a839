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
	queriesmock "warung-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLoyaltyQueries
	handler     *api.LoyaltyHandler
	userID      uuid.UUID
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLoyaltyQueries(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockQueries)
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

	s.router.GET("/loyalty/me", authMiddleware, s.handler.Profile)
	s.router.GET("/loyalty/tiers", s.handler.Tiers)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func (s *LoyaltyHandlerTestSuite) TestProfile() {
	s.Run("success: returns the caller's placement", func() {
		gap := int64(1250)
		view := &queries.LoyaltyProfileView{
			UserID:           s.userID,
			Points:           750,
			TotalSpentIDR:    300_000,
			Tier:             &queries.TierView{ID: uuid.New(), Level: 2, Name: "Silver", MinPoints: 500},
			NextTier:         &queries.TierView{ID: uuid.New(), Level: 3, Name: "Gold", MinPoints: 2000},
			PointsToNextTier: &gap,
		}
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loyalty/me", nil, "bearer-token")

		var resp resdto.LoyaltyProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(750), resp.Points)
		s.Require().NotNil(resp.Tier)
		s.Equal("Silver", resp.Tier.Name)
		s.Require().NotNil(resp.PointsToNextTier)
		s.Equal(int64(1250), *resp.PointsToNextTier)
	})

	s.Run("missing account returns 404", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.userID).
			Return(nil, queries.ErrLoyaltyAccountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loyalty/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Loyalty account not found")
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loyalty/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *LoyaltyHandlerTestSuite) TestTiers() {
	s.Run("public endpoint lists the ladder", func() {
		views := []*queries.TierView{
			{ID: uuid.New(), Level: 1, Name: "Bronze", MinPoints: 0},
			{ID: uuid.New(), Level: 2, Name: "Silver", MinPoints: 500},
		}
		s.mockQueries.EXPECT().Tiers(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loyalty/tiers", nil, "")

		var resp []resdto.TierResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal("Bronze", resp[0].Name)
	})
}
