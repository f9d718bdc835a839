package api

import (
	"errors"
	"net/http"

	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/handler/middleware"
	"warung-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyQueries queries.LoyaltyQueries
}

func NewLoyaltyHandler(loyaltyQueries queries.LoyaltyQueries) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyQueries: loyaltyQueries}
}

// @Summary Loyalty profile
// @Description Current balance, lifetime spend, and tier placement for the caller
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LoyaltyProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loyalty/me [get]
func (h *LoyaltyHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.loyaltyQueries.Profile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLoyaltyAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Loyalty account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoyaltyProfileView(view))
}

// @Summary List tiers
// @Description The configured membership tier ladder
// @Tags loyalty
// @Produce json
// @Success 200 {array} resdto.TierResponse
// @Router /loyalty/tiers [get]
func (h *LoyaltyHandler) Tiers(c *gin.Context) {
	views, err := h.loyaltyQueries.Tiers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.TierResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromTierView(v)
	}
	c.JSON(http.StatusOK, responses)
}
