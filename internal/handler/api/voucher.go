package api

import (
	"net/http"

	reqdto "warung-loyalty/internal/handler/dto/request"
	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/handler/middleware"
	"warung-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherQueries queries.VoucherQueries
}

func NewVoucherHandler(voucherQueries queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{voucherQueries: voucherQueries}
}

// @Summary Validate voucher
// @Description Check a voucher code against the caller's tier and usage; records nothing
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateVoucherRequest true "Validation request"
// @Success 200 {object} resdto.VoucherCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /vouchers/validate [post]
func (h *VoucherHandler) Validate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.voucherQueries.Check(c.Request.Context(), userID, queries.VoucherCheckParams{
		Code:        req.Code,
		SubtotalIDR: req.SubtotalIDR,
		OrderType:   mustOrderType(req.OrderType),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVoucherCheckView(view))
}
