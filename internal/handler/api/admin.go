package api

import (
	"errors"
	"net/http"

	reqdto "warung-loyalty/internal/handler/dto/request"
	resdto "warung-loyalty/internal/handler/dto/response"
	"warung-loyalty/internal/usecase/commands"
	"warung-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands  commands.AdminCommands
	loyaltyQueries queries.LoyaltyQueries
	voucherQueries queries.VoucherQueries
}

func NewAdminHandler(
	adminCommands commands.AdminCommands,
	loyaltyQueries queries.LoyaltyQueries,
	voucherQueries queries.VoucherQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands:  adminCommands,
		loyaltyQueries: loyaltyQueries,
		voucherQueries: voucherQueries,
	}
}

// @Summary Get loyalty settings
// @Description Current program configuration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/loyalty/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	view, err := h.loyaltyQueries.Settings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Update loyalty settings
// @Description Partial update of the program configuration; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/loyalty/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.adminCommands.UpdateSettings(c.Request.Context(), commands.UpdateSettingsParams{
		Enabled:              req.Enabled,
		PointsPerItem:        req.PointsPerItem,
		PointValueIDR:        req.PointValueIDR,
		MinPointsToRedeem:    req.MinPointsToRedeem,
		MaxPointsPerTxn:      req.MaxPointsPerTxn,
		ClearMaxPointsPerTxn: req.ClearMaxPointsPerTxn,
		MaxRedemptionPercent: req.MaxRedemptionPercent,
	})
	if err != nil {
		switch {
		case isDomainValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid settings values",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Create voucher
// @Description Issue a new voucher code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherRequest true "Voucher definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/vouchers [post]
func (h *AdminHandler) CreateVoucher(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.adminCommands.CreateVoucher(c.Request.Context(), commands.CreateVoucherParams{
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MaxDiscountIDR: req.MaxDiscountIDR,
		PointCost:      req.PointCost,
		Active:         req.Active,
		Redeemable:     req.Redeemable,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		TargetTierID:   req.TargetTierID,
		OrderTypes:     req.OrderTypes,
		MinSubtotalIDR: req.MinSubtotalIDR,
		PerUserLimit:   req.PerUserLimit,
		GlobalLimit:    req.GlobalLimit,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVoucherCodeTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Voucher code already exists",
			})
		case isDomainValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid voucher definition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List active vouchers
// @Description Vouchers currently inside their validity window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VoucherResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/vouchers [get]
func (h *AdminHandler) ListVouchers(c *gin.Context) {
	views, err := h.voucherQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.VoucherResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromVoucherView(v)
	}
	c.JSON(http.StatusOK, responses)
}
