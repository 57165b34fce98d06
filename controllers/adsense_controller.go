package controllers

import (
	"net/http"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
)

type AdsenseController struct {
	adsense *repositories.AdsenseRepository
}

func NewAdsenseController(adsense *repositories.AdsenseRepository) *AdsenseController {
	return &AdsenseController{adsense: adsense}
}

// @Summary Get AdSense configuration
// @Tags AdSense
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/adsense [get]
func (ctrl *AdsenseController) Get(c *gin.Context) {
	cfg, err := ctrl.adsense.GetOrCreate(c.Request.Context())
	if err != nil {
		internalError(c, "Could not load AdSense configuration")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "AdSense configuration retrieved",
		Data:    cfg,
	})
}

// @Summary Update AdSense configuration
// @Tags AdSense
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AdsenseConfigRequest true "Configuration"
// @Success 200 {object} models.Response
// @Router /admin/adsense [put]
func (ctrl *AdsenseController) Update(c *gin.Context) {
	var req models.AdsenseConfigRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Client id is required")
		return
	}

	status := req.Status
	if status == "" {
		status = "inactive"
	}

	cfg := models.AdsenseConfig{
		ClientID:    req.ClientID,
		SlotHeader:  req.SlotHeader,
		SlotSidebar: req.SlotSidebar,
		SlotContent: req.SlotContent,
		Status:      status,
	}
	if err := ctrl.adsense.Save(c.Request.Context(), &cfg); err != nil {
		internalError(c, "Could not save AdSense configuration")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "AdSense configuration saved",
		Data:    cfg,
	})
}
