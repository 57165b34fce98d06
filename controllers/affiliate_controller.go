package controllers

import (
	"errors"
	"net/http"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AffiliateController struct {
	affiliates *repositories.AffiliateRepository
	logger     *zap.Logger
}

func NewAffiliateController(affiliates *repositories.AffiliateRepository, logger *zap.Logger) *AffiliateController {
	return &AffiliateController{affiliates: affiliates, logger: logger}
}

// @Summary Follow a referral link
// @Description Counts the click and redirects to the affiliate's referral URL
// @Tags Affiliates
// @Param id path int true "Affiliate id"
// @Success 302
// @Failure 404 {object} models.ErrorResponse
// @Router /ref/{id} [get]
func (ctrl *AffiliateController) Redirect(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	affiliate, err := ctrl.affiliates.GetByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Referral not found")
		return
	}
	if err != nil {
		internalError(c, "Could not resolve referral")
		return
	}
	if !affiliate.IsActive {
		notFound(c, "Referral not found")
		return
	}

	// A failed click count must not block the redirect.
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if err := ctrl.affiliates.RecordClick(c.Request.Context(), id, day); err != nil {
		ctrl.logger.Warn("could not record referral click",
			zap.Int("affiliate_id", id), zap.Error(err))
	}

	c.Redirect(http.StatusFound, affiliate.ReferralLink)
}

// @Summary List affiliates
// @Tags Affiliates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/affiliates [get]
func (ctrl *AffiliateController) List(c *gin.Context) {
	affiliates, err := ctrl.affiliates.GetAll(c.Request.Context())
	if err != nil {
		internalError(c, "Could not load affiliates")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Affiliates retrieved",
		Data:    affiliates,
	})
}

// @Summary Create affiliate
// @Tags Affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AffiliateRequest true "Affiliate"
// @Success 201 {object} models.Response
// @Router /admin/affiliates [post]
func (ctrl *AffiliateController) Create(c *gin.Context) {
	var req models.AffiliateRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid affiliate data: "+err.Error())
		return
	}

	affiliate := models.Affiliate{
		Name:         req.Name,
		Email:        req.Email,
		ReferralLink: req.ReferralLink,
		IsActive:     req.IsActive,
	}
	err := ctrl.affiliates.Create(c.Request.Context(), &affiliate)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "An affiliate with this email already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create affiliate")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Affiliate created",
		Data:    affiliate,
	})
}

// @Summary Update affiliate
// @Tags Affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Affiliate id"
// @Param request body models.AffiliateRequest true "Affiliate"
// @Success 200 {object} models.Response
// @Router /admin/affiliates/{id} [put]
func (ctrl *AffiliateController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AffiliateRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid affiliate data: "+err.Error())
		return
	}

	affiliate := models.Affiliate{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		ReferralLink: req.ReferralLink,
		IsActive:     req.IsActive,
	}
	err := ctrl.affiliates.Update(c.Request.Context(), &affiliate)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Affiliate not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "An affiliate with this email already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update affiliate")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Affiliate updated",
		Data:    affiliate,
	})
}

// @Summary Delete affiliate
// @Tags Affiliates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Affiliate id"
// @Success 200 {object} models.Response
// @Router /admin/affiliates/{id} [delete]
func (ctrl *AffiliateController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.affiliates.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Affiliate not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete affiliate")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Affiliate deleted",
	})
}

// @Summary List affiliate statistics
// @Tags Affiliates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/affiliate-stats [get]
func (ctrl *AffiliateController) ListStats(c *gin.Context) {
	stats, err := ctrl.affiliates.GetAllStats(c.Request.Context())
	if err != nil {
		internalError(c, "Could not load statistics")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Statistics retrieved",
		Data:    stats,
	})
}

// @Summary Create affiliate statistic
// @Tags Affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AffiliateStatRequest true "Statistic"
// @Success 201 {object} models.Response
// @Router /admin/affiliate-stats [post]
func (ctrl *AffiliateController) CreateStat(c *gin.Context) {
	var req models.AffiliateStatRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid statistic data: "+err.Error())
		return
	}

	stat, ok := statFromRequest(c, req)
	if !ok {
		return
	}

	err := ctrl.affiliates.CreateStat(c.Request.Context(), &stat)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A statistic for this affiliate and date already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create statistic")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Statistic created",
		Data:    stat,
	})
}

// @Summary Update affiliate statistic
// @Tags Affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Statistic id"
// @Param request body models.AffiliateStatRequest true "Statistic"
// @Success 200 {object} models.Response
// @Router /admin/affiliate-stats/{id} [put]
func (ctrl *AffiliateController) UpdateStat(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AffiliateStatRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid statistic data: "+err.Error())
		return
	}

	stat, ok := statFromRequest(c, req)
	if !ok {
		return
	}
	stat.ID = id

	err := ctrl.affiliates.UpdateStat(c.Request.Context(), &stat)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Statistic not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A statistic for this affiliate and date already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update statistic")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Statistic updated",
		Data:    stat,
	})
}

// @Summary Delete affiliate statistic
// @Tags Affiliates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Statistic id"
// @Success 200 {object} models.Response
// @Router /admin/affiliate-stats/{id} [delete]
func (ctrl *AffiliateController) DeleteStat(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.affiliates.DeleteStat(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Statistic not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete statistic")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Statistic deleted",
	})
}

func statFromRequest(c *gin.Context, req models.AffiliateStatRequest) (models.AffiliateStat, bool) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		badRequest(c, "date must be YYYY-MM-DD")
		return models.AffiliateStat{}, false
	}
	return models.AffiliateStat{
		AffiliateID: req.AffiliateID,
		Date:        date,
		Clicks:      req.Clicks,
		Signups:     req.Signups,
		Sales:       req.Sales,
		Commission:  req.Commission,
		IsPaid:      req.IsPaid,
	}, true
}
