package controllers

import (
	"errors"
	"net/http"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
)

type AdvertisementController struct {
	ads *repositories.AdvertisementRepository
}

func NewAdvertisementController(ads *repositories.AdvertisementRepository) *AdvertisementController {
	return &AdvertisementController{ads: ads}
}

func adFromRequest(req models.AdvertisementRequest) (models.Advertisement, error) {
	ad := models.Advertisement{
		Type:            req.Type,
		Title:           req.Title,
		IsActive:        req.IsActive,
		TextContent:     req.TextContent,
		ButtonText:      req.ButtonText,
		ButtonURL:       req.ButtonURL,
		ImageURL:        req.ImageURL,
		ProductID:       req.ProductID,
		AdsenseClientID: req.AdsenseClientID,
		AdsenseSlotID:   req.AdsenseSlotID,
	}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return ad, errors.New("start_date must be YYYY-MM-DD")
		}
		ad.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return ad, errors.New("end_date must be YYYY-MM-DD")
		}
		ad.EndDate = &end
	}
	if ad.StartDate != nil && ad.EndDate != nil && ad.EndDate.Before(*ad.StartDate) {
		return ad, errors.New("end_date must not be before start_date")
	}
	return ad, nil
}

// @Summary List active advertisements
// @Description Only ads that are switched on and inside their display window
// @Tags Advertisements
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/ads [get]
func (ctrl *AdvertisementController) ListActive(c *gin.Context) {
	ads, err := ctrl.ads.GetActive(c.Request.Context(), time.Now().UTC())
	if err != nil {
		internalError(c, "Could not load advertisements")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Advertisements retrieved",
		Data:    ads,
	})
}

// @Summary List all advertisements
// @Tags Advertisements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/ads [get]
func (ctrl *AdvertisementController) ListAll(c *gin.Context) {
	ads, err := ctrl.ads.GetAll(c.Request.Context())
	if err != nil {
		internalError(c, "Could not load advertisements")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Advertisements retrieved",
		Data:    ads,
	})
}

// @Summary Create advertisement
// @Tags Advertisements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AdvertisementRequest true "Advertisement"
// @Success 201 {object} models.Response
// @Router /admin/ads [post]
func (ctrl *AdvertisementController) Create(c *gin.Context) {
	var req models.AdvertisementRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid advertisement data: "+err.Error())
		return
	}

	ad, err := adFromRequest(req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := ctrl.ads.Create(c.Request.Context(), &ad); err != nil {
		internalError(c, "Could not create advertisement")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Advertisement created",
		Data:    ad,
	})
}

// @Summary Update advertisement
// @Tags Advertisements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement id"
// @Param request body models.AdvertisementRequest true "Advertisement"
// @Success 200 {object} models.Response
// @Router /admin/ads/{id} [put]
func (ctrl *AdvertisementController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AdvertisementRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid advertisement data: "+err.Error())
		return
	}

	ad, err := adFromRequest(req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ad.ID = id

	err = ctrl.ads.Update(c.Request.Context(), &ad)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Advertisement not found")
		return
	}
	if err != nil {
		internalError(c, "Could not update advertisement")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Advertisement updated",
		Data:    ad,
	})
}

// @Summary Delete advertisement
// @Tags Advertisements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement id"
// @Success 200 {object} models.Response
// @Router /admin/ads/{id} [delete]
func (ctrl *AdvertisementController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.ads.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Advertisement not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete advertisement")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Advertisement deleted",
	})
}
