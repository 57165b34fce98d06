package controllers

import (
	"errors"
	"net/http"
	"strings"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
)

type SocialController struct {
	social *repositories.SocialRepository
}

func NewSocialController(social *repositories.SocialRepository) *SocialController {
	return &SocialController{social: social}
}

// iconClassFor maps a platform name to its Font Awesome brand class.
func iconClassFor(platform string) string {
	known := map[string]string{
		"facebook":  "fa-facebook",
		"twitter":   "fa-twitter",
		"x":         "fa-x-twitter",
		"instagram": "fa-instagram",
		"youtube":   "fa-youtube",
		"tiktok":    "fa-tiktok",
		"linkedin":  "fa-linkedin",
		"pinterest": "fa-pinterest",
		"telegram":  "fa-telegram",
		"whatsapp":  "fa-whatsapp",
	}
	if class, ok := known[strings.ToLower(platform)]; ok {
		return class
	}
	return "fa-link"
}

// @Summary List visible social media links
// @Tags Social
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/social [get]
func (ctrl *SocialController) ListVisible(c *gin.Context) {
	links, err := ctrl.social.GetAll(c.Request.Context(), true)
	if err != nil {
		internalError(c, "Could not load social links")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Social links retrieved",
		Data:    links,
	})
}

// @Summary List all social media links
// @Tags Social
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/social [get]
func (ctrl *SocialController) ListAll(c *gin.Context) {
	links, err := ctrl.social.GetAll(c.Request.Context(), false)
	if err != nil {
		internalError(c, "Could not load social links")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Social links retrieved",
		Data:    links,
	})
}

// @Summary Create social media link
// @Tags Social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SocialMediaRequest true "Link"
// @Success 201 {object} models.Response
// @Router /admin/social [post]
func (ctrl *SocialController) Create(c *gin.Context) {
	var req models.SocialMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Platform and URL are required")
		return
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	link := models.SocialMediaLink{
		Platform:  req.Platform,
		URL:       req.URL,
		IconClass: iconClassFor(req.Platform),
		IsVisible: visible,
	}
	err := ctrl.social.Create(c.Request.Context(), &link)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A link for this platform already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create social link")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Social link created",
		Data:    link,
	})
}

// @Summary Update social media link
// @Tags Social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link id"
// @Param request body models.SocialMediaRequest true "Link"
// @Success 200 {object} models.Response
// @Router /admin/social/{id} [put]
func (ctrl *SocialController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.SocialMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Platform and URL are required")
		return
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	link := models.SocialMediaLink{
		ID:        id,
		Platform:  req.Platform,
		URL:       req.URL,
		IconClass: iconClassFor(req.Platform),
		IsVisible: visible,
	}
	err := ctrl.social.Update(c.Request.Context(), &link)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Social link not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A link for this platform already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update social link")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Social link updated",
		Data:    link,
	})
}

// @Summary Delete social media link
// @Tags Social
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link id"
// @Success 200 {object} models.Response
// @Router /admin/social/{id} [delete]
func (ctrl *SocialController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.social.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Social link not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete social link")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Social link deleted",
	})
}
