package controllers

import (
	"errors"
	"net/http"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TestimonialController struct {
	testimonials *repositories.TestimonialRepository
	logger       *zap.Logger
}

func NewTestimonialController(testimonials *repositories.TestimonialRepository, logger *zap.Logger) *TestimonialController {
	return &TestimonialController{testimonials: testimonials, logger: logger}
}

// @Summary List visible testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/testimonials [get]
func (ctrl *TestimonialController) ListVisible(c *gin.Context) {
	testimonials, err := ctrl.testimonials.GetAll(c.Request.Context(), true)
	if err != nil {
		internalError(c, "Could not load testimonials")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Testimonials retrieved",
		Data:    testimonials,
	})
}

// @Summary Submit a testimonial
// @Description Visitor submissions start hidden until an admin approves them
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param request body models.PublicTestimonialRequest true "Testimonial"
// @Success 201 {object} models.Response
// @Router /api/testimonials [post]
func (ctrl *TestimonialController) Submit(c *gin.Context) {
	var req models.PublicTestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Author and content are required")
		return
	}

	// A filled honeypot field means a bot. Pretend success and store nothing.
	if req.FaxNumber != "" {
		ctrl.logger.Info("testimonial honeypot tripped", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusCreated, models.Response{
			Success: true,
			Message: "Thank you for your feedback",
		})
		return
	}

	testimonial := models.Testimonial{
		Author:    req.Author,
		Content:   req.Content,
		IsVisible: false,
	}
	if err := ctrl.testimonials.Create(c.Request.Context(), &testimonial); err != nil {
		internalError(c, "Could not save testimonial")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Thank you for your feedback",
	})
}

// @Summary React to a testimonial
// @Tags Testimonials
// @Produce json
// @Param id path int true "Testimonial id"
// @Param action path string true "like or dislike"
// @Success 200 {object} models.Response
// @Router /api/testimonials/{id}/{action} [post]
func (ctrl *TestimonialController) React(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	action := c.Param("action")
	if action != "like" && action != "dislike" {
		badRequest(c, "Invalid reaction")
		return
	}

	err := ctrl.testimonials.AddReaction(c.Request.Context(), id, action == "like")
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		internalError(c, "Could not record reaction")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reaction recorded",
	})
}

// @Summary List all testimonials
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/testimonials [get]
func (ctrl *TestimonialController) ListAll(c *gin.Context) {
	testimonials, err := ctrl.testimonials.GetAll(c.Request.Context(), false)
	if err != nil {
		internalError(c, "Could not load testimonials")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Testimonials retrieved",
		Data:    testimonials,
	})
}

// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TestimonialRequest true "Testimonial"
// @Success 201 {object} models.Response
// @Router /admin/testimonials [post]
func (ctrl *TestimonialController) Create(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Author and content are required")
		return
	}

	testimonial := models.Testimonial{
		Author:    req.Author,
		Content:   req.Content,
		IsVisible: req.IsVisible,
	}
	if err := ctrl.testimonials.Create(c.Request.Context(), &testimonial); err != nil {
		internalError(c, "Could not create testimonial")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Testimonial created",
		Data:    testimonial,
	})
}

// @Summary Update testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial id"
// @Param request body models.TestimonialRequest true "Testimonial"
// @Success 200 {object} models.Response
// @Router /admin/testimonials/{id} [put]
func (ctrl *TestimonialController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.TestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Author and content are required")
		return
	}

	testimonial := models.Testimonial{
		ID:        id,
		Author:    req.Author,
		Content:   req.Content,
		IsVisible: req.IsVisible,
	}
	err := ctrl.testimonials.Update(c.Request.Context(), &testimonial)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		internalError(c, "Could not update testimonial")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Testimonial updated",
		Data:    testimonial,
	})
}

// @Summary Toggle testimonial visibility
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial id"
// @Success 200 {object} models.Response
// @Router /admin/testimonials/{id}/toggle [post]
func (ctrl *TestimonialController) ToggleVisibility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	visible, err := ctrl.testimonials.ToggleVisibility(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		internalError(c, "Could not toggle visibility")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Visibility updated",
		Data:    gin.H{"is_visible": visible},
	})
}

// @Summary Delete testimonial
// @Tags Testimonials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial id"
// @Success 200 {object} models.Response
// @Router /admin/testimonials/{id} [delete]
func (ctrl *TestimonialController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.testimonials.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Testimonial not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete testimonial")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Testimonial deleted",
	})
}
