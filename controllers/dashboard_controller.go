package controllers

import (
	"net/http"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	products     *repositories.ProductRepository
	categories   *repositories.CategoryRepository
	articles     *repositories.ArticleRepository
	testimonials *repositories.TestimonialRepository
	messages     *repositories.MessageRepository
	affiliates   *repositories.AffiliateRepository
	syncState    *repositories.SyncRepository
}

func NewDashboardController(
	products *repositories.ProductRepository,
	categories *repositories.CategoryRepository,
	articles *repositories.ArticleRepository,
	testimonials *repositories.TestimonialRepository,
	messages *repositories.MessageRepository,
	affiliates *repositories.AffiliateRepository,
	syncState *repositories.SyncRepository,
) *DashboardController {
	return &DashboardController{
		products:     products,
		categories:   categories,
		articles:     articles,
		testimonials: testimonials,
		messages:     messages,
		affiliates:   affiliates,
		syncState:    syncState,
	}
}

// @Summary Admin dashboard summary
// @Description Entity counts and last sync outcome for the back office landing page
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *DashboardController) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	productCount, err := ctrl.products.Count(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}
	categoryCount, err := ctrl.categories.Count(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}
	articleCount, err := ctrl.articles.Count(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}
	pendingTestimonials, err := ctrl.testimonials.CountPending(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}
	unreadMessages, err := ctrl.messages.CountUnread(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}
	affiliateCount, err := ctrl.affiliates.Count(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}
	syncState, err := ctrl.syncState.GetOrCreate(ctx)
	if err != nil {
		internalError(c, "Could not load dashboard")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dashboard retrieved",
		Data: gin.H{
			"products":             productCount,
			"categories":           categoryCount,
			"articles":             articleCount,
			"pending_testimonials": pendingTestimonials,
			"unread_messages":      unreadMessages,
			"affiliates":           affiliateCount,
			"last_sync":            syncState,
		},
	})
}
