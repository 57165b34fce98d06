package controllers

import (
	"errors"
	"net/http"
	"strings"

	"affiliate-hub/models"
	"affiliate-hub/repositories"
	"affiliate-hub/utils"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	articles *repositories.ArticleRepository
}

func NewArticleController(articles *repositories.ArticleRepository) *ArticleController {
	return &ArticleController{articles: articles}
}

// @Summary List articles
// @Tags Articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param q query string false "Search term"
// @Success 200 {object} models.PaginationResponse
// @Router /api/articles [get]
func (ctrl *ArticleController) List(c *gin.Context) {
	page, limit := pageParams(c)
	query := strings.TrimSpace(c.Query("q"))

	var (
		articles []models.Article
		total    int
		err      error
	)
	if query != "" {
		articles, total, err = ctrl.articles.Search(c.Request.Context(), query, page, limit)
	} else {
		articles, total, err = ctrl.articles.GetAll(c.Request.Context(), page, limit)
	}
	if err != nil {
		internalError(c, "Could not load articles")
		return
	}
	c.JSON(http.StatusOK, paginated("Articles retrieved", articles, page, limit, total))
}

// @Summary Get article by slug
// @Tags Articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/articles/{slug} [get]
func (ctrl *ArticleController) GetBySlug(c *gin.Context) {
	article, err := ctrl.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Article not found")
		return
	}
	if err != nil {
		internalError(c, "Could not load article")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Article retrieved",
		Data:    article,
	})
}

// @Summary Create article
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ArticleRequest true "Article"
// @Success 201 {object} models.Response
// @Router /admin/articles [post]
func (ctrl *ArticleController) Create(c *gin.Context) {
	var req models.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid article data: "+err.Error())
		return
	}

	article := models.Article{
		Title:   req.Title,
		Slug:    utils.Slugify(req.Title),
		Content: req.Content,
		Author:  req.Author,
		Image:   req.Image,
	}
	err := ctrl.articles.Create(c.Request.Context(), &article)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "An article with this title already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create article")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Article created",
		Data:    article,
	})
}

// @Summary Update article
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article id"
// @Param request body models.ArticleRequest true "Article"
// @Success 200 {object} models.Response
// @Router /admin/articles/{id} [put]
func (ctrl *ArticleController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid article data: "+err.Error())
		return
	}

	article := models.Article{
		ID:      id,
		Title:   req.Title,
		Slug:    utils.Slugify(req.Title),
		Content: req.Content,
		Author:  req.Author,
		Image:   req.Image,
	}
	err := ctrl.articles.Update(c.Request.Context(), &article)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Article not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "An article with this title already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update article")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Article updated",
		Data:    article,
	})
}

// @Summary Delete article
// @Tags Articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article id"
// @Success 200 {object} models.Response
// @Router /admin/articles/{id} [delete]
func (ctrl *ArticleController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.articles.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Article not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete article")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Article deleted",
	})
}
