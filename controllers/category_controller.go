package controllers

import (
	"errors"
	"net/http"

	"affiliate-hub/models"
	"affiliate-hub/repositories"
	"affiliate-hub/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController(categories *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

// @Summary List categories with subcategories and product counts
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *CategoryController) List(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := ctrl.categories.GetAllWithSubcategories(ctx)
	if err != nil {
		internalError(c, "Could not load categories")
		return
	}
	counts, err := ctrl.categories.ProductCounts(ctx)
	if err != nil {
		internalError(c, "Could not load categories")
		return
	}

	type subWithCount struct {
		models.Subcategory
		ProductCount int `json:"product_count"`
	}
	type catWithCounts struct {
		models.Category
		Subcategories []subWithCount `json:"subcategories"`
	}

	result := make([]catWithCounts, 0, len(categories))
	for _, cat := range categories {
		subs := make([]subWithCount, 0, len(cat.Subcategories))
		for _, s := range cat.Subcategories {
			subs = append(subs, subWithCount{Subcategory: s, ProductCount: counts[s.ID]})
		}
		result = append(result, catWithCounts{Category: cat.Category, Subcategories: subs})
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    result,
	})
}

// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) Create(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Category name is required")
		return
	}

	category := models.Category{Name: req.Name, Slug: utils.Slugify(req.Name)}
	err := ctrl.categories.Create(c.Request.Context(), &category)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A category with this name already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create category")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created",
		Data:    category,
	})
}

// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [put]
func (ctrl *CategoryController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Category name is required")
		return
	}

	category := models.Category{ID: id, Name: req.Name, Slug: utils.Slugify(req.Name)}
	err := ctrl.categories.Update(c.Request.Context(), &category)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Category not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A category with this name already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update category")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category updated",
		Data:    category,
	})
}

// @Summary Delete category
// @Description Deleting a category removes its subcategories and their products
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.categories.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Category not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete category")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category deleted",
	})
}

// @Summary Create subcategory
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param request body models.CategoryRequest true "Subcategory"
// @Success 201 {object} models.Response
// @Router /admin/categories/{id}/subcategories [post]
func (ctrl *CategoryController) CreateSubcategory(c *gin.Context) {
	categoryID, ok := idParam(c)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Subcategory name is required")
		return
	}

	if _, err := ctrl.categories.GetByID(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			notFound(c, "Category not found")
			return
		}
		internalError(c, "Could not create subcategory")
		return
	}

	sub := models.Subcategory{
		Name:       req.Name,
		Slug:       utils.Slugify(req.Name),
		CategoryID: categoryID,
	}
	err := ctrl.categories.CreateSubcategory(c.Request.Context(), &sub)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A subcategory with this name already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create subcategory")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Subcategory created",
		Data:    sub,
	})
}

// @Summary Update subcategory
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param subId path int true "Subcategory id"
// @Param request body models.CategoryRequest true "Subcategory"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id}/subcategories/{subId} [put]
func (ctrl *CategoryController) UpdateSubcategory(c *gin.Context) {
	categoryID, ok := idParam(c)
	if !ok {
		return
	}
	subID, ok := pathInt(c, "subId")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Subcategory name is required")
		return
	}

	sub := models.Subcategory{
		ID:         subID,
		Name:       req.Name,
		Slug:       utils.Slugify(req.Name),
		CategoryID: categoryID,
	}
	err := ctrl.categories.UpdateSubcategory(c.Request.Context(), &sub)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Subcategory not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A subcategory with this name already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update subcategory")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Subcategory updated",
		Data:    sub,
	})
}

// @Summary Delete subcategory
// @Description Deleting a subcategory removes its products
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param subId path int true "Subcategory id"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id}/subcategories/{subId} [delete]
func (ctrl *CategoryController) DeleteSubcategory(c *gin.Context) {
	categoryID, ok := idParam(c)
	if !ok {
		return
	}
	subID, ok := pathInt(c, "subId")
	if !ok {
		return
	}

	err := ctrl.categories.DeleteSubcategory(c.Request.Context(), categoryID, subID)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Subcategory not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete subcategory")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Subcategory deleted",
	})
}
