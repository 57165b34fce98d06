package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/repositories"
	"affiliate-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const productCacheTTL = 5 * time.Minute

type ProductController struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
	cache      *redis.Client
}

// NewProductController takes an optional cache client; nil disables caching.
func NewProductController(products *repositories.ProductRepository, categories *repositories.CategoryRepository, cache *redis.Client) *ProductController {
	return &ProductController{products: products, categories: categories, cache: cache}
}

func productCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func (ctrl *ProductController) invalidateCache() {
	if ctrl.cache == nil {
		return
	}
	ctx := context.Background()
	iter := ctrl.cache.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		ctrl.cache.Del(ctx, iter.Val())
	}
}

// @Summary List products
// @Description Paginated product list, newest first
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginationResponse
// @Router /api/products [get]
func (ctrl *ProductController) List(c *gin.Context) {
	page, limit := pageParams(c)
	ctx := c.Request.Context()

	cacheKey := productCacheKey(page, limit)
	if ctrl.cache != nil {
		if cached, err := ctrl.cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, total, err := ctrl.products.GetAll(ctx, page, limit)
	if err != nil {
		internalError(c, "Could not load products")
		return
	}

	response := paginated("Products retrieved", products, page, limit, total)
	if ctrl.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			ctrl.cache.Set(ctx, cacheKey, payload, productCacheTTL)
		}
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List products in a subcategory
// @Tags Products
// @Produce json
// @Param slug path string true "Subcategory slug"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginationResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/subcategories/{slug}/products [get]
func (ctrl *ProductController) ListBySubcategory(c *gin.Context) {
	sub, err := ctrl.categories.GetSubcategoryBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Subcategory not found")
		return
	}
	if err != nil {
		internalError(c, "Could not load products")
		return
	}
	page, limit := pageParams(c)

	products, total, err := ctrl.products.GetBySubcategory(c.Request.Context(), sub.ID, page, limit)
	if err != nil {
		internalError(c, "Could not load products")
		return
	}
	c.JSON(http.StatusOK, paginated("Products retrieved", products, page, limit, total))
}

// @Summary Search products
// @Tags Products
// @Produce json
// @Param q query string true "Search term"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginationResponse
// @Router /api/products/search [get]
func (ctrl *ProductController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		badRequest(c, "Search term is required")
		return
	}
	page, limit := pageParams(c)

	products, total, err := ctrl.products.Search(c.Request.Context(), query, page, limit)
	if err != nil {
		internalError(c, "Search failed")
		return
	}
	c.JSON(http.StatusOK, paginated("Search results", products, page, limit, total))
}

// @Summary Get product by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{slug} [get]
func (ctrl *ProductController) GetBySlug(c *gin.Context) {
	product, err := ctrl.products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Product not found")
		return
	}
	if err != nil {
		internalError(c, "Could not load product")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}

// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid product data: "+err.Error())
		return
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          utils.Slugify(req.Name),
		Price:         req.Price,
		Description:   req.Description,
		Image:         req.Image,
		Link:          req.Link,
		SubcategoryID: req.SubcategoryID,
	}
	if req.ExternalID != "" {
		product.ExternalID = &req.ExternalID
	}

	err := ctrl.products.Create(c.Request.Context(), &product)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A product with this name or external id already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not create product")
		return
	}

	ctrl.invalidateCache()
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created",
		Data:    product,
	})
}

// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Param request body models.ProductRequest true "Product"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid product data: "+err.Error())
		return
	}

	product := models.Product{
		ID:            id,
		Name:          req.Name,
		Slug:          utils.Slugify(req.Name),
		Price:         req.Price,
		Description:   req.Description,
		Image:         req.Image,
		Link:          req.Link,
		SubcategoryID: req.SubcategoryID,
	}
	if req.ExternalID != "" {
		product.ExternalID = &req.ExternalID
	}

	err := ctrl.products.Update(c.Request.Context(), &product)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Product not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "A product with this name or external id already exists",
		})
		return
	}
	if err != nil {
		internalError(c, "Could not update product")
		return
	}

	ctrl.invalidateCache()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated",
		Data:    product,
	})
}

// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.products.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Product not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete product")
		return
	}

	ctrl.invalidateCache()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted",
	})
}
