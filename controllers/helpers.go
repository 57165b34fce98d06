package controllers

import (
	"math"
	"net/http"
	"strconv"

	"affiliate-hub/models"

	"github.com/gin-gonic/gin"
)

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// idParam parses the :id path segment; on failure it writes the 400 response
// and reports ok=false.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 1 {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return v, true
}

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}

func paginated(message string, data interface{}, page, limit, total int) models.PaginationResponse {
	return models.PaginationResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}
}
