package controllers

import (
	"errors"
	"net/http"
	"time"

	"affiliate-hub/models"
	"affiliate-hub/repositories"
	"affiliate-hub/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const syncTimeFormat = "2006-01-02 15:04:05"

type SyncController struct {
	sync      *services.SyncService
	syncState *repositories.SyncRepository
	logger    *zap.Logger
}

func NewSyncController(sync *services.SyncService, syncState *repositories.SyncRepository, logger *zap.Logger) *SyncController {
	return &SyncController{sync: sync, syncState: syncState, logger: logger}
}

// @Summary Get sync status
// @Description Last successful sync time, record count and source URL
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/api-products [get]
func (ctrl *SyncController) Status(c *gin.Context) {
	state, err := ctrl.syncState.GetOrCreate(c.Request.Context())
	if err != nil {
		internalError(c, "Could not load sync status")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sync status retrieved",
		Data:    state,
	})
}

// @Summary Run a product sync
// @Description Pulls the product feed from the given URL and reconciles the catalog
// @Tags Sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SyncRequest true "Feed source"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /admin/api-products/sync [post]
func (ctrl *SyncController) Run(c *gin.Context) {
	var req models.SyncRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "A valid api_url is required")
		return
	}

	count, err := ctrl.sync.Sync(c.Request.Context(), req.APIURL)
	if err != nil {
		ctrl.logger.Error("product sync failed",
			zap.String("api_url", req.APIURL), zap.Error(err))
		status, message := syncErrorResponse(err)
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: message,
		})
		return
	}

	state := models.SyncState{
		LastSyncTime:  time.Now().UTC().Format(syncTimeFormat),
		LastSyncCount: count,
		LastSyncedURL: req.APIURL,
	}
	if err := ctrl.syncState.Save(c.Request.Context(), &state); err != nil {
		// The catalog is already updated; report success but log the gap.
		ctrl.logger.Error("could not persist sync state", zap.Error(err))
	}

	ctrl.logger.Info("product sync completed",
		zap.String("api_url", req.APIURL), zap.Int("count", count))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Synchronization completed",
		Data:    state,
	})
}

// syncErrorResponse maps a sync failure to a status code and a message safe
// to show an admin. Internals stay in the log.
func syncErrorResponse(err error) (int, string) {
	var (
		timeoutErr   *services.TimeoutError
		connErr      *services.ConnectionError
		transportErr *services.TransportError
		formatErr    *services.FormatError
		integrityErr *services.IntegrityError
	)
	switch {
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout, "The external API did not answer in time. Try again later."
	case errors.As(err, &connErr):
		return http.StatusBadGateway, "Could not connect to the external API. Check the URL and try again."
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, "The external API answered with an error. Try again later."
	case errors.As(err, &formatErr):
		return http.StatusBadGateway, "The external API returned data in an unexpected format."
	case errors.As(err, &integrityErr):
		return http.StatusInternalServerError, "The catalog update failed and was rolled back. No products were changed."
	default:
		return http.StatusInternalServerError, "Synchronization failed."
	}
}
