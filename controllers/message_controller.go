package controllers

import (
	"errors"
	"net/http"

	"affiliate-hub/models"
	"affiliate-hub/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MessageController struct {
	messages *repositories.MessageRepository
	logger   *zap.Logger
}

func NewMessageController(messages *repositories.MessageRepository, logger *zap.Logger) *MessageController {
	return &MessageController{messages: messages, logger: logger}
}

// @Summary Submit a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 201 {object} models.Response
// @Router /api/contact [post]
func (ctrl *MessageController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Name, email and message are required")
		return
	}

	// A filled honeypot field means a bot. Pretend success and store nothing.
	if req.FaxNumber != "" {
		ctrl.logger.Info("contact honeypot tripped", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusCreated, models.Response{
			Success: true,
			Message: "Message sent, we will get back to you soon",
		})
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := ctrl.messages.Create(c.Request.Context(), &message); err != nil {
		internalError(c, "Could not send message")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Message sent, we will get back to you soon",
	})
}

// @Summary List contact messages
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/messages [get]
func (ctrl *MessageController) List(c *gin.Context) {
	messages, err := ctrl.messages.GetAll(c.Request.Context())
	if err != nil {
		internalError(c, "Could not load messages")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Messages retrieved",
		Data:    messages,
	})
}

// @Summary Get a contact message
// @Description Reading a message marks it as read
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id} [get]
func (ctrl *MessageController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	message, err := ctrl.messages.GetByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Message not found")
		return
	}
	if err != nil {
		internalError(c, "Could not load message")
		return
	}

	if !message.IsRead {
		if err := ctrl.messages.MarkRead(c.Request.Context(), id); err == nil {
			message.IsRead = true
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Message retrieved",
		Data:    message,
	})
}

// @Summary Update a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Param request body models.MessageUpdateRequest true "Review fields"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id} [put]
func (ctrl *MessageController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.MessageUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid message data")
		return
	}

	err := ctrl.messages.Update(c.Request.Context(), id, req)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Message not found")
		return
	}
	if err != nil {
		internalError(c, "Could not update message")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Message updated",
	})
}

// @Summary Toggle message read flag
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id}/toggle-read [post]
func (ctrl *MessageController) ToggleRead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	read, err := ctrl.messages.ToggleRead(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Message not found")
		return
	}
	if err != nil {
		internalError(c, "Could not update message")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Message updated",
		Data:    gin.H{"is_read": read},
	})
}

// @Summary Toggle message archive flag
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id}/toggle-archive [post]
func (ctrl *MessageController) ToggleArchive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	archived, err := ctrl.messages.ToggleArchive(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Message not found")
		return
	}
	if err != nil {
		internalError(c, "Could not update message")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Message updated",
		Data:    gin.H{"is_archived": archived},
	})
}

// @Summary React to a contact message
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Param action path string true "like or dislike"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id}/{action} [post]
func (ctrl *MessageController) React(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	action := c.Param("action")
	if action != "like" && action != "dislike" {
		badRequest(c, "Invalid reaction")
		return
	}

	err := ctrl.messages.AddReaction(c.Request.Context(), id, action == "like")
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Message not found")
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

// @Summary Delete a contact message
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message id"
// @Success 200 {object} models.Response
// @Router /admin/messages/{id} [delete]
func (ctrl *MessageController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := ctrl.messages.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		notFound(c, "Message not found")
		return
	}
	if err != nil {
		internalError(c, "Could not delete message")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Message deleted",
	})
}
