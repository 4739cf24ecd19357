package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shadowme_backend/internal/middleware"
	"shadowme_backend/internal/services"
	"shadowme_backend/internal/services/dto"
)

type MessageHandler struct {
	*BaseHandler
	messageService *services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Participant checks happen in the service, either side of the
	// application may read and write.
	messages := r.Group("/applications/:applicationId/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", h.List)
		messages.POST("", h.Send)
	}
}

func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}

	messages, err := h.messageService.List(c.Request.Context(), userID, applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), userID, applicationID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}
