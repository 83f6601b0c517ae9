package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
	"github.com/tulu-g559/talkheal-backend/internal/middleware"
)

// conversationHandler handles HTTP requests for chat-support threads.
type conversationHandler struct {
	convoService portssvc.ConversationSvcFacade
}

// newConversationHandler creates a new conversationHandler.
func newConversationHandler(convo portssvc.ConversationSvcFacade) *conversationHandler {
	return &conversationHandler{convoService: convo}
}

// createConversation godoc
// @Summary Start a conversation
// @Description Starts a chat thread. A non-empty first message is stored and answered immediately.
// @Tags conversations
// @Accept  json
// @Produce  json
// @Param   conversation body dto.CreateConversationRequest true "Optional first message"
// @Success 201 {object} dto.ConversationResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to start conversation"
// @Security BearerAuth
// @Router /conversations [post]
func (h *conversationHandler) createConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	convo, msgs, err := h.convoService.CreateConversation(c.Request.Context(), owner, req)
	if err != nil {
		logger.Error("Failed to create conversation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start conversation"})
		return
	}

	logger.Info("Conversation started", slog.String("conversation_id", convo.ConversationID))
	c.JSON(http.StatusCreated, dto.ToConversationResponse(convo, msgs))
}

// listConversations godoc
// @Summary List conversations
// @Description Returns the user's threads newest first, optionally narrowed by a search term over titles and message content.
// @Tags conversations
// @Produce  json
// @Param   q query string false "Search term"
// @Success 200 {object} dto.ListConversationsResponse
// @Failure 500 {object} map[string]string "Failed to list conversations"
// @Security BearerAuth
// @Router /conversations [get]
func (h *conversationHandler) listConversations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	convos, err := h.convoService.ListConversations(c.Request.Context(), owner, c.Query("q"))
	if err != nil {
		logger.Error("Failed to list conversations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
		return
	}

	resp := dto.ListConversationsResponse{Conversations: make([]dto.ConversationResponse, 0, len(convos)), Total: len(convos)}
	for i := range convos {
		resp.Conversations = append(resp.Conversations, dto.ToConversationResponse(&convos[i], nil))
	}
	c.JSON(http.StatusOK, resp)
}

// getConversation godoc
// @Summary Get a conversation
// @Description Returns the thread and its messages in send order.
// @Tags conversations
// @Produce  json
// @Param   conversationID path string true "Conversation ID"
// @Success 200 {object} dto.ConversationResponse
// @Failure 404 {object} map[string]string "Conversation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve conversation"
// @Security BearerAuth
// @Router /conversations/{conversationID} [get]
func (h *conversationHandler) getConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conversationID := c.Param("conversationID")

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	convo, msgs, err := h.convoService.GetConversation(c.Request.Context(), owner, conversationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		logger.Error("Failed to get conversation", slog.String("error", err.Error()), slog.String("conversation_id", conversationID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve conversation"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationResponse(convo, msgs))
}

// sendMessage godoc
// @Summary Send a message
// @Description Appends the user message and the generated reply, returning both turns.
// @Tags conversations
// @Accept  json
// @Produce  json
// @Param   conversationID path string true "Conversation ID"
// @Param   message body dto.SendMessageRequest true "Message content"
// @Success 200 {object} []dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Conversation not found"
// @Failure 500 {object} map[string]string "Failed to send message"
// @Security BearerAuth
// @Router /conversations/{conversationID}/messages [post]
func (h *conversationHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conversationID := c.Param("conversationID")

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	msgs, err := h.convoService.SendMessage(c.Request.Context(), owner, conversationID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to send message", slog.String("error", err.Error()), slog.String("conversation_id", conversationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}

	out := make([]dto.MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, dto.ToMessageResponse(&msgs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// renameConversation godoc
// @Summary Rename a conversation
// @Tags conversations
// @Accept  json
// @Param   conversationID path string true "Conversation ID"
// @Param   title body dto.RenameConversationRequest true "New title"
// @Success 204 "Renamed"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Conversation not found"
// @Security BearerAuth
// @Router /conversations/{conversationID}/title [patch]
func (h *conversationHandler) renameConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conversationID := c.Param("conversationID")

	var req dto.RenameConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.convoService.RenameConversation(c.Request.Context(), owner, conversationID, req.Title); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		logger.Error("Failed to rename conversation", slog.String("error", err.Error()), slog.String("conversation_id", conversationID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename conversation"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteConversation godoc
// @Summary Delete a conversation
// @Description Removes the thread and its messages. Deleting an already-absent thread still succeeds.
// @Tags conversations
// @Param   conversationID path string true "Conversation ID"
// @Success 204 "Deleted (or already absent)"
// @Failure 500 {object} map[string]string "Failed to delete conversation"
// @Security BearerAuth
// @Router /conversations/{conversationID} [delete]
func (h *conversationHandler) deleteConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conversationID := c.Param("conversationID")

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.convoService.DeleteConversation(c.Request.Context(), owner, conversationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to delete conversation", slog.String("error", err.Error()), slog.String("conversation_id", conversationID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation"})
		return
	}

	c.Status(http.StatusNoContent)
}

// exportConversation godoc
// @Summary Export a conversation
// @Description Downloads the thread as JSON or plain text.
// @Tags conversations
// @Produce  application/octet-stream
// @Param   conversationID path string true "Conversation ID"
// @Param   format query string false "json or txt (default json)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "Conversation not found"
// @Security BearerAuth
// @Router /conversations/{conversationID}/export [get]
func (h *conversationHandler) exportConversation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conversationID := c.Param("conversationID")

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	format := c.DefaultQuery("format", "json")
	data, contentType, err := h.convoService.ExportConversation(c.Request.Context(), owner, conversationID, format)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to export conversation", slog.String("error", err.Error()), slog.String("conversation_id", conversationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export conversation"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="conversation_`+conversationID+`.`+format+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// registerConversationRoutes registers conversation specific routes on the
// authenticated group.
func registerConversationRoutes(group *gin.RouterGroup, convo portssvc.ConversationSvcFacade) {
	h := newConversationHandler(convo)

	conversations := group.Group("/conversations")
	{
		conversations.POST("", h.createConversation)
		conversations.GET("", h.listConversations)
		conversations.GET("/:conversationID", h.getConversation)
		conversations.PATCH("/:conversationID/title", h.renameConversation)
		conversations.DELETE("/:conversationID", h.deleteConversation)
		conversations.POST("/:conversationID/messages", h.sendMessage)
		conversations.GET("/:conversationID/export", h.exportConversation)
	}
}
