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

// feedbackHandler handles HTTP requests for feedback on model messages.
type feedbackHandler struct {
	feedbackService portssvc.FeedbackSvcFacade
}

func newFeedbackHandler(feedback portssvc.FeedbackSvcFacade) *feedbackHandler {
	return &feedbackHandler{feedbackService: feedback}
}

// submitFeedback godoc
// @Summary Submit feedback on a reply
// @Description Records a positive or negative verdict on a model message. A repeat submission replaces the earlier verdict.
// @Tags feedback
// @Accept  json
// @Produce  json
// @Param   feedback body dto.SubmitFeedbackRequest true "Verdict"
// @Success 200 {object} map[string]string "Returns the feedback ID"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 500 {object} map[string]string "Failed to record feedback"
// @Security BearerAuth
// @Router /feedback [post]
func (h *feedbackHandler) submitFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fb, err := h.feedbackService.SubmitFeedback(c.Request.Context(), owner, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record feedback", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record feedback"})
		}
		return
	}

	logger.Info("Feedback recorded", slog.String("feedback_id", fb.FeedbackID), slog.String("rating", string(fb.Rating)))
	c.JSON(http.StatusOK, gin.H{"feedbackID": fb.FeedbackID})
}

// feedbackStats godoc
// @Summary Feedback statistics
// @Description Aggregates the user's verdicts into counts and a positive percentage.
// @Tags feedback
// @Produce  json
// @Success 200 {object} dto.FeedbackStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /feedback/stats [get]
func (h *feedbackHandler) feedbackStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.feedbackService.Stats(c.Request.Context(), owner)
	if err != nil {
		logger.Error("Failed to compute feedback stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// registerFeedbackRoutes registers feedback specific routes on the
// authenticated group.
func registerFeedbackRoutes(group *gin.RouterGroup, feedback portssvc.FeedbackSvcFacade) {
	h := newFeedbackHandler(feedback)

	fb := group.Group("/feedback")
	{
		fb.POST("", h.submitFeedback)
		fb.GET("/stats", h.feedbackStats)
	}
}
