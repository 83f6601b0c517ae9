package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tulu-g559/talkheal-backend/internal/apperrors"
	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
	"github.com/tulu-g559/talkheal-backend/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries and the analytics
// built on top of them.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	trendService   portssvc.TrendSvcFacade
	exportService  portssvc.ExportSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journal portssvc.JournalSvcFacade, trend portssvc.TrendSvcFacade, export portssvc.ExportSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journal,
		trendService:   trend,
		exportService:  export,
	}
}

// parseEntryFilter converts the bound query params into the domain filter.
// An unknown sentiment label or malformed date fails with ErrValidation.
func parseEntryFilter(params dto.ListEntriesParams) (domain.JournalFilter, error) {
	var filter domain.JournalFilter

	if params.Sentiment != "" && params.Sentiment != "All" {
		s := domain.Sentiment(params.Sentiment)
		if !s.Valid() {
			return filter, fmt.Errorf("unknown sentiment %q: %w", params.Sentiment, apperrors.ErrValidation)
		}
		filter.Sentiment = s
	}

	if params.From != "" {
		from, err := time.Parse(time.DateOnly, params.From)
		if err != nil {
			return filter, fmt.Errorf("invalid 'from' date %q: %w", params.From, apperrors.ErrValidation)
		}
		filter.From = &from
	}

	if params.To != "" {
		to, err := time.Parse(time.DateOnly, params.To)
		if err != nil {
			return filter, fmt.Errorf("invalid 'to' date %q: %w", params.To, apperrors.ErrValidation)
		}
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fmt.Errorf("'to' date precedes 'from' date: %w", apperrors.ErrValidation)
	}

	filter.Tags = domain.SplitTags(params.Tags)
	filter.Search = params.Search

	return filter, nil
}

// bindEntryFilter binds and parses the query params, writing the error
// response itself. The bool reports whether the caller may proceed.
func bindEntryFilter(c *gin.Context) (domain.JournalFilter, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind entry query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return domain.JournalFilter{}, false
	}

	filter, err := parseEntryFilter(params)
	if err != nil {
		logger.Warn("Invalid entry filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.JournalFilter{}, false
	}
	return filter, true
}

// createEntry godoc
// @Summary Save a journal entry
// @Description Classifies the text, stamps today's date and persists a new entry for the authenticated user.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry text and optional comma-separated tags"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid request format or blank text"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save entry"
// @Security BearerAuth
// @Router /journal/entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.journalService.SaveEntry(c.Request.Context(), owner, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}

	logger.Info("Journal entry saved", slog.String("entry_id", entry.EntryID), slog.String("sentiment", string(entry.Sentiment)))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns the authenticated user's entries matching every supplied filter, ordered ascending by date.
// @Tags journal
// @Produce  json
// @Param   sentiment query string false "Positive, Neutral or Negative; omit or 'All' for no filter"
// @Param   from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param   tags query string false "Comma-separated tags the entry must all carry"
// @Param   q query string false "Case-insensitive substring over text or tags"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /journal/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindEntryFilter(c)
	if !ok {
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entries, err := h.journalService.QueryEntries(c.Request.Context(), owner, filter)
	if err != nil {
		logger.Error("Failed to query entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get one journal entry
// @Tags journal
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /journal/entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), owner, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to get entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Edit a journal entry
// @Description Replaces text and tags; sentiment is recomputed from the new text.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Replacement text and tags"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid request format or blank text"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /journal/entries/{entryID} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), owner, entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Entry not found for update", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	logger.Info("Journal entry updated", slog.String("entry_id", entryID), slog.String("sentiment", string(entry.Sentiment)))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Removes the entry. Deleting an already-absent entry still succeeds, so retries are safe.
// @Tags journal
// @Param   entryID path string true "Entry ID"
// @Success 204 "Deleted (or already absent)"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /journal/entries/{entryID} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.journalService.DeleteEntry(c.Request.Context(), owner, entryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	c.Status(http.StatusNoContent)
}

// moodTrend godoc
// @Summary Mood trend series
// @Description Returns the time-ordered mood points for the filtered entry set.
// @Tags journal
// @Produce  json
// @Param   sentiment query string false "Positive, Neutral or Negative"
// @Param   from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param   tags query string false "Comma-separated tags"
// @Param   q query string false "Substring search"
// @Success 200 {object} dto.MoodTrendResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 422 {object} map[string]string "No entries match the filter"
// @Failure 500 {object} map[string]string "Failed to compute trend"
// @Security BearerAuth
// @Router /journal/trend [get]
func (h *journalHandler) moodTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindEntryFilter(c)
	if !ok {
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trend, err := h.trendService.MoodTrend(c.Request.Context(), owner, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Not enough journal entries to compute a trend"})
			return
		}
		logger.Error("Failed to compute mood trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trend"})
		return
	}

	c.JSON(http.StatusOK, trend)
}

// moodStats godoc
// @Summary Mood statistics
// @Description Returns per-sentiment counts and the average mood score for the filtered entry set.
// @Tags journal
// @Produce  json
// @Success 200 {object} dto.JournalStatsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 422 {object} map[string]string "No entries match the filter"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /journal/stats [get]
func (h *journalHandler) moodStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindEntryFilter(c)
	if !ok {
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.trendService.MoodStats(c.Request.Context(), owner, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Not enough journal entries to compute statistics"})
			return
		}
		logger.Error("Failed to compute mood stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// exportEntries godoc
// @Summary Export journal entries
// @Description Downloads the filtered entry set as CSV or PDF.
// @Tags journal
// @Produce  application/octet-stream
// @Param   format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter or format"
// @Failure 500 {object} map[string]string "Failed to export entries"
// @Security BearerAuth
// @Router /journal/export [get]
func (h *journalHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := bindEntryFilter(c)
	if !ok {
		return
	}

	owner, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	format := c.DefaultQuery("format", "csv")

	var (
		data        []byte
		contentType string
		filename    string
		err         error
	)
	switch format {
	case "csv":
		data, err = h.exportService.ExportCSV(c.Request.Context(), owner, filter)
		contentType = "text/csv"
		filename = "journal_export.csv"
	case "pdf":
		data, err = h.exportService.ExportPDF(c.Request.Context(), owner, filter)
		contentType = "application/pdf"
		filename = "journal_export.pdf"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format, use csv or pdf"})
		return
	}
	if err != nil {
		logger.Error("Failed to export entries", slog.String("error", err.Error()), slog.String("format", format))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entries"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// randomPrompt godoc
// @Summary Get a journaling prompt
// @Tags journal
// @Produce  json
// @Success 200 {object} dto.PromptResponse
// @Security BearerAuth
// @Router /journal/prompt [get]
func (h *journalHandler) randomPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PromptResponse{Prompt: h.journalService.RandomPrompt()})
}

// registerJournalRoutes registers journal specific routes on the
// authenticated group.
func registerJournalRoutes(group *gin.RouterGroup, journal portssvc.JournalSvcFacade, trend portssvc.TrendSvcFacade, export portssvc.ExportSvcFacade) {
	h := newJournalHandler(journal, trend, export)

	j := group.Group("/journal")
	{
		j.POST("/entries", h.createEntry)
		j.GET("/entries", h.listEntries)
		j.GET("/entries/:entryID", h.getEntry)
		j.PUT("/entries/:entryID", h.updateEntry)
		j.DELETE("/entries/:entryID", h.deleteEntry)
		j.GET("/trend", h.moodTrend)
		j.GET("/stats", h.moodStats)
		j.GET("/export", h.exportEntries)
		j.GET("/prompt", h.randomPrompt)
	}
}
