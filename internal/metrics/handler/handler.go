package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"insights-server/internal/metrics/processor"
	"insights-server/internal/observability"
)

const dateLayout = "2006-01-02"

// defaultRangeDays is the window used when the request carries no dates.
const defaultRangeDays = 30

type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(metricsProcessor *processor.Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: metricsProcessor,
		logger:    logger,
	}
}

// organizationFromRequest resolves the organization of the request. The
// path parameter must match the token's organization; a mismatch reports
// not-found so foreign tenants learn nothing.
func (h *Handler) organizationFromRequest(c *gin.Context) (uuid.UUID, bool) {
	ctx := c.Request.Context()

	tokenOrgValue, exists := c.Get("Organization-ID")
	if !exists {
		h.logger.Error(ctx, "organization ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	tokenOrg, ok := tokenOrgValue.(string)
	if !ok {
		h.logger.Error(ctx, "organization ID in context is not a string", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}

	pathOrg := c.Param("organization_id")
	organizationID, err := uuid.Parse(pathOrg)
	if err != nil {
		h.logger.Error(ctx, "failed to parse organization ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return uuid.Nil, false
	}

	if pathOrg != tokenOrg {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return uuid.Nil, false
	}
	return organizationID, true
}

// parseDateRange reads start_date/end_date (YYYY-MM-DD). Both absent means
// the trailing default window; providing only one is an error.
func parseDateRange(c *gin.Context) (processor.DateRange, error) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" && endStr == "" {
		return processor.LastNDays(defaultRangeDays), nil
	}
	if startStr == "" || endStr == "" {
		return processor.DateRange{}, errors.New("start_date and end_date must be provided together")
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return processor.DateRange{}, errors.New("invalid start_date, use YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return processor.DateRange{}, errors.New("invalid end_date, use YYYY-MM-DD")
	}
	return processor.NewDateRange(start, end), nil
}

func parseFilters(c *gin.Context) (processor.Filters, error) {
	var filters processor.Filters
	if accountStr := c.Query("account_id"); accountStr != "" {
		accountID, err := uuid.Parse(accountStr)
		if err != nil {
			return processor.Filters{}, errors.New("invalid account_id")
		}
		filters.AccountID = &accountID
	}
	if campaignStr := c.Query("campaign_id"); campaignStr != "" {
		campaignID, err := uuid.Parse(campaignStr)
		if err != nil {
			return processor.Filters{}, errors.New("invalid campaign_id")
		}
		filters.CampaignID = &campaignID
	}
	return filters, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), "metrics request failed", err)
	switch {
	case errors.Is(err, processor.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
	case errors.Is(err, processor.ErrAccountNotFound),
		errors.Is(err, processor.ErrCampaignNotFound),
		errors.Is(err, processor.ErrUnauthorized):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// HandleGetTotals serves the blended totals of the range.
func (h *Handler) HandleGetTotals(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.processor.GetTotals(c.Request.Context(), organizationID, r, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// HandleGetDailyBreakdown serves the gap-filled per-day series.
func (h *Handler) HandleGetDailyBreakdown(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.processor.GetDailyBreakdown(c.Request.Context(), organizationID, r, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// HandleGetWeekOverWeek serves the current period against the immediately
// preceding one.
func (h *Handler) HandleGetWeekOverWeek(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comparison, err := h.processor.GetWeekOverWeek(c.Request.Context(), organizationID, r, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// HandleGetFunnelBreakdown serves the pipeline-stage breakdown.
func (h *Handler) HandleGetFunnelBreakdown(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stages, err := h.processor.GetFunnelBreakdown(c.Request.Context(), organizationID, r, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stages)
}

// HandleGetCampaignRanking serves the per-campaign comparison table.
func (h *Handler) HandleGetCampaignRanking(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metric := processor.RankingMetric(c.DefaultQuery("metric", string(processor.RankBySpend)))

	rows, err := h.processor.GetCampaignRanking(c.Request.Context(), organizationID, r, filters.AccountID, metric)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HandleGetSalesPerformance serves won-revenue attribution per assignee.
func (h *Handler) HandleGetSalesPerformance(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reps, err := h.processor.GetSalesPerformance(c.Request.Context(), organizationID, r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reps)
}

// HandleGetActivityBreakdown serves interaction counts by type.
func (h *Handler) HandleGetActivityBreakdown(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, err := h.processor.GetActivityBreakdown(c.Request.Context(), organizationID, r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// HandleGetLossReasons serves the loss-analysis breakdown.
func (h *Handler) HandleGetLossReasons(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reasons, err := h.processor.GetLossReasons(c.Request.Context(), organizationID, r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reasons)
}

// HandleGetFilterOptions serves the accounts and campaigns available for
// narrowing, for the dashboard filter selectors.
func (h *Handler) HandleGetFilterOptions(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options, err := h.processor.GetFilterOptions(c.Request.Context(), organizationID, filters.AccountID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// HandleGetPipelineSnapshot serves the pipeline summary. Without dates the
// snapshot covers the whole lead base instead of a trailing window.
func (h *Handler) HandleGetPipelineSnapshot(c *gin.Context) {
	organizationID, ok := h.organizationFromRequest(c)
	if !ok {
		return
	}

	var r *processor.DateRange
	if c.Query("start_date") != "" || c.Query("end_date") != "" {
		parsed, err := parseDateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		r = &parsed
	}

	snapshot, err := h.processor.GetPipelineSnapshot(c.Request.Context(), organizationID, r)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
