package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"insights-server/internal/observability"
	"insights-server/internal/store"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrAccountNotFound  = errors.New("ad account not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUnauthorized     = errors.New("unauthorized")
)

const dateLayout = "2006-01-02"

// Processor implements the unified metrics aggregations on top of the
// store. Every operation is scoped to one organization and one inclusive
// date range; optional filters narrow to an ad account or a campaign.
type Processor struct {
	store  MetricsStore
	cache  ResultCache
	logger *observability.Logger
}

// NewMetricsProcessor creates a new metrics processor. cache may be nil;
// aggregations then always hit the store.
func NewMetricsProcessor(metricsStore MetricsStore, cache ResultCache, logger *observability.Logger) *Processor {
	return &Processor{
		store:  metricsStore,
		cache:  cache,
		logger: logger,
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ratio divides sums, returning 0 when the denominator is 0. Period ratios
// report 0 on empty data; only period-over-period deltas use nil instead.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// pctChange returns the percentage change from previous to current, or nil
// when the previous total is 0 and no meaningful baseline exists.
func pctChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := (current - previous) / previous * 100
	return &change
}

func (p *Processor) validateRange(r DateRange) error {
	if r.Start.IsZero() || r.End.IsZero() || r.End.Before(r.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// scope is a resolved, ownership-checked filter set. campaignIDs limits
// which CRM leads count toward the aggregation; nil means no narrowing.
// Leads are matched client-side because lead attribution is optional and
// the campaign set is small.
type scope struct {
	insight     store.InsightFilters
	campaignIDs map[uuid.UUID]bool
}

func (sc scope) includesLead(lead store.Lead) bool {
	if sc.campaignIDs == nil {
		return true
	}
	return lead.CampaignID != nil && sc.campaignIDs[*lead.CampaignID]
}

// resolveScope validates that the filtered account or campaign exists and
// belongs to the organization, then derives the campaign-ID set used to
// narrow CRM leads. CampaignID wins when both filters are set.
func (p *Processor) resolveScope(ctx context.Context, organizationID uuid.UUID, filters Filters) (scope, error) {
	if filters.CampaignID != nil {
		campaign, err := p.store.GetAdCampaignByID(ctx, *filters.CampaignID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return scope{}, ErrCampaignNotFound
			}
			return scope{}, fmt.Errorf("failed to resolve campaign filter: %w", err)
		}
		if campaign.OrganizationID != organizationID {
			return scope{}, ErrUnauthorized
		}
		return scope{
			insight:     store.InsightFilters{CampaignID: filters.CampaignID},
			campaignIDs: map[uuid.UUID]bool{campaign.ID: true},
		}, nil
	}

	if filters.AccountID != nil {
		account, err := p.store.GetAdAccountByID(ctx, *filters.AccountID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return scope{}, ErrAccountNotFound
			}
			return scope{}, fmt.Errorf("failed to resolve account filter: %w", err)
		}
		if account.OrganizationID != organizationID {
			return scope{}, ErrUnauthorized
		}
		campaigns, err := p.store.ListAdCampaignsByOrganization(ctx, organizationID, filters.AccountID)
		if err != nil {
			return scope{}, fmt.Errorf("failed to resolve account campaigns: %w", err)
		}
		campaignIDs := make(map[uuid.UUID]bool, len(campaigns))
		for _, campaign := range campaigns {
			campaignIDs[campaign.ID] = true
		}
		return scope{
			insight:     store.InsightFilters{AccountID: filters.AccountID},
			campaignIDs: campaignIDs,
		}, nil
	}

	return scope{}, nil
}

// adTotals sums advertising metrics over the range, preferring the
// precomputed aggregation and falling back to client-side summation of the
// raw daily rows. Advertising data being unavailable degrades to zero
// totals rather than failing the whole aggregation.
func (p *Processor) adTotals(ctx context.Context, organizationID uuid.UUID, sc scope, r DateRange) store.InsightTotals {
	totals, err := p.store.GetInsightTotalsFast(ctx, organizationID, sc.insight, r.Start, r.End)
	if err == nil && totals.RowCount > 0 {
		return totals
	}
	if err != nil {
		p.logger.Warn(ctx, "precomputed insight totals unavailable, falling back to raw rows")
	}

	insights, err := p.store.ListDailyInsights(ctx, organizationID, sc.insight, r.Start, r.End)
	if err != nil {
		p.logger.Error(ctx, "failed to sum raw daily insights, reporting zero ad totals", err)
		return store.InsightTotals{}
	}
	return sumInsights(insights)
}

func sumInsights(insights []store.DailyInsight) store.InsightTotals {
	var totals store.InsightTotals
	for _, row := range insights {
		totals.Spend += row.Spend
		totals.Impressions += row.Impressions
		totals.Clicks += row.Clicks
		totals.LeadsCount += row.LeadsCount
		totals.RowCount++
	}
	return totals
}

func uuidOrAll(id *uuid.UUID) string {
	if id == nil {
		return "all"
	}
	return id.String()
}

func (p *Processor) cacheKey(operation string, organizationID uuid.UUID, r DateRange, filters Filters) string {
	return fmt.Sprintf("metrics:%s:%s:%s:%s:%s:%s",
		operation, organizationID,
		r.Start.Format(dateLayout), r.End.Format(dateLayout),
		uuidOrAll(filters.AccountID), uuidOrAll(filters.CampaignID))
}

func (p *Processor) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if p.cache == nil {
		return false
	}
	return p.cache.Get(ctx, key, dest)
}

func (p *Processor) cacheSet(ctx context.Context, key string, value interface{}) {
	if p.cache == nil {
		return
	}
	p.cache.Set(ctx, key, value)
}
