package processor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"insights-server/internal/observability"
)

// GetDailyBreakdown computes the per-day time series over the range. The
// series always contains exactly one entry per calendar day, zero-filled
// where no data exists, so chart consumers never interpolate over gaps.
func (p *Processor) GetDailyBreakdown(ctx context.Context, organizationID uuid.UUID, r DateRange, filters Filters) ([]DailyMetric, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_daily_breakdown"},
	)

	if err := p.validateRange(r); err != nil {
		return nil, err
	}

	key := p.cacheKey("daily", organizationID, r, filters)
	var cached []DailyMetric
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	sc, err := p.resolveScope(ctx, organizationID, filters)
	if err != nil {
		return nil, err
	}

	series := make([]DailyMetric, 0, r.Days())
	index := make(map[string]int, r.Days())
	for day := r.Start; !day.After(r.End); day = day.AddDate(0, 0, 1) {
		index[day.Format(dateLayout)] = len(series)
		series = append(series, DailyMetric{Date: day})
	}

	insights, err := p.store.ListDailyInsights(ctx, organizationID, sc.insight, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily insights: %w", err)
	}
	for _, row := range insights {
		i, ok := index[truncateDay(row.Date).Format(dateLayout)]
		if !ok {
			continue
		}
		series[i].Spend += row.Spend
		series[i].Impressions += row.Impressions
		series[i].Clicks += row.Clicks
		series[i].AdLeads += row.LeadsCount
	}

	created, err := p.store.ListLeadsCreatedBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load created leads: %w", err)
	}
	for _, lead := range created {
		if !sc.includesLead(lead) {
			continue
		}
		if i, ok := index[truncateDay(lead.CreatedAt.UTC()).Format(dateLayout)]; ok {
			series[i].CRMLeads++
		}
	}

	won, err := p.store.ListLeadsWonBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load won leads: %w", err)
	}
	for _, lead := range won {
		if !sc.includesLead(lead) || lead.ClosedWonAt == nil {
			continue
		}
		if i, ok := index[truncateDay(lead.ClosedWonAt.UTC()).Format(dateLayout)]; ok {
			series[i].WonCount++
			series[i].Revenue += lead.Value
		}
	}

	for i := range series {
		series[i].CPL = ratio(series[i].Spend, float64(series[i].AdLeads))
		series[i].CPC = ratio(series[i].Spend, float64(series[i].Clicks))
		series[i].CTR = ratio(float64(series[i].Clicks), float64(series[i].Impressions)) * 100
	}

	p.cacheSet(ctx, key, series)
	return series, nil
}
