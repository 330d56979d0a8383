package processor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"insights-server/internal/observability"
)

// GetWeekOverWeek compares the current range against the immediately
// preceding range of equal length. Deltas are percentage changes; a metric
// whose previous total is 0 gets a nil delta because no baseline exists.
func (p *Processor) GetWeekOverWeek(ctx context.Context, organizationID uuid.UUID, current DateRange, filters Filters) (WeekOverWeekComparison, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_week_over_week"},
	)

	if err := p.validateRange(current); err != nil {
		return WeekOverWeekComparison{}, err
	}
	previous := PreviousRange(current)

	key := p.cacheKey("wow", organizationID, current, filters)
	var cached WeekOverWeekComparison
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	sc, err := p.resolveScope(ctx, organizationID, filters)
	if err != nil {
		return WeekOverWeekComparison{}, err
	}

	currentTotals, err := p.periodTotals(ctx, organizationID, sc, current)
	if err != nil {
		return WeekOverWeekComparison{}, err
	}
	previousTotals, err := p.periodTotals(ctx, organizationID, sc, previous)
	if err != nil {
		return WeekOverWeekComparison{}, err
	}

	comparison := WeekOverWeekComparison{
		Current:  currentTotals,
		Previous: previousTotals,
		Delta: DeltaPct{
			Spend:   pctChange(currentTotals.Spend, previousTotals.Spend),
			Leads:   pctChange(float64(currentTotals.Leads), float64(previousTotals.Leads)),
			Revenue: pctChange(currentTotals.Revenue, previousTotals.Revenue),
			CPL:     pctChange(currentTotals.CPL, previousTotals.CPL),
			CTR:     pctChange(currentTotals.CTR, previousTotals.CTR),
		},
	}

	p.cacheSet(ctx, key, comparison)
	return comparison, nil
}

func (p *Processor) periodTotals(ctx context.Context, organizationID uuid.UUID, sc scope, r DateRange) (PeriodTotals, error) {
	ad := p.adTotals(ctx, organizationID, sc, r)

	won, err := p.store.ListLeadsWonBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return PeriodTotals{}, fmt.Errorf("failed to load won leads: %w", err)
	}
	var revenue float64
	for _, lead := range won {
		if sc.includesLead(lead) {
			revenue += lead.Value
		}
	}

	return PeriodTotals{
		Spend:       ad.Spend,
		Impressions: ad.Impressions,
		Clicks:      ad.Clicks,
		Leads:       ad.LeadsCount,
		Revenue:     revenue,
		CPL:         ratio(ad.Spend, float64(ad.LeadsCount)),
		CTR:         ratio(float64(ad.Clicks), float64(ad.Impressions)) * 100,
	}, nil
}
