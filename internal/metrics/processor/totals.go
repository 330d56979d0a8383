package processor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"insights-server/internal/observability"
	"insights-server/internal/store"
)

// GetTotals computes the blended advertising + CRM totals over the range.
// Advertising metrics bucket by insight date, CRM volume by lead creation,
// revenue by close date. Ratios are ratios of sums; a zero denominator
// yields 0.
func (p *Processor) GetTotals(ctx context.Context, organizationID uuid.UUID, r DateRange, filters Filters) (UnifiedTotals, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_totals"},
	)

	if err := p.validateRange(r); err != nil {
		return UnifiedTotals{}, err
	}

	key := p.cacheKey("totals", organizationID, r, filters)
	var cached UnifiedTotals
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	sc, err := p.resolveScope(ctx, organizationID, filters)
	if err != nil {
		return UnifiedTotals{}, err
	}

	ad := p.adTotals(ctx, organizationID, sc, r)

	created, err := p.store.ListLeadsCreatedBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return UnifiedTotals{}, fmt.Errorf("failed to load created leads: %w", err)
	}
	won, err := p.store.ListLeadsWonBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return UnifiedTotals{}, fmt.Errorf("failed to load won leads: %w", err)
	}
	lost, err := p.store.ListLeadsLostBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return UnifiedTotals{}, fmt.Errorf("failed to load lost leads: %w", err)
	}

	totals := UnifiedTotals{
		AdSpend:       ad.Spend,
		AdImpressions: ad.Impressions,
		AdClicks:      ad.Clicks,
		AdLeads:       ad.LeadsCount,
	}

	for _, lead := range created {
		if !sc.includesLead(lead) {
			continue
		}
		totals.CRMLeads++
		switch lead.Status {
		case store.LeadStatusQualifying:
			totals.QualifyingCount++
		case store.LeadStatusProposal:
			totals.ProposalCount++
		case store.LeadStatusNegotiation:
			totals.NegotiationCount++
		}
		if isActiveStatus(lead.Status) {
			totals.PipelineValue += lead.Value
		}
	}
	for _, lead := range won {
		if !sc.includesLead(lead) {
			continue
		}
		totals.WonCount++
		totals.Revenue += lead.Value
	}
	for _, lead := range lost {
		if !sc.includesLead(lead) {
			continue
		}
		totals.LostCount++
	}

	totals.CTR = ratio(float64(totals.AdClicks), float64(totals.AdImpressions)) * 100
	totals.CPC = ratio(totals.AdSpend, float64(totals.AdClicks))
	totals.CPL = ratio(totals.AdSpend, float64(totals.AdLeads))
	totals.RealCPL = ratio(totals.AdSpend, float64(totals.CRMLeads))
	totals.ROAS = ratio(totals.Revenue, totals.AdSpend)
	totals.CloseRate = ratio(float64(totals.WonCount), float64(totals.CRMLeads)) * 100
	totals.AvgDealSize = ratio(totals.Revenue, float64(totals.WonCount))
	totals.HasData = ad.RowCount > 0 || totals.CRMLeads > 0 || totals.WonCount > 0 || totals.LostCount > 0

	p.cacheSet(ctx, key, totals)
	return totals, nil
}

func isActiveStatus(status string) bool {
	for _, active := range store.ActiveLeadStatuses {
		if status == active {
			return true
		}
	}
	return false
}
