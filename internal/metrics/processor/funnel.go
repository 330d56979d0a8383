package processor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"insights-server/internal/observability"
	"insights-server/internal/store"
)

// GetFunnelBreakdown groups the leads created in the range by pipeline
// stage. Every stage appears in funnel order, zero-count stages included,
// and each lead lands in exactly one stage so counts sum back to the lead
// total. AvgDaysInStage is only computable for the closed stages.
func (p *Processor) GetFunnelBreakdown(ctx context.Context, organizationID uuid.UUID, r DateRange, filters Filters) ([]FunnelStage, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_funnel_breakdown"},
	)

	if err := p.validateRange(r); err != nil {
		return nil, err
	}

	sc, err := p.resolveScope(ctx, organizationID, filters)
	if err != nil {
		return nil, err
	}

	leads, err := p.store.ListLeadsCreatedBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load created leads: %w", err)
	}

	stages := make([]FunnelStage, len(store.FunnelStages))
	index := make(map[string]int, len(store.FunnelStages))
	for i, stage := range store.FunnelStages {
		stages[i] = FunnelStage{Stage: stage}
		index[stage] = i
	}

	closeDays := make(map[string]float64, 2)
	for _, lead := range leads {
		if !sc.includesLead(lead) {
			continue
		}
		i, ok := index[lead.Status]
		if !ok {
			continue
		}
		stages[i].Count++
		stages[i].Value += lead.Value

		switch {
		case lead.Status == store.LeadStatusClosedWon && lead.ClosedWonAt != nil:
			closeDays[lead.Status] += lead.ClosedWonAt.Sub(lead.CreatedAt).Hours() / 24
		case lead.Status == store.LeadStatusClosedLost && lead.ClosedLostAt != nil:
			closeDays[lead.Status] += lead.ClosedLostAt.Sub(lead.CreatedAt).Hours() / 24
		}
	}

	for i := range stages {
		if days, ok := closeDays[stages[i].Stage]; ok {
			stages[i].AvgDaysInStage = ratio(days, float64(stages[i].Count))
		}
	}

	return stages, nil
}

// GetPipelineSnapshot summarizes the CRM pipeline of one organization,
// optionally restricted to leads created inside a range. A nil range covers
// the whole lead base.
func (p *Processor) GetPipelineSnapshot(ctx context.Context, organizationID uuid.UUID, r *DateRange) (PipelineSnapshot, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_pipeline_snapshot"},
	)

	var (
		leads []store.Lead
		err   error
	)
	if r != nil {
		if err := p.validateRange(*r); err != nil {
			return PipelineSnapshot{}, err
		}
		leads, err = p.store.ListLeadsCreatedBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	} else {
		leads, err = p.store.ListLeadsByOrganization(ctx, organizationID)
	}
	if err != nil {
		return PipelineSnapshot{}, fmt.Errorf("failed to load leads: %w", err)
	}

	snapshot := PipelineSnapshot{
		Stages: make([]StageCount, len(store.FunnelStages)),
	}
	index := make(map[string]int, len(store.FunnelStages))
	for i, stage := range store.FunnelStages {
		snapshot.Stages[i] = StageCount{Stage: stage}
		index[stage] = i
	}

	var wonCount, lostCount int
	for _, lead := range leads {
		snapshot.TotalLeads++
		snapshot.TotalPipelineValue += lead.Value
		if i, ok := index[lead.Status]; ok {
			snapshot.Stages[i].Count++
			snapshot.Stages[i].Value += lead.Value
		}
		switch lead.Status {
		case store.LeadStatusClosedWon:
			wonCount++
			snapshot.WonValue += lead.Value
		case store.LeadStatusClosedLost:
			lostCount++
			snapshot.LostValue += lead.Value
		default:
			snapshot.ActivePipelineValue += lead.Value
		}
	}

	snapshot.ConversionRate = ratio(float64(wonCount), float64(wonCount+lostCount)) * 100
	snapshot.AvgDealSize = ratio(snapshot.WonValue, float64(wonCount))

	return snapshot, nil
}
