package processor

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"insights-server/internal/observability"
	"insights-server/internal/store"
)

const (
	unassignedID   = "unassigned"
	unassignedName = "Não atribuído"

	// Bucket for lost leads without a recorded reason.
	unspecifiedLossReason = "Não especificado"
)

// GetSalesPerformance attributes won revenue to assignees over the range,
// bucketed by close date. Leads without an assignee collapse into one
// "unassigned" row. Rows sort by revenue descending, assignee ID ascending
// on ties.
func (p *Processor) GetSalesPerformance(ctx context.Context, organizationID uuid.UUID, r DateRange) ([]SalesRepPerformance, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_sales_performance"},
	)

	if err := p.validateRange(r); err != nil {
		return nil, err
	}

	won, err := p.store.ListLeadsWonBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load won leads: %w", err)
	}

	byAssignee := make(map[string]*SalesRepPerformance)
	for _, lead := range won {
		id, name := unassignedID, unassignedName
		if lead.AssigneeID != nil {
			id = lead.AssigneeID.String()
			if lead.AssigneeName != nil {
				name = *lead.AssigneeName
			} else {
				name = id
			}
		}
		rep, ok := byAssignee[id]
		if !ok {
			rep = &SalesRepPerformance{AssigneeID: id, AssigneeName: name}
			byAssignee[id] = rep
		}
		rep.TotalRevenue += lead.Value
		rep.DealsWon++
	}

	reps := make([]SalesRepPerformance, 0, len(byAssignee))
	for _, rep := range byAssignee {
		reps = append(reps, *rep)
	}
	sort.Slice(reps, func(a, b int) bool {
		if reps[a].TotalRevenue != reps[b].TotalRevenue {
			return reps[a].TotalRevenue > reps[b].TotalRevenue
		}
		return reps[a].AssigneeID < reps[b].AssigneeID
	})

	return reps, nil
}

// GetLossReasons counts lost leads per recorded reason over the range,
// bucketed by close date. Missing reasons land in a shared fallback bucket,
// which ranks after named reasons on count ties.
func (p *Processor) GetLossReasons(ctx context.Context, organizationID uuid.UUID, r DateRange) ([]LossReasonCount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_loss_reasons"},
	)

	if err := p.validateRange(r); err != nil {
		return nil, err
	}

	lost, err := p.store.ListLeadsLostBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load lost leads: %w", err)
	}

	counts := make(map[string]int)
	for _, lead := range lost {
		reason := unspecifiedLossReason
		if lead.LostReason != nil && *lead.LostReason != "" {
			reason = *lead.LostReason
		}
		counts[reason]++
	}

	reasons := make([]LossReasonCount, 0, len(counts))
	for reason, count := range counts {
		reasons = append(reasons, LossReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(reasons, func(a, b int) bool {
		if reasons[a].Count != reasons[b].Count {
			return reasons[a].Count > reasons[b].Count
		}
		if (reasons[a].Reason == unspecifiedLossReason) != (reasons[b].Reason == unspecifiedLossReason) {
			return reasons[b].Reason == unspecifiedLossReason
		}
		return reasons[a].Reason < reasons[b].Reason
	})

	return reasons, nil
}

// GetActivityBreakdown aggregates logged CRM interactions by type over the
// range. Counting happens in the store; ordering is count descending with
// a type-ascending tie-break.
func (p *Processor) GetActivityBreakdown(ctx context.Context, organizationID uuid.UUID, r DateRange) ([]store.InteractionTypeCount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_activity_breakdown"},
	)

	if err := p.validateRange(r); err != nil {
		return nil, err
	}

	counts, err := p.store.GetInteractionCountsByType(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load interaction counts: %w", err)
	}
	return counts, nil
}
