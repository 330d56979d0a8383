package processor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"insights-server/internal/observability"
	"insights-server/internal/store"
)

// GetCampaignRanking builds the blended per-campaign comparison table,
// sorted descending by the requested metric. Ties break by campaign ID
// ascending so repeated calls over identical data produce identical order.
// An unknown metric key falls back to spend.
func (p *Processor) GetCampaignRanking(ctx context.Context, organizationID uuid.UUID, r DateRange, accountID *uuid.UUID, metric RankingMetric) ([]CampaignRankingRow, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_campaign_ranking"},
	)

	if err := p.validateRange(r); err != nil {
		return nil, err
	}
	if !validRankingMetric(metric) {
		metric = RankBySpend
	}

	key := p.cacheKey(fmt.Sprintf("ranking:%s", metric), organizationID, r, Filters{AccountID: accountID})
	var cached []CampaignRankingRow
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	if accountID != nil {
		account, err := p.store.GetAdAccountByID(ctx, *accountID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("failed to resolve account filter: %w", err)
		}
		if account.OrganizationID != organizationID {
			return nil, ErrUnauthorized
		}
	}

	campaigns, err := p.store.ListAdCampaignsByOrganization(ctx, organizationID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return []CampaignRankingRow{}, nil
	}

	rows := make([]CampaignRankingRow, len(campaigns))
	index := make(map[uuid.UUID]int, len(campaigns))
	for i, campaign := range campaigns {
		rows[i] = CampaignRankingRow{
			ID:          campaign.ID,
			Name:        campaign.Name,
			AccountName: campaign.AccountName,
			Status:      campaign.Status,
		}
		index[campaign.ID] = i
	}

	insights, err := p.store.ListDailyInsights(ctx, organizationID, store.InsightFilters{AccountID: accountID}, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily insights: %w", err)
	}
	for _, row := range insights {
		i, ok := index[row.CampaignID]
		if !ok {
			continue
		}
		rows[i].Spend += row.Spend
		rows[i].Impressions += row.Impressions
		rows[i].Clicks += row.Clicks
		rows[i].Leads += row.LeadsCount
	}

	created, err := p.store.ListLeadsCreatedBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load created leads: %w", err)
	}
	for _, lead := range created {
		i, ok := leadCampaignIndex(index, lead)
		if !ok {
			continue
		}
		if lead.Status == store.LeadStatusNegotiation {
			rows[i].InNegotiation++
		}
		if isActiveStatus(lead.Status) {
			rows[i].PipelineValue += lead.Value
		}
	}

	won, err := p.store.ListLeadsWonBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load won leads: %w", err)
	}
	for _, lead := range won {
		if i, ok := leadCampaignIndex(index, lead); ok {
			rows[i].WonCount++
			rows[i].Revenue += lead.Value
		}
	}

	lost, err := p.store.ListLeadsLostBetween(ctx, organizationID, r.Start, r.exclusiveEnd())
	if err != nil {
		return nil, fmt.Errorf("failed to load lost leads: %w", err)
	}
	for _, lead := range lost {
		if i, ok := leadCampaignIndex(index, lead); ok {
			rows[i].LostCount++
		}
	}

	for i := range rows {
		rows[i].CPL = ratio(rows[i].Spend, float64(rows[i].Leads))
		rows[i].CTR = ratio(float64(rows[i].Clicks), float64(rows[i].Impressions)) * 100
		rows[i].ROAS = ratio(rows[i].Revenue, rows[i].Spend)
		closed := rows[i].WonCount + rows[i].LostCount
		rows[i].ConversionRate = ratio(float64(rows[i].WonCount), float64(closed)) * 100
	}

	sort.SliceStable(rows, func(a, b int) bool {
		av, bv := rankingValue(rows[a], metric), rankingValue(rows[b], metric)
		if av != bv {
			return av > bv
		}
		return strings.Compare(rows[a].ID.String(), rows[b].ID.String()) < 0
	})
	rows[0].Top = true

	p.cacheSet(ctx, key, rows)
	return rows, nil
}

func leadCampaignIndex(index map[uuid.UUID]int, lead store.Lead) (int, bool) {
	if lead.CampaignID == nil {
		return 0, false
	}
	i, ok := index[*lead.CampaignID]
	return i, ok
}

func validRankingMetric(metric RankingMetric) bool {
	switch metric {
	case RankBySpend, RankByImpressions, RankByClicks, RankByLeads,
		RankByCTR, RankByRevenue, RankByROAS:
		return true
	}
	return false
}

func rankingValue(row CampaignRankingRow, metric RankingMetric) float64 {
	switch metric {
	case RankByImpressions:
		return float64(row.Impressions)
	case RankByClicks:
		return float64(row.Clicks)
	case RankByLeads:
		return float64(row.Leads)
	case RankByCTR:
		return row.CTR
	case RankByRevenue:
		return row.Revenue
	case RankByROAS:
		return row.ROAS
	default:
		return row.Spend
	}
}
