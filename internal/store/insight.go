package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsightFilters narrow daily-insight queries to one ad account or one
// campaign. A nil field means "all".
type InsightFilters struct {
	AccountID  *uuid.UUID
	CampaignID *uuid.UUID
}

// InsightTotals is the output of the precomputed server-side aggregation
// (fast path). RowCount distinguishes "no data" from "all zeros" so the
// caller knows when to fall back to raw rows.
type InsightTotals struct {
	Spend       float64 `db:"total_spend" json:"spend"`
	Impressions int     `db:"total_impressions" json:"impressions"`
	Clicks      int     `db:"total_clicks" json:"clicks"`
	LeadsCount  int     `db:"total_leads" json:"leads_count"`
	RowCount    int     `db:"row_count" json:"-"`
}

const sqlGetInsightTotalsFast = `
SELECT
    COALESCE(total_spend, 0)::float8       AS total_spend,
    COALESCE(total_impressions, 0)::int    AS total_impressions,
    COALESCE(total_clicks, 0)::int         AS total_clicks,
    COALESCE(total_leads, 0)::int          AS total_leads,
    COALESCE(row_count, 0)::int            AS row_count
FROM metrics_campaign_totals($1, $2, $3, $4, $5)
`

// GetInsightTotalsFast calls the precomputed aggregation function. It is a
// pure performance optimization: its sums must match client-side summation
// of ListDailyInsights over the same filters.
func (s *Store) GetInsightTotalsFast(ctx context.Context, organizationID uuid.UUID, filters InsightFilters, startDate, endDate time.Time) (InsightTotals, error) {
	var totals InsightTotals
	err := s.db.GetContext(ctx, &totals, sqlGetInsightTotalsFast,
		organizationID, filters.AccountID, filters.CampaignID, startDate, endDate)
	if err != nil {
		s.logger.Error(ctx, "failed to get precomputed insight totals", err)
		return InsightTotals{}, fmt.Errorf("failed to get precomputed insight totals: %w", err)
	}
	return totals, nil
}

const sqlListDailyInsights = `
SELECT
    i.campaign_id,
    i.date,
    i.spend,
    i.impressions,
    i.clicks,
    i.leads_count
FROM campaign_daily_insights i
JOIN ad_campaigns c ON c.id = i.campaign_id
JOIN ad_accounts a ON a.id = c.ad_account_id
WHERE a.organization_id = $1
  AND i.date >= $2
  AND i.date <= $3
  AND ($4::uuid IS NULL OR c.ad_account_id = $4)
  AND ($5::uuid IS NULL OR i.campaign_id = $5)
ORDER BY i.date ASC
`

// ListDailyInsights retrieves raw daily-insight rows for campaigns owned by
// the organization, dates inclusive on both ends.
func (s *Store) ListDailyInsights(ctx context.Context, organizationID uuid.UUID, filters InsightFilters, startDate, endDate time.Time) ([]DailyInsight, error) {
	var insights []DailyInsight
	err := s.db.SelectContext(ctx, &insights, sqlListDailyInsights,
		organizationID, startDate, endDate, filters.AccountID, filters.CampaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list daily insights", err)
		return nil, fmt.Errorf("failed to list daily insights: %w", err)
	}
	return insights, nil
}
