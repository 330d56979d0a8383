package processor

import (
	"time"

	"github.com/google/uuid"
)

// DateRange is an inclusive day-granularity range. Both ends are
// normalized to midnight UTC.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalizes both bounds to midnight UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

// LastNDays returns the inclusive range ending today (UTC) and spanning
// the previous n-1 days.
func LastNDays(n int) DateRange {
	end := truncateDay(time.Now().UTC())
	return DateRange{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

// PreviousRange returns the immediately preceding range of equal length,
// used as the week-over-week comparison baseline.
func PreviousRange(r DateRange) DateRange {
	days := int(r.End.Sub(r.Start).Hours()/24) + 1
	end := r.Start.AddDate(0, 0, -1)
	return DateRange{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// exclusiveEnd is the day after the range end; lead timestamp queries use
// half-open intervals so the whole final day is included.
func (r DateRange) exclusiveEnd() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Filters optionally narrow an aggregation to one ad account or one
// campaign. A nil field means no narrowing.
type Filters struct {
	AccountID  *uuid.UUID
	CampaignID *uuid.UUID
}

// UnifiedTotals blends advertising totals with CRM pipeline totals over
// one range. Every ratio is a ratio of sums with a zero-denominator guard.
type UnifiedTotals struct {
	AdSpend       float64 `json:"ad_spend"`
	AdImpressions int     `json:"ad_impressions"`
	AdClicks      int     `json:"ad_clicks"`
	AdLeads       int     `json:"ad_leads"`
	CTR           float64 `json:"ctr"`
	CPC           float64 `json:"cpc"`
	CPL           float64 `json:"cpl"`

	CRMLeads         int     `json:"crm_leads"`
	QualifyingCount  int     `json:"qualifying_count"`
	ProposalCount    int     `json:"proposal_count"`
	NegotiationCount int     `json:"negotiation_count"`
	WonCount         int     `json:"won_count"`
	LostCount        int     `json:"lost_count"`
	Revenue          float64 `json:"revenue"`
	PipelineValue    float64 `json:"pipeline_value"`

	RealCPL     float64 `json:"real_cpl"`
	ROAS        float64 `json:"roas"`
	CloseRate   float64 `json:"close_rate"`
	AvgDealSize float64 `json:"avg_deal_size"`
	HasData     bool    `json:"has_data"`
}

// DailyMetric is one gap-filled entry of the per-day time series.
type DailyMetric struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	AdLeads     int       `json:"ad_leads"`
	CRMLeads    int       `json:"crm_leads"`
	WonCount    int       `json:"won_count"`
	Revenue     float64   `json:"revenue"`
	CPL         float64   `json:"cpl"`
	CPC         float64   `json:"cpc"`
	CTR         float64   `json:"ctr"`
}

// PeriodTotals are the advertising+revenue totals of one comparison period.
type PeriodTotals struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Leads       int     `json:"leads"`
	Revenue     float64 `json:"revenue"`
	CPL         float64 `json:"cpl"`
	CTR         float64 `json:"ctr"`
}

// DeltaPct holds per-metric percentage changes between two periods. A nil
// entry means the previous period had no comparable baseline (total of 0),
// which is distinct from a 0% change.
type DeltaPct struct {
	Spend   *float64 `json:"spend"`
	Leads   *float64 `json:"leads"`
	Revenue *float64 `json:"revenue"`
	CPL     *float64 `json:"cpl"`
	CTR     *float64 `json:"ctr"`
}

// WeekOverWeekComparison is the paired current/previous totals plus deltas.
type WeekOverWeekComparison struct {
	Current  PeriodTotals `json:"current"`
	Previous PeriodTotals `json:"previous"`
	Delta    DeltaPct     `json:"delta_pct"`
}

// FunnelStage is one entry of the pipeline-stage breakdown. AvgDaysInStage
// is the mean days from creation to close for the closed stages and 0 for
// stages without transition timestamps.
type FunnelStage struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	Value          float64 `json:"value"`
	AvgDaysInStage float64 `json:"avg_days_in_stage"`
}

// StageCount is one entry of the pipeline snapshot.
type StageCount struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// PipelineSnapshot is the CRM pipeline state over an optional
// creation-date window.
type PipelineSnapshot struct {
	TotalLeads          int          `json:"total_leads"`
	TotalPipelineValue  float64      `json:"total_pipeline_value"`
	ActivePipelineValue float64      `json:"active_pipeline_value"`
	WonValue            float64      `json:"won_value"`
	LostValue           float64      `json:"lost_value"`
	ConversionRate      float64      `json:"conversion_rate"`
	AvgDealSize         float64      `json:"avg_deal_size"`
	Stages              []StageCount `json:"stages"`
}

// RankingMetric selects the sort key of the campaign ranking.
type RankingMetric string

const (
	RankBySpend       RankingMetric = "spend"
	RankByImpressions RankingMetric = "impressions"
	RankByClicks      RankingMetric = "clicks"
	RankByLeads       RankingMetric = "leads"
	RankByCTR         RankingMetric = "ctr"
	RankByRevenue     RankingMetric = "revenue"
	RankByROAS        RankingMetric = "roas"
)

// CampaignRankingRow is one blended per-campaign row of the ranking table.
// Top flags the first entry after sorting.
type CampaignRankingRow struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	AccountName    string    `json:"account_name"`
	Status         *string   `json:"status"`
	Spend          float64   `json:"spend"`
	Impressions    int       `json:"impressions"`
	Clicks         int       `json:"clicks"`
	Leads          int       `json:"leads"`
	WonCount       int       `json:"won_count"`
	LostCount      int       `json:"lost_count"`
	InNegotiation  int       `json:"in_negotiation"`
	Revenue        float64   `json:"revenue"`
	PipelineValue  float64   `json:"pipeline_value"`
	CPL            float64   `json:"cpl"`
	CTR            float64   `json:"ctr"`
	ROAS           float64   `json:"roas"`
	ConversionRate float64   `json:"conversion_rate"`
	Top            bool      `json:"top"`
}

// SalesRepPerformance is revenue attribution per assignee over won deals.
type SalesRepPerformance struct {
	AssigneeID   string  `json:"assignee_id"`
	AssigneeName string  `json:"assignee_name"`
	TotalRevenue float64 `json:"total_revenue"`
	DealsWon     int     `json:"deals_won"`
}

// LossReasonCount is one entry of the loss-analysis breakdown.
type LossReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}
