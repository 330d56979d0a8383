package processor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"insights-server/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// MetricsStore is the persistence surface the aggregation layer depends on.
type MetricsStore interface {
	GetAdAccountByID(ctx context.Context, accountID uuid.UUID) (store.AdAccount, error)
	ListAdAccountsByOrganization(ctx context.Context, organizationID uuid.UUID) ([]store.AdAccount, error)
	GetAdCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.AdCampaign, error)
	ListAdCampaignsByOrganization(ctx context.Context, organizationID uuid.UUID, accountID *uuid.UUID) ([]store.AdCampaign, error)
	GetInsightTotalsFast(ctx context.Context, organizationID uuid.UUID, filters store.InsightFilters, startDate, endDate time.Time) (store.InsightTotals, error)
	ListDailyInsights(ctx context.Context, organizationID uuid.UUID, filters store.InsightFilters, startDate, endDate time.Time) ([]store.DailyInsight, error)
	ListLeadsCreatedBetween(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]store.Lead, error)
	ListLeadsWonBetween(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]store.Lead, error)
	ListLeadsLostBetween(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]store.Lead, error)
	ListLeadsByOrganization(ctx context.Context, organizationID uuid.UUID) ([]store.Lead, error)
	GetInteractionCountsByType(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]store.InteractionTypeCount, error)
}

// ResultCache is a short-TTL read-through cache for aggregation results.
// Get reports whether dest was populated; Set failures are swallowed by
// the implementation, the cache is never load-bearing.
type ResultCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}
