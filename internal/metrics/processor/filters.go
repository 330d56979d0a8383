package processor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"insights-server/internal/observability"
	"insights-server/internal/store"
)

// FilterOptions lists the ad accounts and campaigns available to narrow an
// aggregation, used to populate dashboard filter selectors.
type FilterOptions struct {
	Accounts  []store.AdAccount  `json:"accounts"`
	Campaigns []store.AdCampaign `json:"campaigns"`
}

// GetFilterOptions returns the organization's active ad accounts and their
// campaigns, optionally narrowed to one account.
func (p *Processor) GetFilterOptions(ctx context.Context, organizationID uuid.UUID, accountID *uuid.UUID) (FilterOptions, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: organizationID},
		observability.Field{Key: "operation", Value: "get_filter_options"},
	)

	accounts, err := p.store.ListAdAccountsByOrganization(ctx, organizationID)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("failed to list ad accounts: %w", err)
	}
	campaigns, err := p.store.ListAdCampaignsByOrganization(ctx, organizationID, accountID)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("failed to list campaigns: %w", err)
	}

	if accounts == nil {
		accounts = []store.AdAccount{}
	}
	if campaigns == nil {
		campaigns = []store.AdCampaign{}
	}
	return FilterOptions{Accounts: accounts, Campaigns: campaigns}, nil
}
