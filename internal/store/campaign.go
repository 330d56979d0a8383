package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetAdCampaignByID = `
SELECT
    c.id,
    c.ad_account_id,
    a.organization_id,
    c.external_id,
    c.name,
    c.status,
    c.objective,
    a.business_name AS account_name,
    c.created_at
FROM ad_campaigns c
JOIN ad_accounts a ON a.id = c.ad_account_id
WHERE c.id = $1
`

// GetAdCampaignByID retrieves a campaign together with its owning
// organization so callers can enforce tenant ownership.
func (s *Store) GetAdCampaignByID(ctx context.Context, campaignID uuid.UUID) (AdCampaign, error) {
	var campaign AdCampaign
	err := s.db.GetContext(ctx, &campaign, sqlGetAdCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ad campaign", err)
		return AdCampaign{}, fmt.Errorf("failed to get ad campaign: %w", err)
	}
	return campaign, nil
}

const sqlListAdCampaignsByOrganization = `
SELECT
    c.id,
    c.ad_account_id,
    a.organization_id,
    c.external_id,
    c.name,
    c.status,
    c.objective,
    a.business_name AS account_name,
    c.created_at
FROM ad_campaigns c
JOIN ad_accounts a ON a.id = c.ad_account_id
WHERE a.organization_id = $1
  AND a.is_active = true
  AND ($2::uuid IS NULL OR c.ad_account_id = $2)
ORDER BY c.created_at DESC
`

// ListAdCampaignsByOrganization retrieves the campaigns of one tenant,
// optionally narrowed to a single ad account.
func (s *Store) ListAdCampaignsByOrganization(ctx context.Context, organizationID uuid.UUID, accountID *uuid.UUID) ([]AdCampaign, error) {
	var campaigns []AdCampaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListAdCampaignsByOrganization, organizationID, accountID)
	if err != nil {
		s.logger.Error(ctx, "failed to list ad campaigns", err)
		return nil, fmt.Errorf("failed to list ad campaigns: %w", err)
	}
	return campaigns, nil
}
