package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetAdAccountByID = `
SELECT id, organization_id, external_id, business_name, is_active, created_at
FROM ad_accounts
WHERE id = $1
`

// GetAdAccountByID retrieves a single ad account.
func (s *Store) GetAdAccountByID(ctx context.Context, accountID uuid.UUID) (AdAccount, error) {
	var account AdAccount
	err := s.db.GetContext(ctx, &account, sqlGetAdAccountByID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdAccount{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ad account", err)
		return AdAccount{}, fmt.Errorf("failed to get ad account: %w", err)
	}
	return account, nil
}

const sqlListAdAccountsByOrganization = `
SELECT id, organization_id, external_id, business_name, is_active, created_at
FROM ad_accounts
WHERE organization_id = $1
  AND is_active = true
ORDER BY created_at DESC
`

// ListAdAccountsByOrganization retrieves all active ad accounts of one tenant.
func (s *Store) ListAdAccountsByOrganization(ctx context.Context, organizationID uuid.UUID) ([]AdAccount, error) {
	var accounts []AdAccount
	err := s.db.SelectContext(ctx, &accounts, sqlListAdAccountsByOrganization, organizationID)
	if err != nil {
		s.logger.Error(ctx, "failed to list ad accounts", err)
		return nil, fmt.Errorf("failed to list ad accounts: %w", err)
	}
	return accounts, nil
}
