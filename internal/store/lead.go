package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sqlLeadColumns = `
    id, organization_id, campaign_id, name, status, value, source,
    assignee_id, assignee_name, lost_reason,
    created_at, updated_at, closed_won_at, closed_lost_at
`

const sqlListLeadsCreatedBetween = `
SELECT` + sqlLeadColumns + `
FROM leads
WHERE organization_id = $1
  AND created_at >= $2
  AND created_at < $3
ORDER BY created_at ASC
`

// ListLeadsCreatedBetween retrieves leads created inside the range. The
// upper bound is exclusive; callers pass end-of-range + 1 day to include
// the whole final day.
func (s *Store) ListLeadsCreatedBetween(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListLeadsCreatedBetween, organizationID, startDate, endDate)
	if err != nil {
		s.logger.Error(ctx, "failed to list leads by creation date", err)
		return nil, fmt.Errorf("failed to list leads by creation date: %w", err)
	}
	return leads, nil
}

const sqlListLeadsWonBetween = `
SELECT` + sqlLeadColumns + `
FROM leads
WHERE organization_id = $1
  AND status = 'fechado_ganho'
  AND closed_won_at >= $2
  AND closed_won_at < $3
ORDER BY closed_won_at ASC
`

// ListLeadsWonBetween retrieves leads whose closed-won timestamp falls
// inside the range. Revenue metrics always bucket by close date, never by
// creation date.
func (s *Store) ListLeadsWonBetween(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListLeadsWonBetween, organizationID, startDate, endDate)
	if err != nil {
		s.logger.Error(ctx, "failed to list won leads", err)
		return nil, fmt.Errorf("failed to list won leads: %w", err)
	}
	return leads, nil
}

const sqlListLeadsLostBetween = `
SELECT` + sqlLeadColumns + `
FROM leads
WHERE organization_id = $1
  AND status = 'fechado_perdido'
  AND closed_lost_at >= $2
  AND closed_lost_at < $3
ORDER BY closed_lost_at ASC
`

// ListLeadsLostBetween retrieves leads lost inside the range, bucketed by
// the closed-lost timestamp.
func (s *Store) ListLeadsLostBetween(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListLeadsLostBetween, organizationID, startDate, endDate)
	if err != nil {
		s.logger.Error(ctx, "failed to list lost leads", err)
		return nil, fmt.Errorf("failed to list lost leads: %w", err)
	}
	return leads, nil
}

const sqlListLeadsByOrganization = `
SELECT` + sqlLeadColumns + `
FROM leads
WHERE organization_id = $1
ORDER BY created_at ASC
`

// ListLeadsByOrganization retrieves every lead of one tenant.
func (s *Store) ListLeadsByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListLeadsByOrganization, organizationID)
	if err != nil {
		s.logger.Error(ctx, "failed to list leads", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}
