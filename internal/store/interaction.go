package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InteractionTypeCount is one row of the activity-volume breakdown.
type InteractionTypeCount struct {
	InteractionType string `db:"interaction_type" json:"type"`
	Count           int    `db:"count" json:"count"`
}

const sqlGetInteractionCountsByType = `
SELECT
    COALESCE(interaction_type, 'other') AS interaction_type,
    COUNT(*)::int AS count
FROM interactions
WHERE organization_id = $1
  AND interaction_date >= $2
  AND interaction_date < $3
GROUP BY COALESCE(interaction_type, 'other')
ORDER BY count DESC, interaction_type ASC
`

// GetInteractionCountsByType aggregates logged activities by type inside
// the range.
func (s *Store) GetInteractionCountsByType(ctx context.Context, organizationID uuid.UUID, startDate, endDate time.Time) ([]InteractionTypeCount, error) {
	var counts []InteractionTypeCount
	err := s.db.SelectContext(ctx, &counts, sqlGetInteractionCountsByType, organizationID, startDate, endDate)
	if err != nil {
		s.logger.Error(ctx, "failed to get interaction counts", err)
		return nil, fmt.Errorf("failed to get interaction counts: %w", err)
	}
	return counts, nil
}
