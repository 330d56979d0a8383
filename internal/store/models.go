package store

import (
	"time"

	"github.com/google/uuid"
)

// AdAccount is a connected advertising account owned by one organization.
type AdAccount struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	ExternalID     string    `db:"external_id" json:"external_id"`
	BusinessName   string    `db:"business_name" json:"business_name"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// AdCampaign is an advertising campaign under one ad account. OrganizationID
// is resolved through the account join so callers can verify tenant
// ownership without a second query.
type AdCampaign struct {
	ID             uuid.UUID `db:"id" json:"id"`
	AdAccountID    uuid.UUID `db:"ad_account_id" json:"ad_account_id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	ExternalID     string    `db:"external_id" json:"external_id"`
	Name           string    `db:"name" json:"name"`
	Status         *string   `db:"status" json:"status"`
	Objective      *string   `db:"objective" json:"objective"`
	AccountName    string    `db:"account_name" json:"account_name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// DailyInsight is one synced (campaign, day) advertising metrics row.
// Re-syncs overwrite the row in place; there is at most one per pair.
type DailyInsight struct {
	CampaignID  uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Date        time.Time `db:"date" json:"date"`
	Spend       float64   `db:"spend" json:"spend"`
	Impressions int       `db:"impressions" json:"impressions"`
	Clicks      int       `db:"clicks" json:"clicks"`
	LeadsCount  int       `db:"leads_count" json:"leads_count"`
}

// Lead is a CRM pipeline entity scoped to one organization.
type Lead struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	OrganizationID uuid.UUID  `db:"organization_id" json:"organization_id"`
	CampaignID     *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Name           string     `db:"name" json:"name"`
	Status         string     `db:"status" json:"status"`
	Value          float64    `db:"value" json:"value"`
	Source         *string    `db:"source" json:"source"`
	AssigneeID     *uuid.UUID `db:"assignee_id" json:"assignee_id"`
	AssigneeName   *string    `db:"assignee_name" json:"assignee_name"`
	LostReason     *string    `db:"lost_reason" json:"lost_reason"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
	ClosedWonAt    *time.Time `db:"closed_won_at" json:"closed_won_at"`
	ClosedLostAt   *time.Time `db:"closed_lost_at" json:"closed_lost_at"`
}

// Interaction is a logged CRM activity (call, email, meeting, ...) tied to a
// lead. Only used for activity-volume aggregation.
type Interaction struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	OrganizationID  uuid.UUID  `db:"organization_id" json:"organization_id"`
	LeadID          uuid.UUID  `db:"lead_id" json:"lead_id"`
	InteractionType string     `db:"interaction_type" json:"interaction_type"`
	UserName        *string    `db:"user_name" json:"user_name"`
	InteractionDate time.Time  `db:"interaction_date" json:"interaction_date"`
}
