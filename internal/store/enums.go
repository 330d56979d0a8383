package store

// Lead pipeline ENUMs. Stage values are stored exactly as the CRM writes
// them; the funnel order below drives every stage breakdown.
const (
	LeadStatusNew         = "novo_lead"
	LeadStatusQualifying  = "qualificacao"
	LeadStatusProposal    = "proposta"
	LeadStatusNegotiation = "negociacao"
	LeadStatusClosedWon   = "fechado_ganho"
	LeadStatusClosedLost  = "fechado_perdido"
)

// FunnelStages lists every pipeline stage in funnel order. Breakdowns
// iterate this slice so that empty stages are reported with zero counts
// instead of being omitted.
var FunnelStages = []string{
	LeadStatusNew,
	LeadStatusQualifying,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusClosedWon,
	LeadStatusClosedLost,
}

// ActiveLeadStatuses are the stages that count toward the open pipeline.
var ActiveLeadStatuses = []string{
	LeadStatusNew,
	LeadStatusQualifying,
	LeadStatusProposal,
	LeadStatusNegotiation,
}

// Lead source ENUMs
const (
	LeadSourceMetaAds = "meta_ads"
	LeadSourceManual  = "manual"
	LeadSourceImport  = "import"
	LeadSourceForm    = "form"
)

// Ad campaign ENUMs (mirrors the statuses delivered by the ad platform sync)
const (
	AdCampaignStatusActive   = "ACTIVE"
	AdCampaignStatusPaused   = "PAUSED"
	AdCampaignStatusArchived = "ARCHIVED"
	AdCampaignStatusDeleted  = "DELETED"
)

// Interaction type ENUMs
const (
	InteractionTypeCall     = "call"
	InteractionTypeEmail    = "email"
	InteractionTypeMeeting  = "meeting"
	InteractionTypeWhatsApp = "whatsapp"
	InteractionTypeNote     = "note"
	InteractionTypeOther    = "other"
)
