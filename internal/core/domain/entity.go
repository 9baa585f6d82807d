package domain

// EntityKind tells which platform object owns a daily budget.
type EntityKind string

const (
	KindCampaign EntityKind = "campaign"
	KindAdSet    EntityKind = "adset"
)

// BudgetableEntity is a campaign or ad set that currently carries its own
// daily budget. Budgets are in the smallest currency unit (cents).
//
// A campaign with a campaign-level budget is listed on its own and its ad
// sets are not; otherwise the campaign's ad sets that own a budget are
// listed. CampaignID and CampaignName point at the parent campaign for ad
// sets and at the entity itself for campaigns.
type BudgetableEntity struct {
	ID                 string
	Name               string
	Kind               EntityKind
	CampaignID         string
	CampaignName       string
	CurrentBudgetCents int64
}
