package domain

// Status is the lifecycle state of a campaign, ad set or ad as the
// Marketing API spells it.
type Status string

const (
	StatusPaused  Status = "PAUSED"
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// CanTransition reports whether an object may move from s to next.
// DELETED is terminal. Re-applying the current status is allowed, so
// pausing an already-paused campaign stays safe.
func (s Status) CanTransition(next Status) bool {
	if s == StatusDeleted {
		return false
	}
	switch next {
	case StatusPaused, StatusActive, StatusDeleted:
		return true
	}
	return false
}

// CampaignSpec describes a full campaign to be created as one logical
// unit: the campaign itself, one ad set, one creative and one ad.
// Budgets are stored in integer minor units (cents).
type CampaignSpec struct {
	Name                string
	AdSetName           string
	Objective           string
	DailyBudgetCents    int64
	OptimizationGoal    string
	BillingEvent        string
	BidStrategy         string
	SpecialAdCategories []string
	Targeting           Targeting
	Creative            CreativeSpec
}

// CampaignResult holds the identifiers minted by a successful
// orchestration. Status is always PAUSED for a fresh campaign.
type CampaignResult struct {
	CampaignID string
	AdSetID    string
	CreativeID string
	AdID       string
	Status     Status
	DryRun     bool
}

// CampaignStatus is the campaign portion of a status report.
type CampaignStatus struct {
	ID               string
	Name             string
	Status           Status
	Objective        string
	DailyBudgetCents int64
}

// AdSetStatus is one ad set row of a status report.
type AdSetStatus struct {
	ID               string
	Name             string
	Status           Status
	DailyBudgetCents int64
}

// AdStatus is one ad row of a status report. EffectiveStatus layers
// review and delivery state on top of the configured status.
type AdStatus struct {
	ID              string
	Name            string
	Status          Status
	EffectiveStatus string
}

// StatusReport aggregates the state of a campaign and its children.
type StatusReport struct {
	Campaign CampaignStatus
	AdSets   []AdSetStatus
	Ads      []AdStatus
}
