package port

import (
	"context"
	"fmt"

	"meta-ads/internal/core/domain"
)

// CampaignPlanner defines the business operations exposed by the
// campaign manager. This interface is the primary port into the
// application and is what the MCP tool layer talks to.
type CampaignPlanner interface {
	// CreateFullCampaign drives the four-step creation sequence
	// (campaign, ad set, creative, ad) against the live client, or
	// against the simulator when dryRun is true. The returned result
	// always carries Status PAUSED. When a step after the first fails
	// the error is a *PartialFailure naming the failed step and the
	// identifiers already minted; no automatic rollback is attempted.
	CreateFullCampaign(ctx context.Context, spec domain.CampaignSpec, dryRun bool) (*domain.CampaignResult, error)

	// GetCampaignStatus reports a campaign and its ad sets and ads.
	GetCampaignStatus(ctx context.Context, campaignID string) (*domain.StatusReport, error)

	// PauseCampaign stops delivery. Safe on already-paused campaigns.
	PauseCampaign(ctx context.Context, campaignID string) error
	// ActivateCampaign resumes delivery and therefore spending.
	ActivateCampaign(ctx context.Context, campaignID string) error
	// DeleteCampaign permanently deletes a campaign. Idempotent.
	DeleteCampaign(ctx context.Context, campaignID string) error
}

// Step names reported by PartialFailure.
const (
	StepCampaign = "campaign"
	StepAdSet    = "ad_set"
	StepCreative = "creative"
	StepAd       = "ad"
)

// PartialFailure is returned when the creation sequence fails after at
// least one object was already created. The dangling objects stay on
// the remote side in PAUSED state, so there is no spend risk, but the
// operator needs the minted ids to clean up manually.
type PartialFailure struct {
	RunID      string
	Step       string
	CampaignID string
	AdSetID    string
	CreativeID string
	Cause      error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("campaign creation failed at step %s (campaign_id=%q ad_set_id=%q creative_id=%q): %v",
		e.Step, e.CampaignID, e.AdSetID, e.CreativeID, e.Cause)
}

func (e *PartialFailure) Unwrap() error { return e.Cause }

// MintedIDs returns the identifiers created before the failing step,
// in creation order.
func (e *PartialFailure) MintedIDs() []string {
	var ids []string
	for _, id := range []string{e.CampaignID, e.AdSetID, e.CreativeID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
