package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"meta-ads/internal/core/domain"
	"meta-ads/internal/core/port"
)

// CampaignUseCase orchestrates campaign creation and lifecycle
// operations. It implements the CampaignPlanner port and drives one of
// two CampaignClient implementations: the live Graph API adapter or the
// in-memory simulator for dry runs. Selection is a pure substitution
// behind the shared interface; the orchestration logic itself never
// branches on the mode.
type CampaignUseCase struct {
	live   port.CampaignClient
	sim    port.CampaignClient
	logger *slog.Logger
}

// ownership is optionally implemented by clients that can tell whether
// an id was minted by them. The simulator implements it so status
// operations on synthetic ids route back to the dry-run store.
type ownership interface {
	Owns(campaignID string) bool
}

// NewCampaignUseCase creates the orchestrator with the live and
// simulated clients.
func NewCampaignUseCase(live, sim port.CampaignClient, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{live: live, sim: sim, logger: logger}
}

// CreateFullCampaign validates the spec, then executes the fixed
// four-step creation sequence: campaign, ad set, creative, ad. Each
// step's identifier feeds the next call, so the sequence is strictly
// sequential. A failure after the first step returns a *PartialFailure
// carrying the ids minted so far; the dangling objects stay PAUSED on
// the remote side and are left for manual cleanup.
func (u *CampaignUseCase) CreateFullCampaign(ctx context.Context, spec domain.CampaignSpec, dryRun bool) (*domain.CampaignResult, error) {
	spec = spec.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	client := u.live
	if dryRun {
		client = u.sim
	}

	runID := uuid.NewString()
	log := u.logger.With(slog.String("run_id", runID), slog.Bool("dry_run", dryRun))
	log.Debug("creating campaign",
		slog.String("name", spec.Name),
		slog.String("objective", spec.Objective),
		slog.Int64("daily_budget_cents", spec.DailyBudgetCents))

	campaignID, err := client.CreateCampaign(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	log.Debug("campaign created", slog.String("campaign_id", campaignID))

	adSetID, err := client.CreateAdSet(ctx, campaignID, spec)
	if err != nil {
		return nil, &port.PartialFailure{
			RunID:      runID,
			Step:       port.StepAdSet,
			CampaignID: campaignID,
			Cause:      err,
		}
	}
	log.Debug("ad set created", slog.String("ad_set_id", adSetID))

	creativeID, err := client.CreateCreative(ctx, spec.Creative)
	if err != nil {
		return nil, &port.PartialFailure{
			RunID:      runID,
			Step:       port.StepCreative,
			CampaignID: campaignID,
			AdSetID:    adSetID,
			Cause:      err,
		}
	}
	log.Debug("creative created", slog.String("creative_id", creativeID))

	adID, err := client.CreateAd(ctx, adSetID, creativeID, spec.Name)
	if err != nil {
		return nil, &port.PartialFailure{
			RunID:      runID,
			Step:       port.StepAd,
			CampaignID: campaignID,
			AdSetID:    adSetID,
			CreativeID: creativeID,
			Cause:      err,
		}
	}
	log.Info("campaign created",
		slog.String("campaign_id", campaignID),
		slog.String("ad_id", adID))

	return &domain.CampaignResult{
		CampaignID: campaignID,
		AdSetID:    adSetID,
		CreativeID: creativeID,
		AdID:       adID,
		Status:     domain.StatusPaused,
		DryRun:     dryRun,
	}, nil
}

// GetCampaignStatus is a passthrough to the owning client.
func (u *CampaignUseCase) GetCampaignStatus(ctx context.Context, campaignID string) (*domain.StatusReport, error) {
	return u.clientFor(campaignID).GetStatus(ctx, campaignID)
}

// PauseCampaign stops delivery. Safe on already-paused campaigns.
func (u *CampaignUseCase) PauseCampaign(ctx context.Context, campaignID string) error {
	return u.clientFor(campaignID).SetStatus(ctx, campaignID, domain.StatusPaused)
}

// ActivateCampaign resumes delivery and spending.
func (u *CampaignUseCase) ActivateCampaign(ctx context.Context, campaignID string) error {
	return u.clientFor(campaignID).SetStatus(ctx, campaignID, domain.StatusActive)
}

// DeleteCampaign permanently deletes a campaign. Deleting twice is a
// no-op success.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, campaignID string) error {
	return u.clientFor(campaignID).DeleteCampaign(ctx, campaignID)
}

// clientFor routes lifecycle operations. Ids minted by the simulator
// belong to the dry-run session and must not leak to the live API;
// everything else goes to the live client.
func (u *CampaignUseCase) clientFor(campaignID string) port.CampaignClient {
	if o, ok := u.sim.(ownership); ok && o.Owns(campaignID) {
		return u.sim
	}
	return u.live
}
