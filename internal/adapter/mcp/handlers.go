package mcpadapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"meta-ads/internal/core/domain"
	"meta-ads/internal/core/port"
)

// CreateCampaignHandler executes a full campaign creation. Partial
// failures are reported as an error result that still carries the ids
// minted before the failing step, so nothing is silently discarded.
func CreateCampaignHandler(planner port.CampaignPlanner) mcp.ToolHandlerFor[CreateCampaignInput, CreateCampaignResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateCampaignInput) (*mcp.CallToolResult, CreateCampaignResult, error) {
		dryRun := true
		if input.DryRun != nil {
			dryRun = *input.DryRun
		}

		spec := domain.CampaignSpec{
			Name:             input.CampaignName,
			AdSetName:        input.AdSetName,
			Objective:        input.Objective,
			DailyBudgetCents: input.DailyBudgetCents,
			OptimizationGoal: input.OptimizationGoal,
			Targeting: domain.Targeting{
				AgeMin:    input.AgeMin,
				AgeMax:    input.AgeMax,
				Countries: input.Countries,
				Interests: input.Interests,
			},
			Creative: domain.CreativeSpec{
				ImagePath:    input.ImagePath,
				PrimaryText:  input.PrimaryText,
				Headline:     input.Headline,
				Description:  input.Description,
				CallToAction: input.CallToAction,
				Link:         input.Link,
			},
		}

		result, err := planner.CreateFullCampaign(ctx, spec, dryRun)
		if err != nil {
			var partial *port.PartialFailure
			if errors.As(err, &partial) {
				return &mcp.CallToolResult{IsError: true}, CreateCampaignResult{
					DryRun:     dryRun,
					CampaignID: partial.CampaignID,
					AdSetID:    partial.AdSetID,
					CreativeID: partial.CreativeID,
					FailedStep: partial.Step,
					Error:      partial.Cause.Error(),
				}, nil
			}
			return nil, CreateCampaignResult{}, fmt.Errorf("create campaign failed: %w", err)
		}

		return nil, CreateCampaignResult{
			DryRun:     result.DryRun,
			CampaignID: result.CampaignID,
			AdSetID:    result.AdSetID,
			CreativeID: result.CreativeID,
			AdID:       result.AdID,
			Status:     string(result.Status),
		}, nil
	}
}

// GetCampaignStatusHandler fetches a campaign status report.
func GetCampaignStatusHandler(planner port.CampaignPlanner) mcp.ToolHandlerFor[CampaignIDInput, StatusReportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignIDInput) (*mcp.CallToolResult, StatusReportResult, error) {
		if input.CampaignID == "" {
			return nil, StatusReportResult{}, fmt.Errorf("campaign_id is required")
		}
		report, err := planner.GetCampaignStatus(ctx, input.CampaignID)
		if err != nil {
			return nil, StatusReportResult{}, fmt.Errorf("campaign status failed: %w", err)
		}

		result := StatusReportResult{
			Campaign: CampaignInfo{
				ID:               report.Campaign.ID,
				Name:             report.Campaign.Name,
				Status:           string(report.Campaign.Status),
				Objective:        report.Campaign.Objective,
				DailyBudgetCents: report.Campaign.DailyBudgetCents,
			},
			AdSets: make([]AdSetInfo, 0, len(report.AdSets)),
			Ads:    make([]AdInfo, 0, len(report.Ads)),
		}
		for _, s := range report.AdSets {
			result.AdSets = append(result.AdSets, AdSetInfo{
				ID:               s.ID,
				Name:             s.Name,
				Status:           string(s.Status),
				DailyBudgetCents: s.DailyBudgetCents,
			})
		}
		for _, a := range report.Ads {
			result.Ads = append(result.Ads, AdInfo{
				ID:              a.ID,
				Name:            a.Name,
				Status:          string(a.Status),
				EffectiveStatus: a.EffectiveStatus,
			})
		}
		return nil, result, nil
	}
}

// PauseCampaignHandler pauses a campaign.
func PauseCampaignHandler(planner port.CampaignPlanner) mcp.ToolHandlerFor[CampaignIDInput, StatusChangeResult] {
	return statusChangeHandler(domain.StatusPaused, func(ctx context.Context, id string) error {
		return planner.PauseCampaign(ctx, id)
	})
}

// ActivateCampaignHandler resumes a campaign.
func ActivateCampaignHandler(planner port.CampaignPlanner) mcp.ToolHandlerFor[CampaignIDInput, StatusChangeResult] {
	return statusChangeHandler(domain.StatusActive, func(ctx context.Context, id string) error {
		return planner.ActivateCampaign(ctx, id)
	})
}

// DeleteCampaignHandler deletes a campaign.
func DeleteCampaignHandler(planner port.CampaignPlanner) mcp.ToolHandlerFor[CampaignIDInput, StatusChangeResult] {
	return statusChangeHandler(domain.StatusDeleted, func(ctx context.Context, id string) error {
		return planner.DeleteCampaign(ctx, id)
	})
}

// statusChangeHandler wraps the three lifecycle operations, which share
// the same input and result shape.
func statusChangeHandler(target domain.Status, op func(context.Context, string) error) mcp.ToolHandlerFor[CampaignIDInput, StatusChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CampaignIDInput) (*mcp.CallToolResult, StatusChangeResult, error) {
		if input.CampaignID == "" {
			return nil, StatusChangeResult{}, fmt.Errorf("campaign_id is required")
		}
		if err := op(ctx, input.CampaignID); err != nil {
			return nil, StatusChangeResult{}, fmt.Errorf("campaign %s failed: %w", target, err)
		}
		return nil, StatusChangeResult{
			Success:    true,
			CampaignID: input.CampaignID,
			Status:     string(target),
		}, nil
	}
}
