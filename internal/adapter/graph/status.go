package graph

import (
	"context"
	"net/url"
	"strconv"

	"meta-ads/internal/core/domain"
)

type campaignFields struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Objective   string `json:"objective"`
	DailyBudget string `json:"daily_budget"`
}

type adSetFields struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	DailyBudget string `json:"daily_budget"`
}

type adFields struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
}

// GetStatus fetches the campaign plus its ad sets and ads in three
// reads, mirroring the Graph edge layout.
func (c *Client) GetStatus(ctx context.Context, campaignID string) (*domain.StatusReport, error) {
	var campaign campaignFields
	params := url.Values{}
	params.Set("fields", "id,name,status,objective,daily_budget")
	if err := c.get(ctx, campaignID, params, &campaign); err != nil {
		return nil, err
	}

	var adSets struct {
		Data []adSetFields `json:"data"`
	}
	params = url.Values{}
	params.Set("fields", "id,name,status,daily_budget")
	if err := c.get(ctx, campaignID+"/adsets", params, &adSets); err != nil {
		return nil, err
	}

	var ads struct {
		Data []adFields `json:"data"`
	}
	params = url.Values{}
	params.Set("fields", "id,name,status,effective_status")
	if err := c.get(ctx, campaignID+"/ads", params, &ads); err != nil {
		return nil, err
	}

	report := &domain.StatusReport{
		Campaign: domain.CampaignStatus{
			ID:               campaign.ID,
			Name:             campaign.Name,
			Status:           domain.Status(campaign.Status),
			Objective:        campaign.Objective,
			DailyBudgetCents: parseBudget(campaign.DailyBudget),
		},
	}
	for _, s := range adSets.Data {
		report.AdSets = append(report.AdSets, domain.AdSetStatus{
			ID:               s.ID,
			Name:             s.Name,
			Status:           domain.Status(s.Status),
			DailyBudgetCents: parseBudget(s.DailyBudget),
		})
	}
	for _, a := range ads.Data {
		report.Ads = append(report.Ads, domain.AdStatus{
			ID:              a.ID,
			Name:            a.Name,
			Status:          domain.Status(a.Status),
			EffectiveStatus: a.EffectiveStatus,
		})
	}
	return report, nil
}

// SetStatus updates the configured status of a campaign.
func (c *Client) SetStatus(ctx context.Context, campaignID string, status domain.Status) error {
	params := url.Values{}
	params.Set("status", string(status))
	return c.postForm(ctx, campaignID, params, nil)
}

// DeleteCampaign deletes by setting status DELETED, which is how the
// Graph API models deletion. The API tolerates re-deleting an
// already-deleted campaign, so the operation is idempotent end to end.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID string) error {
	return c.SetStatus(ctx, campaignID, domain.StatusDeleted)
}

// parseBudget converts the Graph API's stringly daily_budget field.
// Missing or malformed values collapse to zero rather than failing the
// whole report.
func parseBudget(raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
