package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateCampaignInput is the create_meta_campaign tool input. Flat
// fields keep the schema friendly to MCP clients; they are folded into
// a domain.CampaignSpec by the handler.
type CreateCampaignInput struct {
	CampaignName     string   `json:"campaign_name" jsonschema:"campaign name"`
	AdSetName        string   `json:"ad_set_name" jsonschema:"ad set name"`
	Objective        string   `json:"objective,omitempty" jsonschema:"campaign objective, defaults to OUTCOME_TRAFFIC"`
	DailyBudgetCents int64    `json:"daily_budget_cents,omitempty" jsonschema:"daily budget in cents; 1000 = $10/day"`
	OptimizationGoal string   `json:"optimization_goal,omitempty" jsonschema:"optimization goal, defaults to LINK_CLICKS"`
	Countries        []string `json:"countries,omitempty" jsonschema:"targeted country codes, defaults to US"`
	AgeMin           int      `json:"age_min,omitempty" jsonschema:"minimum age, defaults to 18"`
	AgeMax           int      `json:"age_max,omitempty" jsonschema:"maximum age, defaults to 65"`
	Interests        []string `json:"interests,omitempty" jsonschema:"interest ids for flexible targeting"`
	ImagePath        string   `json:"image_path" jsonschema:"absolute path to the ad image on disk"`
	PrimaryText      string   `json:"primary_text" jsonschema:"ad body copy"`
	Headline         string   `json:"headline" jsonschema:"ad headline"`
	Description      string   `json:"description,omitempty" jsonschema:"ad description text"`
	CallToAction     string   `json:"call_to_action,omitempty" jsonschema:"call-to-action button, defaults to LEARN_MORE"`
	Link             string   `json:"link" jsonschema:"destination URL"`
	DryRun           *bool    `json:"dry_run,omitempty" jsonschema:"simulate all calls without spending money; defaults to true"`
}

// CreateCampaignResult reports the minted identifiers. When creation
// failed partway, FailedStep and Error name the failure and the id
// fields list what was already created so the operator can clean up.
type CreateCampaignResult struct {
	DryRun     bool   `json:"dry_run" jsonschema:"whether the run was simulated"`
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"created campaign id"`
	AdSetID    string `json:"ad_set_id,omitempty" jsonschema:"created ad set id"`
	CreativeID string `json:"creative_id,omitempty" jsonschema:"created creative id"`
	AdID       string `json:"ad_id,omitempty" jsonschema:"created ad id"`
	Status     string `json:"status,omitempty" jsonschema:"initial campaign status, always PAUSED"`
	FailedStep string `json:"failed_step,omitempty" jsonschema:"creation step that failed, when partial"`
	Error      string `json:"error,omitempty" jsonschema:"failure detail, when partial"`
}

// CampaignIDInput addresses a single campaign.
type CampaignIDInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign id"`
}

// StatusChangeResult reports the outcome of a lifecycle operation.
type StatusChangeResult struct {
	Success    bool   `json:"success" jsonschema:"whether the operation succeeded"`
	CampaignID string `json:"campaign_id" jsonschema:"campaign id"`
	Status     string `json:"status" jsonschema:"campaign status after the operation"`
}

// CampaignInfo is the campaign section of a status report.
type CampaignInfo struct {
	ID               string `json:"id" jsonschema:"campaign id"`
	Name             string `json:"name" jsonschema:"campaign name"`
	Status           string `json:"status" jsonschema:"configured status"`
	Objective        string `json:"objective" jsonschema:"campaign objective"`
	DailyBudgetCents int64  `json:"daily_budget_cents,omitempty" jsonschema:"daily budget in cents"`
}

// AdSetInfo is one ad set row of a status report.
type AdSetInfo struct {
	ID               string `json:"id" jsonschema:"ad set id"`
	Name             string `json:"name" jsonschema:"ad set name"`
	Status           string `json:"status" jsonschema:"configured status"`
	DailyBudgetCents int64  `json:"daily_budget_cents,omitempty" jsonschema:"daily budget in cents"`
}

// AdInfo is one ad row of a status report.
type AdInfo struct {
	ID              string `json:"id" jsonschema:"ad id"`
	Name            string `json:"name" jsonschema:"ad name"`
	Status          string `json:"status" jsonschema:"configured status"`
	EffectiveStatus string `json:"effective_status,omitempty" jsonschema:"review and delivery state"`
}

// StatusReportResult is the get_campaign_status tool output.
type StatusReportResult struct {
	Campaign CampaignInfo `json:"campaign" jsonschema:"campaign state"`
	AdSets   []AdSetInfo  `json:"ad_sets" jsonschema:"ad sets beneath the campaign"`
	Ads      []AdInfo     `json:"ads" jsonschema:"ads beneath the campaign"`
}

// CreateCampaignTool defines the MCP tool schema for campaign creation.
func CreateCampaignTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_meta_campaign",
		Description: "Create a complete Meta ad campaign: campaign, ad set, creative, and ad. Simulates by default (dry_run=true); set dry_run=false to deploy. Campaigns always start PAUSED.",
	}
}

// GetCampaignStatusTool defines the MCP tool schema for status reports.
func GetCampaignStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_campaign_status",
		Description: "Get the status of a Meta campaign including its ad sets and ads",
	}
}

// PauseCampaignTool defines the MCP tool schema for pausing.
func PauseCampaignTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pause_campaign",
		Description: "Pause a live Meta campaign. Safe to call on already-paused campaigns.",
	}
}

// ActivateCampaignTool defines the MCP tool schema for activation.
func ActivateCampaignTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "activate_campaign",
		Description: "Activate (unpause) a Meta campaign. This will resume ad spending.",
	}
}

// DeleteCampaignTool defines the MCP tool schema for deletion.
func DeleteCampaignTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_campaign",
		Description: "Permanently delete a Meta campaign. This cannot be undone.",
	}
}
