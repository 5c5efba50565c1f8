package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"meta-ads/internal/core/domain"
	"meta-ads/internal/core/port"
)

// CreateCampaign creates the top-level campaign object. Status is
// pinned to PAUSED here; the spec cannot request immediate activation.
func (c *Client) CreateCampaign(ctx context.Context, spec domain.CampaignSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	categories, err := json.Marshal(specialAdCategories(spec.SpecialAdCategories))
	if err != nil {
		return "", fmt.Errorf("encode special_ad_categories: %w", err)
	}

	params := url.Values{}
	params.Set("name", spec.Name)
	params.Set("objective", spec.Objective)
	params.Set("status", string(domain.StatusPaused))
	params.Set("special_ad_categories", string(categories))
	params.Set("is_adset_budget_sharing_enabled", "false")

	var resp idResponse
	if err := c.postForm(ctx, c.creds.ActID()+"/campaigns", params, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CreateAdSet creates an ad set beneath the campaign with the spec's
// budget and targeting.
func (c *Client) CreateAdSet(ctx context.Context, campaignID string, spec domain.CampaignSpec) (string, error) {
	targeting, err := json.Marshal(targetingSpec(spec.Targeting))
	if err != nil {
		return "", fmt.Errorf("encode targeting: %w", err)
	}

	params := url.Values{}
	params.Set("name", spec.AdSetName)
	params.Set("campaign_id", campaignID)
	params.Set("daily_budget", strconv.FormatInt(spec.DailyBudgetCents, 10))
	params.Set("billing_event", spec.BillingEvent)
	params.Set("optimization_goal", spec.OptimizationGoal)
	params.Set("bid_strategy", spec.BidStrategy)
	params.Set("status", string(domain.StatusPaused))
	params.Set("targeting", string(targeting))

	var resp idResponse
	if err := c.postForm(ctx, c.creds.ActID()+"/adsets", params, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CreateCreative uploads the image and registers the creative bound to
// the configured page. An unreadable image is a validation failure: the
// spec referenced an asset that does not exist.
func (c *Client) CreateCreative(ctx context.Context, creative domain.CreativeSpec) (string, error) {
	if err := creative.Validate(); err != nil {
		return "", err
	}
	imageHash, err := c.uploadImage(ctx, creative.ImagePath)
	if err != nil {
		return "", err
	}

	storySpec, err := json.Marshal(map[string]any{
		"page_id": c.creds.PageID,
		"link_data": map[string]any{
			"image_hash":  imageHash,
			"link":        creative.Link,
			"message":     creative.PrimaryText,
			"name":        creative.Headline,
			"description": creative.Description,
			"call_to_action": map[string]any{
				"type":  creative.CallToAction,
				"value": map[string]any{"link": creative.Link},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode object_story_spec: %w", err)
	}

	params := url.Values{}
	params.Set("name", creative.Name)
	params.Set("object_story_spec", string(storySpec))

	var resp idResponse
	if err := c.postForm(ctx, c.creds.ActID()+"/adcreatives", params, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CreateAd binds the creative to the ad set, again created PAUSED.
func (c *Client) CreateAd(ctx context.Context, adSetID, creativeID, name string) (string, error) {
	creativeRef, err := json.Marshal(map[string]string{"creative_id": creativeID})
	if err != nil {
		return "", fmt.Errorf("encode creative reference: %w", err)
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("adset_id", adSetID)
	params.Set("creative", string(creativeRef))
	params.Set("status", string(domain.StatusPaused))

	var resp idResponse
	if err := c.postForm(ctx, c.creds.ActID()+"/ads", params, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// uploadImage uploads an ad image and returns its hash.
func (c *Client) uploadImage(ctx context.Context, imagePath string) (string, error) {
	if err := c.checkCredentials(); err != nil {
		return "", err
	}
	file, err := os.Open(imagePath)
	if err != nil {
		return "", &domain.ValidationError{
			Field:  "creative.image_path",
			Reason: fmt.Sprintf("image %q is not readable: %v", imagePath, err),
		}
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("access_token", c.creds.AccessToken); err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	part, err := writer.CreateFormFile("filename", filepath.Base(imagePath))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", &domain.ValidationError{
			Field:  "creative.image_path",
			Reason: fmt.Sprintf("read image %q: %v", imagePath, err),
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}

	endpoint := c.creds.ActID() + "/adimages"
	var resp struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
	}
	err = c.withRetry(ctx, endpoint, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/"+endpoint, bytes.NewReader(buf.Bytes()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return c.send(req, endpoint)
	}, &resp)
	if err != nil {
		return "", err
	}
	for _, img := range resp.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", &port.RemoteUnavailableError{Cause: fmt.Errorf("image upload response carried no hash")}
}

// targetingSpec renders the domain targeting into the Graph API shape.
func targetingSpec(t domain.Targeting) map[string]any {
	genders := t.Genders
	if len(genders) == 0 {
		genders = []int{0}
	}
	spec := map[string]any{
		"age_min": t.AgeMin,
		"age_max": t.AgeMax,
		"genders": genders,
		"geo_locations": map[string]any{
			"countries": t.Countries,
		},
	}
	if len(t.Interests) > 0 {
		interests := make([]map[string]string, 0, len(t.Interests))
		for _, id := range t.Interests {
			interests = append(interests, map[string]string{"id": id})
		}
		spec["flexible_spec"] = []map[string]any{{"interests": interests}}
	}
	spec["publisher_platforms"] = t.Platforms
	for _, platform := range t.Platforms {
		switch platform {
		case "facebook":
			spec["facebook_positions"] = []string{"feed"}
		case "instagram":
			spec["instagram_positions"] = []string{"stream", "story", "reels"}
		}
	}
	return spec
}

func specialAdCategories(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return categories
}
