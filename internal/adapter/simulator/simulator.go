package simulator

import (
	"context"
	"fmt"
	"sync"

	"meta-ads/internal/core/domain"
	"meta-ads/internal/core/port"
)

// idPrefix makes simulated ids recognizable while keeping the 17-digit
// numeric shape of real Graph API object ids.
const idPrefix = "1202"

// Client is the dry-run implementation of the CampaignClient port. It
// performs no network or filesystem I/O: ids come from a monotonic
// counter and object state lives in an in-memory store scoped to the
// process. Structurally invalid specs are still rejected so a dry run
// catches spec-shape mistakes before any real spending.
//
// The store is guarded by a single mutex; call volume is
// human-interaction-paced so nothing finer-grained is warranted.
type Client struct {
	mu        sync.Mutex
	next      int64
	campaigns map[string]*campaignState
	creatives map[string]domain.CreativeSpec
	adSets    map[string]string // ad set id -> campaign id
}

type campaignState struct {
	spec   domain.CampaignSpec
	status domain.Status
	adSets []adSetRecord
	ads    []adRecord
}

type adSetRecord struct {
	id          string
	name        string
	status      domain.Status
	budgetCents int64
}

type adRecord struct {
	id         string
	name       string
	creativeID string
	status     domain.Status
}

// New creates an empty dry-run client.
func New() *Client {
	return &Client{
		campaigns: make(map[string]*campaignState),
		creatives: make(map[string]domain.CreativeSpec),
		adSets:    make(map[string]string),
	}
}

// Owns reports whether the id was minted by this simulator instance.
// The orchestrator uses it to keep synthetic ids away from the live API.
func (c *Client) Owns(campaignID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.campaigns[campaignID]; ok {
		return true
	}
	if _, ok := c.adSets[campaignID]; ok {
		return true
	}
	_, ok := c.creatives[campaignID]
	return ok
}

// mintID must be called with the mutex held.
func (c *Client) mintID() string {
	c.next++
	return fmt.Sprintf("%s%013d", idPrefix, c.next)
}

// CreateCampaign registers a campaign in the store. The spec is
// validated exactly as the live client would validate it structurally.
func (c *Client) CreateCampaign(_ context.Context, spec domain.CampaignSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.mintID()
	c.campaigns[id] = &campaignState{spec: spec, status: domain.StatusPaused}
	return id, nil
}

// CreateAdSet registers an ad set beneath an existing campaign.
func (c *Client) CreateAdSet(_ context.Context, campaignID string, spec domain.CampaignSpec) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	camp, ok := c.campaigns[campaignID]
	if !ok || camp.status == domain.StatusDeleted {
		return "", &port.NotFoundError{ObjectID: campaignID}
	}
	id := c.mintID()
	camp.adSets = append(camp.adSets, adSetRecord{
		id:          id,
		name:        spec.AdSetName,
		status:      domain.StatusPaused,
		budgetCents: spec.DailyBudgetCents,
	})
	c.adSets[id] = campaignID
	return id, nil
}

// CreateCreative registers a creative. Unreachable image paths are
// accepted on purpose: the live client would only discover them at
// upload time, and a dry run must not require the asset to exist.
func (c *Client) CreateCreative(_ context.Context, creative domain.CreativeSpec) (string, error) {
	if err := creative.Validate(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.mintID()
	c.creatives[id] = creative
	return id, nil
}

// CreateAd binds a creative to an ad set.
func (c *Client) CreateAd(_ context.Context, adSetID, creativeID, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	campaignID, ok := c.adSets[adSetID]
	if !ok {
		return "", &port.NotFoundError{ObjectID: adSetID}
	}
	if _, ok := c.creatives[creativeID]; !ok {
		return "", &port.NotFoundError{ObjectID: creativeID}
	}
	id := c.mintID()
	camp := c.campaigns[campaignID]
	camp.ads = append(camp.ads, adRecord{
		id:         id,
		name:       name,
		creativeID: creativeID,
		status:     domain.StatusPaused,
	})
	return id, nil
}

// GetStatus reports the campaign and its children. Deleted campaigns
// are still reported, mirroring the real API.
func (c *Client) GetStatus(_ context.Context, campaignID string) (*domain.StatusReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	camp, ok := c.campaigns[campaignID]
	if !ok {
		return nil, &port.NotFoundError{ObjectID: campaignID}
	}
	report := &domain.StatusReport{
		Campaign: domain.CampaignStatus{
			ID:               campaignID,
			Name:             camp.spec.Name,
			Status:           camp.status,
			Objective:        camp.spec.Objective,
			DailyBudgetCents: camp.spec.DailyBudgetCents,
		},
	}
	for _, s := range camp.adSets {
		report.AdSets = append(report.AdSets, domain.AdSetStatus{
			ID:               s.id,
			Name:             s.name,
			Status:           s.status,
			DailyBudgetCents: s.budgetCents,
		})
	}
	for _, a := range camp.ads {
		report.Ads = append(report.Ads, domain.AdStatus{
			ID:              a.id,
			Name:            a.name,
			Status:          a.status,
			EffectiveStatus: string(a.status),
		})
	}
	return report, nil
}

// SetStatus pauses or activates a campaign. Deleted campaigns cannot
// be mutated.
func (c *Client) SetStatus(_ context.Context, campaignID string, status domain.Status) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	camp, ok := c.campaigns[campaignID]
	if !ok || camp.status == domain.StatusDeleted {
		return &port.NotFoundError{ObjectID: campaignID}
	}
	if !camp.status.CanTransition(status) {
		return &port.NotFoundError{ObjectID: campaignID}
	}
	camp.status = status
	return nil
}

// DeleteCampaign marks a campaign DELETED. Deleting twice succeeds.
func (c *Client) DeleteCampaign(_ context.Context, campaignID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	camp, ok := c.campaigns[campaignID]
	if !ok {
		return &port.NotFoundError{ObjectID: campaignID}
	}
	camp.status = domain.StatusDeleted
	return nil
}
