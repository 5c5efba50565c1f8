package port

import (
	"context"
	"fmt"

	"meta-ads/internal/core/domain"
)

// CampaignClient is the outbound port to the advertising platform. Two
// implementations exist: the live Graph API adapter and the in-memory
// simulator used for dry runs. Both honour the same contract so the
// orchestrator can swap them freely.
//
// All objects are created PAUSED; no method accepts a status at
// creation time.
type CampaignClient interface {
	// CreateCampaign creates the top-level campaign object and returns
	// its id.
	CreateCampaign(ctx context.Context, spec domain.CampaignSpec) (string, error)
	// CreateAdSet creates an ad set beneath the campaign carrying the
	// spec's targeting and daily budget. Unknown campaign ids yield a
	// NotFoundError.
	CreateAdSet(ctx context.Context, campaignID string, spec domain.CampaignSpec) (string, error)
	// CreateCreative uploads the creative asset and registers the
	// rendered ad content. The live variant fails with ValidationError
	// when the image file cannot be read; the simulator does not touch
	// the filesystem.
	CreateCreative(ctx context.Context, creative domain.CreativeSpec) (string, error)
	// CreateAd binds a creative to an ad set, producing the leaf object
	// that is actually served.
	CreateAd(ctx context.Context, adSetID, creativeID, name string) (string, error)

	// GetStatus reports the campaign and its children. Unknown ids
	// yield a NotFoundError.
	GetStatus(ctx context.Context, campaignID string) (*domain.StatusReport, error)
	// SetStatus pauses or activates a campaign.
	SetStatus(ctx context.Context, campaignID string, status domain.Status) error
	// DeleteCampaign deletes a campaign. Deleting an already-deleted
	// campaign is a no-op success.
	DeleteCampaign(ctx context.Context, campaignID string) error
}

// AuthError signals bad, expired or missing credentials. It is never
// retried; the operator has to re-authenticate manually.
type AuthError struct {
	Message string
	Code    int
}

func (e *AuthError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("authentication failed (code %d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// NotFoundError signals a campaign id unknown to the client instance.
type NotFoundError struct {
	ObjectID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("campaign object %q not found", e.ObjectID)
}

// RemoteUnavailableError signals a transient network or API failure.
// It is the only error class eligible for retry.
type RemoteUnavailableError struct {
	Cause error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("marketing api unavailable: %v", e.Cause)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Cause }
