package simulator

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ads/internal/core/domain"
	"meta-ads/internal/core/port"
)

var syntheticID = regexp.MustCompile(`^1202\d{13}$`)

func testSpec() domain.CampaignSpec {
	return domain.CampaignSpec{
		Name:             "Launch",
		AdSetName:        "Launch - US",
		Objective:        "OUTCOME_TRAFFIC",
		DailyBudgetCents: 3000,
		Creative: domain.CreativeSpec{
			Name:        "Launch - Creative",
			ImagePath:   "/nonexistent/banner.png",
			PrimaryText: "Now available",
			Headline:    "Try it",
			Link:        "https://example.com",
		},
	}
}

// createTree drives the full four-step sequence against the simulator
// and returns the minted ids.
func createTree(t *testing.T, c *Client) (campaignID, adSetID, creativeID, adID string) {
	t.Helper()
	ctx := context.Background()
	spec := testSpec()

	campaignID, err := c.CreateCampaign(ctx, spec)
	require.NoError(t, err)
	adSetID, err = c.CreateAdSet(ctx, campaignID, spec)
	require.NoError(t, err)
	creativeID, err = c.CreateCreative(ctx, spec.Creative)
	require.NoError(t, err)
	adID, err = c.CreateAd(ctx, adSetID, creativeID, spec.Name)
	require.NoError(t, err)
	return campaignID, adSetID, creativeID, adID
}

func TestMintsSyntheticIDsAndStartsPaused(t *testing.T) {
	c := New()
	campaignID, adSetID, creativeID, adID := createTree(t, c)

	for _, id := range []string{campaignID, adSetID, creativeID, adID} {
		assert.Regexp(t, syntheticID, id)
	}

	report, err := c.GetStatus(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, report.Campaign.Status)
	require.Len(t, report.AdSets, 1)
	assert.Equal(t, domain.StatusPaused, report.AdSets[0].Status)
	assert.Equal(t, int64(3000), report.AdSets[0].DailyBudgetCents)
	require.Len(t, report.Ads, 1)
	assert.Equal(t, domain.StatusPaused, report.Ads[0].Status)
}

func TestAcceptsUnreachableImageButRejectsInvalidSpec(t *testing.T) {
	c := New()
	ctx := context.Background()

	// The image path points nowhere; a dry run must not care.
	creative := testSpec().Creative
	_, err := c.CreateCreative(ctx, creative)
	require.NoError(t, err)

	// Shape errors must still be caught before real spending.
	creative.Headline = ""
	_, err = c.CreateCreative(ctx, creative)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	spec := testSpec()
	spec.DailyBudgetCents = -1
	_, err = c.CreateCampaign(ctx, spec)
	require.ErrorAs(t, err, &verr)
}

func TestAdSetRequiresKnownCampaign(t *testing.T) {
	c := New()
	_, err := c.CreateAdSet(context.Background(), "12020000000000099", testSpec())
	var nf *port.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestActivateReflectsInStatus(t *testing.T) {
	c := New()
	ctx := context.Background()
	campaignID, _, _, _ := createTree(t, c)

	require.NoError(t, c.SetStatus(ctx, campaignID, domain.StatusActive))

	report, err := c.GetStatus(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, report.Campaign.Status)

	// Pausing an active campaign works, and pausing twice is safe.
	require.NoError(t, c.SetStatus(ctx, campaignID, domain.StatusPaused))
	require.NoError(t, c.SetStatus(ctx, campaignID, domain.StatusPaused))
}

func TestSetStatusUnknownCampaign(t *testing.T) {
	c := New()
	err := c.SetStatus(context.Background(), "nonexistent", domain.StatusPaused)
	var nf *port.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDeleteIsIdempotent(t *testing.T) {
	c := New()
	ctx := context.Background()
	campaignID, _, _, _ := createTree(t, c)

	require.NoError(t, c.DeleteCampaign(ctx, campaignID))
	require.NoError(t, c.DeleteCampaign(ctx, campaignID))

	// Deleted campaigns are still reported but cannot be mutated.
	report, err := c.GetStatus(ctx, campaignID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, report.Campaign.Status)

	err = c.SetStatus(ctx, campaignID, domain.StatusActive)
	var nf *port.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOwnsTracksMintedIDs(t *testing.T) {
	c := New()
	campaignID, adSetID, creativeID, _ := createTree(t, c)

	assert.True(t, c.Owns(campaignID))
	assert.True(t, c.Owns(adSetID))
	assert.True(t, c.Owns(creativeID))
	assert.False(t, c.Owns("123456789012345"))
}

// TestConcurrentMintingYieldsUniqueIDs ensures the mutex around the
// counter prevents duplicate ids under parallel dry runs.
func TestConcurrentMintingYieldsUniqueIDs(t *testing.T) {
	c := New()
	ctx := context.Background()

	const workers = 20
	ids := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			id, err := c.CreateCampaign(ctx, testSpec())
			if err == nil {
				ids[i] = id
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
