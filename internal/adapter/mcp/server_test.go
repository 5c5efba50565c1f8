package mcpadapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ads/internal/adapter/simulator"
	"meta-ads/internal/adapter/usecase"
)

// startSession connects an MCP client to the server over in-memory
// transports. The planner is backed by two simulators, so every tool
// call stays local.
func startSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	planner := usecase.NewCampaignUseCase(simulator.New(), simulator.New(), nil)
	server := NewServer(planner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	go func() {
		_ = server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(ctx, 2*time.Second)
	defer connectCancel()

	session, err := client.Connect(connectCtx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func decodeStructured[T any](t *testing.T, raw any) T {
	t.Helper()
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func createArgs() map[string]any {
	return map[string]any{
		"campaign_name":      "Launch",
		"ad_set_name":        "Launch - US",
		"daily_budget_cents": 3000,
		"image_path":         "/tmp/banner.png",
		"primary_text":       "Now available",
		"headline":           "Try it",
		"link":               "https://example.com",
	}
}

func TestServerListsFiveTools(t *testing.T) {
	session := startSession(t)

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"create_meta_campaign",
		"get_campaign_status",
		"pause_campaign",
		"activate_campaign",
		"delete_campaign",
	}, names)
}

func TestDryRunCreateReturnsSyntheticIDs(t *testing.T) {
	session := startSession(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "create_meta_campaign",
		Arguments: createArgs(),
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "dry run must succeed: %+v", result.Content)

	output := decodeStructured[CreateCampaignResult](t, result.StructuredContent)
	assert.True(t, output.DryRun)
	assert.Equal(t, "PAUSED", output.Status)
	for _, id := range []string{output.CampaignID, output.AdSetID, output.CreativeID, output.AdID} {
		assert.NotEmpty(t, id)
	}
}

func TestActivateThenStatusReflectsActive(t *testing.T) {
	session := startSession(t)
	ctx := context.Background()

	created, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "create_meta_campaign",
		Arguments: createArgs(),
	})
	require.NoError(t, err)
	require.False(t, created.IsError)
	campaignID := decodeStructured[CreateCampaignResult](t, created.StructuredContent).CampaignID

	activated, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "activate_campaign",
		Arguments: map[string]any{"campaign_id": campaignID},
	})
	require.NoError(t, err)
	require.False(t, activated.IsError)
	change := decodeStructured[StatusChangeResult](t, activated.StructuredContent)
	assert.True(t, change.Success)
	assert.Equal(t, "ACTIVE", change.Status)

	status, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_campaign_status",
		Arguments: map[string]any{"campaign_id": campaignID},
	})
	require.NoError(t, err)
	require.False(t, status.IsError)
	report := decodeStructured[StatusReportResult](t, status.StructuredContent)
	assert.Equal(t, "ACTIVE", report.Campaign.Status)
	assert.Len(t, report.AdSets, 1)
	assert.Len(t, report.Ads, 1)
}

func TestDeleteIsIdempotentAcrossCalls(t *testing.T) {
	session := startSession(t)
	ctx := context.Background()

	created, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "create_meta_campaign",
		Arguments: createArgs(),
	})
	require.NoError(t, err)
	campaignID := decodeStructured[CreateCampaignResult](t, created.StructuredContent).CampaignID

	for i := 0; i < 2; i++ {
		deleted, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "delete_campaign",
			Arguments: map[string]any{"campaign_id": campaignID},
		})
		require.NoError(t, err)
		require.False(t, deleted.IsError, "delete call %d must succeed", i+1)
		change := decodeStructured[StatusChangeResult](t, deleted.StructuredContent)
		assert.True(t, change.Success)
		assert.Equal(t, "DELETED", change.Status)
	}
}

func TestPauseUnknownCampaignIsToolError(t *testing.T) {
	session := startSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "pause_campaign",
		Arguments: map[string]any{"campaign_id": "12029999999999999"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestInvalidSpecIsToolError(t *testing.T) {
	session := startSession(t)

	args := createArgs()
	args["daily_budget_cents"] = -1

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "create_meta_campaign",
		Arguments: args,
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
