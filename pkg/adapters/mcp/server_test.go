package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcpAdapter "github.com/aretw0/spotlight/pkg/adapters/mcp"
	"github.com/aretw0/spotlight/pkg/adapters/memory"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/placement"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client *client.Client
	stores map[string]*memory.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loader, err := memory.NewLoader(
		domain.TourDefinition{
			Name: "main",
			Key:  "hasSeenMainTour",
			Steps: []domain.StepSpec{
				{Title: "Welcome", Position: domain.PositionCenter, Buttons: []domain.ButtonKind{domain.ButtonStart}},
				{Target: "#search", Title: "Search", Position: domain.PositionBottom, Buttons: []domain.ButtonKind{domain.ButtonDone}},
			},
		},
		domain.TourDefinition{
			Name:  "aiTraining",
			Key:   "hasSeenAITrainingTour",
			Steps: []domain.StepSpec{{Title: "Models", Buttons: []domain.ButtonKind{domain.ButtonDone}}},
		},
	)
	require.NoError(t, err)

	f := &fixture{stores: map[string]*memory.Store{}}
	stores := func(profile string) (ports.SettingsStore, error) {
		if profile == "broken" {
			return nil, errors.New("backend down")
		}
		if profile == "" {
			profile = "default"
		}
		s, ok := f.stores[profile]
		if !ok {
			s = memory.NewStore()
			f.stores[profile] = s
		}
		return s, nil
	}

	srv := mcpAdapter.NewServer(loader, stores, "1.2.3")
	c, err := client.NewInProcessClient(srv.MCPServer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))
	_, err = c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo:      mcp.Implementation{Name: "spotlight-test", Version: "0.0.0"},
		},
	})
	require.NoError(t, err)

	f.client = c
	return f
}

func (f *fixture) call(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := f.client.CallTool(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	return res
}

func decode(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, res.IsError, "tool returned an error: %+v", res.Content)
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(text.Text), v))
}

func TestServer_ListsTools(t *testing.T) {
	f := newFixture(t)

	res, err := f.client.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"list_tours", "get_tour", "tour_status", "reset_progress", "place_tooltip"}, names)
}

func TestServer_ListAndGetTour(t *testing.T) {
	f := newFixture(t)

	var list mcpAdapter.TourList
	decode(t, f.call(t, "list_tours", nil), &list)
	assert.Equal(t, []string{"aiTraining", "main"}, list.Tours)

	var tour domain.TourDefinition
	decode(t, f.call(t, "get_tour", map[string]any{"name": "main"}), &tour)
	assert.Equal(t, "hasSeenMainTour", tour.Key)
	require.Len(t, tour.Steps, 2)
	assert.Equal(t, "#search", tour.Steps[1].Target)

	res := f.call(t, "get_tour", map[string]any{"name": "nope"})
	assert.True(t, res.IsError)
}

func TestServer_StatusAndReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	status := func(profile string) mcpAdapter.TourStatus {
		var s mcpAdapter.TourStatus
		decode(t, f.call(t, "tour_status", map[string]any{"name": "main", "profile": profile}), &s)
		return s
	}

	s := status("alice")
	assert.False(t, s.Seen)
	assert.True(t, s.Eligible)

	require.NoError(t, f.stores["alice"].Set(ctx, "hasSeenMainTour", true))
	s = status("alice")
	assert.True(t, s.Seen)
	assert.False(t, s.Eligible)
	assert.True(t, status("bob").Eligible, "profiles are isolated")

	require.NoError(t, f.stores["alice"].Set(ctx, domain.ForceShowKey, true))
	s = status("alice")
	assert.True(t, s.ForceShow)
	assert.True(t, s.Eligible)

	var reset mcpAdapter.ResetResult
	decode(t, f.call(t, "reset_progress", map[string]any{"profile": "alice"}), &reset)
	assert.True(t, reset.Reset)
	settings, err := f.stores["alice"].Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, settings)

	assert.True(t, f.call(t, "tour_status", map[string]any{"name": "main", "profile": "broken"}).IsError)
	assert.True(t, f.call(t, "reset_progress", map[string]any{"profile": "broken"}).IsError)
}

func TestServer_DefaultProfile(t *testing.T) {
	f := newFixture(t)

	var reset mcpAdapter.ResetResult
	decode(t, f.call(t, "reset_progress", nil), &reset)
	assert.True(t, reset.Reset)
	assert.Contains(t, f.stores, "default")
}

func TestServer_PlaceTooltip(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		args map[string]any
		want placement.Placement
	}{
		{
			name: "Flips Left Near Right Edge",
			args: map[string]any{
				"target_left": 1200, "target_top": 100, "target_width": 60, "target_height": 40,
				"position": "right",
				"tooltip_width": 300, "tooltip_height": 150,
				"viewport_width": 1280, "viewport_height": 800,
			},
			want: placement.Placement{Left: 1200 - 300 - 20, Top: 45, MaxWidth: 300, Anchor: placement.AnchorTopLeft},
		},
		{
			name: "Center",
			args: map[string]any{"position": "center", "viewport_width": 1000, "viewport_height": 600},
			want: placement.Placement{Left: 500, Top: 300, MaxWidth: domain.CenterMaxWidth, Anchor: placement.AnchorCenter},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got placement.Placement
			decode(t, f.call(t, "place_tooltip", tt.args), &got)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Rejects Bad Input", func(t *testing.T) {
		assert.True(t, f.call(t, "place_tooltip", map[string]any{"viewport_width": 0, "viewport_height": 600}).IsError)
		assert.True(t, f.call(t, "place_tooltip", map[string]any{"position": "diagonal", "viewport_width": 800, "viewport_height": 600}).IsError)
	})
}

func TestServer_Resources(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	read := func(uri string) string {
		res, err := f.client.ReadResource(ctx, mcp.ReadResourceRequest{Params: mcp.ReadResourceParams{URI: uri}})
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)
		var text mcp.TextResourceContents
		switch c := res.Contents[0].(type) {
		case mcp.TextResourceContents:
			text = c
		case *mcp.TextResourceContents:
			text = *c
		default:
			t.Fatalf("unexpected resource contents %T", c)
		}
		assert.Equal(t, "application/json", text.MIMEType)
		return text.Text
	}

	assert.JSONEq(t, `{"tours":["aiTraining","main"]}`, read("spotlight://tours"))

	var tour domain.TourDefinition
	require.NoError(t, json.Unmarshal([]byte(read("spotlight://tours/aiTraining")), &tour))
	assert.Equal(t, "hasSeenAITrainingTour", tour.Key)
}
