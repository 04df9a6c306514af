package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	spotlighthttp "github.com/aretw0/spotlight/pkg/adapters/http"
	"github.com/aretw0/spotlight/pkg/adapters/memory"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/observability"
	"github.com/aretw0/spotlight/pkg/placement"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileStores struct {
	mu     sync.Mutex
	stores map[string]*memory.Store
	err    error
}

func (p *profileStores) get(profile string) (ports.SettingsStore, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	if p.stores == nil {
		p.stores = make(map[string]*memory.Store)
	}
	s, ok := p.stores[profile]
	if !ok {
		s = memory.NewStore()
		p.stores[profile] = s
	}
	return s, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *profileStores) {
	t.Helper()
	loader, err := memory.NewLoader(domain.TourDefinition{
		Name: "main",
		Key:  "hasSeenMainTour",
		Steps: []domain.StepSpec{
			{Title: "Welcome", Position: domain.PositionCenter, Buttons: []domain.ButtonKind{domain.ButtonStart}},
		},
	})
	require.NoError(t, err)

	stores := &profileStores{}
	reg := prometheus.NewRegistry()
	handler := spotlighthttp.NewHandler(loader, stores.get,
		spotlighthttp.WithVersion("1.2.3"),
		spotlighthttp.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, stores
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestServer_Tours(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/tours", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, []string{"main"}, names)

	resp = do(t, http.MethodGet, srv.URL+"/tours/main", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tour domain.TourDefinition
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tour))
	assert.Equal(t, "hasSeenMainTour", tour.Key)
	assert.Len(t, tour.Steps, 1)

	resp = do(t, http.MethodGet, srv.URL+"/tours/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_SettingsLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL + "/profiles/alice"

	resp := do(t, http.MethodGet, base+"/settings/hasSeenMainTour", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodPut, base+"/settings/hasSeenMainTour", `{"value": true}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, base+"/settings/hasSeenMainTour", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var v spotlighthttp.SettingValue
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.True(t, v.Value)

	resp = do(t, http.MethodGet, base+"/settings", "")
	var all map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.Equal(t, map[string]bool{"hasSeenMainTour": true}, all)

	// Other profiles are isolated.
	resp = do(t, http.MethodGet, srv.URL+"/profiles/bob/settings", "")
	all = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.Empty(t, all)

	resp = do(t, http.MethodDelete, base+"/settings", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, base+"/settings/hasSeenMainTour", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_BadRequests(t *testing.T) {
	srv, stores := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"Malformed JSON", http.MethodPut, "/profiles/alice/settings/k", `{"value": `},
		{"Missing Value", http.MethodPut, "/profiles/alice/settings/k", `{}`},
		{"Wrong Value Type", http.MethodPut, "/profiles/alice/settings/k", `{"value": "yes"}`},
		{"Profile With Dot", http.MethodGet, "/profiles/a.b/settings", ""},
		{"Profile Too Long", http.MethodGet, "/profiles/" + strings.Repeat("a", 65) + "/settings", ""},
		{"Profile Traversal", http.MethodGet, "/profiles/..%2Fetc/settings", ""},
		{"Stream Bad Profile", http.MethodGet, "/profiles/a.b/events", ""},
		{"Zero Viewport", http.MethodPost, "/placement", `{"viewport": {"width": 0, "height": 0}}`},
		{"Missing Viewport", http.MethodPost, "/placement", `{"position": "top"}`},
		{"Unknown Position", http.MethodPost, "/placement", `{"position": "diagonal", "viewport": {"width": 800, "height": 600}}`},
		{"Negative Padding", http.MethodPost, "/placement", `{"padding": -1, "viewport": {"width": 800, "height": 600}}`},
		{"Unknown Event Type", http.MethodPost, "/events", `{"type":"mystery","tour":"main"}`},
		{"Event Without Tour", http.MethodPost, "/events", `{"type":"tour_start"}`},
		{"Unknown End Reason", http.MethodPost, "/events", `{"type":"tour_end","tour":"main","reason":"bored"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	stores.mu.Lock()
	defer stores.mu.Unlock()
	assert.NotContains(t, stores.stores, "a.b", "rejected profiles never reach the store factory")
}

func TestServer_StoreError(t *testing.T) {
	srv, stores := newTestServer(t)
	stores.err = errors.New("backend down")

	resp := do(t, http.MethodGet, srv.URL+"/profiles/alice/settings", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_TourStatus(t *testing.T) {
	srv, stores := newTestServer(t)
	ctx := context.Background()
	url := srv.URL + "/profiles/alice/tours/main/status"

	status := func() spotlighthttp.TourStatus {
		resp := do(t, http.MethodGet, url, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var s spotlighthttp.TourStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
		return s
	}

	assert.True(t, status().Eligible)

	store, _ := stores.get("alice")
	require.NoError(t, store.Set(ctx, "hasSeenMainTour", true))
	s := status()
	assert.True(t, s.Seen)
	assert.False(t, s.Eligible)

	require.NoError(t, store.Set(ctx, domain.ForceShowKey, true))
	s = status()
	assert.True(t, s.ForceShow)
	assert.True(t, s.Eligible)
}

func TestServer_Placement(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{
		"target": {"left": 1200, "top": 100, "width": 60, "height": 40},
		"position": "right",
		"tooltip": {"width": 300, "height": 150},
		"viewport": {"width": 1280, "height": 800}
	}`
	resp := do(t, http.MethodPost, srv.URL+"/placement", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p placement.Placement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	// No room on the right, so it flips left of the target.
	assert.Equal(t, 1200.0-300-20, p.Left)
	assert.Equal(t, 45.0, p.Top)
	assert.Equal(t, placement.AnchorTopLeft, p.Anchor)

	resp = do(t, http.MethodPost, srv.URL+"/placement", `{"position": "center", "viewport": {"width": 1000, "height": 600}}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, placement.Placement{Left: 500, Top: 300, MaxWidth: 500, Anchor: placement.AnchorCenter}, p)
}

func TestServer_InfoHealthMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/info", "")
	var info map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, "0.3.0", info["api_version"])

	resp = do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/tours", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_SettingsEvents(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/profiles/alice/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	readData := func() string {
		for lines.Scan() {
			if data, ok := strings.CutPrefix(lines.Text(), "data: "); ok {
				return data
			}
		}
		return ""
	}
	assert.Equal(t, "connected", readData())

	do(t, http.MethodPut, srv.URL+"/profiles/alice/settings/hasSeenMainTour", `{"value": true}`)
	assert.JSONEq(t, `{"type":"set","key":"hasSeenMainTour","value":true}`, readData())

	do(t, http.MethodPut, srv.URL+"/profiles/alice/settings/forceShowTour", `{"value": false}`)
	assert.JSONEq(t, `{"type":"set","key":"forceShowTour","value":false}`, readData())

	do(t, http.MethodDelete, srv.URL+"/profiles/alice/settings", "")
	assert.JSONEq(t, `{"type":"reset","value":false}`, readData())
}

func TestServer_Events(t *testing.T) {
	loader, err := memory.NewLoader(domain.TourDefinition{
		Name: "main", Key: "k", Steps: []domain.StepSpec{{Title: "Hi"}},
	})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	stores := &profileStores{}
	srv := httptest.NewServer(spotlighthttp.NewHandler(loader, stores.get,
		spotlighthttp.WithLifecycleHooks(metrics.Hooks()),
	))
	defer srv.Close()

	resp := do(t, http.MethodPost, srv.URL+"/events", `{"type":"tour_start","tour":"main","session_id":"s1","steps":3}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp = do(t, http.MethodPost, srv.URL+"/events", `{"type":"step_show","tour":"main","step_index":2}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp = do(t, http.MethodPost, srv.URL+"/events", `{"type":"tour_end","tour":"main","reason":"skipped","step_index":2}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToursStarted.WithLabelValues("main")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StepsShown.WithLabelValues("main", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToursEnded.WithLabelValues("main", "skipped")))

}

func TestStreamManager(t *testing.T) {
	sm := spotlighthttp.NewStreamManager()
	ch, unsubscribe := sm.Subscribe("alice")
	assert.Equal(t, 1, sm.Subscribers("alice"))

	sm.Broadcast("alice", "hello")
	sm.Broadcast("bob", "ignored")
	assert.Equal(t, "hello", <-ch)

	unsubscribe()
	assert.Equal(t, 0, sm.Subscribers("alice"))
	_, open := <-ch
	assert.False(t, open)
}

func TestStreamManager_SlowClient(t *testing.T) {
	sm := spotlighthttp.NewStreamManager()
	ch, unsubscribe := sm.Subscribe("alice")
	defer unsubscribe()

	for i := 0; i < cap(ch); i++ {
		assert.Zero(t, sm.Broadcast("alice", "fill"))
	}
	assert.Equal(t, 1, sm.Broadcast("alice", "overflow"))
	assert.Len(t, ch, cap(ch))
}

func TestServer_OpenAPIDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/openapi.yaml", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loaded, err := openapi3.NewLoader().LoadFromIoReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Spotlight API", loaded.Info.Title)
	assert.NotNil(t, loaded.Paths.Find("/profiles/{profile}/settings/{key}"))

	resp = do(t, http.MethodGet, srv.URL+"/swagger", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
}

func TestGetSwagger(t *testing.T) {
	swagger, err := spotlighthttp.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	assert.Equal(t, "0.3.0", swagger.Info.Version)
}
