// Package http exposes tour definitions, per-profile settings and the
// placement algorithm to browser hosts over a chi router.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/spotlight/internal/logging"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/placement"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// StoreFactory returns the settings store for one profile.
type StoreFactory func(profile string) (ports.SettingsStore, error)

// Server serves the HTTP API.
type Server struct {
	Loader  ports.TourLoader
	Stores  StoreFactory
	Streams *StreamManager
	Metrics http.Handler
	Version string
	Logger  *slog.Logger
	Hooks   domain.LifecycleHooks
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.Metrics = h }
}

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.Version = v }
}

// WithLifecycleHooks receives the lifecycle events hosts report via POST /events.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) { s.Hooks = hooks }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.Logger = l
		}
	}
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// NewHandler creates the HTTP handler.
func NewHandler(loader ports.TourLoader, stores StoreFactory, opts ...Option) http.Handler {
	s := &Server{
		Loader:  loader,
		Stores:  stores,
		Streams: NewStreamManager(),
		Version: "dev",
		Logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s.Routes()
}

// Routes builds the router. Requests on API routes are validated against
// the embedded OpenAPI document before they reach a handler.
func (s *Server) Routes() http.Handler {
	swagger, err := GetSwagger()
	if err != nil {
		panic(fmt.Sprintf("http: embedded OpenAPI spec: %v", err))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Browser hosts embed the tour on their own origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(ValidateRequests(swagger, s.Logger))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})

	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return HandlerFromMux(s, r)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Spotlight API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "spotlight-http",
		"version":     s.Version,
		"api_version": apiVersion,
	})
}

// ListTours handles GET /tours.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	names, err := s.Loader.ListTours()
	if err != nil {
		s.fail(w, "ListTours", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetTour handles GET /tours/{name}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request, name TourName) {
	tour, err := s.Loader.GetTour(name)
	if err != nil {
		s.fail(w, "GetTour", err)
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// GetSettings handles GET /profiles/{profile}/settings.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request, profile Profile) {
	store, ok := s.store(w, profile)
	if !ok {
		return
	}
	settings, err := store.Load(r.Context())
	if err != nil {
		s.fail(w, "GetSettings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// GetSetting handles GET /profiles/{profile}/settings/{key}.
func (s *Server) GetSetting(w http.ResponseWriter, r *http.Request, profile Profile, key SettingKey) {
	store, ok := s.store(w, profile)
	if !ok {
		return
	}
	v, found, err := store.Get(r.Context(), key)
	if err != nil {
		s.fail(w, "GetSetting", err)
		return
	}
	if !found {
		http.Error(w, fmt.Sprintf("setting %q not found", key), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, SettingValue{Value: v})
}

// PutSetting handles PUT /profiles/{profile}/settings/{key}.
func (s *Server) PutSetting(w http.ResponseWriter, r *http.Request, profile Profile, key SettingKey) {
	store, ok := s.store(w, profile)
	if !ok {
		return
	}
	var body PutSettingJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PutSetting: invalid request body", "error", err)
		return
	}
	if err := store.Set(r.Context(), key, body.Value); err != nil {
		s.fail(w, "PutSetting", err)
		return
	}
	s.broadcast(profile, SettingsEvent{Type: "set", Key: key, Value: body.Value})
	w.WriteHeader(http.StatusNoContent)
}

// ResetSettings handles DELETE /profiles/{profile}/settings.
func (s *Server) ResetSettings(w http.ResponseWriter, r *http.Request, profile Profile) {
	store, ok := s.store(w, profile)
	if !ok {
		return
	}
	if err := store.Reset(r.Context()); err != nil {
		s.fail(w, "ResetSettings", err)
		return
	}
	s.broadcast(profile, SettingsEvent{Type: "reset"})
	w.WriteHeader(http.StatusNoContent)
}

// GetTourStatus handles GET /profiles/{profile}/tours/{name}/status and tells
// a host whether the tour should auto-start for the profile.
func (s *Server) GetTourStatus(w http.ResponseWriter, r *http.Request, profile Profile, name TourName) {
	store, ok := s.store(w, profile)
	if !ok {
		return
	}
	tour, err := s.Loader.GetTour(name)
	if err != nil {
		s.fail(w, "GetTourStatus", err)
		return
	}
	settings, err := store.Load(r.Context())
	if err != nil {
		s.fail(w, "GetTourStatus", err)
		return
	}
	status := TourStatus{
		Tour:      tour.Name,
		Key:       tour.Key,
		Seen:      settings.Seen(tour.Key),
		ForceShow: settings.ForceShow(),
	}
	status.Eligible = !status.Seen || status.ForceShow
	writeJSON(w, http.StatusOK, status)
}

// PostPlacement handles POST /placement. An omitted tooltip size or padding
// takes the defaults.
func (s *Server) PostPlacement(w http.ResponseWriter, r *http.Request) {
	var body PostPlacementJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostPlacement: invalid request body", "error", err)
		return
	}
	var (
		target   domain.Rect
		position domain.Position
		tooltip  domain.Size
		padding  = float64(domain.TooltipPadding)
	)
	if body.Target != nil {
		target = *body.Target
	}
	if body.Position != nil {
		position = *body.Position
	}
	if body.Tooltip != nil {
		tooltip = *body.Tooltip
	}
	if body.Padding != nil {
		padding = *body.Padding
	}
	size := placement.TooltipSize(tooltip, body.Viewport)
	writeJSON(w, http.StatusOK, placement.Place(target, position, size, body.Viewport, padding))
}

// PostEvent handles POST /events and forwards the event to the lifecycle hooks.
func (s *Server) PostEvent(w http.ResponseWriter, r *http.Request) {
	var body PostEventJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostEvent: invalid request body", "error", err)
		return
	}
	if body.Timestamp.IsZero() {
		body.Timestamp = time.Now()
	}
	base := domain.EventBase{Timestamp: body.Timestamp, Type: body.Type, SessionID: body.SessionId, Tour: body.Tour}
	ctx := r.Context()

	switch body.Type {
	case domain.EventTourStart:
		if s.Hooks.OnTourStart != nil {
			s.Hooks.OnTourStart(ctx, &domain.TourEvent{EventBase: base, Steps: body.Steps})
		}
	case domain.EventStepShow:
		if s.Hooks.OnStepShow != nil {
			s.Hooks.OnStepShow(ctx, &domain.StepEvent{EventBase: base, StepIndex: body.StepIndex, Selector: body.Selector, Centered: body.Centered})
		}
	case domain.EventTourEnd:
		if s.Hooks.OnTourEnd != nil {
			ev := &domain.TourEvent{
				EventBase: base,
				Steps:     body.Steps,
				StepIndex: body.StepIndex,
				MarkSeen:  body.MarkSeen,
			}
			if body.Reason != nil {
				ev.Reason = *body.Reason
			}
			s.Hooks.OnTourEnd(ctx, ev)
		}
	default:
		http.Error(w, fmt.Sprintf("unknown event type %q", body.Type), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) store(w http.ResponseWriter, profile string) (ports.SettingsStore, bool) {
	store, err := s.Stores(profile)
	if err != nil {
		s.fail(w, "OpenStore", err)
		return nil, false
	}
	return store, true
}

func (s *Server) broadcast(profile string, e SettingsEvent) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if dropped := s.Streams.Broadcast(profile, string(data)); dropped > 0 {
		s.Logger.Warn("SSE: client buffer full, dropping message", "profile", profile, "dropped", dropped)
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrTourNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTour):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.Logger.Error(op+" failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
