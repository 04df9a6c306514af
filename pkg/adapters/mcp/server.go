// Package mcp exposes tours, tour progress and tooltip placement to AI agents
// over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/spotlight/internal/logging"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/placement"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	toursURI        = "spotlight://tours"
	tourURITemplate = "spotlight://tours/{name}"
)

// StoreFactory returns the settings store for one profile. An empty profile
// selects the default one.
type StoreFactory func(profile string) (ports.SettingsStore, error)

// TourList is the result of list_tours and the content of the tours resource.
type TourList struct {
	Tours []string `json:"tours" jsonschema_description:"Tour names, sorted"`
}

// TourStatus tells an agent whether a tour would auto-start for a profile.
type TourStatus struct {
	Profile   string `json:"profile" jsonschema_description:"Profile the flags were read from"`
	Tour      string `json:"tour"`
	Key       string `json:"key" jsonschema_description:"Settings key that marks the tour as seen"`
	Seen      bool   `json:"seen"`
	ForceShow bool   `json:"force_show" jsonschema_description:"The forceShowTour override is set"`
	Eligible  bool   `json:"eligible" jsonschema_description:"The tour would start on the next page load"`
}

// ResetResult is the result of reset_progress.
type ResetResult struct {
	Profile string `json:"profile"`
	Reset   bool   `json:"reset"`
}

type tourArgs struct {
	Name    string `json:"name"`
	Profile string `json:"profile"`
}

type profileArgs struct {
	Profile string `json:"profile"`
}

type placeArgs struct {
	TargetLeft     float64  `json:"target_left"`
	TargetTop      float64  `json:"target_top"`
	TargetWidth    float64  `json:"target_width"`
	TargetHeight   float64  `json:"target_height"`
	Position       string   `json:"position"`
	TooltipWidth   float64  `json:"tooltip_width"`
	TooltipHeight  float64  `json:"tooltip_height"`
	ViewportWidth  float64  `json:"viewport_width"`
	ViewportHeight float64  `json:"viewport_height"`
	Padding        *float64 `json:"padding"`
}

// Server wraps a tour loader and the profile stores as an MCP server.
type Server struct {
	loader    ports.TourLoader
	stores    StoreFactory
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(loader ports.TourLoader, stores StoreFactory, version string, opts ...Option) *Server {
	s := &Server{
		loader: loader,
		stores: stores,
		logger: logging.NewNop(),
		mcpServer: server.NewMCPServer("spotlight-mcp", version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server, for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	allow := cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})
	mux := http.NewServeMux()
	mux.Handle("/sse", allow(sseServer.SSEHandler()))
	mux.Handle("/message", allow(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "addr", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_tours",
		mcp.WithDescription("List the names of every tour definition."),
		mcp.WithOutputSchema[TourList](),
	), mcp.NewStructuredToolHandler(s.handleListTours))

	s.mcpServer.AddTool(mcp.NewTool("get_tour",
		mcp.WithDescription("Get a tour definition: its settings key and ordered steps."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tour name")),
		mcp.WithOutputSchema[domain.TourDefinition](),
	), mcp.NewStructuredToolHandler(s.handleGetTour))

	s.mcpServer.AddTool(mcp.NewTool("tour_status",
		mcp.WithDescription("Report whether a tour was seen by a profile and would auto-start."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tour name")),
		mcp.WithString("profile", mcp.Description("Profile to read (default profile when omitted)")),
		mcp.WithOutputSchema[TourStatus](),
	), mcp.NewStructuredToolHandler(s.handleTourStatus))

	s.mcpServer.AddTool(mcp.NewTool("reset_progress",
		mcp.WithDescription("Clear every seen flag and the force-show override of a profile."),
		mcp.WithString("profile", mcp.Description("Profile to reset (default profile when omitted)")),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithOutputSchema[ResetResult](),
	), mcp.NewStructuredToolHandler(s.handleResetProgress))

	s.mcpServer.AddTool(mcp.NewTool("place_tooltip",
		mcp.WithDescription("Compute where a tooltip goes for a target rectangle, flipping and clamping it to stay in the viewport."),
		mcp.WithNumber("target_left", mcp.Description("Target left edge in viewport pixels")),
		mcp.WithNumber("target_top", mcp.Description("Target top edge in viewport pixels")),
		mcp.WithNumber("target_width", mcp.Min(0)),
		mcp.WithNumber("target_height", mcp.Min(0)),
		mcp.WithString("position", mcp.Description("Preferred side"), mcp.Enum("center", "top", "bottom", "left", "right")),
		mcp.WithNumber("tooltip_width", mcp.Min(0), mcp.Description("Measured width; 0 takes the default")),
		mcp.WithNumber("tooltip_height", mcp.Min(0), mcp.Description("Measured height; 0 takes the default")),
		mcp.WithNumber("viewport_width", mcp.Required(), mcp.Min(1)),
		mcp.WithNumber("viewport_height", mcp.Required(), mcp.Min(1)),
		mcp.WithNumber("padding", mcp.Min(0), mcp.Description("Gap between target and tooltip (default 20)")),
		mcp.WithOutputSchema[placement.Placement](),
	), mcp.NewStructuredToolHandler(s.handlePlaceTooltip))
}

func (s *Server) handleListTours(ctx context.Context, request mcp.CallToolRequest, args struct{}) (TourList, error) {
	names, err := s.loader.ListTours()
	if err != nil {
		return TourList{}, fmt.Errorf("list tours failed: %w", err)
	}
	return TourList{Tours: names}, nil
}

func (s *Server) handleGetTour(ctx context.Context, request mcp.CallToolRequest, args tourArgs) (domain.TourDefinition, error) {
	return s.loader.GetTour(args.Name)
}

func (s *Server) handleTourStatus(ctx context.Context, request mcp.CallToolRequest, args tourArgs) (TourStatus, error) {
	tour, err := s.loader.GetTour(args.Name)
	if err != nil {
		return TourStatus{}, err
	}
	store, err := s.stores(args.Profile)
	if err != nil {
		return TourStatus{}, err
	}
	settings, err := store.Load(ctx)
	if err != nil {
		return TourStatus{}, fmt.Errorf("load settings failed: %w", err)
	}
	status := TourStatus{
		Profile:   args.Profile,
		Tour:      tour.Name,
		Key:       tour.Key,
		Seen:      settings.Seen(tour.Key),
		ForceShow: settings.ForceShow(),
	}
	status.Eligible = !status.Seen || status.ForceShow
	return status, nil
}

func (s *Server) handleResetProgress(ctx context.Context, request mcp.CallToolRequest, args profileArgs) (ResetResult, error) {
	store, err := s.stores(args.Profile)
	if err != nil {
		return ResetResult{}, err
	}
	if err := store.Reset(ctx); err != nil {
		return ResetResult{}, fmt.Errorf("reset failed: %w", err)
	}
	s.logger.Info("tour progress reset via MCP", "profile", args.Profile)
	return ResetResult{Profile: args.Profile, Reset: true}, nil
}

func (s *Server) handlePlaceTooltip(ctx context.Context, request mcp.CallToolRequest, args placeArgs) (placement.Placement, error) {
	if args.ViewportWidth <= 0 || args.ViewportHeight <= 0 {
		return placement.Placement{}, errors.New("viewport must have positive dimensions")
	}
	position := domain.Position(args.Position)
	if position != "" && !position.Valid() {
		return placement.Placement{}, fmt.Errorf("unknown position %q", args.Position)
	}
	padding := float64(domain.TooltipPadding)
	if args.Padding != nil {
		padding = *args.Padding
	}
	viewport := domain.Size{Width: args.ViewportWidth, Height: args.ViewportHeight}
	target := domain.Rect{Left: args.TargetLeft, Top: args.TargetTop, Width: args.TargetWidth, Height: args.TargetHeight}
	size := placement.TooltipSize(domain.Size{Width: args.TooltipWidth, Height: args.TooltipHeight}, viewport)
	return placement.Place(target, position, size, viewport, padding), nil
}

func (s *Server) registerResources() {
	// EXPOSE: spotlight://tours
	s.mcpServer.AddResource(mcp.NewResource(toursURI, "Tour Names",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list, err := s.handleListTours(ctx, mcp.CallToolRequest{}, struct{}{})
		if err != nil {
			return nil, err
		}
		return jsonContents(toursURI, list)
	})

	// EXPOSE: spotlight://tours/{name}
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(tourURITemplate, "Tour Definition",
		mcp.WithTemplateMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := strings.TrimPrefix(request.Params.URI, toursURI+"/")
		tour, err := s.loader.GetTour(name)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, tour)
	})
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
