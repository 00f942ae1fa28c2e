package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/internal/presentation/graph"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/runner"
)

// Controller is the part of the runner the HTTP API drives.
type Controller interface {
	Send(ctx context.Context, ev domain.Event) (bool, error)
	Snapshot(ctx context.Context) (runner.Snapshot, error)
	PushState(ctx context.Context, state domain.PetState) error
	TransitionTo(ctx context.Context, state domain.PetState) error
	PopState(ctx context.Context) error
	Reload(ctx context.Context) error
}

var _ Controller = (*runner.Runner)(nil)

// Server exposes a Controller over HTTP.
type Server struct {
	Controller Controller
	Streams    *StreamManager
	Metrics    http.Handler
	Logger     *slog.Logger
}

// Option configures the handler built by NewHandler.
type Option func(*Server)

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.Metrics = h }
}

// WithStreams serves state changes published on sm at GET /stream.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) { s.Streams = sm }
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.Logger = logger }
}

// NewHandler creates the HTTP handler for the pet control API.
func NewHandler(c Controller, opts ...Option) http.Handler {
	server := &Server{Controller: c}
	for _, opt := range opts {
		opt(server)
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager()
	}
	if server.Logger == nil {
		server.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/state", server.GetState)
	r.Get("/graph", server.GetGraph)
	r.Post("/events", server.PostEvent)
	r.Post("/state/push", server.PushState)
	r.Post("/state/transition", server.TransitionTo)
	r.Post("/state/pop", server.PopState)
	r.Post("/config/reload", server.Reload)
	r.Get("/stream", server.SubscribeStates)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EventRequest is the body of POST /events.
type EventRequest struct {
	Type   string `json:"type"`
	Button string `json:"button,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// Event converts the request into a domain event.
func (req EventRequest) Event() (domain.Event, error) {
	typ, err := domain.ParseEventType(req.Type)
	if err != nil {
		return domain.Event{}, err
	}
	button, err := domain.ParseButton(req.Button)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{Type: typ, Button: button, X: req.X, Y: req.Y}, nil
}

// StateRequest is the body of POST /state/push and POST /state/transition.
type StateRequest struct {
	State string `json:"state"`
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "doro-http",
		"version": strings.TrimSpace(doro.Version),
	})
}

// GetState handles the GET /state request.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Controller.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// GetGraph handles the GET /graph request, returning the behavior as a
// Mermaid flowchart with the live stack highlighted.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Controller.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(domain.Behavior, &graph.Overlay{Stack: snap.Stack}))
}

// PostEvent handles the POST /events request.
func (s *Server) PostEvent(w http.ResponseWriter, r *http.Request) {
	var body EventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostEvent: Invalid request body", "err", err)
		return
	}
	ev, err := body.Event()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	consumed, err := s.Controller.Send(r.Context(), ev)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"consumed": consumed})
}

// PushState handles the POST /state/push request.
func (s *Server) PushState(w http.ResponseWriter, r *http.Request) {
	s.changeState(w, r, s.Controller.PushState)
}

// TransitionTo handles the POST /state/transition request.
func (s *Server) TransitionTo(w http.ResponseWriter, r *http.Request) {
	s.changeState(w, r, s.Controller.TransitionTo)
}

func (s *Server) changeState(w http.ResponseWriter, r *http.Request, change func(context.Context, domain.PetState) error) {
	var body StateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	state, err := domain.ParsePetState(body.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := change(r.Context(), state); err != nil {
		s.writeError(w, err)
		return
	}
	s.GetState(w, r)
}

// PopState handles the POST /state/pop request.
func (s *Server) PopState(w http.ResponseWriter, r *http.Request) {
	if err := s.Controller.PopState(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.GetState(w, r)
}

// Reload handles the POST /config/reload request.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	if err := s.Controller.Reload(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubscribeStates handles the GET /stream request (SSE).
func (s *Server) SubscribeStates(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeStates: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, runner.ErrNoConfigStore):
		status = http.StatusNotImplemented
	case errors.Is(err, domain.ErrRunnerStopped):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "err", err)
	}
	http.Error(w, err.Error(), status)
}
