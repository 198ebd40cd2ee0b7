package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Rangchakdv/MazeSolver/internal/logging"
	"github.com/Rangchakdv/MazeSolver/pkg/animation"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/observability"
	"github.com/Rangchakdv/MazeSolver/pkg/ports"
	"github.com/Rangchakdv/MazeSolver/pkg/runner"
	"github.com/Rangchakdv/MazeSolver/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves maze sessions over HTTP.
type Server struct {
	Sessions *session.Manager
	Editor   ports.Editor
	Streams  *StreamManager

	logger  *slog.Logger
	metrics *observability.Metrics
	scrape  http.Handler
	delay   time.Duration

	// Animation runs outlive requests; Close stops them.
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	players map[string]*animation.Player
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics counts sessions in m and serves scrape on /metrics.
// A nil scrape handler serves the default Prometheus registry.
func WithMetrics(m *observability.Metrics, scrape http.Handler) Option {
	return func(s *Server) {
		s.metrics = m
		if scrape != nil {
			s.scrape = scrape
		}
	}
}

// WithStepDelay sets the pause between streamed animation frames.
func WithStepDelay(delay time.Duration) Option {
	return func(s *Server) {
		if delay > 0 {
			s.delay = delay
		}
	}
}

// NewServer creates a server over the given sessions and editor.
func NewServer(sessions *session.Manager, editor ports.Editor, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		Sessions: sessions,
		Editor:   editor,
		Streams:  NewStreamManager(),
		logger:   logging.NewNop(),
		scrape:   promhttp.Handler(),
		delay:    domain.DefaultStepDelay,
		ctx:      ctx,
		cancel:   cancel,
		players:  make(map[string]*animation.Player),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close stops every running animation.
func (s *Server) Close() {
	s.cancel()
}

// Handler returns the chi router of the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Method(http.MethodGet, "/metrics", s.scrape)

	r.Route("/mazes", func(r chi.Router) {
		r.Post("/", s.CreateMaze)
		r.Get("/", s.ListMazes)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetMaze)
			r.Delete("/", s.DeleteMaze)
			r.Post("/cells", s.EditCell)
			r.Post("/resize", s.ResizeMaze)
			r.Post("/reset", s.ResetMaze)
			r.Post("/randomize", s.RandomizeMaze)
			r.Post("/solve", s.SolveMaze)
			r.Get("/events", s.SubscribeEvents)
		})
	})
	return r
}

// NewHandler creates a new HTTP handler for the maze API.
func NewHandler(sessions *session.Manager, editor ports.Editor, opts ...Option) http.Handler {
	return NewServer(sessions, editor, opts...).Handler()
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SizeRequest is the body of POST /mazes and POST /mazes/{id}/resize.
type SizeRequest struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

// CellRequest is the body of POST /mazes/{id}/cells.
type CellRequest struct {
	Mode string `json:"mode"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// RandomizeRequest is the optional body of POST /mazes/{id}/randomize.
type RandomizeRequest struct {
	Seed *uint64 `json:"seed"`
}

// SolveResponse is returned by POST /mazes/{id}/solve.
type SolveResponse struct {
	Found   bool            `json:"found"`
	Path    domain.Path     `json:"path"`
	Length  int             `json:"length"`
	Visited int             `json:"visited"`
	RunID   animation.RunID `json:"run_id,omitempty"`
}

// ListResponse is returned by GET /mazes.
type ListResponse struct {
	Sessions []string `json:"sessions"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateMaze handles POST /mazes. Missing dimensions default to 15x15.
func (s *Server) CreateMaze(w http.ResponseWriter, r *http.Request) {
	var body SizeRequest
	if !s.decode(w, r, &body, true) {
		return
	}
	width, height := domain.DefaultWidth, domain.DefaultHeight
	if body.Width != nil {
		width = *body.Width
	}
	if body.Height != nil {
		height = *body.Height
	}

	state, err := s.Sessions.Create(r.Context(), width, height)
	if err != nil {
		s.writeError(w, "CreateMaze", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Sessions.Inc()
	}
	writeJSON(w, http.StatusCreated, state.Snapshot())
}

// ListMazes handles GET /mazes.
func (s *Server) ListMazes(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		s.writeError(w, "ListMazes", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, ListResponse{Sessions: ids})
}

// GetMaze handles GET /mazes/{id}.
func (s *Server) GetMaze(w http.ResponseWriter, r *http.Request) {
	state, err := s.Sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "GetMaze", err)
		return
	}
	writeJSON(w, http.StatusOK, state.Snapshot())
}

// DeleteMaze handles DELETE /mazes/{id}. Open event streams are closed.
func (s *Server) DeleteMaze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		s.writeError(w, "DeleteMaze", err)
		return
	}

	s.mu.Lock()
	if p, ok := s.players[id]; ok {
		p.Cancel()
		delete(s.players, id)
	}
	s.mu.Unlock()
	s.Streams.Close(id)

	if s.metrics != nil {
		s.metrics.Sessions.Dec()
	}
	w.WriteHeader(http.StatusNoContent)
}

// EditCell handles POST /mazes/{id}/cells.
func (s *Server) EditCell(w http.ResponseWriter, r *http.Request) {
	var body CellRequest
	if !s.decode(w, r, &body, false) {
		return
	}
	mode, err := domain.ParseMode(body.Mode)
	if err != nil {
		s.writeError(w, "EditCell", err)
		return
	}
	s.command(w, r, domain.Paint(mode, domain.Pos(body.Row, body.Col)))
}

// ResizeMaze handles POST /mazes/{id}/resize.
func (s *Server) ResizeMaze(w http.ResponseWriter, r *http.Request) {
	var body SizeRequest
	if !s.decode(w, r, &body, false) {
		return
	}
	if body.Width == nil || body.Height == nil {
		s.writeError(w, "ResizeMaze", fmt.Errorf("%w: width and height are required", domain.ErrInvalidInput))
		return
	}
	s.command(w, r, domain.Resize(*body.Width, *body.Height))
}

// ResetMaze handles POST /mazes/{id}/reset.
func (s *Server) ResetMaze(w http.ResponseWriter, r *http.Request) {
	s.command(w, r, domain.Reset())
}

// RandomizeMaze handles POST /mazes/{id}/randomize.
func (s *Server) RandomizeMaze(w http.ResponseWriter, r *http.Request) {
	var body RandomizeRequest
	if !s.decode(w, r, &body, true) {
		return
	}
	cmd := domain.RandomizeUnseeded()
	if body.Seed != nil {
		cmd = domain.Randomize(*body.Seed)
	}
	s.command(w, r, cmd)
}

// SolveMaze handles POST /mazes/{id}/solve. A found path is also streamed as
// animation frames to the session's event subscribers.
func (s *Server) SolveMaze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, out, ok := s.apply(w, r, domain.Solve())
	if !ok {
		return
	}

	resp := SolveResponse{
		Found:   out.Found,
		Path:    state.Path,
		Length:  state.Path.Steps(),
		Visited: out.Visited,
	}
	if resp.Path == nil {
		resp.Path = domain.Path{}
	}
	if out.Found {
		resp.RunID = s.animate(id, state.Path)
	}
	writeJSON(w, http.StatusOK, resp)
}

// command applies cmd and answers with the new maze.
func (s *Server) command(w http.ResponseWriter, r *http.Request, cmd domain.Command) {
	state, _, ok := s.apply(w, r, cmd)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.Snapshot())
}

// apply runs cmd under the session lock and broadcasts the resulting diff.
// It writes the error response itself and reports whether the caller should continue.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, cmd domain.Command) (*domain.State, domain.Outcome, bool) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	var before *domain.State
	var out domain.Outcome
	state, err := s.Sessions.Update(ctx, id, func(st *domain.State) error {
		before = st.Clone()
		var err error
		out, err = s.Editor.Apply(ctx, st, cmd)
		return err
	})
	if err != nil {
		s.writeError(w, string(cmd.Kind), err)
		return nil, domain.Outcome{}, false
	}

	if cmd.Kind != domain.CommandSetMode {
		s.player(id).Cancel()
	}

	if diff := domain.Diff(before, state); diff != nil {
		if data, err := json.Marshal(diff); err == nil {
			s.Streams.Broadcast(id, Message{Event: "diff", Data: string(data)})
		}
	} else {
		s.logger.Debug("no diff calculated", "session_id", id, "command", cmd.Kind)
	}
	return state, out, true
}

func (s *Server) player(id string) *animation.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		p = animation.NewPlayer()
		s.players[id] = p
	}
	return p
}

// animate starts streaming path frames for session id and returns the run.
func (s *Server) animate(id string, path domain.Path) animation.RunID {
	p := s.player(id)
	run := p.Start(path)
	go func() {
		err := p.Play(s.ctx, run, s.delay, func(f animation.Frame) {
			if data, err := json.Marshal(f); err == nil {
				s.Streams.Broadcast(id, Message{Event: "frame", Data: string(data)})
			}
		})
		if err != nil {
			s.logger.Debug("animation stopped", "session_id", id, "run_id", run, "error", err)
		}
	}()
	return run
}

// SubscribeEvents handles GET /mazes/{id}/events (SSE).
// The optional "watch" query parameter filters event names ("diff", "frame").
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.Sessions.Load(r.Context(), id); err != nil {
		s.writeError(w, "SubscribeEvents", err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	var watch map[string]bool
	if raw := r.URL.Query().Get("watch"); raw != "" {
		watch = make(map[string]bool)
		for _, name := range strings.Split(raw, ",") {
			watch[strings.TrimSpace(name)] = true
		}
	}

	ch, unsubscribe := s.Streams.Subscribe(id)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()
	s.logger.Info("SSE: Subscribing to maze updates", "session_id", id)

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected", "session_id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if watch != nil && !watch[msg.Event] {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}

// decode reads a JSON body of at most runner.DefaultMaxInputSize bytes.
// With optional set, an empty body leaves v untouched.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	body := http.MaxBytesReader(w, r.Body, runner.DefaultMaxInputSize)
	err := json.NewDecoder(body).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	s.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Message: "Invalid request body"})
	return false
}

// StatusCode maps a domain error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingEndpoint):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDimension),
		errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrInvalidMode),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownCommand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(op+" failed", "error", err)
	} else {
		s.logger.Debug(op+" rejected", "error", err)
	}
	writeJSON(w, code, ErrorResponse{Error: err.Error(), Message: domain.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
