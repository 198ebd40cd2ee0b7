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

	mazesolver "github.com/Rangchakdv/MazeSolver"
	"github.com/Rangchakdv/MazeSolver/internal/dto"
	"github.com/Rangchakdv/MazeSolver/internal/logging"
	"github.com/Rangchakdv/MazeSolver/internal/presentation/graph"
	"github.com/Rangchakdv/MazeSolver/internal/presentation/tui"
	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/Rangchakdv/MazeSolver/pkg/ports"
	"github.com/Rangchakdv/MazeSolver/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/muesli/termenv"
)

// SessionsURI lists the open maze sessions.
const SessionsURI = "maze://sessions"

// MazeResponse is returned by every tool that changes or shows a maze.
type MazeResponse struct {
	Maze     domain.Snapshot `json:"maze" jsonschema_description:"The maze after the call"`
	Rendered string          `json:"rendered" jsonschema_description:"Text drawing: . empty, # obstacle, S start, G goal, * path"`
}

// SolveResponse is returned by solve_maze.
type SolveResponse struct {
	Found    bool        `json:"found" jsonschema_description:"Whether the goal is reachable"`
	Path     domain.Path `json:"path" jsonschema_description:"Cells from start to goal inclusive"`
	Length   int         `json:"length" jsonschema_description:"Path length in steps"`
	Visited  int         `json:"visited" jsonschema_description:"Cells explored by the search"`
	Rendered string      `json:"rendered" jsonschema_description:"Text drawing with the path marked *"`
	Message  string      `json:"message,omitempty"`
}

// Server exposes maze sessions as an MCP Server.
type Server struct {
	sessions  *session.Manager
	editor    ports.Editor
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. On stdio it must not write to Stdout.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(sessions *session.Manager, editor ports.Editor, opts ...Option) *Server {
	s := &Server{
		sessions: sessions,
		editor:   editor,
		logger:   logging.NewNop(),
		mcpServer: server.NewMCPServer("mazesolver-mcp", strings.TrimSpace(mazesolver.Version),
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

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionParam() mcp.ToolOption {
	return mcp.WithString("session_id", mcp.Required(), mcp.Description("Maze session ID returned by create_maze"))
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("create_maze",
		mcp.WithDescription("Create an empty maze. Dimensions default to 15x15."),
		mcp.WithNumber("width", mcp.Description("Number of columns (positive)")),
		mcp.WithNumber("height", mcp.Description("Number of rows (positive)")),
		mcp.WithOutputSchema[MazeResponse](),
	), mcp.NewStructuredToolHandler(s.handleCreate))

	s.mcpServer.AddTool(mcp.NewTool("edit_cell",
		mcp.WithDescription("Paint one cell. Setting start or goal moves the previous one; painting over start or goal clears it."),
		sessionParam(),
		mcp.WithString("mode", mcp.Required(), mcp.Enum("obstacle", "start", "goal", "erase")),
		mcp.WithNumber("row", mcp.Required(), mcp.Description("Zero-based row")),
		mcp.WithNumber("col", mcp.Required(), mcp.Description("Zero-based column")),
		mcp.WithOutputSchema[MazeResponse](),
	), mcp.NewStructuredToolHandler(s.handleEditCell))

	s.mcpServer.AddTool(mcp.NewTool("resize_maze",
		mcp.WithDescription("Rebuild the maze empty at a new size."),
		sessionParam(),
		mcp.WithNumber("width", mcp.Required()),
		mcp.WithNumber("height", mcp.Required()),
		mcp.WithOutputSchema[MazeResponse](),
	), mcp.NewStructuredToolHandler(s.handleResize))

	s.mcpServer.AddTool(mcp.NewTool("reset_maze",
		mcp.WithDescription("Clear every cell, keeping the size."),
		sessionParam(),
		mcp.WithOutputSchema[MazeResponse](),
	), mcp.NewStructuredToolHandler(s.handleReset))

	s.mcpServer.AddTool(mcp.NewTool("randomize_maze",
		mcp.WithDescription("Clear the maze, then place random obstacles on about a quarter of the cells."),
		sessionParam(),
		mcp.WithNumber("seed", mcp.Description("Seed for a reproducible layout (optional)")),
		mcp.WithOutputSchema[MazeResponse](),
	), mcp.NewStructuredToolHandler(s.handleRandomize))

	s.mcpServer.AddTool(mcp.NewTool("solve_maze",
		mcp.WithDescription("Find a shortest 4-directional path from start to goal."),
		sessionParam(),
		mcp.WithOutputSchema[SolveResponse](),
	), mcp.NewStructuredToolHandler(s.handleSolve))

	s.mcpServer.AddTool(mcp.NewTool("render_maze",
		mcp.WithDescription("Draw the maze as text, as a Mermaid graph of open cells, or as JSON."),
		sessionParam(),
		mcp.WithString("format", mcp.Enum("text", "mermaid", "json"), mcp.DefaultString("text")),
	), s.handleRender)
}

func (s *Server) handleCreate(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (MazeResponse, error) {
	var in dto.SizeArgs
	if err := dto.Decode(args, &in); err != nil {
		return MazeResponse{}, err
	}
	width, height := domain.DefaultWidth, domain.DefaultHeight
	if in.Width != nil {
		width = *in.Width
	}
	if in.Height != nil {
		height = *in.Height
	}
	state, err := s.sessions.Create(ctx, width, height)
	if err != nil {
		return MazeResponse{}, toolError(err)
	}
	return mazeResponse(state), nil
}

func (s *Server) handleEditCell(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (MazeResponse, error) {
	var in dto.CellArgs
	if err := dto.Decode(args, &in); err != nil {
		return MazeResponse{}, err
	}
	mode, err := domain.ParseMode(in.Mode)
	if err != nil {
		return MazeResponse{}, err
	}
	return s.command(ctx, in.SessionID, domain.Paint(mode, domain.Pos(in.Row, in.Col)))
}

func (s *Server) handleResize(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (MazeResponse, error) {
	var in dto.SizeArgs
	if err := dto.Decode(args, &in); err != nil {
		return MazeResponse{}, err
	}
	if in.Width == nil || in.Height == nil {
		return MazeResponse{}, toolError(fmt.Errorf("%w: width and height are required", domain.ErrInvalidInput))
	}
	return s.command(ctx, in.SessionID, domain.Resize(*in.Width, *in.Height))
}

func (s *Server) handleReset(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (MazeResponse, error) {
	var in dto.SessionArgs
	if err := dto.Decode(args, &in); err != nil {
		return MazeResponse{}, err
	}
	return s.command(ctx, in.SessionID, domain.Reset())
}

func (s *Server) handleRandomize(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (MazeResponse, error) {
	var in dto.RandomizeArgs
	if err := dto.Decode(args, &in); err != nil {
		return MazeResponse{}, err
	}
	cmd := domain.RandomizeUnseeded()
	if in.Seed != nil {
		cmd = domain.Randomize(*in.Seed)
	}
	return s.command(ctx, in.SessionID, cmd)
}

func (s *Server) handleSolve(ctx context.Context, _ mcp.CallToolRequest, args map[string]any) (SolveResponse, error) {
	var in dto.SessionArgs
	if err := dto.Decode(args, &in); err != nil {
		return SolveResponse{}, err
	}

	var out domain.Outcome
	state, err := s.sessions.Update(ctx, in.SessionID, func(st *domain.State) error {
		var err error
		out, err = s.editor.Apply(ctx, st, domain.Solve())
		return err
	})
	if err != nil {
		return SolveResponse{}, toolError(err)
	}

	resp := SolveResponse{
		Found:    out.Found,
		Path:     state.Path,
		Length:   state.Path.Steps(),
		Visited:  out.Visited,
		Rendered: render(state.Snapshot()),
	}
	if resp.Path == nil {
		resp.Path = domain.Path{}
	}
	if !out.Found {
		resp.Message = domain.MsgNoPath
	}
	return resp, nil
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in dto.RenderArgs
	if err := dto.Decode(request.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	state, err := s.sessions.Load(ctx, in.SessionID)
	if err != nil {
		return mcp.NewToolResultError(toolError(err).Error()), nil
	}
	snap := state.Snapshot()

	switch in.Format {
	case "", "text":
		return mcp.NewToolResultText(render(snap)), nil
	case "mermaid":
		return mcp.NewToolResultText(graph.GenerateMermaid(snap, &graph.Overlay{Path: snap.Path})), nil
	case "json":
		data, err := json.Marshal(snap)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", in.Format)), nil
	}
}

func (s *Server) command(ctx context.Context, id string, cmd domain.Command) (MazeResponse, error) {
	state, err := s.sessions.Update(ctx, id, func(st *domain.State) error {
		_, err := s.editor.Apply(ctx, st, cmd)
		return err
	})
	if err != nil {
		s.logger.Debug("MCP command rejected", "session_id", id, "command", cmd.Kind, "error", err)
		return MazeResponse{}, toolError(err)
	}
	return mazeResponse(state), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(SessionsURI, "Open maze sessions",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.sessions.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		if ids == nil {
			ids = []string{}
		}
		jsonBytes, _ := json.Marshal(ids)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SessionsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// toolError replaces domain errors with the message shown to users.
func toolError(err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	msg := domain.UserMessage(err)
	if msg == err.Error() {
		return err
	}
	return fmt.Errorf("%s (%w)", msg, err)
}

func mazeResponse(state *domain.State) MazeResponse {
	snap := state.Snapshot()
	return MazeResponse{Maze: snap, Rendered: render(snap)}
}

var asciiGrid = tui.Grid(termenv.Ascii)

func render(snap domain.Snapshot) string {
	return asciiGrid(snap)
}
