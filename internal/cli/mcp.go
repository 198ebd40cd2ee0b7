package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Rangchakdv/MazeSolver/pkg/adapters/mcp"
	"github.com/Rangchakdv/MazeSolver/pkg/adapters/memory"
	"github.com/Rangchakdv/MazeSolver/pkg/session"
)

// Supported MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// ServeMCP exposes the maze tools to MCP clients over stdio or SSE.
// Logs always go to Stderr so they never corrupt JSON-RPC on Stdout.
func ServeMCP(ctx context.Context, opts RunOptions, transport string, port int) error {
	logger := serverLogger(opts)
	log.SetOutput(os.Stderr)

	engine := createEngine(opts.Config, logger)
	sessions := session.NewManager(memory.NewStore(), session.WithLogger(logger))
	srv := mcp.NewServer(sessions, engine, mcp.WithLogger(logger))

	switch transport {
	case TransportStdio:
		logger.Info("starting MCP server", "transport", transport)
		return srv.ServeStdio()
	case TransportSSE:
		logger.Info("starting MCP server", "transport", transport, "port", port)
		if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("MCP server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport %q, supported: %s, %s", transport, TransportStdio, TransportSSE)
	}
}
