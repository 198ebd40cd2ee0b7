/*
Package ports defines the driven ports (interfaces) of the maze editor.

These interfaces decouple the editor core from the adapters that drive it, so the
same engine serves the terminal REPL, the full-screen editor, the HTTP API and the
MCP tool server.

# Key Interfaces

  - Editor: applies domain.Command values to a domain.State.
  - StateStore: keeps session states in memory for the lifetime of the process.
*/
package ports
