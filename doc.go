/*
Package mazesolver is an interactive grid-maze editor and shortest-path solver.

A maze is a rectangular domain.Grid of Empty, Obstacle, Start and Goal cells with at most
one Start and one Goal. Users paint cells, resize or randomize the grid and ask for a
shortest path, which is found by breadth-first search over 4-directional moves and then
revealed one cell at a time by the animation package.

# Architecture

The core (grid model and path finder) is pure and synchronous. Everything else is a shell
around it:

  - Engine applies editor commands (paint, mode, resize, reset, randomize, solve) to a
    session state and reports them through domain.LifecycleHooks.
  - pkg/session keeps concurrent sessions for the HTTP and MCP adapters.
  - pkg/runner is the line-oriented REPL, internal/presentation/screen the full-screen editor.
  - cmd/mazesolver wires it all behind a cobra CLI.

# Usage

	g, _ := domain.ParseGrid([]string{
		"S..#",
		".#..",
		"...G",
	})
	res, err := mazesolver.Solve(g)
	if err != nil {
		log.Fatal(err) // domain.ErrMissingEndpoint when S or G is absent
	}
	if !res.Found {
		fmt.Println(domain.MsgNoPath)
	}
	fmt.Println(res.Path)

The search expands neighbours in the fixed order up, down, left, right, so the same grid
always yields the same path.
*/
package mazesolver
