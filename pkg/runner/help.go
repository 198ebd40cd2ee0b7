package runner

// HelpMarkdown documents the REPL commands. Text handlers may render it with a
// markdown renderer; JSON handlers emit it verbatim.
const HelpMarkdown = `# Maze editor

| Command | Effect |
|---|---|
| ` + "`obstacle R C`" + ` / ` + "`o R C`" + ` | paint an obstacle |
| ` + "`start R C`" + ` / ` + "`s R C`" + ` | move the start |
| ` + "`goal R C`" + ` / ` + "`g R C`" + ` | move the goal |
| ` + "`erase R C`" + ` / ` + "`e R C`" + ` | clear a cell |
| ` + "`mode obstacle\\|start\\|goal\\|erase\\|none`" + ` | select what ` + "`click`" + ` paints |
| ` + "`click R C`" + ` | paint with the current mode |
| ` + "`resize W H`" + ` | new empty grid of W columns and H rows |
| ` + "`reset`" + ` | clear every cell |
| ` + "`random [SEED]`" + ` | reset, then scatter obstacles over about a quarter of the cells |
| ` + "`solve`" + ` | find and draw a shortest path |
| ` + "`show`" + ` | print the grid |
| ` + "`quit`" + ` | leave |

Rows and columns start at 0. Moves are up, down, left and right only.
`
