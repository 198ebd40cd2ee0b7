/*
Package domain contains the core maze model for the mazesolver engine.

It defines the grid, its cells and the positions that address them, together with the
editor-facing types (commands, edit modes, session state) and the sentinel errors every
adapter maps to a user-facing message. This package is kept pure and free of external
dependencies like I/O, rendering or timers.

# Key Entities

  - CellState: closed enumeration of Empty, Obstacle, Start and Goal.
  - Position: a (row, column) pair, used both as grid index and search vertex.
  - Grid: the authoritative maze state. At most one Start and one Goal cell exist at any
    time, and every mutator validates its input before writing.
  - Path: ordered, 4-adjacent, obstacle-free positions from start to goal inclusive.
  - State: one editing session (grid, current edit mode, last solved path).
  - Command: a discrete user action applied to a State by the runtime engine.
*/
package domain
