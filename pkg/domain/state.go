package domain

// SolveStatus records the outcome of the last search on a session.
type SolveStatus string

const (
	StatusUnsolved    SolveStatus = "unsolved"    // Grid edited since the last solve, or never solved
	StatusSolved      SolveStatus = "solved"      // Path holds a shortest path
	StatusUnreachable SolveStatus = "unreachable" // Last solve found no path
)

// State is one editing session: the maze, the current edit mode and the last solved path.
type State struct {
	// SessionID identifies the session in a store. Empty for ad-hoc states.
	SessionID string

	Grid *Grid

	// Mode decides what a Paint command writes.
	Mode EditMode

	Status SolveStatus

	// Path is the last shortest path. It is cleared by every grid mutation.
	Path Path

	// Visited counts the cells dequeued by the last search.
	Visited int
}

// NewState creates a session state around an all-Empty grid.
func NewState(width, height int) (*State, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &State{
		Grid:   g,
		Mode:   ModeNone,
		Status: StatusUnsolved,
	}, nil
}

// Invalidate drops the solved path after the grid changed.
func (s *State) Invalidate() {
	s.Status = StatusUnsolved
	s.Path = nil
	s.Visited = 0
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Grid = s.Grid.Clone()
	cp.Path = append(Path(nil), s.Path...)
	return &cp
}

// Snapshot is the serializable view of a State.
type Snapshot struct {
	SessionID string      `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Width     int         `json:"width" yaml:"width"`
	Height    int         `json:"height" yaml:"height"`
	Rows      []string    `json:"rows" yaml:"rows"`
	Start     *Position   `json:"start,omitempty" yaml:"start,omitempty"`
	Goal      *Position   `json:"goal,omitempty" yaml:"goal,omitempty"`
	Mode      EditMode    `json:"mode" yaml:"mode"`
	Status    SolveStatus `json:"status" yaml:"status"`
	Path      Path        `json:"path,omitempty" yaml:"path,omitempty"`
	Length    int         `json:"length,omitempty" yaml:"length,omitempty"`
}

// Snapshot captures the state for transport.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.SessionID,
		Width:     s.Grid.Width(),
		Height:    s.Grid.Height(),
		Rows:      s.Grid.Text(),
		Mode:      s.Mode,
		Status:    s.Status,
		Path:      s.Path,
		Length:    s.Path.Steps(),
	}
	if p, ok := s.Grid.Start(); ok {
		snap.Start = &p
	}
	if p, ok := s.Grid.Goal(); ok {
		snap.Goal = &p
	}
	return snap
}

// Restore rebuilds a State from a snapshot.
func (snap Snapshot) Restore() (*State, error) {
	g, err := ParseGrid(snap.Rows)
	if err != nil {
		return nil, err
	}
	status := snap.Status
	if status == "" {
		status = StatusUnsolved
	}
	return &State{
		SessionID: snap.SessionID,
		Grid:      g,
		Mode:      snap.Mode,
		Status:    status,
		Path:      snap.Path,
	}, nil
}
