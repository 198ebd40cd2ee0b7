package domain

// StateDiff represents the changes between two session states.
// It is serialized to JSON for partial updates on streaming clients.
type StateDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	// Width and Height are set when the grid was resized. Clients must then drop their
	// local grid; Cells lists every non-empty cell of the new one.
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`

	// Cells holds the cells whose state changed.
	Cells []CellChange `json:"cells,omitempty"`

	// Start and Goal are set when the reference moved. NoPosition means it was unset.
	Start *Position `json:"start,omitempty"`
	Goal  *Position `json:"goal,omitempty"`

	Mode   *EditMode    `json:"mode,omitempty"`
	Status *SolveStatus `json:"status,omitempty"`

	// Path is the full new path whenever the path changed.
	Path *Path `json:"path,omitempty"`
}

// CellChange is a single cell update.
type CellChange struct {
	Position
	State CellState `json:"state"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState (initial load).
// It returns nil when nothing changed.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil || newState.Grid == nil {
		return nil
	}

	diff := &StateDiff{
		SessionID: newState.SessionID,
	}

	resized := oldState == nil || oldState.Grid == nil ||
		oldState.Grid.Width() != newState.Grid.Width() ||
		oldState.Grid.Height() != newState.Grid.Height()
	if resized {
		w, h := newState.Grid.Width(), newState.Grid.Height()
		diff.Width, diff.Height = &w, &h
	}

	diff.Cells = diffCells(oldState, newState, resized)

	oldStart, oldGoal := NoPosition, NoPosition
	if !resized {
		oldStart, _ = oldState.Grid.Start()
		oldGoal, _ = oldState.Grid.Goal()
	}
	if start, _ := newState.Grid.Start(); start != oldStart {
		diff.Start = &start
	}
	if goal, _ := newState.Grid.Goal(); goal != oldGoal {
		diff.Goal = &goal
	}

	if oldState == nil || oldState.Mode != newState.Mode {
		mode := newState.Mode
		diff.Mode = &mode
	}
	if oldState == nil || oldState.Status != newState.Status {
		status := newState.Status
		diff.Status = &status
	}
	if oldState == nil || !samePath(oldState.Path, newState.Path) {
		if oldState != nil || len(newState.Path) > 0 {
			path := append(Path{}, newState.Path...)
			diff.Path = &path
		}
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// diffCells lists changed cells. After a resize every non-empty cell is reported.
func diffCells(old, new *State, resized bool) []CellChange {
	var changes []CellChange
	g := new.Grid
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := Pos(r, c)
			state := g.At(p)
			if resized {
				if state != Empty {
					changes = append(changes, CellChange{Position: p, State: state})
				}
				continue
			}
			if old.Grid.At(p) != state {
				changes = append(changes, CellChange{Position: p, State: state})
			}
		}
	}
	return changes
}

func samePath(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *StateDiff) IsEmpty() bool {
	return d.Width == nil &&
		d.Height == nil &&
		len(d.Cells) == 0 &&
		d.Start == nil &&
		d.Goal == nil &&
		d.Mode == nil &&
		d.Status == nil &&
		d.Path == nil
}
