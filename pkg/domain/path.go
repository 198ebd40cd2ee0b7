package domain

// Path is an ordered list of positions from start to goal, both inclusive.
type Path []Position

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Valid reports whether p is a walkable path on g: every cell is in bounds and not an
// obstacle, and consecutive cells are 4-adjacent. An empty path is not valid.
func (p Path) Valid(g GridReader) bool {
	if len(p) == 0 {
		return false
	}
	for i, pos := range p {
		if !g.InBounds(pos) || !g.At(pos).Traversable() {
			return false
		}
		if i > 0 && !p[i-1].Adjacent(pos) {
			return false
		}
	}
	return true
}

// Interior returns the path without its first and last cell.
func (p Path) Interior() Path {
	if len(p) <= 2 {
		return nil
	}
	return append(Path(nil), p[1:len(p)-1]...)
}

// Contains reports whether pos is on the path.
func (p Path) Contains(pos Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}
	return false
}
