package runtime

import (
	"context"
	"fmt"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// SearchResult is the outcome of a shortest-path search.
type SearchResult struct {
	// Path runs from start to goal inclusive. It is nil when Found is false.
	Path domain.Path

	Found bool

	// Visited counts dequeued cells, including the goal when found.
	Visited int
}

// SearchOption configures FindPath.
type SearchOption func(*searchOptions)

type searchOptions struct {
	ctx     context.Context
	onVisit func(p domain.Position, depth int)
}

// WithContext makes the search abort with ctx.Err() once ctx is done.
// The context is checked once per dequeued cell.
func WithContext(ctx context.Context) SearchOption {
	return func(o *searchOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked for every dequeued cell with its distance from start.
func WithOnVisit(fn func(p domain.Position, depth int)) SearchOption {
	return func(o *searchOptions) {
		o.onVisit = fn
	}
}

// FindPath returns a shortest 4-directional path from start to goal on g.
//
// Neighbours are expanded in domain.Directions order (up, down, left, right), so among
// several shortest paths the result is always the same one for the same grid.
// An unreachable goal, including a start or goal sitting on an obstacle, yields
// Found == false and a nil error. The grid is never modified.
func FindPath(g domain.GridReader, start, goal domain.Position, opts ...SearchOption) (SearchResult, error) {
	o := searchOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	if start == domain.NoPosition || goal == domain.NoPosition {
		return SearchResult{}, domain.ErrMissingEndpoint
	}
	for _, p := range []domain.Position{start, goal} {
		if !g.InBounds(p) {
			return SearchResult{}, fmt.Errorf("%w: %s", domain.ErrOutOfBounds, p)
		}
	}
	if g.At(start) == domain.Obstacle || g.At(goal) == domain.Obstacle {
		return SearchResult{}, nil
	}

	w := g.Width()
	index := func(p domain.Position) int { return p.Row*w + p.Col }

	// prev[i] holds index+1 of the predecessor; 0 means unvisited.
	// The start points at itself.
	prev := make([]int, w*g.Height())
	depth := make([]int, w*g.Height())
	prev[index(start)] = index(start) + 1

	queue := make([]domain.Position, 0, w)
	queue = append(queue, start)
	visited := 0

	for head := 0; head < len(queue); head++ {
		if err := o.ctx.Err(); err != nil {
			return SearchResult{Visited: visited}, err
		}

		cur := queue[head]
		visited++
		if o.onVisit != nil {
			o.onVisit(cur, depth[index(cur)])
		}

		if cur == goal {
			return SearchResult{
				Path:    reconstructPath(prev, w, start, goal),
				Found:   true,
				Visited: visited,
			}, nil
		}

		for _, d := range domain.Directions {
			next := cur.Add(d)
			if !g.InBounds(next) || g.At(next) == domain.Obstacle {
				continue
			}
			ni := index(next)
			if prev[ni] != 0 {
				continue
			}
			prev[ni] = index(cur) + 1
			depth[ni] = depth[index(cur)] + 1
			queue = append(queue, next)
		}
	}

	return SearchResult{Visited: visited}, nil
}

// reconstructPath walks predecessors back from goal and reverses the result.
func reconstructPath(prev []int, width int, start, goal domain.Position) domain.Path {
	var path domain.Path
	cur := goal
	for {
		path = append(path, cur)
		if cur == start {
			break
		}
		pi := prev[cur.Row*width+cur.Col] - 1
		cur = domain.Pos(pi/width, pi%width)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solve runs FindPath between the grid's own start and goal.
func Solve(g *domain.Grid, opts ...SearchOption) (SearchResult, error) {
	start, okStart := g.Start()
	goal, okGoal := g.Goal()
	if !okStart || !okGoal {
		return SearchResult{}, domain.ErrMissingEndpoint
	}
	return FindPath(g, start, goal, opts...)
}
