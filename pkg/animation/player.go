package animation

import (
	"context"
	"sync"
	"time"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
)

// RunID identifies one animation run. The zero value never names a run.
type RunID uint64

// Phase is the state of the current run.
type Phase int

const (
	Idle Phase = iota
	Playing
	Done
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Frame reveals one path cell.
type Frame struct {
	Run   RunID           `json:"run_id"`
	Index int             `json:"index"`
	Total int             `json:"total"`
	Pos   domain.Position `json:"pos"`
}

// Last reports whether f is the final frame of its run.
func (f Frame) Last() bool {
	return f.Index == f.Total-1
}

// Player is the animation state machine. Safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	current RunID
	phase   Phase
	frames  []domain.Position
	cursor  int
}

// NewPlayer creates an idle player.
func NewPlayer() *Player {
	return &Player{}
}

// Start begins a new run over path and invalidates any run in flight.
// The first and last cells are skipped; they keep their start and goal colouring.
func (p *Player) Start(path domain.Path) RunID {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current++
	p.frames = path.Interior()
	p.cursor = 0
	p.phase = Playing
	if len(p.frames) == 0 {
		p.phase = Done
	}
	return p.current
}

// Cancel invalidates the current run. It is a no-op when nothing is playing.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase != Playing {
		return
	}
	p.phase = Cancelled
	p.frames = nil
}

// Step returns the next frame of run id. ok is false once the run is finished or stale.
func (p *Player) Step(id RunID) (frame Frame, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id != p.current || p.phase != Playing {
		return Frame{}, false
	}
	frame = Frame{
		Run:   id,
		Index: p.cursor,
		Total: len(p.frames),
		Pos:   p.frames[p.cursor],
	}
	p.cursor++
	if p.cursor == len(p.frames) {
		p.phase = Done
	}
	return frame, true
}

// Current returns the latest run ID and its phase.
func (p *Player) Current() (RunID, Phase) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.phase
}

// Revealed returns the cells of the current run shown so far.
func (p *Player) Revealed() domain.Path {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase == Cancelled || p.phase == Idle {
		return nil
	}
	return append(domain.Path(nil), p.frames[:p.cursor]...)
}

// Play calls fn for each frame of run id, one frame per delay.
// It returns when the run finishes, goes stale or ctx is done; only the last case
// returns an error. A non-positive delay selects domain.DefaultStepDelay.
func (p *Player) Play(ctx context.Context, id RunID, delay time.Duration, fn func(Frame)) error {
	if delay <= 0 {
		delay = domain.DefaultStepDelay
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame, ok := p.Step(id)
			if !ok {
				return nil
			}
			fn(frame)
			if frame.Last() {
				return nil
			}
		}
	}
}
