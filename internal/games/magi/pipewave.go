package magi

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-magi/internal/config"
	"github.com/vovakirdan/flappy-magi/internal/core"
)

const (
	pairCount = 3
	poolSize  = 2 * pairCount

	// A head pair whose bound ends left of this x is recycled.
	pipeRecycleEdge = -5
	// A pipe scores once the player is this far past its right edge.
	scoreMargin = 5
)

// Vertical placement ranges for a freshly placed pair.
const (
	topMinY    = -200.0
	topSpan    = 200.0
	bottomMinY = 240.0
	bottomSpan = 240.0

	// A bottom pipe never starts above this line; it is pushed to bottomFloor.
	bottomLimit = 300.0
	bottomFloor = 301.0
)

// PipeWave is an endless stream of top/bottom pipe pairs built from a fixed
// pool of six pipes. The pool is a ring: head indexes the leftmost pipe and
// pairs are stored top first. When the head pair scrolls off screen it is
// re-placed behind the tail pair, so the stream never allocates while playing.
type PipeWave struct {
	pipes [poolSize]Pipe
	head  int
	score int
	rng   *rand.Rand
	cfg   *config.Config
}

// NewPipeWave creates a pipe wave with three pairs ahead of the player.
// topWidth and bottomWidth are the pipe sprite widths.
func NewPipeWave(cfg *config.Config, seed int64, topWidth, bottomWidth int) *PipeWave {
	w := &PipeWave{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
	for i := range w.pipes {
		if i%2 == 0 {
			w.pipes[i] = Pipe{Role: RoleTop, Width: topWidth}
		} else {
			w.pipes[i] = Pipe{Role: RoleBottom, Width: bottomWidth}
		}
	}
	w.Reset()
	return w
}

// Seed replaces the random source used for pipe placement.
func (w *PipeWave) Seed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// Reset clears the score and lays out three fresh pairs starting at FirstPipeX.
func (w *PipeWave) Reset() {
	w.score = 0
	w.head = 0
	for i := 0; i < pairCount; i++ {
		x := float64(w.cfg.FirstPipeX + i*w.cfg.PipeStride)
		top, bottom := w.SelectPairPositions()
		w.pipes[2*i].Reset(core.Vec2{X: x, Y: top})
		w.pipes[2*i+1].Reset(core.Vec2{X: x, Y: bottom})
	}
}

// SelectPairPositions draws the y positions of a new top/bottom pair.
// The two corrections run in this order on every call: first the gap is
// widened to at least PipeHeight+PipeIntervalMin, then a bottom pipe above
// the midline is pushed down.
func (w *PipeWave) SelectPairPositions() (top, bottom float64) {
	top = w.rng.Float64()*topSpan + topMinY
	bottom = w.rng.Float64()*bottomSpan + bottomMinY

	minGap := float64(PipeHeight + w.cfg.PipeIntervalMin)
	if bottom-top < minGap {
		bottom = top + minGap
	}
	if bottom < bottomLimit {
		bottom = bottomFloor
	}
	return top, bottom
}

// Update scrolls every pipe and recycles the head pair once it is off screen.
// At most one pair is recycled per call.
func (w *PipeWave) Update(dt time.Duration) {
	velocity := float64(w.cfg.BackgroundVelocity)
	for i := range w.pipes {
		w.pipes[i].Update(dt, velocity)
	}

	if w.at(0).Bound().Right() >= pipeRecycleEdge {
		return
	}

	x := float64(w.at(poolSize-1).Bound().X + w.cfg.PipeStride)
	top, bottom := w.SelectPairPositions()
	w.at(0).Reset(core.Vec2{X: x, Y: top})
	w.at(1).Reset(core.Vec2{X: x, Y: bottom})
	w.head = (w.head + 2) % poolSize
}

// Collide reports whether bound strictly overlaps any pipe's bound.
func (w *PipeWave) Collide(bound core.Rect) bool {
	for i := range w.pipes {
		if bound.Intersects(w.pipes[i].Bound()) {
			return true
		}
	}
	return false
}

// JudgeScore marks every pipe the player has cleared as scored and adds one
// point per two newly scored pipes. An odd leftover pipe is dropped, not
// carried to the next call. Returns the points added.
func (w *PipeWave) JudgeScore(bound core.Rect) int {
	count := 0
	for i := range w.pipes {
		p := &w.pipes[i]
		if p.Scored {
			continue
		}
		if bound.X > p.Bound().Right()+scoreMargin {
			p.Scored = true
			count++
		}
	}
	points := count / 2
	w.score += points
	return points
}

// Score returns the running score.
func (w *PipeWave) Score() int {
	return w.score
}

// Len returns the number of pipes in the stream. It is always six.
func (w *PipeWave) Len() int {
	return len(w.pipes)
}

// At returns the i-th pipe in stream order; 0 is the leftmost top pipe.
func (w *PipeWave) At(i int) Pipe {
	return *w.at(i)
}

func (w *PipeWave) at(i int) *Pipe {
	return &w.pipes[(w.head+i)%poolSize]
}

// Each calls fn with every pipe in stream order.
func (w *PipeWave) Each(fn func(Pipe)) {
	for i := 0; i < poolSize; i++ {
		fn(*w.at(i))
	}
}
