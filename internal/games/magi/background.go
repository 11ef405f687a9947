package magi

import (
	"time"

	"github.com/vovakirdan/flappy-magi/internal/config"
)

const (
	// SkyHeight is where the ground strip starts.
	SkyHeight = 520
	// GroundHeight is the height of the ground strip.
	GroundHeight = 80

	tileCount = 3
	// The leftmost tile is recycled once its right edge passes this x.
	tileRecycleEdge = -10
)

// Background is three horizontally adjacent sky tiles with a ground strip,
// scrolling left and cycling between day and night. A tile keeps the phase
// it was created with; only tiles entering on the right pick up a change.
type Background struct {
	cfg   *config.Config
	tileW int

	xs     [tileCount]float64
	phases [tileCount]Phase

	dayTime time.Duration
	isDay   bool
}

// NewBackground creates a background of tiles tileW pixels wide.
func NewBackground(cfg *config.Config, tileW int) *Background {
	b := &Background{cfg: cfg, tileW: tileW}
	b.Reset()
	return b
}

// Reset returns to daytime with the first tile at x=0.
func (b *Background) Reset() {
	b.dayTime = 0
	b.isDay = true
	for i := range b.xs {
		b.xs[i] = float64(i * b.tileW)
		b.phases[i] = PhaseDay
	}
}

// Update advances the day clock and scrolls the tiles.
func (b *Background) Update(dt time.Duration) {
	oneDay := time.Duration(b.cfg.OneDayTime) * time.Millisecond
	b.dayTime += dt
	if b.dayTime > oneDay {
		b.dayTime -= oneDay
		b.isDay = !b.isDay
	}

	dx := dt.Seconds() * float64(b.cfg.BackgroundVelocity)
	for i := range b.xs {
		b.xs[i] += dx
	}

	if b.xs[0]+float64(b.tileW) < tileRecycleEdge {
		b.xs[0] = b.xs[1]
		b.xs[1] = b.xs[2]
		b.xs[2] = b.xs[1] + float64(b.tileW)

		b.phases[0] = b.phases[1]
		b.phases[1] = b.phases[2]
		b.phases[2] = b.phase()
	}
}

func (b *Background) phase() Phase {
	if b.isDay {
		return PhaseDay
	}
	return PhaseNight
}

// IsDay reports whether the day clock is in its day half.
func (b *Background) IsDay() bool {
	return b.isDay
}

// Offsets returns the x positions of the three tiles, left to right.
func (b *Background) Offsets() [tileCount]float64 {
	return b.xs
}

// Phases returns the phase of each tile, left to right.
func (b *Background) Phases() [tileCount]Phase {
	return b.phases
}

// TileWidth returns the width of one tile in pixels.
func (b *Background) TileWidth() int {
	return b.tileW
}
