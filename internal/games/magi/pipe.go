package magi

import (
	"time"

	"github.com/vovakirdan/flappy-magi/internal/core"
)

// Role tells whether a pipe hangs from the top or stands on the bottom.
type Role int

const (
	RoleTop Role = iota
	RoleBottom
)

// PipeHeight is the drawn and collided length of every pipe in pixels.
const PipeHeight = 300

// Collision bounds are inset from the sprite so grazing an edge is forgiven.
const (
	pipeInsetW = 7
	pipeInsetH = 4
)

// Pipe is a single obstacle. Pipes live by value inside a PipeWave and are
// recycled in place rather than reallocated.
type Pipe struct {
	Pos    core.Vec2 // Top-left corner in world pixels
	Role   Role
	Width  int  // Sprite width in pixels
	Scored bool // Whether the pipe has been counted toward the score
}

// Update moves the pipe horizontally at velocity px/s.
func (p *Pipe) Update(dt time.Duration, velocity float64) {
	p.Pos.X += dt.Seconds() * velocity
}

// Reset moves the pipe to pos and clears its scored flag.
func (p *Pipe) Reset(pos core.Vec2) {
	p.Pos = pos
	p.Scored = false
}

// Rect returns the rectangle the pipe is drawn into.
func (p Pipe) Rect() core.Rect {
	return core.NewRect(int(p.Pos.X), int(p.Pos.Y), p.Width, PipeHeight)
}

// Bound returns the collision rectangle of the pipe.
func (p Pipe) Bound() core.Rect {
	return p.Rect().Inset(pipeInsetW, pipeInsetH)
}
