package magi

import (
	"time"

	"github.com/vovakirdan/flappy-magi/internal/config"
	"github.com/vovakirdan/flappy-magi/internal/core"
)

const (
	// GroundY is the height past which the Magi lands and stays put.
	GroundY = 525

	// FrameCount is the number of wing animation frames.
	FrameCount = 3
	// FrameTime is how long each animation frame is shown.
	FrameTime = 100 * time.Millisecond

	magiInset = 4
)

// Magi is the player character.
type Magi struct {
	cfg *config.Config

	pos core.Vec2
	vel core.Vec2
	w   int // Sprite size in pixels
	h   int

	dead     bool
	grounded bool

	frame     int
	frameTime time.Duration
}

// NewMagi creates a living Magi at pos. w and h are the sprite size.
func NewMagi(cfg *config.Config, w, h int, pos, vel core.Vec2) *Magi {
	m := &Magi{cfg: cfg, w: w, h: h}
	m.Reset(pos, vel)
	return m
}

// Reset brings the Magi back to life at pos with velocity vel.
func (m *Magi) Reset(pos, vel core.Vec2) {
	m.pos = pos
	m.vel = vel
	m.dead = false
	m.grounded = false
	m.frame = 0
	m.frameTime = 0
}

// Die kills the Magi. Calling it again has no further effect.
func (m *Magi) Die() {
	if m.dead {
		return
	}
	m.dead = true
	m.vel = core.Vec2{X: 0, Y: float64(m.cfg.DeadVelocity)}
}

// Update advances the Magi by dt. flap is honoured only while alive.
// A grounded Magi never changes again until Reset.
func (m *Magi) Update(dt time.Duration, flap bool) {
	if m.grounded {
		return
	}
	secs := dt.Seconds()

	if !m.dead {
		m.vel.Y += float64(m.cfg.GravityAcceleration) * secs
		if flap {
			m.vel.Y = float64(m.cfg.FlapVelocity)
		}
	}

	m.pos = m.pos.Add(m.vel.Scale(secs))
	if m.pos.Y > GroundY {
		m.Die()
		m.grounded = true
	}

	m.frameTime += dt
	if m.frameTime > FrameTime {
		m.frame = (m.frame + 1) % FrameCount
		m.frameTime -= FrameTime
	}
}

// Bound returns the collision rectangle.
func (m *Magi) Bound() core.Rect {
	return core.NewRect(int(m.pos.X), int(m.pos.Y), m.w, m.h).Inset(magiInset, magiInset)
}

// Rect returns the rectangle the sprite is drawn into.
func (m *Magi) Rect() core.Rect {
	return core.NewRect(int(m.pos.X), int(m.pos.Y), m.w, m.h)
}

// Facing returns the direction the sprite should be drawn in.
func (m *Magi) Facing() Facing {
	return FacingFor(m.vel.Y, float64(m.cfg.BackgroundVelocity))
}

// TextureKey returns the texture for the current facing and frame.
func (m *Magi) TextureKey() string {
	return MagiTextureKey(m.Facing(), m.frame)
}

func (m *Magi) Position() core.Vec2 { return m.pos }
func (m *Magi) Velocity() core.Vec2 { return m.vel }
func (m *Magi) IsDead() bool        { return m.dead }
func (m *Magi) IsOnGround() bool    { return m.grounded }
func (m *Magi) Frame() int          { return m.frame }
