package magi

import "math"

// Facing is the coarse direction the Magi sprite is drawn in.
type Facing int

const (
	FacingRise    Facing = iota // Climbing
	FacingLevel                 // Within 15° below horizontal
	FacingDescend               // Between 15° and 75° below
	FacingDive                  // Steeper than 75°
)

const (
	levelLimit   = -15 * math.Pi / 180
	descendLimit = -75 * math.Pi / 180
)

// FacingFor picks a facing from the Magi velocity. The horizontal component
// is the opposite of the scroll speed, since the world moves and the Magi
// does not.
func FacingFor(vy, scrollVelocity float64) Facing {
	angle := math.Atan2(-vy, -scrollVelocity)
	switch {
	case angle > 0:
		return FacingRise
	case angle > levelLimit:
		return FacingLevel
	case angle > descendLimit:
		return FacingDescend
	default:
		return FacingDive
	}
}

// String returns the angle suffix used in texture names.
func (f Facing) String() string {
	switch f {
	case FacingRise:
		return "20"
	case FacingLevel:
		return "0"
	case FacingDescend:
		return "-20"
	case FacingDive:
		return "-90"
	default:
		return "0"
	}
}

var frameNames = [FrameCount]string{"up", "mid", "down"}

// MagiTextureKey returns the texture name for a facing and animation frame.
func MagiTextureKey(f Facing, frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return "Magi/" + frameNames[frame%FrameCount] + "." + f.String()
}

// Phase is the time of day shown by one background tile.
type Phase int

const (
	PhaseDay Phase = iota
	PhaseNight
)

// BackgroundTextureKey returns the texture name for a background phase.
func BackgroundTextureKey(p Phase) string {
	if p == PhaseNight {
		return "Back/night"
	}
	return "Back/day"
}

// GroundTextureKey is the texture drawn under every background tile.
const GroundTextureKey = "Back/ground"

// PipeTextureKey returns the texture name for a pipe role.
func PipeTextureKey(r Role) string {
	if r == RoleBottom {
		return "Pipe/bottom"
	}
	return "Pipe/top"
}
