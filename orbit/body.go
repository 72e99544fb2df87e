// Package orbit holds the ordered-sequence data types the simulation
// publishes for rendering: bodies under gravity and the trajectory curves
// projected ahead of them by a seer.
package orbit

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Body is one gravitating point mass. Created at world init, mutated only
// inside the compute loop or on a seer's private cloned copy, never
// destroyed — IDs are stable for the lifetime of a run.
type Body struct {
	ID       uuid.UUID
	Center   mgl64.Vec2
	Radius   float64
	Mass     float64
	Velocity mgl64.Vec2
}

// NewBody constructs a Body with a fresh stable ID.
func NewBody(center mgl64.Vec2, radius, mass float64, velocity mgl64.Vec2) Body {
	return Body{
		ID:       uuid.New(),
		Center:   center,
		Radius:   radius,
		Mass:     mass,
		Velocity: velocity,
	}
}
