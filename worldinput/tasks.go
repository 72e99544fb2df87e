package worldinput

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/orbitsim/gravisim/simstate"
)

// Tasks holds the pending, possibly-in-flight zoom transition and the body
// being followed, if any. It is value-cloneable (Clone) so a snapshot can be
// handed to a freshly spawned seer — the follow-body id is stable across
// clones.
type Tasks struct {
	Zoom   *Zoomer
	Follow *uuid.UUID
}

// NewTasks returns an empty Tasks.
func NewTasks() Tasks {
	return Tasks{}
}

// Clone returns a copy with its own Zoom and Follow pointers. The copied
// Zoomer still points at the same Easer as the source, so retargeting one
// (UpdateOriginDestination) also retargets the other.
func (t Tasks) Clone() Tasks {
	clone := t
	if t.Zoom != nil {
		z := *t.Zoom
		clone.Zoom = &z
	}
	if t.Follow != nil {
		id := *t.Follow
		clone.Follow = &id
	}
	return clone
}

// WorldAffecting strips the user-visual-only fields that do not affect
// world evolution — a seer never needs to know about zoom or follow, only
// the bodies themselves, so it is handed a Tasks with both cleared.
func (t Tasks) WorldAffecting() Tasks {
	return NewTasks()
}

type followedBody struct {
	id     uuid.UUID
	center mgl32.Vec2
}

func vec64to32(v mgl64.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X()), float32(v.Y())}
}

// Update applies follow-tracking and samples the active Zoomer, exactly the
// work compute_state does between the velocity and position integration
// passes.
func (t *Tasks) Update(state *simstate.State) {
	now := nowSeconds()

	var following *followedBody
	if t.Follow != nil {
		id := *t.Follow
		t.Follow = nil
		for i := range state.Drawables.OrbitBodies {
			if state.Drawables.OrbitBodies[i].ID == id {
				following = &followedBody{id: id, center: vec64to32(state.Drawables.OrbitBodies[i].Center)}
				break
			}
		}
	}

	if t.Zoom != nil {
		zoomer := t.Zoom
		t.Zoom = nil
		if following != nil {
			zoomer.UpdateOriginDestination(following.center)
			id := following.id
			t.Follow = &id
		}
		state.Zoom = zoomer.ZoomAt(now)
		state.Origin = zoomer.OriginAt(now)
		if !zoomer.FinishedAt(now) {
			t.Zoom = zoomer
		}
		return
	}

	if following != nil {
		state.Origin = following.center
		id := following.id
		t.Follow = &id
	}
}
