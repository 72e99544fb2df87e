package worldinput

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/simstate"
)

func TestTasks_UpdateConsumesFinishedZoomer(t *testing.T) {
	state := simstate.New(800, 600)
	state.Zoom = 1

	// start far enough in the past that it reads as already-finished now
	start := nowSeconds() - zoomDuration - 1
	zoomer := ZoomToWorld(10, mgl32.Vec2{20, 20}, start, &state)
	tasks := Tasks{Zoom: &zoomer}

	tasks.Update(&state)

	if tasks.Zoom != nil {
		t.Errorf("expected a finished zoomer to be consumed")
	}
	if state.Zoom != 10 {
		t.Errorf("state.Zoom = %v, want 10", state.Zoom)
	}
}

func TestTasks_UpdateFollowsMovingBody(t *testing.T) {
	state := simstate.New(800, 600)
	body := orbit.NewBody(mgl64.Vec2{5, 5}, 1, 1, mgl64.Vec2{})
	state.Drawables.OrbitBodies = []orbit.Body{body}

	id := body.ID
	tasks := Tasks{Follow: &id}
	tasks.Update(&state)

	if state.Origin.X() != 5 || state.Origin.Y() != 5 {
		t.Errorf("origin = %v, want body center", state.Origin)
	}
	if tasks.Follow == nil || *tasks.Follow != id {
		t.Errorf("expected follow to persist across Update")
	}
}

func TestTasks_UpdateDropsFollowForVanishedBody(t *testing.T) {
	state := simstate.New(800, 600)
	missing := orbit.NewBody(mgl64.Vec2{}, 1, 1, mgl64.Vec2{}).ID
	tasks := Tasks{Follow: &missing}

	tasks.Update(&state)

	if tasks.Follow != nil {
		t.Errorf("expected follow to clear when the body no longer exists")
	}
}

func TestTasks_CloneIsIndependent(t *testing.T) {
	state := simstate.New(800, 600)
	zoomer := JustZoom(1, nowSeconds(), &state)
	id := orbit.NewBody(mgl64.Vec2{}, 1, 1, mgl64.Vec2{}).ID
	tasks := Tasks{Zoom: &zoomer, Follow: &id}

	clone := tasks.Clone()
	clone.Follow = nil
	clone.Zoom = nil

	if tasks.Follow == nil || tasks.Zoom == nil {
		t.Errorf("mutating the clone should not affect the original")
	}
}
