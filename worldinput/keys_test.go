package worldinput

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/simstate"
)

func fixtureBodies() []orbit.Body {
	return []orbit.Body{
		orbit.NewBody(mgl64.Vec2{10, 0}, 1, 5, mgl64.Vec2{}),
		orbit.NewBody(mgl64.Vec2{20, 0}, 1, 500, mgl64.Vec2{}),
		orbit.NewBody(mgl64.Vec2{30, 0}, 1, 50, mgl64.Vec2{}),
	}
}

func TestUserKeys_DigitSelectsBodyByIndex(t *testing.T) {
	state := simstate.New(800, 600)
	state.Zoom = 1
	state.Drawables.OrbitBodies = fixtureBodies()

	tasks := NewTasks()
	keys := NewUserKeys()
	keys.Handle(&state, InputEvent{Kind: EventKey, Key: Key2, Pressed: true}, &tasks)

	if tasks.Zoom == nil {
		t.Fatal("expected a pending zoom after pressing a mapped digit")
	}
	origin := tasks.Zoom.OriginAt(nowSeconds() + zoomDuration + 1)
	want := vec64to32(state.Drawables.OrbitBodies[1].Center)
	if origin.Sub(want).Len() > 1e-4 {
		t.Errorf("Key2 zoomed toward %v, want body[1] center %v", origin, want)
	}
}

func TestUserKeys_HomeSelectsMostMassive(t *testing.T) {
	state := simstate.New(800, 600)
	state.Zoom = 1
	state.Drawables.OrbitBodies = fixtureBodies()

	tasks := NewTasks()
	keys := NewUserKeys()
	keys.Handle(&state, InputEvent{Kind: EventKey, Key: KeyHome, Pressed: true}, &tasks)

	if tasks.Zoom == nil {
		t.Fatal("expected a pending zoom after pressing Home")
	}
	origin := tasks.Zoom.OriginAt(nowSeconds() + zoomDuration + 1)
	want := vec64to32(state.Drawables.OrbitBodies[1].Center)
	if origin.Sub(want).Len() > 1e-4 {
		t.Errorf("Home zoomed toward %v, want most-massive body center %v", origin, want)
	}
}

func TestUserKeys_UnmappedKeyIgnored(t *testing.T) {
	state := simstate.New(800, 600)
	state.Drawables.OrbitBodies = fixtureBodies()

	tasks := NewTasks()
	keys := NewUserKeys()
	keys.Handle(&state, InputEvent{Kind: EventKey, Key: KeyEscape, Pressed: true}, &tasks)

	if tasks.Zoom != nil {
		t.Errorf("expected no zoom task for an unmapped key")
	}
}

func TestUserKeys_OutOfRangeDigitIgnored(t *testing.T) {
	state := simstate.New(800, 600)
	state.Drawables.OrbitBodies = fixtureBodies()

	tasks := NewTasks()
	keys := NewUserKeys()
	keys.Handle(&state, InputEvent{Kind: EventKey, Key: Key9, Pressed: true}, &tasks)

	if tasks.Zoom != nil {
		t.Errorf("expected no zoom task when the indexed body does not exist")
	}
}
