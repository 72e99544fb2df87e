package worldinput

import (
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/simstate"
)

// UserKeys maps digit keys to the orbit body at that index (Key1 selects
// index 0, Key0 selects index 9) and Home to the most massive body, and
// zooms-to-world on press.
type UserKeys struct{}

// NewUserKeys returns a ready-to-use UserKeys; it holds no state.
func NewUserKeys() *UserKeys {
	return &UserKeys{}
}

// Handle applies one InputEvent to state/tasks. Only key-press events that
// resolve to a known slot are meaningful; everything else is ignored.
func (k *UserKeys) Handle(state *simstate.State, event InputEvent, tasks *Tasks) {
	if event.Kind != EventKey || !event.Pressed {
		return
	}

	bodies := state.Drawables.OrbitBodies
	var target *int
	switch event.Key {
	case KeyHome:
		if idx := mostMassiveIndex(bodies); idx >= 0 {
			target = &idx
		}
	case Key1:
		target = indexIfPresent(bodies, 0)
	case Key2:
		target = indexIfPresent(bodies, 1)
	case Key3:
		target = indexIfPresent(bodies, 2)
	case Key4:
		target = indexIfPresent(bodies, 3)
	case Key5:
		target = indexIfPresent(bodies, 4)
	case Key6:
		target = indexIfPresent(bodies, 5)
	case Key7:
		target = indexIfPresent(bodies, 6)
	case Key8:
		target = indexIfPresent(bodies, 7)
	case Key9:
		target = indexIfPresent(bodies, 8)
	case Key0:
		target = indexIfPresent(bodies, 9)
	}
	if target == nil {
		return
	}

	body := bodies[*target]
	tasks.Follow = nil
	zoomer := ZoomToWorld(state.Zoom, vec64to32(body.Center), nowSeconds(), state)
	tasks.Zoom = &zoomer
}

func indexIfPresent(bodies []orbit.Body, i int) *int {
	if i < 0 || i >= len(bodies) {
		return nil
	}
	idx := i
	return &idx
}

func mostMassiveIndex(bodies []orbit.Body) int {
	best := -1
	var bestMass float64
	for i, b := range bodies {
		if best == -1 || b.Mass > bestMass {
			best = i
			bestMass = b.Mass
		}
	}
	return best
}
