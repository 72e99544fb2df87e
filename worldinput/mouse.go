package worldinput

import (
	"time"

	"github.com/orbitsim/gravisim/internal/simlog"
	"github.com/orbitsim/gravisim/simstate"
)

const (
	minZoom = 0.5
	maxZoom = 70.0

	dblClickWindow = 500 * time.Millisecond
)

// UserMouse tracks the pointer and left-button state needed to turn a raw
// InputEvent stream into wheel-zoom, drag-pan, and double-click-to-follow
// tasks.
type UserMouse struct {
	log simlog.Logger

	leftDown      bool
	leftDownAt    [2]int32
	lastPosition  [2]int32
	lastLeftClick time.Time
}

// NewUserMouse returns a UserMouse with its double-click timer initialized
// far enough in the past that the first click is never mistaken for one.
func NewUserMouse(log simlog.Logger) *UserMouse {
	return &UserMouse{
		log:           log,
		lastLeftClick: time.Now().Add(-999 * time.Second),
	}
}

// Handle applies one InputEvent to state/tasks. Unrecognized kinds are
// ignored.
func (m *UserMouse) Handle(state *simstate.State, event InputEvent, tasks *Tasks) {
	switch event.Kind {
	case EventWheel:
		m.handleWheel(state, event.WheelDY, tasks)
	case EventMouseDown:
		if event.Button == MouseLeft {
			m.handleLeftDown(state, tasks)
		}
	case EventMouseUp:
		if event.Button == MouseLeft && m.leftDown {
			m.log.Debugf("left-drag %v -> %v", m.leftDownAt, m.lastPosition)
			m.leftDown = false
		}
	case EventMouseMove:
		m.handleMove(state, event.X, event.Y)
	}
}

func (m *UserMouse) handleWheel(state *simstate.State, dy float32, tasks *Tasks) {
	currentZoom := state.Zoom
	if tasks.Zoom != nil {
		currentZoom = tasks.Zoom.ZoomDestination()
	}

	var factor float32
	if dy < 0 {
		factor = currentZoom
	} else {
		factor = currentZoom / 2
	}
	newZoom := currentZoom - factor*dy
	if newZoom < minZoom {
		newZoom = minZoom
	} else if newZoom > maxZoom {
		newZoom = maxZoom
	}

	zoomer := ZoomToScreen(newZoom, m.lastPosition[0], m.lastPosition[1], nowSeconds(), state)
	tasks.Zoom = &zoomer
	m.log.Debugf("wheel: zooming %.2f -> %.2f toward (%d,%d)",
		state.Zoom, newZoom, m.lastPosition[0], m.lastPosition[1])
}

func (m *UserMouse) handleLeftDown(state *simstate.State, tasks *Tasks) {
	m.leftDown = true
	m.leftDownAt = m.lastPosition

	// a new press always cancels whatever was in flight
	tasks.Zoom = nil
	tasks.Follow = nil

	if time.Since(m.lastLeftClick) < dblClickWindow {
		m.handleDoubleClick(state, tasks)
	}
	m.lastLeftClick = time.Now()
}

func (m *UserMouse) handleDoubleClick(state *simstate.State, tasks *Tasks) {
	clickPos := state.ScreenToWorld(m.lastPosition[0], m.lastPosition[1])
	m.log.Debugf("dbl click at %v => world %v", m.lastPosition, clickPos)

	for i := range state.Drawables.OrbitBodies {
		body := &state.Drawables.OrbitBodies[i]
		center := vec64to32(body.Center)
		if clickPos.Sub(center).Len() < float32(body.Radius) {
			m.log.Infof("following body %s", body.ID)
			zoomer := JustZoom(state.Zoom, nowSeconds(), state)
			tasks.Zoom = &zoomer
			id := body.ID
			tasks.Follow = &id
			return
		}
	}
}

func (m *UserMouse) handleMove(state *simstate.State, x, y int32) {
	if m.leftDown {
		from := state.ScreenToWorld(m.lastPosition[0], m.lastPosition[1])
		to := state.ScreenToWorld(x, y)
		state.Origin = state.Origin.Add(from.Sub(to))
	}
	m.lastPosition = [2]int32{x, y}
}
