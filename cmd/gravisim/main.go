// Command gravisim opens a window and drives the simulation's compute
// loop, translating glfw input callbacks into worldinput.InputEvent
// values. Rendering the published State is left to an external
// collaborator — this binary wires the event and simulation plumbing
// only, exercising the package boundary the windowing layer sits behind.
package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/orbitsim/gravisim"
	"github.com/orbitsim/gravisim/compute"
	"github.com/orbitsim/gravisim/internal/simlog"
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/simstate"
	"github.com/orbitsim/gravisim/worldinput"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	width := flag.Uint("width", 1280, "window width")
	height := flag.Uint("height", 720, "window height")
	flag.Parse()

	cfg := gravisim.DefaultConfig()
	cfg.Debug = *debug
	cfg.ScreenWidth = uint32(*width)
	cfg.ScreenHeight = uint32(*height)

	log := simlog.NewDefaultLogger("gravisim", cfg.Debug)

	if err := glfw.Init(); err != nil {
		log.Errorf("glfw init: %v", err)
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(int(cfg.ScreenWidth), int(cfg.ScreenHeight), "gravisim", nil, nil)
	if err != nil {
		log.Errorf("create window: %v", err)
		return
	}
	defer window.Destroy()

	events := make(chan worldinput.InputEvent, 256)

	window.SetCloseCallback(func(w *glfw.Window) {
		nonBlockingSend(events, worldinput.InputEvent{Kind: worldinput.EventClose})
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		nonBlockingSend(events, worldinput.InputEvent{Kind: worldinput.EventWheel, WheelDY: float32(yoff)})
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		nonBlockingSend(events, worldinput.InputEvent{Kind: worldinput.EventMouseMove, X: int32(xpos), Y: int32(ypos)})
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		kind := worldinput.EventMouseUp
		if action == glfw.Press {
			kind = worldinput.EventMouseDown
		}
		nonBlockingSend(events, worldinput.InputEvent{Kind: kind, Button: worldinput.MouseLeft})
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Release {
			return
		}
		code, ok := translateKey(key)
		if !ok {
			return
		}
		nonBlockingSend(events, worldinput.InputEvent{Kind: worldinput.EventKey, Key: code, Pressed: action == glfw.Press})
	})

	initial := simstate.New(cfg.ScreenWidth, cfg.ScreenHeight)
	initial.Drawables.OrbitBodies = demoBodies()

	state := compute.Start(initial, events, log)
	defer state.Close()

	for !window.ShouldClose() {
		glfw.PollEvents()
		snapshot := *state.Latest()
		if snapshot.UserQuit {
			window.SetShouldClose(true)
		}
		// render(snapshot) belongs to an external collaborator: this
		// binary's job ends at publishing InputEvents in and reading
		// State back out.
	}
}

func nonBlockingSend(events chan<- worldinput.InputEvent, event worldinput.InputEvent) {
	select {
	case events <- event:
	default:
		// the compute loop drains every tick at 1080Hz; a full buffer here
		// means it has stopped, in which case dropping input is moot.
	}
}

func translateKey(key glfw.Key) (worldinput.KeyCode, bool) {
	switch key {
	case glfw.KeyEscape:
		return worldinput.KeyEscape, true
	case glfw.KeyHome:
		return worldinput.KeyHome, true
	case glfw.Key0:
		return worldinput.Key0, true
	case glfw.Key1:
		return worldinput.Key1, true
	case glfw.Key2:
		return worldinput.Key2, true
	case glfw.Key3:
		return worldinput.Key3, true
	case glfw.Key4:
		return worldinput.Key4, true
	case glfw.Key5:
		return worldinput.Key5, true
	case glfw.Key6:
		return worldinput.Key6, true
	case glfw.Key7:
		return worldinput.Key7, true
	case glfw.Key8:
		return worldinput.Key8, true
	case glfw.Key9:
		return worldinput.Key9, true
	default:
		return worldinput.KeyUnknown, false
	}
}

// demoBodies seeds a simple three-body system so the window has something
// to simulate on first launch.
func demoBodies() []orbit.Body {
	return []orbit.Body{
		orbit.NewBody(mgl64.Vec2{0, 0}, 1.2, 1660, mgl64.Vec2{0, -1}),
		orbit.NewBody(mgl64.Vec2{3.5, 0}, 0.9, 1000, mgl64.Vec2{0, 1.6}),
		orbit.NewBody(mgl64.Vec2{9, 0}, 0.3, 1, mgl64.Vec2{0, 2}),
	}
}
