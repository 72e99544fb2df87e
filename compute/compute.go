// Package compute runs the fixed-cadence physics/supervision loop: the
// dedicated goroutine that owns State and Tasks, drains input events,
// steps physics, folds in seer projections, supervises the seer/apprentice
// pair, and publishes State for the renderer through a latest-value
// channel.
package compute

import (
	"math"
	"time"

	"github.com/orbitsim/gravisim/internal/simlog"
	"github.com/orbitsim/gravisim/lvc"
	"github.com/orbitsim/gravisim/physics"
	"github.com/orbitsim/gravisim/seer"
	"github.com/orbitsim/gravisim/simstate"
	"github.com/orbitsim/gravisim/worldinput"
)

// DesiredCPS is the target compute-tick rate.
const DesiredCPS = 1080

// DesiredDelta is the wall-clock budget for one tick at DesiredCPS.
const DesiredDelta = 1.0 / float64(DesiredCPS)

// maxFrameDelta clamps a single tick's measured dt, the way the teacher's
// frame-time resource does, so a debugger pause or a slow startup frame
// can't feed a huge dt into the integrator.
const maxFrameDelta = 0.1

// Start spawns the compute goroutine seeded with initial and fed input
// events non-blockingly from events, and returns the Getter the render
// layer polls for the latest State. The goroutine exits cleanly the first
// time a publish observes a dead Getter.
func Start(initial simstate.State, events <-chan worldinput.InputEvent, log simlog.Logger) *lvc.Getter[simstate.State] {
	if log == nil {
		log = simlog.NewNopLogger()
	}

	getter, updater := lvc.NewChannel(initial.Clone())

	go run(initial, events, updater, log)

	return getter
}

func run(initial simstate.State, events <-chan worldinput.InputEvent, updater *lvc.Updater[simstate.State], log simlog.Logger) {
	state := initial
	tasks := worldinput.NewTasks()
	mouse := worldinput.NewUserMouse(log)
	keys := worldinput.NewUserKeys()
	supervisor := seer.NewSupervisor(state, tasks, log)
	defer supervisor.Close()

	deltaSum := 0.0
	deltaCount := 0
	meanCPS := uint32(DesiredCPS)

	lastTick := time.Now()
	for {
		tickStart := time.Now()
		dt := tickStart.Sub(lastTick).Seconds()
		lastTick = tickStart
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
		if state.Paused {
			dt = 0
		}

		drainEvents(events, &state, mouse, keys, &tasks)

		physics.ComputeState(&state, &tasks, dt)

		state.Drawables.OrbitCurves = supervisor.Curves()
		state.Drawables.ApplyCurveOpacityFade(state.Zoom)

		supervisor.Tick(&state, tasks, dt)

		deltaSum += dt
		deltaCount++
		if deltaSum >= 1.0 {
			meanCPS = uint32(math.Round(1.0 / (deltaSum / float64(deltaCount))))
			deltaSum = 0
			deltaCount = 0
		}
		state.Debug.MeanCPS = meanCPS

		if err := updater.Update(state.Clone()); err != nil {
			log.Debugf("render getter gone, compute loop exiting")
			return
		}

		// UserQuit only flags intent; the loop itself only stops once the
		// renderer drops its Getter, same as the reference implementation
		// where the window-close path is what tears the channel down.

		sleepRemaining := DesiredDelta - time.Since(tickStart).Seconds()
		if sleepRemaining > 0 {
			time.Sleep(time.Duration(sleepRemaining * float64(time.Second)))
		}
	}
}

func drainEvents(events <-chan worldinput.InputEvent, state *simstate.State, mouse *worldinput.UserMouse, keys *worldinput.UserKeys, tasks *worldinput.Tasks) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				state.UserQuit = true
				return
			}
			if event.Kind == worldinput.EventClose {
				state.UserQuit = true
			}
			if event.Kind == worldinput.EventKey && event.Key == worldinput.KeyEscape && event.Pressed {
				state.UserQuit = true
			}
			mouse.Handle(state, event, tasks)
			keys.Handle(state, event, tasks)
		default:
			return
		}
	}
}
