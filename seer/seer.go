// Package seer runs a forward simulation of the world ahead of the main
// compute loop's own timeline, publishing trajectory curves for the
// renderer, and supervises an apprentice replacement whenever the running
// seer's projections drift or the view needs finer accuracy.
package seer

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/orbitsim/gravisim/internal/simlog"
	"github.com/orbitsim/gravisim/lvc"
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/physics"
	"github.com/orbitsim/gravisim/simstate"
	"github.com/orbitsim/gravisim/worldinput"
)

// ComputeDelta is the fixed step a seer advances its local world by on every
// iteration, independent of the main loop's own (variable) dt.
const ComputeDelta = 0.001

// MaxPlots bounds how far ahead a seer is allowed to project before it stops
// advancing and waits for the main loop to consume some of the lead.
const MaxPlots = 50_000

// FaultTolerance is the maximum distance a body may sit from the head of its
// own curve before the supervisor considers the seer's projections stale.
const FaultTolerance = 0.5

// MinPlotDistanceAtZoom returns the filter minimum-distance for the given
// zoom level, chosen so curve visual density stays roughly constant across
// the zoom range.
func MinPlotDistanceAtZoom(zoom float32) float64 {
	switch {
	case zoom >= 8.5:
		return 0.27
	case zoom >= 4.5:
		return 0.18
	case zoom >= 2.5:
		return 0.15
	case zoom >= 1.5:
		return 0.10
	default:
		return 0.05
	}
}

// Seer owns a background goroutine running a private copy of the world
// forward in time, publishing filtered trajectory curves through its own
// latest-value channel. It never shares mutable state with the compute
// loop's own State.
type Seer struct {
	projection      *lvc.Getter[[]orbit.Curve]
	mainDeltas      chan float64
	MinPlotDistance float64
}

// New spawns a Seer seeded from a snapshot of state and tasks (stripped of
// user-visual-only fields via WorldAffecting). The seer's target accuracy is
// derived from the destination zoom of any active Zoomer in tasks, falling
// back to state's current zoom.
func New(initial simstate.State, tasks worldinput.Tasks, log simlog.Logger) *Seer {
	if log == nil {
		log = simlog.NewNopLogger()
	}

	mainDeltas := make(chan float64, 4096)
	getter, updater := lvc.NewChannel[[]orbit.Curve](nil)
	minPlotDistance := MinPlotDistanceAtZoom(targetZoom(initial, tasks))

	go run(initial, tasks.WorldAffecting(), mainDeltas, updater, minPlotDistance, log)

	return &Seer{
		projection:      getter,
		mainDeltas:      mainDeltas,
		MinPlotDistance: minPlotDistance,
	}
}

// targetZoom is the zoom a seer should aim its filter accuracy at: the
// destination of an in-flight Zoomer if one exists, otherwise the state's
// current zoom.
func targetZoom(state simstate.State, tasks worldinput.Tasks) float32 {
	if tasks.Zoom != nil {
		return tasks.Zoom.ZoomDestination()
	}
	return state.Zoom
}

// Advance forwards one tick's worth of real elapsed time to the seer's
// reconciliation math. Never blocks: mainDeltas is generously buffered and
// the seer drains it every iteration.
func (s *Seer) Advance(dt float64) {
	select {
	case s.mainDeltas <- dt:
	default:
		// seer has fallen behind its delta queue and the buffer is full;
		// this dt is dropped and never reaches the seer's reconciliation,
		// rather than blocking the compute loop on a slow seer.
	}
}

// LatestCurves returns the most recently published, filtered trajectory
// curves. A seer publishes nothing until its first filter pass completes;
// until then the channel holds its initial nil value and this returns nil.
func (s *Seer) LatestCurves() []orbit.Curve {
	curves := *s.projection.Latest()
	if curves == nil {
		return nil
	}
	return curves
}

// Close tears down the seer's output channel, the signal its goroutine uses
// to detect it has been forgotten and exit.
func (s *Seer) Close() {
	s.projection.Close()
}

// plotLength is a seer's current projected coverage: its first curve's plot
// count times its filter granularity. Used by the supervisor to compare
// fidelity between a master and its apprentice.
func (s *Seer) plotLength() float64 {
	curves := s.LatestCurves()
	if len(curves) == 0 {
		return 0
	}
	return float64(len(curves[0].Plots)) * s.MinPlotDistance
}

// IsApproxAsGoodAs reports whether s's projected coverage is within 1% of
// other's — the promotion threshold.
func (s *Seer) IsApproxAsGoodAs(other *Seer) bool {
	return s.plotLength() >= other.plotLength()*0.99
}

func run(initial simstate.State, tasks worldinput.Tasks, mainDeltas <-chan float64, out *lvc.Updater[[]orbit.Curve], minPlotDistance float64, log simlog.Logger) {
	me := uuid.New()
	state := initial.Clone()
	plots := 0
	mainDeltasAhead := 0.0
	filtering := false
	filtered := make(chan []orbit.Curve, 1)

	state.Drawables.OrbitCurves = make([]orbit.Curve, len(state.Drawables.OrbitBodies))
	for i, body := range state.Drawables.OrbitBodies {
		curve := orbit.NewCurve()
		curve.Plots = append(curve.Plots, body.Center)
		state.Drawables.OrbitCurves[i] = curve
	}

	for {
		drainDeltas(mainDeltas, &mainDeltasAhead)

		outdated := int(math.Floor(mainDeltasAhead / ComputeDelta))
		if outdated > 0 {
			mainDeltasAhead -= float64(outdated) * ComputeDelta
			if plots > outdated {
				plots -= outdated
			} else {
				plots = 0
			}
			for i := range state.Drawables.OrbitCurves {
				state.Drawables.OrbitCurves[i].RemoveOldestPlots(outdated)
			}
		}

		if plots >= MaxPlots {
			if out.IsGetterDead() {
				log.Debugf("seer %s forgotten", me)
				return
			}
			time.Sleep(time.Duration(ComputeDelta * 0.5 * float64(time.Second)))
			continue
		}

		physics.ComputeState(&state, &tasks, ComputeDelta)
		for i := range state.Drawables.OrbitCurves {
			body := state.Drawables.OrbitBodies[i]
			state.Drawables.OrbitCurves[i].Plots = append(state.Drawables.OrbitCurves[i].Plots, body.Center)
		}
		plots++

		if !filtering {
			snapshot := orbit.CloneCurves(state.Drawables.OrbitCurves)
			go filterJob(snapshot, minPlotDistance, filtered)
			filtering = true
		}

		select {
		case curves := <-filtered:
			if err := out.Update(curves); err != nil {
				log.Debugf("seer %s forgotten", me)
				return
			}
			filtering = false
		default:
		}
	}
}

func drainDeltas(deltas <-chan float64, sum *float64) {
	for {
		select {
		case d := <-deltas:
			*sum += d
		default:
			return
		}
	}
}

func filterJob(curves []orbit.Curve, minPlotDistance float64, result chan<- []orbit.Curve) {
	filtered := orbit.ReduceCurves(curves, minPlotDistance)
	select {
	case result <- filtered:
	default:
		// a previous job's result is still unread; drop ours rather than
		// block, the next successful publish will be fresher anyway.
	}
}
