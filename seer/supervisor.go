package seer

import (
	"github.com/orbitsim/gravisim/internal/simlog"
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/simstate"
	"github.com/orbitsim/gravisim/worldinput"
)

// Supervisor owns the live seer and, while one is being trained, an
// apprentice. At most one apprentice exists at a time: training is
// sequential, never speculative on more than one replacement.
type Supervisor struct {
	log        simlog.Logger
	seer       *Seer
	apprentice *Seer
}

// NewSupervisor spawns the initial seer from a snapshot of state/tasks.
func NewSupervisor(initial simstate.State, tasks worldinput.Tasks, log simlog.Logger) *Supervisor {
	if log == nil {
		log = simlog.NewNopLogger()
	}
	return &Supervisor{
		log:  log,
		seer: New(initial, tasks, log),
	}
}

// Curves returns the live seer's latest published projection, the value the
// compute loop folds into State.Drawables.OrbitCurves each tick.
func (sv *Supervisor) Curves() []orbit.Curve {
	return sv.seer.LatestCurves()
}

// Tick runs one supervision step: decide whether to spawn an apprentice,
// decide whether an existing apprentice has earned promotion, and forward
// dt to whichever seers are live. state and tasks should already reflect
// this tick's compute_state result — Tick is meant to run immediately after
// folding projections into state, mirroring the compute loop's ordering.
func (sv *Supervisor) Tick(state *simstate.State, tasks worldinput.Tasks, dt float64) {
	if sv.apprentice == nil {
		if sv.shouldSpawnApprentice(state, tasks) {
			sv.log.Debugf("curve mismatch or accuracy change detected, spawning apprentice seer")
			sv.apprentice = New(*state, tasks, sv.log)
		}
	} else if len(state.Drawables.OrbitCurves) > 0 {
		if sv.apprentice.IsApproxAsGoodAs(sv.seer) {
			sv.log.Debugf("promoting apprentice seer")
			sv.seer.Close()
			sv.seer = sv.apprentice
			sv.apprentice = nil
		}
		// otherwise the apprentice keeps training, unchanged
	} else {
		sv.log.Warnf("apprentice in training but no curves to compare against")
	}

	sv.seer.Advance(dt)
	if sv.apprentice != nil {
		sv.apprentice.Advance(dt)
	}
}

func (sv *Supervisor) shouldSpawnApprentice(state *simstate.State, tasks worldinput.Tasks) bool {
	if state.Drawables.CurveBodyMismatch(FaultTolerance) {
		return true
	}
	zoom := targetZoom(*state, tasks)
	if zoom > state.Zoom {
		zoom = state.Zoom
	}
	return sv.seer.MinPlotDistance != MinPlotDistanceAtZoom(zoom)
}

// Close releases both the live seer's and, if present, the apprentice's
// output channels — the signal each background goroutine needs to exit.
func (sv *Supervisor) Close() {
	sv.seer.Close()
	if sv.apprentice != nil {
		sv.apprentice.Close()
	}
}
