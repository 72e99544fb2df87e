// Package physics implements one semi-implicit Euler integration step of
// the N-body simulation: a single-threaded path for small body counts and a
// data-parallel path above a measured threshold, both producing the same
// acceleration/velocity/position update.
//
// There is no softening term: bodies passing close to each other at small
// squared distance produce large forces, same as the reference
// implementation. This is a deliberate fidelity choice, not an oversight —
// tests in this package assert conservation and parity properties, never
// exact trajectories through a close pass.
package physics

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/orbitsim/gravisim/orbit"
	"github.com/orbitsim/gravisim/simstate"
	"github.com/orbitsim/gravisim/worldinput"
)

// Gravity is the simulation's gravitational constant (not SI — tuned for
// visually interesting orbits at the simulation's native scale).
const Gravity = 0.01

// ParallelThreshold is the body count above which the data-parallel
// dispatch pays for its goroutine overhead. Empirically measured, fixed.
const ParallelThreshold = 64

// ComputeState performs one step of dt seconds: accumulate gravitational
// acceleration, integrate velocity, apply pending input tasks, then
// integrate position. Dispatches to the parallel path above
// ParallelThreshold bodies.
func ComputeState(state *simstate.State, tasks *worldinput.Tasks, dt float64) {
	if len(state.Drawables.OrbitBodies) > ParallelThreshold {
		computeStateParallel(state, tasks, dt)
	} else {
		computeStateSingle(state, tasks, dt)
	}
}

func computeStateSingle(state *simstate.State, tasks *worldinput.Tasks, dt float64) {
	bodies := state.Drawables.OrbitBodies
	velocities := make([]mgl64.Vec2, len(bodies))

	for i := range bodies {
		velocities[i] = accelerate(bodies, i, dt)
	}
	for i := range bodies {
		bodies[i].Velocity = velocities[i]
	}

	tasks.Update(state)

	bodies = state.Drawables.OrbitBodies
	for i := range bodies {
		bodies[i].Center = bodies[i].Center.Add(bodies[i].Velocity.Mul(dt))
	}
}

func computeStateParallel(state *simstate.State, tasks *worldinput.Tasks, dt float64) {
	bodies := state.Drawables.OrbitBodies
	// Immutable snapshot read by every worker's inner reduction; the output
	// velocities land in disjoint slots, so no locking is needed beyond the
	// WaitGroup barrier at the end of each pass.
	snapshot := make([]orbit.Body, len(bodies))
	copy(snapshot, bodies)

	velocities := make([]mgl64.Vec2, len(bodies))
	parallelFor(len(bodies), func(i int) {
		velocities[i] = accelerateAgainst(snapshot, bodies[i], dt)
	})
	for i := range bodies {
		bodies[i].Velocity = velocities[i]
	}

	tasks.Update(state)

	bodies = state.Drawables.OrbitBodies
	parallelFor(len(bodies), func(i int) {
		bodies[i].Center = bodies[i].Center.Add(bodies[i].Velocity.Mul(dt))
	})
}

// accelerate returns body i's updated velocity after accumulating
// acceleration from every other body in bodies.
func accelerate(bodies []orbit.Body, i int, dt float64) mgl64.Vec2 {
	return accelerateAgainst(bodies, bodies[i], dt)
}

func accelerateAgainst(others []orbit.Body, body orbit.Body, dt float64) mgl64.Vec2 {
	velocity := body.Velocity
	for _, other := range others {
		if other.ID == body.ID {
			continue
		}
		delta := other.Center.Sub(body.Center)
		dist2 := delta.Dot(delta)
		accelScalar := Gravity * other.Mass / dist2
		accel := delta.Normalize().Mul(accelScalar)
		velocity = velocity.Add(accel.Mul(dt))
	}
	return velocity
}

// parallelFor splits [0,n) across a worker pool sized to GOMAXPROCS, capped
// to avoid oversubscribing on small workloads — grounded on the teacher's
// emitter worker-pool dispatch in particles_ecs.go.
func parallelFor(n int, body func(i int)) {
	if n == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
}
