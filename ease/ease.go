// Package ease provides parametric time-based interpolation for the input
// task layer (zoom/pan transitions). It is a small, purpose-built subset of
// what a general easing library offers — the full function table (bounce,
// elastic, back, ...) is out of scope; only the exponential ease-out used by
// Zoomer is implemented, named the way the original Rust `easer` crate names
// its functions.
package ease

import "math"

// Transition describes an interpolation from From to To.
type Transition struct {
	From, To float64
}

func (t Transition) diff() float64 {
	return t.To - t.From
}

// Fn is an easing function: given elapsed time, total duration and a
// transition's (from, to) pair, it returns the interpolated value.
type Fn func(delta, duration float64, t Transition) float64

// ExpoEaseOut is the exponential ease-out curve: fast start, long tail.
func ExpoEaseOut(delta, duration float64, t Transition) float64 {
	if delta >= duration {
		return t.To
	}
	return t.diff()*(1-math.Exp2(-10*delta/duration)) + t.From
}

// Easer samples a set of parallel Transitions against a single Fn, started
// at a given time and running for a fixed duration. Before Start it clamps
// to each transition's From; after Start+Duration it clamps to To.
type Easer struct {
	fn          Fn
	start       float64
	duration    float64
	transitions []Transition
}

// NewEaser builds an Easer using fn, starting at start (seconds), lasting
// duration (seconds), over the given transitions.
func NewEaser(fn Fn, start, duration float64, transitions ...Transition) *Easer {
	return &Easer{fn: fn, start: start, duration: duration, transitions: transitions}
}

// ValuesAt samples every transition at the given time.
func (e *Easer) ValuesAt(now float64) []float64 {
	delta := now - e.start
	out := make([]float64, len(e.transitions))
	if delta <= 0 {
		for i, t := range e.transitions {
			out[i] = t.From
		}
		return out
	}
	if delta >= e.duration {
		for i, t := range e.transitions {
			out[i] = t.To
		}
		return out
	}
	for i, t := range e.transitions {
		out[i] = e.fn(delta, e.duration, t)
	}
	return out
}

// HasFinishedAt reports whether the Easer has reached its duration by now.
func (e *Easer) HasFinishedAt(now float64) bool {
	return now-e.start >= e.duration
}

// Transitions exposes the underlying transition set for mutation (e.g. the
// follow-tracking origin-destination rewrite Tasks.Update performs).
func (e *Easer) Transitions() []Transition {
	return e.transitions
}

// SetDestination rewrites transition i's target value in place.
func (e *Easer) SetDestination(i int, to float64) {
	e.transitions[i].To = to
}
