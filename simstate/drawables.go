package simstate

import "github.com/orbitsim/gravisim/orbit"

// Drawables is the renderable payload of a State snapshot: the current
// bodies and the trajectory curves currently projected for them.
type Drawables struct {
	OrbitBodies []orbit.Body
	OrbitCurves []orbit.Curve
}

// Clone deep-copies both slices.
func (d Drawables) Clone() Drawables {
	bodies := make([]orbit.Body, len(d.OrbitBodies))
	copy(bodies, d.OrbitBodies)
	return Drawables{
		OrbitBodies: bodies,
		OrbitCurves: orbit.CloneCurves(d.OrbitCurves),
	}
}

// CurveBodyMismatch reports whether any body lies further than tolerance
// from the head (oldest surviving plot) of its paired curve. An empty curve
// is treated as trivially-not-mismatched — the source the fault-tolerance
// check is distilled from is ambiguous here, so this spec makes the
// conservative choice of not forcing an apprentice spawn on startup noise.
func (d *Drawables) CurveBodyMismatch(tolerance float64) bool {
	for i, body := range d.OrbitBodies {
		if i >= len(d.OrbitCurves) {
			continue
		}
		curve := &d.OrbitCurves[i]
		if len(curve.Plots) == 0 {
			continue
		}
		head := curve.Plots[0]
		if head.Sub(body.Center).Len() > tolerance {
			return true
		}
	}
	return false
}

// ApplyCurveOpacityFade sets every curve's opacity from the current zoom,
// per the fade schedule in the compute loop: full below 10, linear fade to
// zero between 10 and 20, invisible above 20.
func (d *Drawables) ApplyCurveOpacityFade(zoom float32) {
	var opacity float32
	switch {
	case zoom <= 10:
		opacity = 1.0
	case zoom > 20:
		opacity = 0.0
	default:
		opacity = 1.0 - (zoom-10)/10.0
	}
	for i := range d.OrbitCurves {
		d.OrbitCurves[i].Opacity = opacity
	}
}
