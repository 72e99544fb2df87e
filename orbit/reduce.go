package orbit

import "github.com/go-gl/mathgl/mgl64"

// ReduceMinDistance downsamples plots to a subsequence where each kept point
// lies at least minD from the previous kept point, always keeping plots[0].
//
// The naive scan is O(n); trajectories sampled at a constant timestep tend
// to have near-uniform keep-gaps, so once a gap is found we try it again
// before falling back to a linear probe — on a smooth 50k-point curve this
// runs roughly an order of magnitude faster than scanning every point.
func ReduceMinDistance(plots []mgl64.Vec2, minD float64) []mgl64.Vec2 {
	if len(plots) == 0 {
		return nil
	}

	minD2 := minD * minD
	out := make([]mgl64.Vec2, 0, len(plots))
	out = append(out, plots[0])

	last := plots[0]
	lastIdx := 0
	lastGap := 1
	counter := 1
	upper := 0.0

	for {
		if lastGap > 2 && lastIdx+lastGap < len(plots) {
			cand := plots[lastIdx+lastGap]
			d2 := dist2(cand, last)
			if d2 >= minD2 && d2 <= upper {
				out = append(out, cand)
				lastIdx += lastGap
				last = cand
				continue
			}
			lastGap = 1
		}

		idx := lastIdx + counter
		if idx >= len(plots) {
			break
		}
		cand := plots[idx]
		d2 := dist2(cand, last)
		if d2 >= minD2 {
			out = append(out, cand)
			lastGap = counter
			lastIdx += counter
			upper = 1.1 * d2
			last = cand
			counter = 1
		} else {
			counter++
		}
	}

	return out
}

func dist2(a, b mgl64.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// ReduceCurve returns a new Curve holding the minimum-distance reduction of
// c's plots, preserving opacity.
func (c *Curve) ReduceCurve(minD float64) Curve {
	return Curve{Plots: ReduceMinDistance(c.Plots, minD), Opacity: c.Opacity}
}

// ReduceCurves applies ReduceCurve across a slice, the shape the seer's
// filter goroutine needs.
func ReduceCurves(curves []Curve, minD float64) []Curve {
	out := make([]Curve, len(curves))
	for i := range curves {
		out[i] = curves[i].ReduceCurve(minD)
	}
	return out
}
