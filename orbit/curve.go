package orbit

import "github.com/go-gl/mathgl/mgl64"

// Curve is an ordered sequence of plots (one per seer step) paired with a
// fade-out opacity the compute loop derives from zoom level. Index 0 is
// always the oldest surviving plot.
type Curve struct {
	Plots   []mgl64.Vec2
	Opacity float32
}

// NewCurve returns an empty curve with full opacity.
func NewCurve() Curve {
	return Curve{Opacity: 1.0}
}

// IsDrawable reports whether the curve has enough plots to be worth a
// polyline.
func (c *Curve) IsDrawable() bool {
	return len(c.Plots) > 3
}

// RemoveOldestPlots drops the n oldest plots (index 0 first), saturating at
// an empty curve rather than panicking on n larger than the curve.
func (c *Curve) RemoveOldestPlots(n int) {
	if n >= len(c.Plots) {
		c.Plots = c.Plots[:0]
		return
	}
	c.Plots = append(c.Plots[:0], c.Plots[n:]...)
}

// MeanPlot averages all plots; only meaningful on a non-empty curve.
func (c *Curve) MeanPlot() mgl64.Vec2 {
	var sum mgl64.Vec2
	for _, p := range c.Plots {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(c.Plots)))
}

// Clone deep-copies the plot slice so a background filter job can run over
// a stable snapshot while the seer keeps appending to its own copy.
func (c Curve) Clone() Curve {
	plots := make([]mgl64.Vec2, len(c.Plots))
	copy(plots, c.Plots)
	return Curve{Plots: plots, Opacity: c.Opacity}
}

// CloneCurves deep-copies a whole curve slice.
func CloneCurves(curves []Curve) []Curve {
	out := make([]Curve, len(curves))
	for i, c := range curves {
		out[i] = c.Clone()
	}
	return out
}
