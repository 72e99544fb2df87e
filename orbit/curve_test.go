package orbit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCurve_MeanPlot(t *testing.T) {
	c := NewCurve()
	c.Plots = append(c.Plots,
		mgl64.Vec2{1.0, 0.0},
		mgl64.Vec2{1.0, 2.0},
		mgl64.Vec2{1.0, 4.0},
	)

	mean := c.MeanPlot()
	if mean != (mgl64.Vec2{1.0, 2.0}) {
		t.Errorf("expected mean (1,2), got %v", mean)
	}
}

func TestCurve_RemoveOldestPlots(t *testing.T) {
	c := NewCurve()
	for i := 1; i <= 4; i++ {
		c.Plots = append(c.Plots, mgl64.Vec2{float64(i), 0})
	}

	c.RemoveOldestPlots(0)
	if len(c.Plots) != 4 || c.Plots[0].X() != 1.0 {
		t.Fatalf("removing 0 should be a no-op, got %v", c.Plots)
	}

	c.RemoveOldestPlots(1)
	if len(c.Plots) != 3 || c.Plots[0].X() != 2.0 {
		t.Fatalf("expected [2,3,4], got %v", c.Plots)
	}

	c.RemoveOldestPlots(2)
	if len(c.Plots) != 1 || c.Plots[0].X() != 4.0 {
		t.Fatalf("expected [4], got %v", c.Plots)
	}

	c.RemoveOldestPlots(500)
	if len(c.Plots) != 0 {
		t.Fatalf("removing more than len should saturate at empty, got %v", c.Plots)
	}
}

func TestCurve_IsDrawable(t *testing.T) {
	c := NewCurve()
	for i := 0; i < 3; i++ {
		c.Plots = append(c.Plots, mgl64.Vec2{float64(i), 0})
		if c.IsDrawable() {
			t.Errorf("curve with %d plots should not be drawable", len(c.Plots))
		}
	}
	c.Plots = append(c.Plots, mgl64.Vec2{3, 0})
	if !c.IsDrawable() {
		t.Errorf("curve with 4 plots should be drawable")
	}
}

func TestCurve_CloneIsIndependent(t *testing.T) {
	c := NewCurve()
	c.Plots = append(c.Plots, mgl64.Vec2{1, 1})

	clone := c.Clone()
	clone.Plots[0] = mgl64.Vec2{9, 9}

	if c.Plots[0] != (mgl64.Vec2{1, 1}) {
		t.Errorf("mutating the clone should not affect the original, got %v", c.Plots[0])
	}
}
