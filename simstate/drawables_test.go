package simstate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/orbitsim/gravisim/orbit"
)

func orbitCurveFixture() orbit.Curve {
	c := orbit.NewCurve()
	c.Plots = append(c.Plots, mgl64.Vec2{0, 0})
	return c
}

func TestDrawables_CurveBodyMismatch(t *testing.T) {
	body := orbit.NewBody(mgl64.Vec2{0, 0}, 1, 100, mgl64.Vec2{})
	curve := orbit.NewCurve()
	curve.Plots = append(curve.Plots, mgl64.Vec2{0, 0})

	d := Drawables{OrbitBodies: []orbit.Body{body}, OrbitCurves: []orbit.Curve{curve}}
	if d.CurveBodyMismatch(0.5) {
		t.Errorf("body at curve head should not be a mismatch")
	}

	body.Center = mgl64.Vec2{2, 0}
	d.OrbitBodies[0] = body
	if !d.CurveBodyMismatch(0.5) {
		t.Errorf("body 2 units from curve head should be a mismatch at tolerance 0.5")
	}
}

func TestDrawables_CurveBodyMismatch_EmptyCurveIsNotMismatched(t *testing.T) {
	body := orbit.NewBody(mgl64.Vec2{100, 100}, 1, 1, mgl64.Vec2{})
	d := Drawables{OrbitBodies: []orbit.Body{body}, OrbitCurves: []orbit.Curve{orbit.NewCurve()}}
	if d.CurveBodyMismatch(0.5) {
		t.Errorf("an empty curve should be treated as trivially-not-mismatched")
	}
}

func TestDrawables_ApplyCurveOpacityFade(t *testing.T) {
	cases := []struct {
		zoom float32
		want float32
	}{
		{5, 1.0},
		{10, 1.0},
		{15, 0.5},
		{20, 0.0},
		{25, 0.0},
	}

	for _, tc := range cases {
		d := Drawables{OrbitCurves: []orbit.Curve{orbit.NewCurve()}}
		d.ApplyCurveOpacityFade(tc.zoom)
		if got := d.OrbitCurves[0].Opacity; got != tc.want {
			t.Errorf("zoom=%v: opacity = %v, want %v", tc.zoom, got, tc.want)
		}
	}
}
