package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestReduceMinDistance_Density(t *testing.T) {
	plots := make([]mgl64.Vec2, 900)
	for i := 0; i < 900; i++ {
		plots[i] = mgl64.Vec2{float64(i), float64(i)}
	}

	out := ReduceMinDistance(plots, 2.9)

	if len(out) != 300 {
		t.Fatalf("expected 300 kept points, got %d", len(out))
	}
	for k, p := range out {
		want := mgl64.Vec2{float64(3 * k), float64(3 * k)}
		if p != want {
			t.Errorf("output[%d] = %v, want %v", k, p, want)
		}
	}
}

func TestReduceMinDistance_HeadPreservation(t *testing.T) {
	plots := []mgl64.Vec2{{5, 5}, {5.1, 5.1}, {20, 20}}
	out := ReduceMinDistance(plots, 1.0)
	if out[0] != plots[0] {
		t.Errorf("expected output[0] == input[0], got %v", out[0])
	}
}

func TestReduceMinDistance_MinimumSpacing(t *testing.T) {
	plots := make([]mgl64.Vec2, 200)
	for i := range plots {
		plots[i] = mgl64.Vec2{math.Sin(float64(i) * 0.05), math.Cos(float64(i) * 0.05)}
	}

	const minD = 0.3
	out := ReduceMinDistance(plots, minD)
	for k := 1; k < len(out); k++ {
		d := out[k].Sub(out[k-1]).Len()
		if d < minD-1e-9 {
			t.Errorf("kept points %d and %d are only %f apart, want >= %f", k-1, k, d, minD)
		}
	}
}

func TestReduceMinDistance_Empty(t *testing.T) {
	if out := ReduceMinDistance(nil, 1.0); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}
