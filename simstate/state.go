// Package simstate defines the State snapshot published to the renderer and
// the view-space helpers (projection, screen<->world) the input layer and
// renderer both need. It is a value type by design: cheap to Clone, cheap to
// hand across a latest-value channel.
package simstate

import "github.com/go-gl/mathgl/mgl32"

// DebugInfo carries the rolling performance counters the compute loop and
// (externally, the render loop) maintain. MeanFPS is folded in by whatever
// owns the render loop — out of scope here, but the field exists so the
// contract is explicit.
type DebugInfo struct {
	MeanCPS uint32
	MeanFPS uint32
}

// AddRenderInfo folds the render loop's own mean-FPS counter into the
// snapshot. The compute loop owns MeanCPS; whatever owns the render loop
// calls this to keep the other half of the debug counters current.
func (d *DebugInfo) AddRenderInfo(meanFPS uint32) {
	d.MeanFPS = meanFPS
}

// State is the full snapshot exposed to the renderer through an LVC. It is
// intentionally flat and copyable: every field is a value type or a slice
// of value types, so State.Clone() is a cheap, independent copy.
type State struct {
	Origin              mgl32.Vec2
	Zoom                float32
	ScreenW, ScreenH    uint32
	View                mgl32.Mat4
	UserQuit            bool
	Paused              bool
	Drawables           Drawables
	Debug               DebugInfo
}

// birdsEyeAt builds the fixed top-down view matrix used throughout — the
// simulation never rotates the camera, only pans/zooms in the XY plane.
func birdsEyeAt(height float32) mgl32.Mat4 {
	view := mgl32.Ident4()
	view.Set(2, 2, height)
	return view
}

// New constructs an initial State for a screenW x screenH viewport.
func New(screenW, screenH uint32) State {
	return State{
		Origin:  mgl32.Vec2{0, 0},
		Zoom:    1.0,
		ScreenW: screenW,
		ScreenH: screenH,
		View:    birdsEyeAt(1.0),
	}
}

// Clone returns an independent deep copy — the drawable slices are copied so
// a published snapshot never aliases the compute loop's working copy.
func (s State) Clone() State {
	clone := s
	clone.Drawables = s.Drawables.Clone()
	return clone
}

// AspectRatio is screen width over height, used by the orthographic
// projection and screen<->world conversions.
func (s *State) AspectRatio() float32 {
	return float32(s.ScreenW) / float32(s.ScreenH)
}

// Projection returns the orthographic projection matrix for the current
// zoom/origin, framed [-1,1] in Y and [-aspect,aspect] in X before zoom.
func (s *State) Projection() mgl32.Mat4 {
	aspect := s.AspectRatio()
	return mgl32.Ortho(
		s.Origin.X()-s.Zoom*aspect,
		s.Origin.X()+s.Zoom*aspect,
		s.Origin.Y()-s.Zoom,
		s.Origin.Y()+s.Zoom,
		0.0, 100.0,
	)
}

// ScreenToWorld translates screen pixel coordinates into world-space
// coordinates under the current orthographic projection. (0,0) is the
// top-left of the viewport, matching the windowing layer's convention.
func (s *State) ScreenToWorld(px, py int32) mgl32.Vec2 {
	aspect := s.AspectRatio()
	xWorld := s.Origin.X() + s.Zoom*aspect*(float32(px)*2.0/float32(s.ScreenW)-1)
	yWorld := s.Origin.Y() + s.Zoom*(-float32(py)*2.0/float32(s.ScreenH)+1)
	return mgl32.Vec2{xWorld, yWorld}
}
