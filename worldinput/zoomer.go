package worldinput

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/orbitsim/gravisim/ease"
	"github.com/orbitsim/gravisim/simstate"
)

const zoomDuration = 1.0

// Zoomer eases State's (zoom, origin.x, origin.y) triple toward a
// destination over zoomDuration seconds using an exponential ease-out, then
// is consumed.
type Zoomer struct {
	easer *ease.Easer
}

// ZoomToScreen builds a Zoomer that reaches zoom while keeping the world
// point currently under screenX/screenY fixed on screen — the wheel-zoom
// behavior.
func ZoomToScreen(zoom float32, screenX, screenY int32, now float64, current *simstate.State) Zoomer {
	after := *current
	after.Zoom = zoom
	zoomTo := current.ScreenToWorld(screenX, screenY)
	zoomedTo := after.ScreenToWorld(screenX, screenY)
	newOrigin := current.Origin.Add(zoomTo).Sub(zoomedTo)

	return newZoomer(now, current.Zoom, zoom, current.Origin, newOrigin)
}

// ZoomToWorld builds a Zoomer that reaches zoom centered on a fixed world
// point — the digit-key zoom-to-body behavior.
func ZoomToWorld(zoom float32, worldTarget mgl32.Vec2, now float64, current *simstate.State) Zoomer {
	return newZoomer(now, current.Zoom, zoom, current.Origin, worldTarget)
}

// JustZoom builds a Zoomer that only eases zoom, leaving origin as a no-op
// transition pair — used as the "stay-put" zoom installed when a follow
// starts, since Tasks.Update rewrites the origin destination every tick
// while following is active.
func JustZoom(zoom float32, now float64, current *simstate.State) Zoomer {
	return newZoomer(now, current.Zoom, zoom, current.Origin, current.Origin)
}

func newZoomer(now float64, fromZoom, toZoom float32, fromOrigin, toOrigin mgl32.Vec2) Zoomer {
	return Zoomer{
		easer: ease.NewEaser(ease.ExpoEaseOut, now, zoomDuration,
			ease.Transition{From: float64(fromZoom), To: float64(toZoom)},
			ease.Transition{From: float64(fromOrigin.X()), To: float64(toOrigin.X())},
			ease.Transition{From: float64(fromOrigin.Y()), To: float64(toOrigin.Y())},
		),
	}
}

// ZoomDestination is the target zoom value the Zoomer is easing toward.
func (z *Zoomer) ZoomDestination() float32 {
	return float32(z.easer.Transitions()[0].To)
}

// ZoomAt samples the zoom transition at the given time.
func (z *Zoomer) ZoomAt(now float64) float32 {
	return float32(z.easer.ValuesAt(now)[0])
}

// OriginAt samples the origin transitions at the given time.
func (z *Zoomer) OriginAt(now float64) mgl32.Vec2 {
	vals := z.easer.ValuesAt(now)
	return mgl32.Vec2{float32(vals[1]), float32(vals[2])}
}

// FinishedAt reports whether the easing has completed by now.
func (z *Zoomer) FinishedAt(now float64) bool {
	return z.easer.HasFinishedAt(now)
}

// UpdateOriginDestination rewrites the origin transitions' target, used
// when a followed body moves between ticks.
func (z *Zoomer) UpdateOriginDestination(target mgl32.Vec2) {
	z.easer.SetDestination(1, float64(target.X()))
	z.easer.SetDestination(2, float64(target.Y()))
}
