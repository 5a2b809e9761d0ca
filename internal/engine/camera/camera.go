// Package camera provides the orbit camera that circles the noise cube.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit circles a target point on a horizontal ring at a fixed height.
type Orbit struct {
	// Orbit angle in degrees, kept in [0, 360)
	AngleDeg float32

	Target   mgl32.Vec3
	Position mgl32.Vec3

	// Field of view at zoom 1, in degrees
	FovBase float32

	// Zoom eases from ZoomCurrent toward ZoomTarget by Smoothing per update
	ZoomTarget  float32
	ZoomCurrent float32
	Smoothing   float32

	// Degrees added to AngleDeg per Advance
	Step float32

	size   mgl32.Vec3
	radius float32
}

// NewOrbit creates an orbit camera framing a cube of the given size.
func NewOrbit(size mgl32.Vec3) *Orbit {
	o := &Orbit{
		FovBase:     45,
		ZoomTarget:  1,
		ZoomCurrent: 1,
		Smoothing:   0.01,
		Step:        0.1,
	}
	o.Retarget(size)
	return o
}

// Retarget centers the orbit on a cube of the given size. It reports false
// when the size is unchanged.
func (o *Orbit) Retarget(size mgl32.Vec3) bool {
	if size == o.size && o.radius != 0 {
		return false
	}
	o.size = size
	o.Target = size.Mul(0.5)
	o.radius = float32(math.Min(float64(size.X()*1.5), float64(size.Z()*1.5)))
	o.place()
	return true
}

// Radius returns the current orbit radius.
func (o *Orbit) Radius() float32 {
	return o.radius
}

// Advance moves the camera one step around the ring.
func (o *Orbit) Advance() {
	o.AngleDeg = float32(math.Mod(float64(o.AngleDeg+o.Step), 360))
	if o.AngleDeg < 0 {
		o.AngleDeg += 360
	}
	o.place()
}

// SmoothZoom moves the current zoom a fixed fraction toward the target.
func (o *Orbit) SmoothZoom() {
	o.ZoomCurrent += o.Smoothing * (o.ZoomTarget - o.ZoomCurrent)
}

// Fov returns the effective vertical field of view in degrees.
func (o *Orbit) Fov() float32 {
	if o.ZoomCurrent <= 0 {
		return o.FovBase
	}
	return o.FovBase / o.ZoomCurrent
}

// ViewMatrix returns the view matrix looking from Position at Target.
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position, o.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (o *Orbit) Projection(aspect float32) mgl32.Mat4 {
	far := 4*o.radius + 2*o.size.Y() + 10
	return mgl32.Perspective(mgl32.DegToRad(o.Fov()), aspect, 0.1, far)
}

func (o *Orbit) place() {
	rad := float64(mgl32.DegToRad(o.AngleDeg))
	o.Position = mgl32.Vec3{
		o.Target.X() + float32(math.Cos(rad))*o.radius,
		o.size.Y() * 1.25,
		o.Target.Z() + float32(math.Sin(rad))*o.radius,
	}
}
