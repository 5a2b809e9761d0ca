// Package scene walks the visible shell of the voxel lattice each frame,
// colors every visible cell from the noise field and submits it for drawing.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/noisecube/internal/engine/camera"
	"github.com/Faultbox/noisecube/internal/noisefield"
	"github.com/Faultbox/noisecube/internal/params"
)

// Drawer receives one cube per visible cell.
type Drawer interface {
	DrawCube(center mgl32.Vec3, extent float32, c Color)
}

// Stats describes the work done for one frame.
type Stats struct {
	Visited int // lattice points tested against the shell predicate
	Drawn   int // cubes submitted
}

// Renderer owns the per-frame scene state: the noise field, the orbit camera
// and the fourth coordinate w.
type Renderer struct {
	Field  *noisefield.Field
	Camera *camera.Orbit

	// W is the fourth noise coordinate; it advances by WStep every frame.
	W     float64
	WStep float64
}

// New creates a renderer for the current parameters. The camera frames the
// drawn lattice, which is CubeSize/SampleScale cells wide.
func New(s *params.Store) *Renderer {
	cam := camera.NewOrbit(NewLattice(s.CubeSize, int(s.SampleScale)).Size())
	cam.ZoomTarget = s.Zoom
	cam.ZoomCurrent = s.Zoom

	return &Renderer{
		Field:  noisefield.New(s.NoiseConfig()),
		Camera: cam,
		WStep:  1,
	}
}

// Frame runs one frame: it applies parameter changes, advances the camera,
// draws the shell and advances w.
func (r *Renderer) Frame(s *params.Store, d Drawer) Stats {
	r.Field.Configure(s.NoiseConfig())
	r.Camera.Retarget(NewLattice(s.CubeSize, int(s.SampleScale)).Size())
	r.Camera.ZoomTarget = s.Zoom

	r.Camera.Advance()
	r.Camera.SmoothZoom()

	stats := r.Draw(s, d)
	r.W += r.WStep
	return stats
}

// Draw submits every lattice cell on the visible shell without advancing
// any state.
func (r *Renderer) Draw(s *params.Store, d Drawer) Stats {
	l := NewLattice(s.CubeSize, int(s.SampleScale))
	cam := r.Camera.Position
	scale := float64(l.Scale)

	var st Stats
	visit := func(i, j, k int) {
		st.Visited++
		if !l.OnShell(cam, i, j, k) {
			return
		}
		v := r.Field.Evaluate(float64(i)*scale, float64(j)*scale, float64(k)*scale, r.W)
		d.DrawCube(mgl32.Vec3{float32(i), float32(j), float32(k)}, 1, CellColor(v))
		st.Drawn++
	}

	// Columns on a drawn side face are filled top to bottom; every other
	// column can only contribute its top cell.
	for i := 0; i < l.NX; i++ {
		for k := 0; k < l.NZ; k++ {
			if l.sideColumn(cam, i, k) {
				for j := 0; j < l.NY; j++ {
					visit(i, j, k)
				}
			} else {
				visit(i, l.NY-1, k)
			}
		}
	}
	return st
}
