package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lattice is the grid of sample points inside the cube. Cell (i, j, k) is
// sampled at (i, j, k) * Scale in noise space and drawn at (i, j, k).
type Lattice struct {
	NX, NY, NZ int
	Scale      int
}

// NewLattice builds a lattice for a cube size and sample scale. Each axis
// has round(size/scale) cells, at least one, so a coarser scale gives fewer
// cells.
func NewLattice(size mgl32.Vec3, scale int) Lattice {
	if scale < 1 {
		scale = 1
	}
	return Lattice{
		NX:    cells(size.X(), scale),
		NY:    cells(size.Y(), scale),
		NZ:    cells(size.Z(), scale),
		Scale: scale,
	}
}

func cells(size float32, scale int) int {
	if n := int(math.Round(float64(size) / float64(scale))); n > 1 {
		return n
	}
	return 1
}

// Size returns the lattice extent in render space, one unit per cell.
func (l Lattice) Size() mgl32.Vec3 {
	return mgl32.Vec3{float32(l.NX), float32(l.NY), float32(l.NZ)}
}

// OnShell reports whether cell (i, j, k) lies on a face drawn for a camera
// at cam: the top face always, and on each horizontal axis the near face
// (both when the camera sits exactly on zero). This approximates backface
// culling; it does not test occlusion.
func (l Lattice) OnShell(cam mgl32.Vec3, i, j, k int) bool {
	s := l.Scale
	x, y, z := i*s, j*s, k*s
	lastX := (l.NX - 1) * s
	lastY := (l.NY - 1) * s
	lastZ := (l.NZ - 1) * s

	return (cam.X() <= 0 && x == 0) ||
		(cam.X() >= 0 && x == lastX) ||
		y == lastY ||
		(cam.Z() <= 0 && z == 0) ||
		(cam.Z() >= 0 && z == lastZ)
}

// sideColumn reports whether the vertical column (i, k) lies on a drawn side face.
func (l Lattice) sideColumn(cam mgl32.Vec3, i, k int) bool {
	return (cam.X() <= 0 && i == 0) ||
		(cam.X() >= 0 && i == l.NX-1) ||
		(cam.Z() <= 0 && k == 0) ||
		(cam.Z() >= 0 && k == l.NZ-1)
}

// Count returns the number of cells on the shell for a camera at cam.
func (l Lattice) Count(cam mgl32.Vec3) int {
	n := 0
	for i := 0; i < l.NX; i++ {
		for j := 0; j < l.NY; j++ {
			for k := 0; k < l.NZ; k++ {
				if l.OnShell(cam, i, j, k) {
					n++
				}
			}
		}
	}
	return n
}
