package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/noisecube/internal/params"
	"github.com/Faultbox/noisecube/pkg/noise"
)

type drawCall struct {
	center mgl32.Vec3
	extent float32
	color  Color
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawCube(center mgl32.Vec3, extent float32, c Color) {
	r.calls = append(r.calls, drawCall{center, extent, c})
}

func TestHue(t *testing.T) {
	if h := Hue(-1); h != 0 {
		t.Errorf("Hue(-1) = %v, want 0", h)
	}
	if h := Hue(0); h != 180 {
		t.Errorf("Hue(0) = %v, want 180", h)
	}
	if h := math.Mod(Hue(1), 360); h != 0 {
		t.Errorf("Hue(1) mod 360 = %v, want 0", h)
	}

	prev := Hue(-1)
	for v := -0.99; v <= 1; v += 0.01 {
		h := Hue(v)
		if h <= prev {
			t.Fatalf("Hue not monotonic at %v: %v <= %v", v, h, prev)
		}
		prev = h
	}
}

func TestCellColor(t *testing.T) {
	// Hue 0 and hue 360 are the same color.
	if a, b := CellColor(-1), CellColor(1); a != b {
		t.Errorf("CellColor(-1) = %v, CellColor(1) = %v, want equal", a, b)
	}

	// Hue 180 at s=0.5, v=0.5 is (0.25, 0.5, 0.5).
	c := CellColor(0)
	want := Color{R: 63, G: 127, B: 127, A: 255}
	if c != want {
		t.Errorf("CellColor(0) = %v, want %v", c, want)
	}

	primaries := []struct {
		v    float64
		want Color
	}{
		{-1, Color{127, 63, 63, 255}},
		{-1.0 / 3, Color{63, 127, 63, 255}},
		{1.0 / 3, Color{63, 63, 127, 255}},
	}
	for _, tt := range primaries {
		if got := CellColor(tt.v); got != tt.want {
			t.Errorf("CellColor(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	for v := -1.0; v <= 1; v += 0.05 {
		if CellColor(v).A != 255 {
			t.Fatalf("CellColor(%v) is not opaque", v)
		}
	}
}

func TestNewLattice(t *testing.T) {
	tests := []struct {
		size       mgl32.Vec3
		scale      int
		nx, ny, nz int
	}{
		{mgl32.Vec3{10, 10, 10}, 1, 10, 10, 10},
		{mgl32.Vec3{10, 10, 10}, 10, 1, 1, 1},
		{mgl32.Vec3{10, 10, 10}, 50, 1, 1, 1},
		{mgl32.Vec3{50, 50, 50}, 10, 5, 5, 5},
		{mgl32.Vec3{50, 20, 35}, 10, 5, 2, 4},
		{mgl32.Vec3{7, 4, 9}, 0, 7, 4, 9},
	}

	for _, tt := range tests {
		l := NewLattice(tt.size, tt.scale)
		if l.NX != tt.nx || l.NY != tt.ny || l.NZ != tt.nz {
			t.Errorf("NewLattice(%v, %d) = %dx%dx%d, want %dx%dx%d",
				tt.size, tt.scale, l.NX, l.NY, l.NZ, tt.nx, tt.ny, tt.nz)
		}
	}
}

func TestCoarserScaleDrawsFewerCells(t *testing.T) {
	cam := mgl32.Vec3{30, 12, 20}
	size := mgl32.Vec3{10, 10, 10}

	fine := NewLattice(size, 1).Count(cam)
	coarse := NewLattice(size, 5).Count(cam)
	if coarse >= fine {
		t.Errorf("scale 5 drew %d cells, scale 1 drew %d", coarse, fine)
	}
}

func TestOnShellSingleCell(t *testing.T) {
	// Size 10 sampled every 10 units is one cell per axis: only its corner
	// is drawn.
	l := NewLattice(mgl32.Vec3{10, 10, 10}, 10)
	cam := mgl32.Vec3{5, 5, 5}

	if !l.OnShell(cam, 0, 0, 0) {
		t.Error("the single cell should be on the shell")
	}
	if n := l.Count(cam); n != 1 {
		t.Errorf("shell count = %d, want 1", n)
	}
}

func TestShellCount(t *testing.T) {
	l := NewLattice(mgl32.Vec3{10, 10, 10}, 1)

	tests := []struct {
		name string
		cam  mgl32.Vec3
		want int
	}{
		// top + +x face + +z face
		{"positive x and z", mgl32.Vec3{30, 12, 20}, 10*10*10 - 9*9*9},
		{"negative x and z", mgl32.Vec3{-3, 12, -8}, 10*10*10 - 9*9*9},
		{"negative x positive z", mgl32.Vec3{-3, 12, 8}, 10*10*10 - 9*9*9},
		// both x faces, both z faces and the top
		{"on the axes", mgl32.Vec3{0, 12, 0}, 10*10*10 - 8*9*8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Count(tt.cam); got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}

func newStore() *params.Store {
	s := params.Default()
	s.CubeSize = mgl32.Vec3{50, 50, 50}
	s.SampleScale = 10
	s.Seed = 1337
	s.NoiseType = int32(noise.Perlin)
	return s
}

func TestFrameDrawsExactlyTheShell(t *testing.T) {
	s := newStore()
	r := New(s)
	rec := &recorder{}

	st := r.Frame(s, rec)

	cam := r.Camera.Position
	if cam.X() <= 0 || cam.Z() <= 0 {
		t.Fatalf("expected camera in the positive quadrant, got %v", cam)
	}

	// 50 units sampled every 10: a 5x5x5 lattice.
	want := 5*5*5 - 4*4*4
	if st.Drawn != want || len(rec.calls) != want {
		t.Fatalf("drawn = %d (%d calls), want %d", st.Drawn, len(rec.calls), want)
	}

	seen := make(map[mgl32.Vec3]bool, len(rec.calls))
	for _, c := range rec.calls {
		i, j, k := c.center.X(), c.center.Y(), c.center.Z()
		if i != 4 && j != 4 && k != 4 {
			t.Fatalf("interior cell %v was drawn", c.center)
		}
		if c.extent != 1 {
			t.Fatalf("cube extent = %v, want 1", c.extent)
		}
		if seen[c.center] {
			t.Fatalf("cell %v drawn twice", c.center)
		}
		seen[c.center] = true
	}
}

func TestFrameMatchesPredicate(t *testing.T) {
	s := newStore()
	s.CubeSize = mgl32.Vec3{7, 4, 9}
	s.SampleScale = 1
	r := New(s)
	r.Camera.AngleDeg = 200 // camera ends up on the negative x side
	rec := &recorder{}

	st := r.Frame(s, rec)

	l := NewLattice(s.CubeSize, int(s.SampleScale))
	if want := l.Count(r.Camera.Position); st.Drawn != want {
		t.Errorf("drawn = %d, predicate count = %d", st.Drawn, want)
	}
}

func TestFrameAdvancesW(t *testing.T) {
	s := newStore()
	s.CubeSize = mgl32.Vec3{3, 3, 3}
	r := New(s)

	for i := 1; i <= 5; i++ {
		r.Frame(s, &recorder{})
		if r.W != float64(i) {
			t.Fatalf("w after %d frames = %v, want %d", i, r.W, i)
		}
	}
}

func TestFrameAppliesParameters(t *testing.T) {
	s := newStore()
	r := New(s)

	s.Seed = 99
	s.CubeSize = mgl32.Vec3{100, 100, 100}
	r.Frame(s, &recorder{})

	if r.Field.Config().Seed != 99 {
		t.Errorf("noise seed = %d, want 99", r.Field.Config().Seed)
	}
	// 100 units at scale 10 is a 10-cell lattice.
	if r.Camera.Target != (mgl32.Vec3{5, 5, 5}) {
		t.Errorf("camera target = %v, want [5 5 5]", r.Camera.Target)
	}

	s.SampleScale = 20
	r.Frame(s, &recorder{})
	if r.Camera.Target != (mgl32.Vec3{2.5, 2.5, 2.5}) {
		t.Errorf("camera target after scale change = %v, want [2.5 2.5 2.5]", r.Camera.Target)
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	s := newStore()
	s.CubeSize = mgl32.Vec3{5, 5, 5}
	a, b := New(s), New(s)
	ra, rb := &recorder{}, &recorder{}

	a.Draw(s, ra)
	b.Draw(s, rb)

	if len(ra.calls) != len(rb.calls) {
		t.Fatalf("call counts differ: %d vs %d", len(ra.calls), len(rb.calls))
	}
	for i := range ra.calls {
		if ra.calls[i] != rb.calls[i] {
			t.Fatalf("call %d differs: %v vs %v", i, ra.calls[i], rb.calls[i])
		}
	}
}
