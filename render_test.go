package swr

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/nekronos/swr/geometry"
	"github.com/nekronos/swr/math3"
)

func testCamera() Camera {
	return Camera{
		Position: math3.V3(0, 0, 15),
		Target:   math3.V3(0, 0, 0),
		FOV:      45 * math.Pi / 180,
		ZNear:    1,
		ZFar:     100,
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	d := NewDevice(64, 64)
	camera := testCamera()
	transform := viewMatrix(camera).Mul(d.projectionMatrix(camera))
	inverse := transform.Inverse()

	points := []math3.Vector3{
		camera.Target,
		{X: 1, Y: -2, Z: 3},
		{X: -0.5, Y: 0.25, Z: 10},
	}
	for _, p := range points {
		ndc := p.TransformCoordinate(transform)
		back := ndc.TransformCoordinate(inverse)
		for _, pair := range [][2]float64{{back.X, p.X}, {back.Y, p.Y}, {back.Z, p.Z}} {
			if !scalar.EqualWithinAbs(pair[0], pair[1], 1e-9) {
				t.Fatalf("round trip of %v: have %v", p, back)
			}
		}
	}
}

func TestProjectTargetHitsScreenCenter(t *testing.T) {
	d := NewDevice(64, 48)
	camera := testCamera()
	transform := viewMatrix(camera).Mul(d.projectionMatrix(camera))

	s := d.project(camera.Target, transform)
	if !scalar.EqualWithinAbs(s.X, 32, 1e-9) || !scalar.EqualWithinAbs(s.Y, 24, 1e-9) {
		t.Fatalf("target projects to (%v,%v), want screen center (32,24)", s.X, s.Y)
	}
}

func TestProjectScreenMapping(t *testing.T) {
	// The screen mapping alone: NDC x scales by width around the center,
	// NDC y scales by height and flips because the screen origin is the
	// top left.
	d := NewDevice(100, 50)
	s := d.project(math3.V3(0.25, 0.5, 0.125), math3.Identity())
	if s.X != 0.25*100+50 || s.Y != -0.5*50+25 || s.Z != 0.125 {
		t.Fatalf("have %v", s)
	}
}

func TestWorldMatrixOrder(t *testing.T) {
	mesh := geometry.Cube()
	mesh.Scale = math3.V3(2, 2, 2)
	mesh.Position = math3.V3(5, 0, 0)

	// Scale applies before translation: a unit x vertex lands at
	// scale*x + offset, not (x+offset)*scale.
	got := math3.V3(1, 0, 0).TransformCoordinate(worldMatrix(mesh))
	if !scalar.EqualWithinAbs(got.X, 7, 1e-12) {
		t.Fatalf("have x=%v, want 7", got.X)
	}
}

func TestRenderWireframe(t *testing.T) {
	d := NewDevice(64, 64)
	d.Clear(0xff222222)
	d.Render(testCamera(), []*geometry.Mesh{geometry.Cube()}, Wireframe)

	touched := 0
	for _, c := range d.back {
		if c != 0xff222222 {
			touched++
		}
	}
	if touched == 0 {
		t.Fatal("wireframe render left the buffer untouched")
	}
	for _, z := range d.depth {
		if z != 0 {
			t.Fatal("wireframe render must not touch the depth buffer")
		}
	}
}

func TestRenderFilled(t *testing.T) {
	d := NewDevice(64, 64)
	d.Clear(0xff222222)
	d.Render(testCamera(), []*geometry.Mesh{geometry.Cube()}, Filled)

	touched, depths := 0, 0
	for i, c := range d.back {
		if c != 0xff222222 {
			touched++
		}
		if d.depth[i] != 0 {
			depths++
		}
	}
	if touched == 0 {
		t.Fatal("filled render left the color buffer untouched")
	}
	if depths == 0 {
		t.Fatal("filled render left the depth buffer untouched")
	}
}

func TestRenderReadsMeshTransform(t *testing.T) {
	d := NewDevice(64, 64)
	mesh := geometry.Cube()
	camera := testCamera()

	d.Clear(0)
	d.Render(camera, []*geometry.Mesh{mesh}, Filled)
	centered := append([]uint32(nil), d.back...)

	// Pushed far off to the side the cube leaves the view.
	mesh.Position = math3.V3(1e6, 0, 0)
	d.Clear(0)
	d.Render(camera, []*geometry.Mesh{mesh}, Filled)

	same := true
	for i := range centered {
		if d.back[i] != centered[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("moving the mesh did not change the frame")
	}
}

func TestRenderModeString(t *testing.T) {
	if Wireframe.String() != "Wireframe" || Filled.String() != "Filled" {
		t.Fatalf("have %q, %q", Wireframe.String(), Filled.String())
	}
}
