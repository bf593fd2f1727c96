package geometry

import (
	"testing"

	"github.com/nekronos/swr/math3"
)

// checkFaces fails the test if any face indexes past the vertex list.
func checkFaces(t *testing.T, m *Mesh) {
	t.Helper()
	for i, f := range m.Faces {
		for _, idx := range [3]uint32{f.A, f.B, f.C} {
			if int(idx) >= len(m.Vertices) {
				t.Fatalf("%s: face %d references vertex %d of %d", m.Name, i, idx, len(m.Vertices))
			}
		}
	}
}

func TestTriangle(t *testing.T) {
	m := Triangle()
	if len(m.Vertices) != 3 || len(m.Faces) != 1 {
		t.Fatalf("have %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	checkFaces(t, m)
	if m.Scale != math3.One3() {
		t.Fatalf("fresh mesh scale: have %v, want (1 1 1)", m.Scale)
	}
}

func TestCube(t *testing.T) {
	m := Cube()
	if len(m.Vertices) != 8 || len(m.Faces) != 12 {
		t.Fatalf("have %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	checkFaces(t, m)

	min, max := m.Bounds()
	if min != math3.V3(-1, -1, -1) || max != math3.V3(1, 1, 1) {
		t.Fatalf("bounds: have %v..%v", min, max)
	}
}

func TestTetrahedron(t *testing.T) {
	m := Tetrahedron(1)
	if len(m.Vertices) != 4 || len(m.Faces) != 4 {
		t.Fatalf("have %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	checkFaces(t, m)
}

func TestOctahedron(t *testing.T) {
	m := Octahedron(1)
	if len(m.Vertices) != 6 || len(m.Faces) != 8 {
		t.Fatalf("have %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	checkFaces(t, m)
}

func TestSphere(t *testing.T) {
	const slices, stacks = 16, 16
	m := Sphere(math3.V3(0, 0, 0), 2, slices, stacks)
	if want := (slices + 1) * (stacks + 1); len(m.Vertices) != want {
		t.Fatalf("have %d vertices, want %d", len(m.Vertices), want)
	}
	if want := slices * stacks * 2; len(m.Faces) != want {
		t.Fatalf("have %d faces, want %d", len(m.Faces), want)
	}
	checkFaces(t, m)

	// Every vertex sits on the sphere.
	for i, v := range m.Vertices {
		if r := v.Length(); r < 2-1e-9 || r > 2+1e-9 {
			t.Fatalf("vertex %d at radius %v", i, r)
		}
	}
}

func TestSpherePivot(t *testing.T) {
	pivot := math3.V3(5, -3, 2)
	m := Sphere(pivot, 1, 8, 8)
	for i, v := range m.Vertices {
		if r := v.Sub(pivot).Length(); r < 1-1e-9 || r > 1+1e-9 {
			t.Fatalf("vertex %d at radius %v from pivot", i, r)
		}
	}
}

func TestTorus(t *testing.T) {
	const sides, rings = 12, 8
	m := Torus(3, 1, sides, rings)
	if want := (sides + 1) * (rings + 1); len(m.Vertices) != want {
		t.Fatalf("have %d vertices, want %d", len(m.Vertices), want)
	}
	if want := sides * rings * 2; len(m.Faces) != want {
		t.Fatalf("have %d faces, want %d", len(m.Faces), want)
	}
	checkFaces(t, m)
}

func TestShell(t *testing.T) {
	// The shell face lattice is only consistent for slices == stacks.
	const div = 24
	m := Shell(0.2, 1.5, 3, 2, div, div)
	if want := (div + 1) * (div + 1); len(m.Vertices) != want {
		t.Fatalf("have %d vertices, want %d", len(m.Vertices), want)
	}
	if want := div * div * 2; len(m.Faces) != want {
		t.Fatalf("have %d faces, want %d", len(m.Faces), want)
	}
	checkFaces(t, m)
}

func TestBoundsEmpty(t *testing.T) {
	m := &Mesh{Name: "Empty"}
	min, max := m.Bounds()
	if min != (math3.Vector3{}) || max != (math3.Vector3{}) {
		t.Fatalf("have %v..%v, want zero bounds", min, max)
	}
}
