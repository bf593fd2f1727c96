// Package geometry defines triangle meshes and the procedural solids
// rendered by the demo driver. Meshes own their vertex and face data; the
// renderer only ever reads them.
package geometry

import (
	"math"

	"github.com/nekronos/swr/math3"
)

// Face holds three indices into a mesh's vertex list. Indices must be
// smaller than the vertex count and wound consistently; the renderer does
// not check either.
type Face struct {
	A, B, C uint32
}

// Mesh is a named triangle mesh in object space together with its
// transform. Position, Rotation (Euler angles, radians) and Scale are
// mutated by the driver between frames and read, never written, by the
// renderer.
type Mesh struct {
	Name     string
	Vertices []math3.Vector3
	Faces    []Face

	Position math3.Vector3
	Rotation math3.Vector3
	Scale    math3.Vector3
}

func newMesh(name string, vertices []math3.Vector3, faces []Face) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
		Scale:    math3.One3(),
	}
}

// Bounds returns the object-space axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math3.Vector3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return
}

// Triangle returns a single-triangle mesh.
func Triangle() *Mesh {
	return newMesh("Triangle",
		[]math3.Vector3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
		},
		[]Face{{0, 1, 2}},
	)
}

// Cube returns a unit-radius cube centered on the origin.
func Cube() *Mesh {
	return newMesh("Cube",
		[]math3.Vector3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		[]Face{
			{0, 1, 2}, {2, 3, 0},
			{1, 5, 6}, {6, 2, 1},
			{4, 7, 6}, {6, 5, 4},
			{0, 3, 7}, {7, 4, 0},
			{5, 1, 0}, {0, 4, 5},
			{2, 6, 7}, {7, 3, 2},
		},
	)
}

// Tetrahedron returns a tetrahedron with the given radius.
func Tetrahedron(radius float64) *Mesh {
	angle := 2 * math.Pi / 3
	peak := math.Sqrt(2*radius) / 2

	vertices := make([]math3.Vector3, 0, 4)
	for i := 0; i < 3; i++ {
		t := radius * (float64(i) * angle)
		vertices = append(vertices, math3.V3(math.Cos(t), math.Sin(t), -peak))
	}
	vertices = append(vertices, math3.V3(0, 0, peak))

	return newMesh("Tetrahedron", vertices, []Face{
		{0, 1, 2},
		{0, 1, 3},
		{1, 2, 3},
		{2, 0, 3},
	})
}

// Octahedron returns an octahedron with the given radius.
func Octahedron(radius float64) *Mesh {
	angle := math.Pi / 2

	vertices := make([]math3.Vector3, 0, 6)
	for i := 0; i < 4; i++ {
		t := radius * (float64(i) * angle)
		vertices = append(vertices, math3.V3(math.Cos(t), math.Sin(t), 0))
	}
	vertices = append(vertices, math3.V3(0, 0, radius), math3.V3(0, 0, -radius))

	return newMesh("Octahedron", vertices, []Face{
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
		{0, 1, 5}, {1, 2, 5}, {2, 3, 5}, {3, 0, 5},
	})
}

// Sphere returns a UV sphere of the given radius around pivot, built from
// slices horizontal and stacks vertical subdivisions.
func Sphere(pivot math3.Vector3, radius float64, slices, stacks int) *Mesh {
	horiVertexCount := slices + 1
	vertVertexCount := stacks + 1

	vertices := make([]math3.Vector3, 0, horiVertexCount*vertVertexCount)
	faces := make([]Face, 0, slices*stacks*2)

	for j := 0; j < vertVertexCount; j++ {
		for i := 0; i < horiVertexCount; i++ {
			u := float64(i) / float64(slices) * 2 * math.Pi
			v := float64(j)/float64(stacks)*math.Pi - math.Pi*0.5

			vertices = append(vertices, pivot.Add(math3.V3(
				math.Cos(v)*math.Cos(u)*radius,
				math.Cos(v)*math.Sin(u)*radius,
				math.Sin(v)*radius,
			)))
		}
	}

	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			faces = append(faces, Face{
				uint32(i + j*horiVertexCount),
				uint32(i + j*horiVertexCount + 1),
				uint32(i + (j+1)*horiVertexCount),
			})
			faces = append(faces, Face{
				uint32(i + j*horiVertexCount + 1),
				uint32(i + (j+1)*horiVertexCount + 1),
				uint32(i + (j+1)*horiVertexCount),
			})
		}
	}

	return newMesh("Sphere", vertices, faces)
}

// Torus returns a torus with the given main radius and ring radius, built
// from sides subdivisions around the ring and rings subdivisions around
// the main circle.
func Torus(radius, ringRadius float64, sides, rings int) *Mesh {
	verticesPerRow := sides + 1
	verticesPerCol := rings + 1

	verticalAngle := 2 * math.Pi / float64(rings)
	horizontalAngle := 2 * math.Pi / float64(sides)

	vertices := make([]math3.Vector3, 0, verticesPerRow*verticesPerCol)
	faces := make([]Face, 0, sides*rings*2)

	for v := 0; v < verticesPerCol; v++ {
		theta := verticalAngle * float64(v)
		for h := 0; h < verticesPerRow; h++ {
			phi := horizontalAngle * float64(h)
			vertices = append(vertices, math3.V3(
				math.Cos(theta)*(radius+ringRadius*math.Cos(phi)),
				math.Sin(theta)*(radius+ringRadius*math.Cos(phi)),
				ringRadius*math.Sin(phi),
			))
		}
	}

	for v := 0; v < rings; v++ {
		for h := 0; h < sides; h++ {
			lt := uint32(h + v*verticesPerRow)
			rt := uint32(h + 1 + v*verticesPerRow)
			lb := uint32(h + (v+1)*verticesPerRow)
			rb := uint32(h + 1 + (v+1)*verticesPerRow)

			faces = append(faces, Face{lt, rt, lb}, Face{rt, rb, lb})
		}
	}

	return newMesh("Torus", vertices, faces)
}

// Shell returns a spiral shell surface. The surface winds spirals times
// from finalShellRadius down to nothing over the given height, offset
// from its axis by innerRadius.
func Shell(innerRadius, finalShellRadius, height float64, spirals, slices, stacks int) *Mesh {
	verticesPerRow := slices + 1
	verticesPerCol := stacks + 1

	verticalAngle := 2 * math.Pi / float64(slices)
	horizontalAngle := 2 * math.Pi / float64(stacks)

	n := float64(spirals)
	a := finalShellRadius
	b := height
	c := innerRadius

	vertices := make([]math3.Vector3, 0, verticesPerRow*verticesPerCol)

	for v := 0; v < verticesPerCol; v++ {
		t := verticalAngle * float64(v)

		for h := 0; h < verticesPerRow; h++ {
			s := horizontalAngle * float64(h)

			t2pi := t / (2 * math.Pi)
			cosNT := math.Cos(n * t)
			sinNT := math.Sin(n * t)
			cosS := math.Cos(s)
			sinS := math.Sin(s)

			vertices = append(vertices, math3.V3(
				a*(1-t2pi)*cosNT*(1+cosS)+c*cosNT,
				a*(1-t2pi)*sinNT*(1+cosS)+c*sinNT,
				b*t2pi+a*(1-t2pi)*sinS,
			))
		}
	}

	faces := make([]Face, 0, slices*stacks*2)
	for v := 0; v < slices; v++ {
		for h := 0; h < stacks; h++ {
			lt := uint32(h + v*verticesPerRow)
			rt := uint32(h + 1 + v*verticesPerRow)
			lb := uint32(h + (v+1)*verticesPerRow)
			rb := uint32(h + 1 + (v+1)*verticesPerRow)

			faces = append(faces, Face{lt, rt, lb}, Face{rt, rb, lb})
		}
	}

	return newMesh("Shell", vertices, faces)
}
