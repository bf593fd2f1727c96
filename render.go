package swr

import (
	"github.com/nekronos/swr/geometry"
	"github.com/nekronos/swr/math3"
)

// RenderMode selects the rasterization strategy for a frame.
type RenderMode int

const (
	// Wireframe draws each face as three anti-aliased edges.
	Wireframe RenderMode = iota
	// Filled rasterizes each face as a depth-tested solid triangle.
	Filled
)

func (m RenderMode) String() string {
	switch m {
	case Filled:
		return "Filled"
	default:
		return "Wireframe"
	}
}

func viewMatrix(camera Camera) math3.Matrix4 {
	return math3.LookAtLH(camera.Position, camera.Target, math3.UnitY())
}

func (d *Device) projectionMatrix(camera Camera) math3.Matrix4 {
	aspect := float64(d.width) / float64(d.height)
	return math3.PerspectiveRH(camera.FOV, aspect, camera.ZNear, camera.ZFar)
}

// worldMatrix composes a mesh's transform: scale first, then rotation,
// then translation, left to right under the row-vector convention.
func worldMatrix(mesh *geometry.Mesh) math3.Matrix4 {
	return math3.Scale(mesh.Scale).
		Mul(math3.Rotation(math3.FromEuler(mesh.Rotation))).
		Mul(math3.Translation(mesh.Position))
}

// project maps an object-space point through transform into screen space.
// X and y are pixel coordinates with the origin at the top left (hence
// the y flip from NDC, whose origin is the center with y up); z is the
// post-divide depth kept for the depth test.
func (d *Device) project(p math3.Vector3, transform math3.Matrix4) math3.Vector3 {
	ndc := p.TransformCoordinate(transform)
	return math3.V3(
		ndc.X*float64(d.width)+float64(d.width)/2,
		-ndc.Y*float64(d.height)+float64(d.height)/2,
		ndc.Z,
	)
}

// Render draws every face of every mesh with the given strategy. The
// meshes are borrowed read-only for the duration of the call; the clip
// transform is composed once per mesh, not once per vertex. Rendering is
// synchronous and single-threaded and always runs to completion.
func (d *Device) Render(camera Camera, meshes []*geometry.Mesh, mode RenderMode) {
	view := viewMatrix(camera)
	projection := d.projectionMatrix(camera)

	for _, mesh := range meshes {
		transform := worldMatrix(mesh).Mul(view).Mul(projection)

		for _, face := range mesh.Faces {
			v0 := d.project(mesh.Vertices[face.A], transform)
			v1 := d.project(mesh.Vertices[face.B], transform)
			v2 := d.project(mesh.Vertices[face.C], transform)

			switch mode {
			case Filled:
				d.DrawTriangle(v0, v1, v2)
			default:
				d.DrawLineAA(v0, v1)
				d.DrawLineAA(v1, v2)
				d.DrawLineAA(v2, v0)
			}
		}
	}
}
