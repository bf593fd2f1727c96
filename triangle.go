package swr

import (
	"github.com/chewxy/math32"

	"github.com/nekronos/swr/math3"
)

// Fixed reference colors blended by the barycentric weights, clamped to
// [0, 1] per channel before weighting.
var (
	refColorA = clampColor(1.5, 1.5, 1.5)
	refColorB = clampColor(0, 1.5, 1.5)
	refColorC = clampColor(1.5, 0, 1.5)
)

func clampColor(r, g, b float32) [3]float32 {
	clamp01 := func(v float32) float32 {
		return math32.Max(0, math32.Min(1, v))
	}
	return [3]float32{clamp01(r), clamp01(g), clamp01(b)}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// edge is the signed edge function of the directed edge a->b evaluated at
// p: positive on one side, negative on the other, and twice the triangle
// area when evaluated at a third vertex.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (ay-by)*px + (bx-ax)*py + (ax*by - ay*bx)
}

// DrawTriangle fills a screen-space triangle with depth testing. The z
// components are post-projection depths where larger means nearer; a
// pixel is written only when its interpolated depth beats the stored one.
// Triangles wound against the renderer's winding convention fail the
// all-weights-nonnegative inside test everywhere and are simply not
// drawn, as are zero-area triangles.
func (d *Device) DrawTriangle(v0, v1, v2 math3.Vector3) {
	x0, y0, z0 := float32(v0.X), float32(v0.Y), float32(v0.Z)
	x1, y1, z1 := float32(v1.X), float32(v1.Y), float32(v1.Z)
	x2, y2, z2 := float32(v2.X), float32(v2.Y), float32(v2.Z)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}

	// Bounding box clamped to the screen. This is the only clipping the
	// pipeline does.
	minX := clamp(int(math32.Min(x0, math32.Min(x1, x2))), 0, d.width)
	minY := clamp(int(math32.Min(y0, math32.Min(y1, y2))), 0, d.height)
	maxX := clamp(int(math32.Max(x0, math32.Max(x1, x2))), 0, d.width)
	maxY := clamp(int(math32.Max(y0, math32.Max(y1, y2))), 0, d.height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px, py := float32(x), float32(y)

			w0 := edge(x1, y1, x2, y2, px, py) / area
			w1 := edge(x2, y2, x0, y0, px, py) / area
			w2 := edge(x0, y0, x1, y1, px, py) / area

			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				z := z0*w0 + z1*w1 + z2*w2
				offset := y*d.width + x
				if d.depth[offset] < z {
					d.depth[offset] = z
					d.renderPixel(x, y, w0, w1, w2)
				}
			}
		}
	}
}

func (d *Device) renderPixel(x, y int, w0, w1, w2 float32) {
	r := refColorA[0]*w0 + refColorB[0]*w1 + refColorC[0]*w2
	g := refColorA[1]*w0 + refColorB[1]*w1 + refColorC[1]*w2
	b := refColorA[2]*w0 + refColorB[2]*w1 + refColorC[2]*w2

	color := 0xff000000 |
		uint32(r*255)<<16 |
		uint32(g*255)<<8 |
		uint32(b*255)

	d.PutPixel(x, y, color)
}
