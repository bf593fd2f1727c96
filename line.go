package swr

import (
	"github.com/chewxy/math32"

	"github.com/nekronos/swr/math3"
)

// Screen-space rasterization runs in float32 like the rest of the raster
// layer; scene math stays float64 and is converted at this boundary.

const pointColor = 0xffff2222

func fpart(x float32) float32 {
	return x - math32.Floor(x)
}

func rfpart(x float32) float32 {
	return 1 - fpart(x)
}

func round(x float32) float32 {
	return math32.Floor(x + 0.5)
}

// plot writes an anti-aliased pixel with coverage c in [0, 1] as an
// opaque gray. Zero coverage is skipped so the complementary pixel pair
// of an exactly axis-aligned line does not stamp black next to it.
func (d *Device) plot(x, y int, c float32) {
	if !(c > 0) {
		return
	}
	if c > 1 {
		c = 1
	}
	i := uint32(c * 255)
	d.PutPixel(x, y, 0xff000000|i<<16|i<<8|i)
}

// DrawPoint writes a single fixed-color pixel if p is on screen.
func (d *Device) DrawPoint(p math3.Vector2) {
	if p.X >= 0 && p.Y >= 0 && p.X < float64(d.width) && p.Y < float64(d.height) {
		d.PutPixel(int(p.X), int(p.Y), pointColor)
	}
}

// DrawLine draws an aliased line by stepping point to point. It survives
// as a debugging aid; wireframes use DrawLineAA.
func (d *Device) DrawLine(p1, p2 math3.Vector2) {
	length := p1.Sub(p2).Length()
	for i := 0; i < int(length); i++ {
		d.DrawPoint(p1.Lerp(p2, float64(i)/length))
	}
}

// DrawLineAA draws an anti-aliased line between two screen-space points
// using coverage-based (Wu) rasterization. Only the x and y components
// are used; wireframe edges carry no depth.
func (d *Device) DrawLineAA(p1, p2 math3.Vector3) {
	x0, y0 := float32(p1.X), float32(p1.Y)
	x1, y1 := float32(p2.X), float32(p2.Y)

	// Iterate along the axis with the greater extent so every step
	// advances exactly one pixel column (or row when steep).
	steep := math32.Abs(y1-y0) > math32.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0

	// Both axes collapsed: a zero-length segment. The slope below would
	// be NaN, so stamp the single pixel and stop.
	if dx == 0 {
		px, py := int(round(x0)), int(math32.Floor(y0))
		if steep {
			px, py = py, px
		}
		d.plot(px, py, 1)
		return
	}

	slope := dy / dx

	// First endpoint, weighted by how much of its pixel the line enters.
	xend := round(x0)
	yend := y0 + slope*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math32.Floor(yend))
	if steep {
		d.plot(ypxl1, xpxl1, rfpart(yend)*xgap)
		d.plot(ypxl1+1, xpxl1, fpart(yend)*xgap)
	} else {
		d.plot(xpxl1, ypxl1, rfpart(yend)*xgap)
		d.plot(xpxl1, ypxl1+1, fpart(yend)*xgap)
	}

	intery := yend + slope

	// Second endpoint.
	xend = round(x1)
	yend = y1 + slope*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math32.Floor(yend))
	if steep {
		d.plot(ypxl2, xpxl2, rfpart(yend)*xgap)
		d.plot(ypxl2+1, xpxl2, fpart(yend)*xgap)
	} else {
		d.plot(xpxl2, ypxl2, rfpart(yend)*xgap)
		d.plot(xpxl2, ypxl2+1, fpart(yend)*xgap)
	}

	// Interior, inclusive up to xpxl2-1. An exclusive upper bound here
	// silently drops the middle of short lines.
	if steep {
		for x := xpxl1 + 1; x < xpxl2; x++ {
			y := int(math32.Floor(intery))
			d.plot(y, x, rfpart(intery))
			d.plot(y+1, x, fpart(intery))
			intery += slope
		}
	} else {
		for x := xpxl1 + 1; x < xpxl2; x++ {
			y := int(math32.Floor(intery))
			d.plot(x, y, rfpart(intery))
			d.plot(x, y+1, fpart(intery))
			intery += slope
		}
	}
}
