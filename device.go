// Package swr is a software 3D rendering pipeline. It transforms meshes
// through a model-view-projection pipeline and rasterizes them into an
// in-memory pixel buffer, either as anti-aliased wireframes or as
// depth-tested filled triangles. No GPU is involved anywhere.
package swr

import (
	"image"
)

// Device owns the color backbuffer and the depth buffer. Pixels are
// packed 32-bit ARGB, row-major with the origin at the top left. The
// depth plane stores one float32 per pixel where a larger value is
// nearer; it is cleared to zero so the first write at any pixel wins.
//
// A Device is not safe for concurrent use. Rendering a frame mutates
// both buffers pixel by pixel and runs to completion on the calling
// goroutine.
type Device struct {
	width, height int

	back  []uint32
	depth []float32
}

// NewDevice allocates a device with the given fixed resolution.
func NewDevice(width, height int) *Device {
	return &Device{
		width:  width,
		height: height,
		back:   make([]uint32, width*height),
		depth:  make([]float32, width*height),
	}
}

func (d *Device) Width() int  { return d.width }
func (d *Device) Height() int { return d.height }

// Clear fills the backbuffer with color and resets every depth value to
// zero.
func (d *Device) Clear(color uint32) {
	for i := range d.back {
		d.back[i] = color
	}
	for i := range d.depth {
		d.depth[i] = 0
	}
}

// PutPixel writes one packed ARGB pixel. Out-of-range coordinates are
// silently dropped; that is the only clipping the renderer performs, so
// the check here is load-bearing, not defensive.
func (d *Device) PutPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	d.back[y*d.width+x] = color
}

// Pixels returns the backbuffer for presentation. The caller must treat
// it as read-only and must not hold it across a Render call.
func (d *Device) Pixels() []uint32 {
	return d.back
}

// Image copies the backbuffer into a new RGBA image, for captures.
func (d *Device) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for i, c := range d.back {
		img.Pix[i*4+0] = uint8(c >> 16)
		img.Pix[i*4+1] = uint8(c >> 8)
		img.Pix[i*4+2] = uint8(c)
		img.Pix[i*4+3] = uint8(c >> 24)
	}
	return img
}
