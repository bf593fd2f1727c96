package swr

import (
	"testing"
)

func TestNewDevice(t *testing.T) {
	d := NewDevice(8, 4)
	if d.Width() != 8 || d.Height() != 4 {
		t.Fatalf("have %dx%d, want 8x4", d.Width(), d.Height())
	}
	if len(d.Pixels()) != 32 || len(d.depth) != 32 {
		t.Fatalf("buffer sizes: %d color, %d depth", len(d.Pixels()), len(d.depth))
	}
}

func TestClear(t *testing.T) {
	d := NewDevice(4, 4)
	d.PutPixel(1, 1, 0xffffffff)
	d.depth[5] = 0.7

	d.Clear(0xff222222)
	for i, c := range d.back {
		if c != 0xff222222 {
			t.Fatalf("pixel %d: have %#x", i, c)
		}
	}
	for i, z := range d.depth {
		if z != 0 {
			t.Fatalf("depth %d: have %v, want 0", i, z)
		}
	}
}

func TestPutPixelBoundsDropped(t *testing.T) {
	d := NewDevice(4, 3)

	// One past the last valid index on each axis, and negative
	// coordinates, must neither write nor fault.
	d.PutPixel(4, 0, 0xffffffff)
	d.PutPixel(0, 3, 0xffffffff)
	d.PutPixel(-1, 0, 0xffffffff)
	d.PutPixel(0, -1, 0xffffffff)

	for i, c := range d.back {
		if c != 0 {
			t.Fatalf("pixel %d written: %#x", i, c)
		}
	}
}

func TestPutPixelOffset(t *testing.T) {
	d := NewDevice(4, 3)
	d.PutPixel(2, 1, 0xffaabbcc)
	if d.back[1*4+2] != 0xffaabbcc {
		t.Fatalf("have %#x at offset 6", d.back[6])
	}
}

func TestImage(t *testing.T) {
	d := NewDevice(2, 1)
	d.PutPixel(0, 0, 0xff102030)
	img := d.Image()
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0x10 || g>>8 != 0x20 || b>>8 != 0x30 || a>>8 != 0xff {
		t.Fatalf("have rgba %x %x %x %x", r>>8, g>>8, b>>8, a>>8)
	}
}
