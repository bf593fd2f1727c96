package swr

import "github.com/nekronos/swr/math3"

// Camera describes the viewpoint for a frame: where it sits, what it
// looks at and the vertical field of view in radians. It must not change
// while a frame renders. ZNear and ZFar must be distinct and FOV nonzero;
// degenerate values divide by zero in the projection matrix and are not
// guarded against.
type Camera struct {
	Position math3.Vector3
	Target   math3.Vector3
	FOV      float64
	ZNear    float64
	ZFar     float64
}
