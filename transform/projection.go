package transform

import (
	"fmt"
	"math"
)

// Perspective returns the symmetric-frustum projection for a vertical field of view of fovY radians. Clip space
// coordinates still need the perspective divide by w (= -z in eye space) downstream.
func Perspective(fovY, aspect, near, far float64) (Matrix, error) {
	if anyNaN(fovY, aspect, near, far) {
		return Matrix{}, fmt.Errorf("transform: perspective with NaN parameters: %w", ErrInvalidArgument)
	}
	if fovY <= 0 || fovY >= math.Pi {
		return Matrix{}, fmt.Errorf("transform: perspective fov %v outside (0, pi): %w", fovY, ErrInvalidArgument)
	}
	if aspect <= 0 || math.IsInf(aspect, 0) {
		return Matrix{}, fmt.Errorf("transform: perspective aspect ratio %v: %w", aspect, ErrInvalidArgument)
	}
	if near <= 0 || far <= 0 {
		return Matrix{}, fmt.Errorf("transform: perspective near %v and far %v must be positive: %w", near, far, ErrInvalidArgument)
	}
	if err := checkDepthRange(near, far); err != nil {
		return Matrix{}, fmt.Errorf("transform: perspective: %w", err)
	}
	f := 1 / math.Tan(fovY/2)
	m := Matrix{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -(far + near) / (far - near), -(2 * far * near) / (far - near)},
		{0, 0, -1, 0},
	}
	if !m.IsFinite() {
		return Matrix{}, fmt.Errorf("transform: perspective(%v, %v, %v, %v): %w", fovY, aspect, near, far, ErrDegenerateProjection)
	}
	return m, nil
}

// Orthographic maps the box [left, right] x [bottom, top] x [-near, -far] to the [-1, 1] cube.
func Orthographic(left, right, bottom, top, near, far float64) (Matrix, error) {
	if anyNaN(left, right, bottom, top, near, far) {
		return Matrix{}, fmt.Errorf("transform: orthographic with NaN parameters: %w", ErrInvalidArgument)
	}
	if right == left || top == bottom {
		return Matrix{}, fmt.Errorf("transform: orthographic bounds [%v, %v]x[%v, %v]: %w", left, right, bottom, top, ErrDegenerateProjection)
	}
	if err := checkDepthRange(near, far); err != nil {
		return Matrix{}, fmt.Errorf("transform: orthographic: %w", err)
	}
	m := Matrix{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}
	if !m.IsFinite() {
		return Matrix{}, fmt.Errorf("transform: orthographic(%v, %v, %v, %v, %v, %v): %w", left, right, bottom, top, near, far, ErrDegenerateProjection)
	}
	return m, nil
}

// checkDepthRange requires near < far: equal planes collapse the depth range, reversed ones are a caller bug.
func checkDepthRange(near, far float64) error {
	if far == near {
		return fmt.Errorf("near == far == %v: %w", near, ErrDegenerateProjection)
	}
	if near > far {
		return fmt.Errorf("near %v > far %v: %w", near, far, ErrInvalidArgument)
	}
	return nil
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
