// Package transform builds 4x4 homogeneous matrices (translation, rotation, scaling and projections) and composes them.
//
// Matrices are row-major (m[row][col]) and act on column vectors multiplied on the right (M*v), so translation and
// perspective terms live in column 3. Handing a Matrix to a column-major graphics API requires a transpose: see
// Matrix.ColumnMajor.
package transform

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Matrix is an immutable 4x4 homogeneous transform. All operations return new values.
type Matrix [4][4]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation places (tx, ty, tz) in the last column of the identity.
func Translation(tx, ty, tz float64) Matrix {
	return Matrix{
		{1, 0, 0, tx},
		{0, 1, 0, ty},
		{0, 0, 1, tz},
		{0, 0, 0, 1},
	}
}

// Scaling returns diag(sx, sy, sz, 1). Zero or negative factors are accepted (degenerate or mirrored results are the
// caller's problem).
func Scaling(sx, sy, sz float64) Matrix {
	return Matrix{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// Rotation returns the right-handed rotation of angle radians around the given axis.
func Rotation(angle float64, axis Axis) (Matrix, error) {
	c, s := math.Cos(angle), math.Sin(angle)
	switch axis {
	case X:
		return Matrix{
			{1, 0, 0, 0},
			{0, c, -s, 0},
			{0, s, c, 0},
			{0, 0, 0, 1},
		}, nil
	case Y:
		return Matrix{
			{c, 0, s, 0},
			{0, 1, 0, 0},
			{-s, 0, c, 0},
			{0, 0, 0, 1},
		}, nil
	case Z:
		return Matrix{
			{c, -s, 0, 0},
			{s, c, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		}, nil
	default:
		return Matrix{}, fmt.Errorf("transform: rotation around %v: %w", axis, ErrInvalidArgument)
	}
}

// MustRotation is Rotation for axes known to be valid at compile time. It panics on an invalid axis.
func MustRotation(angle float64, axis Axis) Matrix {
	m, err := Rotation(angle, axis)
	if err != nil {
		panic(err)
	}
	return m
}

// Compose multiplies the matrices left to right: the rightmost one is applied to a vector first, so
// Compose(T, R, S) scales, then rotates, then translates. No matrices yields the identity.
func Compose(ms ...Matrix) Matrix {
	res := Identity()
	for _, m := range ms {
		res = res.Mul(m)
	}
	return res
}

// Model returns Translate * Rotate * Scale, the usual object-to-world transform.
func Model(translate v3.Vec, angle float64, axis Axis, scale v3.Vec) (Matrix, error) {
	rot, err := Rotation(angle, axis)
	if err != nil {
		return Matrix{}, err
	}
	return Compose(Translation(translate.X, translate.Y, translate.Z), rot, Scaling(scale.X, scale.Y, scale.Z)), nil
}

// Mul returns a*b.
func (a Matrix) Mul(b Matrix) Matrix {
	var res Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			res[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	return res
}

// Transpose swaps rows and columns.
func (a Matrix) Transpose() Matrix {
	var res Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			res[i][j] = a[j][i]
		}
	}
	return res
}

// Determinant by cofactor expansion over 2x2 minors of the first two and last two rows.
func (a Matrix) Determinant() float64 {
	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]
	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// MulPositionW multiplies the homogeneous column vector v, without any perspective divide.
func (a Matrix) MulPositionW(v [4]float64) [4]float64 {
	var res [4]float64
	for i := 0; i < 4; i++ {
		res[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2] + a[i][3]*v[3]
	}
	return res
}

// MulPosition transforms the point p (w=1). The result is divided by w when the matrix is projective.
func (a Matrix) MulPosition(p v3.Vec) v3.Vec {
	res := a.MulPositionW([4]float64{p.X, p.Y, p.Z, 1})
	if res[3] != 1 && res[3] != 0 {
		return v3.Vec{X: res[0] / res[3], Y: res[1] / res[3], Z: res[2] / res[3]}
	}
	return v3.Vec{X: res[0], Y: res[1], Z: res[2]}
}

// MulDirection transforms the direction d (w=0): translation is ignored.
func (a Matrix) MulDirection(d v3.Vec) v3.Vec {
	res := a.MulPositionW([4]float64{d.X, d.Y, d.Z, 0})
	return v3.Vec{X: res[0], Y: res[1], Z: res[2]}
}

// ApproxEqual compares all entries within tol.
func (a Matrix) ApproxEqual(b Matrix, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// IsFinite reports whether no entry is NaN or infinite.
func (a Matrix) IsFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return false
			}
		}
	}
	return true
}

func (a Matrix) String() string {
	return fmt.Sprintf("[%v %v %v %v]", a[0], a[1], a[2], a[3])
}
