package transform

import "github.com/fogleman/fauxgl"

// ColumnMajor flattens the matrix column by column, as glLoadMatrixf/glMultMatrixf and GLSL uniforms expect. This is
// the one place where the transpose between this package's row-major layout and OpenGL's layout happens.
func (a Matrix) ColumnMajor() [16]float32 {
	var res [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			res[col*4+row] = float32(a[row][col])
		}
	}
	return res
}

// Fauxgl converts to the fauxgl software pipeline, which is also row-major: no transpose needed.
func (a Matrix) Fauxgl() fauxgl.Matrix {
	return fauxgl.Matrix{
		X00: a[0][0], X01: a[0][1], X02: a[0][2], X03: a[0][3],
		X10: a[1][0], X11: a[1][1], X12: a[1][2], X13: a[1][3],
		X20: a[2][0], X21: a[2][1], X22: a[2][2], X23: a[2][3],
		X30: a[3][0], X31: a[3][1], X32: a[3][2], X33: a[3][3],
	}
}

// FromFauxgl is the inverse of Matrix.Fauxgl.
func FromFauxgl(m fauxgl.Matrix) Matrix {
	return Matrix{
		{m.X00, m.X01, m.X02, m.X03},
		{m.X10, m.X11, m.X12, m.X13},
		{m.X20, m.X21, m.X22, m.X23},
		{m.X30, m.X31, m.X32, m.X33},
	}
}
