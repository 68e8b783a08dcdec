// Package raster enumerates the integer grid points of straight segments (Bresenham).
package raster

import (
	"image"
	"iter"
	"math"
)

// Line lazily yields the grid points approximating the segment from (x1, y1) to (x2, y2), in that order. Endpoints are
// rounded to the nearest integer (halves away from zero); everything after that is integer arithmetic.
//
// The sequence is 8-connected, monotonic along both axes, has no duplicates and always holds exactly
// max(|dx|, |dy|)+1 points, including both endpoints. Each call is independent, so the result can be ranged over any
// number of times. Endpoints that are not finite or exceed MaxCoord in magnitude yield nothing.
func Line(x1, y1, x2, y2 float64) iter.Seq2[int, int] {
	if !inRange(x1) || !inRange(y1) || !inRange(x2) || !inRange(y2) {
		return func(func(int, int) bool) {}
	}
	ax, ay := int(math.Round(x1)), int(math.Round(y1))
	bx, by := int(math.Round(x2)), int(math.Round(y2))
	return func(yield func(int, int) bool) {
		bresenham(ax, ay, bx, by, yield)
	}
}

func bresenham(x, y, x2, y2 int, yield func(int, int) bool) {
	dx, dy := abs(x2-x), abs(y2-y)
	sx, sy := 1, 1
	if x2 < x {
		sx = -1
	}
	if y2 < y {
		sy = -1
	}
	err := dx - dy
	for {
		if !yield(x, y) {
			return
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// LineScaled rasterizes the segment at a virtual resolution scale times finer and maps the points back to the
// original units. Larger scales follow the true segment more closely at the cost of more points. A scale that is not
// positive and finite yields nothing, as do scaled endpoints beyond MaxCoord.
func LineScaled(x1, y1, x2, y2, scale float64) iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		if !(scale > 0) || math.IsInf(scale, 0) {
			return
		}
		for x, y := range Line(x1*scale, y1*scale, x2*scale, y2*scale) {
			if !yield(float64(x)/scale, float64(y)/scale) {
				return
			}
		}
	}
}

// Points collects a rasterized line.
func Points(seq iter.Seq2[int, int]) []image.Point {
	var res []image.Point
	for x, y := range seq {
		res = append(res, image.Point{X: x, Y: y})
	}
	return res
}

// MaxCoord bounds endpoint magnitudes so that the error terms of the integer walk cannot overflow.
const MaxCoord = 1 << 52

// inRange is false for NaN and infinities too.
func inRange(v float64) bool {
	return math.Abs(math.Round(v)) <= MaxCoord
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
