package ui

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/Yeicor/hexstack-ui/transform"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edgeEnds(e planarEdge) (v3.Vec, v3.Vec) {
	return e.plane.MulPosition(v3.Vec{X: e.x1, Y: e.y1}), e.plane.MulPosition(v3.Vec{X: e.x2, Y: e.y2})
}

func TestPrismOutline(t *testing.T) {
	edges := prismOutline(1, 2, 6)
	require.Len(t, edges, 12)
	for i, e := range edges {
		a, b := edgeEnds(e)
		assert.InDelta(t, 1, b.Sub(a).Length(), 1e-9)
		assert.InDelta(t, math.Abs(a.Z), 1, 1e-12)
		assert.Equal(t, a.Z, b.Z)
		if i < 6 {
			assert.Equal(t, 1.0, a.Z, "top cap first")
		}
	}
}

func TestCubeOutline(t *testing.T) {
	edges := cubeOutline(2)
	require.Len(t, edges, 12)
	seen := map[[6]float64]bool{}
	for _, e := range edges {
		a, b := edgeEnds(e)
		assert.InDelta(t, 2, b.Sub(a).Length(), 1e-9)
		for _, p := range []v3.Vec{a, b} {
			for _, c := range []float64{p.X, p.Y, p.Z} {
				assert.InDelta(t, 1, math.Abs(c), 1e-9, "corner %v", p)
			}
		}
		// Order independent key, rounded to avoid -0 and 1e-17 noise
		k1 := [3]float64{math.Round(a.X), math.Round(a.Y), math.Round(a.Z)}
		k2 := [3]float64{math.Round(b.X), math.Round(b.Y), math.Round(b.Z)}
		if k2[0] < k1[0] || (k2[0] == k1[0] && (k2[1] < k1[1] || (k2[1] == k1[1] && k2[2] < k1[2]))) {
			k1, k2 = k2, k1
		}
		key := [6]float64{k1[0], k1[1], k1[2], k2[0], k2[1], k2[2]}
		assert.False(t, seen[key], "duplicate edge %v", key)
		seen[key] = true
	}
}

// newTestDrawContext maps x and y in [-1, 1] to a size x size image, with z in [-1, 1] mapped to depths [1, 0].
func newTestDrawContext(t *testing.T, size int) (*drawContext, *image.NRGBA) {
	t.Helper()
	gl := fauxgl.NewContext(size, size)
	gl.ClearDepthBuffer()
	ortho, err := transform.Orthographic(-1, 1, -1, 1, -1, 1)
	require.NoError(t, err)
	dc := &drawContext{gl: gl, stack: transform.NewStack(), viewProj: ortho}
	return dc, image.NewNRGBA(image.Rect(0, 0, size, size))
}

func TestDrawOutlines(t *testing.T) {
	dc, img := newTestDrawContext(t, 100)
	edge := []planarEdge{{x1: -0.5, y1: 0, x2: 0.5, y2: 0, plane: transform.Identity()}}
	red := internal.Vec3{1, 0, 0}
	dc.queueOutline(edge, internal.OutlineSpec{Width: 1, Scale: 100, Color: red})
	dc.queueOutline(edge, internal.OutlineSpec{Width: 0, Scale: 100, Color: red})
	require.Len(t, dc.outlines, 1, "zero width outlines are disabled")

	assert.Equal(t, 101, dc.drawOutlines(img))
	assert.Empty(t, dc.outlines)
	for x := 25; x <= 75; x++ {
		assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(x, 50), "x=%d", x)
	}
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(24, 50))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(50, 49))
}

func TestDrawOutlinesModelMatrix(t *testing.T) {
	dc, img := newTestDrawContext(t, 100)
	dc.stack.Mul(transform.Translation(0, 0.5, 0))
	edge := []planarEdge{{x1: 0, y1: 0, x2: 0, y2: 0, plane: transform.Identity()}}
	dc.queueOutline(edge, internal.OutlineSpec{Width: 3, Scale: 1, Color: internal.Vec3{0, 1, 0}})
	assert.Equal(t, 1, dc.drawOutlines(img))
	// y = 0.5 is a quarter of the way down the image, and the point is a 3x3 square
	for _, p := range []image.Point{{49, 24}, {50, 25}, {51, 26}} {
		assert.Equal(t, color.NRGBA{G: 255, A: 255}, img.NRGBAAt(p.X, p.Y), "%v", p)
	}
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(50, 27))
}

func TestDrawOutlinesDepthTest(t *testing.T) {
	dc, img := newTestDrawContext(t, 100)
	for i := range dc.gl.DepthBuffer {
		dc.gl.DepthBuffer[i] = 0.2 // Something closer than z=0 (depth 0.5) everywhere
	}
	edge := []planarEdge{{x1: -0.5, y1: 0, x2: 0.5, y2: 0, plane: transform.Identity()}}
	dc.queueOutline(edge, internal.OutlineSpec{Width: 1, Scale: 10, Color: internal.Vec3{1, 1, 1}})
	assert.Equal(t, 0, dc.drawOutlines(img))

	// Lying exactly on the surface is visible
	for i := range dc.gl.DepthBuffer {
		dc.gl.DepthBuffer[i] = 0.5
	}
	dc.queueOutline(edge, internal.OutlineSpec{Width: 1, Scale: 10, Color: internal.Vec3{1, 1, 1}})
	assert.Equal(t, 11, dc.drawOutlines(img))
}

func TestProjectBehindCamera(t *testing.T) {
	dc, _ := newTestDrawContext(t, 10)
	persp, err := transform.Perspective(math.Pi/2, 1, 0.1, 10)
	require.NoError(t, err)
	dc.viewProj = persp
	_, _, _, ok := dc.project(v3.Vec{Z: 1})
	assert.False(t, ok, "behind the camera")
	_, _, _, ok = dc.project(v3.Vec{Z: -20})
	assert.False(t, ok, "beyond the far plane")
	x, y, depth, ok := dc.project(v3.Vec{Z: -5})
	require.True(t, ok)
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
	assert.Greater(t, depth, 0.0)
	assert.Less(t, depth, 1.0)
}

func TestDrawPointOffScreen(t *testing.T) {
	dc, img := newTestDrawContext(t, 10)
	col := color.NRGBA{R: 255, A: 255}
	// Just left of (or above) the image: nothing lands in the first column (or row)
	assert.Equal(t, 0, dc.drawPoint(img, -0.5, 5, 0.5, 1, col))
	assert.Equal(t, 0, dc.drawPoint(img, 5, -0.5, 0.5, 1, col))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 5))
	assert.Equal(t, 1, dc.drawPoint(img, 0.5, 5, 0.5, 1, col))
	assert.Equal(t, col, img.NRGBAAt(0, 5))
	// Squares partially outside are clipped
	assert.Equal(t, 4, dc.drawPoint(img, 0.5, 0.5, 0.5, 3, col))
	assert.Equal(t, 1, dc.drawPoint(img, -0.5, -0.5, 0.5, 3, col))
}
