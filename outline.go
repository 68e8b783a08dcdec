package ui

import (
	"image"
	"math"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/Yeicor/hexstack-ui/raster"
	"github.com/Yeicor/hexstack-ui/transform"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// outlineDepthBias lets outline points lying on a surface win the depth test against that same surface.
const outlineDepthBias = 1e-4

// planarEdge is a 2D segment in the XY plane of the given local frame.
type planarEdge struct {
	x1, y1, x2, y2 float64
	plane          transform.Matrix
}

// outlineJob is a set of edges to overlay once the depth buffer is complete.
type outlineJob struct {
	model transform.Matrix
	edges []planarEdge
	spec  internal.OutlineSpec
}

// prismOutline returns the edges of both caps of a prism (see newPrismMesh).
func prismOutline(radius, height float64, segments int) []planarEdge {
	verts := hexagonVertices(radius, segments)
	var res []planarEdge
	for _, z := range []float64{height / 2, -height / 2} {
		plane := transform.Translation(0, 0, z)
		for i := range verts {
			a, b := verts[i], verts[(i+1)%len(verts)]
			res = append(res, planarEdge{x1: a[0], y1: a[1], x2: b[0], y2: b[1], plane: plane})
		}
	}
	return res
}

// cubeOutline returns the 12 edges of a cube: 4 around each Z face, plus 4 along Z drawn in a frame rotated so that
// its X axis follows world Z.
func cubeOutline(size float64) []planarEdge {
	h := size / 2
	var res []planarEdge
	corners := [][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	for _, z := range []float64{h, -h} {
		plane := transform.Translation(0, 0, z)
		for i := range corners {
			a, b := corners[i], corners[(i+1)%len(corners)]
			res = append(res, planarEdge{x1: a[0], y1: a[1], x2: b[0], y2: b[1], plane: plane})
		}
	}
	for _, c := range corners {
		plane := transform.Compose(transform.Translation(c[0], c[1], 0), transform.MustRotation(-math.Pi/2, transform.Y))
		res = append(res, planarEdge{x1: -h, y1: 0, x2: h, y2: 0, plane: plane})
	}
	return res
}

// queueOutline records the edges with the current model matrix. Nothing is queued for zero width outlines.
func (dc *drawContext) queueOutline(edges []planarEdge, spec internal.OutlineSpec) {
	if spec.Width <= 0 {
		return
	}
	dc.outlines = append(dc.outlines, outlineJob{model: dc.stack.Top(), edges: edges, spec: spec})
}

// drawOutlines rasterizes every queued edge at its virtual resolution and plots the resulting points. Returns the
// number of points that were visible (at least one pixel written).
func (dc *drawContext) drawOutlines(img *image.NRGBA) int {
	visible := 0
	for _, job := range dc.outlines {
		width := int(math.Round(job.spec.Width))
		col := job.spec.Color.NRGBA()
		for _, e := range job.edges {
			toWorld := job.model.Mul(e.plane)
			for x, y := range raster.LineScaled(e.x1, e.y1, e.x2, e.y2, job.spec.Scale) {
				sx, sy, depth, ok := dc.project(toWorld.MulPosition(v3.Vec{X: x, Y: y}))
				if !ok {
					continue
				}
				if dc.drawPoint(img, sx, sy, depth, width, col) > 0 {
					visible++
				}
			}
		}
	}
	dc.outlines = dc.outlines[:0]
	return visible
}
