package ui

import (
	"math"

	"github.com/fogleman/fauxgl"
)

// hexagonVertices returns the cap outline of a regular prism in its local XY plane, counter-clockwise from +X.
func hexagonVertices(radius float64, segments int) [][2]float64 {
	res := make([][2]float64, segments)
	for i := range res {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		res[i] = [2]float64{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return res
}

// newPrismMesh builds a closed prism centered on the origin, with its caps at z = +-height/2. Each face gets a flat
// normal: caps along Z and sides pointing out through the middle of each edge.
func newPrismMesh(radius, height float64, segments int) *fauxgl.Mesh {
	verts := hexagonVertices(radius, segments)
	top, bottom := height/2, -height/2
	up, down := fauxgl.Vector{Z: 1}, fauxgl.Vector{Z: -1}
	var tris []*fauxgl.Triangle
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		// Caps as triangle fans around the center (counter-clockwise when seen from outside)
		tris = append(tris,
			r3mTriangle(fauxgl.Vector{Z: top}, fauxgl.Vector{X: a[0], Y: a[1], Z: top}, fauxgl.Vector{X: b[0], Y: b[1], Z: top}, up),
			r3mTriangle(fauxgl.Vector{Z: bottom}, fauxgl.Vector{X: b[0], Y: b[1], Z: bottom}, fauxgl.Vector{X: a[0], Y: a[1], Z: bottom}, down))
		// Side quad
		normalAngle := 2 * math.Pi * (float64(i) + 0.5) / float64(segments)
		normal := fauxgl.Vector{X: math.Cos(normalAngle), Y: math.Sin(normalAngle)}
		aTop := fauxgl.Vector{X: a[0], Y: a[1], Z: top}
		aBottom := fauxgl.Vector{X: a[0], Y: a[1], Z: bottom}
		bTop := fauxgl.Vector{X: b[0], Y: b[1], Z: top}
		bBottom := fauxgl.Vector{X: b[0], Y: b[1], Z: bottom}
		tris = append(tris, r3mTriangle(aTop, aBottom, bBottom, normal), r3mTriangle(aTop, bBottom, bTop, normal))
	}
	return fauxgl.NewTriangleMesh(tris)
}

// newCubeMesh builds an axis-aligned cube of the given edge length centered on the origin.
func newCubeMesh(size float64) *fauxgl.Mesh {
	h := size / 2
	var tris []*fauxgl.Triangle
	for _, n := range []fauxgl.Vector{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}} {
		// Two in-face axes (u, v) such that u x v = n
		u := fauxgl.Vector{X: n.Y, Y: n.Z, Z: n.X}
		v := n.Cross(u)
		c := n.MulScalar(h)
		p1 := c.Sub(u.MulScalar(h)).Sub(v.MulScalar(h))
		p2 := c.Add(u.MulScalar(h)).Sub(v.MulScalar(h))
		p3 := c.Add(u.MulScalar(h)).Add(v.MulScalar(h))
		p4 := c.Sub(u.MulScalar(h)).Add(v.MulScalar(h))
		tris = append(tris, r3mTriangle(p1, p2, p3, n), r3mTriangle(p1, p3, p4, n))
	}
	return fauxgl.NewTriangleMesh(tris)
}

func r3mTriangle(p1, p2, p3, normal fauxgl.Vector) *fauxgl.Triangle {
	return &fauxgl.Triangle{
		V1: fauxgl.Vertex{Position: p1, Normal: normal, Color: fauxgl.Gray(1)},
		V2: fauxgl.Vertex{Position: p2, Normal: normal, Color: fauxgl.Gray(1)},
		V3: fauxgl.Vertex{Position: p3, Normal: normal, Color: fauxgl.Gray(1)},
	}
}
