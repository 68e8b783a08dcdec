package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/Yeicor/hexstack-ui/transform"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
)

// drawContext is the explicit rendering state of one frame: what the fixed-function pipeline keeps globally (current
// matrix stack, projection, light and material) is passed down here instead.
type drawContext struct {
	gl       *fauxgl.Context
	stack    *transform.Stack // Model matrices (object to world)
	viewProj transform.Matrix // Projection * View (world to clip space)
	camPos   v3.Vec           // World space camera position (for specular highlights)
	lightDir v3.Vec           // World space direction towards the light
	light    internal.LightSpec
	material internal.MaterialSpec
	outlines []outlineJob // Deferred until every mesh has filled the depth buffer
}

func newDrawContext(gl *fauxgl.Context, scene *internal.Scene, state *internal.RendererState, view, proj transform.Matrix) *drawContext {
	// The light is specified relative to the camera (eye space), so it follows the camera's rotation
	lightDir := camRotationMatrix(state).Transpose().MulDirection(scene.Light.Direction.V3()).Normalize()
	return &drawContext{
		gl:       gl,
		stack:    transform.NewStack(),
		viewProj: proj.Mul(view),
		camPos:   state.CamPos,
		lightDir: lightDir,
		light:    scene.Light,
		material: scene.Material,
	}
}

// drawMesh draws the mesh with the current model matrix, consuming it (positions and normals are moved to world
// space so that the Phong shader can light them).
func (dc *drawContext) drawMesh(mesh *fauxgl.Mesh, objectColor internal.Vec3) {
	mesh.Transform(dc.stack.Top().Fauxgl())
	shader := fauxgl.NewPhongShader(dc.viewProj.Fauxgl(), toFauxglVector(dc.lightDir), toFauxglVector(dc.camPos))
	shader.ObjectColor = toFauxglColor(objectColor)
	shader.AmbientColor = toFauxglColor(dc.light.Ambient)
	shader.DiffuseColor = toFauxglColor(dc.light.Diffuse)
	shader.SpecularColor = toFauxglColor(internal.Vec3{
		dc.light.Specular[0] * dc.material.Specular[0],
		dc.light.Specular[1] * dc.material.Specular[1],
		dc.light.Specular[2] * dc.material.Specular[2],
	})
	shader.SpecularPower = dc.material.Shininess
	dc.gl.Shader = shader
	dc.gl.DrawMesh(mesh)
}

// project maps a world position to screen pixel coordinates and a [0, 1] depth comparable with the fauxgl depth
// buffer. ok is false for points behind the camera or outside the near/far planes.
func (dc *drawContext) project(p v3.Vec) (x, y, depth float64, ok bool) {
	clip := dc.viewProj.MulPositionW([4]float64{p.X, p.Y, p.Z, 1})
	w := clip[3]
	if w <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip[0]/w, clip[1]/w, clip[2]/w
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	// Same viewport transform as fauxgl.Screen: Y down, depth in [0, 1]
	x = (nx + 1) / 2 * float64(dc.gl.Width)
	y = (1 - ny) / 2 * float64(dc.gl.Height)
	return x, y, (nz + 1) / 2, true
}

// drawPoint fills a width x width square centered on the pixel, skipping pixels hidden by closer geometry.
// Returns the number of pixels written.
func (dc *drawContext) drawPoint(img *image.NRGBA, x, y, depth float64, width int, col color.NRGBA) int {
	if width < 1 {
		return 0
	}
	x0 := int(math.Floor(x)) - (width-1)/2
	y0 := int(math.Floor(y)) - (width-1)/2
	written := 0
	for py := y0; py < y0+width; py++ {
		for px := x0; px < x0+width; px++ {
			if px < 0 || px >= dc.gl.Width || py < 0 || py >= dc.gl.Height {
				continue
			}
			if depth > dc.gl.DepthBuffer[py*dc.gl.Width+px]+outlineDepthBias {
				continue
			}
			img.SetNRGBA(px, py, col)
			written++
		}
	}
	return written
}

func toFauxglVector(v v3.Vec) fauxgl.Vector {
	return fauxgl.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func toFauxglColor(c internal.Vec3) fauxgl.Color {
	return fauxgl.Color{R: c[0], G: c[1], B: c[2], A: 1}
}
