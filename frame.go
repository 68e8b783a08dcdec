package ui

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/Yeicor/hexstack-ui/transform"
	"github.com/fogleman/fauxgl"
)

// errEmptyFrame is returned when asked to render a frame without pixels (minimized window).
var errEmptyFrame = errors.New("empty frame")

// frameRenderer draws a full scene with fauxgl. The fauxgl context is reused while the frame size does not change.
type frameRenderer struct {
	lastContext *fauxgl.Context
}

func (fr *frameRenderer) reset(args *internal.RenderArgs) {
	if fr.lastContext == nil || fr.lastContext.Width != args.Size.X || fr.lastContext.Height != args.Size.Y {
		// Rebuild rendering context only when needed
		fr.lastContext = fauxgl.NewContext(args.Size.X, args.Size.Y)
	} else {
		fr.lastContext.ClearDepthBuffer()
	}
	fr.lastContext.ClearColorBufferWith(toFauxglColor(args.Scene.Background))
	// Side faces of flat prisms are seen from both sides while flying through the stack
	fr.lastContext.Cull = fauxgl.CullNone
}

// Render draws all objects of the scene, then overlays their outlines. The returned image is owned by the caller.
func (fr *frameRenderer) Render(args *internal.RenderArgs) (*internal.RenderResult, error) {
	if args.Size.X <= 0 || args.Size.Y <= 0 {
		return nil, errEmptyFrame
	}
	fr.reset(args)

	// Compute camera matrices (once per render)
	aspectRatio := float64(args.Size.X) / float64(args.Size.Y)
	proj, err := projectionMatrix(args.State, args.Scene, aspectRatio)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	world, err := worldMatrix(args.Scene)
	if err != nil {
		return nil, fmt.Errorf("world rotation: %w", err)
	}
	dc := newDrawContext(fr.lastContext, args.Scene, args.State, camViewMatrix(args.State), proj)
	dc.stack.Load(world)

	for _, h := range args.Scene.Hexagons {
		if err = args.Ctx.Err(); err != nil {
			return nil, err
		}
		dc.drawHexagon(h, args.State.Outlines)
	}
	for _, c := range args.Scene.Cubes {
		if err = args.Ctx.Err(); err != nil {
			return nil, err
		}
		if err = dc.drawCube(c, args.State.Elapsed, args.State.Outlines); err != nil {
			return nil, err
		}
	}

	// Copy output, as the context is reused by the next render
	src := fr.lastContext.Image().(*image.NRGBA)
	img := image.NewNRGBA(src.Bounds())
	copy(img.Pix, src.Pix)
	points := dc.drawOutlines(img)
	return &internal.RenderResult{Image: img, Points: points}, nil
}

func (dc *drawContext) drawHexagon(h internal.HexagonSpec, outlines bool) {
	dc.stack.Push()
	defer func() { _ = dc.stack.Pop() }()
	dc.stack.Mul(transform.Translation(h.Position[0], h.Position[1], h.Position[2]))
	dc.drawMesh(newPrismMesh(h.Radius, h.Height, h.Segments), h.Color)
	if outlines {
		dc.queueOutline(prismOutline(h.Radius, h.Height, h.Segments), h.Outline)
	}
}

// drawCube draws a cube spun around each configured axis in turn, by the angle reached after elapsed seconds.
func (dc *drawContext) drawCube(c internal.CubeSpec, elapsed float64, outlines bool) error {
	dc.stack.Push()
	defer func() { _ = dc.stack.Pop() }()
	dc.stack.Mul(transform.Translation(c.Position[0], c.Position[1], c.Position[2]))
	angle := math.Mod(c.Spin.DegPerSec*elapsed, 360) * math.Pi / 180
	for _, axis := range c.Spin.Axes {
		rot, err := transform.Rotation(angle, axis)
		if err != nil {
			return fmt.Errorf("cube spin: %w", err)
		}
		dc.stack.Mul(rot)
	}
	dc.drawMesh(newCubeMesh(c.Size), c.Color)
	if outlines {
		dc.queueOutline(cubeOutline(c.Size), c.Outline)
	}
	return nil
}
