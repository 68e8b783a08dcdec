package internal

import (
	"context"
	"image"

	"github.com/deadsy/sdfx/vec/v2i"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// RendererState is everything the user can change at runtime. It is deep-copied before each render, so it must only
// hold plain values.
type RendererState struct {
	ResInv      int     // How detailed is the image: number screen pixels for each pixel rendered
	Perspective bool    // Perspective (true) or orthographic (false) projection
	CamPos      v3.Vec  // Free-flying camera position (world units)
	CamPitch    float64 // Camera rotation around X (radians)
	CamYaw      float64 // Camera rotation around Y (radians)
	Elapsed     float64 // Seconds of animation time
	Outlines    bool    // Whether to draw the rasterized outlines at all
}

// NewRendererState starts at the camera configured by the scene.
func NewRendererState(s *Scene) *RendererState {
	st := &RendererState{
		ResInv:   1,
		Outlines: true,
	}
	st.ResetCamera(s)
	return st
}

// ResetCamera restores the scene's initial camera and projection (keeps the resolution and animation time).
func (st *RendererState) ResetCamera(s *Scene) {
	st.CamPos = s.InitialCameraPosition()
	st.CamPitch = s.Camera.Pitch
	st.CamYaw = s.Camera.Yaw
	st.Perspective = !s.Projection.Orthographic
}

// RenderArgs is the input of a single frame render.
type RenderArgs struct {
	Ctx   context.Context
	State *RendererState // A private snapshot: may be read without locking
	Scene *Scene
	Size  v2i.Vec // Full render size in pixels (already divided by ResInv)
}

// RenderResult is the output of a single frame render.
type RenderResult struct {
	Image  *image.NRGBA
	Points int // Outline points plotted (for the HUD)
}
