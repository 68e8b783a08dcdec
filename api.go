package ui

import (
	"math"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/Yeicor/hexstack-ui/transform"
)

// Scene is the declarative description of what gets drawn (see internal/scenes for examples).
type Scene = internal.Scene

func camRotationMatrix(s *internal.RendererState) transform.Matrix {
	return transform.Compose(transform.MustRotation(s.CamPitch, transform.X), transform.MustRotation(s.CamYaw, transform.Y))
}

// camViewMatrix moves the world in front of the free-flying camera: rotate(pitch, yaw) * translate(-position).
func camViewMatrix(s *internal.RendererState) transform.Matrix {
	return camRotationMatrix(s).Mul(transform.Translation(-s.CamPos.X, -s.CamPos.Y, -s.CamPos.Z))
}

// projectionMatrix builds the perspective or orthographic projection for the current mode. The orthographic volume
// keeps the aspect ratio of the screen, and the same near/far planes as the perspective one.
func projectionMatrix(s *internal.RendererState, scene *internal.Scene, aspect float64) (transform.Matrix, error) {
	p := scene.Projection
	if s.Perspective {
		return transform.Perspective(p.FovDeg*math.Pi/180, aspect, p.Near, p.Far)
	}
	zoom := p.OrthoZoom
	return transform.Orthographic(-zoom*aspect, zoom*aspect, -zoom, zoom, p.Near, p.Far)
}

// worldMatrix is the rotation applied to the whole scene, between the camera and each object.
func worldMatrix(scene *internal.Scene) (transform.Matrix, error) {
	return transform.Rotation(scene.WorldRotation.AngleDeg*math.Pi/180, scene.WorldRotation.Axis)
}

func clampPitch(pitch float64) float64 {
	return math.Max(-(math.Pi/2 - 1e-5), math.Min(math.Pi/2-1e-5, pitch))
}

func wrapAngle(a float64) float64 {
	if a < -math.Pi {
		return a + 2*math.Pi
	} else if a > math.Pi {
		return a - 2*math.Pi
	}
	return a
}
