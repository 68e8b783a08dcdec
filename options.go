package ui

import (
	"log"

	"github.com/Yeicor/hexstack-ui/internal"
)

// Option configures a Renderer (see NewRenderer).
type Option = func(r *Renderer)

// OptWatchFiles reloads the scene when any of these files change. The scene file is always watched when it is read
// from disk.
func OptWatchFiles(files ...string) Option {
	return func(r *Renderer) {
		r.watchFiles = append(r.watchFiles, files...)
	}
}

// OptWindowTitle sets the window title prefix.
func OptWindowTitle(title string) Option {
	return func(r *Renderer) {
		r.windowTitle = title
	}
}

// OptCamSpeed multiplies the camera movement and rotation speeds of the scene.
func OptCamSpeed(multiplier float64) Option {
	return func(r *Renderer) {
		if multiplier <= 0 {
			log.Println("[HexRenderer] Ignoring non-positive camera speed", multiplier)
			return
		}
		r.camSpeed = multiplier
	}
}

// OptBackground overrides the background color of the scene (RGB in [0, 1]).
func OptBackground(red, green, blue float64) Option {
	return func(r *Renderer) {
		r.background = &internal.Vec3{red, green, blue}
	}
}

// OptPerspective overrides the initial projection mode of the scene.
func OptPerspective(perspective bool) Option {
	return func(r *Renderer) {
		r.perspective = &perspective
	}
}

// OptResInv sets the initial resolution divisor: 1 renders every screen pixel, 2 renders a quarter of them...
func OptResInv(resInv int) Option {
	return func(r *Renderer) {
		r.initialResInv = clampResInv(resInv)
	}
}

// OptOutlines enables or disables the rasterized outlines at startup (toggled with O).
func OptOutlines(enabled bool) Option {
	return func(r *Renderer) {
		r.outlines = enabled
	}
}

// OptPaused starts with animations paused (toggled with Space).
func OptPaused(paused bool) Option {
	return func(r *Renderer) {
		r.paused = paused
	}
}

func clampResInv(resInv int) int {
	if resInv < 1 {
		return 1
	}
	if resInv > 64 {
		return 64
	}
	return resInv
}
