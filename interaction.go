package ui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var defaultFont font.Face = basicfont.Face7x13

// onUpdateInputs handles inputs
func (r *Renderer) onUpdateInputs() {
	scene := r.currentScene()
	changed := false
	r.implStateLock.Lock()
	s := r.implState
	// Movement along the world axes
	speed := scene.Camera.Speed * r.camSpeed
	for _, m := range []struct {
		key   ebiten.Key
		delta [3]float64
	}{
		{ebiten.KeyW, [3]float64{0, 0, -speed}},
		{ebiten.KeyS, [3]float64{0, 0, speed}},
		{ebiten.KeyA, [3]float64{-speed, 0, 0}},
		{ebiten.KeyD, [3]float64{speed, 0, 0}},
		{ebiten.KeyE, [3]float64{0, speed, 0}},
		{ebiten.KeyQ, [3]float64{0, -speed, 0}},
	} {
		if ebiten.IsKeyPressed(m.key) {
			s.CamPos.X += m.delta[0]
			s.CamPos.Y += m.delta[1]
			s.CamPos.Z += m.delta[2]
			changed = true
		}
	}
	// Rotation
	rotSpeed := scene.Camera.RotationSpeed * r.camSpeed
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.CamPitch = clampPitch(s.CamPitch - rotSpeed)
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.CamPitch = clampPitch(s.CamPitch + rotSpeed)
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.CamYaw = wrapAngle(s.CamYaw + rotSpeed)
		changed = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.CamYaw = wrapAngle(s.CamYaw - rotSpeed)
		changed = true
	}
	// Toggles
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Perspective = !s.Perspective
		if s.Perspective {
			log.Println("[HexRenderer] Switched to perspective projection")
		} else {
			log.Println("[HexRenderer] Switched to orthographic projection")
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.Outlines = !s.Outlines
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.ResetCamera(scene)
		changed = true
	}
	// Resolution
	if inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.ResInv = clampResInv(s.ResInv / 2)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.ResInv = clampResInv(s.ResInv * 2)
		changed = true
	}
	r.implStateLock.Unlock()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		r.paused = !r.paused
	}
	if changed {
		r.rerender()
	}
}

// drawUI draws the HUD: rendering indicator, state and controls
func (r *Renderer) drawUI(screen *ebiten.Image) {
	// Notify when rendering
	if r.isRendering() {
		drawDefaultTextWithShadow(screen, "Rendering...", 5, 5+12, color.RGBA{R: 255, A: 255})
	}

	r.cachedRenderLock.Lock()
	points := 0
	if r.cachedRender != nil {
		points = r.cachedRender.Points
	}
	r.cachedRenderLock.Unlock()

	// Draw current state and controls
	r.implStateLock.RLock()
	projection := "orthographic"
	if r.implState.Perspective {
		projection = "perspective"
	}
	msg := fmt.Sprintf("HexStack Renderer\n=================\n"+
		"TPS: %0.2f/%d\nResolution: %.2f [+/-]\nProjection: %s [P]\nOutline points: %d [O]\nPaused: %t [Space]\n"+
		"Camera: (%.2f, %.2f, %.2f) [R resets]\nMove [WASD/QE]\nRotate [Arrows]\nQuit [Esc]",
		ebiten.ActualTPS(), ebiten.TPS(), 1/float64(r.implState.ResInv), projection, points, r.paused,
		r.implState.CamPos.X, r.implState.CamPos.Y, r.implState.CamPos.Z)
	screenHeight := r.screenSize.Y
	r.implStateLock.RUnlock()
	boundString := text.BoundString(defaultFont, msg)
	drawDefaultTextWithShadow(screen, msg, 5, screenHeight-boundString.Size().Y+10, color.RGBA{G: 255, A: 255})
}

func drawDefaultTextWithShadow(screen *ebiten.Image, msg string, x, y int, c color.Color) {
	text.Draw(screen, msg, defaultFont, x+1, y+1, color.RGBA{A: 255})
	text.Draw(screen, msg, defaultFont, x, y, c)
}
