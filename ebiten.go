package ui

import (
	"log"

	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// rendererEbitenGame hides the private ebiten implementation while behaving like a *Renderer internally
type rendererEbitenGame struct {
	*Renderer
}

func (r rendererEbitenGame) Update() error {
	select {
	case <-r.ctx.Done():
		log.Println("[HexRenderer] Interrupted, closing window")
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	r.onUpdateInputs()
	r.onUpdateAnimation()
	return nil
}

func (r rendererEbitenGame) Draw(screen *ebiten.Image) {
	r.drawFrame(screen)
	r.drawUI(screen)
}

func (r rendererEbitenGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	newScreenSize := v2i.Vec{X: outsideWidth, Y: outsideHeight}
	r.implStateLock.Lock()
	changed := r.screenSize != newScreenSize
	r.screenSize = newScreenSize
	r.implStateLock.Unlock()
	if changed {
		r.rerender()
	}
	return outsideWidth, outsideHeight // Use all available pixels, no re-scaling (unless ResInv is modified)
}

// onUpdateAnimation advances the animation clock by one tick. New frames are only requested when the previous one
// is done, so that slow renders are not cancelled forever.
func (r *Renderer) onUpdateAnimation() {
	if r.paused || !animated(r.currentScene()) {
		return
	}
	r.implStateLock.Lock()
	r.implState.Elapsed += 1 / float64(ebiten.TPS())
	r.implStateLock.Unlock()
	if !r.isRendering() {
		r.rerender()
	}
}

// drawFrame uploads the latest render (if new) and stretches it over the whole screen.
func (r *Renderer) drawFrame(screen *ebiten.Image) {
	r.cachedRenderLock.Lock()
	if r.cachedRender != nil && r.cachedRenderDirty {
		img := r.cachedRender.Image
		if r.cachedImage == nil || r.cachedImage.Bounds().Size() != img.Bounds().Size() {
			if r.cachedImage != nil {
				r.cachedImage.Deallocate()
			}
			r.cachedImage = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
		}
		r.cachedImage.WritePixels(img.Pix)
		r.cachedRenderDirty = false
	}
	cachedImage := r.cachedImage
	r.cachedRenderLock.Unlock()
	if cachedImage == nil {
		return
	}
	drawOpts := &ebiten.DrawImageOptions{}
	screenSize, imgSize := screen.Bounds().Size(), cachedImage.Bounds().Size()
	drawOpts.GeoM.Scale(float64(screenSize.X)/float64(imgSize.X), float64(screenSize.Y)/float64(imgSize.Y))
	screen.DrawImage(cachedImage, drawOpts)
}
