package ui

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/barkimedes/go-deepcopy"
	"github.com/cenkalti/backoff/v5"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/subchen/go-trylock/v2"
)

// tryRWLocker is the subset of trylock's API used by the renderer.
type tryRWLocker interface {
	Lock()
	Unlock()
	RTryLock(ctx context.Context) bool
	RUnlock()
}

// Renderer opens a window that draws a Scene with a free-flying camera, re-rendering in the background whenever the
// camera, the window or the scene file changes.
type Renderer struct {
	sceneName   string
	sceneOnDisk bool // Whether sceneName was a file (instead of an embedded scene) when the renderer started
	// Static configuration (set by options)
	watchFiles    []string
	windowTitle   string
	camSpeed      float64
	background    *internal.Vec3
	perspective   *bool
	initialResInv int
	outlines      bool
	paused        bool
	// Scene (replaced as a whole when reloaded)
	sceneLock sync.RWMutex
	scene     *internal.Scene
	// Runtime state (modified by user input)
	implStateLock sync.RWMutex
	implState     *internal.RendererState
	screenSize    v2i.Vec
	// Rendering
	ctx                  context.Context
	frame                *frameRenderer
	renderingLock        tryRWLocker
	prevRenderCancelLock sync.Mutex
	prevRenderCancel     context.CancelFunc
	cachedRenderLock     sync.Mutex
	cachedRender         *internal.RenderResult
	cachedRenderDirty    bool // cachedRender was not uploaded to cachedImage yet
	cachedImage          *ebiten.Image
}

// NewRenderer creates a renderer for the scene file (or embedded scene name, see internal/scenes).
func NewRenderer(scene string, opts ...Option) *Renderer {
	r := &Renderer{
		sceneName:     scene,
		windowTitle:   "HexStack",
		camSpeed:      1,
		initialResInv: 1,
		outlines:      true,
		frame:         &frameRenderer{},
		renderingLock: trylock.New(),
		ctx:           context.Background(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loads the scene and blocks until the window is closed, Escape is pressed or the process is interrupted.
func (r *Renderer) Run() error {
	scene, err := r.loadScene()
	if err != nil {
		return err
	}
	r.scene = scene
	r.implState = r.newRendererState(scene)
	_, err = os.Stat(r.sceneName)
	r.sceneOnDisk = err == nil

	ctx, stop := signal.NotifyContext(context.Background(), signals()...)
	defer stop()
	r.ctx = ctx

	if files := r.filesToWatch(); len(files) > 0 {
		w, err := newSceneWatcher(files, func() {
			go r.reloadScene()
		})
		if err != nil {
			log.Println("[HexRenderer] Hot reload disabled:", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	log.Println("[HexRenderer] Rendering scene", scene.Name)
	ebiten.SetWindowTitle(r.windowTitle + " - " + scene.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(rendererEbitenGame{r})
	r.cancelPrevRender()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (r *Renderer) newRendererState(scene *internal.Scene) *internal.RendererState {
	s := internal.NewRendererState(scene)
	s.ResInv = r.initialResInv
	s.Outlines = r.outlines
	if r.perspective != nil {
		s.Perspective = *r.perspective
	}
	return s
}

func (r *Renderer) loadScene() (*internal.Scene, error) {
	return r.prepareScene(internal.LoadScene(r.sceneName))
}

// loadSceneFile is loadScene for hot reloads: only the file on disk counts, so a file that is briefly missing while an
// editor saves it is retried instead of replaced by an embedded scene.
func (r *Renderer) loadSceneFile() (*internal.Scene, error) {
	return r.prepareScene(internal.LoadSceneFile(r.sceneName))
}

func (r *Renderer) prepareScene(scene *internal.Scene, err error) (*internal.Scene, error) {
	if err != nil {
		return nil, err
	}
	if r.background != nil {
		scene.Background = *r.background
	}
	return scene, nil
}

// filesToWatch is the scene file (if it was read from disk) plus any extra files configured.
func (r *Renderer) filesToWatch() []string {
	var res []string
	if r.sceneOnDisk {
		res = append(res, r.sceneName)
	}
	return append(res, r.watchFiles...)
}

// reloadScene replaces the scene with the latest version on disk, keeping the previous one on failure. Editors may
// trigger events while the file is still being written, so a few attempts are made.
func (r *Renderer) reloadScene() {
	start := time.Now()
	load := r.loadScene
	if r.sceneOnDisk {
		load = r.loadSceneFile
	}
	scene, err := backoff.Retry(r.ctx, load,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(5),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Println("[HexRenderer] Scene reload failed, retrying in", next, "-", err)
		}))
	if err != nil {
		log.Println("[HexRenderer] Keeping previous scene:", err)
		return
	}
	r.sceneLock.Lock()
	r.scene = scene
	r.sceneLock.Unlock()
	log.Println("[HexRenderer] Scene reloaded in", time.Since(start))
	r.rerender()
}

func (r *Renderer) currentScene() *internal.Scene {
	r.sceneLock.RLock()
	defer r.sceneLock.RUnlock()
	return r.scene
}

func (r *Renderer) cancelPrevRender() {
	r.prevRenderCancelLock.Lock()
	defer r.prevRenderCancelLock.Unlock()
	if r.prevRenderCancel != nil {
		r.prevRenderCancel()
		r.prevRenderCancel = nil
	}
}

// rerender cancels the render in progress (if any) and starts a new one in the background with a snapshot of the
// current state. Must not be called while holding implStateLock.
func (r *Renderer) rerender() {
	r.prevRenderCancelLock.Lock()
	if r.prevRenderCancel != nil {
		r.prevRenderCancel()
	}
	ctx, cancel := context.WithCancel(r.ctx)
	r.prevRenderCancel = cancel
	r.prevRenderCancelLock.Unlock()

	r.implStateLock.RLock()
	state := deepcopy.MustAnything(r.implState).(*internal.RendererState)
	size := v2i.Vec{X: r.screenSize.X / state.ResInv, Y: r.screenSize.Y / state.ResInv}
	r.implStateLock.RUnlock()
	args := &internal.RenderArgs{Ctx: ctx, State: state, Scene: r.currentScene(), Size: size}

	go func() {
		err := r.renderSync(args)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errEmptyFrame) {
			log.Println("[HexRenderer] Error rendering:", err)
		}
	}()
}

// renderSync renders one frame and publishes it, unless a newer render cancelled it first.
func (r *Renderer) renderSync(args *internal.RenderArgs) error {
	r.renderingLock.Lock()
	defer r.renderingLock.Unlock()
	if err := args.Ctx.Err(); err != nil {
		return err
	}
	res, err := r.frame.Render(args)
	if err != nil {
		return err
	}
	if err = args.Ctx.Err(); err != nil {
		return err // Don't show stale frames
	}
	r.cachedRenderLock.Lock()
	r.cachedRender = res
	r.cachedRenderDirty = true
	r.cachedRenderLock.Unlock()
	return nil
}

// isRendering checks without blocking whether a background render is in progress.
func (r *Renderer) isRendering() bool {
	ctx, cancelFunc := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancelFunc()
	if r.renderingLock.RTryLock(ctx) {
		r.renderingLock.RUnlock()
		return false
	}
	return true
}

// animated reports whether the scene changes over time.
func animated(scene *internal.Scene) bool {
	for _, c := range scene.Cubes {
		if c.Spin.DegPerSec != 0 && len(c.Spin.Axes) > 0 {
			return true
		}
	}
	return false
}
