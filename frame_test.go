package ui

import (
	"context"
	"image/color"
	"testing"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderArgs(t testing.TB, scene string, size v2i.Vec) *internal.RenderArgs {
	s := mustLoadScene(t, scene)
	return &internal.RenderArgs{Ctx: context.Background(), State: internal.NewRendererState(s), Scene: s, Size: size}
}

func TestFrameRendererHexagons(t *testing.T) {
	args := newTestRenderArgs(t, "hexagons", v2i.Vec{X: 80, Y: 60})
	fr := &frameRenderer{}
	res, err := fr.Render(args)
	require.NoError(t, err)
	assert.Equal(t, 80, res.Image.Bounds().Dx())
	assert.Equal(t, 60, res.Image.Bounds().Dy())
	assert.Greater(t, res.Points, 0)
	// The front prism covers the center of the view
	background := args.Scene.Background.NRGBA()
	assert.NotEqual(t, background, res.Image.NRGBAAt(40, 30))

	// Outlines can be disabled at runtime
	args.State.Outlines = false
	res, err = fr.Render(args)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Points)
}

func TestFrameRendererProjectionToggle(t *testing.T) {
	args := newTestRenderArgs(t, "hexagons", v2i.Vec{X: 40, Y: 30})
	fr := &frameRenderer{}
	args.State.Perspective = false
	res, err := fr.Render(args)
	require.NoError(t, err)
	assert.NotEqual(t, args.Scene.Background.NRGBA(), res.Image.NRGBAAt(20, 15))
}

func TestFrameRendererOwnsImages(t *testing.T) {
	args := newTestRenderArgs(t, "hexagons", v2i.Vec{X: 40, Y: 30})
	fr := &frameRenderer{}
	first, err := fr.Render(args)
	require.NoError(t, err)
	firstCenter := first.Image.NRGBAAt(20, 15)
	args.Scene.Background = internal.Vec3{0, 0, 1}
	args.State.CamPos.Z = 1000 // Everything behind the far plane
	second, err := fr.Render(args)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, second.Image.NRGBAAt(20, 15))
	assert.Equal(t, firstCenter, first.Image.NRGBAAt(20, 15), "previous results are not overwritten")

	// Resizing rebuilds the context
	args.Size = v2i.Vec{X: 10, Y: 10}
	third, err := fr.Render(args)
	require.NoError(t, err)
	assert.Equal(t, 10, third.Image.Bounds().Dx())
}

func TestFrameRendererCubeSpins(t *testing.T) {
	args := newTestRenderArgs(t, "cube", v2i.Vec{X: 64, Y: 64})
	fr := &frameRenderer{}
	still, err := fr.Render(args)
	require.NoError(t, err)
	args.State.Elapsed = 0.3
	spun, err := fr.Render(args)
	require.NoError(t, err)
	assert.NotEqual(t, still.Image.Pix, spun.Image.Pix)
}

func TestFrameRendererErrors(t *testing.T) {
	fr := &frameRenderer{}
	_, err := fr.Render(newTestRenderArgs(t, "hexagons", v2i.Vec{X: 0, Y: 10}))
	assert.ErrorIs(t, err, errEmptyFrame)

	args := newTestRenderArgs(t, "hexagons", v2i.Vec{X: 10, Y: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	args.Ctx = ctx
	_, err = fr.Render(args)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkFrameRenderer_Render(b *testing.B) {
	args := newTestRenderArgs(b, "hexagons", v2i.Vec{X: 1920 / 4, Y: 1080 / 4})
	fr := &frameRenderer{}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := fr.Render(args); err != nil {
			b.Fatal(err)
		}
	}
}
