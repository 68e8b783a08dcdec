package ui

import (
	"math"
	"testing"

	"github.com/Yeicor/hexstack-ui/internal"
	"github.com/Yeicor/hexstack-ui/transform"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadScene(t testing.TB, name string) *internal.Scene {
	t.Helper()
	scene, err := internal.LoadScene(name)
	require.NoError(t, err)
	return scene
}

func TestCamViewMatrix(t *testing.T) {
	s := &internal.RendererState{CamPos: v3.Vec{X: 1, Y: 2, Z: 8}}
	view := camViewMatrix(s)
	// The camera sits at the origin of view space, looking down -Z
	assert.InDelta(t, 0, view.MulPosition(s.CamPos).Length(), 1e-12)
	ahead := view.MulPosition(v3.Vec{X: 1, Y: 2, Z: 3})
	assert.InDelta(t, -5, ahead.Z, 1e-12)

	// Turning right (positive yaw) brings points on the right towards the center of the view
	s.CamYaw = math.Pi / 2
	right := camViewMatrix(s).MulPosition(v3.Vec{X: 6, Y: 2, Z: 8})
	assert.InDelta(t, 0, right.X, 1e-12)
	assert.InDelta(t, -5, right.Z, 1e-12)
}

func TestProjectionMatrixModes(t *testing.T) {
	scene := mustLoadScene(t, "hexagons")
	s := internal.NewRendererState(scene)
	require.True(t, s.Perspective)

	persp, err := projectionMatrix(s, scene, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, persp[3][2])
	assert.Equal(t, 0.0, persp[3][3])

	s.Perspective = false
	ortho, err := projectionMatrix(s, scene, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ortho[3][3])
	assert.InDelta(t, 1/(scene.Projection.OrthoZoom*2), ortho[0][0], 1e-12)
	assert.InDelta(t, 1/scene.Projection.OrthoZoom, ortho[1][1], 1e-12)
}

func TestProjectionMatrixErrors(t *testing.T) {
	scene := mustLoadScene(t, "hexagons")
	s := internal.NewRendererState(scene)
	_, err := projectionMatrix(s, scene, 0)
	assert.ErrorIs(t, err, transform.ErrInvalidArgument)
	s.Perspective = false
	scene.Projection.OrthoZoom = 0
	_, err = projectionMatrix(s, scene, 1)
	assert.ErrorIs(t, err, transform.ErrDegenerateProjection)
}

func TestWorldMatrix(t *testing.T) {
	scene := mustLoadScene(t, "hexagons")
	world, err := worldMatrix(scene)
	require.NoError(t, err)
	p := world.MulPosition(v3.Vec{X: 1})
	assert.InDelta(t, math.Cos(math.Pi/6), p.X, 1e-12)
	assert.InDelta(t, math.Sin(math.Pi/6), p.Y, 1e-12)
}

func TestCameraLimits(t *testing.T) {
	assert.Less(t, clampPitch(10), math.Pi/2)
	assert.Greater(t, clampPitch(-10), -math.Pi/2)
	assert.Equal(t, 0.5, clampPitch(0.5))
	assert.InDelta(t, -math.Pi+0.1, wrapAngle(math.Pi+0.1), 1e-12)
	assert.InDelta(t, math.Pi-0.1, wrapAngle(-math.Pi-0.1), 1e-12)
	assert.Equal(t, 1.0, wrapAngle(1))
}

func TestAnimated(t *testing.T) {
	assert.False(t, animated(mustLoadScene(t, "hexagons")))
	cube := mustLoadScene(t, "cube")
	assert.True(t, animated(cube))
	cube.Cubes[0].Spin.Axes = nil
	assert.False(t, animated(cube))
}

func TestOptions(t *testing.T) {
	r := NewRenderer("cube", OptResInv(1000), OptCamSpeed(-1), OptPerspective(false), OptBackground(1, 0, 0),
		OptOutlines(false), OptWatchFiles("a.yaml", "b.yaml"))
	assert.Equal(t, 64, r.initialResInv)
	assert.Equal(t, 1.0, r.camSpeed)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, r.filesToWatch()) // "cube" is embedded, not on disk

	scene, err := r.loadScene()
	require.NoError(t, err)
	assert.Equal(t, internal.Vec3{1, 0, 0}, scene.Background)
	s := r.newRendererState(scene)
	assert.False(t, s.Perspective)
	assert.False(t, s.Outlines)
	assert.Equal(t, 64, s.ResInv)
}
