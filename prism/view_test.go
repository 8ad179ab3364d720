package prism

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewToScreen(t *testing.T) {
	assert := assert.New(t)
	view := View{Width: 100, Height: 100}
	assert.Equal(P(3, 4), view.toScreen(P(3, 4)))

	view.Scale = 0.5
	view.Offset = V(10, -2)
	assert.Equal(P(6.5, 1), view.toScreen(P(3, 4)))
}

func TestViewRender(t *testing.T) {
	assert := assert.New(t)
	scene := testScene()
	view := View{Width: 800, Height: 600, Background: pt.Color{}}
	img := view.Render(scene, scene.Trace(DefaultTraceParams()))

	assert.Equal(800, img.Bounds().Dx())
	assert.Equal(600, img.Bounds().Dy())

	// Far corner is untouched background
	r, g, b, _ := img.At(799, 0).RGBA()
	assert.Equal([3]uint32{0, 0, 0}, [3]uint32{r, g, b})

	// Light source marker is drawn with the mixed spectrum
	light := scene.Light.Position
	r, g, b, _ = img.At(int(light.X), int(light.Y)).RGBA()
	assert.Greater(r, uint32(0))
	assert.Greater(g, uint32(0))
	assert.Greater(b, uint32(0))
}

func TestViewSavePNG(t *testing.T) {
	scene := testScene()
	path := filepath.Join(t.TempDir(), "trace.png")
	require.NoError(t, View{Width: 64, Height: 48, Scale: 0.08}.SavePNG(path, scene, scene.Trace(DefaultTraceParams())))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotDeviation(t *testing.T) {
	ds := testScene().Analyze(DefaultTraceParams())
	path := filepath.Join(t.TempDir(), "deviation.png")
	require.NoError(t, PlotDeviation(ds, 400, 300, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.Error(t, PlotDeviation([]Dispersion{{Escaped: false}}, 400, 300, path))
}

func TestColorToHex(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("#ff0000", ColorToHex(pt.Color{R: 1}))
	assert.Equal("#00ff80", ColorToHex(pt.Color{G: 2, B: 0.5}))
	assert.Equal("#000000", ColorToHex(pt.Color{R: -1}))
}

func TestSaveSegmentsToJSON(t *testing.T) {
	scene := testScene()
	segments := scene.Trace(DefaultTraceParams())
	path := filepath.Join(t.TempDir(), "segments.json")
	require.NoError(t, SaveSegmentsToJSON(path, scene, segments))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got TraceJSON
	require.NoError(t, json.Unmarshal(data, &got))

	require.Len(t, got.Segments, len(segments))
	assert.Equal(t, "#ff0000", got.Segments[0].Color)
	assert.Equal(t, "refracted", got.Segments[0].Kind)
	assert.Equal(t, "escaped", got.Segments[len(segments)-1].Kind)
	assert.Equal(t, PointToJSON(scene.Light.Position), got.Light)
	assert.Equal(t, PointToJSON(scene.Prism.Vertices()[0]), got.Prism[0])
}
