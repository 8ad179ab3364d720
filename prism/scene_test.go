package prism

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testScene aims the light at the middle of the left face at 50 degrees of incidence,
// close enough to minimum deviation that every sample leaves through the right face
func testScene() Scene {
	prism := testPrism()
	left := prism.Edges()[2]
	mid := left.P1.Add(left.P2.Sub(left.P1).Scale(0.5))
	angle := -20 * math.Pi / 180
	return Scene{
		Prism:    prism,
		Light:    LightSource{Position: mid.Add(Direction(angle).Scale(-250)), Angle: angle},
		Spectrum: DefaultSpectrum(),
	}
}

func TestSceneTraceDeterminism(t *testing.T) {
	scene := testScene()
	params := DefaultTraceParams()
	first := scene.Trace(params)
	require.NotEmpty(t, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scene.Trace(params))
	}
}

func TestSceneTraceOrder(t *testing.T) {
	scene := testScene()
	paths := scene.TracePaths(DefaultTraceParams())
	require.Len(t, paths, len(scene.Spectrum))

	segments := scene.Trace(DefaultTraceParams())
	i := 0
	for j, path := range paths {
		assert.Equal(t, scene.Spectrum[j], path.Sample)
		for _, seg := range path.Segments {
			assert.Equal(t, seg, segments[i])
			assert.Equal(t, path.Sample.Wavelength, seg.Wavelength)
			i++
		}
	}
	assert.Equal(t, len(segments), i)
}

func TestSceneTraceParallel(t *testing.T) {
	scene := testScene()
	params := DefaultTraceParams()
	parallel, err := scene.TraceParallel(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, scene.Trace(params), parallel)
}

func TestSceneTraceParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testScene().TraceParallel(ctx, DefaultTraceParams())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSceneSharedOriginBeforePrism(t *testing.T) {
	paths := testScene().TracePaths(DefaultTraceParams())
	first := paths[0].Segments[0]
	for _, p := range paths[1:] {
		assert.Equal(t, first.P1, p.Segments[0].P1)
		assert.InDelta(t, first.P2.X, p.Segments[0].P2.X, 1e-9)
		assert.InDelta(t, first.P2.Y, p.Segments[0].P2.Y, 1e-9)
	}
}

func TestSceneAnalyze(t *testing.T) {
	assert := assert.New(t)
	ds := testScene().Analyze(DefaultTraceParams())
	require.Len(t, ds, 7)

	prev := 0.0
	for i, d := range ds {
		assert.True(d.Escaped, d.Sample.Name)
		assert.Equal(2, d.Bounces, d.Sample.Name)
		dev := math.Abs(d.Deviation)
		// Near minimum deviation, about 37 degrees for n = 1.5
		assert.InDelta(37, dev*180/math.Pi, 5, d.Sample.Name)
		if i > 0 {
			assert.Greater(dev, prev, "%s should deviate more than %s", d.Sample.Name, ds[i-1].Sample.Name)
		}
		prev = dev
	}

	spread := Spread(ds)
	assert.InDelta(math.Abs(ds[6].Deviation-ds[0].Deviation), spread, 1e-12)
	assert.Greater(spread, 0.0)
}

func TestSpreadIgnoresTrappedSamples(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.0, Spread(nil))
	assert.Equal(0.0, Spread([]Dispersion{{Deviation: 1}}))
	assert.InDelta(0.5, Spread([]Dispersion{
		{Deviation: 0.2, Escaped: true},
		{Deviation: 3, Escaped: false},
		{Deviation: 0.7, Escaped: true},
	}), 1e-12)
}
