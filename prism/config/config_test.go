package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goprism "github.com/jdginn/go-prism/prism"
)

func loadTestConfig(t *testing.T) *Config {
	config, err := LoadFromFile(filepath.Join("testdata", "experiment.yaml"), LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	require.NoError(t, err)
	return config
}

func TestLoadFromFile(t *testing.T) {
	assert := assert.New(t)
	config := loadTestConfig(t)

	assert.Equal(filepath.Join("testdata", "spectrum.json"), config.Spectrum.FromFile)
	assert.Equal(800, config.Output.Width)
	assert.True(config.Trace.Parallel)

	scene := config.Scene()
	assert.Equal(goprism.P(400, 300), scene.Prism.Center)
	assert.Equal(1.5, scene.Prism.RefractiveIndex)
	assert.InDelta(-20*math.Pi/180, scene.Light.Angle, 1e-12)

	// Inline green wins over the file's green; file samples are merged in, red first
	names := []string{}
	for _, s := range scene.Spectrum {
		names = append(names, s.Name)
	}
	assert.Equal([]string{"red", "orange", "green", "violet"}, names)
	assert.Equal(530.0, scene.Spectrum[2].Wavelength)
	assert.Equal(0.8, scene.Spectrum[2].Intensity)
	assert.Equal(-0.015, scene.Spectrum[1].Offset)
	assert.Equal(goprism.VisibleDispersion.Offset(400), scene.Spectrum[3].Offset)
}

func TestTraceCreate(t *testing.T) {
	assert := assert.New(t)
	params := loadTestConfig(t).Trace.Create()
	assert.Equal(4, params.MaxDepth)
	assert.Equal(2000.0, params.EscapeLength)
	assert.Len(params.Styles, 3)
	assert.Equal(goprism.Style{StrokeWidth: 1, BlurRadius: 5}, params.Styles.At(7))

	zero := 0
	params = Trace{MaxDepth: &zero}.Create()
	assert.Equal(0, params.MaxDepth)
	assert.Equal(goprism.DefaultTraceParams().SpawnOffset, params.SpawnOffset)
	assert.Equal(goprism.DefaultStyles, params.Styles)

	assert.Equal(goprism.DefaultTraceParams(), Trace{}.Create())
}

func TestDefaultSpectrumWhenEmpty(t *testing.T) {
	assert.Equal(t, goprism.DefaultSpectrum(), Spectrum{}.Create())
	assert.Empty(t, (&Spectrum{}).Validate())
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"), LoadOptions{})
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("prism: [unclosed"), 0644))
	_, err = LoadFromFile(bad, LoadOptions{})
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("prism:\n  side_length: -1\n  refractive_index: 3\n"), 0644))
	_, err = LoadFromFile(invalid, LoadOptions{})
	assert.NoError(t, err)
	_, err = LoadFromFile(invalid, LoadOptions{ValidateImmediately: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "side_length: must be positive")

	missingSpectrum := filepath.Join(dir, "missing_spectrum.yaml")
	require.NoError(t, os.WriteFile(missingSpectrum, []byte("spectrum:\n  from_file: nope.json\n"), 0644))
	_, err = LoadFromFile(missingSpectrum, LoadOptions{ResolvePaths: true, MergeFiles: true})
	assert.ErrorContains(t, err, "reading spectrum file")
}

func TestSaveToFile(t *testing.T) {
	config := loadTestConfig(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveToFile(config, path))

	loaded, err := LoadFromFile(path, LoadOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Metadata.Timestamp)
	assert.NotEmpty(t, loaded.Metadata.GitCommit)
	assert.Equal(t, config.Scene(), loaded.Scene())
}

func TestPathResolver(t *testing.T) {
	assert := assert.New(t)
	r := NewPathResolver("testdata")
	assert.Equal(filepath.Join("testdata", "a.json"), r.ResolvePath("a.json"))
	assert.Equal("/abs/a.json", r.ResolvePath("/abs/a.json"))
	assert.True(r.FileExists("spectrum.json"))
	assert.False(r.FileExists("missing.json"))
}
