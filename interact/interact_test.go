package interact

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goprism "github.com/jdginn/go-prism/prism"
)

func testPaths() []goprism.Path {
	scene := goprism.Scene{
		Prism:    goprism.Prism{Center: goprism.P(400, 300), SideLength: 200, RefractiveIndex: 1.5},
		Light:    goprism.LightSource{Position: goprism.P(100, 300)},
		Spectrum: goprism.DefaultSpectrum(),
	}
	return scene.TracePaths(goprism.DefaultTraceParams())
}

func TestItems(t *testing.T) {
	paths := testPaths()
	items := Items(paths)

	n := 0
	for _, p := range paths {
		n += len(p.Segments)
	}
	require.Len(t, items, n)

	first := items[0].(item)
	assert.Equal(t, "red", first.sample.Name)
	assert.Equal(t, 0, first.segment.Depth)
	assert.Contains(t, first.Title(), "red 700 nm, depth 0, refracted")
	assert.Contains(t, first.Description(), "(100.0, 300.0)")
	assert.Equal(t, "red refracted", first.FilterValue())
}

func TestModelQuit(t *testing.T) {
	m := model{list: list.New(Items(testPaths()), list.NewDefaultDelegate(), 0, 0)}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.NotEmpty(t, next.View())

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
