package interact

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goprism "github.com/jdginn/go-prism/prism"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	sample  goprism.Sample
	segment goprism.Segment
}

func (i item) Title() string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(goprism.ColorToHex(i.sample.Color))).Render("■")
	return fmt.Sprintf("%s %s %.0f nm, depth %d, %s", swatch, i.sample.Name, i.sample.Wavelength, i.segment.Depth, i.segment.Kind)
}

func (i item) Description() string {
	s := i.segment
	return fmt.Sprintf("(%.1f, %.1f) -> (%.1f, %.1f), heading %.2f°",
		s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.Direction().Angle()*180/math.Pi)
}

func (i item) FilterValue() string {
	return fmt.Sprintf("%s %s", i.sample.Name, i.segment.Kind)
}

type model struct {
	list list.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Items flattens paths into one list entry per segment, in emission order
func Items(paths []goprism.Path) []list.Item {
	items := []list.Item{}
	for _, p := range paths {
		for _, s := range p.Segments {
			items = append(items, item{sample: p.Sample, segment: s})
		}
	}
	return items
}

// Browse shows every traced segment in a filterable terminal list
func Browse(paths []goprism.Path) error {
	m := model{list: list.New(Items(paths), list.NewDefaultDelegate(), 0, 0)}
	m.list.Title = "Traced segments"

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
