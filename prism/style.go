package prism

// Style is how a segment at a given recursion depth is stroked
type Style struct {
	StrokeWidth float64
	BlurRadius  float64
}

// StyleTable is indexed by recursion depth. Depths past the end use the last entry.
type StyleTable []Style

// DefaultStyles draws the primary ray thick and sharp and each bounce thinner and softer
var DefaultStyles = StyleTable{
	{StrokeWidth: 3, BlurRadius: 0},
	{StrokeWidth: 2, BlurRadius: 2},
	{StrokeWidth: 1.5, BlurRadius: 4},
	{StrokeWidth: 1, BlurRadius: 6},
}

func (t StyleTable) At(depth int) Style {
	if len(t) == 0 {
		return Style{StrokeWidth: 1}
	}
	if depth < 0 {
		depth = 0
	}
	if depth >= len(t) {
		depth = len(t) - 1
	}
	return t[depth]
}
