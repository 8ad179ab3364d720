package prism

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SegmentJSON struct {
	P1          PointJSON `json:"p1"`
	P2          PointJSON `json:"p2"`
	Color       string    `json:"color"`
	Wavelength  float64   `json:"wavelength"`
	StrokeWidth float64   `json:"strokeWidth"`
	BlurRadius  float64   `json:"blurRadius"`
	Intensity   float64   `json:"intensity"`
	Depth       int       `json:"depth"`
	Kind        string    `json:"kind"`
}

type TraceJSON struct {
	Prism    [3]PointJSON  `json:"prism"`
	Light    PointJSON     `json:"light"`
	Segments []SegmentJSON `json:"segments"`
}

// Conversion functions
func PointToJSON(p Point) PointJSON {
	return PointJSON{X: p.X, Y: p.Y}
}

func channel(x float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(x, 0), 1) * 255))
}

// ColorToHex formats c as #rrggbb, clamping each channel to [0, 1]
func ColorToHex(c pt.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func SegmentToJSON(s Segment) SegmentJSON {
	return SegmentJSON{
		P1:          PointToJSON(s.P1),
		P2:          PointToJSON(s.P2),
		Color:       ColorToHex(s.Color),
		Wavelength:  s.Wavelength,
		StrokeWidth: s.StrokeWidth,
		BlurRadius:  s.BlurRadius,
		Intensity:   s.Intensity,
		Depth:       s.Depth,
		Kind:        s.Kind.String(),
	}
}

// SaveSegmentsToJSON writes the prism outline, light position and segments of one trace pass
func SaveSegmentsToJSON(filename string, scene Scene, segments []Segment) error {
	out := TraceJSON{
		Light:    PointToJSON(scene.Light.Position),
		Segments: make([]SegmentJSON, len(segments)),
	}
	for i, v := range scene.Prism.Vertices() {
		out.Prism[i] = PointToJSON(v)
	}
	for i, s := range segments {
		out.Segments[i] = SegmentToJSON(s)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling segments: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing segments file: %w", err)
	}
	return nil
}
