package prism

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
)

// View draws a scene and its traced segments into an image
type View struct {
	Width  int
	Height int
	// Pixels per scene unit; zero means 1
	Scale float64
	// Added to scene coordinates before scaling
	Offset     Vector
	Background pt.Color
}

// haloAlpha is the opacity of the wide stroke drawn under a blurred segment
const haloAlpha = 0.2

func (v View) scale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}

func (v View) toScreen(p Point) Point {
	s := v.scale()
	q := p.Add(v.Offset)
	return Point{X: q.X * s, Y: q.Y * s}
}

// Render draws the prism outline, the light source and every segment in emission order
func (v View) Render(scene Scene, segments []Segment) image.Image {
	c := gg.NewContext(v.Width, v.Height)
	c.SetRGB(v.Background.R, v.Background.G, v.Background.B)
	c.Clear()
	c.SetLineCapRound()

	for _, seg := range segments {
		p1, p2 := v.toScreen(seg.P1), v.toScreen(seg.P2)
		width := seg.StrokeWidth * v.scale()
		if seg.BlurRadius > 0 {
			c.SetRGBA(seg.Color.R, seg.Color.G, seg.Color.B, seg.Intensity*haloAlpha)
			c.SetLineWidth(width + 2*seg.BlurRadius*v.scale())
			c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
			c.Stroke()
		}
		c.SetRGBA(seg.Color.R, seg.Color.G, seg.Color.B, seg.Intensity)
		c.SetLineWidth(width)
		c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		c.Stroke()
	}

	vs := scene.Prism.Vertices()
	for i, vertex := range vs {
		p := v.toScreen(vertex)
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
	c.SetRGBA(0.8, 0.9, 1, 0.15)
	c.FillPreserve()
	c.SetRGB(0.8, 0.9, 1)
	c.SetLineWidth(2)
	c.Stroke()

	mix := scene.Spectrum.Mix()
	light := v.toScreen(scene.Light.Position)
	c.SetRGB(mix.R, mix.G, mix.B)
	c.DrawCircle(light.X, light.Y, 6)
	c.Fill()

	return c.Image()
}

// SavePNG renders the scene and writes it to filename
func (v View) SavePNG(filename string, scene Scene, segments []Segment) error {
	if err := gg.SavePNG(filename, v.Render(scene, segments)); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}

func toRGBA(c pt.Color) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// PlotDeviation charts the deviation of each escaped sample against its wavelength
func PlotDeviation(ds []Dispersion, X, Y int, filename string) error {
	p := plot.New()
	p.Title.Text = "Dispersion"
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Deviation (degrees)"

	xys := plotter.XYs{}
	colors := []color.RGBA{}
	for _, d := range ds {
		if !d.Escaped {
			continue
		}
		xys = append(xys, plotter.XY{X: d.Sample.Wavelength, Y: d.Deviation * 180 / math.Pi})
		colors = append(colors, toRGBA(d.Sample.Color))
	}
	if len(xys) == 0 {
		return fmt.Errorf("no sample escaped the prism")
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	points, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	points.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
	}
	p.Add(line, points)

	if err := p.Save(font.Length(X), font.Length(Y), filename); err != nil {
		return fmt.Errorf("saving deviation plot: %w", err)
	}
	return nil
}
