package config

// Config represents the complete configuration for one prism trace experiment
type Config struct {
	Metadata Metadata `yaml:"metadata"`
	Prism    Prism    `yaml:"prism"`
	Light    Light    `yaml:"light"`
	Spectrum Spectrum `yaml:"spectrum"`
	Trace    Trace    `yaml:"trace"`
	Output   Output   `yaml:"output"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Prism struct {
	Center          [2]float64 `yaml:"center"`
	RotationDeg     float64    `yaml:"rotation_deg"`
	SideLength      float64    `yaml:"side_length"`
	RefractiveIndex float64    `yaml:"refractive_index"`
}

type Light struct {
	Position [2]float64 `yaml:"position"`
	AngleDeg float64    `yaml:"angle_deg"`
}

type Spectrum struct {
	// Samples listed red first. Offsets left at zero are taken from the visible dispersion curve.
	Inline   []Sample `yaml:"inline,omitempty"`
	FromFile string   `yaml:"from_file,omitempty"`
}

type Sample struct {
	Name       string     `yaml:"name" json:"name"`
	Wavelength float64    `yaml:"wavelength" json:"wavelength"` // nanometers
	Color      [3]float64 `yaml:"color" json:"color"`           // RGB in [0, 1]
	Offset     *float64   `yaml:"offset,omitempty" json:"offset,omitempty"`
	Intensity  float64    `yaml:"intensity" json:"intensity"`
}

type Trace struct {
	MaxDepth     *int    `yaml:"max_depth,omitempty"`
	EscapeLength float64 `yaml:"escape_length,omitempty"`
	SpawnOffset  float64 `yaml:"spawn_offset,omitempty"`
	Styles       []Style `yaml:"styles,omitempty"`
	Parallel     bool    `yaml:"parallel"`
}

type Style struct {
	StrokeWidth float64 `yaml:"stroke_width"`
	BlurRadius  float64 `yaml:"blur_radius"`
}

type Output struct {
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Scale         float64    `yaml:"scale,omitempty"`
	Background    [3]float64 `yaml:"background,omitempty"`
	Image         string     `yaml:"image,omitempty"`
	Segments      string     `yaml:"segments,omitempty"`
	DeviationPlot string     `yaml:"deviation_plot,omitempty"`
}
