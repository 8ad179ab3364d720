package config

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	MinRefractiveIndex = 1.0
	MaxRefractiveIndex = 2.5
	// Largest per-wavelength index offset accepted in a spectrum
	MaxOffset = 0.1
	// Deepest recursion a config may ask for
	MaxTraceDepth = 64
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateFinite(field string, values ...float64) []ValidationError {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []ValidationError{{
				Field:   field,
				Message: "must be finite",
			}}
		}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by config section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Prism.Validate()...)
	errors = append(errors, c.Light.Validate()...)
	errors = append(errors, c.Spectrum.Validate()...)
	errors = append(errors, c.Trace.Validate()...)
	errors = append(errors, c.Output.Validate()...)
	return errors
}

func (p *Prism) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateFinite("prism.center", p.Center[0], p.Center[1])...)
	errors = append(errors, validateFinite("prism.rotation_deg", p.RotationDeg)...)
	errors = append(errors, validatePositive("prism.side_length", p.SideLength)...)
	errors = append(errors, validateInRange("prism.refractive_index", p.RefractiveIndex, MinRefractiveIndex, MaxRefractiveIndex)...)
	return errors
}

func (l *Light) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateFinite("light.position", l.Position[0], l.Position[1])...)
	errors = append(errors, validateFinite("light.angle_deg", l.AngleDeg)...)
	return errors
}

func (s *Spectrum) Validate() []ValidationError {
	var errors []ValidationError

	names := map[string]bool{}
	for i, sample := range s.Inline {
		prefix := fmt.Sprintf("spectrum.inline.%d", i)
		if sample.Name == "" {
			errors = append(errors, ValidationError{Field: prefix + ".name", Message: "name is required"})
		} else if names[sample.Name] {
			errors = append(errors, ValidationError{Field: prefix + ".name", Message: fmt.Sprintf("duplicate sample '%s'", sample.Name)})
		}
		names[sample.Name] = true

		errors = append(errors, validatePositive(prefix+".wavelength", sample.Wavelength)...)
		for _, c := range sample.Color {
			if c < 0 || c > 1 {
				errors = append(errors, ValidationError{Field: prefix + ".color", Message: "channels must be between 0 and 1"})
				break
			}
		}
		if sample.Offset != nil {
			errors = append(errors, validateInRange(prefix+".offset", *sample.Offset, -MaxOffset, MaxOffset)...)
		}
		if sample.Intensity <= 0 || sample.Intensity > 1 {
			errors = append(errors, ValidationError{Field: prefix + ".intensity", Message: "must be in (0, 1]"})
		}
	}
	if len(errors) > 0 {
		return errors
	}

	if err := s.Create().Validate(); err != nil {
		errors = append(errors, ValidationError{Field: "spectrum", Message: err.Error()})
	}
	return errors
}

func (t *Trace) Validate() []ValidationError {
	var errors []ValidationError

	if t.MaxDepth != nil {
		errors = append(errors, validateInRange("trace.max_depth", float64(*t.MaxDepth), 0, MaxTraceDepth)...)
	}
	errors = append(errors, validateNonNegative("trace.escape_length", t.EscapeLength)...)
	errors = append(errors, validateNonNegative("trace.spawn_offset", t.SpawnOffset)...)
	for i, s := range t.Styles {
		errors = append(errors, validatePositive(fmt.Sprintf("trace.styles.%d.stroke_width", i), s.StrokeWidth)...)
		errors = append(errors, validateNonNegative(fmt.Sprintf("trace.styles.%d.blur_radius", i), s.BlurRadius)...)
	}

	return errors
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("output.width", float64(o.Width))...)
	errors = append(errors, validatePositive("output.height", float64(o.Height))...)
	errors = append(errors, validateNonNegative("output.scale", o.Scale)...)
	for _, c := range o.Background {
		if c < 0 || c > 1 {
			errors = append(errors, ValidationError{Field: "output.background", Message: "channels must be between 0 and 1"})
			break
		}
	}

	return errors
}
