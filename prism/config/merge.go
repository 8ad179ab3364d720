package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// MergeSamples merges samples from a JSON file with inline samples. Inline samples win on name.
// The merged list is ordered by decreasing wavelength, red first.
func (s *Spectrum) MergeSamples() error {
	if s.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(s.FromFile)
	if err != nil {
		return fmt.Errorf("reading spectrum file: %w", err)
	}

	var fileSamples []Sample
	if err := json.Unmarshal(data, &fileSamples); err != nil {
		return fmt.Errorf("parsing spectrum file: %w", err)
	}

	for _, sample := range fileSamples {
		if !s.HasSample(sample.Name) {
			s.Inline = append(s.Inline, sample)
		}
	}

	sort.SliceStable(s.Inline, func(i, j int) bool {
		return s.Inline[i].Wavelength > s.Inline[j].Wavelength
	})

	return nil
}

// HasSample reports whether an inline sample has the given name
func (s *Spectrum) HasSample(name string) bool {
	for _, sample := range s.Inline {
		if sample.Name == name {
			return true
		}
	}
	return false
}

// LoadAndMerge loads all external files and merges their contents
func (c *Config) LoadAndMerge() error {
	if err := c.Spectrum.MergeSamples(); err != nil {
		return fmt.Errorf("merging spectrum: %w", err)
	}
	return nil
}
