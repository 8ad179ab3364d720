package experiment

import (
	"fmt"
	"math/rand"
)

var (
	adjectives = []string{
		"amber", "azure", "bright", "brilliant", "clear", "crimson", "crystal",
		"dim", "faint", "gilded", "glassy", "golden", "hazy", "indigo", "iridescent",
		"lucid", "luminous", "misty", "opal", "pale", "pearly", "polished", "prismatic",
		"radiant", "scarlet", "sharp", "shimmering", "silver", "smoky", "soft",
		"sparkling", "twilight", "vivid", "violet", "warm", "white",
	}

	nouns = []string{
		"arc", "aurora", "beam", "caustic", "dawn", "dusk", "facet", "flare",
		"glint", "gleam", "halo", "horizon", "lens", "mirror", "moon", "rainbow",
		"ray", "ripple", "shard", "shadow", "shimmer", "sky", "spark", "spectrum",
		"star", "sunrise", "sunset", "veil", "wave", "window",
	}
)

// GenerateRunName creates a memorable run identifier in the format "adjective-noun"
func GenerateRunName() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return fmt.Sprintf("%s-%s", adj, noun)
}
