package level

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure for a hand-authored level file.
// It mirrors the JSON payload contract with the same tolerances.
type yamlLevel struct {
	Name      string         `yaml:"name,omitempty"`
	Platforms []yamlPlatform `yaml:"platforms"`
}

// yamlPlatform is a single platform entry in YAML form.
type yamlPlatform struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
	Type  string  `yaml:"type,omitempty"`
	Range float64 `yaml:"range,omitempty"`
}

// ParseYAML parses a YAML level file into a Level. Entries with non-finite
// coordinates or non-positive width are dropped, matching the JSON parser.
func ParseYAML(data []byte) (*Level, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	platforms := make([]Platform, 0, len(yl.Platforms))
	for _, e := range yl.Platforms {
		if math.IsNaN(e.X) || math.IsNaN(e.Y) || math.IsNaN(e.Width) {
			continue
		}
		if math.IsInf(e.X, 0) || math.IsInf(e.Y, 0) || math.IsInf(e.Width, 0) {
			continue
		}
		if e.Width <= 0 {
			continue
		}

		r := 0.0
		if e.Range > 0 && !math.IsInf(e.Range, 0) && !math.IsNaN(e.Range) {
			r = e.Range
		}

		platforms = append(platforms, Platform{
			X:       e.X,
			Y:       e.Y,
			Width:   e.Width,
			Variant: ParseVariant(e.Type),
			Range:   r,
		})
	}

	return &Level{
		Platforms: platforms,
		LastIndex: lastIndex(platforms),
	}, nil
}
