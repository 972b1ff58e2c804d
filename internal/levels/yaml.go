package levels

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/uberjump/internal/core"
)

// yamlLevel is the on-disk shape of a level file. Pointer fields let the
// parser tell a missing value from a zero value.
type yamlLevel struct {
	ID        string     `yaml:"ID"`
	Name      string     `yaml:"Name"`
	EndY      *int       `yaml:"EndY"`
	Platforms *yamlGroup `yaml:"Platforms"`
	Stars     *yamlGroup `yaml:"Stars"`
}

type yamlGroup struct {
	Patterns  map[string][]yamlPoint `yaml:"Patterns"`
	Positions []yamlPosition         `yaml:"Positions"`
}

type yamlPoint struct {
	X    *float64 `yaml:"x"`
	Y    *float64 `yaml:"y"`
	Type *int     `yaml:"type"`
}

type yamlPosition struct {
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Pattern *string  `yaml:"pattern"`
}

// Parse decodes, validates and expands a YAML level document.
func Parse(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("levels: %w: %v", ErrMalformedLevel, err)
	}

	if yl.EndY == nil {
		return nil, fmt.Errorf("levels: %w: EndY is required", ErrMalformedLevel)
	}

	lvl := &Level{
		ID:   yl.ID,
		Name: yl.Name,
		EndY: *yl.EndY,
	}

	var err error
	lvl.platformPatterns, lvl.platformPlaces, err = parseGroup("Platforms", yl.Platforms, maxPlatformType)
	if err != nil {
		return nil, err
	}
	lvl.starPatterns, lvl.starPlaces, err = parseGroup("Stars", yl.Stars, maxStarType)
	if err != nil {
		return nil, err
	}

	lvl.expand()
	return lvl, nil
}

const (
	maxPlatformType = int(PlatformBreaking)
	maxStarType     = int(StarSpecial)
)

// parseGroup validates one Platforms/Stars section. A missing section is an
// empty group.
func parseGroup(section string, g *yamlGroup, maxType int) (map[string][]PatternPoint, []Placement, error) {
	patterns := make(map[string][]PatternPoint)
	if g == nil {
		return patterns, nil, nil
	}

	// Sorted names keep error messages stable across runs.
	names := make([]string, 0, len(g.Patterns))
	for name := range g.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := g.Patterns[name]
		points := make([]PatternPoint, 0, len(raw))
		for i, p := range raw {
			if p.X == nil || p.Y == nil || p.Type == nil {
				return nil, nil, fmt.Errorf("levels: %w: %s.Patterns.%s[%d] needs x, y and type",
					ErrMalformedLevel, section, name, i)
			}
			if *p.Type < 0 || *p.Type > maxType {
				return nil, nil, fmt.Errorf("levels: %w: %s.Patterns.%s[%d] has unknown type %d",
					ErrMalformedLevel, section, name, i, *p.Type)
			}
			points = append(points, PatternPoint{
				Offset: core.V(*p.X, *p.Y),
				Type:   *p.Type,
			})
		}
		patterns[name] = points
	}

	places := make([]Placement, 0, len(g.Positions))
	for i, pos := range g.Positions {
		if pos.X == nil || pos.Y == nil || pos.Pattern == nil {
			return nil, nil, fmt.Errorf("levels: %w: %s.Positions[%d] needs x, y and pattern",
				ErrMalformedLevel, section, i)
		}
		if _, ok := patterns[*pos.Pattern]; !ok {
			return nil, nil, fmt.Errorf("levels: %w: %s.Positions[%d] references %q",
				ErrMissingPattern, section, i, *pos.Pattern)
		}
		places = append(places, Placement{
			Anchor:  core.V(*pos.X, *pos.Y),
			Pattern: *pos.Pattern,
		})
	}

	return patterns, places, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
