// Package levels loads level definitions: an end height plus named patterns of
// platforms and stars placed at anchor positions. Expanding the placements
// yields the absolute object layout a session is populated from.
package levels

import (
	"errors"

	"github.com/vovakirdan/uberjump/internal/core"
)

var (
	// ErrMalformedLevel is returned when a required field is missing or invalid.
	ErrMalformedLevel = errors.New("malformed level")

	// ErrMissingPattern is returned when a placement names an undefined pattern.
	ErrMissingPattern = errors.New("missing pattern")
)

// PlatformType is the platform subtype stored in level data.
type PlatformType int

const (
	PlatformNormal   PlatformType = 0
	PlatformBreaking PlatformType = 1
)

// String returns a human-readable name for the platform type.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// StarType is the star subtype stored in level data.
type StarType int

const (
	StarNormal  StarType = 0
	StarSpecial StarType = 1
)

// String returns a human-readable name for the star type.
func (t StarType) String() string {
	switch t {
	case StarNormal:
		return "normal"
	case StarSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// PatternPoint is one object of a pattern, relative to the placement anchor.
type PatternPoint struct {
	Offset core.Vec2
	Type   int
}

// Placement instantiates a named pattern at an absolute anchor.
type Placement struct {
	Anchor  core.Vec2
	Pattern string
}

// PlatformSpec is an expanded platform at an absolute position.
type PlatformSpec struct {
	Pos  core.Vec2
	Type PlatformType
}

// StarSpec is an expanded star at an absolute position.
type StarSpec struct {
	Pos  core.Vec2
	Type StarType
}

// Level represents a complete, validated level definition.
type Level struct {
	ID       string
	Name     string
	EndY     int
	FilePath string

	platformPatterns map[string][]PatternPoint
	starPatterns     map[string][]PatternPoint
	platformPlaces   []Placement
	starPlaces       []Placement

	Platforms []PlatformSpec
	Stars     []StarSpec
}

// PlatformPattern returns a copy of the named platform pattern.
func (l *Level) PlatformPattern(name string) ([]PatternPoint, bool) {
	return copyPattern(l.platformPatterns, name)
}

// StarPattern returns a copy of the named star pattern.
func (l *Level) StarPattern(name string) ([]PatternPoint, bool) {
	return copyPattern(l.starPatterns, name)
}

// ObjectCount returns the number of expanded platforms and stars.
func (l *Level) ObjectCount() int {
	return len(l.Platforms) + len(l.Stars)
}

func copyPattern(patterns map[string][]PatternPoint, name string) ([]PatternPoint, bool) {
	p, ok := patterns[name]
	if !ok {
		return nil, false
	}
	out := make([]PatternPoint, len(p))
	copy(out, p)
	return out, true
}

// expand adds each placement's anchor to every point of its pattern.
// Placements were validated against the pattern map at parse time.
func (l *Level) expand() {
	l.Platforms = l.Platforms[:0]
	for _, pl := range l.platformPlaces {
		for _, pt := range l.platformPatterns[pl.Pattern] {
			l.Platforms = append(l.Platforms, PlatformSpec{
				Pos:  pl.Anchor.Add(pt.Offset),
				Type: PlatformType(pt.Type),
			})
		}
	}

	l.Stars = l.Stars[:0]
	for _, pl := range l.starPlaces {
		for _, pt := range l.starPatterns[pl.Pattern] {
			l.Stars = append(l.Stars, StarSpec{
				Pos:  pl.Anchor.Add(pt.Offset),
				Type: StarType(pt.Type),
			})
		}
	}
}
