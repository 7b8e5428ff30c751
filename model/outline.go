package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Level is a heading tier. Level 1 is the outermost heading (H1).
// The zero value means "not a heading".
type Level int

// LevelNone marks text that was not classified as a heading
const LevelNone Level = 0

// String returns the outline label for the level ("H1", "H2", ...)
func (l Level) String() string {
	if l <= LevelNone {
		return "none"
	}
	return "H" + strconv.Itoa(int(l))
}

// MarshalText renders the level as its outline label
func (l Level) MarshalText() ([]byte, error) {
	if l <= LevelNone {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText parses an outline label such as "H2"
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses an outline label ("H3" or "h3") into a Level
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != 'H' && s[0] != 'h') {
		return LevelNone, fmt.Errorf("invalid heading level %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return LevelNone, fmt.Errorf("invalid heading level %q", s)
	}
	return Level(n), nil
}

// OutlineEntry is one heading of an inferred outline
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the inferred structure of one document
type Result struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewResult creates a result whose outline is never nil, so that an empty
// outline serializes as [] rather than null.
func NewResult(title string, outline []OutlineEntry) *Result {
	if outline == nil {
		outline = []OutlineEntry{}
	}
	return &Result{Title: title, Outline: outline}
}

// StyleProfile summarizes the font sizes used across a document
type StyleProfile struct {
	// BodySize is the most frequent rounded font size
	BodySize float64

	// HeadingLevels maps every rounded size larger than BodySize to its tier,
	// H1 being the largest size.
	HeadingLevels map[float64]Level
}

// LevelFor returns the tier assigned to a rounded font size
func (p StyleProfile) LevelFor(size float64) (Level, bool) {
	level, ok := p.HeadingLevels[size]
	return level, ok
}

// TierCount returns the number of size-based heading tiers
func (p StyleProfile) TierCount() int {
	return len(p.HeadingLevels)
}

// Sizes returns the heading sizes ordered from largest to smallest
func (p StyleProfile) Sizes() []float64 {
	sizes := make([]float64, 0, len(p.HeadingLevels))
	for size := range p.HeadingLevels {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	return sizes
}
