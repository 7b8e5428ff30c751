package outline

import "errors"

// Default heuristic values
const (
	DefaultVerticalMargin    = 50.0
	DefaultMinHeadingWords   = 2
	DefaultMaxHeadingWords   = 25
	DefaultMaxUppercaseRunes = 20
	DefaultBodySize          = 12.0
	DefaultFormMarker        = "application form for"
	DefaultInviteMarker      = "invite"
	DefaultInviteMaxEntries  = 1
)

// Configuration errors returned by Config.Validate
var (
	ErrInvalidMargin      = errors.New("invalid vertical margin: must be non-negative")
	ErrInvalidWordBounds  = errors.New("invalid heading word bounds: need 1 <= min <= max")
	ErrInvalidUppercase   = errors.New("invalid uppercase limit: must be non-negative")
	ErrInvalidBodySize    = errors.New("invalid default body size: must be positive")
	ErrInvalidInviteLimit = errors.New("invalid invite entry limit: must be non-negative")
)

// Config holds the heuristic constants of outline inference.
// It is passed by value and never modified by the pipeline.
type Config struct {
	// VerticalMargin is the height of the header and footer zones, measured
	// from the top and bottom page edges. Blocks reaching into either zone
	// are never headings.
	VerticalMargin float64 `yaml:"vertical_margin"`

	// MinHeadingWords and MaxHeadingWords bound the word count of a heading
	MinHeadingWords int `yaml:"min_heading_words"`
	MaxHeadingWords int `yaml:"max_heading_words"`

	// MaxUppercaseRunes is the longest all-caps text still accepted as a heading
	MaxUppercaseRunes int `yaml:"max_uppercase_runes"`

	// DefaultBodySize is the body size assumed for documents without text
	DefaultBodySize float64 `yaml:"default_body_size"`

	// FormMarker, when found in the lowercased title, marks the document as
	// a form whose outline is left empty. Empty disables the check.
	FormMarker string `yaml:"form_marker"`

	// InviteMarker, when found in the lowercased title of a document with at
	// most InviteMaxEntries headings, empties the outline. Empty disables the check.
	InviteMarker     string `yaml:"invite_marker"`
	InviteMaxEntries int    `yaml:"invite_max_entries"`

	// NormalizeUnicode applies NFKC normalization before cleaning text
	NormalizeUnicode bool `yaml:"normalize_unicode"`

	// Scorer ranks title candidates; nil means CenteredSizeScore
	Scorer TitleScorer `yaml:"-"`
}

// DefaultConfig returns the standard heuristics
func DefaultConfig() Config {
	return Config{
		VerticalMargin:    DefaultVerticalMargin,
		MinHeadingWords:   DefaultMinHeadingWords,
		MaxHeadingWords:   DefaultMaxHeadingWords,
		MaxUppercaseRunes: DefaultMaxUppercaseRunes,
		DefaultBodySize:   DefaultBodySize,
		FormMarker:        DefaultFormMarker,
		InviteMarker:      DefaultInviteMarker,
		InviteMaxEntries:  DefaultInviteMaxEntries,
		NormalizeUnicode:  true,
		Scorer:            CenteredSizeScore,
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.VerticalMargin < 0:
		return ErrInvalidMargin
	case c.MinHeadingWords < 1 || c.MaxHeadingWords < c.MinHeadingWords:
		return ErrInvalidWordBounds
	case c.MaxUppercaseRunes < 0:
		return ErrInvalidUppercase
	case c.DefaultBodySize <= 0:
		return ErrInvalidBodySize
	case c.InviteMaxEntries < 0:
		return ErrInvalidInviteLimit
	}
	return nil
}

func (c Config) scorer() TitleScorer {
	if c.Scorer == nil {
		return CenteredSizeScore
	}
	return c.Scorer
}

func (c Config) clean(text string) string {
	if c.NormalizeUnicode {
		text = Normalize(text)
	}
	return Clean(text)
}
