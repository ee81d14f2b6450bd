package render

import (
	"time"

	"github.com/sketchwall/sketchwall/pkg/errors"
	"github.com/sketchwall/sketchwall/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Exports
// =============================================================================

const (
	// DefaultWidth is the default document width attribute in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default document height attribute in pixels.
	DefaultHeight = 600.0

	// DefaultRoughness is the default jitter multiplier for the rough style.
	DefaultRoughness = 1.0

	// DefaultPadding is the margin added around the shape extent when the
	// viewBox is computed.
	DefaultPadding = 40.0

	// BackgroundOverscan extends the background fill past the viewBox on
	// every side so panning in an embedding viewer never exposes bare
	// canvas.
	BackgroundOverscan = 2000.0
)

// DefaultStyle is the style used when options leave it unset.
const DefaultStyle = styles.NameRough

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJPEG: true,
	FormatPDF:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, jpeg, pdf)", format)
	}
	return nil
}

// ValidateStyle checks that a style name is valid.
func ValidateStyle(style styles.Name) error {
	if !style.Valid() {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: rough, clean, pro)", style)
	}
	return nil
}

// Options contains all configuration for rendering a board.
// This struct supports JSON serialization for API requests.
//
// Roughness and Seed are pointers because their zero values are
// meaningful: roughness 0 renders the rough style without jitter, and
// seed 0 is a legitimate stream seed. Nil means "use the default".
type Options struct {
	Width    float64     `json:"width,omitempty"`
	Height   float64     `json:"height,omitempty"`
	Style    styles.Name `json:"style,omitempty"`
	DarkMode bool        `json:"dark_mode,omitempty"`

	Roughness *float64 `json:"roughness,omitempty"`
	Seed      *int64   `json:"seed,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once. In particular the seed, which defaults to
// the current time, is resolved exactly once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOptions,
			"width and height cannot be negative (got %g x %g)", o.Width, o.Height)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}

	if o.Roughness == nil {
		r := DefaultRoughness
		o.Roughness = &r
	}
	if *o.Roughness < 0 {
		return errors.New(errors.ErrCodeInvalidOptions,
			"roughness cannot be negative (got %g)", *o.Roughness)
	}

	if o.Seed == nil {
		s := time.Now().UnixNano()
		o.Seed = &s
	}

	o.validated = true
	return nil
}

// WithSeed returns a copy of the options with the seed pinned.
// Useful for reproducing a document byte for byte.
func (o Options) WithSeed(seed int64) Options {
	o.Seed = &seed
	o.validated = false
	return o
}

// WithRoughness returns a copy of the options with the jitter multiplier set.
func (o Options) WithRoughness(r float64) Options {
	o.Roughness = &r
	o.validated = false
	return o
}

// style builds the Style implementation the options describe.
// Must be called after ValidateAndSetDefaults.
func (o *Options) style() styles.Style {
	return styles.For(o.Style, *o.Roughness, *o.Seed, o.DarkMode)
}
