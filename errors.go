package fontcache

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontcache package.
var (
	// ErrInvalidArgument is returned for empty font names, nil or unknown
	// fonts and negative code points.
	ErrInvalidArgument = errors.New("fontcache: invalid argument")

	// ErrResourceExhausted is returned when the font registry is full.
	ErrResourceExhausted = errors.New("fontcache: too many fonts registered")

	// ErrFaceLoad is returned when neither the requested face nor the
	// default face can be opened and sized.
	ErrFaceLoad = errors.New("fontcache: cannot load font face")

	// ErrGlyphUnavailable is reported when no face covers a code point.
	// Glyph recovers from it by substituting a stand-in glyph.
	ErrGlyphUnavailable = errors.New("fontcache: no face has the glyph")

	// ErrClosed is returned by a Manager after Close.
	ErrClosed = errors.New("fontcache: manager closed")
)

// RegisterError is returned when a font cannot be registered.
type RegisterError struct {
	Name      string
	PointSize int
	Err       error
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("fontcache: register %q at %dpt: %v", e.Name, e.PointSize, e.Err)
}

func (e *RegisterError) Unwrap() error { return e.Err }

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontcache: invalid config: " + e.Field + ": " + e.Reason
}
