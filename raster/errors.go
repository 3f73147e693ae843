package raster

import "errors"

// Sentinel errors for raster package.
var (
	// ErrEmptyFontData is returned when a face is opened without data.
	ErrEmptyFontData = errors.New("raster: empty font data")

	// ErrUnknownEngine is returned when no engine is registered under a name.
	ErrUnknownEngine = errors.New("raster: unknown engine")

	// ErrInvalidSize is returned by SetSize for non-positive point sizes.
	ErrInvalidSize = errors.New("raster: invalid point size")

	// ErrNoSize is returned by Render before SetSize succeeded.
	ErrNoSize = errors.New("raster: face size not set")

	// ErrFaceClosed is returned when a closed face is used.
	ErrFaceClosed = errors.New("raster: face closed")

	// ErrUnsupportedGlyph is returned for glyphs without an outline
	// representation, such as bitmap-only or color glyphs.
	ErrUnsupportedGlyph = errors.New("raster: glyph has no outline")
)
