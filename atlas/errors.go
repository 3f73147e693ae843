package atlas

import "errors"

// Sentinel errors for atlas package.
var (
	// ErrPageFull is returned when a bitmap does not fit in the remaining
	// space of a page. The page is left unchanged.
	ErrPageFull = errors.New("atlas: page full")

	// ErrGlyphTooLarge is returned when a bitmap cannot fit even on an
	// empty page.
	ErrGlyphTooLarge = errors.New("atlas: glyph larger than page")

	// ErrInvalidBitmap is returned when a bitmap's buffer is shorter than
	// its declared dimensions.
	ErrInvalidBitmap = errors.New("atlas: bitmap buffer too small")
)
