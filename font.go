package fontcache

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/gogpu/fontcache/fontdat"
	"github.com/gogpu/fontcache/raster"
)

// defaultPointSize replaces non-positive point sizes.
const defaultPointSize = 12

// Font is a registered font: its base glyph table and the glyphs rendered
// for it on demand. Fonts are owned by the Manager that registered them.
type Font struct {
	// ID is the index of the font in its Manager.
	ID int

	// Name is the cache key the font is registered under.
	Name string

	// RegisterName is the name the font was first requested by.
	RegisterName string

	PointSize  int
	GlyphScale float32

	// Bitmap fonts have no face of their own. Glyphs beyond ASCII are
	// rendered with the fallback chain.
	Bitmap bool

	// Builtin is set for the q3 bitmap fonts.
	Builtin bool

	// DefaultFace reports that the requested face was unavailable and the
	// default face was rasterized instead.
	DefaultFace bool

	// Glyphs is the base glyph table, indexed by code point.
	Glyphs [fontdat.GlyphCount]fontdat.Glyph

	face  raster.Face
	extra *linkedhashmap.Map // rune -> fontdat.Glyph
}

func newFont(name, registerName string, pointSize int) *Font {
	return &Font{
		Name:         name,
		RegisterName: registerName,
		PointSize:    pointSize,
		extra:        linkedhashmap.New(),
	}
}

// ExtraGlyphs returns the number of glyphs rendered outside the base table.
func (f *Font) ExtraGlyphs() int { return f.extra.Size() }

// inBaseTable reports whether r is served from the base glyph table.
// Bitmap fonts only carry usable glyphs up to '~'.
func (f *Font) inBaseTable(r rune) bool {
	if f.Bitmap {
		return r <= 0x7e
	}
	return r < fontdat.GlyphCount
}

func (f *Font) close() error {
	f.extra.Clear()
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}
