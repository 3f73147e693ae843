package fontcache

import (
	"fmt"

	"github.com/gogpu/fontcache/atlas"
	"github.com/gogpu/fontcache/fontdat"
	"github.com/gogpu/fontcache/raster"
)

// substitute is the base glyph used for code points no face covers.
const substitute = '*'

// Glyph returns the glyph of r in font. Code points outside the base table
// are rendered on first use, with the font's face or the first fallback
// face that has them, and cached with the font. Code points no face covers
// get the font's '*' glyph.
func (m *Manager) Glyph(font *Font, r rune) (fontdat.Glyph, error) {
	if m.closed {
		return fontdat.Glyph{}, ErrClosed
	}
	if font == nil || r < 0 {
		Logger().Warn("fontcache: invalid glyph request", "rune", int64(r))
		return fontdat.Glyph{}, ErrInvalidArgument
	}
	f, ok := m.fonts.get(font.ID)
	if !ok || f != font {
		Logger().Warn("fontcache: unknown font", "id", font.ID, "name", font.Name)
		return fontdat.Glyph{}, fmt.Errorf("%w: font id %d", ErrInvalidArgument, font.ID)
	}
	if f.inBaseTable(r) {
		return f.Glyphs[r], nil
	}

	if g, ok := f.extra.Get(r); ok {
		m.stats.ExtraHits++
		return g.(fontdat.Glyph), nil
	}
	m.stats.ExtraMisses++

	g, err := m.renderExtra(f, r)
	if err != nil {
		Logger().Warn("fontcache: substituting glyph", "font", f.Name, "rune", fmt.Sprintf("%U", r), "err", err)
		g = f.Glyphs[substitute]
	}
	f.extra.Put(r, g)
	return g, nil
}

// extraFace returns the face r is rendered with.
func (m *Manager) extraFace(f *Font, r rune) (raster.Face, error) {
	face := f.face
	if f.Bitmap || face == nil {
		face = nil
		if e, ok := m.chain.First(); ok {
			face = e.Face
		}
	}
	if face != nil && face.GlyphIndex(r) != 0 {
		return face, nil
	}
	e, ok := m.chain.Lookup(r)
	if !ok {
		return nil, ErrGlyphUnavailable
	}
	m.debug(2, "fontcache: using fallback font", "font", f.Name, "rune", fmt.Sprintf("%U", r), "fallback", e.Name)
	return e.Face, nil
}

// renderExtra renders r alone on a page of its own.
func (m *Manager) renderExtra(f *Font, r rune) (fontdat.Glyph, error) {
	face, err := m.extraFace(f, r)
	if err != nil {
		return fontdat.Glyph{}, err
	}
	if err := face.SetSize(f.PointSize); err != nil {
		return fontdat.Glyph{}, err
	}
	rg, err := face.Render(r)
	m.stats.Rasterized++
	if err != nil {
		return fontdat.Glyph{}, err
	}

	page := atlas.NewPage(atlas.PageSize)
	region, err := page.Place(&rg.Bitmap)
	if err != nil {
		return fontdat.Glyph{}, err
	}
	name := fmt.Sprintf("font-extra-glyph-%d-%d", f.ID, r)
	h, err := m.registerPage(name, page, false)
	if err != nil {
		return fontdat.Glyph{}, err
	}

	g := glyphRecord(rg, region)
	g.Handle = int32(h)
	g.ShaderName = name
	if f.Builtin {
		g.XSkip = builtinCell
	}
	m.debug(3, "fontcache: extra glyph created", "font", f.Name, "rune", fmt.Sprintf("%U", r),
		"face", face.Name(), "width", g.ImageWidth, "height", g.ImageHeight)
	return g, nil
}
