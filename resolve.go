package fontcache

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/gogpu/fontcache/atlas"
	"github.com/gogpu/fontcache/fontdat"
	"github.com/gogpu/fontcache/raster"
	"github.com/gogpu/fontcache/texture"
)

// Register returns the font registered under name at pointSize, loading or
// rasterizing it on first use. A non-positive pointSize means 12 points.
// Built-in bitmap fonts ignore pointSize.
//
// Failures are returned as *RegisterError wrapping one of ErrInvalidArgument,
// ErrResourceExhausted or ErrFaceLoad.
func (m *Manager) Register(name string, pointSize int) (*Font, error) {
	f, err := m.register(name, pointSize)
	if err != nil {
		Logger().Error("fontcache: register failed", "name", name, "size", pointSize, "err", err)
		return nil, &RegisterError{Name: name, PointSize: pointSize, Err: err}
	}
	return f, nil
}

func (m *Manager) register(name string, pointSize int) (*Font, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if name == "" {
		return nil, ErrInvalidArgument
	}
	if isBuiltin(name) {
		return m.registerBuiltin(name)
	}
	if pointSize <= 0 {
		pointSize = defaultPointSize
	}

	if !strings.EqualFold(path.Ext(name), ".ttf") {
		if f := m.loadLegacy(name, pointSize); f != nil {
			return f, nil
		}
	}

	base := baseName(name)
	key := path.Join(m.cfg.FontsDir, fmt.Sprintf("%s_%d.dat", base, pointSize))
	if f, ok := m.fonts.lookup(key); ok {
		return f, nil
	}
	if m.fonts.full() {
		return nil, ErrResourceExhausted
	}
	if f := m.loadCached(name, key, pointSize); f != nil {
		return f, nil
	}
	return m.rasterize(name, key, base, pointSize)
}

// baseName strips the directory and extension of a font file name.
func baseName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(name, path.Ext(name))
}

// loadLegacy returns the font stored in the pre-rendered table shared by
// all bitmap fonts of a size, or nil if there is none.
func (m *Manager) loadLegacy(name string, pointSize int) *Font {
	key := fmt.Sprintf("fonts/fontImage_%d.dat", pointSize)
	if f, ok := m.fonts.lookup(key); ok {
		return f
	}
	if m.fonts.full() {
		return nil
	}
	file, ok := m.readTable(key)
	if !ok {
		return nil
	}
	f := m.fontFromTable(key, name, pointSize, file)
	f.Bitmap = true
	_ = m.fonts.add(f)
	m.debug(2, "fontcache: legacy font loaded", "name", name, "file", key, "scale", f.GlyphScale)
	return f
}

// loadCached returns the font persisted under key, or nil if there is no
// usable file. The face is opened again for glyphs outside the table; a
// font whose face is gone behaves as a bitmap font.
func (m *Manager) loadCached(name, key string, pointSize int) *Font {
	file, ok := m.readTable(key)
	if !ok {
		return nil
	}
	f := m.fontFromTable(key, name, pointSize, file)
	if face, err := m.openFace(name); err == nil && face.SetSize(pointSize) == nil {
		f.face = face
	} else {
		if face != nil {
			_ = face.Close()
		}
		f.Bitmap = true
	}
	_ = m.fonts.add(f)
	m.debug(2, "fontcache: font loaded", "name", name, "file", key, "bitmap", f.Bitmap)
	return f
}

// readTable reads and decodes a glyph table. Missing files and files of the
// wrong length report false.
func (m *Manager) readTable(name string) (*fontdat.File, bool) {
	if !m.fs.Exists(name) {
		return nil, false
	}
	data, err := m.fs.ReadFile(name)
	if err != nil {
		Logger().Warn("fontcache: cannot read font data", "file", name, "err", err)
		return nil, false
	}
	file, err := fontdat.Decode(data)
	if err != nil {
		Logger().Warn("fontcache: ignoring font data", "file", name, "err", err)
		return nil, false
	}
	return file, true
}

func (m *Manager) fontFromTable(key, name string, pointSize int, file *fontdat.File) *Font {
	f := newFont(key, name, pointSize)
	f.Glyphs = file.Glyphs
	f.GlyphScale = file.Scale
	if f.GlyphScale == 0 {
		f.GlyphScale = 48 / float32(pointSize)
	}
	handles := make(map[string]int32)
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		if g.ShaderName == "" {
			g.Handle = 0
			continue
		}
		h, ok := handles[g.ShaderName]
		if !ok {
			h = int32(m.imageHandle(g.ShaderName))
			handles[g.ShaderName] = h
		}
		g.Handle = h
	}
	return f
}

// imageHandle returns the texture registered under name, loading the image
// from the file system if the backend does not know it.
func (m *Manager) imageHandle(name string) texture.Handle {
	if h := m.backend.Lookup(name); h != 0 {
		return h
	}
	file := name
	if path.Ext(file) == "" {
		file += ".tga"
	}
	data, err := m.fs.ReadFile(file)
	if err != nil {
		m.debug(1, "fontcache: image not found", "name", name)
		return 0
	}
	rgba, w, h, err := atlas.DecodeTGA(data)
	if err != nil {
		Logger().Warn("fontcache: cannot decode image", "file", file, "err", err)
		return 0
	}
	handle, err := m.backend.Register(name, rgba, w, h)
	if err != nil {
		Logger().Warn("fontcache: cannot register image", "name", name, "err", err)
		return 0
	}
	return handle
}

// rasterize renders the base glyph table of name into atlas pages.
func (m *Manager) rasterize(name, key, base string, pointSize int) (*Font, error) {
	f := newFont(key, name, pointSize)
	f.GlyphScale = 48 / float32(pointSize)

	face, err := m.openFace(name)
	if err != nil {
		m.debug(1, "fontcache: using default face", "name", name, "err", err)
		face, err = m.openDefaultFace()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFaceLoad, m.cfg.DefaultFace, err)
		}
		f.DefaultFace = true
	}
	if err := face.SetSize(pointSize); err != nil {
		_ = face.Close()
		return nil, fmt.Errorf("%w: %w", ErrFaceLoad, err)
	}
	f.face = face

	pages, err := m.packBaseGlyphs(f, base)
	if err != nil {
		_ = face.Close()
		return nil, err
	}
	if err := m.fonts.add(f); err != nil {
		_ = face.Close()
		return nil, err
	}
	if m.cfg.SaveFontData {
		m.saveTable(f)
	}

	Logger().Info("fontcache: font registered", "name", name, "size", pointSize, "key", key, "pages", pages)
	m.debug(2, "fontcache: font registered", "name", name, "size", pointSize,
		"key", key, "scale", f.GlyphScale, "default_face", f.DefaultFace)
	return f, nil
}

// packBaseGlyphs renders every base glyph of f and packs them into pages.
// The first pass measures the tallest glyph so all shelves share its
// height, the second places the glyphs, registering each page as it fills.
func (m *Manager) packBaseGlyphs(f *Font, base string) (int, error) {
	glyphs := make([]*raster.Glyph, fontdat.GlyphCount)
	maxHeight := 0
	for i := range glyphs {
		g, err := f.face.Render(rune(i))
		m.stats.Rasterized++
		if err != nil {
			m.debug(3, "fontcache: glyph not rendered", "rune", i, "err", err)
			g = &raster.Glyph{}
		}
		glyphs[i] = g
		maxHeight = max(maxHeight, g.Height)
	}

	page := atlas.NewPage(atlas.PageSize)
	page.Measure(maxHeight)

	pages, start := 0, 0
	flush := func(end int) error {
		name := path.Join(m.cfg.FontsDir, fmt.Sprintf("%s_%d_%d.tga", base, pages, f.PointSize))
		if len(name) >= fontdat.LayoutExtended.ShaderNameSize {
			Logger().Warn("fontcache: page name truncated in font data", "name", name,
				"max", fontdat.LayoutExtended.ShaderNameSize-1)
		}
		h, err := m.registerPage(name, page, m.cfg.SaveFontData)
		if err != nil {
			return err
		}
		for j := start; j < end; j++ {
			f.Glyphs[j].Handle = int32(h)
			f.Glyphs[j].ShaderName = name
		}
		pages++
		start = end
		page.Clear()
		return nil
	}

	for i := 0; i < len(glyphs); {
		region, err := page.Place(&glyphs[i].Bitmap)
		switch {
		case errors.Is(err, atlas.ErrPageFull):
			if err := flush(i); err != nil {
				return pages, err
			}
			continue
		case err != nil:
			Logger().Warn("fontcache: glyph dropped", "name", f.RegisterName, "rune", i, "err", err)
			region = atlas.Region{}
		}
		f.Glyphs[i] = glyphRecord(glyphs[i], region)
		i++
	}
	if err := flush(len(glyphs)); err != nil {
		return pages, err
	}
	return pages, nil
}

// registerPage uploads page under name, writing it to the file system as
// well when save is set.
func (m *Manager) registerPage(name string, page *atlas.Page, save bool) (texture.Handle, error) {
	rgba := page.RGBA()
	size := page.Size()
	h, err := m.backend.Register(name, rgba, size, size)
	if err != nil {
		return 0, fmt.Errorf("fontcache: register page %s: %w", name, err)
	}
	m.stats.Pages++
	if save {
		data, err := atlas.EncodeTGA(rgba, size, size)
		if err == nil {
			err = m.fs.WriteFile(name, data)
		}
		if err != nil {
			Logger().Warn("fontcache: cannot save page", "file", name, "err", err)
		}
	}
	m.debug(2, "fontcache: page registered", "name", name, "glyphs", page.Placed(),
		"utilization", page.Utilization())
	return h, nil
}

// saveTable persists the base glyph table of f under its cache key.
func (m *Manager) saveTable(f *Font) {
	file := &fontdat.File{Glyphs: f.Glyphs, Scale: f.GlyphScale, Name: f.Name}
	if err := m.fs.WriteFile(f.Name, fontdat.Encode(file)); err != nil {
		Logger().Warn("fontcache: cannot save font data", "file", f.Name, "err", err)
	}
}

func glyphRecord(g *raster.Glyph, r atlas.Region) fontdat.Glyph {
	return fontdat.Glyph{
		Height:      int32(g.Height),
		Top:         int32(g.Top),
		Bottom:      int32(g.Bottom),
		Pitch:       int32(g.Pitch),
		XSkip:       int32(g.XSkip),
		ImageWidth:  int32(r.Width),
		ImageHeight: int32(r.Height),
		S:           r.S,
		T:           r.T,
		S2:          r.S2,
		T2:          r.T2,
	}
}
