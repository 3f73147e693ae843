package fontcache

import (
	"strings"

	"github.com/gogpu/fontcache/fontdat"
)

// Built-in bitmap font names, matched case-insensitively.
var builtinFonts = []string{"q3tiny", "q3small", "q3big", "q3giant"}

// Images the built-in fonts are drawn from, in order of preference.
const (
	builtinImage         = "gfx/2d/bigchars"
	builtinFallbackImage = "gfx/wc/openarenachars"
)

const (
	builtinCell      = 16
	builtinPointSize = 16
	builtinScale     = 2.5
)

func isBuiltin(name string) bool {
	for _, b := range builtinFonts {
		if strings.EqualFold(name, b) {
			return true
		}
	}
	return false
}

// registerBuiltin synthesizes a 16x16 character grid font over the shared
// character image.
func (m *Manager) registerBuiltin(name string) (*Font, error) {
	if f, ok := m.fonts.lookup(name); ok {
		return f, nil
	}
	if m.fonts.full() {
		return nil, ErrResourceExhausted
	}

	shader := builtinImage
	h := m.imageHandle(shader)
	if h == 0 {
		shader = builtinFallbackImage
		h = m.imageHandle(shader)
	}

	f := newFont(name, name, builtinPointSize)
	f.GlyphScale = builtinScale
	f.Bitmap = true
	f.Builtin = true

	const step = float32(1) / builtinCell
	for i := range f.Glyphs {
		col, row := float32(i%builtinCell), float32(i/builtinCell)
		f.Glyphs[i] = fontdat.Glyph{
			Height:      builtinCell,
			Top:         builtinCell,
			Pitch:       builtinCell,
			XSkip:       builtinCell,
			ImageWidth:  builtinCell,
			ImageHeight: builtinCell,
			S:           col * step,
			T:           row * step,
			S2:          (col + 1) * step,
			T2:          (row + 1) * step,
			Handle:      int32(h),
			ShaderName:  shader,
		}
	}
	if err := m.fonts.add(f); err != nil {
		return nil, err
	}
	m.debug(2, "fontcache: built-in font registered", "name", name, "image", shader, "handle", h)
	return f, nil
}
