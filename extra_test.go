package fontcache

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/fontcache/fontdat"
)

// chainFixture registers fonts/main.ttf over a fallback chain of
// fonts/a.ttf and fonts/b.ttf. fonts/missing.ttf cannot be opened.
func chainFixture(t *testing.T) (*fixture, *Manager, *Font) {
	t.Helper()
	fx := newFixture()
	fx.engine.cover(fx.fs, "fonts/main.ttf", baseRunes(0x300)...)
	fx.engine.cover(fx.fs, "fonts/a.ttf", 0x100)
	fx.engine.cover(fx.fs, "fonts/b.ttf", 0x100, 0x200)
	cfg := testConfig()
	cfg.FallbackFonts = []string{"fonts/a.ttf", "fonts/missing.ttf", "fonts/b.ttf"}
	m := fx.manager(t, cfg, fx.engine)

	f, err := m.Register("fonts/main.ttf", 20)
	if err != nil {
		t.Fatal(err)
	}
	return fx, m, f
}

func TestGlyphBaseTable(t *testing.T) {
	_, m, f := chainFixture(t)
	for _, r := range []rune{'A', 0xc8, 0xff} {
		g, err := m.Glyph(f, r)
		if err != nil {
			t.Fatalf("Glyph(%U) error = %v", r, err)
		}
		if diff := cmp.Diff(f.Glyphs[r], g); diff != "" {
			t.Errorf("Glyph(%U) mismatch (-want +got):\n%s", r, diff)
		}
	}
	if s := m.Stats(); s.ExtraHits != 0 || s.ExtraMisses != 0 || f.ExtraGlyphs() != 0 {
		t.Errorf("base glyphs touched the extra cache: %+v", s)
	}
}

func TestGlyphFallbackOrder(t *testing.T) {
	fx, m, f := chainFixture(t)
	if diff := cmp.Diff([]string{"fonts/a.ttf", "fonts/b.ttf"}, m.Fallbacks()); diff != "" {
		t.Errorf("Fallbacks() mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		r    rune
		face string
	}{
		{0x300, "fonts/main.ttf"},
		{0x100, "fonts/a.ttf"},
		{0x200, "fonts/b.ttf"},
	}
	for _, tt := range tests {
		g, err := m.Glyph(f, tt.r)
		if err != nil {
			t.Fatalf("Glyph(%U) error = %v", tt.r, err)
		}
		for name, face := range fx.engine.faces {
			want := 0
			if name == tt.face {
				want = 1
			}
			if face.renders[tt.r] != want {
				t.Errorf("Glyph(%U): %s rendered %d times, want %d", tt.r, name, face.renders[tt.r], want)
			}
		}
		if face := fx.engine.faces[tt.face]; face.size != f.PointSize {
			t.Errorf("Glyph(%U): face size %d, want %d", tt.r, face.size, f.PointSize)
		}
		if g.Handle == 0 || g.ImageWidth != 4 || g.ImageHeight != 6 || g.XSkip != 5 {
			t.Errorf("Glyph(%U) = %+v", tt.r, g)
		}
	}
}

func TestGlyphCachedOnce(t *testing.T) {
	fx, m, f := chainFixture(t)

	first, err := m.Glyph(f, 0x200)
	if err != nil {
		t.Fatal(err)
	}
	if first.ShaderName != "font-extra-glyph-0-512" {
		t.Errorf("ShaderName = %q", first.ShaderName)
	}
	if int32(fx.backend.Lookup(first.ShaderName)) != first.Handle {
		t.Errorf("extra glyph page not registered")
	}
	rasterized := m.Stats().Rasterized

	for range 3 {
		g, err := m.Glyph(f, 0x200)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, g); diff != "" {
			t.Errorf("cached glyph mismatch (-first +got):\n%s", diff)
		}
	}
	s := m.Stats()
	if s.Rasterized != rasterized || s.ExtraMisses != 1 || s.ExtraHits != 3 {
		t.Errorf("Stats() = %+v, want one miss and no new rasterization", s)
	}
	if n := f.ExtraGlyphs(); n != 1 {
		t.Errorf("ExtraGlyphs() = %d, want 1", n)
	}
	if renders := fx.engine.faces["fonts/b.ttf"].renders[0x200]; renders != 1 {
		t.Errorf("rendered %d times, want 1", renders)
	}
}

func TestGlyphSubstitutesUncovered(t *testing.T) {
	_, m, f := chainFixture(t)

	g, err := m.Glyph(f, 0x4e2d)
	if err != nil {
		t.Fatalf("Glyph() error = %v", err)
	}
	if diff := cmp.Diff(f.Glyphs['*'], g); diff != "" {
		t.Errorf("uncovered glyph should be '*' (-want +got):\n%s", diff)
	}
	if _, err := m.Glyph(f, 0x4e2d); err != nil {
		t.Fatal(err)
	}
	if s := m.Stats(); s.ExtraMisses != 1 || s.ExtraHits != 1 {
		t.Errorf("Stats() = %+v, want the substitute cached", s)
	}
}

func TestGlyphBitmapFontUsesFallbacks(t *testing.T) {
	fx, m, _ := chainFixture(t)
	q, err := m.Register("q3small", 0)
	if err != nil {
		t.Fatal(err)
	}

	g, err := m.Glyph(q, 0x100)
	if err != nil {
		t.Fatal(err)
	}
	if fx.engine.faces["fonts/a.ttf"].renders[0x100] != 1 {
		t.Error("bitmap font glyph should come from the first fallback")
	}
	if g.XSkip != 16 {
		t.Errorf("XSkip = %d, want 16 for built-in fonts", g.XSkip)
	}
	if fx.engine.faces["fonts/a.ttf"].size != 16 {
		t.Errorf("fallback sized at %d, want 16", fx.engine.faces["fonts/a.ttf"].size)
	}

	if _, err := m.Glyph(q, 0x200); err != nil {
		t.Fatal(err)
	}
	if fx.engine.faces["fonts/b.ttf"].renders[0x200] != 1 {
		t.Error("glyph missing from the first fallback should come from the next one")
	}

	// Bitmap fonts only serve ASCII from their table.
	g, err = m.Glyph(q, 0x7f)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(q.Glyphs['*'], g); diff != "" {
		t.Errorf("Glyph(0x7f) mismatch (-want +got):\n%s", diff)
	}
	if q.ExtraGlyphs() != 3 {
		t.Errorf("ExtraGlyphs() = %d, want 3", q.ExtraGlyphs())
	}
}

func TestGlyphWithoutFallbacks(t *testing.T) {
	fx := newFixture()
	m := fx.manager(t, testConfig(), fx.engine)
	q, err := m.Register("q3big", 0)
	if err != nil {
		t.Fatal(err)
	}
	g, err := m.Glyph(q, 0x100)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(q.Glyphs['*'], g); diff != "" {
		t.Errorf("Glyph() mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyphInvalid(t *testing.T) {
	_, m, f := chainFixture(t)
	_, _, foreign := chainFixture(t)
	if foreign.ID != f.ID {
		t.Fatalf("foreign font ID = %d, want %d", foreign.ID, f.ID)
	}
	tests := []struct {
		name string
		font *Font
		r    rune
	}{
		{"nil font", nil, 'a'},
		{"negative rune", f, -1},
		{"unknown font", &Font{ID: 42}, 'a'},
		{"font of another manager", foreign, 0x100},
		{"copied font", &Font{ID: f.ID, Name: f.Name}, 'a'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := m.Glyph(tt.font, tt.r)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Glyph() error = %v, want ErrInvalidArgument", err)
			}
			if g != (fontdat.Glyph{}) {
				t.Errorf("Glyph() = %+v, want zero", g)
			}
		})
	}
}
