package fontcache

import (
	"errors"
	"testing"

	"github.com/gogpu/fontcache/atlas"
	"github.com/gogpu/fontcache/raster"
	"github.com/gogpu/fontcache/texture"
	"github.com/gogpu/fontcache/vfs"
)

// mockEngine opens faces covering fixed rune sets, keyed by face name.
type mockEngine struct {
	coverage map[string][]rune
	faces    map[string]*mockFace
}

func newMockEngine() *mockEngine {
	return &mockEngine{
		coverage: make(map[string][]rune),
		faces:    make(map[string]*mockFace),
	}
}

// cover makes name openable and covering runes. The file is added to fsys.
func (e *mockEngine) cover(fsys *vfs.Mem, name string, runes ...rune) {
	e.coverage[name] = runes
	fsys.AddPak(name, []byte(name))
}

func (e *mockEngine) Name() string { return "mock" }

func (e *mockEngine) Open(name string, data []byte) (raster.Face, error) {
	runes, ok := e.coverage[name]
	if !ok || len(data) == 0 {
		return nil, errors.New("mock: unknown font")
	}
	f := &mockFace{name: name, runes: make(map[rune]bool), renders: make(map[rune]int)}
	for _, r := range runes {
		f.runes[r] = true
	}
	e.faces[name] = f
	return f, nil
}

type mockFace struct {
	name    string
	runes   map[rune]bool
	renders map[rune]int
	size    int
	closed  bool
}

func (f *mockFace) Name() string { return f.name }

func (f *mockFace) GlyphIndex(r rune) uint32 {
	if f.runes[r] {
		return uint32(r) + 1
	}
	return 0
}

func (f *mockFace) SetSize(pt int) error {
	if pt <= 0 {
		return raster.ErrInvalidSize
	}
	f.size = pt
	return nil
}

func (f *mockFace) Render(r rune) (*raster.Glyph, error) {
	if f.closed {
		return nil, raster.ErrFaceClosed
	}
	f.renders[r]++
	pix := make([]byte, 4*6)
	for i := range pix {
		pix[i] = 0xff
	}
	return &raster.Glyph{
		Bitmap: atlas.Bitmap{Width: 4, Rows: 6, Pitch: 4, Mode: atlas.Gray, Pix: pix},
		Height: 6,
		Top:    6,
		Pitch:  4,
		XSkip:  5,
	}, nil
}

func (f *mockFace) Close() error {
	f.closed = true
	return nil
}

func baseRunes(extra ...rune) []rune {
	runes := make([]rune, 0, 256+len(extra))
	for r := range rune(256) {
		runes = append(runes, r)
	}
	return append(runes, extra...)
}

// testConfig is DefaultConfig without default fallback groups.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.EngineFallbacks = false
	cfg.PlatformFallbacks = false
	cfg.UnicodeFallbacks = false
	return cfg
}

type fixture struct {
	fs      *vfs.Mem
	backend *texture.Registry
	engine  *mockEngine
}

func newFixture() *fixture {
	return &fixture{
		fs:      vfs.NewMem(),
		backend: texture.NewRegistry(nil),
		engine:  newMockEngine(),
	}
}

// manager creates a manager over the fixture. A nil engine selects the
// default rasterizer.
func (fx *fixture) manager(t *testing.T, cfg Config, engine raster.Engine) *Manager {
	t.Helper()
	opts := []Option{WithFS(fx.fs), WithBackend(fx.backend)}
	if engine != nil {
		opts = append(opts, WithEngine(engine))
	}
	m, err := NewManager(cfg, opts...)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}
