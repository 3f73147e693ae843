package fontcache

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/gogpu/fontcache/fallback"
	"github.com/gogpu/fontcache/raster"
	"github.com/gogpu/fontcache/texture"
	"github.com/gogpu/fontcache/vfs"
)

// Stats counts the work done by a Manager.
type Stats struct {
	// Rasterized is the number of glyphs rendered by the rasterizer.
	Rasterized int

	// Pages is the number of atlas pages registered with the backend.
	Pages int

	// ExtraHits and ExtraMisses count lookups of glyphs outside the base
	// tables.
	ExtraHits   int
	ExtraMisses int
}

// FontInfo describes a registered font.
type FontInfo struct {
	Index        int
	Name         string
	RegisterName string
	PointSize    int
	ExtraGlyphs  int
}

// Manager registers fonts and resolves their glyphs.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	cfg     Config
	fs      vfs.FS
	backend texture.Backend
	engine  raster.Engine

	// owned is the backend created by NewManager, closed with the manager.
	owned *texture.Registry

	fonts *registry
	chain *fallback.Chain
	stats Stats

	closed bool
}

// NewManager validates cfg and builds the fallback chain.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.FallbackFonts = slices.Clone(cfg.FallbackFonts)

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	m := &Manager{
		cfg:     cfg,
		fs:      o.fs,
		backend: o.backend,
		engine:  o.engine,
		fonts:   newRegistry(cfg.MaxFonts),
	}
	if m.fs == nil {
		m.fs = vfs.NewMem()
	}
	if m.backend == nil {
		m.owned = texture.NewRegistry(nil)
		m.backend = m.owned
	}
	if m.engine == nil {
		e, err := raster.Lookup(cfg.Engine)
		if err != nil {
			return nil, fmt.Errorf("fontcache: %w", err)
		}
		m.engine = e
	}

	m.chain = fallback.Build(faceSource{m}, fallback.Config{
		Engine:   cfg.EngineFallbacks,
		Operator: cfg.FallbackFonts,
		Platform: cfg.PlatformFallbacks,
		Unicode:  cfg.UnicodeFallbacks,
	}, Logger())
	return m, nil
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config { return m.cfg }

// Font returns the font with the given ID.
func (m *Manager) Font(id int) (*Font, bool) {
	return m.fonts.get(id)
}

// Fonts returns all registered fonts in registration order.
func (m *Manager) Fonts() []*Font {
	return m.fonts.all()
}

// FontList describes the registered fonts.
func (m *Manager) FontList() []FontInfo {
	list := make([]FontInfo, 0, m.fonts.len())
	for _, f := range m.fonts.fonts {
		list = append(list, FontInfo{
			Index:        f.ID,
			Name:         f.Name,
			RegisterName: f.RegisterName,
			PointSize:    f.PointSize,
			ExtraGlyphs:  f.ExtraGlyphs(),
		})
	}
	return list
}

// Fallbacks returns the names of the fallback fonts in lookup order.
func (m *Manager) Fallbacks() []string {
	return m.chain.Names()
}

// Stats returns the work counters.
func (m *Manager) Stats() Stats { return m.stats }

// Close releases every font, the fallback chain and the default texture
// backend. The manager cannot be used afterwards.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	err := errors.Join(m.fonts.close(), m.chain.Close())
	if m.owned != nil {
		m.owned.Close()
	}
	return err
}

// debug logs at debug severity when DebugLevel is at least level.
func (m *Manager) debug(level int, msg string, args ...any) {
	if m.cfg.DebugLevel >= level {
		Logger().Debug(msg, args...)
	}
}

// openFace opens name from a packaged archive, the file system, or the
// platform font directories, in that order.
func (m *Manager) openFace(name string) (raster.Face, error) {
	if _, ok := m.fs.InPak(name); ok || m.fs.Exists(name) {
		data, err := m.fs.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return m.engine.Open(name, data)
	}
	return m.openSystemFace(name)
}

func (m *Manager) openSystemFace(name string) (raster.Face, error) {
	file, err := m.fs.FindSystemFile(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return m.engine.Open(name, data)
}

// openDefaultFace opens the default face, preferring an installed copy.
func (m *Manager) openDefaultFace() (raster.Face, error) {
	name := m.cfg.DefaultFace
	if face, err := m.openSystemFace(name); err == nil {
		return face, nil
	}
	data, err := m.fs.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return m.engine.Open(name, data)
}

// faceSource opens fallback candidates for fallback.Build.
type faceSource struct{ m *Manager }

func (s faceSource) Exists(name string) bool { return s.m.fs.Exists(name) }

func (s faceSource) Open(name string) (raster.Face, error) { return s.m.openFace(name) }

func (s faceSource) OpenSystem(name string) (raster.Face, error) {
	return s.m.openSystemFace(name)
}
