package fontcache

import (
	"path"

	"github.com/gogpu/fontcache/raster"
	"github.com/gogpu/fontcache/texture"
	"github.com/gogpu/fontcache/vfs"
)

// Config holds Manager settings.
type Config struct {
	// FontsDir is the directory of persisted glyph tables and page images.
	FontsDir string

	// DefaultFace is opened when a requested face cannot be found.
	DefaultFace string

	// MaxFonts bounds the number of registered fonts.
	MaxFonts int

	// SaveFontData writes the glyph table and page images of every
	// rasterized font to FontsDir.
	SaveFontData bool

	// EngineFallbacks, PlatformFallbacks and UnicodeFallbacks enable the
	// default fallback groups. FallbackFonts lists additional fallback
	// font files, tried after the engine group.
	EngineFallbacks   bool
	PlatformFallbacks bool
	UnicodeFallbacks  bool
	FallbackFonts     []string

	// DebugLevel enables diagnostic logging at debug severity:
	// 2 logs registrations and fallback walks, 3 logs every created glyph.
	DebugLevel int

	// Engine names the rasterizer, see raster.Engines. Empty selects the
	// preferred engine.
	Engine string
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		FontsDir:          "fonts2",
		DefaultFace:       "fonts/handelgothic.ttf",
		MaxFonts:          64,
		EngineFallbacks:   true,
		PlatformFallbacks: true,
		UnicodeFallbacks:  true,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.FontsDir == "" || path.IsAbs(c.FontsDir) {
		return &ConfigError{Field: "FontsDir", Reason: "must be a relative path"}
	}
	if c.DefaultFace == "" {
		return &ConfigError{Field: "DefaultFace", Reason: "must not be empty"}
	}
	if c.MaxFonts < 1 {
		return &ConfigError{Field: "MaxFonts", Reason: "must be at least 1"}
	}
	if c.DebugLevel < 0 || c.DebugLevel > 3 {
		return &ConfigError{Field: "DebugLevel", Reason: "must be between 0 and 3"}
	}
	return nil
}

// Option configures the collaborators of a Manager.
type Option func(*options)

type options struct {
	backend texture.Backend
	fs      vfs.FS
	engine  raster.Engine
}

// WithBackend sets the texture backend pages are registered with.
// The default is a texture.Registry over in-memory textures.
func WithBackend(b texture.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithFS sets the file system fonts and cache files are read from.
// The default is an empty vfs.Mem.
func WithFS(fsys vfs.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEngine sets the rasterizer, overriding Config.Engine.
func WithEngine(e raster.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}
