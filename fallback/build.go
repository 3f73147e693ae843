package fallback

import (
	"log/slog"
	"path"

	"github.com/gogpu/fontcache/raster"
)

// Default candidate lists, in chain order within each group.
var (
	EngineFonts = []string{
		"fonts/notosans-regular.ttf",
		"fonts/droidsansfallbackfull.ttf",
	}

	PlatformFonts = []string{
		"l_10646.ttf",
		"segoeui.ttf",
		"arialuni.ttf",
	}

	UnicodeFonts = []string{
		"wcfonts/unifont_csur-8.0.01.ttf",
		"wcfonts/unifont_upper_csur-8.0.01.ttf",
	}
)

// Config selects the candidate groups of a chain.
type Config struct {
	// Engine adds EngineFonts.
	Engine bool

	// Operator lists additional font files, added after the engine fonts.
	Operator []string

	// Platform adds PlatformFonts found under fonts/ or in the system font
	// directories.
	Platform bool

	// Unicode adds UnicodeFonts.
	Unicode bool
}

// Source opens candidate faces.
type Source interface {
	// Exists reports whether a packaged or local file exists.
	Exists(name string) bool

	// Open opens a packaged or local font file.
	Open(name string) (raster.Face, error)

	// OpenSystem opens a font file from the platform font directories.
	OpenSystem(name string) (raster.Face, error)
}

// Build opens the configured candidates and returns the chain. Candidates
// that fail to open are logged and skipped.
func Build(src Source, cfg Config, log *slog.Logger) *Chain {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := New()
	add := func(name string, open func(string) (raster.Face, error)) {
		face, err := open(name)
		if err != nil {
			log.Warn("fallback: skipping font", "name", name, "err", err)
			return
		}
		c.Add(name, face)
		log.Info("fallback: using font", "name", name, "position", c.Len())
	}

	if cfg.Engine {
		for _, name := range EngineFonts {
			add(name, src.Open)
		}
	}
	for _, name := range cfg.Operator {
		if name == "" {
			continue
		}
		add(name, src.Open)
	}
	if cfg.Platform {
		for _, name := range PlatformFonts {
			local := path.Join("fonts", name)
			if src.Exists(local) {
				add(local, src.Open)
				continue
			}
			if face, err := src.OpenSystem(name); err == nil {
				c.Add(name, face)
				log.Info("fallback: using system font", "name", name, "position", c.Len())
			} else {
				log.Debug("fallback: platform font not found", "name", name)
			}
		}
	}
	if cfg.Unicode {
		for _, name := range UnicodeFonts {
			add(name, src.Open)
		}
	}
	return c
}
