package raster

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/fontcache/atlas"
)

// Glyph is a rendered glyph and its pixel metrics.
type Glyph struct {
	Bitmap atlas.Bitmap

	Height int // bitmap rows
	Top    int // truncated ascent above the baseline, plus one
	Bottom int // lowest bitmap row relative to the baseline, negative below it
	Pitch  int // columns the bitmap occupies on a page
	XSkip  int // truncated advance, plus one
}

// Face is an opened font at a given size. A Face owns the font data it
// was opened with until Close.
type Face interface {
	// Name returns the name the face was opened under.
	Name() string

	// GlyphIndex returns the glyph for r, or 0 if the face has none.
	GlyphIndex(r rune) uint32

	// SetSize sets the nominal size in points at 72 DPI.
	SetSize(pointSize int) error

	// Render rasterizes r at the current size. Runes without a glyph
	// render the face's missing-glyph box.
	Render(r rune) (*Glyph, error)

	Close() error
}

// Engine opens faces from raw font data.
type Engine interface {
	Name() string

	// Open parses data. The face keeps its own copy of data.
	Open(name string, data []byte) (Face, error)
}

// Engine names.
const (
	EngineXImage = "ximage"
	EngineGoText = "gotext"
)

var engines = gpucontext.NewRegistry[Engine](
	gpucontext.WithPriority(EngineXImage, EngineGoText),
)

func init() {
	Register(EngineXImage, func() Engine { return XImage{} })
	Register(EngineGoText, func() Engine { return GoText{} })
}

// Register makes an engine available under name, replacing any engine
// registered before under the same name.
func Register(name string, factory func() Engine) {
	engines.Register(name, factory)
}

// Lookup returns the engine registered under name. An empty name selects
// the preferred engine.
func Lookup(name string) (Engine, error) {
	if name == "" {
		if e := engines.Best(); e != nil {
			return e, nil
		}
		return nil, ErrUnknownEngine
	}
	if !engines.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return engines.Get(name), nil
}

// Engines returns the names of all registered engines.
func Engines() []string {
	return engines.Available()
}

func ownedCopy(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}
