package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontcache/atlas"
)

// XImage renders glyphs with golang.org/x/image/font/opentype.
type XImage struct{}

// Name implements Engine.
func (XImage) Name() string { return EngineXImage }

// Open implements Engine.
func (XImage) Open(name string, data []byte) (Face, error) {
	buf, err := ownedCopy(data)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to parse %q: %w", name, err)
	}
	return &ximageFace{name: name, data: buf, font: f}, nil
}

type ximageFace struct {
	name string
	data []byte
	font *opentype.Font
	buf  sfnt.Buffer

	size   int
	face   font.Face
	closed bool
}

func (f *ximageFace) Name() string { return f.name }

func (f *ximageFace) GlyphIndex(r rune) uint32 {
	if f.closed {
		return 0
	}
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint32(idx)
}

func (f *ximageFace) SetSize(pointSize int) error {
	if f.closed {
		return ErrFaceClosed
	}
	if pointSize <= 0 {
		return ErrInvalidSize
	}
	if f.face != nil && f.size == pointSize {
		return nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(pointSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("raster: failed to size %q: %w", f.name, err)
	}
	if f.face != nil {
		_ = f.face.Close()
	}
	f.face, f.size = face, pointSize
	return nil
}

func (f *ximageFace) Render(r rune) (*Glyph, error) {
	if f.closed {
		return nil, ErrFaceClosed
	}
	if f.face == nil {
		return nil, ErrNoSize
	}

	bounds, advance, ok := f.face.GlyphBounds(r)
	if !ok {
		return nil, fmt.Errorf("raster: no bounds for %U in %q", r, f.name)
	}
	bx := snap(bounds)

	mask := image.NewAlpha(image.Rect(0, 0, bx.pitch, bx.height))
	if bx.width > 0 && bx.height > 0 {
		d := &font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: f.face,
			Dot:  fixed.P(-bx.left, bx.top),
		}
		d.DrawString(string(r))
	}

	g := &Glyph{Bitmap: atlas.Bitmap{
		Width: bx.width,
		Rows:  bx.height,
		Pitch: bx.pitch,
		Mode:  atlas.Gray,
		Pix:   mask.Pix,
	}}
	glyphMetrics(g, bounds, bx, advance)
	return g, nil
}

func (f *ximageFace) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	var err error
	if f.face != nil {
		err = f.face.Close()
		f.face = nil
	}
	f.font, f.data = nil, nil
	return err
}
