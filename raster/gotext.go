package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/fontcache/atlas"
)

// GoText reads glyph outlines with go-text/typesetting and fills them with
// golang.org/x/image/vector.
type GoText struct {
	// Monochrome produces 1-bit bitmaps instead of coverage.
	Monochrome bool
}

// Name implements Engine.
func (GoText) Name() string { return EngineGoText }

// Open implements Engine.
func (e GoText) Open(name string, data []byte) (Face, error) {
	buf, err := ownedCopy(data)
	if err != nil {
		return nil, err
	}
	face, err := font.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("raster: failed to parse %q: %w", name, err)
	}
	return &gotextFace{name: name, data: buf, face: face, mono: e.Monochrome}, nil
}

type gotextFace struct {
	name string
	data []byte
	face *font.Face
	mono bool

	size   int
	closed bool
}

func (f *gotextFace) Name() string { return f.name }

func (f *gotextFace) GlyphIndex(r rune) uint32 {
	if f.closed {
		return 0
	}
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint32(gid)
}

func (f *gotextFace) SetSize(pointSize int) error {
	if f.closed {
		return ErrFaceClosed
	}
	if pointSize <= 0 {
		return ErrInvalidSize
	}
	f.size = pointSize
	return nil
}

func (f *gotextFace) Render(r rune) (*Glyph, error) {
	if f.closed {
		return nil, ErrFaceClosed
	}
	if f.size == 0 {
		return nil, ErrNoSize
	}

	gid, _ := f.face.NominalGlyph(r)
	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("%w: %U in %q", ErrUnsupportedGlyph, r, f.name)
	}
	scale := float32(f.size) / float32(f.face.Upem())
	advance := floatToFixed(f.face.HorizontalAdvance(gid) * scale)

	bounds := outlineBounds(outline.Segments, scale)
	bx := snap(bounds)

	mask := image.NewAlpha(image.Rect(0, 0, bx.pitch, bx.height))
	if bx.width > 0 && bx.height > 0 {
		fill(mask, outline.Segments, scale, float32(bx.left), float32(bx.top))
	}

	g := &Glyph{Bitmap: atlas.Bitmap{
		Width: bx.width,
		Rows:  bx.height,
		Pitch: bx.pitch,
		Mode:  atlas.Gray,
		Pix:   mask.Pix,
	}}
	if f.mono {
		g.Bitmap = threshold(mask, bx.width, bx.height)
	}
	glyphMetrics(g, bounds, bx, advance)
	return g, nil
}

func (f *gotextFace) Close() error {
	f.closed = true
	f.face, f.data = nil, nil
	return nil
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

// outlineBounds returns the scaled control box of segments, y down.
func outlineBounds(segments []ot.Segment, scale float32) fixed.Rectangle26_6 {
	if len(segments) == 0 {
		return fixed.Rectangle26_6{}
	}
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for i := range segments {
		for _, p := range segments[i].ArgsSlice() {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: floatToFixed(minX * scale), Y: floatToFixed(-maxY * scale)},
		Max: fixed.Point26_6{X: floatToFixed(maxX * scale), Y: floatToFixed(-minY * scale)},
	}
}

// fill rasterizes segments into dst with the glyph origin at
// (-left, top) in bitmap space.
func fill(dst *image.Alpha, segments []ot.Segment, scale, left, top float32) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return p.X*scale - left, top - p.Y*scale
	}
	open := false
	for i := range segments {
		s := &segments[i]
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(s.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}
	z.DrawOp = draw.Src
	z.Draw(dst, b, image.Opaque, image.Point{})
}

// threshold converts coverage to a 1-bit bitmap, MSB first.
func threshold(mask *image.Alpha, width, height int) atlas.Bitmap {
	pitch := (width + 7) >> 3
	pix := make([]byte, pitch*height)
	for y := 0; y < height; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < width; x++ {
			if row[x] >= 0x80 {
				pix[y*pitch+(x>>3)] |= 0x80 >> (x & 7)
			}
		}
	}
	return atlas.Bitmap{Width: width, Rows: height, Pitch: pitch, Mode: atlas.Mono, Pix: pix}
}
