package raster

import "golang.org/x/image/math/fixed"

// box is the pixel-snapped bitmap box of a glyph.
type box struct {
	left   int // leftmost column relative to the origin
	top    int // topmost row above the baseline
	bottom int // bottom edge relative to the baseline, y up
	width  int
	height int
	pitch  int
}

// snap computes the bitmap box of a glyph from its bounds. Bounds use the
// y-down convention of golang.org/x/image: Min.Y is minus the ascent.
func snap(b fixed.Rectangle26_6) box {
	left := b.Min.X.Floor()
	right := b.Max.X.Ceil()
	top := (-b.Min.Y).Ceil()
	bottom := (-b.Max.Y).Floor()

	bx := box{left: left, top: top, bottom: bottom}
	bx.width = max(right-left, 0)
	bx.height = max(top-bottom, 0)
	bx.pitch = (bx.width + 3) &^ 3
	return bx
}

// glyphMetrics fills the table metrics of g for box bx.
func glyphMetrics(g *Glyph, b fixed.Rectangle26_6, bx box, advance fixed.Int26_6) {
	g.Height = bx.height
	g.Top = (-b.Min.Y).Floor() + 1
	g.Bottom = bx.bottom
	g.Pitch = g.Bitmap.PlacedWidth()
	g.XSkip = advance.Floor() + 1
}
