package atlas

// PageSize is the width and height of a glyph page in pixels.
const PageSize = 256

// padding between neighbouring glyphs and shelves.
const padding = 1

// Region describes where a bitmap was placed on a page.
type Region struct {
	// Pixel coordinates on the page.
	X, Y, Width, Height int

	// Normalized texture coordinates.
	S, T, S2, T2 float32
}

// Page is a square grayscale working buffer plus shelf packing state.
type Page struct {
	size int
	pix  []byte

	x         int // next free column on the current shelf
	y         int // top of the current shelf
	rowHeight int // height of every shelf not yet started

	placed int
}

// NewPage allocates a zeroed size x size page. A size <= 0 means PageSize.
func NewPage(size int) *Page {
	if size <= 0 {
		size = PageSize
	}
	return &Page{
		size: size,
		pix:  make([]byte, size*size),
	}
}

// Size returns the page width and height.
func (p *Page) Size() int { return p.size }

// Pix returns the page pixels, one byte per pixel, row-major.
func (p *Page) Pix() []byte { return p.pix }

// RowHeight returns the current shelf height.
func (p *Page) RowHeight() int { return p.rowHeight }

// Placed returns the number of bitmaps placed since the last Clear.
func (p *Page) Placed() int { return p.placed }

// Empty reports whether nothing was placed since the last Clear.
func (p *Page) Empty() bool { return p.placed == 0 }

// Measure grows the shelf height to at least rows without placing
// anything. It is the capacity pre-scan of the first packing pass.
func (p *Page) Measure(rows int) {
	if rows > p.rowHeight {
		p.rowHeight = rows
	}
}

// Place copies b onto the page at the packing cursor and advances it.
//
// The shelf height grows to b.Rows before the fit test, but shelves that
// were already started keep their height. If the bitmap does not fit on
// the rest of the page, Place returns ErrPageFull without modifying the
// page. If it could not fit even on an empty page, Place returns
// ErrGlyphTooLarge.
func (p *Page) Place(b *Bitmap) (Region, error) {
	if !b.valid() {
		return Region{}, ErrInvalidBitmap
	}
	w, h := b.PlacedWidth(), b.Rows
	rowHeight := max(p.rowHeight, h)
	if w+padding >= p.size || rowHeight+padding >= p.size {
		return Region{}, ErrGlyphTooLarge
	}

	x, y := p.x, p.y
	if x+w+padding >= p.size {
		x = 0
		y += rowHeight + padding
	}
	if y+rowHeight+padding >= p.size {
		return Region{}, ErrPageFull
	}
	if h > 0 && (y+h-1)*p.size+x+w > len(p.pix) {
		return Region{}, ErrPageFull
	}

	p.rowHeight = rowHeight
	p.copyBitmap(b, x, y)

	p.x, p.y = x+w+padding, y
	p.placed++

	size := float32(p.size)
	r := Region{X: x, Y: y, Width: w, Height: h}
	r.S = float32(x) / size
	r.T = float32(y) / size
	r.S2 = r.S + float32(w)/size
	r.T2 = r.T + float32(h)/size
	return r, nil
}

func (p *Page) copyBitmap(b *Bitmap, x, y int) {
	for row := 0; row < b.Rows; row++ {
		src := b.Pix[row*b.Pitch : (row+1)*b.Pitch]
		dst := p.pix[(y+row)*p.size+x:]
		if b.Mode == Mono {
			for col := 0; col < b.Width; col++ {
				if src[col>>3]&(0x80>>(col&7)) != 0 {
					dst[col] = 0xff
				}
			}
			continue
		}
		copy(dst[:b.Pitch], src)
	}
}

// Clear zeroes the pixels and resets the packing cursor. The shelf height
// measured so far is kept.
func (p *Page) Clear() {
	clear(p.pix)
	p.x, p.y = 0, 0
	p.placed = 0
}

// Reset clears the page and forgets the measured shelf height.
func (p *Page) Reset() {
	p.Clear()
	p.rowHeight = 0
}

// Utilization returns the fraction of page rows in use (0.0 to 1.0).
func (p *Page) Utilization() float64 {
	if p.placed == 0 {
		return 0
	}
	used := p.y + p.rowHeight
	return min(float64(used)/float64(p.size), 1)
}
