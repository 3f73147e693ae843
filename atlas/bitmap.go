package atlas

// PixelMode is the pixel encoding of a Bitmap.
type PixelMode uint8

const (
	// Gray stores one coverage byte per pixel.
	Gray PixelMode = iota

	// Mono stores one bit per pixel, most significant bit first.
	Mono
)

// String returns the mode name.
func (m PixelMode) String() string {
	switch m {
	case Gray:
		return "gray"
	case Mono:
		return "mono"
	default:
		return "unknown"
	}
}

// Bitmap is a rasterized glyph image.
type Bitmap struct {
	Width int
	Rows  int

	// Pitch is the number of bytes per source row.
	Pitch int

	Mode PixelMode
	Pix  []byte
}

// PlacedWidth returns the number of page columns the bitmap occupies.
// Gray bitmaps reserve their full pitch, mono bitmaps their pixel width.
func (b *Bitmap) PlacedWidth() int {
	if b.Mode == Mono {
		return b.Width
	}
	return b.Pitch
}

func (b *Bitmap) valid() bool {
	if b.Width < 0 || b.Rows < 0 || b.Pitch < 0 {
		return false
	}
	if b.Mode == Mono && b.Pitch*8 < b.Width {
		return false
	}
	return len(b.Pix) >= b.Pitch*b.Rows
}
