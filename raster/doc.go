// Package raster turns font glyphs into coverage bitmaps for the atlas
// packer.
//
// An [Engine] parses raw font data into a [Face]. Two engines are
// registered by default:
//
//   - "ximage" renders with golang.org/x/image/font/opentype (preferred).
//   - "gotext" reads outlines with github.com/go-text/typesetting and fills
//     them with golang.org/x/image/vector. It can also produce 1-bit
//     monochrome bitmaps.
//
// Glyph metrics follow the pixel-grid rules of the glyph table: the bitmap
// box is the outline bounds snapped outwards to whole pixels, its pitch is
// rounded up to a multiple of four, and Top and XSkip are the truncated
// bearing and advance plus one.
package raster
