// Package atlas packs rasterized glyph bitmaps into fixed-size square
// grayscale pages.
//
// A [Page] places bitmaps left to right on horizontal shelves separated by
// one pixel of padding. When a bitmap no longer fits horizontally the page
// starts a new shelf below the current one; when the new shelf would run
// past the bottom edge, [Page.Place] reports [ErrPageFull] and writes
// nothing. The caller flushes the page (converts it with [Page.RGBA] and
// registers it as a texture), calls [Page.Clear] and retries.
//
// Packing a font is done in two passes: [Page.Measure] is called for every
// glyph first so the shelf height is the tallest glyph of the set, then the
// glyphs are placed.
package atlas
