// Package fontdat reads and writes the fixed-layout binary glyph table
// persisted for a registered font.
//
// A file holds exactly [GlyphCount] glyph records followed by the glyph
// scale and the font name. The format is not self-describing: a file is
// accepted only when its length matches one of the known layouts exactly.
//
//	record := {height, top, bottom, pitch, xSkip, imageWidth, imageHeight: int32
//	           s, t, s2, t2: float32
//	           handle: int32
//	           shaderName: [N]byte}
//
// [LayoutExtended] (N = 64) is written by this package. [LayoutLegacy]
// (N = 32) is the older fontImage_<pt>.dat format and is read only.
package fontdat
