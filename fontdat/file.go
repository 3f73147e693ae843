package fontdat

// GlyphCount is the number of records in a base glyph table.
const GlyphCount = 256

// NameSize is the size of the trailing font name field.
const NameSize = 64

// Glyph is one rasterized glyph: metrics, placement on its atlas page and
// the texture it lives in.
type Glyph struct {
	Height      int32
	Top         int32
	Bottom      int32
	Pitch       int32
	XSkip       int32
	ImageWidth  int32
	ImageHeight int32

	S, T, S2, T2 float32

	// Handle is the texture handle of the page. It is persisted as a
	// placeholder and resolved again from ShaderName on load.
	Handle int32

	ShaderName string
}

// Layout describes the width of the shader name field of a record.
type Layout struct {
	ShaderNameSize int
}

var (
	// LayoutExtended is the current layout.
	LayoutExtended = Layout{ShaderNameSize: 64}

	// LayoutLegacy is the fontImage_<pt>.dat layout.
	LayoutLegacy = Layout{ShaderNameSize: 32}
)

// RecordSize returns the size in bytes of one glyph record.
func (l Layout) RecordSize() int {
	return 12*4 + l.ShaderNameSize
}

// Size returns the exact size in bytes of a file in this layout.
func (l Layout) Size() int {
	return GlyphCount*l.RecordSize() + 4 + NameSize
}

// File is a decoded glyph table.
type File struct {
	Glyphs [GlyphCount]Glyph
	Scale  float32
	Name   string
}

// ExpectedSize returns the length of files written by Encode.
func ExpectedSize() int { return LayoutExtended.Size() }

// Detect returns the layout whose size equals n.
func Detect(n int) (Layout, bool) {
	switch n {
	case LayoutExtended.Size():
		return LayoutExtended, true
	case LayoutLegacy.Size():
		return LayoutLegacy, true
	}
	return Layout{}, false
}

// Decode parses a glyph table. Data of any length other than a known
// layout size is rejected before any field is read.
func Decode(data []byte) (*File, error) {
	layout, ok := Detect(len(data))
	if !ok {
		return nil, &SizeError{Got: len(data), Want: []int{LayoutExtended.Size(), LayoutLegacy.Size()}}
	}
	return decode(data, layout), nil
}

func decode(data []byte, layout Layout) *File {
	r := NewReader(data, nil)
	f := &File{}
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		g.Height = r.ReadInt32()
		g.Top = r.ReadInt32()
		g.Bottom = r.ReadInt32()
		g.Pitch = r.ReadInt32()
		g.XSkip = r.ReadInt32()
		g.ImageWidth = r.ReadInt32()
		g.ImageHeight = r.ReadInt32()
		g.S = r.ReadFloat32()
		g.T = r.ReadFloat32()
		g.S2 = r.ReadFloat32()
		g.T2 = r.ReadFloat32()
		g.Handle = r.ReadInt32()
		g.ShaderName = r.ReadString(layout.ShaderNameSize)
	}
	f.Scale = r.ReadFloat32()
	f.Name = r.ReadString(NameSize)
	return f
}

// Encode serializes f in the extended layout.
func Encode(f *File) []byte {
	layout := LayoutExtended
	w := NewWriter(layout.Size(), nil)
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		w.WriteInt32(g.Height)
		w.WriteInt32(g.Top)
		w.WriteInt32(g.Bottom)
		w.WriteInt32(g.Pitch)
		w.WriteInt32(g.XSkip)
		w.WriteInt32(g.ImageWidth)
		w.WriteInt32(g.ImageHeight)
		w.WriteFloat32(g.S)
		w.WriteFloat32(g.T)
		w.WriteFloat32(g.S2)
		w.WriteFloat32(g.T2)
		w.WriteInt32(g.Handle)
		w.WriteString(g.ShaderName, layout.ShaderNameSize)
	}
	w.WriteFloat32(f.Scale)
	w.WriteString(f.Name, NameSize)
	return w.Bytes()
}
