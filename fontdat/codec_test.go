package fontdat

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayoutSizes(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		record int
		size   int
	}{
		{"extended", LayoutExtended, 112, 28740},
		{"legacy", LayoutLegacy, 80, 20548},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.RecordSize(); got != tt.record {
				t.Errorf("RecordSize() = %d, want %d", got, tt.record)
			}
			if got := tt.layout.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
		})
	}
	if ExpectedSize() != LayoutExtended.Size() {
		t.Errorf("ExpectedSize() = %d, want %d", ExpectedSize(), LayoutExtended.Size())
	}
}

func TestReaderByteOrder(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x3f}, nil)
		if got := r.ReadInt32(); got != 1 {
			t.Errorf("ReadInt32() = %d, want 1", got)
		}
		if got := r.ReadFloat32(); got != 1.0 {
			t.Errorf("ReadFloat32() = %v, want 1", got)
		}
		if r.Offset() != 8 {
			t.Errorf("Offset() = %d, want 8", r.Offset())
		}
	})

	t.Run("big endian", func(t *testing.T) {
		r := NewReader([]byte{0xff, 0xff, 0xff, 0xfe, 0x3f, 0x80, 0x00, 0x00}, binary.BigEndian)
		if got := r.ReadInt32(); got != -2 {
			t.Errorf("ReadInt32() = %d, want -2", got)
		}
		if got := r.ReadFloat32(); got != 1.0 {
			t.Errorf("ReadFloat32() = %v, want 1", got)
		}
	})
}

func TestWriterString(t *testing.T) {
	w := NewWriter(0, nil)
	w.WriteString("abcdef", 4)
	w.WriteString("x", 4)
	want := []byte{'a', 'b', 'c', 0, 'x', 0, 0, 0}
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}

	r := NewReader(w.Bytes(), nil)
	if got := r.ReadString(4); got != "abc" {
		t.Errorf("ReadString() = %q, want %q", got, "abc")
	}
	if got := r.ReadString(4); got != "x" {
		t.Errorf("ReadString() = %q, want %q", got, "x")
	}
}

func TestWriterFloatBits(t *testing.T) {
	w := NewWriter(8, binary.BigEndian)
	w.WriteFloat32(float32(math.Inf(-1)))
	w.WriteInt32(math.MinInt32)
	r := NewReader(w.Bytes(), binary.BigEndian)
	if got := r.ReadFloat32(); !math.IsInf(float64(got), -1) {
		t.Errorf("ReadFloat32() = %v, want -Inf", got)
	}
	if got := r.ReadInt32(); got != math.MinInt32 {
		t.Errorf("ReadInt32() = %d, want %d", got, int32(math.MinInt32))
	}
}

func sampleFile() *File {
	f := &File{Scale: 4, Name: "fonts2/notosans_12.dat"}
	for i := range f.Glyphs {
		f.Glyphs[i] = Glyph{
			Height:      int32(i % 17),
			Top:         int32(i % 13),
			Bottom:      -int32(i % 3),
			Pitch:       int32((i%9 + 3) &^ 3),
			XSkip:       int32(i%11 + 1),
			ImageWidth:  int32((i%9 + 3) &^ 3),
			ImageHeight: int32(i % 17),
			S:           float32(i%16) / 16,
			T:           float32(i/16) / 16,
			S2:          float32(i%16+1) / 16,
			T2:          float32(i/16+1) / 16,
			Handle:      int32(i / 64),
			ShaderName:  "fonts2/notosans_0_12.tga",
		}
	}
	return f
}

func TestEncodeDecode(t *testing.T) {
	f := sampleFile()
	data := Encode(f)
	if len(data) != ExpectedSize() {
		t.Fatalf("len(Encode()) = %d, want %d", len(data), ExpectedSize())
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Errorf("Decode(Encode()) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsLength(t *testing.T) {
	data := Encode(sampleFile())
	for _, n := range []int{0, len(data) - 1, len(data) + 1, LayoutLegacy.Size() + 1} {
		buf := make([]byte, n)
		copy(buf, data)
		_, err := Decode(buf)
		if !errors.Is(err, ErrFormatMismatch) {
			t.Errorf("Decode(len %d) error = %v, want ErrFormatMismatch", n, err)
		}
		var se *SizeError
		if !errors.As(err, &se) || se.Got != n {
			t.Errorf("Decode(len %d) error = %#v, want *SizeError{Got: %d}", n, err, n)
		}
	}
}

func TestDecodeLegacy(t *testing.T) {
	w := NewWriter(LayoutLegacy.Size(), nil)
	for i := 0; i < GlyphCount; i++ {
		w.WriteInt32(16)
		w.WriteInt32(16)
		w.WriteInt32(0)
		w.WriteInt32(16)
		w.WriteInt32(16)
		w.WriteInt32(16)
		w.WriteInt32(16)
		w.WriteFloat32(0.25)
		w.WriteFloat32(0.5)
		w.WriteFloat32(0.3125)
		w.WriteFloat32(0.5625)
		w.WriteInt32(0)
		w.WriteString("fonts/fontImage_0_12.tga", LayoutLegacy.ShaderNameSize)
	}
	w.WriteFloat32(2)
	w.WriteString("fonts/fontImage_12.dat", NameSize)

	f, err := Decode(w.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := Glyph{
		Height: 16, Top: 16, Pitch: 16, XSkip: 16, ImageWidth: 16, ImageHeight: 16,
		S: 0.25, T: 0.5, S2: 0.3125, T2: 0.5625,
		ShaderName: "fonts/fontImage_0_12.tga",
	}
	if diff := cmp.Diff(want, f.Glyphs[255]); diff != "" {
		t.Errorf("Glyphs[255] mismatch (-want +got):\n%s", diff)
	}
	if f.Scale != 2 || f.Name != "fonts/fontImage_12.dat" {
		t.Errorf("trailer = (%v, %q)", f.Scale, f.Name)
	}
}
