package atlas

// RGBA converts the page into an RGBA8 upload buffer: white color with the
// coverage, stretched to the full 0..255 range, as alpha.
func (p *Page) RGBA() []byte {
	return GrayToRGBA(p.pix)
}

// GrayToRGBA expands coverage bytes to white RGBA pixels. Coverage is
// scaled so the largest value becomes 255.
func GrayToRGBA(gray []byte) []byte {
	var peak byte
	for _, v := range gray {
		peak = max(peak, v)
	}
	var scale float32
	if peak > 0 {
		scale = 255 / float32(peak)
	}

	out := make([]byte, len(gray)*4)
	for i, v := range gray {
		o := out[i*4 : i*4+4 : i*4+4]
		o[0], o[1], o[2] = 0xff, 0xff, 0xff
		o[3] = byte(float32(v) * scale)
	}
	return out
}
