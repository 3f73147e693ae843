package texture

import "github.com/gogpu/gpucontext"

// MemoryCreator keeps textures in CPU memory.
type MemoryCreator struct{}

// NewTextureFromRGBA implements gpucontext.TextureCreator.
func (MemoryCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if width <= 0 || height <= 0 || len(data) != width*height*4 {
		return nil, ErrSizeMismatch
	}
	pix := make([]byte, len(data))
	copy(pix, data)
	return &MemoryTexture{width: width, height: height, Pix: pix}, nil
}

// MemoryTexture is an RGBA8 texture held in memory.
type MemoryTexture struct {
	width, height int

	// Pix holds the pixels, 4 bytes per pixel, top row first.
	Pix []byte
}

// Width implements gpucontext.Texture.
func (t *MemoryTexture) Width() int { return t.width }

// Height implements gpucontext.Texture.
func (t *MemoryTexture) Height() int { return t.height }

// UpdateData implements gpucontext.TextureUpdater.
func (t *MemoryTexture) UpdateData(data []byte) error {
	if len(data) != len(t.Pix) {
		return ErrSizeMismatch
	}
	copy(t.Pix, data)
	return nil
}

var (
	_ gpucontext.TextureCreator = MemoryCreator{}
	_ gpucontext.TextureUpdater = (*MemoryTexture)(nil)
)
