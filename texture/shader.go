package texture

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed glyph.wgsl
var glyphShader string

// GlyphShaderSource returns the WGSL source of the glyph quad shader.
// Entry points are vs_main and fs_main; the page texture is bound at
// group 0 binding 0 and its sampler at binding 1.
func GlyphShaderSource() string { return glyphShader }

// CompileGlyphShader compiles the glyph shader to SPIR-V words.
func CompileGlyphShader() ([]uint32, error) {
	spirv, err := naga.Compile(glyphShader)
	if err != nil {
		return nil, fmt.Errorf("texture: failed to compile glyph shader: %w", err)
	}
	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = uint32(spirv[i*4]) |
			uint32(spirv[i*4+1])<<8 |
			uint32(spirv[i*4+2])<<16 |
			uint32(spirv[i*4+3])<<24
	}
	return words, nil
}
