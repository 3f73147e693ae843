// Package texture registers glyph pages as textures and hands out small
// integer handles for them.
//
// A [Registry] deduplicates pages by name: registering a name twice
// returns the handle of the first registration. Pixel storage is delegated
// to a gpucontext.TextureCreator, either the CPU [MemoryCreator] or, in
// builds without the nogpu tag, a wgpu device through [NewWGPUCreator].
package texture
