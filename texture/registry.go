package texture

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Handle identifies a registered texture. The zero Handle is no texture.
type Handle int32

// Backend registers RGBA8 pixel buffers under a name.
type Backend interface {
	// Register uploads rgba (width*height*4 bytes) and returns its handle.
	// Registering a name that already exists returns the existing handle.
	Register(name string, rgba []byte, width, height int) (Handle, error)

	// Lookup returns the handle registered under name, or 0.
	Lookup(name string) Handle
}

// Descriptor describes a registered texture.
type Descriptor struct {
	Label  string
	Width  int
	Height int
	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
}

type entry struct {
	desc Descriptor
	tex  gpucontext.Texture
}

// Registry is a Backend over a gpucontext.TextureCreator.
// It is not safe for concurrent use.
type Registry struct {
	creator gpucontext.TextureCreator
	byName  map[string]Handle
	entries []entry
}

// NewRegistry returns a registry creating textures with c.
// A nil creator means a MemoryCreator.
func NewRegistry(c gpucontext.TextureCreator) *Registry {
	if c == nil {
		c = MemoryCreator{}
	}
	return &Registry{
		creator: c,
		byName:  make(map[string]Handle),
	}
}

// Register implements Backend.
func (r *Registry) Register(name string, rgba []byte, width, height int) (Handle, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if h, ok := r.byName[name]; ok {
		return h, nil
	}
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return 0, fmt.Errorf("%w: %q is %d bytes for %dx%d", ErrSizeMismatch, name, len(rgba), width, height)
	}

	tex, err := r.creator.NewTextureFromRGBA(width, height, rgba)
	if err != nil {
		return 0, fmt.Errorf("texture: failed to create %q: %w", name, err)
	}
	r.entries = append(r.entries, entry{
		desc: Descriptor{
			Label:  name,
			Width:  width,
			Height: height,
			Format: gputypes.TextureFormatRGBA8Unorm,
			Usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		},
		tex: tex,
	})
	h := Handle(len(r.entries))
	r.byName[name] = h
	return h, nil
}

// Lookup implements Backend.
func (r *Registry) Lookup(name string) Handle {
	return r.byName[name]
}

// Len returns the number of registered textures.
func (r *Registry) Len() int { return len(r.entries) }

func (r *Registry) get(h Handle) (*entry, bool) {
	i := int(h) - 1
	if i < 0 || i >= len(r.entries) {
		return nil, false
	}
	return &r.entries[i], true
}

// Texture returns the texture registered as h.
func (r *Registry) Texture(h Handle) (gpucontext.Texture, bool) {
	e, ok := r.get(h)
	if !ok {
		return nil, false
	}
	return e.tex, true
}

// Descriptor returns the descriptor of h.
func (r *Registry) Descriptor(h Handle) (Descriptor, bool) {
	e, ok := r.get(h)
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

type releaser interface {
	Release()
}

// Close releases every texture that supports it and empties the registry.
func (r *Registry) Close() {
	for _, e := range r.entries {
		if t, ok := e.tex.(releaser); ok {
			t.Release()
		}
	}
	r.entries = nil
	clear(r.byName)
}
