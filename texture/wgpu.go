//go:build !nogpu

package texture

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// GPU holds a wgpu device together with the instance and adapter it was
// requested from.
type GPU struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	Device   *wgpu.Device
}

// OpenGPU requests the best available adapter from the registered HAL
// backends and creates a device on it. Errors wrap ErrNoDevice when no
// adapter is available.
func OpenGPU() (*GPU, error) {
	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("texture: create instance: %w", err)
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("texture: request device: %w", err)
	}
	return &GPU{instance: instance, adapter: adapter, Device: device}, nil
}

// Release destroys the device, adapter and instance.
func (g *GPU) Release() {
	if g.Device != nil {
		g.Device.Release()
		g.Device = nil
	}
	if g.adapter != nil {
		g.adapter.Release()
		g.adapter = nil
	}
	if g.instance != nil {
		g.instance.Release()
		g.instance = nil
	}
}

// WGPUCreator creates sampled RGBA8 textures on a wgpu device.
type WGPUCreator struct {
	device *wgpu.Device
}

// NewWGPUCreator returns a creator uploading to device.
func NewWGPUCreator(device *wgpu.Device) (*WGPUCreator, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	return &WGPUCreator{device: device}, nil
}

// NewTextureFromRGBA implements gpucontext.TextureCreator.
func (c *WGPUCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if width <= 0 || height <= 0 || len(data) != width*height*4 {
		return nil, ErrSizeMismatch
	}
	size := wgpu.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}
	tex, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "glyph-page",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("texture: create: %w", err)
	}
	err = c.device.Queue().WriteTexture(
		&wgpu.ImageCopyTexture{Texture: tex, Aspect: gputypes.TextureAspectAll},
		data,
		&wgpu.ImageDataLayout{BytesPerRow: uint32(width * 4), RowsPerImage: uint32(height)},
		&size,
	)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("texture: upload: %w", err)
	}
	return &wgpuTexture{tex: tex, width: width, height: height}, nil
}

type wgpuTexture struct {
	tex           *wgpu.Texture
	width, height int
}

func (t *wgpuTexture) Width() int  { return t.width }
func (t *wgpuTexture) Height() int { return t.height }

func (t *wgpuTexture) Release() {
	if t.tex != nil {
		t.tex.Release()
		t.tex = nil
	}
}
