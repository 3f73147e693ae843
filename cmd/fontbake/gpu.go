//go:build !nogpu

package main

import (
	_ "github.com/gogpu/wgpu/hal/allbackends"

	"github.com/gogpu/fontcache/texture"
)

// openGPUBackend returns a texture registry uploading to the best
// available device. release closes the registry before the device.
func openGPUBackend() (texture.Backend, func(), error) {
	gpu, err := texture.OpenGPU()
	if err != nil {
		return nil, nil, err
	}
	creator, err := texture.NewWGPUCreator(gpu.Device)
	if err != nil {
		gpu.Release()
		return nil, nil, err
	}
	reg := texture.NewRegistry(creator)
	return reg, func() {
		reg.Close()
		gpu.Release()
	}, nil
}
