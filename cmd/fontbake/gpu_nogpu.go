//go:build nogpu

package main

import "github.com/gogpu/fontcache/texture"

func openGPUBackend() (texture.Backend, func(), error) {
	return nil, nil, texture.ErrNoDevice
}
