package atlas

import (
	"errors"
	"fmt"
)

const tgaHeaderSize = 18

// ErrUnsupportedTGA is returned by DecodeTGA for anything but uncompressed
// 32-bit true-color images.
var ErrUnsupportedTGA = errors.New("atlas: unsupported tga image")

// EncodeTGA writes an RGBA8 image as an uncompressed 32-bit TGA. Pixels are
// stored as BGRA, bottom row first.
func EncodeTGA(rgba []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return nil, fmt.Errorf("atlas: invalid tga dimensions %dx%d", width, height)
	}
	if len(rgba) < width*height*4 {
		return nil, fmt.Errorf("atlas: tga data has %d bytes, want %d", len(rgba), width*height*4)
	}

	out := make([]byte, tgaHeaderSize+width*height*4)
	out[2] = 2 // uncompressed true-color
	out[12], out[13] = byte(width), byte(width>>8)
	out[14], out[15] = byte(height), byte(height>>8)
	out[16] = 32

	stride := width * 4
	for row := 0; row < height; row++ {
		src := rgba[row*stride : (row+1)*stride]
		dst := out[tgaHeaderSize+(height-1-row)*stride:]
		for i := 0; i < stride; i += 4 {
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = src[i+3]
		}
	}
	return out, nil
}

// DecodeTGA reads an image written by EncodeTGA and returns RGBA8 pixels
// in top-down row order.
func DecodeTGA(data []byte) (rgba []byte, width, height int, err error) {
	if len(data) < tgaHeaderSize {
		return nil, 0, 0, ErrUnsupportedTGA
	}
	if data[2] != 2 || data[16] != 32 || data[1] != 0 {
		return nil, 0, 0, ErrUnsupportedTGA
	}
	width = int(data[12]) | int(data[13])<<8
	height = int(data[14]) | int(data[15])<<8
	idLen := int(data[0])
	if len(data) < tgaHeaderSize+idLen {
		return nil, 0, 0, ErrUnsupportedTGA
	}
	body := data[tgaHeaderSize+idLen:]
	if width == 0 || height == 0 || len(body) < width*height*4 {
		return nil, 0, 0, ErrUnsupportedTGA
	}
	topDown := data[17]&0x20 != 0

	stride := width * 4
	rgba = make([]byte, width*height*4)
	for row := 0; row < height; row++ {
		srcRow := height - 1 - row
		if topDown {
			srcRow = row
		}
		src := body[srcRow*stride : (srcRow+1)*stride]
		dst := rgba[row*stride:]
		for i := 0; i < stride; i += 4 {
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = src[i+3]
		}
	}
	return rgba, width, height, nil
}
