package texture

import "errors"

// Sentinel errors for texture package.
var (
	// ErrEmptyName is returned when a texture is registered without a name.
	ErrEmptyName = errors.New("texture: empty name")

	// ErrSizeMismatch is returned when pixel data does not match the
	// declared dimensions.
	ErrSizeMismatch = errors.New("texture: data size does not match dimensions")

	// ErrNoDevice is returned when a GPU creator is built without a device.
	ErrNoDevice = errors.New("texture: no gpu device")
)
