package texture

import "errors"

// Common errors returned by texture operations.
var (
	// ErrNilDevice is returned when a nil Device is passed to a constructor.
	ErrNilDevice = errors.New("texture: device is nil")

	// ErrNilTexture is returned when a nil Texture is passed to an update helper.
	ErrNilTexture = errors.New("texture: texture is nil")
)

// Size is the dimensions of a texture or sub-region in pixels.
// Zero is degenerate but legal: it describes an empty buffer.
type Size struct {
	Width  uint32
	Height uint32
}

// Point is a pixel position inside a texture, measured from the
// top-left corner.
type Point struct {
	X uint32
	Y uint32
}

// ImageSize is implemented by anything that reports texture
// dimensions. It is the minimal capability generic rendering code
// needs to pass textures around.
type ImageSize interface {
	// Size returns the width and height in pixels.
	Size() (width, height uint32)
}

// Dimensions is a ready-made ImageSize implementation that backends
// can embed in their texture types.
type Dimensions struct {
	W uint32
	H uint32
}

// Size returns the width and height in pixels.
func (d Dimensions) Size() (width, height uint32) { return d.W, d.H }

// Width returns the width in pixels.
func (d Dimensions) Width() uint32 { return d.W }

// Height returns the height in pixels.
func (d Dimensions) Height() uint32 { return d.H }

// Format identifies the pixel layout of texture memory handed to a
// Device.
type Format uint8

const (
	// RGBA8 is (red, green, blue, alpha) with 8 bits per channel,
	// 4 bytes per pixel. Currently the only defined upload format.
	RGBA8 Format = iota
)

// Channels returns the number of channels per pixel.
func (f Format) Channels() int {
	switch f {
	case RGBA8:
		return 4
	default:
		return 0
	}
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGBA8:
		return 4
	default:
		return 0
	}
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case RGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// Device is the opaque factory handle a backend exposes for allocating
// textures. It is the Go rendition of the per-backend factory the
// creation contract is parameterized over; the library never depends
// on a concrete implementation.
type Device interface {
	// CreateTexture creates a texture from memory. len(memory) must be
	// size.Width * size.Height * format.BytesPerPixel(), with rows
	// packed top to bottom. Implementations treat a nil settings as
	// NewSettings() defaults. Backend-specific failures surface
	// through the returned error, conventionally as a *BackendError.
	CreateTexture(format Format, memory []byte, size Size, settings *Settings) (Texture, error)
}

// Texture is a backend texture created by a Device.
type Texture interface {
	ImageSize

	// Update replaces the sub-rectangle of the texture at offset with
	// the pixels in memory. memory holds size.Width * size.Height
	// pixels in the texture's format, and the rectangle must lie
	// entirely inside the texture.
	Update(memory []byte, offset Point, size Size) error
}
