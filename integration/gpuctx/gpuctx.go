// Package gpuctx adapts gpucontext texture creators to the
// texture.Device contract.
//
// gogpu applications expose a gpucontext.TextureCreator for building
// GPU textures from RGBA pixel data. Wrapping one in a gpuctx.Device
// lets code written against the texture conventions (generic loaders,
// glyph atlases, the convenience constructors in the root package) run
// on top of it unchanged.
//
// Textures implementing gpucontext.TextureRegionUpdater receive
// sub-rectangle updates directly. For textures that only support
// whole-surface updates, the rectangle is spliced into a CPU shadow
// copy of the pixel data and the full surface is re-uploaded.
package gpuctx

import (
	"errors"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/texture"
	"github.com/gogpu/texture/ops"
)

// Bridge errors.
var (
	// ErrNilCreator is returned when constructing a Device without a creator.
	ErrNilCreator = errors.New("gpuctx: texture creator is nil")

	// ErrUnsupportedFormat is returned for formats other than RGBA8.
	ErrUnsupportedFormat = errors.New("gpuctx: unsupported texture format")

	// ErrRegionOutOfBounds is returned when an update rectangle does not
	// lie entirely inside the texture.
	ErrRegionOutOfBounds = errors.New("gpuctx: update region out of bounds")

	// ErrUpdateUnsupported is returned when the underlying texture
	// implements neither gpucontext.TextureRegionUpdater nor
	// gpucontext.TextureUpdater.
	ErrUpdateUnsupported = errors.New("gpuctx: texture does not support updates")
)

// backendName tags errors surfaced from the wrapped creator.
const backendName = "gpucontext"

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// Device wraps a gpucontext.TextureCreator as a texture.Device.
type Device struct {
	creator gpucontext.TextureCreator
}

// NewDevice creates a Device on top of a gpucontext.TextureCreator,
// typically obtained from a gogpu draw context.
func NewDevice(creator gpucontext.TextureCreator) (*Device, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	return &Device{creator: creator}, nil
}

// CreateTexture implements texture.Device. The settings value is
// accepted for contract compatibility but not consulted: sampling
// configuration lives in the gogpu pipeline that draws the texture.
func (d *Device) CreateTexture(format texture.Format, memory []byte, size texture.Size, settings *texture.Settings) (texture.Texture, error) {
	if format != texture.RGBA8 {
		return nil, ErrUnsupportedFormat
	}
	want, ok := pixelBytes(size)
	if !ok {
		return nil, ops.ErrSizeOverflow
	}
	if len(memory) != want {
		return nil, &ops.InvalidBufferSizeError{Expected: want, Actual: len(memory)}
	}

	raw, err := d.creator.NewTextureFromRGBA(int(size.Width), int(size.Height), memory)
	if err != nil {
		return nil, texture.WrapBackendError(backendName, err)
	}

	// Shadow copy backs sub-rectangle updates; the caller keeps
	// ownership of memory.
	shadow := make([]byte, len(memory))
	copy(shadow, memory)

	texture.Logger().Debug("gpuctx texture created",
		"width", size.Width, "height", size.Height)

	return &Texture{
		Dimensions: texture.Dimensions{W: size.Width, H: size.Height},
		raw:        raw,
		shadow:     shadow,
	}, nil
}

// Texture is a gpucontext-backed texture.
type Texture struct {
	texture.Dimensions

	mu     sync.Mutex
	raw    gpucontext.Texture
	shadow []byte
}

// Update implements texture.Texture. Textures supporting
// gpucontext.TextureRegionUpdater receive the rectangle directly;
// otherwise it is spliced into the CPU shadow buffer and the whole
// surface is re-uploaded through gpucontext.TextureUpdater.
func (t *Texture) Update(memory []byte, offset texture.Point, size texture.Size) error {
	want, ok := pixelBytes(size)
	if !ok {
		return ops.ErrSizeOverflow
	}
	if len(memory) != want {
		return &ops.InvalidBufferSizeError{Expected: want, Actual: len(memory)}
	}
	if uint64(offset.X)+uint64(size.Width) > uint64(t.W) ||
		uint64(offset.Y)+uint64(size.Height) > uint64(t.H) {
		return ErrRegionOutOfBounds
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	region, regionOK := t.raw.(gpucontext.TextureRegionUpdater)
	full, fullOK := t.raw.(gpucontext.TextureUpdater)
	if !regionOK && !fullOK {
		return ErrUpdateUnsupported
	}

	// Row-major splice: row y of the incoming rectangle lands at
	// (offset.X, offset.Y+y) of the shadow surface. The shadow stays
	// current on both upload paths so they can mix on one texture.
	srcStride := int(size.Width) * 4
	dstStride := int(t.W) * 4
	for y := 0; y < int(size.Height); y++ {
		src := memory[y*srcStride : (y+1)*srcStride]
		dstStart := (int(offset.Y)+y)*dstStride + int(offset.X)*4
		copy(t.shadow[dstStart:dstStart+srcStride], src)
	}

	if regionOK {
		err := region.UpdateRegion(int(offset.X), int(offset.Y), int(size.Width), int(size.Height), memory)
		if err != nil {
			return texture.WrapBackendError(backendName, err)
		}
	} else if err := full.UpdateData(t.shadow); err != nil {
		return texture.WrapBackendError(backendName, err)
	}

	texture.Logger().Debug("gpuctx texture updated",
		"x", offset.X, "y", offset.Y, "width", size.Width, "height", size.Height)
	return nil
}

// Raw returns the underlying gpucontext texture, for handing to
// drawing APIs such as gpucontext.TextureDrawer. Returns nil after
// Destroy.
func (t *Texture) Raw() gpucontext.Texture {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

// Destroy releases the underlying texture if it supports destruction.
// The texture must not be used afterwards.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d, ok := t.raw.(textureDestroyer); ok {
		d.Destroy()
	}
	t.raw = nil
	t.shadow = nil
}

// pixelBytes computes the RGBA8 byte length of a region, reporting
// false on int overflow.
func pixelBytes(size texture.Size) (int, bool) {
	// Both factors are below 2^32, so the area fits in a uint64.
	area := uint64(size.Width) * uint64(size.Height)
	if area > uint64(maxInt)/4 {
		return 0, false
	}
	return int(area * 4), true
}

const maxInt = int(^uint(0) >> 1)
