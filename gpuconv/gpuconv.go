// Package gpuconv maps texture settings onto the gogpu/wgpu type
// vocabulary. Backends built on wgpu use it to derive sampler
// descriptors, texture formats and mip level counts from the
// backend-neutral Settings value, so every backend resolves the
// conventions the same way.
package gpuconv

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/texture"
)

// FilterMode converts a sampling filter to the wgpu filter mode.
func FilterMode(f texture.Filter) gputypes.FilterMode {
	if f == texture.FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

// AddressMode converts a wrap mode to the wgpu address mode.
//
// WebGPU has no clamp-to-border address mode, so WrapClampToBorder
// maps to clamp-to-edge, the closest available behavior; the border
// color in the settings is ignored on wgpu backends.
func AddressMode(w texture.Wrap) gputypes.AddressMode {
	switch w {
	case texture.WrapRepeat:
		return gputypes.AddressModeRepeat
	case texture.WrapMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeClampToEdge
	}
}

// TextureFormat returns the wgpu texture format for an upload format.
// With gamma conversion enabled the sRGB variant is used, so sampling
// converts texels to linear color space automatically.
func TextureFormat(f texture.Format, convertGamma bool) gputypes.TextureFormat {
	switch f {
	case texture.RGBA8:
		if convertGamma {
			return gputypes.TextureFormatRGBA8UnormSrgb
		}
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// SamplerDescriptor builds a hal sampler descriptor from settings.
// A nil settings means defaults.
func SamplerDescriptor(label string, s *texture.Settings) *hal.SamplerDescriptor {
	if s == nil {
		s = texture.NewSettings()
	}
	return &hal.SamplerDescriptor{
		Label:        label,
		AddressModeU: AddressMode(s.WrapU()),
		AddressModeV: AddressMode(s.WrapV()),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    FilterMode(s.MagFilter()),
		MinFilter:    FilterMode(s.MinFilter()),
		MipmapFilter: FilterMode(s.MipmapFilter()),
	}
}

// MipLevelCount returns the number of mip levels to allocate for a
// texture of the given size: 1 without mipmap generation, otherwise
// the full chain down to a single pixel.
func MipLevelCount(size texture.Size, generateMipmap bool) uint32 {
	maxDim := max(size.Width, size.Height)
	if !generateMipmap || maxDim == 0 {
		return 1
	}
	levels := uint32(1)
	for maxDim > 1 {
		maxDim >>= 1
		levels++
	}
	return levels
}
