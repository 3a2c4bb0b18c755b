package texture

// Filter selects how a sampler interpolates between texels.
type Filter uint8

const (
	// FilterLinear is a weighted linear blend of the neighboring texels.
	FilterLinear Filter = iota

	// FilterNearest picks the nearest texel.
	FilterNearest
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Wrap selects how a sampler treats texture coordinates outside [0, 1].
type Wrap uint8

const (
	// WrapClampToEdge repeats the edge texel.
	WrapClampToEdge Wrap = iota

	// WrapRepeat tiles the texture.
	WrapRepeat

	// WrapMirroredRepeat tiles the texture, mirroring every other tile.
	WrapMirroredRepeat

	// WrapClampToBorder samples the settings' border color.
	WrapClampToBorder
)

// String returns the wrap mode name.
func (w Wrap) String() string {
	switch w {
	case WrapClampToEdge:
		return "ClampToEdge"
	case WrapRepeat:
		return "Repeat"
	case WrapMirroredRepeat:
		return "MirroredRepeat"
	case WrapClampToBorder:
		return "ClampToBorder"
	default:
		return "Unknown"
	}
}

// Settings carries texture creation parameters.
//
// A Settings is a plain value record with no behavior beyond storage:
// construct one with NewSettings, then hand it to Device.CreateTexture.
// Once constructed it is never modified by the library, so a single
// Settings can be shared across any number of creations.
type Settings struct {
	convertGamma   bool
	compress       bool
	generateMipmap bool
	min            Filter
	mag            Filter
	mipmap         Filter
	wrapU          Wrap
	wrapV          Wrap
	border         [4]float32
}

// SettingsOption configures a Settings during creation.
type SettingsOption func(*Settings)

// NewSettings creates texture creation settings.
//
// Defaults: no gamma conversion, no GPU compression, no mipmap
// generation, linear minify/magnify/mipmap filters, clamp-to-edge
// wrapping on both axes, and a transparent border color.
//
// Example:
//
//	s := texture.NewSettings(
//		texture.WithFilter(texture.FilterNearest),
//		texture.WithWrap(texture.WrapRepeat),
//	)
func NewSettings(opts ...SettingsOption) *Settings {
	s := &Settings{
		min:    FilterLinear,
		mag:    FilterLinear,
		mipmap: FilterLinear,
		wrapU:  WrapClampToEdge,
		wrapV:  WrapClampToEdge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithConvertGamma sets whether buffer contents are treated as sRGB
// and converted to linear color space on upload.
func WithConvertGamma(v bool) SettingsOption {
	return func(s *Settings) { s.convertGamma = v }
}

// WithCompress sets whether the backend should compress the texture
// on the GPU.
func WithCompress(v bool) SettingsOption {
	return func(s *Settings) { s.compress = v }
}

// WithGenerateMipmap sets whether the backend should generate a
// mipmap chain for the texture.
func WithGenerateMipmap(v bool) SettingsOption {
	return func(s *Settings) { s.generateMipmap = v }
}

// WithMinFilter sets the minify filter.
func WithMinFilter(f Filter) SettingsOption {
	return func(s *Settings) { s.min = f }
}

// WithMagFilter sets the magnify filter.
func WithMagFilter(f Filter) SettingsOption {
	return func(s *Settings) { s.mag = f }
}

// WithFilter sets both the minify and magnify filters.
func WithFilter(f Filter) SettingsOption {
	return func(s *Settings) {
		s.min = f
		s.mag = f
	}
}

// WithMipmap sets the filter used between mipmap levels and enables
// mipmap generation.
func WithMipmap(f Filter) SettingsOption {
	return func(s *Settings) {
		s.mipmap = f
		s.generateMipmap = true
	}
}

// WithWrapU sets the horizontal wrap mode.
func WithWrapU(w Wrap) SettingsOption {
	return func(s *Settings) { s.wrapU = w }
}

// WithWrapV sets the vertical wrap mode.
func WithWrapV(w Wrap) SettingsOption {
	return func(s *Settings) { s.wrapV = w }
}

// WithWrap sets the wrap mode on both axes.
func WithWrap(w Wrap) SettingsOption {
	return func(s *Settings) {
		s.wrapU = w
		s.wrapV = w
	}
}

// WithBorderColor sets the RGBA border color sampled by
// WrapClampToBorder, with channels in [0, 1].
func WithBorderColor(c [4]float32) SettingsOption {
	return func(s *Settings) { s.border = c }
}

// ConvertGamma reports whether buffer contents are converted from
// sRGB to linear color space on upload.
func (s *Settings) ConvertGamma() bool { return s.convertGamma }

// Compress reports whether the backend should compress the texture on
// the GPU.
func (s *Settings) Compress() bool { return s.compress }

// GenerateMipmap reports whether the backend should generate a mipmap
// chain.
func (s *Settings) GenerateMipmap() bool { return s.generateMipmap }

// MinFilter returns the minify filter.
func (s *Settings) MinFilter() Filter { return s.min }

// MagFilter returns the magnify filter.
func (s *Settings) MagFilter() Filter { return s.mag }

// MipmapFilter returns the filter used between mipmap levels.
func (s *Settings) MipmapFilter() Filter { return s.mipmap }

// Filter returns the minify and magnify filters.
func (s *Settings) Filter() (minFilter, magFilter Filter) { return s.min, s.mag }

// WrapU returns the horizontal wrap mode.
func (s *Settings) WrapU() Wrap { return s.wrapU }

// WrapV returns the vertical wrap mode.
func (s *Settings) WrapV() Wrap { return s.wrapV }

// BorderColor returns the border color sampled by WrapClampToBorder.
func (s *Settings) BorderColor() [4]float32 { return s.border }
