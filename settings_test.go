package texture

import "testing"

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if s.ConvertGamma() {
		t.Error("ConvertGamma() = true, want false")
	}
	if s.Compress() {
		t.Error("Compress() = true, want false")
	}
	if s.GenerateMipmap() {
		t.Error("GenerateMipmap() = true, want false")
	}
	if s.MinFilter() != FilterLinear {
		t.Errorf("MinFilter() = %v, want Linear", s.MinFilter())
	}
	if s.MagFilter() != FilterLinear {
		t.Errorf("MagFilter() = %v, want Linear", s.MagFilter())
	}
	if s.MipmapFilter() != FilterLinear {
		t.Errorf("MipmapFilter() = %v, want Linear", s.MipmapFilter())
	}
	if s.WrapU() != WrapClampToEdge {
		t.Errorf("WrapU() = %v, want ClampToEdge", s.WrapU())
	}
	if s.WrapV() != WrapClampToEdge {
		t.Errorf("WrapV() = %v, want ClampToEdge", s.WrapV())
	}
	if s.BorderColor() != [4]float32{} {
		t.Errorf("BorderColor() = %v, want transparent", s.BorderColor())
	}
}

func TestSettingsOptions(t *testing.T) {
	s := NewSettings(
		WithConvertGamma(true),
		WithCompress(true),
		WithMinFilter(FilterNearest),
		WithMagFilter(FilterLinear),
		WithWrapU(WrapRepeat),
		WithWrapV(WrapMirroredRepeat),
		WithBorderColor([4]float32{1, 0, 0, 1}),
	)

	if !s.ConvertGamma() {
		t.Error("ConvertGamma() = false, want true")
	}
	if !s.Compress() {
		t.Error("Compress() = false, want true")
	}
	if s.MinFilter() != FilterNearest {
		t.Errorf("MinFilter() = %v, want Nearest", s.MinFilter())
	}
	if s.MagFilter() != FilterLinear {
		t.Errorf("MagFilter() = %v, want Linear", s.MagFilter())
	}
	if s.WrapU() != WrapRepeat {
		t.Errorf("WrapU() = %v, want Repeat", s.WrapU())
	}
	if s.WrapV() != WrapMirroredRepeat {
		t.Errorf("WrapV() = %v, want MirroredRepeat", s.WrapV())
	}
	if s.BorderColor() != [4]float32{1, 0, 0, 1} {
		t.Errorf("BorderColor() = %v, want opaque red", s.BorderColor())
	}
}

func TestWithFilterSetsBoth(t *testing.T) {
	s := NewSettings(WithFilter(FilterNearest))

	minFilter, magFilter := s.Filter()
	if minFilter != FilterNearest || magFilter != FilterNearest {
		t.Errorf("Filter() = (%v, %v), want (Nearest, Nearest)", minFilter, magFilter)
	}
	if s.MipmapFilter() != FilterLinear {
		t.Errorf("MipmapFilter() = %v, want Linear (untouched)", s.MipmapFilter())
	}
}

func TestWithWrapSetsBothAxes(t *testing.T) {
	s := NewSettings(WithWrap(WrapClampToBorder))

	if s.WrapU() != WrapClampToBorder || s.WrapV() != WrapClampToBorder {
		t.Errorf("wrap = (%v, %v), want (ClampToBorder, ClampToBorder)", s.WrapU(), s.WrapV())
	}
}

func TestWithMipmap(t *testing.T) {
	s := NewSettings(WithMipmap(FilterNearest))

	// WithMipmap configures the dedicated mipmap filter and turns on
	// generation; the magnify filter must stay untouched.
	if s.MipmapFilter() != FilterNearest {
		t.Errorf("MipmapFilter() = %v, want Nearest", s.MipmapFilter())
	}
	if !s.GenerateMipmap() {
		t.Error("GenerateMipmap() = false, want true")
	}
	if s.MagFilter() != FilterLinear {
		t.Errorf("MagFilter() = %v, want Linear (untouched)", s.MagFilter())
	}
	if s.MinFilter() != FilterLinear {
		t.Errorf("MinFilter() = %v, want Linear (untouched)", s.MinFilter())
	}
}

func TestWithGenerateMipmapAlone(t *testing.T) {
	s := NewSettings(WithGenerateMipmap(true))

	if !s.GenerateMipmap() {
		t.Error("GenerateMipmap() = false, want true")
	}
	if s.MipmapFilter() != FilterLinear {
		t.Errorf("MipmapFilter() = %v, want Linear", s.MipmapFilter())
	}
}

func TestFilterString(t *testing.T) {
	tests := []struct {
		filter Filter
		want   string
	}{
		{FilterLinear, "Linear"},
		{FilterNearest, "Nearest"},
		{Filter(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.want {
			t.Errorf("Filter(%d).String() = %q, want %q", tt.filter, got, tt.want)
		}
	}
}

func TestWrapString(t *testing.T) {
	tests := []struct {
		wrap Wrap
		want string
	}{
		{WrapClampToEdge, "ClampToEdge"},
		{WrapRepeat, "Repeat"},
		{WrapMirroredRepeat, "MirroredRepeat"},
		{WrapClampToBorder, "ClampToBorder"},
		{Wrap(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.wrap.String(); got != tt.want {
			t.Errorf("Wrap(%d).String() = %q, want %q", tt.wrap, got, tt.want)
		}
	}
}
