package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Register the stdlib decoders so NewFromPath handles the common
	// formats out of the box.
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/texture/ops"
)

// NewFromMemoryAlpha creates a texture from a single-channel alpha
// mask. The mask is expanded to RGBA8 (opaque white carrying the mask
// in the alpha channel) before upload, so backends without a dedicated
// single-channel format can consume it.
//
// len(memory) must be width*height. A nil settings means defaults.
func NewFromMemoryAlpha(d Device, memory []byte, width, height uint32, settings *Settings) (Texture, error) {
	if d == nil {
		return nil, ErrNilDevice
	}
	rgba, err := ops.AlphaToRGBA8(memory, width, height)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = NewSettings()
	}
	Logger().Debug("creating texture from alpha mask", "width", width, "height", height)
	return d.CreateTexture(RGBA8, rgba, Size{Width: width, Height: height}, settings)
}

// NewFromImage creates a texture from a decoded image. An *image.Alpha
// routes through the alpha expander; everything else is converted to a
// tightly packed RGBA8 buffer first. A nil settings means defaults.
func NewFromImage(d Device, img image.Image, settings *Settings) (Texture, error) {
	if d == nil {
		return nil, ErrNilDevice
	}
	if a, ok := img.(*image.Alpha); ok {
		w, h := a.Bounds().Dx(), a.Bounds().Dy()
		return NewFromMemoryAlpha(d, alphaPix(a), uint32(w), uint32(h), settings)
	}

	memory, size := rgbaPix(img)
	if settings == nil {
		settings = NewSettings()
	}
	Logger().Debug("creating texture from image", "width", size.Width, "height", size.Height)
	return d.CreateTexture(RGBA8, memory, size, settings)
}

// NewFromPath creates a texture from an image file. PNG and JPEG are
// supported out of the box; other formats work once their decoder is
// registered with the stdlib image package. Decode failures are tagged
// as *DecodeError.
func NewFromPath(d Device, path string, settings *Settings) (Texture, error) {
	if d == nil {
		return nil, ErrNilDevice
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("open file: %w", err)}
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return NewFromImage(d, img, settings)
}

// UpdateFromImage replaces the sub-rectangle of t at offset with the
// contents of img, converted to RGBA8.
func UpdateFromImage(t Texture, img image.Image, offset Point) error {
	if t == nil {
		return ErrNilTexture
	}
	memory, size := rgbaPix(img)
	return t.Update(memory, offset, size)
}

// rgbaPix converts img to a tightly packed RGBA8 buffer in row-major
// order with its accompanying size. The buffer uses straight
// (unpremultiplied) alpha, matching the output of ops.AlphaToRGBA8.
func rgbaPix(img image.Image) ([]byte, Size) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Fast path for an already tightly packed NRGBA. A sub-image can
	// keep the parent's stride yet expose a Pix slice running past its
	// last row, so the length check is required alongside the stride
	// check.
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == 4*w && len(nrgba.Pix) == 4*w*h {
		memory := make([]byte, len(nrgba.Pix))
		copy(memory, nrgba.Pix)
		return memory, Size{Width: uint32(w), Height: uint32(h)}
	}

	// image.NewNRGBA always allocates with stride == 4*width, so Pix
	// is tightly packed after the draw.
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return dst.Pix, Size{Width: uint32(w), Height: uint32(h)}
}

// alphaPix extracts a tightly packed single-channel buffer from an
// *image.Alpha, dropping any per-row padding in its stride.
func alphaPix(a *image.Alpha) []byte {
	bounds := a.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	memory := make([]byte, w*h)
	for y := 0; y < h; y++ {
		start := a.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(memory[y*w:(y+1)*w], a.Pix[start:start+w])
	}
	return memory
}
