// Package ops provides CPU-side pixel buffer transforms for textures.
//
// Buffers are flat byte slices in row-major order with no padding
// between rows: pixel (x, y) channel c lives at linear offset
// c + x*channels + y*width*channels. Every transform validates the
// buffer length against the supplied geometry before allocating its
// output, never mutates its input, and returns a freshly allocated
// buffer, so independent calls are safe from concurrent goroutines
// without coordination.
package ops

import (
	"errors"
	"fmt"
	"math"
)

// ErrSizeOverflow is returned when width*height*channels does not fit
// in an int. No buffer of that size can exist, so the transform fails
// before allocating anything.
var ErrSizeOverflow = errors.New("ops: buffer size overflows int")

// InvalidBufferSizeError is returned when a buffer's length does not
// match the length implied by the supplied geometry.
type InvalidBufferSizeError struct {
	// Expected is the byte length implied by width, height and channels.
	Expected int

	// Actual is the length of the supplied buffer.
	Actual int
}

func (e *InvalidBufferSizeError) Error() string {
	return fmt.Sprintf("ops: invalid buffer size: expected %d bytes, got %d", e.Expected, e.Actual)
}

// bufferLen computes width*height*channels, reporting false on int
// overflow. The allocation size is always known before any write.
func bufferLen(width, height uint32, channels uint8) (int, bool) {
	// Both factors are below 2^32, so the product fits in a uint64.
	area := uint64(width) * uint64(height)
	if channels != 0 && area > uint64(math.MaxInt)/uint64(channels) {
		return 0, false
	}
	return int(area * uint64(channels)), true
}

// offset returns the linear index of pixel (x, y) channel c in a
// row-major buffer with no row padding. Both transforms address
// buffers through this single definition so the stride arithmetic
// cannot diverge.
func offset(x, y, c, width, channels int) int {
	return c + x*channels + y*width*channels
}

// FlipVertical returns a copy of memory with its rows in reversed
// vertical order. Pixel and channel order within each row is
// unchanged. The transform is channel-count agnostic and is its own
// inverse; a buffer with height <= 1 (or zero area) comes back equal
// to the input.
//
// len(memory) must be width*height*channels; otherwise FlipVertical
// returns an *InvalidBufferSizeError and the input is not read.
func FlipVertical(memory []byte, width, height uint32, channels uint8) ([]byte, error) {
	want, ok := bufferLen(width, height, channels)
	if !ok {
		return nil, ErrSizeOverflow
	}
	if len(memory) != want {
		return nil, &InvalidBufferSizeError{Expected: want, Actual: len(memory)}
	}

	out := make([]byte, want)
	stride := offset(0, 1, 0, int(width), int(channels))
	h := int(height)
	for y := 0; y < h; y++ {
		src := memory[y*stride : (y+1)*stride]
		dst := out[(h-1-y)*stride : (h-y)*stride]
		copy(dst, src)
	}
	return out, nil
}

// AlphaToRGBA8 expands a single-channel alpha mask into an RGBA8
// buffer of the same dimensions. Each source byte becomes the four
// bytes [255, 255, 255, alpha]: opaque white tinted only by the mask.
// Output pixels are written in the same row-major order as the input,
// so pixel (x, y) of the result corresponds exactly to pixel (x, y)
// of the mask.
//
// This is how alpha-only glyph and mask images (font rendering being
// the common case) are made uploadable by backends that lack a
// dedicated single-channel texture format.
//
// len(memory) must be width*height; otherwise AlphaToRGBA8 returns an
// *InvalidBufferSizeError and the input is not read.
func AlphaToRGBA8(memory []byte, width, height uint32) ([]byte, error) {
	want, ok := bufferLen(width, height, 1)
	if !ok {
		return nil, ErrSizeOverflow
	}
	if len(memory) != want {
		return nil, &InvalidBufferSizeError{Expected: want, Actual: len(memory)}
	}
	outLen, ok := bufferLen(width, height, 4)
	if !ok {
		return nil, ErrSizeOverflow
	}

	out := make([]byte, outLen)
	w, h := int(width), int(height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := memory[offset(x, y, 0, w, 1)]
			i := offset(x, y, 0, w, 4)
			out[i+0] = 0xFF
			out[i+1] = 0xFF
			out[i+2] = 0xFF
			out[i+3] = a
		}
	}
	return out, nil
}
