// Package texture defines the shared conventions for working with GPU
// textures across gogpu backends.
//
// # Overview
//
// texture is an interface library: it carries the abstractions that
// independent backend implementations agree on (the ImageSize
// capability, the Device/Texture creation and update contract, the
// Settings value passed to texture creation, and the error taxonomy),
// plus the CPU-side pixel buffer transforms in the ops subpackage.
// There is no GPU code here; backends implement the contract, and
// generic rendering code consumes it.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/texture"
//		"github.com/gogpu/texture/ops"
//	)
//
//	// Expand a font glyph mask to RGBA8 and upload it.
//	rgba, err := ops.AlphaToRGBA8(mask, w, h)
//	if err != nil {
//		return err
//	}
//	tex, err := dev.CreateTexture(texture.RGBA8, rgba,
//		texture.Size{Width: w, Height: h},
//		texture.NewSettings(texture.WithFilter(texture.FilterNearest)))
//
// Or, equivalently, through the convenience constructor:
//
//	tex, err := texture.NewFromMemoryAlpha(dev, mask, w, h, nil)
//
// # Architecture
//
// The library is organized into:
//   - Root package: contract interfaces, Settings, errors, backend registry
//   - ops: row-major pixel buffer transforms (vertical flip, alpha expansion)
//   - gpuconv: Settings to gputypes/hal sampler and format mapping
//   - integration/gpuctx: bridge to gpucontext texture creators
//
// # Coordinate System
//
// Buffers are row-major with the origin at the top-left corner: X
// increases right, Y increases down, rows are packed with no padding.
package texture
