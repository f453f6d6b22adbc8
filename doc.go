// Package limatex builds Mali-400 sampler-ready textures from linear
// host-side pixel buffers.
//
// # Overview
//
// The Mali-400 texture unit does not consume row-major pixel data. It
// expects texels reordered along a locality-preserving space-filling
// curve within 16x16 tiles, a full mip pyramid stored in the same
// layout, and a 16-word bit-packed descriptor telling the sampler
// where each level lives in physical memory. limatex produces all
// three from a plain RGB buffer.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/limatex"
//		"github.com/gogpu/limatex/arena"
//	)
//
//	// The arena wraps a CPU-mapped, physically contiguous region.
//	a := arena.New(mapped, physicalBase)
//
//	tex, err := limatex.CreateTexture(a, pixels, 300, 200,
//		limatex.FormatRGB888, limatex.WithMipmaps())
//	if err != nil {
//		// limatex.ErrInvalidDimension, limatex.ErrUnsupportedFormat,
//		// limatex.ErrSourceTooSmall or arena.ErrOutOfMemory.
//	}
//
//	desc := tex.Descriptor() // feed to the render state
//
// Textures are immutable once constructed: construction either
// completes in full or fails without touching the arena.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Texture, Descriptor, Format, CreateTexture
//   - arena: bump allocation over CPU/GPU dual-addressed memory
//   - Internal: fill (space-filling curve), bits (descriptor bitfields)
//
// Command submission, rendering and image decoding are out of scope;
// see gogpu/gg for drawing and gogpu/wgpu for modern GPU backends.
package limatex
