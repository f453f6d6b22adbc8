package limatex

import "github.com/gogpu/gputypes"

// Option configures texture construction.
// Use functional options to customize CreateTexture behavior.
//
// Example:
//
//	// Level 0 only:
//	tex, err := limatex.CreateTexture(a, pixels, w, h, limatex.FormatRGB888)
//
//	// Full mip pyramid:
//	tex, err := limatex.CreateTexture(a, pixels, w, h, limatex.FormatRGB888,
//		limatex.WithMipmaps())
type Option func(*textureOptions)

// textureOptions holds optional configuration for texture creation.
type textureOptions struct {
	mipmap    bool
	layout    gputypes.TextureDataLayout
	hasLayout bool
}

// WithMipmaps requests a full mip pyramid down to 1x1. Without this
// option only level 0 is built.
func WithMipmaps() Option {
	return func(o *textureOptions) {
		o.mipmap = true
	}
}

// WithSourceLayout describes the source buffer with an explicit data
// layout instead of the default tightly packed one.
//
// Offset is the position of the first pixel within the buffer and
// BytesPerRow the distance between the starts of consecutive rows;
// BytesPerRow of 0 keeps the default pitch (row bytes aligned to 4).
// RowsPerImage is ignored: textures are single-image 2D.
//
// Example:
//
//	// Rows padded to 256 bytes, as a wgpu readback produces them:
//	tex, err := limatex.CreateTexture(a, data, w, h, limatex.FormatRGB888,
//		limatex.WithSourceLayout(gputypes.TextureDataLayout{BytesPerRow: 256}))
func WithSourceLayout(layout gputypes.TextureDataLayout) Option {
	return func(o *textureOptions) {
		o.layout = layout
		o.hasLayout = true
	}
}
