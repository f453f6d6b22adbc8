package limatex

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/limatex/arena"
)

// TextureLevel is one mip level of a constructed texture. The same
// storage is visible through two address spaces: Data for the CPU,
// Physical for the sampler.
type TextureLevel struct {
	// Index is the level's position in the chain; 0 is full size.
	Index int

	// Width and Height are the level dimensions in texels.
	Width  int
	Height int

	// Size is the level's storage footprint in bytes, including tile
	// padding and the 1024-byte alignment.
	Size int

	// Data is the level's swizzled storage, CPU-visible.
	Data []byte

	// Physical is the address of the same storage in the GPU's
	// address space.
	Physical uint32
}

// Texture is a sampler-ready texture: swizzled level storage in arena
// memory plus the packed hardware descriptor. Textures are immutable
// once constructed; their arena memory is not individually reclaimed.
type Texture struct {
	width  int
	height int
	format Format
	levels []TextureLevel
	desc   Descriptor
}

// CreateTexture builds a texture from a linear pixel buffer.
//
// src holds rows of packed pixels; by default rows start at byte
// offsets aligned to 4 (see WithSourceLayout to override). Only
// FormatRGB888 is implemented. With WithMipmaps the full pyramid down
// to 1x1 is generated from src's level 0 with a box filter.
//
// Construction is all-or-nothing: on any error no texture is produced
// and the arena is unchanged. Storage for all levels is reserved with
// a single arena reservation, so concurrent constructions on one
// arena cannot interleave partial chains.
func CreateTexture(a *arena.Arena, src []byte, width, height int, format Format, opts ...Option) (*Texture, error) {
	var o textureOptions
	for _, opt := range opts {
		opt(&o)
	}

	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d (limit %d)", ErrInvalidDimension, width, height, MaxDimension)
	}
	if !format.Supported() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	bpp := format.BytesPerPixel()

	srcPitch := alignUp(width*bpp, pitchAlign)
	if o.hasLayout {
		if o.layout.Offset > uint64(len(src)) {
			return nil, fmt.Errorf("%w: offset %d beyond %d-byte buffer",
				ErrSourceTooSmall, o.layout.Offset, len(src))
		}
		src = src[o.layout.Offset:]
		if o.layout.BytesPerRow != 0 {
			srcPitch = int(o.layout.BytesPerRow)
		}
	}
	if srcPitch < width*bpp {
		return nil, fmt.Errorf("%w: row pitch %d below %d bytes per row",
			ErrSourceTooSmall, srcPitch, width*bpp)
	}
	if need := srcPitch*(height-1) + width*bpp; len(src) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrSourceTooSmall, len(src), need)
	}

	levels := levelCount(width, height, o.mipmap)
	layouts, total := planLevels(width, height, levels, bpp)

	block, err := a.Reserve(total)
	if err != nil {
		return nil, fmt.Errorf("limatex: reserving %d bytes for %d levels: %w", total, levels, err)
	}

	t := &Texture{
		width:  width,
		height: height,
		format: format,
		levels: make([]TextureLevel, levels),
	}
	offset := 0
	for i, l := range layouts {
		t.levels[i] = TextureLevel{
			Index:    i,
			Width:    l.width,
			Height:   l.height,
			Size:     l.size,
			Data:     block.Data[offset : offset+l.size : offset+l.size],
			Physical: block.Physical + uint32(offset),
		}
		offset += l.size
	}

	swizzleLevel0(&t.levels[0], src, srcPitch)
	for i := 1; i < levels; i++ {
		generateMipLevel(&t.levels[i], &t.levels[i-1])
	}

	// Swizzled RGB888: flag0 set, flag1 clear.
	packDescriptor(&t.desc, width, height, format, 1, 0)
	for i := range t.levels {
		attachLevel(&t.desc, i, t.levels[i].Physical)
	}

	Logger().Debug("texture created",
		"width", width, "height", height, "format", format.String(),
		"levels", levels, "bytes", total)

	return t, nil
}

// Width returns the texture's level 0 width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture's level 0 height in texels.
func (t *Texture) Height() int { return t.height }

// Format returns the texture's texel format.
func (t *Texture) Format() Format { return t.format }

// NumLevels returns the length of the mip chain.
func (t *Texture) NumLevels() int { return len(t.levels) }

// Level returns the mip level at the given index.
// It panics if the index is out of range.
func (t *Texture) Level(i int) TextureLevel { return t.levels[i] }

// Descriptor returns a copy of the packed hardware descriptor.
func (t *Texture) Descriptor() Descriptor { return t.desc }

// Extent returns the texture's level 0 size as a gputypes extent.
func (t *Texture) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(t.width),
		Height:             uint32(t.height),
		DepthOrArrayLayers: 1,
	}
}
