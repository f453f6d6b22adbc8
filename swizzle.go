package limatex

import "github.com/gogpu/limatex/internal/fill"

// Texel layout constants for the swizzled representation. Storage is
// tiled: each 16x16 tile holds its 256 texels consecutively, ordered
// along the space-filling curve, and tiles follow each other in
// row-major order.
const (
	// texelsPerTile is the number of texels in one swizzle tile.
	texelsPerTile = tileSize * tileSize

	// rgbBytes is the texel size of FormatRGB888.
	rgbBytes = 3
)

// blockPitch returns the number of tiles per tile row for a level of
// the given width.
func blockPitch(width int) int {
	return alignUp(width, tileSize) / tileSize
}

// texelOffset returns the byte offset of texel (x, y) within the
// swizzled storage of a level of the given width. The mapping is a
// bijection from valid coordinates to storage offsets; bytes of the
// tile padding outside [0,width)x[0,height) are never addressed.
func texelOffset(width, x, y int) int {
	tile := (y>>4)*blockPitch(width) + x>>4
	return rgbBytes*texelsPerTile*tile + rgbBytes*fill.Index(x&15, y&15)
}

// swizzleLevel0 fills the level 0 storage from a linear source buffer
// whose rows start srcPitch bytes apart. Channel bytes are copied
// verbatim; tile padding keeps whatever content the arena held.
func swizzleLevel0(level *TextureLevel, src []byte, srcPitch int) {
	for y := 0; y < level.Height; y++ {
		row := src[y*srcPitch:]
		for x := 0; x < level.Width; x++ {
			dst := level.Data[texelOffset(level.Width, x, y):]
			dst[0] = row[rgbBytes*x+0]
			dst[1] = row[rgbBytes*x+1]
			dst[2] = row[rgbBytes*x+2]
		}
	}
}

// At returns the channel values of texel (x, y) of the given mip
// level, reading back through the swizzled layout. It returns zeros
// when the level or coordinates are out of range.
func (t *Texture) At(level, x, y int) (r, g, b uint8) {
	if level < 0 || level >= len(t.levels) {
		return 0, 0, 0
	}
	l := &t.levels[level]
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0, 0, 0
	}
	p := l.Data[texelOffset(l.Width, x, y):]
	return p[0], p[1], p[2]
}
