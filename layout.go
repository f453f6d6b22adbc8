package limatex

import "math/bits"

// MaxDimension is the largest width or height the hardware samples.
// It also bounds the mip chain at 13 levels, which is what lets the
// descriptor carry explicit addresses for levels 0-10 only.
const MaxDimension = 4096

const (
	// tileSize is the side of the swizzle tile; level storage is
	// padded to whole tiles in both dimensions.
	tileSize = 16

	// pitchAlign is the row pitch alignment in bytes.
	pitchAlign = 4

	// levelAlign is the per-level storage alignment in bytes. Because
	// every level from 4x4 down rounds up to exactly levelAlign, the
	// 2x2 and 1x1 levels always sit at 1024-byte strides after level
	// 10, which is where the hardware expects them: the descriptor
	// has no address fields for levels 11 and 12.
	levelAlign = 1024
)

// alignUp rounds v up to the next multiple of a; a must be a power
// of two.
func alignUp(v, a int) int {
	return (v + a - 1) &^ (a - 1)
}

// levelLayout describes the storage geometry of one mip level.
type levelLayout struct {
	width  int // texels
	height int // texels
	pitch  int // bytes per padded row
	size   int // bytes, aligned to levelAlign
}

// planLevel computes the storage geometry of mip level i for a
// texture of the given full-resolution dimensions.
func planLevel(width, height, i, bytesPerPixel int) levelLayout {
	l := levelLayout{
		width:  max(1, width>>i),
		height: max(1, height>>i),
	}
	l.pitch = alignUp(alignUp(l.width, tileSize)*bytesPerPixel, pitchAlign)
	l.size = alignUp(l.pitch*alignUp(l.height, tileSize), levelAlign)
	return l
}

// planLevels computes the geometry of every level and the total
// arena footprint of the chain.
func planLevels(width, height, levels, bytesPerPixel int) ([]levelLayout, int) {
	layouts := make([]levelLayout, levels)
	total := 0
	for i := range layouts {
		layouts[i] = planLevel(width, height, i, bytesPerPixel)
		total += layouts[i].size
	}
	return layouts, total
}

// levelCount returns the length of the mip chain:
// floor(log2(max(width, height))) + 1 with mipmapping, else 1.
func levelCount(width, height int, mipmap bool) int {
	if !mipmap {
		return 1
	}
	return bits.Len(uint(max(width, height)))
}
