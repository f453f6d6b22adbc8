// Package fill implements the space-filling curve the Mali-400 texture
// unit uses to order texels inside a 16x16 tile.
//
// At first glance the curve resembles a Hilbert curve, but it is a
// simplified calculation that does not rotate subsequent levels. It has
// similar spatial locality, and the lack of rotation keeps addressing
// identical at every mip level, which is what makes in-place mipmap
// generation over swizzled data practical.
package fill

// interleave spreads the 4 bits of its index into bit positions
// 0, 2, 4 and 6:
//
//	out = (v & 0x8) << 3 | (v & 0x4) << 2 | (v & 0x2) << 1 | (v & 0x1)
var interleave = [16]uint8{
	0x00, 0x01, 0x04, 0x05,
	0x10, 0x11, 0x14, 0x15,
	0x40, 0x41, 0x44, 0x45,
	0x50, 0x51, 0x54, 0x55,
}

// Index maps intra-tile coordinates to the texel's position along the
// curve. x and y must be in [0, 16); the result is in [0, 256) and the
// mapping is a bijection over the 256 coordinate pairs.
//
// The even bits of the result hold the spread of y^x, the odd bits the
// spread of y.
func Index(x, y int) int {
	return int(interleave[y^x]) | int(interleave[y])<<1
}

// Coords is the inverse of Index: it recovers the intra-tile
// coordinates of the texel at the given curve position.
func Coords(index int) (x, y int) {
	y = compact(index >> 1)
	x = y ^ compact(index)
	return x, y
}

// compact gathers bits 0, 2, 4 and 6 of v into a 4-bit value,
// undoing the interleave table.
func compact(v int) int {
	return v&0x1 | v>>1&0x2 | v>>2&0x4 | v>>3&0x8
}
