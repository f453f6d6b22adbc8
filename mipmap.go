package limatex

import "github.com/gogpu/limatex/internal/fill"

// Mip generation works directly on swizzled storage. The curve maps
// the 2x2 texel block at (2x, 2y) to four consecutive positions
// starting at 4*Index(x, y), so the source quad for a destination
// texel is four fixed byte offsets from one source address; no
// separate index computation for (2x, 2y) is needed. One source tile
// covers 8x8 destination texels, hence the >>3 source tile
// coordinates and the &0xFF wrap of the shifted index.
//
// Averaging is integer and truncating, over the full 2x2 (or 2x1/1x2)
// window even at odd or small edges. A known binary driver averages
// only half the window at small odd edges; that looks like a defect
// on its side and is deliberately not reproduced, so results differ
// from it there.

// sourceGroupOffset returns the byte offset of the texel group in the
// source level that destination texel (x, y) with curve position idx
// averages from.
func sourceGroupOffset(srcBlockPitch, x, y, idx int) int {
	tile := (y>>3)*srcBlockPitch + x>>3
	return rgbBytes*texelsPerTile*tile + rgbBytes*(idx<<2&0xFF)
}

// generateMipLevel derives one mip level from its predecessor with a
// box filter. Both levels use their own swizzled addressing; the
// predecessor is assumed fully populated.
func generateMipLevel(dst, src *TextureLevel) {
	srcBlockPitch := blockPitch(src.Width)

	switch {
	case src.Width == 1:
		// Single column: average vertically adjacent texels. The
		// curve places (0, 2y+1) three positions after (0, 2y).
		for y := 0; y < dst.Height; y++ {
			idx := fill.Index(0, y&15)
			d := dst.Data[texelOffset(dst.Width, 0, y):]
			s := src.Data[sourceGroupOffset(srcBlockPitch, 0, y, idx):]
			d[0] = byte((int(s[0]) + int(s[9])) / 2)
			d[1] = byte((int(s[1]) + int(s[10])) / 2)
			d[2] = byte((int(s[2]) + int(s[11])) / 2)
		}

	case src.Height == 1:
		// Single row: average horizontally adjacent texels, one
		// curve position apart.
		for x := 0; x < dst.Width; x++ {
			idx := fill.Index(x&15, 0)
			d := dst.Data[texelOffset(dst.Width, x, 0):]
			s := src.Data[sourceGroupOffset(srcBlockPitch, x, 0, idx):]
			d[0] = byte((int(s[0]) + int(s[3])) / 2)
			d[1] = byte((int(s[1]) + int(s[4])) / 2)
			d[2] = byte((int(s[2]) + int(s[5])) / 2)
		}

	default:
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				idx := fill.Index(x&15, y&15)
				d := dst.Data[texelOffset(dst.Width, x, y):]
				s := src.Data[sourceGroupOffset(srcBlockPitch, x, y, idx):]
				d[0] = byte((int(s[0]) + int(s[3]) + int(s[6]) + int(s[9])) / 4)
				d[1] = byte((int(s[1]) + int(s[4]) + int(s[7]) + int(s[10])) / 4)
				d[2] = byte((int(s[2]) + int(s[5]) + int(s[8]) + int(s[11])) / 4)
			}
		}
	}
}
