// Package bits writes bitfields into arrays of 32-bit words.
//
// Hardware descriptor fields frequently straddle two adjacent words.
// Rather than hand-transcribing a shift/mask pair per field, every
// field write goes through Set, which handles word boundaries and
// clears exactly the target bits. Words carry multiple independent
// fields, so a wider or narrower clear would corrupt a sibling field.
package bits

// Set stores the low width bits of value at the given absolute bit
// offset within words. Bit 0 is the least significant bit of words[0],
// bit 32 the least significant bit of words[1], and so on. The target
// bits are cleared before the value is merged; no other bits change.
func Set(words []uint32, offset, width int, value uint64) {
	for width > 0 {
		w := offset >> 5
		shift := offset & 31
		n := min(32-shift, width)
		mask := uint32(uint64(1)<<n-1) << shift
		words[w] = words[w]&^mask | uint32(value)<<shift&mask
		value >>= n
		offset += n
		width -= n
	}
}

// Get reads the width-bit field at the given absolute bit offset,
// inverting Set.
func Get(words []uint32, offset, width int) uint64 {
	var value uint64
	read := 0
	for read < width {
		w := offset >> 5
		shift := offset & 31
		n := min(32-shift, width-read)
		part := uint64(words[w]>>shift) & (uint64(1)<<n - 1)
		value |= part << read
		offset += n
		read += n
	}
	return value
}
