package limatex

import (
	"fmt"
	"strings"

	"github.com/gogpu/limatex/internal/bits"
)

// DescriptorWords is the size of a texture descriptor in 32-bit words.
const DescriptorWords = 16

// Descriptor is the register image the texture sampler reads. Its
// bit-for-bit layout is a hardware contract: a deviation does not
// produce an error, it produces incorrect rendering.
//
// Fields are packed at fixed bit positions across the word array and
// frequently straddle word boundaries, so all writes go through the
// internal bits package. Field map (bit offsets are absolute within
// the 512-bit record):
//
//	bit 0,  6 bits  texel format selector
//	bit 6           flag1 (cleared for swizzled RGB888)
//	bit 7           flag0 (set for swizzled RGB888)
//	word 1          constant 0x400: linear min/mag filter, not a cubemap
//	bit 86, 13 bits width in texels
//	bit 99, 13 bits height in texels
//	bit 112         always set; meaning unknown
//	bit 205, 3 bits memory layout selector (3 = swizzled)
//	bit 222+26*i    level i physical address >> 6, 26 bits, i in 0..10
//
// Levels 11 (2x2) and 12 (1x1) have no address field: the hardware
// expects them at consecutive 1024-byte strides after level 10, which
// the layout planner guarantees.
type Descriptor [DescriptorWords]uint32

// Descriptor field positions.
const (
	descFormatOffset = 0
	descFormatWidth  = 6
	descFlag1Offset  = 6
	descFlag0Offset  = 7

	descFilterConstant = 0x00000400 // word 1

	descWidthOffset  = 2*32 + 22
	descHeightOffset = 3*32 + 3
	descDimWidth     = 13
	descUnknownBit   = 3*32 + 16

	descLayoutOffset = 6*32 + 13
	descLayoutWidth  = 3

	descAddrOffset = 6*32 + 30
	descAddrWidth  = 26
	descAddrShift  = 6

	// descMaxAddressedLevel is the last level with an explicit
	// address field.
	descMaxAddressedLevel = 10

	// layoutSwizzled selects the space-filling-curve memory layout.
	layoutSwizzled = 3
)

// packDescriptor serializes format, dimensions and layout flags into
// the descriptor header fields.
func packDescriptor(d *Descriptor, width, height int, format Format, flag0, flag1 uint64) {
	bits.Set(d[:], descFormatOffset, descFormatWidth, uint64(format))
	bits.Set(d[:], descFlag1Offset, 1, flag1)
	bits.Set(d[:], descFlag0Offset, 1, flag0)
	d[1] = descFilterConstant
	bits.Set(d[:], descWidthOffset, descDimWidth, uint64(width))
	bits.Set(d[:], descHeightOffset, descDimWidth, uint64(height))
	bits.Set(d[:], descUnknownBit, 1, 1)
	bits.Set(d[:], descLayoutOffset, descLayoutWidth, layoutSwizzled)
}

// attachLevel writes the physical address of one mip level into its
// descriptor field. The address must be 64-byte aligned; in practice
// the layout planner aligns every level to 1024 bytes.
//
// Levels past descMaxAddressedLevel carry no field and are located by
// the adjacency invariant instead, so the call is a no-op for them.
func attachLevel(d *Descriptor, level int, physical uint32) {
	if level > descMaxAddressedLevel {
		return
	}
	bits.Set(d[:], descAddrOffset+descAddrWidth*level, descAddrWidth,
		uint64(physical>>descAddrShift))
}

// String returns the descriptor as 16 hexadecimal words, one line per
// four words, for debugging against register dumps.
func (d Descriptor) String() string {
	var b strings.Builder
	for i, w := range d {
		if i%4 == 0 {
			fmt.Fprintf(&b, "%02x:", i)
		}
		fmt.Fprintf(&b, " %08x", w)
		if i%4 == 3 && i != len(d)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
