package limatex

import "fmt"

// Format identifies a hardware texel format. The numeric value is the
// format selector the texture descriptor carries, so it is part of the
// hardware contract.
//
// The full selector set of the reference driver is declared for
// forward compatibility, but only FormatRGB888 is implemented today;
// CreateTexture rejects every other selector with ErrUnsupportedFormat.
type Format uint32

const (
	// FormatL8 is 8-bit luminance.
	FormatL8 Format = 0x09

	// FormatA8 is 8-bit alpha.
	FormatA8 Format = 0x0A

	// FormatI8 is 8-bit intensity.
	FormatI8 Format = 0x0B

	// FormatRGB565 is 16-bit RGB, 5-6-5 bits per channel.
	FormatRGB565 Format = 0x0E

	// FormatRGBA5551 is 16-bit RGBA with a 1-bit alpha.
	FormatRGBA5551 Format = 0x0F

	// FormatRGBA4444 is 16-bit RGBA, 4 bits per channel.
	FormatRGBA4444 Format = 0x10

	// FormatLA88 is 16-bit luminance plus alpha.
	FormatLA88 Format = 0x11

	// FormatRGB888 is 24-bit packed RGB, 3 bytes per pixel, no alpha.
	// This is the only format the swizzler implements.
	FormatRGB888 Format = 0x15

	// FormatRGBA8888 is 32-bit RGBA.
	FormatRGBA8888 Format = 0x16

	// FormatRGBX8888 is 32-bit RGB with a padding byte.
	FormatRGBX8888 Format = 0x17
)

// FormatInfo contains metadata about a texel format.
type FormatInfo struct {
	// BytesPerPixel is the storage size of one texel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool
}

// formatInfoTable contains metadata for each known format.
var formatInfoTable = map[Format]FormatInfo{
	FormatL8:       {BytesPerPixel: 1, Channels: 1, HasAlpha: false},
	FormatA8:       {BytesPerPixel: 1, Channels: 1, HasAlpha: true},
	FormatI8:       {BytesPerPixel: 1, Channels: 1, HasAlpha: false},
	FormatRGB565:   {BytesPerPixel: 2, Channels: 3, HasAlpha: false},
	FormatRGBA5551: {BytesPerPixel: 2, Channels: 4, HasAlpha: true},
	FormatRGBA4444: {BytesPerPixel: 2, Channels: 4, HasAlpha: true},
	FormatLA88:     {BytesPerPixel: 2, Channels: 2, HasAlpha: true},
	FormatRGB888:   {BytesPerPixel: 3, Channels: 3, HasAlpha: false},
	FormatRGBA8888: {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
	FormatRGBX8888: {BytesPerPixel: 4, Channels: 3, HasAlpha: false},
}

// Info returns metadata for the format. The second return value is
// false for selectors outside the known set.
func (f Format) Info() (FormatInfo, bool) {
	info, ok := formatInfoTable[f]
	return info, ok
}

// BytesPerPixel returns the storage size of one texel, or 0 for an
// unknown selector.
func (f Format) BytesPerPixel() int {
	return formatInfoTable[f].BytesPerPixel
}

// Supported reports whether the swizzler implements the format.
func (f Format) Supported() bool {
	return f == FormatRGB888
}

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case FormatL8:
		return "L8"
	case FormatA8:
		return "A8"
	case FormatI8:
		return "I8"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA5551:
		return "RGBA5551"
	case FormatRGBA4444:
		return "RGBA4444"
	case FormatLA88:
		return "LA88"
	case FormatRGB888:
		return "RGB888"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatRGBX8888:
		return "RGBX8888"
	}
	return fmt.Sprintf("Format(%#x)", uint32(f))
}
