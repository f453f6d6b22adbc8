package limatex

import "errors"

// Common errors for texture construction. Construction fails as a
// unit: when any of these is returned, no texture is produced and the
// arena's used-offset is unchanged. Allocation failures are reported
// as arena.ErrOutOfMemory.
var (
	// ErrInvalidDimension is returned when width or height is
	// non-positive or exceeds MaxDimension.
	ErrInvalidDimension = errors.New("limatex: invalid texture dimension")

	// ErrUnsupportedFormat is returned for any texel format the
	// swizzler does not implement.
	ErrUnsupportedFormat = errors.New("limatex: unsupported texel format")

	// ErrSourceTooSmall is returned when the source buffer does not
	// cover width x height pixels at the source row pitch.
	ErrSourceTooSmall = errors.New("limatex: source buffer too small")
)
