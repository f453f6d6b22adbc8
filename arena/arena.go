// Package arena provides a monotonic bump allocator over a fixed
// memory region that is visible to both the CPU and the GPU.
//
// The region is typically a physically contiguous buffer mapped into
// the process, so every byte has two addresses: the CPU-visible one
// (represented here as an offset into a byte slice) and the physical
// one the GPU uses. A reservation hands out both, and the two must
// never be mixed in address arithmetic.
//
// Arena memory only grows through reservations and is never reclaimed
// individually; the arena lives as long as the process or the mapping
// backing it.
package arena

import (
	"errors"
	"fmt"
	"sync"
)

// ErrOutOfMemory is returned when a reservation exceeds the arena's
// remaining capacity.
var ErrOutOfMemory = errors.New("arena: out of memory")

// Block is a contiguous reservation within an arena.
type Block struct {
	// Data is the CPU-visible storage of the block.
	Data []byte

	// Physical is the address by which the GPU accesses the same
	// storage.
	Physical uint32

	// Offset is the block's position from the start of the arena.
	Offset int
}

// Stats describes an arena's usage at a point in time.
type Stats struct {
	// TotalBytes is the size of the backing region.
	TotalBytes int

	// UsedBytes is the sum of all reservations so far.
	UsedBytes int

	// AvailableBytes is the remaining capacity.
	AvailableBytes int

	// Reservations is the number of successful Reserve calls.
	Reservations int
}

// String returns a human-readable summary of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("Arena[%d/%d bytes used, %d reservations]",
		s.UsedBytes, s.TotalBytes, s.Reservations)
}

// Arena is a bump allocator over a caller-provided memory region.
//
// Reservations advance a monotonic used-offset and are never returned.
// Arena is safe for concurrent use: the capacity check and the commit
// happen under one lock, so a failed Reserve leaves the used-offset
// untouched even with other reservations in flight.
type Arena struct {
	mu sync.Mutex

	mem          []byte
	physical     uint32
	used         int
	reservations int
}

// New creates an arena over mem, whose first byte the GPU addresses
// at physical. For texture use the physical address should be at
// least 1024-byte aligned: descriptor address fields drop the low
// bits of level addresses and rely on that alignment.
func New(mem []byte, physical uint32) *Arena {
	return &Arena{mem: mem, physical: physical}
}

// Reserve allocates size bytes from the arena.
//
// On success the used-offset advances by exactly size and the returned
// block is disjoint from every earlier reservation. On failure the
// arena is unchanged and the error wraps ErrOutOfMemory.
func (a *Arena) Reserve(size int) (Block, error) {
	if size < 0 {
		return Block{}, fmt.Errorf("arena: negative reservation size %d", size)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if size > len(a.mem)-a.used {
		return Block{}, fmt.Errorf("%w: need %d bytes, %d available",
			ErrOutOfMemory, size, len(a.mem)-a.used)
	}

	offset := a.used
	a.used += size
	a.reservations++

	return Block{
		Data:     a.mem[offset : offset+size : offset+size],
		Physical: a.physical + uint32(offset),
		Offset:   offset,
	}, nil
}

// Size returns the total size of the backing region.
func (a *Arena) Size() int {
	return len(a.mem)
}

// Used returns the current used-offset.
func (a *Arena) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}

// Available returns the remaining capacity.
func (a *Arena) Available() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mem) - a.used
}

// Stats returns current usage statistics.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{
		TotalBytes:     len(a.mem),
		UsedBytes:      a.used,
		AvailableBytes: len(a.mem) - a.used,
		Reservations:   a.reservations,
	}
}
