package limatex

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/limatex/arena"
)

// TestCreateTextureLevelChain verifies the documented chain for a
// 300x200 mipmapped texture: 9 levels from 300x200 down to 1x1.
func TestCreateTextureLevelChain(t *testing.T) {
	a := newTestArena(1<<20, 0x40000000)
	tex, err := CreateTexture(a, rgbSource(300, 200, 1, 2, 3), 300, 200,
		FormatRGB888, WithMipmaps())
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	if tex.NumLevels() != 9 {
		t.Fatalf("NumLevels() = %d, want 9", tex.NumLevels())
	}
	wantDims := [9][2]int{
		{300, 200}, {150, 100}, {75, 50}, {37, 25}, {18, 12},
		{9, 6}, {4, 3}, {2, 1}, {1, 1},
	}
	offset := 0
	for i, want := range wantDims {
		l := tex.Level(i)
		if l.Index != i || l.Width != want[0] || l.Height != want[1] {
			t.Errorf("level %d = %dx%d (index %d), want %dx%d", i, l.Width, l.Height, l.Index, want[0], want[1])
		}
		if l.Size%1024 != 0 {
			t.Errorf("level %d size %d not 1024-byte aligned", i, l.Size)
		}
		if len(l.Data) != l.Size {
			t.Errorf("level %d has %d storage bytes, Size %d", i, len(l.Data), l.Size)
		}
		if l.Physical != 0x40000000+uint32(offset) {
			t.Errorf("level %d physical = %#x, want %#x", i, l.Physical, 0x40000000+uint32(offset))
		}
		offset += l.Size
	}
	if a.Used() != offset {
		t.Errorf("arena used %d bytes, chain total %d", a.Used(), offset)
	}

	if got := tex.Extent(); got != (gputypes.Extent3D{Width: 300, Height: 200, DepthOrArrayLayers: 1}) {
		t.Errorf("Extent() = %+v", got)
	}
}

// TestCreateTextureNoMipmaps: without the option only level 0 exists.
func TestCreateTextureNoMipmaps(t *testing.T) {
	a := newTestArena(1<<20, 0)
	tex, err := CreateTexture(a, rgbSource(64, 64, 0, 0, 0), 64, 64, FormatRGB888)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if tex.NumLevels() != 1 {
		t.Errorf("NumLevels() = %d, want 1", tex.NumLevels())
	}
}

// TestCreateTextureOutOfMemory: a chain that exceeds the arena fails
// with arena.ErrOutOfMemory and leaves the used-offset untouched.
func TestCreateTextureOutOfMemory(t *testing.T) {
	a := newTestArena(64*1024, 0)
	_, err := CreateTexture(a, rgbSource(300, 200, 0, 0, 0), 300, 200,
		FormatRGB888, WithMipmaps())
	if !errors.Is(err, arena.ErrOutOfMemory) {
		t.Fatalf("err = %v, want arena.ErrOutOfMemory", err)
	}
	if a.Used() != 0 {
		t.Errorf("failed construction advanced arena: used = %d", a.Used())
	}
}

// TestCreateTextureInvalidDimension: dimensions beyond 4096 are
// rejected before any allocation.
func TestCreateTextureInvalidDimension(t *testing.T) {
	cases := []struct{ w, h int }{
		{5000, 100}, {100, 5000}, {5000, 5000}, {0, 64}, {64, 0}, {-1, 64},
	}
	for _, c := range cases {
		a := newTestArena(1<<20, 0)
		_, err := CreateTexture(a, nil, c.w, c.h, FormatRGB888)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%dx%d: err = %v, want ErrInvalidDimension", c.w, c.h, err)
		}
		if a.Used() != 0 {
			t.Errorf("%dx%d: rejected construction advanced arena", c.w, c.h)
		}
	}
}

// TestCreateTextureUnsupportedFormat: every declared selector except
// RGB888, and an unknown one, is rejected before any allocation.
func TestCreateTextureUnsupportedFormat(t *testing.T) {
	formats := []Format{
		FormatL8, FormatA8, FormatI8, FormatRGB565, FormatRGBA5551,
		FormatRGBA4444, FormatLA88, FormatRGBA8888, FormatRGBX8888,
		Format(0x3F),
	}
	for _, f := range formats {
		a := newTestArena(1<<20, 0)
		_, err := CreateTexture(a, make([]byte, 1<<16), 16, 16, f)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%v: err = %v, want ErrUnsupportedFormat", f, err)
		}
		if a.Used() != 0 {
			t.Errorf("%v: rejected construction advanced arena", f)
		}
	}
}

// TestCreateTextureSourceTooSmall: a short source buffer fails before
// any allocation.
func TestCreateTextureSourceTooSmall(t *testing.T) {
	a := newTestArena(1<<20, 0)
	_, err := CreateTexture(a, make([]byte, 100), 16, 16, FormatRGB888)
	if !errors.Is(err, ErrSourceTooSmall) {
		t.Fatalf("err = %v, want ErrSourceTooSmall", err)
	}
	if a.Used() != 0 {
		t.Errorf("rejected construction advanced arena: used = %d", a.Used())
	}
}

// TestCreateTextureMaxDimension builds a full 13-level chain (the
// 4096 bound) and verifies the tail levels the descriptor cannot
// address sit at consecutive 1024-byte strides after level 10.
func TestCreateTextureMaxDimension(t *testing.T) {
	a := newTestArena(1<<21, 0x10000000)
	tex, err := CreateTexture(a, rgbSource(4096, 4, 5, 6, 7), 4096, 4,
		FormatRGB888, WithMipmaps())
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if tex.NumLevels() != 13 {
		t.Fatalf("NumLevels() = %d, want 13", tex.NumLevels())
	}

	l10, l11, l12 := tex.Level(10), tex.Level(11), tex.Level(12)
	if l11.Physical != l10.Physical+1024 || l12.Physical != l11.Physical+1024 {
		t.Errorf("tail levels not adjacent: %#x, %#x, %#x",
			l10.Physical, l11.Physical, l12.Physical)
	}
	if l10.Size != 1024 || l11.Size != 1024 || l12.Size != 1024 {
		t.Errorf("tail level sizes = %d, %d, %d, want 1024 each", l10.Size, l11.Size, l12.Size)
	}
}

// TestCreateTextureWithSourceLayout reads a source with an explicit
// offset and padded rows, wgpu-readback style.
func TestCreateTextureWithSourceLayout(t *testing.T) {
	const width, height, rowPitch, offset = 4, 2, 64, 128
	buf := make([]byte, offset+rowPitch*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf[offset+y*rowPitch+rgbBytes*x+0] = byte(100 + x)
			buf[offset+y*rowPitch+rgbBytes*x+1] = byte(200 + y)
			buf[offset+y*rowPitch+rgbBytes*x+2] = 42
		}
	}

	a := newTestArena(1<<16, 0)
	tex, err := CreateTexture(a, buf, width, height, FormatRGB888,
		WithSourceLayout(gputypes.TextureDataLayout{Offset: offset, BytesPerRow: rowPitch}))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := tex.At(0, x, y)
			if r != byte(100+x) || g != byte(200+y) || b != 42 {
				t.Errorf("At(0, %d, %d) = (%d, %d, %d)", x, y, r, g, b)
			}
		}
	}
}

// TestArenaSharedAcrossTextures: two constructions on one arena get
// disjoint storage and both descriptors point at their own levels.
func TestArenaSharedAcrossTextures(t *testing.T) {
	a := newTestArena(1<<20, 0x80000000)
	t1, err := CreateTexture(a, rgbSource(32, 32, 1, 1, 1), 32, 32, FormatRGB888)
	if err != nil {
		t.Fatalf("first CreateTexture: %v", err)
	}
	t2, err := CreateTexture(a, rgbSource(32, 32, 2, 2, 2), 32, 32, FormatRGB888)
	if err != nil {
		t.Fatalf("second CreateTexture: %v", err)
	}

	if t2.Level(0).Physical != t1.Level(0).Physical+uint32(t1.Level(0).Size) {
		t.Errorf("second texture at %#x, want %#x",
			t2.Level(0).Physical, t1.Level(0).Physical+uint32(t1.Level(0).Size))
	}
	if r, _, _ := t1.At(0, 0, 0); r != 1 {
		t.Errorf("first texture texel = %d, want 1", r)
	}
	if r, _, _ := t2.At(0, 0, 0); r != 2 {
		t.Errorf("second texture texel = %d, want 2", r)
	}
	if t1.Descriptor() == t2.Descriptor() {
		t.Error("distinct textures produced identical descriptors")
	}
}
