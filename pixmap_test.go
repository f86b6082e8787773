package svgbridge

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestNewPixmapZeroed verifies a fresh pixmap is transparent black.
func TestNewPixmapZeroed(t *testing.T) {
	pm := NewPixmap(10, 10)
	if pm.Width() != 10 || pm.Height() != 10 {
		t.Errorf("dimensions = %dx%d, want 10x10", pm.Width(), pm.Height())
	}
	if got := len(pm.Data()); got != 400 {
		t.Fatalf("data length = %d, want 400", got)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %d, want 0", i, v)
		}
	}
}

// TestWrapPixmapAliases verifies a wrapped pixmap shares the caller's memory.
func TestWrapPixmapAliases(t *testing.T) {
	buf := make([]uint8, 4*4*4)
	pm, err := WrapPixmap(4, 4, buf)
	if err != nil {
		t.Fatalf("WrapPixmap() error = %v, want nil", err)
	}

	pm.SetPixel(1, 2, 10, 20, 30, 40)
	i := (2*4 + 1) * 4
	if buf[i+0] != 10 || buf[i+1] != 20 || buf[i+2] != 30 || buf[i+3] != 40 {
		t.Errorf("caller buffer = (%d, %d, %d, %d), want (10, 20, 30, 40)",
			buf[i+0], buf[i+1], buf[i+2], buf[i+3])
	}

	// The image.RGBA view aliases the same bytes.
	pm.RGBA().Pix[0] = 99
	if pm.Data()[0] != 99 {
		t.Error("RGBA() view does not alias the pixmap data")
	}
}

// TestWrapPixmapValidation verifies size and dimension checks.
func TestWrapPixmapValidation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		bufLen        int
	}{
		{"short buffer", 4, 4, 63},
		{"long buffer", 4, 4, 65},
		{"zero width", 0, 4, 0},
		{"negative height", 4, -1, 64},
	}
	for _, tt := range tests {
		_, err := WrapPixmap(tt.width, tt.height, make([]uint8, tt.bufLen))
		if !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("%s: WrapPixmap() error = %v, want ErrInvalidArgs", tt.name, err)
		}
	}
}

// TestSetPixelOutOfBounds verifies out-of-bounds writes are silently ignored.
func TestSetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	oob := []struct{ x, y int }{
		{-1, 2}, {4, 2}, {2, -1}, {2, 4}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, 255, 255, 255, 255)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

// TestClear verifies Clear resets previously painted pixels.
func TestClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(0, 0, 1, 2, 3, 4)
	pm.Clear()
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %d after Clear, want 0", i, v)
		}
	}
}

// TestPixmapImageInterface verifies At, Bounds and out-of-range reads.
func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(3, 1, 9, 8, 7, 6)

	r, g, b, a := pm.At(3, 1).RGBA()
	if r>>8 != 9 || g>>8 != 8 || b>>8 != 7 || a>>8 != 6 {
		t.Errorf("At(3, 1) = (%d, %d, %d, %d), want (9, 8, 7, 6) in 8-bit", r>>8, g>>8, b>>8, a>>8)
	}

	if _, _, _, a := pm.At(-1, 0).RGBA(); a != 0 {
		t.Errorf("At(-1, 0) alpha = %d, want 0", a)
	}

	if got := pm.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Errorf("Bounds() = %v, want 4x4", got)
	}
}

// TestSavePNG round-trips a pixmap through the PNG encoder.
func TestSavePNG(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(2, 1, 255, 0, 0, 255)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved PNG: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded bounds = %v, want 3x2", b)
	}
	r, _, _, a := img.At(2, 1).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("decoded pixel (2, 1) = (r=%d, a=%d), want opaque red", r>>8, a>>8)
	}
}
