package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// createTestImage creates a PNG file with a solid color for testing
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	return path
}

// createNRGBATestImage creates a PNG file from non-premultiplied pixels so
// translucent colors are stored exactly
func createNRGBATestImage(t *testing.T, width, height int, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "translucent.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	return path
}

func TestImageCache_Load(t *testing.T) {
	path := createTestImage(t, 100, 50, color.RGBA{255, 0, 0, 255})
	cache := NewImageCache()

	g, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Width() != 100 || g.Height() != 50 {
		t.Errorf("got %dx%d, want 100x50", g.Width(), g.Height())
	}

	// Second load should return the cached raster
	g2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if g != g2 {
		t.Error("second Load should return the cached raster")
	}
}

func TestImageCache_LoadNonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_ClearAndEvict(t *testing.T) {
	path := createTestImage(t, 10, 10, color.RGBA{0, 255, 0, 255})
	cache := NewImageCache()

	g, _ := cache.Load(path)
	cache.Evict(path)
	g2, _ := cache.Load(path)
	if g == g2 {
		t.Error("Evict should force a reload")
	}

	cache.Clear()
	g3, _ := cache.Load(path)
	if g2 == g3 {
		t.Error("Clear should force a reload")
	}
}

func TestImageCache_Concurrent(t *testing.T) {
	path := createTestImage(t, 20, 20, color.RGBA{0, 0, 255, 255})
	cache := NewImageCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestDecode_DropsAlpha(t *testing.T) {
	path := createNRGBATestImage(t, 2, 2, color.NRGBA{200, 100, 50, 128})

	g, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	r, gr, b := g.RGB(1, 1)
	if r != 200 || gr != 100 || b != 50 {
		t.Errorf("got (%d,%d,%d), want (200,100,50)", r, gr, b)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	g := createPatternGrid(16, 16)
	dir := t.TempDir()

	t.Run("png is lossless", func(t *testing.T) {
		path := filepath.Join(dir, "out.png")
		if err := Encode(path, g, 0); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		got, err := Decode(path)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if d, differs := raster.FirstDifference(g, got); differs {
			t.Errorf("round trip changed pixels: %s", d)
		}
	})

	t.Run("jpeg keeps dimensions", func(t *testing.T) {
		path := filepath.Join(dir, "out.jpg")
		if err := Encode(path, g, 90); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		got, err := Decode(path)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got.Width() != 16 || got.Height() != 16 {
			t.Errorf("got %dx%d, want 16x16", got.Width(), got.Height())
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		if err := Encode(filepath.Join(dir, "out.xyz"), g, 0); err == nil {
			t.Error("Encode should fail for an unknown extension")
		}
	})
}

func TestPathKinds(t *testing.T) {
	tests := []struct {
		path      string
		wantImage bool
		wantText  bool
		wantName  string
	}{
		{"a.png", true, false, "png"},
		{"a.JPG", true, false, "jpeg"},
		{"a.jpeg", true, false, "jpeg"},
		{"a.gif", true, false, "gif"},
		{"a.bmp", true, false, "bmp"},
		{"a.tiff", true, false, "tiff"},
		{"a.txt", false, true, "rgb"},
		{"a.TXT", false, true, "rgb"},
		{"a.doc", false, false, "unknown"},
		{"noext", false, false, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsImagePath(tt.path); got != tt.wantImage {
				t.Errorf("IsImagePath: got %v, want %v", got, tt.wantImage)
			}
			if got := IsTextPath(tt.path); got != tt.wantText {
				t.Errorf("IsTextPath: got %v, want %v", got, tt.wantText)
			}
			if got := FormatName(tt.path); got != tt.wantName {
				t.Errorf("FormatName: got %s, want %s", got, tt.wantName)
			}
		})
	}
}

func TestLoadImageInfo(t *testing.T) {
	path := createTestImage(t, 200, 150, color.RGBA{255, 255, 255, 255})

	g, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	info, err := LoadImageInfo(g, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes should be positive, got %d", info.FileSizeBytes)
	}
}

func TestLoadImageInfo_MissingFile(t *testing.T) {
	if _, err := LoadImageInfo(raster.NewGrid(1, 1), "/nonexistent/file.png"); err == nil {
		t.Error("LoadImageInfo should fail for a missing file")
	}
}
