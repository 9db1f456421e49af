package imaging

import (
	"testing"

	"github.com/ironsheep/rgbconv/internal/raster"
)

func TestCrop(t *testing.T) {
	g := createGrid(100, 100, raster.Pixel{R: 255})

	tests := []struct {
		name       string
		region     *Region
		scale      float64
		wantWidth  int
		wantHeight int
	}{
		{"full image, no scale", nil, 1.0, 100, 100},
		{"half size crop", &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 1.0, 50, 50},
		{"center crop", &Region{X1: 25, Y1: 25, X2: 75, Y2: 75}, 1.0, 50, 50},
		{"crop with 2x scale", &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 2.0, 100, 100},
		{"crop with 0.5x scale", &Region{X1: 0, Y1: 0, X2: 100, Y2: 100}, 0.5, 50, 50},
		{"non-positive scale ignored", nil, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Crop(g, tt.region, tt.scale)
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}

			bounds := result.Bounds()
			if bounds.Dx() != tt.wantWidth {
				t.Errorf("Width: got %d, want %d", bounds.Dx(), tt.wantWidth)
			}
			if bounds.Dy() != tt.wantHeight {
				t.Errorf("Height: got %d, want %d", bounds.Dy(), tt.wantHeight)
			}
		})
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	g := createGrid(100, 100, raster.Pixel{})

	tests := []struct {
		name   string
		region *Region
	}{
		{"x1 negative", &Region{X1: -1, Y1: 0, X2: 50, Y2: 50}},
		{"y1 negative", &Region{X1: 0, Y1: -1, X2: 50, Y2: 50}},
		{"x2 too large", &Region{X1: 0, Y1: 0, X2: 101, Y2: 50}},
		{"y2 too large", &Region{X1: 0, Y1: 0, X2: 50, Y2: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(g, tt.region, 1.0); err == nil {
				t.Error("Crop should fail for out of bounds region")
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	g := createGrid(100, 100, raster.Pixel{})

	tests := []struct {
		name   string
		region *Region
	}{
		{"x1 equals x2", &Region{X1: 50, Y1: 0, X2: 50, Y2: 50}},
		{"y1 equals y2", &Region{X1: 0, Y1: 50, X2: 50, Y2: 50}},
		{"x1 greater than x2", &Region{X1: 60, Y1: 0, X2: 50, Y2: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(g, tt.region, 1.0); err == nil {
				t.Error("Crop should fail for invalid region")
			}
		})
	}
}

func TestCrop_ScaleTooSmall(t *testing.T) {
	g := createGrid(4, 4, raster.Pixel{})
	if _, err := Crop(g, nil, 0.1); err == nil {
		t.Error("Crop should fail when scaling below one pixel")
	}
}

func TestCrop_VerifyContent(t *testing.T) {
	g := createPatternGrid(100, 100)

	// Crop the green top-right quadrant.
	result, err := Crop(g, &Region{X1: 50, Y1: 0, X2: 100, Y2: 50}, 1.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	cropped := raster.FromImage(result)
	r, gr, b := cropped.RGB(25, 25)
	if r != 0 || gr != 255 || b != 0 {
		t.Errorf("cropped center: got (%d,%d,%d), want (0,255,0)", r, gr, b)
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("1, 2,30,40")
	if err != nil {
		t.Fatalf("ParseRegion failed: %v", err)
	}
	want := Region{X1: 1, Y1: 2, X2: 30, Y2: 40}
	if *r != want {
		t.Errorf("got %+v, want %+v", *r, want)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d"} {
		if _, err := ParseRegion(bad); err == nil {
			t.Errorf("ParseRegion(%q) should fail", bad)
		}
	}
}
