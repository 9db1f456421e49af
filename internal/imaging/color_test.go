package imaging

import (
	"testing"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// createGrid creates an in-memory raster filled with one color
func createGrid(width, height int, p raster.Pixel) *raster.Grid {
	g := raster.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.SetRGB(x, y, p.R, p.G, p.B)
		}
	}
	return g
}

// createPatternGrid creates a raster with different colors in each quadrant
func createPatternGrid(width, height int) *raster.Grid {
	g := raster.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x < width/2 && y < height/2:
				g.SetRGB(x, y, 255, 0, 0) // Red top-left
			case x >= width/2 && y < height/2:
				g.SetRGB(x, y, 0, 255, 0) // Green top-right
			case x < width/2 && y >= height/2:
				g.SetRGB(x, y, 0, 0, 255) // Blue bottom-left
			default:
				g.SetRGB(x, y, 255, 255, 255) // White bottom-right
			}
		}
	}
	return g
}

func TestSampleColor(t *testing.T) {
	g := createGrid(100, 100, raster.Pixel{R: 255, G: 128, B: 64})

	result, err := SampleColor(g, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (raster.Pixel{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.Text != "(255, 128,  64)" {
		t.Errorf("Text: got %q, want %q", result.Text, "(255, 128,  64)")
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   raster.Pixel
		wantHex string
		wantHue int
		wantL   int
	}{
		{"pure red", raster.Pixel{R: 255}, "#FF0000", 0, 50},
		{"pure green", raster.Pixel{G: 255}, "#00FF00", 120, 50},
		{"pure blue", raster.Pixel{B: 255}, "#0000FF", 240, 50},
		{"white", raster.Pixel{R: 255, G: 255, B: 255}, "#FFFFFF", 0, 100},
		{"black", raster.Pixel{}, "#000000", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := createGrid(10, 10, tt.color)
			result, err := SampleColor(g, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.HSL.L != tt.wantL {
				t.Errorf("Lightness: got %d, want %d", result.HSL.L, tt.wantL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	g := createGrid(100, 100, raster.Pixel{R: 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(g, tt.x, tt.y); err == nil {
				t.Errorf("SampleColor(%d, %d) should fail for out of bounds", tt.x, tt.y)
			}
		})
	}
}

func TestDominantColors(t *testing.T) {
	g := createPatternGrid(100, 100)

	result, err := DominantColors(g, 4, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(result.Colors))
	}

	for _, c := range result.Colors {
		if c.Percentage != 25 {
			t.Errorf("color %s: got %.2f%%, want 25%%", c.Hex, c.Percentage)
		}
	}

	// Equal shares are ordered by hex.
	if result.Colors[0].Hex != "#0000F0" {
		t.Errorf("first color: got %s, want #0000F0", result.Colors[0].Hex)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	g := createPatternGrid(100, 100)

	result, err := DominantColors(g, 5, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color in red quadrant, got %d", len(result.Colors))
	}
	if result.Colors[0].RGB != (raster.Pixel{R: 240}) {
		t.Errorf("quantized red: got %+v", result.Colors[0].RGB)
	}
	if result.Colors[0].Percentage != 100 {
		t.Errorf("percentage: got %.2f, want 100", result.Colors[0].Percentage)
	}
}

func TestDominantColors_InvalidCount(t *testing.T) {
	if _, err := DominantColors(createGrid(2, 2, raster.Pixel{}), 0, nil); err == nil {
		t.Error("DominantColors should reject a zero count")
	}
}

func TestStats(t *testing.T) {
	g := raster.NewGrid(2, 1)
	g.SetRGB(0, 0, 10, 0, 255)
	g.SetRGB(1, 0, 20, 0, 255)

	s := Stats(g)
	if s.Red.Min != 10 || s.Red.Max != 20 || s.Red.Mean != 15 {
		t.Errorf("red: got %+v, want min 10 max 20 mean 15", s.Red)
	}
	if s.Green != (ChannelStats{}) {
		t.Errorf("green: got %+v, want zero", s.Green)
	}
	if s.Blue.Min != 255 || s.Blue.Max != 255 || s.Blue.Mean != 255 {
		t.Errorf("blue: got %+v", s.Blue)
	}
}

func TestStats_Empty(t *testing.T) {
	s := Stats(raster.NewGrid(0, 0))
	if *s != (StatsResult{}) {
		t.Errorf("empty raster stats: got %+v", s)
	}
}
