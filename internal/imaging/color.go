package imaging

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string       `json:"hex"` // Hex format "#RRGGBB"
	RGB raster.Pixel `json:"rgb"` // RGB components
	HSL HSLColor     `json:"hsl"` // HSL representation
	// Text is the pixel as it appears in an RGB file, e.g. "(255,   0,  64)".
	Text string `json:"text"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - src: The raster to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the raster bounds.
func SampleColor(src raster.Source, x, y int) (*ColorResult, error) {
	if x < 0 || x >= src.Width() || y < 0 || y >= src.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b := src.RGB(x, y)
	return describe(raster.Pixel{R: r, G: g, B: b}), nil
}

func describe(p raster.Pixel) *ColorResult {
	c := colorful.Color{R: float64(p.R) / 255.0, G: float64(p.G) / 255.0, B: float64(p.B) / 255.0}
	h, s, l := c.Hsl()
	return &ColorResult{
		Hex:  strings.ToUpper(c.Hex()),
		RGB:  p,
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Text: fmt.Sprintf("(%3d, %3d, %3d)", p.R, p.G, p.B),
	}
}

// ColorFrequency represents a color and its occurrence frequency in a raster.
type ColorFrequency struct {
	Hex        string       `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64      `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        raster.Pixel `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common colors from a raster or region.
//
// Parameters:
//   - src: The raster to analyze.
//   - count: Maximum number of colors to return.
//   - region: Optional rectangular region to analyze. If nil, the entire raster
//     is analyzed. The region is clipped to the raster bounds.
//
// # Color Quantization
//
// To group similar colors, each component is quantized as
//
//	quantized = (original / 16) * 16
//
// so colors within 16 units of each other (per component) are counted together.
// Ties are broken by hex value so results are deterministic.
func DominantColors(src raster.Source, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	x1, y1, x2, y2 := 0, 0, src.Width(), src.Height()
	if region != nil {
		x1, y1 = max(region.X1, 0), max(region.Y1, 0)
		x2, y2 = min(region.X2, src.Width()), min(region.Y2, src.Height())
	}

	colorCounts := make(map[raster.Pixel]int)
	totalPixels := 0
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			r, g, b := src.RGB(x, y)
			colorCounts[raster.Pixel{R: r / 16 * 16, G: g / 16 * 16, B: b / 16 * 16}]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(colorCounts))
	for p, cnt := range colorCounts {
		colors = append(colors, ColorFrequency{
			Hex:        describe(p).Hex,
			Percentage: math.Round(float64(cnt)/float64(totalPixels)*10000) / 100,
			RGB:        p,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// ChannelStats summarizes one color channel.
type ChannelStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
}

// StatsResult holds per-channel statistics of a raster.
type StatsResult struct {
	Red   ChannelStats `json:"red"`
	Green ChannelStats `json:"green"`
	Blue  ChannelStats `json:"blue"`
}

// Stats builds a histogram of every channel and reports min, max and mean.
// An empty raster yields zero stats.
func Stats(g *raster.Grid) *StatsResult {
	h := histogram.NewRGBAHistogram(g)
	return &StatsResult{
		Red:   channelStats(h.R.Bins),
		Green: channelStats(h.G.Bins),
		Blue:  channelStats(h.B.Bins),
	}
}

func channelStats(bins []int) ChannelStats {
	var cs ChannelStats
	total, sum := 0, 0
	cs.Min = -1
	for v, n := range bins {
		if n == 0 {
			continue
		}
		if cs.Min < 0 {
			cs.Min = v
		}
		cs.Max = v
		total += n
		sum += v * n
	}
	if total == 0 {
		return ChannelStats{}
	}
	cs.Mean = math.Round(float64(sum)/float64(total)*100) / 100
	return cs
}
