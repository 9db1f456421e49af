package imaging

import (
	"math"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareResult contains the outcome of a pixel-by-pixel comparison.
type CompareResult struct {
	// Identical is true when both rasters have the same size and pixels.
	Identical bool `json:"identical"`

	SameSize bool `json:"same_size"`
	WantSize Size `json:"want_size"`
	GotSize  Size `json:"got_size"`

	// SimilarityScore is the fraction of compared pixels that match (0.0 to 1.0).
	SimilarityScore float64 `json:"similarity_score"`

	// PixelsDifferent counts differing pixels within the overlapping area.
	PixelsDifferent int `json:"pixels_different"`

	// TotalPixels is the size of the overlapping area that was compared.
	TotalPixels int `json:"total_pixels"`

	// AverageColorDiff is the mean absolute per-channel difference.
	AverageColorDiff float64 `json:"average_color_diff"`

	// FirstDifference is the first mismatch in row-major order, nil when identical.
	FirstDifference *raster.Difference `json:"first_difference,omitempty"`
}

// Compare compares want and got pixel by pixel.
//
// Unlike a perceptual diff, any component mismatch counts as a different
// pixel: the RGB text format is lossless, so converting an image to text and
// back must reproduce every value exactly. When sizes differ only the
// overlapping top-left area is scored, and FirstDifference still reports where
// the rasters stop agreeing.
func Compare(want, got raster.Source) *CompareResult {
	minW := min(want.Width(), got.Width())
	minH := min(want.Height(), got.Height())

	totalPixels := minW * minH
	pixelsDifferent := 0
	var totalColorDiff float64

	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			r1, g1, b1 := want.RGB(x, y)
			r2, g2, b2 := got.RGB(x, y)
			diff := float64(absDiff(r1, r2)+absDiff(g1, g2)+absDiff(b1, b2)) / 3.0
			totalColorDiff += diff
			if diff > 0 {
				pixelsDifferent++
			}
		}
	}

	res := &CompareResult{
		SameSize:        want.Width() == got.Width() && want.Height() == got.Height(),
		WantSize:        Size{Width: want.Width(), Height: want.Height()},
		GotSize:         Size{Width: got.Width(), Height: got.Height()},
		PixelsDifferent: pixelsDifferent,
		TotalPixels:     totalPixels,
	}
	if totalPixels > 0 {
		res.SimilarityScore = math.Round((1.0-float64(pixelsDifferent)/float64(totalPixels))*1000) / 1000
		res.AverageColorDiff = math.Round(totalColorDiff/float64(totalPixels)*100) / 100
	}
	if d, differ := raster.FirstDifference(want, got); differ {
		res.FirstDifference = &d
	} else {
		res.Identical = true
		res.SimilarityScore = 1
	}
	return res
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
