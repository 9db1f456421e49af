package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ParseRegion parses "x1,y1,x2,y2".
func ParseRegion(s string) (*Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid region %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid region %q: %w", s, err)
		}
		v[i] = n
	}
	return &Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// Crop extracts region from img and optionally rescales it.
//
// Parameters:
//   - img: Source image.
//   - region: Area to keep. nil keeps the whole image.
//   - scale: Resize factor applied after cropping. 1.0 (or any value <= 0)
//     leaves the size unchanged. Resizing uses the Lanczos filter.
//
// Returns an error if the region falls outside the image bounds or is empty,
// or if scaling would produce an image smaller than one pixel.
func Crop(img image.Image, region *Region, scale float64) (image.Image, error) {
	bounds := img.Bounds()
	out := img

	if region != nil {
		x1, y1 := region.X1+bounds.Min.X, region.Y1+bounds.Min.Y
		x2, y2 := region.X2+bounds.Min.X, region.Y2+bounds.Min.Y
		if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
			return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
				region.X1, region.Y1, region.X2, region.Y2, bounds.Dx(), bounds.Dy())
		}
		if x1 >= x2 || y1 >= y2 {
			return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
		}
		out = imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	}

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(out.Bounds().Dx()) * scale)
		newHeight := int(float64(out.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g shrinks %dx%d image below one pixel",
				scale, out.Bounds().Dx(), out.Bounds().Dy())
		}
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
	}

	return out, nil
}
