// Package raster provides the in-memory pixel grid exchanged between the RGB text
// format and image files.
//
// The text format core only depends on the narrow Source and Sink interfaces.
// Grid is the concrete implementation used throughout the tool; it also
// satisfies image.Image so it can be handed directly to image encoders.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner:
//   - X: column index (0 = leftmost pixel)
//   - Y: row index (0 = topmost pixel)
package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is an 8-bit RGB triplet.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Source is a raster that can be read pixel by pixel.
type Source interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// Sink is a raster that can be written pixel by pixel.
type Sink interface {
	Width() int
	Height() int
	SetRGB(x, y int, r, g, b uint8)
}

// Grid is a fixed-size row-major pixel grid.
//
// Grid is not safe for concurrent mutation.
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// NewGrid allocates a black grid of the given size. Negative sizes are treated as 0.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// RGB returns the components at (x, y). Out of range reads return black.
func (g *Grid) RGB(x, y int) (r, gr, b uint8) {
	if !g.inBounds(x, y) {
		return 0, 0, 0
	}
	p := g.pix[y*g.width+x]
	return p.R, p.G, p.B
}

// SetRGB writes the components at (x, y). Out of range writes are ignored.
func (g *Grid) SetRGB(x, y int, r, gr, b uint8) {
	if !g.inBounds(x, y) {
		return
	}
	g.pix[y*g.width+x] = Pixel{R: r, G: gr, B: b}
}

// Pixel returns the pixel at (x, y).
func (g *Grid) Pixel(x, y int) Pixel {
	r, gr, b := g.RGB(x, y)
	return Pixel{R: r, G: gr, B: b}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// At implements image.Image. Pixels are always fully opaque.
func (g *Grid) At(x, y int) color.Color {
	p := g.Pixel(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// FromImage copies the 8-bit RGB components of img into a new Grid.
//
// The image bounds are translated so the result always starts at (0,0).
// Alpha is discarded after converting to non-premultiplied colour, so a
// translucent pixel keeps its RGB values.
func FromImage(img image.Image) *Grid {
	if src, ok := img.(Source); ok {
		return Copy(src)
	}
	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			g.SetRGB(x, y, c.R, c.G, c.B)
		}
	}
	return g
}

// Copy reads every pixel of src into a new Grid.
func Copy(src Source) *Grid {
	g := NewGrid(src.Width(), src.Height())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, gr, b := src.RGB(x, y)
			g.SetRGB(x, y, r, gr, b)
		}
	}
	return g
}

// Difference describes the first pixel at which two rasters disagree.
type Difference struct {
	X    int   `json:"x"`
	Y    int   `json:"y"`
	Want Pixel `json:"want"`
	Got  Pixel `json:"got"`
}

func (d Difference) String() string {
	return fmt.Sprintf("differs at (%d, %d): want (%d, %d, %d), got (%d, %d, %d)",
		d.X, d.Y, d.Want.R, d.Want.G, d.Want.B, d.Got.R, d.Got.G, d.Got.B)
}

// FirstDifference scans want and got row-major and returns the first differing pixel.
// It returns false when the rasters are pixel-identical. Rasters of different size
// always differ; the reported location is then the first cell outside the smaller one.
func FirstDifference(want, got Source) (Difference, bool) {
	w := max(want.Width(), got.Width())
	h := max(want.Height(), got.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wp, wok := pixelAt(want, x, y)
			gp, gok := pixelAt(got, x, y)
			if wok != gok || wp != gp {
				return Difference{X: x, Y: y, Want: wp, Got: gp}, true
			}
		}
	}
	return Difference{}, false
}

// Equal reports whether a and b have the same size and pixels.
func Equal(a, b Source) bool {
	_, differ := FirstDifference(a, b)
	return !differ
}

func pixelAt(s Source, x, y int) (Pixel, bool) {
	if x >= s.Width() || y >= s.Height() {
		return Pixel{}, false
	}
	r, g, b := s.RGB(x, y)
	return Pixel{R: r, G: g, B: b}, true
}
