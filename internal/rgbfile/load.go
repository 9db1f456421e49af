package rgbfile

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// Load validates text and, if it is well formed, returns its pixels as a Grid.
//
// On a format violation Load returns a *FormatError for the first failing check
// and no raster.
func Load(text string) (*raster.Grid, error) {
	var g *raster.Grid
	_, err := LoadInto(text, func(w, h int) raster.Sink {
		g = raster.NewGrid(w, h)
		return g
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// LoadInto is Load for caller-supplied rasters. newSink is called once, after
// validation succeeds, with the file's width and height.
//
// Every cell of the returned sink is set exactly once, in row-major order.
func LoadInto(text string, newSink func(width, height int) raster.Sink) (raster.Sink, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}

	width := ComputeWidth(text)
	height := ComputeHeight(text)
	sink := newSink(width, height)

	// Validation guarantees exactly width*height*3 digit runs, each in [0,255].
	vals := digitRuns(text)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _ := strconv.Atoi(vals[i])
			g, _ := strconv.Atoi(vals[i+1])
			b, _ := strconv.Atoi(vals[i+2])
			sink.SetRGB(x, y, uint8(r), uint8(g), uint8(b))
			i += 3
		}
	}
	return sink, nil
}

// Read loads an RGB file from r.
func Read(r io.Reader) (*raster.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read rgb file: %w", err)
	}
	return Load(string(data))
}

// LoadFile loads the RGB file at path.
//
// A missing file yields an error wrapping fs.ErrNotExist, never a *FormatError.
func LoadFile(path string) (*raster.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rgb file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
