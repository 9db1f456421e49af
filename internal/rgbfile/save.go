package rgbfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// pixelFormat is the canonical rendering of one pixel.
const pixelFormat = "(%3d, %3d, %3d)"

// Save renders src in canonical RGB format. Every row, including the last, ends
// with a newline. The output depends only on the raster's size and pixels.
//
// A raster with no pixels has no valid text form: zero height saves as "" and
// zero width as one empty line per row. Load rejects both (empty file and blank
// line respectively), so only rasters of at least 1x1 round-trip.
func Save(src raster.Source) string {
	var sb strings.Builder
	// Write on a strings.Builder cannot fail.
	_ = Write(&sb, src)
	return sb.String()
}

// Write renders src in canonical RGB format to w.
func Write(w io.Writer, src raster.Source) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if x > 0 {
				bw.WriteByte(pixelSep)
			}
			r, g, b := src.RGB(x, y)
			fmt.Fprintf(bw, pixelFormat, r, g, b)
		}
		bw.WriteByte(rowSep)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write rgb file: %w", err)
	}
	return nil
}

// SaveFile writes src to path in canonical RGB format, replacing any existing file.
func SaveFile(path string, src raster.Source) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rgb file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close rgb file: %w", cerr)
		}
	}()

	return Write(f, src)
}
