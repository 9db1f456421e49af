// Package convert moves rasters between image files and RGB text files.
package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ironsheep/rgbconv/internal/imaging"
	"github.com/ironsheep/rgbconv/internal/logger"
	"github.com/ironsheep/rgbconv/internal/raster"
	"github.com/ironsheep/rgbconv/internal/rgbfile"
)

// UsageError reports a command line the converter cannot act on.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ValidateArgs checks that args holds exactly a source and a destination, one
// of them an RGB text file and the other an image file.
func ValidateArgs(args []string) error {
	if len(args) != 2 {
		return &UsageError{Msg: "Usage: rgbconv SRC DST"}
	}
	src, dst := args[0], args[1]

	if imaging.IsTextPath(src) == imaging.IsTextPath(dst) {
		return &UsageError{Msg: "One of the images must end with " + imaging.TextExt}
	}
	for _, p := range []string{src, dst} {
		if !imaging.IsTextPath(p) && !imaging.IsImagePath(p) {
			return &UsageError{Msg: "Unsupported file format: " + p}
		}
	}
	return nil
}

// Options configures a single conversion.
type Options struct {
	Src string
	Dst string

	// Region and Scale are applied to the source image before it is written as
	// text. They are ignored when the source is a text file.
	Region *imaging.Region
	Scale  float64

	// JPEGQuality is used when the destination is a JPEG. 0 selects the default.
	JPEGQuality int

	// Logger defaults to logger.L().
	Logger *slog.Logger
}

// Run performs the conversion described by opts.
//
// Image to text decodes Src, optionally crops and scales it, and writes the
// canonical text form to Dst. Text to image validates and loads Src, then
// encodes it in the format implied by Dst's extension. A malformed text file
// fails with *rgbfile.FormatError and Dst is not written.
func Run(ctx context.Context, opts Options) error {
	if err := ValidateArgs([]string{opts.Src, opts.Dst}); err != nil {
		return err
	}
	log := opts.Logger
	if log == nil {
		log = logger.L()
	}

	if imaging.IsTextPath(opts.Dst) {
		return imageToText(ctx, log, opts)
	}
	return textToImage(ctx, log, opts)
}

func imageToText(ctx context.Context, log *slog.Logger, opts Options) error {
	img, err := imaging.Open(opts.Src)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.Region != nil || (opts.Scale > 0 && opts.Scale != 1.0) {
		img, err = imaging.Crop(img, opts.Region, opts.Scale)
		if err != nil {
			return fmt.Errorf("failed to crop image: %w", err)
		}
	}

	g := raster.FromImage(img)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rgbfile.SaveFile(opts.Dst, g); err != nil {
		return err
	}

	log.Info("converted image to text", "src", opts.Src, "dst", opts.Dst,
		"width", g.Width(), "height", g.Height())
	return nil
}

func textToImage(ctx context.Context, log *slog.Logger, opts Options) error {
	g, err := rgbfile.LoadFile(opts.Src)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := imaging.Encode(opts.Dst, g, opts.JPEGQuality); err != nil {
		return err
	}

	log.Info("converted text to image", "src", opts.Src, "dst", opts.Dst,
		"width", g.Width(), "height", g.Height())
	return nil
}

// LoadAny loads either an RGB text file or an image file into a raster.
func LoadAny(path string) (*raster.Grid, error) {
	switch {
	case imaging.IsTextPath(path):
		return rgbfile.LoadFile(path)
	case imaging.IsImagePath(path):
		return imaging.Decode(path)
	default:
		return nil, &UsageError{Msg: "Unsupported file format: " + path}
	}
}
