package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/rgbconv/internal/raster"
)

// TextExt is the file extension of RGB text files.
const TextExt = ".txt"

// DefaultJPEGQuality is used when Encode is asked for a JPEG without a quality.
const DefaultJPEGQuality = 95

// ImageCache provides thread-safe caching of decoded images to avoid redundant disk reads.
//
// The cache stores decoded rasters keyed by their file path. Once an image is
// loaded, subsequent Load() calls for the same path return the cached raster
// without disk I/O. Callers must treat cached rasters as read-only.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	g, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(rgbfile.Save(g))
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*raster.Grid
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*raster.Grid),
	}
}

// Load retrieves a raster from the cache or decodes it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Any format recognised
//     by IsImagePath is accepted.
//
// Returns:
//   - *raster.Grid: The decoded pixels, alpha discarded.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The raster is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) result in separate cache entries.
func (c *ImageCache) Load(path string) (*raster.Grid, error) {
	c.mu.RLock()
	if g, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	g, err := Decode(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = g
	c.mu.Unlock()

	return g, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*raster.Grid)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing. Callers that
// overwrite an image file should evict it so the next Load sees the new pixels.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Open decodes the image at path, applying any EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Decode opens the image at path and copies its pixels into a raster.
//
// Colours are read non-premultiplied, so a translucent pixel keeps its RGB
// values and only loses its alpha.
func Decode(path string) (*raster.Grid, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return toGrid(img), nil
}

func toGrid(img image.Image) *raster.Grid {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	g := raster.NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.Height(); y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < g.Width(); x++ {
			g.SetRGB(x, y, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return g
}

// Encode writes img to path in the format implied by the path's extension.
//
// Parameters:
//   - path: Destination file. The extension selects the encoder (see IsImagePath).
//   - img: Pixels to write. *raster.Grid satisfies image.Image directly.
//   - quality: JPEG quality 1-100; 0 selects DefaultJPEGQuality. Ignored for
//     other formats.
func Encode(path string, img image.Image, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// IsImagePath reports whether path has an extension the image codecs handle:
// .png, .jpg, .jpeg, .gif, .bmp, .tif and .tiff.
func IsImagePath(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}

// IsTextPath reports whether path names an RGB text file.
func IsTextPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TextExt)
}

// ImageInfo contains metadata about an image or RGB text file.
type ImageInfo struct {
	// Width is the raster width in pixels.
	Width int `json:"width"`

	// Height is the raster height in pixels.
	Height int `json:"height"`

	// Format is "rgb" for text files, otherwise the image format detected from
	// the extension ("png", "jpeg", "gif", "bmp", "tiff") or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo returns the dimensions and format of an already loaded raster
// together with the size of the file it came from.
func LoadImageInfo(src raster.Source, path string) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         src.Width(),
		Height:        src.Height(),
		Format:        FormatName(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// FormatName names the file format implied by the path's extension.
func FormatName(path string) string {
	if IsTextPath(path) {
		return "rgb"
	}
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(f.String())
}
