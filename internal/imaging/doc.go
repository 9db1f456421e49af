// Package imaging bridges image files and the in-memory rasters used by the
// RGB text format.
//
// This package decodes PNG, JPEG, GIF, BMP and TIFF files into raster.Grid
// values, encodes rasters back to image files, and provides the analysis
// helpers exposed by the CLI and the MCP server: cropping and scaling, color
// sampling, dominant colors, per-channel statistics and pixel comparison.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Rasters returned from the
// cache are shared and must not be modified. All other functions are stateless.
//
// # Color Representation
//
// Colors are returned in several formats:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Text: the pixel exactly as an RGB file would store it
//
// Alpha is discarded on decode. The text format has no alpha channel and every
// encoded image is fully opaque.
package imaging
