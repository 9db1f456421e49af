// Package rgbfile reads and writes the RGB text pixel format.
//
// An RGB file stores a raster as text: one line per row, pixels separated by
// tabs, each pixel written as a parenthesized triplet.
//
//	(  1,   2,   3)	(255, 255, 255)
//	(  0,   0,   0)	( 10,  20,  30)
//
// # Validation
//
// Load never trusts input. The text is tokenized once into rows and pixel
// tokens, then a fixed pipeline of checks runs over that structure:
//
//  1. commas: every pixel has exactly two commas
//  2. parens: every pixel has one '(' and one ')'
//  3. empty file: the content is not zero bytes
//  4. blank line: no row is empty
//  5. range: the three values of every pixel are integers in [0,255]
//  6. number: every pixel holds exactly three integers and nothing else
//  7. ragged: every row has as many pixels as the first
//
// The first failing check wins, so a pixel with a missing comma and an
// out-of-range value is reported as a commas error. Failures are returned as a
// *FormatError carrying the kind and the (x, y) location of the first offending
// pixel, where x is the pixel index within the row and y is the row index.
//
// # Rasters
//
// The package only touches pixels through raster.Source (when saving) and
// raster.Sink (when loading). It has no dependency on any image codec.
package rgbfile
