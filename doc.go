// Package contour extracts threshold isocontours from sampled scalar fields
// using marching squares.
//
// A [Field] is a grid of normalized intensities. Each 2×2 block of
// neighbouring samples forms a cell; [Classify] turns the four corners of a
// cell into a 4-bit [Code], and a [Table] maps the code to zero, one or two
// line segments between edge midpoints of the unit cell. [Generate] visits
// all cells in row-major order and returns the translated segments as a
// [Set] in field-index coordinates.
//
// The threshold is chosen by a [Policy]: either a raw value in the field's
// sample units ([Manual]) or the mean of the field ([Auto]).
//
// Crossings are always placed at edge midpoints, and the ambiguous saddle
// configurations always use the same fixed split. Segments are returned
// individually; they are not joined into polylines.
package contour

//go:generate go run ./testcases/export
