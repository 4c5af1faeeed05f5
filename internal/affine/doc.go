// Package affine fits a 2-D affine transform to paired point
// correspondences and applies it to points.
//
// A Model holds a 2x3 matrix mapping (x, y) to (x', y'). Fit solves the
// matrix directly from exactly three pairs, or by least squares when the
// system is over-determined. The matrix persists as two
// whitespace-separated text lines of three numbers each.
package affine
