// Package imaging converts decoded images into grid values and back.
//
// The grid core is representation-agnostic; this package is the boundary
// where pixels become int64 cells. Conversions produce Raw-mode grids
// with 8-bit RGB channels, a single BT.601 luminance channel, or scaled
// CIE L*a*b* feature channels. GridCache mirrors the load-once semantics
// of a screenshot-analysis workflow: decoded grids are cached by path
// and evicted explicitly.
//
// File decoding goes through disintegration/imaging (honoring EXIF
// orientation) with the extra golang.org/x/image formats registered, so
// PNG, JPEG, GIF, BMP, TIFF and WebP files all load.
//
// GridCache is safe for concurrent use. The grids it returns are shared:
// callers mutating a cached grid must either synchronize or Evict first.
package imaging
