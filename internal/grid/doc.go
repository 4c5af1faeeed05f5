// Package grid provides a dense multi-channel integer grid for
// sliding-window image analysis.
//
// A Grid owns one contiguous buffer of int64 cells laid out row-major with
// the channel axis varying fastest. The same buffer can hold either raw
// per-cell values or their summed-area ("integral") transform; the grid's
// mode records which interpretation is in effect. On top of that dual
// representation the package offers two derived operations: rectangular
// region summation (four point lookups in Integral mode, direct
// accumulation in Raw mode) and fixed-size patch extraction with
// clamp-to-edge border replication.
//
// # Coordinate System
//
// All indices are 0-based: row 0 is the top row, column 0 the leftmost
// column. Region and patch operations take a start coordinate plus a
// height/width extent; the start coordinate may lie anywhere, including
// far outside the grid.
//
// # Modes and Logical Extents
//
// An Integral-mode buffer carries one extra leading zero row and column so
// the inclusion-exclusion rectangle formula needs no special cases at the
// image border. The extents reported by Rows and Cols are therefore one
// less than the buffer's physical extents while the grid is in Integral
// mode. Switching modes never touches the buffer; it only changes how the
// extents are derived. SetMode fails if the grid is already in the
// requested mode, so a redundant switch cannot silently misreport extents.
//
// # Error Handling
//
// Region sums and patch extraction never fail: out-of-range coordinates
// are clamped (sums) or resolved by border replication (patches), so a
// window slid past the image edge still produces a usable result. Direct
// Get/Set access is unchecked and panics on out-of-range indices; that is
// a caller contract violation, not a recoverable condition. Constructors
// reject non-positive dimensions with an explicit error.
//
// # Concurrency
//
// A Grid is not safe for concurrent use. Callers either serialize access
// or give each goroutine its own grid. RawBuffer exposes the backing
// storage without any synchronization or copying.
package grid
