package grid

import (
	"errors"
	"fmt"
)

// Mode selects how a grid's buffer is interpreted.
type Mode int

const (
	// Raw means each cell holds the actual value at its position.
	Raw Mode = iota

	// Integral means each cell holds the cumulative sum of all raw cells
	// above and to the left of it, with a leading zero row and column.
	Integral
)

func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case Integral:
		return "integral"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrSameMode is returned by SetMode when the grid is already in the
// requested mode.
var ErrSameMode = errors.New("grid: already in requested mode")

// Buffer is the physical storage behind a Grid: a flat row-major slice
// with the channel axis varying fastest, together with its own physical
// extents. A Buffer can be built directly and handed to Adopt, or
// obtained from a grid via RawBuffer.
type Buffer struct {
	Rows     int
	Cols     int
	Channels int
	Data     []int64
}

// NewBuffer allocates a zero-filled buffer with the given physical extents.
func NewBuffer(rows, cols, channels int) (*Buffer, error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, fmt.Errorf("grid: invalid buffer dimensions %dx%dx%d", rows, cols, channels)
	}
	return &Buffer{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Data:     make([]int64, rows*cols*channels),
	}, nil
}

// At returns the cell at (row, col, ch). Unchecked.
func (b *Buffer) At(row, col, ch int) int64 {
	return b.Data[(row*b.Cols+col)*b.Channels+ch]
}

// SetAt stores v at (row, col, ch). Unchecked.
func (b *Buffer) SetAt(row, col, ch int, v int64) {
	b.Data[(row*b.Cols+col)*b.Channels+ch] = v
}

func (b *Buffer) validate() error {
	if b == nil {
		return errors.New("grid: nil buffer")
	}
	if b.Rows <= 0 || b.Cols <= 0 || b.Channels <= 0 {
		return fmt.Errorf("grid: invalid buffer dimensions %dx%dx%d", b.Rows, b.Cols, b.Channels)
	}
	if want := b.Rows * b.Cols * b.Channels; len(b.Data) != want {
		return fmt.Errorf("grid: buffer data length %d does not match %dx%dx%d (want %d)",
			len(b.Data), b.Rows, b.Cols, b.Channels, want)
	}
	return nil
}

// Grid is a dense three-axis value store with a Raw or Integral
// interpretation of its single owned buffer.
type Grid struct {
	buf  *Buffer
	mode Mode
}

// New creates a Raw-mode grid with a zero-filled buffer of the given
// dimensions.
func New(rows, cols, channels int) (*Grid, error) {
	buf, err := NewBuffer(rows, cols, channels)
	if err != nil {
		return nil, err
	}
	return &Grid{buf: buf}, nil
}

// Adopt wraps an existing buffer without copying it; the caller transfers
// ownership. Physical extents are read from the buffer itself. In Integral
// mode the buffer must be at least 2x2 so the logical extents stay positive.
func Adopt(buf *Buffer, mode Mode) (*Grid, error) {
	if err := buf.validate(); err != nil {
		return nil, err
	}
	if mode == Integral && (buf.Rows < 2 || buf.Cols < 2) {
		return nil, fmt.Errorf("grid: integral buffer needs at least 2x2 physical extents, got %dx%d",
			buf.Rows, buf.Cols)
	}
	return &Grid{buf: buf, mode: mode}, nil
}

// Rows returns the logical row extent: the physical extent in Raw mode,
// one less in Integral mode.
func (g *Grid) Rows() int {
	if g.mode == Integral {
		return g.buf.Rows - 1
	}
	return g.buf.Rows
}

// Cols returns the logical column extent (see Rows).
func (g *Grid) Cols() int {
	if g.mode == Integral {
		return g.buf.Cols - 1
	}
	return g.buf.Cols
}

// Channels returns the channel extent. It is the same in both modes.
func (g *Grid) Channels() int {
	return g.buf.Channels
}

// Mode returns the current interpretation of the buffer.
func (g *Grid) Mode() Mode {
	return g.mode
}

// IsIntegral reports whether the grid is in Integral mode.
func (g *Grid) IsIntegral() bool {
	return g.mode == Integral
}

// SetMode switches the interpretation of the buffer. The buffer itself is
// never reshaped or recomputed; only the logical extents change. The caller
// must have supplied a buffer whose physical size matches the new mode.
// Returns ErrSameMode if the grid is already in the requested mode.
func (g *Grid) SetMode(mode Mode) error {
	if mode == g.mode {
		return ErrSameMode
	}
	if mode == Integral && (g.buf.Rows < 2 || g.buf.Cols < 2) {
		return fmt.Errorf("grid: integral mode needs at least 2x2 physical extents, got %dx%d",
			g.buf.Rows, g.buf.Cols)
	}
	g.mode = mode
	return nil
}

// Get returns the cell at (row, col, ch). Unchecked: out-of-range indices
// panic.
func (g *Grid) Get(row, col, ch int) int64 {
	return g.buf.At(row, col, ch)
}

// Set stores v at (row, col, ch). Unchecked: out-of-range indices panic.
func (g *Grid) Set(row, col, ch int, v int64) {
	g.buf.SetAt(row, col, ch, v)
}

// SetData replaces the buffer wholesale without copying. Extents are
// recomputed from the new buffer's physical size; the mode flag is left
// unchanged, so a grid in Integral mode interprets the new buffer under
// the integral convention.
func (g *Grid) SetData(buf *Buffer) error {
	if err := buf.validate(); err != nil {
		return err
	}
	if g.mode == Integral && (buf.Rows < 2 || buf.Cols < 2) {
		return fmt.Errorf("grid: integral buffer needs at least 2x2 physical extents, got %dx%d",
			buf.Rows, buf.Cols)
	}
	g.buf = buf
	return nil
}

// SetDimensions discards the current data and allocates a zero-filled
// buffer with the given physical extents. The mode flag is unchanged.
func (g *Grid) SetDimensions(rows, cols, channels int) error {
	buf, err := NewBuffer(rows, cols, channels)
	if err != nil {
		return err
	}
	if g.mode == Integral && (buf.Rows < 2 || buf.Cols < 2) {
		return fmt.Errorf("grid: integral mode needs at least 2x2 physical extents, got %dx%d",
			buf.Rows, buf.Cols)
	}
	g.buf = buf
	return nil
}

// Clear replaces the buffer with a zero-filled one at the current physical
// extents. Rows, Cols and Channels are unchanged.
func (g *Grid) Clear() {
	g.buf = &Buffer{
		Rows:     g.buf.Rows,
		Cols:     g.buf.Cols,
		Channels: g.buf.Channels,
		Data:     make([]int64, len(g.buf.Data)),
	}
}

// RawBuffer returns the grid's backing buffer, not a copy. Writes through
// the returned buffer bypass the grid's invariants and are immediately
// visible to the grid's own accessors.
func (g *Grid) RawBuffer() *Buffer {
	return g.buf
}

// Clamp maps v into the half-open interval [lo, hi): values below lo
// become lo, values at or above hi become hi-1.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v >= hi {
		return hi - 1
	}
	return v
}
