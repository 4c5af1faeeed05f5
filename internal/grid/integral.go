package grid

import "fmt"

// NewIntegral builds the summed-area representation of src and returns it
// as a new Integral-mode grid. The result's buffer has one extra leading
// zero row and column, with each remaining cell holding the sum of all
// src cells above and to the left of it:
//
//	I(r, c, ch) = sum of src.Get(r', c', ch) for r' < r, c' < c
//
// which is exactly the convention RectangleSum expects. src is left
// untouched; a grid never converts its own buffer. Returns an error if
// src is already in Integral mode.
func NewIntegral(src *Grid) (*Grid, error) {
	if src.IsIntegral() {
		return nil, fmt.Errorf("grid: source is already integral")
	}

	rows := src.Rows()
	cols := src.Cols()
	channels := src.Channels()

	buf, err := NewBuffer(rows+1, cols+1, channels)
	if err != nil {
		return nil, err
	}
	// Row 0 and column 0 stay zero; each cell is the value above-left of
	// it plus the two partial sums minus their shared overlap.
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			for ch := 0; ch < channels; ch++ {
				v := src.buf.At(r-1, c-1, ch) +
					buf.At(r-1, c, ch) +
					buf.At(r, c-1, ch) -
					buf.At(r-1, c-1, ch)
				buf.SetAt(r, c, ch, v)
			}
		}
	}
	return Adopt(buf, Integral)
}
