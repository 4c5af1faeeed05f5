package grid

// RectangleSum returns the sum of the values on one channel over the
// rectangular region of the given height and width starting at
// (startRow, startCol).
//
// The region is clamped into the grid's logical extents before summing,
// and a window that collapses entirely outside the grid still covers at
// least one cell, so the call never fails. In Integral mode the result
// comes from four corner lookups on the summed-area buffer; in Raw mode
// the cells are accumulated directly at O(height*width) cost.
//
// The caller is responsible for the integral buffer having been built
// with the top-left cumulative convention I(r,c) = sum of raw(r',c') for
// r' < r, c' < c; no validation is performed.
func (g *Grid) RectangleSum(startRow, startCol, height, width, ch int) int64 {
	rows := g.Rows()
	cols := g.Cols()

	minRow := Clamp(startRow, 0, rows)
	minCol := Clamp(startCol, 0, cols)
	maxRow := Clamp(startRow+height, 1, rows+1)
	maxCol := Clamp(startCol+width, 1, cols+1)

	// A fully collapsed window still covers a single cell.
	if maxRow == minRow {
		maxRow = minRow + 1
	}
	if maxCol == minCol {
		maxCol = minCol + 1
	}

	if g.mode == Integral {
		b := g.buf
		return b.At(minRow, minCol, ch) -
			b.At(maxRow, minCol, ch) -
			b.At(minRow, maxCol, ch) +
			b.At(maxRow, maxCol, ch)
	}

	var sum int64
	for r := minRow; r < maxRow; r++ {
		for c := minCol; c < maxCol; c++ {
			sum += g.buf.At(r, c, ch)
		}
	}
	return sum
}
