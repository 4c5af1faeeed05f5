package grid

// ExtractChannel copies one channel out of the grid as a fresh
// rows x cols plane with plane[r][c] == Get(r, c, ch). The copy is
// verbatim and not mode-aware: on an Integral-mode grid it yields
// integral values.
func (g *Grid) ExtractChannel(ch int) [][]int64 {
	rows := g.Rows()
	cols := g.Cols()

	plane := make([][]int64, rows)
	for r := 0; r < rows; r++ {
		plane[r] = make([]int64, cols)
		for c := 0; c < cols; c++ {
			plane[r][c] = g.buf.At(r, c, ch)
		}
	}
	return plane
}

// ExtractRectangle copies a height x width window across all channels
// into a fresh Raw-mode grid, as if the source extended infinitely in
// every direction by replicating its border (clamp-to-edge padding).
// Each requested row index startRow+i resolves to row 0 when negative
// and to the last row when past the end, and the same rule applies
// independently to columns, so a window straddling a corner replicates
// the corner cell into every out-of-range position. The start coordinate
// may lie anywhere; height and width must be positive.
func (g *Grid) ExtractRectangle(startRow, startCol, height, width int) *Grid {
	rows := g.Rows()
	cols := g.Cols()
	channels := g.Channels()

	out := &Buffer{
		Rows:     height,
		Cols:     width,
		Channels: channels,
		Data:     make([]int64, height*width*channels),
	}
	for i := 0; i < height; i++ {
		srcRow := Clamp(startRow+i, 0, rows)
		for j := 0; j < width; j++ {
			srcCol := Clamp(startCol+j, 0, cols)
			for ch := 0; ch < channels; ch++ {
				out.SetAt(i, j, ch, g.buf.At(srcRow, srcCol, ch))
			}
		}
	}
	return &Grid{buf: out}
}
