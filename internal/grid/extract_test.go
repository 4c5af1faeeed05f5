package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractChannel(t *testing.T) {
	g, err := New(3, 4, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			g.Set(r, c, 0, int64(r*4+c))
			g.Set(r, c, 1, int64(-(r*4 + c)))
		}
	}

	plane := g.ExtractChannel(1)

	if len(plane) != 3 || len(plane[0]) != 4 {
		t.Fatalf("plane shape: got %dx%d, want 3x4", len(plane), len(plane[0]))
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if plane[r][c] != g.Get(r, c, 1) {
				t.Errorf("plane[%d][%d]: got %d, want %d", r, c, plane[r][c], g.Get(r, c, 1))
			}
		}
	}
}

func TestExtractChannel_IsACopy(t *testing.T) {
	g := seqGrid(t, 2, 2)

	plane := g.ExtractChannel(0)
	plane[0][0] = 999

	if got := g.Get(0, 0, 0); got != 1 {
		t.Errorf("Get(0,0,0): got %d, want 1 (plane writes must not reach the grid)", got)
	}
}

func TestExtractChannel_IntegralVerbatim(t *testing.T) {
	raw := seqGrid(t, 4, 4)
	ig := integralOf(t, raw)

	plane := ig.ExtractChannel(0)

	// Channel extraction is not mode-aware: integral values come out as-is.
	want := [][]int64{
		{0, 0, 0, 0},
		{0, 1, 3, 6},
		{0, 6, 14, 24},
		{0, 15, 33, 54},
	}
	if diff := cmp.Diff(want, plane); diff != "" {
		t.Errorf("integral plane mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractRectangle_Interior(t *testing.T) {
	g, err := New(5, 5, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			g.Set(r, c, 0, int64(r*5+c))
			g.Set(r, c, 1, int64(1000+r*5+c))
		}
	}

	patch := g.ExtractRectangle(1, 2, 3, 2)

	if patch.Rows() != 3 || patch.Cols() != 2 || patch.Channels() != 2 {
		t.Fatalf("patch extents: got %dx%dx%d, want 3x2x2",
			patch.Rows(), patch.Cols(), patch.Channels())
	}
	if patch.Mode() != Raw {
		t.Errorf("patch mode: got %v, want %v", patch.Mode(), Raw)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			for ch := 0; ch < 2; ch++ {
				want := g.Get(1+i, 2+j, ch)
				if got := patch.Get(i, j, ch); got != want {
					t.Errorf("patch(%d,%d,%d): got %d, want %d", i, j, ch, got, want)
				}
			}
		}
	}
}

func TestExtractRectangle_CornerStraddle(t *testing.T) {
	g := seqGrid(t, 4, 4)

	patch := g.ExtractRectangle(-2, -2, 5, 5)

	if patch.Rows() != 5 || patch.Cols() != 5 {
		t.Fatalf("patch extents: got %dx%d, want 5x5", patch.Rows(), patch.Cols())
	}
	// The corner value floods every out-of-range cell.
	if got := patch.Get(0, 0, 0); got != 1 {
		t.Errorf("patch(0,0): got %d, want 1", got)
	}
	if got := patch.Get(1, 1, 0); got != 1 {
		t.Errorf("patch(1,1): got %d, want 1", got)
	}
	if got := patch.Get(2, 0, 0); got != 1 {
		t.Errorf("patch(2,0): got %d, want 1 (row in range, column replicated)", got)
	}
	if got := patch.Get(0, 3, 0); got != 2 {
		t.Errorf("patch(0,3): got %d, want 2 (column in range, row replicated)", got)
	}
	// Last patch cell maps to source (2,2).
	if got := patch.Get(4, 4, 0); got != 11 {
		t.Errorf("patch(4,4): got %d, want 11", got)
	}
	// Interior region passes through untouched.
	if got := patch.Get(3, 3, 0); got != g.Get(1, 1, 0) {
		t.Errorf("patch(3,3): got %d, want %d", got, g.Get(1, 1, 0))
	}
}

func TestExtractRectangle_ReplicationEdges(t *testing.T) {
	g := seqGrid(t, 3, 3)

	tests := []struct {
		name          string
		row, col      int
		height, width int
		atRow, atCol  int
		want          int64
	}{
		{"left of grid", 0, -2, 1, 3, 0, 0, 1},
		{"right of grid", 1, 2, 1, 4, 0, 3, 6},
		{"above grid", -3, 1, 4, 1, 0, 0, 2},
		{"below grid", 2, 0, 4, 1, 3, 0, 7},
		{"wholly past bottom-right", 10, 10, 2, 2, 1, 1, 9},
		{"wholly above-left", -9, -9, 3, 3, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := g.ExtractRectangle(tt.row, tt.col, tt.height, tt.width)
			if got := patch.Get(tt.atRow, tt.atCol, 0); got != tt.want {
				t.Errorf("patch(%d,%d): got %d, want %d", tt.atRow, tt.atCol, got, tt.want)
			}
		})
	}
}

func TestExtractRectangle_WhollyOutsideIsUniform(t *testing.T) {
	g := seqGrid(t, 3, 3)

	patch := g.ExtractRectangle(100, 100, 3, 3)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := patch.Get(i, j, 0); got != 9 {
				t.Errorf("patch(%d,%d): got %d, want 9 (replicated corner)", i, j, got)
			}
		}
	}
}

func TestExtractRectangle_IsACopy(t *testing.T) {
	g := seqGrid(t, 3, 3)

	patch := g.ExtractRectangle(0, 0, 2, 2)
	patch.Set(0, 0, 0, 555)

	if got := g.Get(0, 0, 0); got != 1 {
		t.Errorf("Get(0,0,0): got %d, want 1 (patch writes must not reach the source)", got)
	}
}
