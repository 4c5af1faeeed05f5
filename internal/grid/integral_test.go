package grid

import "testing"

func TestNewIntegral(t *testing.T) {
	raw := seqGrid(t, 4, 4)

	ig, err := NewIntegral(raw)
	if err != nil {
		t.Fatalf("Integral failed: %v", err)
	}

	if !ig.IsIntegral() {
		t.Error("result should be in integral mode")
	}
	if ig.Rows() != 4 || ig.Cols() != 4 || ig.Channels() != 1 {
		t.Errorf("logical extents: got %dx%dx%d, want 4x4x1", ig.Rows(), ig.Cols(), ig.Channels())
	}
	buf := ig.RawBuffer()
	if buf.Rows != 5 || buf.Cols != 5 {
		t.Errorf("physical extents: got %dx%d, want 5x5", buf.Rows, buf.Cols)
	}

	// Leading row and column are zero.
	for i := 0; i < 5; i++ {
		if got := buf.At(0, i, 0); got != 0 {
			t.Errorf("buf(0,%d): got %d, want 0", i, got)
		}
		if got := buf.At(i, 0, 0); got != 0 {
			t.Errorf("buf(%d,0): got %d, want 0", i, got)
		}
	}

	// Every cell matches the cumulative definition.
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			var want int64
			for rr := 0; rr < r; rr++ {
				for cc := 0; cc < c; cc++ {
					want += raw.Get(rr, cc, 0)
				}
			}
			if got := buf.At(r, c, 0); got != want {
				t.Errorf("buf(%d,%d): got %d, want %d", r, c, got, want)
			}
		}
	}
}

func TestNewIntegral_SourceUntouched(t *testing.T) {
	raw := seqGrid(t, 3, 3)

	if _, err := NewIntegral(raw); err != nil {
		t.Fatalf("Integral failed: %v", err)
	}

	if raw.IsIntegral() {
		t.Error("source mode changed")
	}
	if got := raw.Get(2, 2, 0); got != 9 {
		t.Errorf("source Get(2,2,0): got %d, want 9", got)
	}
}

func TestNewIntegral_AlreadyIntegral(t *testing.T) {
	raw := seqGrid(t, 3, 3)
	ig := integralOf(t, raw)

	if _, err := NewIntegral(ig); err == nil {
		t.Error("Integral of an integral grid: expected error, got nil")
	}
}

func TestNewIntegral_MultiChannel(t *testing.T) {
	g, err := New(2, 2, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			for ch := 0; ch < 3; ch++ {
				g.Set(r, c, ch, int64((ch+1)*10))
			}
		}
	}

	ig := integralOf(t, g)

	for ch := 0; ch < 3; ch++ {
		want := int64((ch + 1) * 40)
		if got := ig.RawBuffer().At(2, 2, ch); got != want {
			t.Errorf("full sum channel %d: got %d, want %d", ch, got, want)
		}
	}
}
