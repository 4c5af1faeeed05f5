package affine

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Point is a 2-D coordinate used for correspondence pairs.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// minFitCount is the number of point pairs that fully determine a 2-D
// affine transform.
const minFitCount = 3

// Model is a 2-D affine map
//
//	x' = a11*x + a12*y + tx
//	y' = a21*x + a22*y + ty
//
// The zero Model is the degenerate all-zero map; call Fit or Load before
// Transform.
type Model struct {
	// coef holds a11, a12, tx, a21, a22, ty.
	coef      [6]float64
	consensus int
}

// MinFitCount returns the minimum number of point pairs Fit accepts.
func (m *Model) MinFitCount() int {
	return minFitCount
}

// Consensus returns the number of point pairs used by the last
// successful Fit, or 0 if the model has not been fitted.
func (m *Model) Consensus() int {
	return m.consensus
}

// Matrix returns the fitted coefficients as a 2x3 matrix:
// row 0 is a11, a12, tx and row 1 is a21, a22, ty.
func (m *Model) Matrix() [2][3]float64 {
	return [2][3]float64{
		{m.coef[0], m.coef[1], m.coef[2]},
		{m.coef[3], m.coef[4], m.coef[5]},
	}
}

// Fit computes the affine map taking each src point to its paired dst
// point. With exactly MinFitCount pairs the system is solved directly;
// with more pairs the least-squares solution is used. The pair count is
// recorded as the model's consensus.
func (m *Model) Fit(src, dst []Point) error {
	if len(src) != len(dst) {
		return fmt.Errorf("affine: mismatched pair counts: %d source vs %d destination", len(src), len(dst))
	}
	if len(src) < minFitCount {
		return fmt.Errorf("affine: need at least %d point pairs, got %d", minFitCount, len(src))
	}

	n := len(src)
	a := mat.NewDense(2*n, 6, nil)
	b := mat.NewVecDense(2*n, nil)
	for i, p := range src {
		a.SetRow(2*i, []float64{p.X, p.Y, 1, 0, 0, 0})
		a.SetRow(2*i+1, []float64{0, 0, 0, p.X, p.Y, 1})
		b.SetVec(2*i, dst[i].X)
		b.SetVec(2*i+1, dst[i].Y)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return fmt.Errorf("affine: degenerate point configuration: %w", err)
	}

	for i := range m.coef {
		m.coef[i] = x.AtVec(i)
	}
	m.consensus = n
	return nil
}

// Transform applies the affine map to p.
func (m *Model) Transform(p Point) Point {
	return Point{
		X: m.coef[0]*p.X + m.coef[1]*p.Y + m.coef[2],
		Y: m.coef[3]*p.X + m.coef[4]*p.Y + m.coef[5],
	}
}

// Save writes the 2x3 matrix as two whitespace-separated text lines.
func (m *Model) Save(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%g %g %g\n%g %g %g\n",
		m.coef[0], m.coef[1], m.coef[2],
		m.coef[3], m.coef[4], m.coef[5])
	if err != nil {
		return fmt.Errorf("affine: failed to write model: %w", err)
	}
	return nil
}

// Load reads a matrix in the format written by Save. The consensus of a
// loaded model is 0.
func (m *Model) Load(r io.Reader) error {
	var coef [6]float64
	if _, err := fmt.Fscan(r, &coef[0], &coef[1], &coef[2], &coef[3], &coef[4], &coef[5]); err != nil {
		return fmt.Errorf("affine: failed to read model: %w", err)
	}
	m.coef = coef
	m.consensus = 0
	return nil
}

// SaveFile persists the model to a text file at path.
func (m *Model) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("affine: failed to create %s: %w", path, err)
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a model previously written with SaveFile.
func (m *Model) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("affine: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return m.Load(f)
}
