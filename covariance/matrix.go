// SPDX-License-Identifier: MIT

// Package covariance - immutable item covariance matrix.
//
// Purpose:
//   - Hold an n×n item covariance matrix in a private gonum SymDense copy.
//   - Validate once at construction (shape, finiteness, symmetry, variances)
//     so downstream kernels never see malformed input.
//   - Cache the summaries every reliability kernel needs: row sums, the
//     diagonal sum and the total (composite) variance.
//
// Complexity quicksheet:
//   - New/FromSymmetric: O(n²); accessors: O(1); Rows/Sym/Permute: O(n²).

package covariance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNew           = "New"
	ctxFromSymmetric = "FromSymmetric"
	ctxAt            = "At"
	ctxPermute       = "Permute"
)

// Matrix is a validated, read-only covariance matrix.
//   - sym holds the entries; only the upper triangle is stored by gonum.
//   - rowSums[i] = Σ_j a[i][j] including the diagonal.
//   - total = Σ_i rowSums[i]; diag = Σ_i a[i][i].
//
// A *Matrix never changes after construction and is safe for concurrent readers.
type Matrix struct {
	sym     *mat.SymDense
	n       int
	rowSums []float64
	total   float64
	diag    float64
	opts    Options
}

// New builds a Matrix from a row-major table of covariances.
// MAIN DESCRIPTION:
//   - Validates and copies rows; the caller keeps ownership of its slices.
//
// Implementation:
//   - Stage 1: shape check (non-empty, every row of length n).
//   - Stage 2: flatten into a gonum Dense view and run the numeric policy
//     (finite → symmetric within eps → non-negative variances).
//   - Stage 3: store the upper triangle in a SymDense and cache summaries.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrNaNInf, ErrAsymmetry, ErrNegativeVariance
//     (wrapped with "New: ..."), in that priority order.
//
// Determinism:
//   - Summaries are accumulated in fixed i→j order.
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - Pairs that differ by at most eps are resolved to the upper-triangle value.
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	n, err := validateRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(flat[i*n:(i+1)*n], rows[i])
	}
	dense := mat.NewDense(n, n, flat)

	if o.validateNaNInf {
		if err = ValidateFinite(dense); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNew, err)
		}
	}
	if err = ValidateSymmetric(dense, o.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}
	if !o.allowNegativeVariance {
		if err = ValidateVariances(dense); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNew, err)
		}
	}

	// flat is private to this call, so SymDense may adopt it as backing store.
	return newFromSym(mat.NewSymDense(n, flat), o), nil
}

// FromSymmetric builds a Matrix from any gonum symmetric matrix.
// The source is copied; symmetry holds by construction, so only the
// finiteness and variance checks run.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNaNInf, ErrNegativeVariance.
// Complexity: O(n²).
func FromSymmetric(s mat.Symmetric, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if s == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromSymmetric, ErrNilMatrix)
	}
	n := s.SymmetricDim()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromSymmetric, ErrEmpty)
	}

	sym := mat.NewSymDense(n, nil)
	sym.CopySym(s)

	if o.validateNaNInf {
		if err := ValidateFinite(sym); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFromSymmetric, err)
		}
	}
	if !o.allowNegativeVariance {
		if err := ValidateVariances(sym); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFromSymmetric, err)
		}
	}

	return newFromSym(sym, o), nil
}

// newFromSym wraps an already validated SymDense and caches its summaries.
func newFromSym(sym *mat.SymDense, o Options) *Matrix {
	n := sym.SymmetricDim()
	m := &Matrix{
		sym:     sym,
		n:       n,
		rowSums: make([]float64, n),
		opts:    o,
	}

	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < n; j++ {
			s += sym.At(i, j)
		}
		m.rowSums[i] = s
		m.total += s
		m.diag += sym.At(i, i)
	}

	return m
}

// N returns the number of items.
func (m *Matrix) N() int { return m.n }

// At returns a[i][j] or ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return m.sym.At(i, j), nil
}

// Cov returns a[i][j] without an error return.
// It panics on out-of-range indices, like slice indexing; use At for
// untrusted coordinates.
func (m *Matrix) Cov(i, j int) float64 { return m.sym.At(i, j) }

// Variance returns a[i][i]. Panics on out-of-range i.
func (m *Matrix) Variance(i int) float64 { return m.sym.At(i, i) }

// RowSum returns Σ_j a[i][j], diagonal included. Panics on out-of-range i.
func (m *Matrix) RowSum(i int) float64 { return m.rowSums[i] }

// OffDiagonalSum returns Σ_{j≠i} a[i][j], the covariance of item i with all
// other items. Panics on out-of-range i.
func (m *Matrix) OffDiagonalSum(i int) float64 { return m.rowSums[i] - m.sym.At(i, i) }

// TotalVariance returns Σ_i Σ_j a[i][j]: the variance of the unit-weighted
// composite score.
func (m *Matrix) TotalVariance() float64 { return m.total }

// DiagonalSum returns Σ_i a[i][i]: the sum of item variances.
func (m *Matrix) DiagonalSum() float64 { return m.diag }

// Rows returns a deep row-major copy of the entries.
// Complexity: O(n²).
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]float64, m.n)
		for j := 0; j < m.n; j++ {
			out[i][j] = m.sym.At(i, j)
		}
	}

	return out
}

// Sym returns an independent gonum copy of the entries.
func (m *Matrix) Sym() *mat.SymDense {
	out := mat.NewSymDense(m.n, nil)
	out.CopySym(m.sym)

	return out
}

// Permute returns a copy whose item p is item order[p] of m:
// out[p][q] = m[order[p]][order[q]]. The numeric policy of m is preserved.
//
// Errors: ErrBadPermutation unless order is a permutation of 0..n-1.
// Complexity: O(n²).
func (m *Matrix) Permute(order []int) (*Matrix, error) {
	if err := validatePermutation(order, m.n); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxPermute, err)
	}

	sym := mat.NewSymDense(m.n, nil)
	for p := 0; p < m.n; p++ {
		for q := p; q < m.n; q++ {
			sym.SetSym(p, q, m.sym.At(order[p], order[q]))
		}
	}

	return newFromSym(sym, m.opts), nil
}

// String renders the matrix with gonum's formatter.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.sym, mat.Squeeze()))
}
