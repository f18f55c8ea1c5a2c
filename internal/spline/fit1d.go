package spline

import "fmt"

// fitWorkspace holds the scratch for one axis sweep: the banded
// collocation matrix, the Cox-de Boor state, the basis value buffer and
// one right-hand-side vector. It is reused across axes within a fit.
type fitWorkspace struct {
	mat   *banded
	basis *basisState
	vb    []float64
	rhs   []float64
}

func newFitWorkspace(nmax, kmax int) *fitWorkspace {
	return &fitWorkspace{
		mat:   newBanded(nmax, kmax-1, kmax-1),
		basis: newBasisState(kmax),
		vb:    make([]float64, kmax),
		rhs:   make([]float64, nmax),
	}
}

// collocate assembles and factorizes the banded collocation matrix
// A[i][j] = b_{j,k}(x[i]) for abscissae x and knots t. Row i has at most k
// nonzero entries, in columns left-k+1..left where left is the knot
// interval holding x[i]; the monotone walk below keeps left inside
// [i, i+k-1], which is exactly the Schoenberg-Whitney band structure. An
// abscissa outside the support of its own basis function either fails the
// walk here or surfaces as a zero pivot in the factorization.
func (ws *fitWorkspace) collocate(x, t []float64, k int) error {
	n := len(x)
	ws.mat.reset(n, k-1, k-1)

	left := k - 1
	for i := 0; i < n; i++ {
		xi := x[i]
		lmax := i + k - 1
		if lmax > n-1 {
			lmax = n - 1
		}
		if left < i {
			left = i
		}
		if xi < t[left] {
			return fmt.Errorf("fit: abscissa %d outside basis support: %w", i, ErrSingular)
		}
		for xi >= t[left+1] {
			if left == lmax {
				if xi > t[left+1] {
					return fmt.Errorf("fit: abscissa %d outside basis support: %w", i, ErrSingular)
				}
				break
			}
			left++
		}
		if err := ws.basis.values(t, left, k, xi, ws.vb); err != nil {
			return err
		}
		for m := 0; m < k; m++ {
			ws.mat.set(i, left-k+1+m, ws.vb[m])
		}
	}
	return ws.mat.factorize()
}

// fitLines computes interpolating B-spline coefficients for nf independent
// right-hand sides that share abscissae x and knots t. src holds nf
// contiguous lines of n samples each; dst receives the transposed layout
// dst[c*nf+line] = c-th coefficient of line line, so a tensor-product
// sweep over the next axis reads its lines with stride 1. src and dst must
// not overlap.
//
// The collocation matrix is assembled and factorized once; each line costs
// one banded back-substitution.
func fitLines(x, t []float64, k, nf int, src, dst []float64, ws *fitWorkspace) error {
	n := len(x)
	if err := ws.collocate(x, t, k); err != nil {
		return err
	}
	rhs := ws.rhs[:n]
	for line := 0; line < nf; line++ {
		copy(rhs, src[line*n:(line+1)*n])
		ws.mat.solve(rhs)
		for c := 0; c < n; c++ {
			dst[c*nf+line] = rhs[c]
		}
	}
	return nil
}
