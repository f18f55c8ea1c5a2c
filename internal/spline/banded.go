package spline

import "fmt"

// banded is a square band matrix in diagonal-ordered storage: the matrix
// entry A[i][j] with -nu <= i-j <= nl lives at w[(nu+i-j)*n + j]. Each
// diagonal occupies one contiguous row of w, so elimination and
// substitution walk stride-1 along columns.
type banded struct {
	n  int
	nl int // subdiagonals
	nu int // superdiagonals
	w  []float64
}

func newBanded(n, nl, nu int) *banded {
	return &banded{n: n, nl: nl, nu: nu, w: make([]float64, (nl+nu+1)*n)}
}

// reset resizes the matrix for reuse and zeroes the storage.
func (m *banded) reset(n, nl, nu int) {
	need := (nl + nu + 1) * n
	if cap(m.w) < need {
		m.w = make([]float64, need)
	} else {
		m.w = m.w[:need]
		for i := range m.w {
			m.w[i] = 0
		}
	}
	m.n, m.nl, m.nu = n, nl, nu
}

// set stores v at matrix row i, column j. The pair must lie in the band.
func (m *banded) set(i, j int, v float64) {
	m.w[(m.nu+i-j)*m.n+j] = v
}

// factorize overwrites the band with its LU factorization, L unit lower
// triangular and U upper triangular, without pivoting. It succeeds exactly
// when every pivot is nonzero after elimination, which is guaranteed for
// totally positive matrices such as the B-spline collocation matrix under
// the Schoenberg-Whitney condition. A zero pivot reports ErrSingular.
func (m *banded) factorize() error {
	n, nl, nu := m.n, m.nl, m.nu
	if n <= 0 {
		return fmt.Errorf("banded: order %d: %w", n, ErrInvalidArgument)
	}
	diag := m.w[nu*n:]

	switch {
	case nl == 0:
		// Already upper triangular: only the pivots need checking.
		for j := 0; j < n; j++ {
			if diag[j] == 0 {
				return fmt.Errorf("banded: zero pivot at column %d: %w", j, ErrSingular)
			}
		}
		return nil
	case nu == 0:
		// Lower triangular: scale each subdiagonal column by its pivot so
		// that solve sees the same unit-lower form as the general path.
		for j := 0; j < n; j++ {
			piv := diag[j]
			if piv == 0 {
				return fmt.Errorf("banded: zero pivot at column %d: %w", j, ErrSingular)
			}
			for i := 1; i <= nl && j+i < n; i++ {
				m.w[(nu+i)*n+j] /= piv
			}
		}
		return nil
	}

	for j := 0; j < n; j++ {
		piv := diag[j]
		if piv == 0 {
			return fmt.Errorf("banded: zero pivot at column %d: %w", j, ErrSingular)
		}
		imax := nl
		if j+imax >= n {
			imax = n - 1 - j
		}
		for i := 1; i <= imax; i++ {
			fac := m.w[(nu+i)*n+j] / piv
			m.w[(nu+i)*n+j] = fac
			lmax := nu
			if j+lmax >= n {
				lmax = n - 1 - j
			}
			for l := 1; l <= lmax; l++ {
				m.w[(nu+i-l)*n+j+l] -= fac * m.w[(nu-l)*n+j+l]
			}
		}
	}
	return nil
}

// solve overwrites b with the solution of Ax=b using the factored band:
// forward substitution through the unit-lower factor, then back
// substitution through the upper factor, each touching band entries only.
func (m *banded) solve(b []float64) {
	n, nl, nu := m.n, m.nl, m.nu
	diag := m.w[nu*n:]

	if nl > 0 {
		for j := 0; j < n-1; j++ {
			imax := nl
			if j+imax >= n {
				imax = n - 1 - j
			}
			bj := b[j]
			for i := 1; i <= imax; i++ {
				b[j+i] -= m.w[(nu+i)*n+j] * bj
			}
		}
	}
	if nu == 0 {
		for j := 0; j < n; j++ {
			b[j] /= diag[j]
		}
		return
	}
	for j := n - 1; j >= 0; j-- {
		b[j] /= diag[j]
		imax := nu
		if imax > j {
			imax = j
		}
		bj := b[j]
		for i := 1; i <= imax; i++ {
			b[j-i] -= m.w[(nu-i)*n+j] * bj
		}
	}
}
