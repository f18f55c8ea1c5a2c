package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fit1D interpolates a single line of samples and returns the coefficients
// together with the generated knots.
func fit1D(t *testing.T, x []float64, k int, f func(float64) float64) ([]float64, []float64) {
	t.Helper()
	n := len(x)
	knots := make([]float64, n+k)
	defaultKnots(x, k, knots)

	src := make([]float64, n)
	for i, xi := range x {
		src[i] = f(xi)
	}
	dst := make([]float64, n)
	ws := newFitWorkspace(n, k)
	require.NoError(t, fitLines(x, knots, k, 1, src, dst, ws))
	return dst, knots
}

func TestFitLines_InterpolatesAtAbscissae(t *testing.T) {
	x := []float64{0, 0.15, 0.4, 0.55, 0.8, 1}
	f := func(v float64) float64 { return math.Sin(3*v) + 0.25*v }

	for k := 2; k <= 5; k++ {
		coef, knots := fit1D(t, x, k, f)
		ws := make([]float64, 3*k)
		hint := 0
		for i, xi := range x {
			got, err := evalSpline(knots, coef, 1, len(x), k, 0, xi, &hint, ws)
			require.NoError(t, err, "k=%d i=%d", k, i)
			assert.InDelta(t, f(xi), got, 1e-12, "k=%d x=%g", k, xi)
		}
	}
}

func TestFitLines_MultiRHSTransposed(t *testing.T) {
	// Two right-hand sides through one factorization; the output interleaves
	// coefficient-major so each line's coefficients sit at stride nf.
	x := []float64{0, 0.25, 0.5, 0.75, 1}
	n, k := len(x), 3
	knots := make([]float64, n+k)
	defaultKnots(x, k, knots)

	f0 := func(v float64) float64 { return 2*v + 1 }
	f1 := func(v float64) float64 { return v * v }
	src := make([]float64, 2*n)
	for i, xi := range x {
		src[i] = f0(xi)
		src[n+i] = f1(xi)
	}
	dst := make([]float64, 2*n)
	ws := newFitWorkspace(n, k)
	require.NoError(t, fitLines(x, knots, k, 2, src, dst, ws))

	// Per-line fits must agree with the batched result.
	for line, f := range []func(float64) float64{f0, f1} {
		want, _ := fit1D(t, x, k, f)
		for c := 0; c < n; c++ {
			assert.Equal(t, want[c], dst[c*2+line], "line %d coef %d", line, c)
		}
	}
}

func TestFitLines_PolynomialReproduction(t *testing.T) {
	// A spline of order k reproduces polynomials of degree k-1 exactly, so
	// off-grid evaluation of a fitted quadratic with k=3 matches the
	// polynomial to rounding error.
	x := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	k := 3
	f := func(v float64) float64 { return 1 + 2*v - 3*v*v }
	coef, knots := fit1D(t, x, k, f)

	ws := make([]float64, 3*k)
	hint := 0
	for q := 0; q <= 50; q++ {
		xq := float64(q) / 50
		got, err := evalSpline(knots, coef, 1, len(x), k, 0, xq, &hint, ws)
		require.NoError(t, err)
		assert.InDelta(t, f(xq), got, 1e-12, "x=%g", xq)
	}
}

func TestFitLines_SchoenbergWhitneyViolation(t *testing.T) {
	// Knots stacked at the left end leave the second abscissa (x=0.25)
	// outside the support of its basis function.
	x := []float64{0, 0.25, 0.5, 0.75, 1}
	k := 3
	knots := []float64{0, 0, 0, 0.01, 0.02, 1.05, 1.05, 1.05}
	src := make([]float64, len(x))
	dst := make([]float64, len(x))
	ws := newFitWorkspace(len(x), k)
	err := fitLines(x, knots, k, 1, src, dst, ws)
	assert.ErrorIs(t, err, ErrSingular)
}
