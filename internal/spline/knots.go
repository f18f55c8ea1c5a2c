package spline

// rightShift is the fraction of the last abscissa gap added to the right
// endpoint knots. It makes the last data point a strict interior point of
// the spline support, so right-endpoint evaluation takes the same code
// path as interior queries.
const rightShift = 0.1

// defaultKnots writes into t (length n+k) the not-a-knot sequence for the
// strictly increasing abscissae x and order k: a k-fold knot at x[0], a
// k-fold knot just beyond x[n-1], and interior knots at data points for
// even k or data midpoints for odd k. The result keeps k-2 continuous
// derivatives everywhere and satisfies the Schoenberg-Whitney condition
// for these abscissae.
func defaultKnots(x []float64, k int, t []float64) {
	n := len(x)
	for i := 0; i < k; i++ {
		t[i] = x[0]
	}
	hi := x[n-1] + rightShift*(x[n-1]-x[n-2])
	for i := n; i < n+k; i++ {
		t[i] = hi
	}
	if k%2 == 1 {
		m := (k - 1) / 2
		for j := k; j < n; j++ {
			t[j] = 0.5 * (x[j+m-k] + x[j+m-k+1])
		}
	} else {
		m := k / 2
		for j := k; j < n; j++ {
			t[j] = x[j+m-k]
		}
	}
}
