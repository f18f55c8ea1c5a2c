package spline

import "fmt"

// evalTensor reduces the d-dimensional coefficient array to the scalar
// value of the spline (or of a mixed partial derivative) at the query
// point. Evaluation never fails observably: any out-of-range coordinate
// or invalid derivative order yields exactly 0, with the cause recorded
// in the state's diagnostic slot.
//
// The collapse walks dimension by dimension starting at the contiguous
// last axis. Only the k_a coefficients around the query are touched on
// each axis, so the work per query is proportional to the product of the
// orders and independent of the grid extents. The staircase of
// intermediate tensors lives in one scratch buffer and compacts in place:
// the write index trails the read index, so no second buffer is needed.
func evalTensor(sp *Spline, st *EvalState, x []float64, deriv []int) float64 {
	d := len(sp.axes)
	if len(x) != d {
		panic(fmt.Sprintf("eval: query rank %d does not match spline rank %d", len(x), d))
	}
	if len(deriv) != d {
		panic(fmt.Sprintf("eval: derivative rank %d does not match spline rank %d", len(deriv), d))
	}
	st.err = nil

	for a, r := range sp.axes {
		if deriv[a] < 0 || deriv[a] >= r.k {
			st.err = fmt.Errorf("eval: axis %d derivative order %d outside [0, %d]: %w",
				a, deriv[a], r.k-1, ErrInvalidArgument)
			return 0
		}
	}

	coef := sp.coef.Data()
	strides := sp.coef.Strides()

	// Locate the intervals for the outer axes once. The search stops at
	// t[n] so the located index always carries a full coefficient window;
	// a query exactly at t[n] takes the left limit by walking back across
	// knots duplicated at the right endpoint, mirroring the 1D evaluator.
	// Out of span silences the query to zero.
	base := 0
	for a := 0; a < d-1; a++ {
		r := &sp.axes[a]
		t := r.knots
		left, flag := findInterval(t[:r.n+1], x[a], &st.span[a])
		if flag == rangeAbove && x[a] == t[r.n] {
			for x[a] == t[left] {
				if left == r.k-1 {
					st.err = fmt.Errorf("eval: axis %d: %w", a, ErrLeftLimit)
					return 0
				}
				left--
			}
			flag = rangeIn
		}
		if flag != rangeIn || left < r.k-1 {
			st.err = fmt.Errorf("eval: axis %d x=%g outside knot span: %w", a, x[a], ErrOutOfDomain)
			return 0
		}
		st.idx[a] = left
		base += (left - r.k + 1) * strides[a]
	}
	last := &sp.axes[d-1]

	lefts := st.idx[:d-1]

	// First stage: collapse the contiguous axis. Each of the prod(k_a)
	// outer-window corners selects one stride-1 coefficient line; the 1D
	// evaluator reduces it to a scalar in the staircase buffer.
	window := 1
	for a := 0; a < d-1; a++ {
		window *= sp.axes[a].k
	}
	jdx := st.jdx[:d-1]
	for a := range jdx {
		jdx[a] = 0
	}
	off := base
	for w := 0; w < window; w++ {
		v, err := evalSpline(last.knots, coef[off:], 1, last.n, last.k,
			deriv[d-1], x[d-1], &st.span[d-1], st.ws)
		if err != nil {
			st.err = err
			return 0
		}
		st.stair[w] = v
		for a := d - 2; a >= 0; a-- {
			jdx[a]++
			off += strides[a]
			if jdx[a] < sp.axes[a].k {
				break
			}
			jdx[a] = 0
			off -= sp.axes[a].k * strides[a]
		}
	}

	// Remaining stages: each collapses one more axis by evaluating local
	// k-coefficient splines over the 2k-knot window around the located
	// interval, writing results over the front of the same buffer.
	for a := d - 2; a >= 0; a-- {
		r := &sp.axes[a]
		lo := lefts[a] - r.k + 1
		tw := r.knots[lo : lo+2*r.k]
		window /= r.k
		for p := 0; p < window; p++ {
			v, err := evalSpline(tw, st.stair[p*r.k:], 1, r.k, r.k,
				deriv[a], x[a], &st.inner[a], st.ws)
			if err != nil {
				st.err = err
				return 0
			}
			st.stair[p] = v
		}
	}
	return st.stair[0]
}
