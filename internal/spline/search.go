package spline

// Interval search over a nondecreasing knot vector.
//
// findInterval returns the largest index i with xt[i] <= x, so that
// xt[i] <= x < xt[i+1] whenever x lies inside [xt[0], xt[last]). Queries
// below the first knot return (0, rangeBelow); queries at or above the
// last knot return (last, rangeAbove). When several knots equal x the
// largest such index wins.
//
// The caller-owned hint is the starting interval. The search gallops away
// from the hint with doubling steps until the query is bracketed, then
// binary-searches the bracket, which is amortized O(1) for monotone or
// slowly drifting query sequences and O(log len(xt)) in the worst case.
// The hint is updated to the returned index so the next call starts local.

const (
	rangeBelow = -1
	rangeIn    = 0
	rangeAbove = 1
)

func findInterval(xt []float64, x float64, hint *int) (ileft, flag int) {
	last := len(xt) - 1
	if x < xt[0] {
		*hint = 0
		return 0, rangeBelow
	}
	if x >= xt[last] {
		*hint = last
		return last, rangeAbove
	}

	ilo := *hint
	if ilo < 0 || ilo >= last {
		ilo = 0
	}
	ihi := ilo + 1

	switch {
	case x >= xt[ihi]:
		// Gallop upward.
		for step := 1; ; step <<= 1 {
			ilo = ihi
			ihi = ilo + step
			if ihi >= last {
				ihi = last
				break
			}
			if x < xt[ihi] {
				break
			}
		}
	case x < xt[ilo]:
		// Gallop downward.
		for step := 1; ; step <<= 1 {
			ihi = ilo
			ilo = ihi - step
			if ilo <= 0 {
				ilo = 0
				break
			}
			if x >= xt[ilo] {
				break
			}
		}
	}

	// Invariant: xt[ilo] <= x < xt[ihi].
	for ihi-ilo > 1 {
		mid := int(uint(ilo+ihi) >> 1)
		if x >= xt[mid] {
			ilo = mid
		} else {
			ihi = mid
		}
	}
	*hint = ilo
	return ilo, rangeIn
}
