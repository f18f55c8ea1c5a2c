package spline

// validateAxis runs the per-axis fit checks in slot order: length, order,
// abscissa monotonicity, then supplied-knot monotonicity and size. The
// first failure wins and carries the stable numeric code for its slot.
func validateAxis(axis int, x []float64, k int, knots []float64) error {
	n := len(x)
	if n < 3 {
		return &ValidationError{Axis: axis, Kind: BadLen}
	}
	if k < 2 || k > n-1 {
		return &ValidationError{Axis: axis, Kind: BadOrder}
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return &ValidationError{Axis: axis, Kind: BadAbscissae}
		}
	}
	if knots != nil {
		if len(knots) != n+k {
			return &ValidationError{Axis: axis, Kind: BadKnots}
		}
		for i := 1; i < len(knots); i++ {
			if knots[i] < knots[i-1] {
				return &ValidationError{Axis: axis, Kind: BadKnots}
			}
		}
	}
	return nil
}
