package spline

import "fmt"

// basisState carries the Cox-de Boor recurrence between orders. The two
// difference buffers hold t[ileft+j]-x and x-t[ileft+1-j] for the degrees
// processed so far, so raising the order never recomputes a subtraction.
type basisState struct {
	deltaR []float64
	deltaL []float64
	order  int
}

func newBasisState(kmax int) *basisState {
	return &basisState{
		deltaR: make([]float64, kmax),
		deltaL: make([]float64, kmax),
	}
}

// start resets the recurrence to order 1: the single indicator function on
// [t[ileft], t[ileft+1]) has value 1.
func (s *basisState) start(vb []float64) {
	vb[0] = 1
	s.order = 1
}

// extend raises the stored basis values in vb from the current order to k.
// On return vb[0..k-1] hold b[ileft-k+1..ileft, k](x), the k basis
// functions of order k that can be nonzero at x. The caller must keep t,
// ileft and x fixed across start/extend pairs; extend may be called again
// with a larger k to continue the recurrence from the preserved buffers.
func (s *basisState) extend(t []float64, ileft, k int, x float64, vb []float64) error {
	if k < 1 || k > len(s.deltaR) {
		return fmt.Errorf("basis: order %d out of range [1, %d]: %w", k, len(s.deltaR), ErrInvalidArgument)
	}
	if x < t[ileft] || x > t[ileft+1] {
		return fmt.Errorf("basis: x=%g outside interval [%g, %g]: %w",
			x, t[ileft], t[ileft+1], ErrInvalidArgument)
	}
	for j := s.order; j < k; j++ {
		s.deltaR[j-1] = t[ileft+j] - x
		s.deltaL[j-1] = x - t[ileft+1-j]
		saved := 0.0
		for r := 0; r < j; r++ {
			term := vb[r] / (s.deltaR[r] + s.deltaL[j-1-r])
			vb[r] = saved + s.deltaR[r]*term
			saved = s.deltaL[j-1-r] * term
		}
		vb[j] = saved
	}
	s.order = k
	return nil
}

// values computes the order-k basis values at x from scratch.
func (s *basisState) values(t []float64, ileft, k int, x float64, vb []float64) error {
	s.start(vb)
	return s.extend(t, ileft, k, x, vb)
}
