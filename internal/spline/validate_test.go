package spline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAxis_SlotOrderAndCodes(t *testing.T) {
	good := []float64{0, 0.5, 1, 1.5}

	tests := []struct {
		name     string
		axis     int
		x        []float64
		k        int
		knots    []float64
		kind     ValidationKind
		code     int
		sentinel error
	}{
		{"too short", 0, []float64{0, 1}, 2, nil, BadLen, 3, ErrInvalidArgument},
		{"order too small", 0, good, 1, nil, BadOrder, 4, ErrInvalidArgument},
		{"order too large", 0, good, 4, nil, BadOrder, 4, ErrInvalidArgument},
		{"decreasing abscissae", 0, []float64{0, 1, 0.5, 2}, 2, nil, BadAbscissae, 5, ErrNonMonotone},
		{"repeated abscissae", 0, []float64{0, 1, 1, 2}, 2, nil, BadAbscissae, 5, ErrNonMonotone},
		{"knot length", 0, good, 2, []float64{0, 0, 1, 1, 1}, BadKnots, 6, ErrNonMonotone},
		{"decreasing knots", 0, good, 2, []float64{0, 0, 1, 0.5, 2, 2}, BadKnots, 6, ErrNonMonotone},
		{"axis 1 slot", 1, []float64{0}, 2, nil, BadLen, 7, ErrInvalidArgument},
		{"axis 5 slot", 5, good, 0, nil, BadOrder, 24, ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAxis(tc.axis, tc.x, tc.k, tc.knots)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.axis, verr.Axis)
			assert.Equal(t, tc.kind, verr.Kind)
			assert.Equal(t, tc.code, verr.Code())
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestValidateAxis_Accepts(t *testing.T) {
	x := []float64{0, 0.5, 1, 1.5}
	assert.NoError(t, validateAxis(0, x, 3, nil))
	assert.NoError(t, validateAxis(0, x, 2, []float64{0, 0, 0.5, 1, 1.6, 1.6}))
	// Duplicate knots are fine as long as they do not decrease.
	assert.NoError(t, validateAxis(0, x, 3, []float64{0, 0, 0, 0.7, 0.7, 1.6, 1.6}))
}

func TestValidationError_ModeCode(t *testing.T) {
	err := &ValidationError{Kind: BadMode}
	assert.Equal(t, 2, err.Code())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
