package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 6, Shape{6}.NumElements())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShape_Strides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{1}, Shape{5}.Strides())
}

func TestShape_Rotate(t *testing.T) {
	assert.Equal(t, Shape{4, 2, 3}, Shape{2, 3, 4}.Rotate())
	assert.Equal(t, Shape{7}, Shape{7}.Rotate())

	// Rank many rotations restore the original order.
	s := Shape{2, 3, 4, 5}
	r := s.Clone()
	for i := 0; i < len(s); i++ {
		r = r.Rotate()
	}
	assert.True(t, s.Equal(r))
}

func TestArray_AtSetOffset(t *testing.T) {
	a, err := New(Shape{2, 3})
	require.NoError(t, err)

	a.Set(7.5, 1, 2)
	assert.Equal(t, 7.5, a.At(1, 2))
	assert.Equal(t, 5, a.Offset(1, 2))
	assert.Equal(t, 7.5, a.Data()[5])

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) })
}

func TestArray_FromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	a, err := FromSlice(Shape{2, 3}, data)
	require.NoError(t, err)
	assert.Equal(t, 6.0, a.At(1, 2))

	// The array aliases the slice.
	data[0] = -1
	assert.Equal(t, -1.0, a.At(0, 0))

	_, err = FromSlice(Shape{2, 2}, data)
	assert.Error(t, err)
}

func TestArray_Fill(t *testing.T) {
	a, err := New(Shape{2, 2, 2})
	require.NoError(t, err)
	a.Fill(func(idx []int) float64 {
		return float64(4*idx[0] + 2*idx[1] + idx[2])
	})
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, a.Data())
}

func TestArray_Clone(t *testing.T) {
	a, err := New(Shape{2, 2})
	require.NoError(t, err)
	a.Set(3, 0, 1)
	b := a.Clone()
	b.Set(9, 0, 1)
	assert.Equal(t, 3.0, a.At(0, 1))
	assert.Equal(t, 9.0, b.At(0, 1))
}

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	xs = Linspace(-3, 3, 2)
	assert.Equal(t, []float64{-3, 3}, xs)

	assert.Panics(t, func() { Linspace(0, 1, 1) })
}
