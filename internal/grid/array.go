package grid

import "fmt"

// Array is a dense row-major float64 array of arbitrary rank.
//
// The backing slice is exposed through Data so numerical kernels can walk
// it directly; Shape and the derived strides describe the layout. Arrays
// do not support views or broadcasting: every Array owns a contiguous
// block of shape.NumElements() values.
type Array struct {
	shape   Shape
	strides []int
	data    []float64
}

// New creates a zero-filled array of the given shape.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	s := shape.Clone()
	return &Array{
		shape:   s,
		strides: s.Strides(),
		data:    make([]float64, s.NumElements()),
	}, nil
}

// FromSlice wraps an existing slice as an array of the given shape.
// The array aliases data; it does not copy.
func FromSlice(shape Shape, data []float64) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("FromSlice: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("FromSlice: data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	s := shape.Clone()
	return &Array{shape: s, strides: s.Strides(), data: data}, nil
}

// Shape returns the array's shape. The caller must not modify it.
func (a *Array) Shape() Shape { return a.shape }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Data returns the backing slice in row-major order.
func (a *Array) Data() []float64 { return a.data }

// Strides returns the row-major strides. The caller must not modify them.
func (a *Array) Strides() []int { return a.strides }

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: a.shape.Clone(), strides: a.shape.Strides(), data: data}
}

// Offset returns the flat offset of a multi-index.
func (a *Array) Offset(idx ...int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("Offset: index rank %d does not match array rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			panic(fmt.Sprintf("Offset: index %d out of range [0, %d) on axis %d", j, a.shape[i], i))
		}
		off += j * a.strides[i]
	}
	return off
}

// At returns the element at a multi-index.
func (a *Array) At(idx ...int) float64 { return a.data[a.Offset(idx...)] }

// Set stores v at a multi-index.
func (a *Array) Set(v float64, idx ...int) { a.data[a.Offset(idx...)] = v }

// Fill tabulates f over every grid point in row-major order. The index
// slice passed to f is reused between calls; f must not retain it.
func (a *Array) Fill(f func(idx []int) float64) {
	idx := make([]int, len(a.shape))
	for off := range a.data {
		a.data[off] = f(idx)
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < a.shape[ax] {
				break
			}
			idx[ax] = 0
		}
	}
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("Linspace: need n >= 2, got %d", n))
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}
