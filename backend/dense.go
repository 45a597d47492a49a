package backend

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// denseArray is a materialized float64 vector or scalar.
type denseArray struct {
	data   []float64
	scalar bool
}

func (a *denseArray) Len() int       { return len(a.data) }
func (a *denseArray) IsScalar() bool { return a.scalar }

func (a *denseArray) Float64s() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

func (a *denseArray) Value() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("backend: Value on array of length %d", len(a.data)))
	}
	return a.data[0]
}

// denseOps evaluates every operation eagerly.
type denseOps struct{}

func asDense(x Array) *denseArray {
	a, ok := x.(*denseArray)
	if !ok {
		panic(fmt.Sprintf("backend: array %T does not belong to the dense engine", x))
	}
	return a
}

func (denseOps) FromSlice(xs []float64) Array {
	data := make([]float64, len(xs))
	copy(data, xs)
	return &denseArray{data: data}
}

func (denseOps) Scalar(c float64) Array {
	return &denseArray{data: []float64{c}, scalar: true}
}

func (denseOps) Ones(n int) Array {
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	return &denseArray{data: data}
}

func (denseOps) At(x Array, i int) Array {
	return &denseArray{data: []float64{asDense(x).data[i]}, scalar: true}
}

func (denseOps) Slice(x Array, lo, hi int) Array {
	out := make([]float64, hi-lo)
	copy(out, asDense(x).data[lo:hi])
	return &denseArray{data: out}
}

func (denseOps) Concat(xs ...Array) Array {
	var data []float64
	for _, x := range xs {
		data = append(data, asDense(x).data...)
	}
	return &denseArray{data: data}
}

func (denseOps) Split2(x Array) (Array, Array) {
	data := asDense(x).data
	half := len(data) / 2
	lo := make([]float64, half)
	hi := make([]float64, len(data)-half)
	copy(lo, data[:half])
	copy(hi, data[half:])
	return &denseArray{data: lo}, &denseArray{data: hi}
}

func (denseOps) Roll(x Array, shift int) Array {
	return &denseArray{data: rollSlice(asDense(x).data, shift)}
}

func (denseOps) Add(x, y Array) Array {
	return denseBinary(x, y, func(a, b float64) float64 { return a + b })
}

func (denseOps) Sub(x, y Array) Array {
	return denseBinary(x, y, func(a, b float64) float64 { return a - b })
}

func (denseOps) Mul(x, y Array) Array {
	return denseBinary(x, y, func(a, b float64) float64 { return a * b })
}

func (denseOps) Div(x, y Array) Array {
	return denseBinary(x, y, func(a, b float64) float64 { return a / b })
}

func denseBinary(x, y Array, op func(a, b float64) float64) Array {
	xa, ya := asDense(x), asDense(y)
	return &denseArray{
		data:   binarySlices(xa.data, ya.data, op),
		scalar: xa.scalar && ya.scalar,
	}
}

func (denseOps) Neg(x Array) Array {
	a := asDense(x)
	out := make([]float64, len(a.data))
	floats.ScaleTo(out, -1, a.data)
	return &denseArray{data: out, scalar: a.scalar}
}

func (denseOps) Scale(c float64, x Array) Array {
	a := asDense(x)
	out := make([]float64, len(a.data))
	floats.ScaleTo(out, c, a.data)
	return &denseArray{data: out, scalar: a.scalar}
}

func (denseOps) Shift(c float64, x Array) Array {
	a := asDense(x)
	out := make([]float64, len(a.data))
	floats.AddScaledTo(out, constSlice(c, len(a.data)), 1, a.data)
	return &denseArray{data: out, scalar: a.scalar}
}

func (denseOps) Pow(x Array, p float64) Array {
	return denseUnary(x, func(v float64) float64 { return math.Pow(v, p) })
}
func (denseOps) Exp(x Array) Array  { return denseUnary(x, math.Exp) }
func (denseOps) Sin(x Array) Array  { return denseUnary(x, math.Sin) }
func (denseOps) Cos(x Array) Array  { return denseUnary(x, math.Cos) }
func (denseOps) Tanh(x Array) Array { return denseUnary(x, math.Tanh) }

func denseUnary(x Array, op func(v float64) float64) Array {
	a := asDense(x)
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = op(v)
	}
	return &denseArray{data: out, scalar: a.scalar}
}

func (denseOps) Sum(x Array) Array {
	return &denseArray{data: []float64{floats.Sum(asDense(x).data)}, scalar: true}
}

func (denseOps) Dot(x, y Array) Array {
	return &denseArray{data: []float64{floats.Dot(asDense(x).data, asDense(y).data)}, scalar: true}
}

func (denseOps) Norm(x Array) Array {
	return &denseArray{data: []float64{floats.Norm(asDense(x).data, 2)}, scalar: true}
}

func (denseOps) MatVec(w Array, rows, cols int, x Array) Array {
	return &denseArray{data: matVecSlice(asDense(w).data, rows, cols, asDense(x).data)}
}

// denseRand samples through gonum's distuv.
type denseRand struct{}

func (denseRand) Sampler(seed uint64) Sampler {
	return &denseSampler{src: rand.NewSource(seed)}
}

type denseSampler struct {
	src rand.Source
}

func (s *denseSampler) StandardNormal(n int) Array {
	return s.Normal(0, 1, n)
}

func (s *denseSampler) Normal(mu, sigma float64, n int) Array {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}
	data := make([]float64, n)
	for i := range data {
		data[i] = dist.Rand()
	}
	return &denseArray{data: data}
}

// Shared kernels. The trace engine evaluates its recorded graphs through
// the same routines, so both engines agree bit-for-bit on results.

func binarySlices(x, y []float64, op func(a, b float64) float64) []float64 {
	switch {
	case len(x) == len(y):
		out := make([]float64, len(x))
		for i := range x {
			out[i] = op(x[i], y[i])
		}
		return out
	case len(x) == 1:
		out := make([]float64, len(y))
		for i := range y {
			out[i] = op(x[0], y[i])
		}
		return out
	case len(y) == 1:
		out := make([]float64, len(x))
		for i := range x {
			out[i] = op(x[i], y[0])
		}
		return out
	}
	panic(fmt.Sprintf("backend: length mismatch %d vs %d", len(x), len(y)))
}

func rollSlice(x []float64, shift int) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i, v := range x {
		out[((i+shift)%n+n)%n] = v
	}
	return out
}

func constSlice(c float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func matVecSlice(w []float64, rows, cols int, x []float64) []float64 {
	m := mat.NewDense(rows, cols, w)
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(cols, x))
	result := make([]float64, rows)
	copy(result, out.RawVector().Data)
	return result
}
