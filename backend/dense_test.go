package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseEngine(t *testing.T) Ops {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Select("dense"))
	return r.MustOps()
}

func TestDenseConstruction(t *testing.T) {
	np := denseEngine(t)

	v := np.FromSlice([]float64{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.False(t, v.IsScalar())
	assert.Equal(t, []float64{1, 2, 3}, v.Float64s())

	c := np.Scalar(4)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.IsScalar())
	assert.Equal(t, 4.0, c.Value())

	assert.Equal(t, []float64{1, 1}, np.Ones(2).Float64s())
}

func TestDenseFromSliceCopies(t *testing.T) {
	np := denseEngine(t)

	src := []float64{1, 2}
	v := np.FromSlice(src)
	src[0] = 99
	assert.Equal(t, []float64{1, 2}, v.Float64s())
}

func TestDenseArithmetic(t *testing.T) {
	np := denseEngine(t)
	x := np.FromSlice([]float64{1, 2, 3})
	y := np.FromSlice([]float64{4, 5, 6})

	assert.Equal(t, []float64{5, 7, 9}, np.Add(x, y).Float64s())
	assert.Equal(t, []float64{-3, -3, -3}, np.Sub(x, y).Float64s())
	assert.Equal(t, []float64{4, 10, 18}, np.Mul(x, y).Float64s())
	assert.Equal(t, []float64{4, 2.5, 2}, np.Div(y, x).Float64s())
	assert.Equal(t, []float64{-1, -2, -3}, np.Neg(x).Float64s())
	assert.Equal(t, []float64{2, 4, 6}, np.Scale(2, x).Float64s())
	assert.Equal(t, []float64{11, 12, 13}, np.Shift(10, x).Float64s())
	assert.Equal(t, []float64{1, 4, 9}, np.Pow(x, 2).Float64s())
}

func TestDenseBroadcast(t *testing.T) {
	np := denseEngine(t)
	v := np.FromSlice([]float64{1, 2, 3})
	c := np.Scalar(10)

	assert.Equal(t, []float64{11, 12, 13}, np.Add(v, c).Float64s())
	assert.Equal(t, []float64{9, 8, 7}, np.Sub(c, v).Float64s())
	assert.False(t, np.Add(v, c).IsScalar())
	assert.True(t, np.Mul(c, c).IsScalar())
}

func TestDenseShapeMismatchPanics(t *testing.T) {
	np := denseEngine(t)
	x := np.FromSlice([]float64{1, 2})
	y := np.FromSlice([]float64{1, 2, 3})
	assert.Panics(t, func() { np.Add(x, y) })
}

func TestDenseIndexingAndShape(t *testing.T) {
	np := denseEngine(t)
	v := np.FromSlice([]float64{1, 2, 3, 4})

	at := np.At(v, 2)
	assert.True(t, at.IsScalar())
	assert.Equal(t, 3.0, at.Value())

	assert.Equal(t, []float64{2, 3}, np.Slice(v, 1, 3).Float64s())
	assert.Equal(t, []float64{4, 1, 2, 3}, np.Roll(v, 1).Float64s())
	assert.Equal(t, []float64{2, 3, 4, 1}, np.Roll(v, -1).Float64s())

	lo, hi := np.Split2(v)
	assert.Equal(t, []float64{1, 2}, lo.Float64s())
	assert.Equal(t, []float64{3, 4}, hi.Float64s())
}

func TestDenseConcatFlattens(t *testing.T) {
	np := denseEngine(t)

	cat := np.Concat(np.FromSlice([]float64{1, 2}), np.Scalar(3))
	assert.Equal(t, []float64{1, 2, 3}, cat.Float64s())

	// Scalars stack into a vector.
	pair := np.Concat(np.Scalar(1), np.Scalar(2))
	assert.Equal(t, 2, pair.Len())
	assert.False(t, pair.IsScalar())
}

func TestDenseReductions(t *testing.T) {
	np := denseEngine(t)
	x := np.FromSlice([]float64{3, 4})

	assert.Equal(t, 7.0, np.Sum(x).Value())
	assert.Equal(t, 25.0, np.Dot(x, x).Value())
	assert.InDelta(t, 5.0, np.Norm(x).Value(), 1e-12)
	assert.True(t, np.Sum(x).IsScalar())
}

func TestDenseMatVec(t *testing.T) {
	np := denseEngine(t)
	w := np.FromSlice([]float64{1, 2, 3, 4, 5, 6}) // 2x3 row-major
	x := np.FromSlice([]float64{1, 1, 1})

	assert.Equal(t, []float64{6, 15}, np.MatVec(w, 2, 3, x).Float64s())
}

func TestDenseValuePanicsOnVector(t *testing.T) {
	np := denseEngine(t)
	assert.Panics(t, func() { np.FromSlice([]float64{1, 2}).Value() })
}

func TestDenseSamplerDeterminism(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Select("dense"))
	rnd := r.MustRand()

	a := rnd.Sampler(42).StandardNormal(8)
	b := rnd.Sampler(42).StandardNormal(8)
	assert.Equal(t, a.Float64s(), b.Float64s())

	// Successive draws from one sampler advance the source.
	s := rnd.Sampler(42)
	first := s.StandardNormal(8)
	second := s.StandardNormal(8)
	assert.NotEqual(t, first.Float64s(), second.Float64s())

	c := rnd.Sampler(43).StandardNormal(8)
	assert.NotEqual(t, a.Float64s(), c.Float64s())
}
