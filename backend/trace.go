package backend

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// The trace engine defers evaluation: every operation appends a node to
// an expression graph, and numbers exist only once a node is
// materialized. Results are memoized per node, so shared subexpressions
// evaluate once. Shapes are inferred at record time, which keeps Len and
// Split2 free of evaluation.

type traceOp uint8

const (
	opConst traceOp = iota
	opAt
	opSlice
	opConcat
	opRoll
	opAdd
	opSub
	opMul
	opDiv
	opNeg
	opScale
	opShift
	opPow
	opExp
	opSin
	opCos
	opTanh
	opSum
	opDot
	opNorm
	opMatVec
)

type traceNode struct {
	op     traceOp
	args   []*traceNode
	length int
	scalar bool

	c          float64 // Scale, Shift, Pow
	shift      int     // Roll
	lo, hi     int     // At, Slice
	rows, cols int     // MatVec

	val  []float64 // constants, then memoized results
	done bool
}

type traceArray struct {
	n *traceNode
}

func (a *traceArray) Len() int       { return a.n.length }
func (a *traceArray) IsScalar() bool { return a.n.scalar }

func (a *traceArray) Float64s() []float64 {
	data := a.n.eval()
	out := make([]float64, len(data))
	copy(out, data)
	return out
}

func (a *traceArray) Value() float64 {
	if a.n.length != 1 {
		panic(fmt.Sprintf("backend: Value on array of length %d", a.n.length))
	}
	return a.n.eval()[0]
}

func (n *traceNode) eval() []float64 {
	if n.done {
		return n.val
	}
	in := make([][]float64, len(n.args))
	for i, arg := range n.args {
		in[i] = arg.eval()
	}
	switch n.op {
	case opConst:
		// val holds the constant already.
	case opAt:
		n.val = []float64{in[0][n.lo]}
	case opSlice:
		n.val = append([]float64(nil), in[0][n.lo:n.hi]...)
	case opConcat:
		var data []float64
		for _, d := range in {
			data = append(data, d...)
		}
		n.val = data
	case opRoll:
		n.val = rollSlice(in[0], n.shift)
	case opAdd:
		n.val = binarySlices(in[0], in[1], func(a, b float64) float64 { return a + b })
	case opSub:
		n.val = binarySlices(in[0], in[1], func(a, b float64) float64 { return a - b })
	case opMul:
		n.val = binarySlices(in[0], in[1], func(a, b float64) float64 { return a * b })
	case opDiv:
		n.val = binarySlices(in[0], in[1], func(a, b float64) float64 { return a / b })
	case opNeg:
		n.val = unarySlice(in[0], func(v float64) float64 { return -v })
	case opScale:
		c := n.c
		n.val = unarySlice(in[0], func(v float64) float64 { return c * v })
	case opShift:
		c := n.c
		n.val = unarySlice(in[0], func(v float64) float64 { return c + v })
	case opPow:
		p := n.c
		n.val = unarySlice(in[0], func(v float64) float64 { return math.Pow(v, p) })
	case opExp:
		n.val = unarySlice(in[0], math.Exp)
	case opSin:
		n.val = unarySlice(in[0], math.Sin)
	case opCos:
		n.val = unarySlice(in[0], math.Cos)
	case opTanh:
		n.val = unarySlice(in[0], math.Tanh)
	case opSum:
		total := 0.0
		for _, v := range in[0] {
			total += v
		}
		n.val = []float64{total}
	case opDot:
		if len(in[0]) != len(in[1]) {
			panic(fmt.Sprintf("backend: length mismatch %d vs %d", len(in[0]), len(in[1])))
		}
		total := 0.0
		for i := range in[0] {
			total += in[0][i] * in[1][i]
		}
		n.val = []float64{total}
	case opNorm:
		total := 0.0
		for _, v := range in[0] {
			total += v * v
		}
		n.val = []float64{math.Sqrt(total)}
	case opMatVec:
		n.val = matVecSlice(in[0], n.rows, n.cols, in[1])
	default:
		panic(fmt.Sprintf("backend: unknown trace op %d", n.op))
	}
	n.done = true
	return n.val
}

func unarySlice(x []float64, op func(v float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = op(v)
	}
	return out
}

// traceOps records operations instead of running them.
type traceOps struct{}

func asTrace(x Array) *traceNode {
	a, ok := x.(*traceArray)
	if !ok {
		panic(fmt.Sprintf("backend: array %T does not belong to the trace engine", x))
	}
	return a.n
}

func traceConst(data []float64, scalar bool) Array {
	return &traceArray{n: &traceNode{
		op:     opConst,
		length: len(data),
		scalar: scalar,
		val:    data,
		done:   true,
	}}
}

func (traceOps) FromSlice(xs []float64) Array {
	data := make([]float64, len(xs))
	copy(data, xs)
	return traceConst(data, false)
}

func (traceOps) Scalar(c float64) Array {
	return traceConst([]float64{c}, true)
}

func (traceOps) Ones(n int) Array {
	return traceConst(constSlice(1, n), false)
}

func (traceOps) At(x Array, i int) Array {
	n := asTrace(x)
	if i < 0 || i >= n.length {
		panic(fmt.Sprintf("backend: index %d out of range for length %d", i, n.length))
	}
	return &traceArray{n: &traceNode{op: opAt, args: []*traceNode{n}, length: 1, scalar: true, lo: i}}
}

func (traceOps) Slice(x Array, lo, hi int) Array {
	n := asTrace(x)
	if lo < 0 || hi > n.length || lo > hi {
		panic(fmt.Sprintf("backend: slice [%d:%d] out of range for length %d", lo, hi, n.length))
	}
	return &traceArray{n: &traceNode{op: opSlice, args: []*traceNode{n}, length: hi - lo, lo: lo, hi: hi}}
}

func (traceOps) Concat(xs ...Array) Array {
	args := make([]*traceNode, len(xs))
	length := 0
	for i, x := range xs {
		args[i] = asTrace(x)
		length += args[i].length
	}
	return &traceArray{n: &traceNode{op: opConcat, args: args, length: length}}
}

func (o traceOps) Split2(x Array) (Array, Array) {
	n := asTrace(x)
	half := n.length / 2
	return o.Slice(x, 0, half), o.Slice(x, half, n.length)
}

func (traceOps) Roll(x Array, shift int) Array {
	n := asTrace(x)
	return &traceArray{n: &traceNode{op: opRoll, args: []*traceNode{n}, length: n.length, shift: shift}}
}

func (traceOps) Add(x, y Array) Array { return traceBinary(opAdd, x, y) }
func (traceOps) Sub(x, y Array) Array { return traceBinary(opSub, x, y) }
func (traceOps) Mul(x, y Array) Array { return traceBinary(opMul, x, y) }
func (traceOps) Div(x, y Array) Array { return traceBinary(opDiv, x, y) }

func traceBinary(op traceOp, x, y Array) Array {
	xn, yn := asTrace(x), asTrace(y)
	length := xn.length
	switch {
	case xn.length == yn.length:
	case xn.length == 1:
		length = yn.length
	case yn.length == 1:
	default:
		panic(fmt.Sprintf("backend: length mismatch %d vs %d", xn.length, yn.length))
	}
	return &traceArray{n: &traceNode{
		op:     op,
		args:   []*traceNode{xn, yn},
		length: length,
		scalar: xn.scalar && yn.scalar,
	}}
}

func (traceOps) Neg(x Array) Array { return traceUnary(opNeg, x, 0) }

func (traceOps) Scale(c float64, x Array) Array { return traceUnary(opScale, x, c) }
func (traceOps) Shift(c float64, x Array) Array { return traceUnary(opShift, x, c) }
func (traceOps) Pow(x Array, p float64) Array   { return traceUnary(opPow, x, p) }
func (traceOps) Exp(x Array) Array              { return traceUnary(opExp, x, 0) }
func (traceOps) Sin(x Array) Array              { return traceUnary(opSin, x, 0) }
func (traceOps) Cos(x Array) Array              { return traceUnary(opCos, x, 0) }
func (traceOps) Tanh(x Array) Array             { return traceUnary(opTanh, x, 0) }

func traceUnary(op traceOp, x Array, c float64) Array {
	n := asTrace(x)
	return &traceArray{n: &traceNode{
		op:     op,
		args:   []*traceNode{n},
		length: n.length,
		scalar: n.scalar,
		c:      c,
	}}
}

func (traceOps) Sum(x Array) Array {
	return &traceArray{n: &traceNode{op: opSum, args: []*traceNode{asTrace(x)}, length: 1, scalar: true}}
}

func (traceOps) Dot(x, y Array) Array {
	return &traceArray{n: &traceNode{op: opDot, args: []*traceNode{asTrace(x), asTrace(y)}, length: 1, scalar: true}}
}

func (traceOps) Norm(x Array) Array {
	return &traceArray{n: &traceNode{op: opNorm, args: []*traceNode{asTrace(x)}, length: 1, scalar: true}}
}

func (traceOps) MatVec(w Array, rows, cols int, x Array) Array {
	wn, xn := asTrace(w), asTrace(x)
	if wn.length != rows*cols {
		panic(fmt.Sprintf("backend: matrix storage %d does not fit %dx%d", wn.length, rows, cols))
	}
	if xn.length != cols {
		panic(fmt.Sprintf("backend: length mismatch %d vs %d", xn.length, cols))
	}
	return &traceArray{n: &traceNode{
		op:     opMatVec,
		args:   []*traceNode{wn, xn},
		length: rows,
		rows:   rows,
		cols:   cols,
	}}
}

// traceRand draws eagerly and records the draw as a constant node, so a
// recorded graph replays with stable sample values.
type traceRand struct{}

func (traceRand) Sampler(seed uint64) Sampler {
	return &traceSampler{rng: rand.New(rand.NewSource(seed))}
}

type traceSampler struct {
	rng *rand.Rand
}

func (s *traceSampler) StandardNormal(n int) Array {
	return s.Normal(0, 1, n)
}

func (s *traceSampler) Normal(mu, sigma float64, n int) Array {
	data := make([]float64, n)
	for i := range data {
		data[i] = mu + sigma*s.rng.NormFloat64()
	}
	return traceConst(data, false)
}
