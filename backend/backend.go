package backend

import (
	"errors"
	"fmt"
	"strings"
)

// Engine identifies a supported array engine.
type Engine string

const (
	// EngineDense evaluates array operations eagerly on float64 slices.
	EngineDense Engine = "dense"
	// EngineTrace records array operations into an expression graph and
	// evaluates them on demand.
	EngineTrace Engine = "trace"
)

// Domain errors for engine selection and access.
var (
	// ErrAlreadySelected indicates a second Select without going through
	// ChangeTo. Accidental engine switches silently alter numeric results,
	// so they are rejected.
	ErrAlreadySelected = errors.New("backend: engine already selected, use ChangeTo to revise")

	// ErrNotSelected indicates a read access or a ChangeTo before any
	// engine was selected.
	ErrNotSelected = errors.New("backend: no engine selected")

	// ErrUnknownEngine indicates an engine name outside the supported set.
	ErrUnknownEngine = errors.New("backend: unknown engine")
)

// ParseEngine resolves a case-insensitive engine name.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(name)) {
	case EngineDense:
		return EngineDense, nil
	case EngineTrace:
		return EngineTrace, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Array is an opaque handle to an engine-owned vector or scalar.
// Arrays from different engines do not mix.
type Array interface {
	// Len reports the number of elements. Scalars have length 1.
	Len() int
	// IsScalar reports whether the array is 0-dimensional.
	IsScalar() bool
	// Float64s materializes the array into a fresh slice. On the trace
	// engine this forces evaluation of the recorded expression.
	Float64s() []float64
	// Value materializes a single-element array. It panics on arrays
	// with more than one element.
	Value() float64
}

// Ops is the array-operation surface of an engine. Binary operations
// broadcast single-element operands; mismatched vector lengths panic with
// the engine's own shape error.
type Ops interface {
	// Construction.
	FromSlice(xs []float64) Array
	Scalar(c float64) Array
	Ones(n int) Array

	// Indexing and shape.
	At(x Array, i int) Array
	Slice(x Array, lo, hi int) Array
	// Concat flattens its operands into one vector, so concatenating
	// scalars behaves like stacking.
	Concat(xs ...Array) Array
	// Split2 splits x into two halves at Len()/2.
	Split2(x Array) (Array, Array)
	Roll(x Array, shift int) Array

	// Elementwise arithmetic.
	Add(x, y Array) Array
	Sub(x, y Array) Array
	Mul(x, y Array) Array
	Div(x, y Array) Array
	Neg(x Array) Array
	Scale(c float64, x Array) Array
	Shift(c float64, x Array) Array
	Pow(x Array, p float64) Array
	Exp(x Array) Array
	Sin(x Array) Array
	Cos(x Array) Array
	Tanh(x Array) Array

	// Reductions and linear algebra.
	Sum(x Array) Array
	Dot(x, y Array) Array
	Norm(x Array) Array
	// MatVec multiplies a row-major rows-by-cols matrix, stored flat in
	// w, with a vector of length cols.
	MatVec(w Array, rows, cols int, x Array) Array
}

// Rand is the random-sampling surface of an engine.
type Rand interface {
	// Sampler returns a deterministic sampler seeded with seed.
	Sampler(seed uint64) Sampler
}

// Sampler draws arrays from fixed distributions. Draws advance the
// sampler's internal source, so successive calls return fresh samples.
type Sampler interface {
	StandardNormal(n int) Array
	Normal(mu, sigma float64, n int) Array
}
