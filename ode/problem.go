package ode

import "github.com/san-kum/odezoo/backend"

// TimeSpan is the integration interval (T0, T1). T0 < T1 is expected but
// not enforced here.
type TimeSpan struct {
	T0 float64
	T1 float64
}

// VectorField is a first-order autonomous right-hand side: dy = f(y, args).
type VectorField func(y backend.Array, args ...backend.Array) backend.Array

// TimeVectorField is a first-order right-hand side with explicit time
// dependence: dy = f(t, y, args).
type TimeVectorField func(t float64, y backend.Array, args ...backend.Array) backend.Array

// VectorField2 is a second-order autonomous right-hand side:
// ddu = f(u, du, args).
type VectorField2 func(u, du backend.Array, args ...backend.Array) backend.Array

// Meta carries problem classification: order, time dependence, solution
// periodicity and state dimension.
type Meta struct {
	Autonomous       bool
	PeriodicSolution bool
	Order            int
	Dimension        int
}

// Problem is a first-order benchmark instance. Exactly one of
// VectorField and TimeField is set, according to Meta.Autonomous.
type Problem struct {
	VectorField   VectorField
	TimeField     TimeVectorField
	InitialValues backend.Array
	TimeSpan      TimeSpan
	Args          []backend.Array
	Meta          Meta
}

// Evaluate applies the problem's vector field at time t and state y,
// supplying the time argument only for non-autonomous fields.
func (p Problem) Evaluate(t float64, y backend.Array) backend.Array {
	if p.TimeField != nil {
		return p.TimeField(t, y, p.Args...)
	}
	return p.VectorField(y, p.Args...)
}

// SecondOrderProblem is a benchmark instance over position and velocity.
type SecondOrderProblem struct {
	VectorField VectorField2
	Position    backend.Array
	Velocity    backend.Array
	TimeSpan    TimeSpan
	Args        []backend.Array
	Meta        Meta
}

// Evaluate applies the second-order vector field at position u and
// velocity du.
func (p SecondOrderProblem) Evaluate(u, du backend.Array) backend.Array {
	return p.VectorField(u, du, p.Args...)
}

// Factory builds a first-order problem against the registry's engine.
type Factory func(r *backend.Registry, opts ...Option) (Problem, error)

// SecondOrderFactory builds a second-order problem against the
// registry's engine.
type SecondOrderFactory func(r *backend.Registry, opts ...Option) (SecondOrderProblem, error)
