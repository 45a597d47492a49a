package bvps

import (
	"math"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/transform"
	"github.com/san-kum/odezoo/vectorfield"
)

// Condition maps the state at one endpoint to a residual.
type Condition func(u backend.Array) backend.Array

// BoundaryResidual maps the states at both endpoints to a residual.
type BoundaryResidual func(uLeft, uRight backend.Array) backend.Array

// TwoPointProblem is a second-order equation with separated boundary
// conditions, one per endpoint.
type TwoPointProblem struct {
	VectorField ode.VectorField2
	Left        Condition
	Right       Condition
	TimeSpan    ode.TimeSpan
	Args        []backend.Array
	Meta        ode.Meta
}

// FirstOrderField returns the problem dynamics over the doubled state
// (u, u'), for solvers that only accept first-order systems.
func (p TwoPointProblem) FirstOrderField(r *backend.Registry) ode.VectorField {
	return transform.SecondToFirstOrderVectorField(r, p.VectorField)
}

// PeriodicProblem is a first-order equation whose boundary condition
// couples both endpoints.
type PeriodicProblem struct {
	TimeField ode.TimeVectorField
	Boundary  BoundaryResidual
	TimeSpan  ode.TimeSpan
	Args      []backend.Array
	Meta      ode.Meta
}

// identity is the homogeneous Dirichlet condition u = 0.
func identity(u backend.Array) backend.Array { return u }

// Bratu constructs the combustion model u'' = -k e^u with zero boundary
// values at both ends. Parameters: k.
func Bratu(r *backend.Registry, opts ...ode.Option) (TwoPointProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return TwoPointProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	params := floatsOr(s.Parameters, []float64{1.0})

	return TwoPointProblem{
		VectorField: vectorfield.BratuSecondOrder(r),
		Left:        identity,
		Right:       identity,
		TimeSpan:    spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1}),
		Args:        scalars(np, params...),
		Meta:        ode.Meta{Autonomous: true, Order: 2, Dimension: 1},
	}, nil
}

// Pendulum constructs the gravitational pendulum u'' = -p sin(u) pinned
// to zero at both ends. Parameters: p.
func Pendulum(r *backend.Registry, opts ...ode.Option) (TwoPointProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return TwoPointProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	params := floatsOr(s.Parameters, []float64{9.81})

	return TwoPointProblem{
		VectorField: vectorfield.PendulumSecondOrder(r),
		Left:        identity,
		Right:       identity,
		TimeSpan:    spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: math.Pi / 2}),
		Args:        scalars(np, params...),
		Meta:        ode.Meta{Autonomous: true, Order: 2, Dimension: 1},
	}, nil
}

// Measles constructs the seasonally forced epidemic model over one
// season, with the periodicity condition u(t0) = u(t1).
// Parameters: mu, lambda, eta, beta0.
func Measles(r *backend.Registry, opts ...ode.Option) (PeriodicProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return PeriodicProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	params := floatsOr(s.Parameters, []float64{0.02, 0.0279, 0.01, 1575.0})

	return PeriodicProblem{
		TimeField: vectorfield.Measles(r),
		Boundary: func(uLeft, uRight backend.Array) backend.Array {
			return r.MustOps().Sub(uLeft, uRight)
		},
		TimeSpan: spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1}),
		Args:     scalars(np, params...),
		Meta:     ode.Meta{Autonomous: false, PeriodicSolution: true, Order: 1, Dimension: 3},
	}, nil
}

func floatsOr(override, def []float64) []float64 {
	if override != nil {
		return override
	}
	return def
}

func spanOr(override *ode.TimeSpan, def ode.TimeSpan) ode.TimeSpan {
	if override != nil {
		return *override
	}
	return def
}

func scalars(np backend.Ops, vals ...float64) []backend.Array {
	args := make([]backend.Array, len(vals))
	for i, v := range vals {
		args[i] = np.Scalar(v)
	}
	return args
}
