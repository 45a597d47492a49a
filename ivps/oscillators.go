package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/transform"
	"github.com/san-kum/odezoo/vectorfield"
)

// VanDerPol constructs the nonlinearly damped oscillator as a
// second-order equation over a scalar state. Parameters: the stiffness
// constant; values around 1 are nonstiff, values around 1e6 are very
// stiff.
func VanDerPol(r *backend.Registry, opts ...ode.Option) (ode.SecondOrderProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.SecondOrderProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.Position, []float64{2.0})
	du0 := floatsOr(s.Velocity, []float64{0.0})
	params := floatsOr(s.Parameters, []float64{1.0})

	return ode.SecondOrderProblem{
		VectorField: vectorfield.VanDerPol(r),
		Position:    initialArray(np, u0),
		Velocity:    initialArray(np, du0),
		TimeSpan:    spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 6.3}),
		Args:        scalars(np, params...),
		Meta:        ode.Meta{Autonomous: true, PeriodicSolution: true, Order: 2, Dimension: len(u0)},
	}, nil
}

// VanDerPolFirstOrder constructs the Van der Pol oscillator over the
// doubled state (u, du).
func VanDerPolFirstOrder(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	return transform.SecondToFirstOrder(VanDerPol)(r, opts...)
}

// FitzHughNagumo constructs the two-dimensional neuron excitation
// model. Parameters: a, b, c.
func FitzHughNagumo(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{-1.0, 1.0})
	params := floatsOr(s.Parameters, []float64{0.2, 0.2, 3.0})

	return ode.Problem{
		VectorField:   vectorfield.FitzHughNagumo(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 20}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// Goodwin constructs the oscillatory protein-expression model.
// Parameters: r, a1, a2, alpha, followed by the per-species production
// rates k (one fewer than the state dimension). Exponents r > 8 lead to
// oscillation.
func Goodwin(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{0.0, 0.0})
	params := floatsOr(s.Parameters, []float64{10.0, 1.0, 3.0, 0.5, 1.0})

	args := scalars(np, params[0], params[1], params[2], params[3])
	args = append(args, np.FromSlice(params[4:]))

	return ode.Problem{
		VectorField:   vectorfield.Goodwin(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 25}),
		Args:          args,
		Meta:          ode.Meta{Autonomous: true, PeriodicSolution: true, Order: 1, Dimension: len(u0)},
	}, nil
}
