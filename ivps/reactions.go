package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/vectorfield"
)

// HIRES constructs the stiff "high irradiance response" problem. The
// rate constants are part of the problem statement, so there are no
// parameters.
func HIRES(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0057})

	return ode.Problem{
		VectorField:   vectorfield.HIRES(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 321.8122}),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// ROBER constructs the stiff autocatalytic reaction benchmark.
// Parameters: k1, k2, k3.
func ROBER(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 0.0, 0.0})
	params := floatsOr(s.Parameters, []float64{0.04, 3e7, 1e4})

	return ode.Problem{
		VectorField:   vectorfield.ROBER(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1e5}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// Oregonator constructs the stiff Belousov-Zhabotinsky reaction model.
// Parameters: s, q, w.
func Oregonator(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 2.0, 3.0})
	params := floatsOr(s.Parameters, []float64{77.27, 8.375e-6, 0.161})

	return ode.Problem{
		VectorField:   vectorfield.Oregonator(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1e5}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, PeriodicSolution: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// NonlinearChemicalReaction constructs the two-step reaction chain with
// a quadratic second step. Parameters: k1, k2.
func NonlinearChemicalReaction(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 0.0, 0.0})
	params := floatsOr(s.Parameters, []float64{1.0, 1.0})

	return ode.Problem{
		VectorField:   vectorfield.NonlinearChemicalReaction(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}
