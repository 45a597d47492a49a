package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/vectorfield"
)

// SIR constructs the susceptible-infected-removed model without vital
// dynamics. Parameters: beta, gamma. The population count bound as the
// third vector-field argument is taken from the susceptible compartment
// of the initial state.
func SIR(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{998.0, 1.0, 1.0})
	params := floatsOr(s.Parameters, []float64{0.3, 0.1})

	return ode.Problem{
		VectorField:   vectorfield.SIR(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 200}),
		Args:          scalars(np, params[0], params[1], u0[0]),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// SEIR constructs the SIR variant with an exposed compartment.
// Parameters: alpha, beta, gamma.
func SEIR(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{998.0, 1.0, 1.0, 1.0})
	params := floatsOr(s.Parameters, []float64{0.3, 0.3, 0.1})

	return ode.Problem{
		VectorField:   vectorfield.SEIR(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 200}),
		Args:          scalars(np, params[0], params[1], params[2], u0[0]),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// SIRD constructs the SIR variant that separates recovered from
// deceased. Parameters: beta, gamma, eta.
func SIRD(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{998.0, 1.0, 1.0, 0.0})
	params := floatsOr(s.Parameters, []float64{0.3, 0.1, 0.005})

	return ode.Problem{
		VectorField:   vectorfield.SIRD(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 200}),
		Args:          scalars(np, params[0], params[1], params[2], u0[0]),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}
