package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/vectorfield"
)

// Lorenz63 constructs the chaotic atmospheric convection model.
// Parameters: a, b, c.
func Lorenz63(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{0.0, 1.0, 1.05})
	params := floatsOr(s.Parameters, []float64{10.0, 28.0, 8.0 / 3.0})

	return ode.Problem{
		VectorField:   vectorfield.Lorenz63(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 20}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

const (
	lorenz96Variables = 10
	lorenz96Forcing   = 8.0
	lorenz96Perturb   = 0.01
)

// Lorenz96 constructs the cyclic data-assimilation benchmark.
// Parameters: forcing. The default initial state is the constant
// equilibrium at the forcing value with the first coordinate perturbed,
// which drives the system into its chaotic regime.
func Lorenz96(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	params := floatsOr(s.Parameters, []float64{lorenz96Forcing})
	u0 := s.InitialValues
	if u0 == nil {
		u0 = lorenz96ChaoticU0(params[0], lorenz96Variables, lorenz96Perturb)
	}

	return ode.Problem{
		VectorField:   vectorfield.Lorenz96(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 30}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

func lorenz96ChaoticU0(forcing float64, numVariables int, perturb float64) []float64 {
	u0 := make([]float64, numVariables)
	for i := range u0 {
		u0[i] = forcing
	}
	u0[0] += perturb
	return u0
}

// Roessler constructs the continuous-chaos model. Parameters: a, b, c.
func Roessler(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 0.0, 0.0})
	params := floatsOr(s.Parameters, []float64{0.1, 0.1, 14.0})

	return ode.Problem{
		VectorField:   vectorfield.Roessler(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 100}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}
