package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/vectorfield"
)

// LotkaVolterra constructs the predator-prey model.
// Parameters: a, b, c, d.
func LotkaVolterra(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{20.0, 20.0})
	params := floatsOr(s.Parameters, []float64{0.5, 0.05, 0.5, 0.05})

	return ode.Problem{
		VectorField:   vectorfield.LotkaVolterra(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 20}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, PeriodicSolution: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// Logistic constructs the scalar growth model with carrying capacity.
// Parameters: p0, p1.
func Logistic(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{0.1})
	params := floatsOr(s.Parameters, []float64{1.0, 1.0})

	return ode.Problem{
		VectorField:   vectorfield.Logistic(r),
		InitialValues: initialArray(np, u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 2.5}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// AffineIndependent constructs the decoupled affine problem
// f(y) = a*y + b. Parameters: a, b. Scalar by default; a longer
// initial state makes it multidimensional.
func AffineIndependent(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0})
	params := floatsOr(s.Parameters, []float64{1.0, 0.0})

	return ode.Problem{
		VectorField:   vectorfield.AffineIndependent(r),
		InitialValues: initialArray(np, u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}

// AffineDependent constructs the coupled affine problem f(y) = A*y + b.
// Parameters: the n*n entries of A in row-major order followed by the n
// entries of b, where n is the state dimension.
func AffineDependent(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 1.0})
	n := len(u0)
	params := floatsOr(s.Parameters, affineDependentDefaults(n))

	return ode.Problem{
		VectorField:   vectorfield.AffineDependent(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1}),
		Args: []backend.Array{
			np.FromSlice(params[:n*n]),
			np.FromSlice(params[n*n:]),
		},
		Meta: ode.Meta{Autonomous: true, Order: 1, Dimension: n},
	}, nil
}

// affineDependentDefaults is the identity matrix with a zero offset.
func affineDependentDefaults(n int) []float64 {
	params := make([]float64, n*n+n)
	for i := 0; i < n; i++ {
		params[i*n+i] = 1
	}
	return params
}
