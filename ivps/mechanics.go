package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/transform"
	"github.com/san-kum/odezoo/vectorfield"
)

// Pleiades default initial condition: positions (x, y) and velocities
// (dx, dy) of the seven stars, from Hairer et al.
var (
	pleiadesU0 = []float64{
		3.0, 3.0, -1.0, -3.0, 2.0, -2.0, 2.0,
		3.0, -3.0, 2.0, 0.0, 0.0, -4.0, 4.0,
	}
	pleiadesDU0 = []float64{
		0.0, 0.0, 0.0, 0.0, 0.0, 1.75, -1.5,
		0.0, 0.0, 0.0, -1.25, 1.0, 0.0, 0.0,
	}
)

// Pleiades constructs the seven-star celestial mechanics problem in its
// original second-order form. The star masses are fixed by the problem,
// so there are no parameters.
func Pleiades(r *backend.Registry, opts ...ode.Option) (ode.SecondOrderProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.SecondOrderProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.Position, pleiadesU0)
	du0 := floatsOr(s.Velocity, pleiadesDU0)

	return ode.SecondOrderProblem{
		VectorField: vectorfield.PleiadesSecondOrder(r),
		Position:    np.FromSlice(u0),
		Velocity:    np.FromSlice(du0),
		TimeSpan:    spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 3}),
		Meta:        ode.Meta{Autonomous: true, Order: 2, Dimension: len(u0)},
	}, nil
}

// PleiadesFirstOrder constructs Pleiades over the 28-dimensional
// doubled state.
func PleiadesFirstOrder(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	return transform.SecondToFirstOrder(Pleiades)(r, opts...)
}

// HenonHeiles constructs the galactic-motion benchmark in its original
// second-order form. Parameters: p.
func HenonHeiles(r *backend.Registry, opts ...ode.Option) (ode.SecondOrderProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.SecondOrderProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.Position, []float64{0.5, 0.0})
	du0 := floatsOr(s.Velocity, []float64{0.0, 0.1})
	params := floatsOr(s.Parameters, []float64{1.0})

	return ode.SecondOrderProblem{
		VectorField: vectorfield.HenonHeilesSecondOrder(r),
		Position:    np.FromSlice(u0),
		Velocity:    np.FromSlice(du0),
		TimeSpan:    spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 100}),
		Args:        scalars(np, params...),
		Meta:        ode.Meta{Autonomous: true, Order: 2, Dimension: len(u0)},
	}, nil
}

// HenonHeilesFirstOrder constructs Henon-Heiles over the doubled state.
func HenonHeilesFirstOrder(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	return transform.SecondToFirstOrder(HenonHeiles)(r, opts...)
}

// Restricted three-body defaults: a periodic orbit of the Arenstorf
// family.
var (
	threeBodyU0   = []float64{0.994, 0.0}
	threeBodyDU0  = []float64{0.0, -2.00158510637908252240537862224}
	threeBodyTmax = 17.0652165601579625588917206249
)

// ThreeBodyRestricted constructs the planar restricted three-body
// problem as a second-order equation. Parameters: the standardized moon
// mass.
func ThreeBodyRestricted(r *backend.Registry, opts ...ode.Option) (ode.SecondOrderProblem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.SecondOrderProblem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.Position, threeBodyU0)
	du0 := floatsOr(s.Velocity, threeBodyDU0)
	params := floatsOr(s.Parameters, []float64{0.012277471})

	return ode.SecondOrderProblem{
		VectorField: vectorfield.ThreeBodyRestricted(r),
		Position:    np.FromSlice(u0),
		Velocity:    np.FromSlice(du0),
		TimeSpan:    spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: threeBodyTmax}),
		Args:        scalars(np, params...),
		Meta:        ode.Meta{Autonomous: true, PeriodicSolution: true, Order: 2, Dimension: len(u0)},
	}, nil
}

// ThreeBodyRestrictedFirstOrder constructs the restricted three-body
// problem over the doubled state.
func ThreeBodyRestrictedFirstOrder(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	return transform.SecondToFirstOrder(ThreeBodyRestricted)(r, opts...)
}

// RigidBody constructs Euler's rotation equations without external
// forces. Parameters: p1, p2, p3.
func RigidBody(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{1.0, 0.0, 0.9})
	params := floatsOr(s.Parameters, []float64{-2.0, 1.25, -0.5})

	return ode.Problem{
		VectorField:   vectorfield.RigidBody(r),
		InitialValues: np.FromSlice(u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 20}),
		Args:          scalars(np, params...),
		Meta:          ode.Meta{Autonomous: true, Order: 1, Dimension: len(u0)},
	}, nil
}
