package vectorfield

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// Pleiades is the planar gravitational interaction of seven stars, in
// its original second-order form over the 14-dimensional state
// (x1..x7, y1..y7). Body j has mass j. No arguments.
func Pleiades(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, _ ...backend.Array) backend.Array {
		np := r.MustOps()
		x := np.Slice(u, 0, 7)
		y := np.Slice(u, 7, 14)

		ddx := make([]backend.Array, 7)
		ddy := make([]backend.Array, 7)
		for i := 0; i < 7; i++ {
			ax, ay := np.Scalar(0), np.Scalar(0)
			xi, yi := np.At(x, i), np.At(y, i)
			for j := 0; j < 7; j++ {
				if j == i {
					continue
				}
				dx := np.Sub(np.At(x, j), xi)
				dy := np.Sub(np.At(y, j), yi)
				r3 := np.Pow(np.Add(np.Mul(dx, dx), np.Mul(dy, dy)), 1.5)
				mass := float64(j + 1)
				ax = np.Add(ax, np.Div(np.Scale(mass, dx), r3))
				ay = np.Add(ay, np.Div(np.Scale(mass, dy), r3))
			}
			ddx[i], ddy[i] = ax, ay
		}
		return np.Concat(np.Concat(ddx...), np.Concat(ddy...))
	}
}

// PleiadesSecondOrder is Pleiades in the (u, du) convention; the
// velocity argument is unused because the dynamics depend on positions
// only.
func PleiadesSecondOrder(r *backend.Registry) ode.VectorField2 {
	f := Pleiades(r)
	return func(u, _ backend.Array, args ...backend.Array) backend.Array {
		return f(u, args...)
	}
}

// HenonHeiles is the planar motion of a star around a galactic center.
// Arguments: p (the nonlinear coupling). Position-only dynamics.
func HenonHeiles(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		p := args[0]
		u0, u1 := np.At(u, 0), np.At(u, 1)
		return np.Concat(
			np.Sub(np.Neg(u0), np.Scale(2, np.Mul(p, np.Mul(u0, u1)))),
			np.Sub(np.Neg(u1), np.Mul(p, np.Sub(np.Mul(u0, u0), np.Mul(u1, u1)))),
		)
	}
}

// HenonHeilesSecondOrder is HenonHeiles in the (u, du) convention with
// an unused velocity argument.
func HenonHeilesSecondOrder(r *backend.Registry) ode.VectorField2 {
	f := HenonHeiles(r)
	return func(u, _ backend.Array, args ...backend.Array) backend.Array {
		return f(u, args...)
	}
}

// ThreeBodyRestricted is the planar restricted three-body problem in
// rotating coordinates. Arguments: standardized moon mass.
func ThreeBodyRestricted(r *backend.Registry) ode.VectorField2 {
	return func(u, du backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		mu := args[0]
		mp := np.Shift(1, np.Neg(mu))
		u0, u1 := np.At(u, 0), np.At(u, 1)
		du0, du1 := np.At(du, 0), np.At(du, 1)

		d1 := np.Pow(np.Norm(np.Concat(np.Add(u0, mu), u1)), 3)
		d2 := np.Pow(np.Norm(np.Concat(np.Sub(u0, mp), u1)), 3)

		ddu0 := np.Sub(
			np.Add(u0, np.Scale(2, du1)),
			np.Add(
				np.Div(np.Mul(mp, np.Add(u0, mu)), d1),
				np.Div(np.Mul(mu, np.Sub(u0, mp)), d2),
			),
		)
		ddu1 := np.Sub(
			np.Sub(u1, np.Scale(2, du0)),
			np.Add(
				np.Div(np.Mul(mp, u1), d1),
				np.Div(np.Mul(mu, u1), d2),
			),
		)
		return np.Concat(ddu0, ddu1)
	}
}

// RigidBody is Euler's rotation equations for a rigid body without
// external forces. Arguments: p1, p2, p3.
func RigidBody(r *backend.Registry) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		p1, p2, p3 := args[0], args[1], args[2]
		y0, y1, y2 := np.At(y, 0), np.At(y, 1), np.At(y, 2)
		return np.Concat(
			np.Mul(p1, np.Mul(y1, y2)),
			np.Mul(p2, np.Mul(y0, y2)),
			np.Mul(p3, np.Mul(y0, y1)),
		)
	}
}
