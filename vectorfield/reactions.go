package vectorfield

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// HIRES is the eight-dimensional "high irradiance response" problem
// from plant physiology. The rate constants are part of the problem
// statement, so the field takes no arguments.
func HIRES(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, _ ...backend.Array) backend.Array {
		np := r.MustOps()
		u0, u1, u2 := np.At(u, 0), np.At(u, 1), np.At(u, 2)
		u3, u4, u5 := np.At(u, 3), np.At(u, 4), np.At(u, 5)
		u6, u7 := np.At(u, 6), np.At(u, 7)

		reaction := np.Scale(280, np.Mul(u5, u7))
		return np.Concat(
			np.Shift(0.0007, np.Add(np.Add(np.Scale(-1.71, u0), np.Scale(0.43, u1)), np.Scale(8.32, u2))),
			np.Sub(np.Scale(1.71, u0), np.Scale(8.75, u1)),
			np.Add(np.Add(np.Scale(-10.03, u2), np.Scale(0.43, u3)), np.Scale(0.035, u4)),
			np.Sub(np.Add(np.Scale(8.32, u1), np.Scale(1.71, u2)), np.Scale(1.12, u3)),
			np.Add(np.Add(np.Scale(-1.745, u4), np.Scale(0.43, u5)), np.Scale(0.43, u6)),
			np.Add(
				np.Sub(np.Add(np.Scale(0.69, u3), np.Scale(1.71, u4)), np.Add(reaction, np.Scale(0.43, u5))),
				np.Scale(0.69, u6),
			),
			np.Sub(reaction, np.Scale(1.81, u6)),
			np.Sub(np.Scale(1.81, u6), reaction),
		)
	}
}

// ROBER is the three-species autocatalytic reaction kinetics.
// Arguments: k1, k2, k3.
func ROBER(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		k1, k2, k3 := args[0], args[1], args[2]
		u0, u1, u2 := np.At(u, 0), np.At(u, 1), np.At(u, 2)
		slow := np.Mul(k1, u0)
		quadratic := np.Mul(k2, np.Mul(u1, u1))
		back := np.Mul(k3, np.Mul(u1, u2))
		return np.Concat(
			np.Add(np.Neg(slow), back),
			np.Sub(np.Sub(slow, quadratic), back),
			quadratic,
		)
	}
}

// Oregonator is the scaled mass-action model of the
// Belousov-Zhabotinsky reaction. Arguments: s, q, w.
func Oregonator(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		s, q, w := args[0], args[1], args[2]
		u0, u1, u2 := np.At(u, 0), np.At(u, 1), np.At(u, 2)
		cross := np.Mul(u0, u1)
		return np.Concat(
			np.Mul(s, np.Sub(np.Add(np.Sub(u1, cross), u0), np.Mul(q, np.Mul(u0, u0)))),
			np.Div(np.Sub(u2, np.Add(u1, cross)), s),
			np.Mul(w, np.Sub(u0, u2)),
		)
	}
}

// NonlinearChemicalReaction is the two-step reaction chain with a
// quadratic second step. Arguments: k1, k2.
func NonlinearChemicalReaction(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		k1, k2 := args[0], args[1]
		first := np.Mul(k1, np.At(u, 0))
		second := np.Mul(k2, np.Mul(np.At(u, 1), np.At(u, 1)))
		return np.Concat(
			np.Neg(first),
			np.Sub(first, second),
			second,
		)
	}
}
