package vectorfield

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// Lorenz63 is the three-dimensional atmospheric convection model.
// Arguments: a, b, c.
func Lorenz63(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		a, b, c := args[0], args[1], args[2]
		u0, u1, u2 := np.At(u, 0), np.At(u, 1), np.At(u, 2)
		return np.Concat(
			np.Mul(a, np.Sub(u1, u0)),
			np.Sub(np.Mul(u0, np.Sub(b, u2)), u1),
			np.Sub(np.Mul(u0, u1), np.Mul(c, u2)),
		)
	}
}

// Lorenz96 is the cyclic atmospheric dynamics model in any dimension.
// Arguments: forcing.
func Lorenz96(r *backend.Registry) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		forcing := args[0]
		a := np.Roll(y, -1)
		b := np.Roll(y, 2)
		c := np.Roll(y, 1)
		return np.Add(np.Sub(np.Mul(np.Sub(a, b), c), y), forcing)
	}
}

// Roessler is the three-dimensional continuous-chaos model.
// Arguments: a, b, c.
func Roessler(r *backend.Registry) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		a, b, c := args[0], args[1], args[2]
		y0, y1, y2 := np.At(y, 0), np.At(y, 1), np.At(y, 2)
		return np.Concat(
			np.Neg(np.Add(y1, y2)),
			np.Add(y0, np.Mul(a, y1)),
			np.Add(b, np.Mul(y2, np.Sub(y0, c))),
		)
	}
}
