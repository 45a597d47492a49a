package vectorfield

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// Bratu is the exponential reaction-diffusion dynamics u'' = -k e^u.
// Arguments: k.
func Bratu(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		k := args[0]
		return np.Neg(np.Mul(k, np.Exp(u)))
	}
}

// BratuSecondOrder is Bratu in the (u, u') convention with an unused
// derivative argument.
func BratuSecondOrder(r *backend.Registry) ode.VectorField2 {
	f := Bratu(r)
	return func(u, _ backend.Array, args ...backend.Array) backend.Array {
		return f(u, args...)
	}
}

// Pendulum is the gravitational pendulum dynamics u'' = -p sin(u).
// Arguments: p.
func Pendulum(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		p := args[0]
		return np.Neg(np.Mul(p, np.Sin(u)))
	}
}

// PendulumSecondOrder is Pendulum in the (u, u') convention with an
// unused derivative argument.
func PendulumSecondOrder(r *backend.Registry) ode.VectorField2 {
	f := Pendulum(r)
	return func(u, _ backend.Array, args ...backend.Array) backend.Array {
		return f(u, args...)
	}
}
