package vectorfield

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// VanDerPol is the nonlinearly damped oscillator in its second-order
// form: ddu = mu * ((1 - u^2) du - u). Arguments: the stiffness
// constant mu. Both halves may be scalar.
func VanDerPol(r *backend.Registry) ode.VectorField2 {
	return func(u, du backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		mu := args[0]
		damped := np.Mul(np.Shift(1, np.Neg(np.Mul(u, u))), du)
		return np.Mul(mu, np.Sub(damped, u))
	}
}

// FitzHughNagumo is the two-dimensional neuron excitation model.
// Arguments: a, b, c.
func FitzHughNagumo(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		a, b, c := args[0], args[1], args[2]
		u0, u1 := np.At(u, 0), np.At(u, 1)
		cubic := np.Scale(1.0/3.0, np.Mul(u0, np.Mul(u0, u0)))
		return np.Concat(
			np.Mul(c, np.Add(np.Sub(u0, cubic), u1)),
			np.Neg(np.Div(np.Sub(np.Sub(u0, a), np.Mul(b, u1)), c)),
		)
	}
}

// Goodwin is the oscillatory protein-expression model in any dimension.
// Arguments: r, a1, a2, alpha, k (a vector of length dim-1). The
// exponent r is read as a structural constant.
func Goodwin(reg *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := reg.MustOps()
		exponent := args[0].Value()
		a1, a2, alpha, k := args[1], args[2], args[3], args[4]

		last := np.At(u, u.Len()-1)
		inhibition := np.Div(a1, np.Add(a2, np.Pow(last, exponent)))
		parts := make([]backend.Array, 0, u.Len())
		parts = append(parts, np.Sub(inhibition, np.Mul(alpha, np.At(u, 0))))
		for i := 1; i < u.Len(); i++ {
			production := np.Mul(np.At(k, i-1), np.At(u, i-1))
			parts = append(parts, np.Sub(production, np.Mul(alpha, np.At(u, i))))
		}
		return np.Concat(parts...)
	}
}
