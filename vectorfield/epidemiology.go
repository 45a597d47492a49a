package vectorfield

import (
	"math"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// SIR is the susceptible-infected-removed compartment model without
// vital dynamics. Arguments: beta, gamma, population.
func SIR(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		beta, gamma, population := args[0], args[1], args[2]
		s, i := np.At(u, 0), np.At(u, 1)
		infection := np.Div(np.Mul(beta, np.Mul(s, i)), population)
		recovery := np.Mul(gamma, i)
		return np.Concat(
			np.Neg(infection),
			np.Sub(infection, recovery),
			recovery,
		)
	}
}

// SEIR extends SIR with an exposed compartment.
// Arguments: alpha, beta, gamma, population.
func SEIR(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		alpha, beta, gamma, population := args[0], args[1], args[2], args[3]
		s, e, i := np.At(u, 0), np.At(u, 1), np.At(u, 2)
		exposure := np.Div(np.Mul(beta, np.Mul(s, i)), population)
		onset := np.Mul(alpha, e)
		recovery := np.Mul(gamma, i)
		return np.Concat(
			np.Neg(exposure),
			np.Sub(exposure, onset),
			np.Sub(onset, recovery),
			recovery,
		)
	}
}

// SIRD extends SIR with a deceased compartment.
// Arguments: beta, gamma, eta, population.
func SIRD(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		beta, gamma, eta, population := args[0], args[1], args[2], args[3]
		s, i := np.At(u, 0), np.At(u, 1)
		infection := np.Div(np.Mul(beta, np.Mul(s, i)), population)
		recovery := np.Mul(gamma, i)
		death := np.Mul(eta, i)
		return np.Concat(
			np.Neg(infection),
			np.Sub(infection, np.Add(recovery, death)),
			recovery,
			death,
		)
	}
}

// Measles is the seasonally forced epidemic model used as a periodic
// boundary value problem. Arguments: mu, lambda, eta, beta0.
func Measles(r *backend.Registry) ode.TimeVectorField {
	return func(t float64, u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		mu, lambda, eta, beta0 := args[0], args[1], args[2], args[3]
		season := 1 + math.Cos(2*math.Pi*t)
		b := np.Scale(season, beta0)
		incidence := np.Mul(b, np.Mul(np.At(u, 0), np.At(u, 2)))
		latency := np.Div(np.At(u, 1), lambda)
		infectious := np.Div(np.At(u, 2), eta)
		return np.Concat(
			np.Sub(mu, incidence),
			np.Sub(incidence, latency),
			np.Sub(latency, infectious),
		)
	}
}
