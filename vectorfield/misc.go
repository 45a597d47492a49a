package vectorfield

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// LotkaVolterra is the two-species predator-prey dynamics.
// Arguments: a, b, c, d.
func LotkaVolterra(r *backend.Registry) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		a, b, c, d := args[0], args[1], args[2], args[3]
		y0, y1 := np.At(y, 0), np.At(y, 1)
		interaction := np.Mul(y0, y1)
		return np.Concat(
			np.Sub(np.Mul(a, y0), np.Mul(b, interaction)),
			np.Add(np.Neg(np.Mul(c, y1)), np.Mul(d, interaction)),
		)
	}
}

// Logistic is the scalar population-growth dynamics with carrying
// capacity. Arguments: p0, p1.
func Logistic(r *backend.Registry) ode.VectorField {
	return func(u backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		p0, p1 := args[0], args[1]
		return np.Mul(p0, np.Mul(u, np.Shift(1, np.Neg(np.Mul(p1, u)))))
	}
}

// AffineIndependent treats every dimension independently:
// f(y) = a*y + b elementwise. Arguments: a, b.
func AffineIndependent(r *backend.Registry) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		a, b := args[0], args[1]
		return np.Add(np.Mul(a, y), b)
	}
}

// AffineDependent couples the dimensions through a matrix:
// f(y) = A*y + b. Arguments: A (row-major, flattened) and b; the matrix
// is square with side len(b).
func AffineDependent(r *backend.Registry) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		a, b := args[0], args[1]
		n := b.Len()
		return np.Add(np.MatVec(a, n, n, y), b)
	}
}

// NeuralODEMLP is a multi-layer perceptron vector field with tanh
// activations, following the implicit-layers tutorial: the network
// input is the state concatenated with time, so the field is
// non-autonomous. Arguments: alternating weight and bias arrays, one
// pair per layer; weights for an m->n layer are stored row-major as
// n x m.
func NeuralODEMLP(r *backend.Registry, layerSizes []int) ode.TimeVectorField {
	return func(t float64, y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		x := np.Concat(y, np.Scalar(t))
		for l := 0; l < len(layerSizes)-1; l++ {
			m, n := layerSizes[l], layerSizes[l+1]
			w, b := args[2*l], args[2*l+1]
			x = np.Add(np.MatVec(w, n, m, x), b)
			if l < len(layerSizes)-2 {
				x = np.Tanh(x)
			}
		}
		return x
	}
}
