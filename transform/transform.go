package transform

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

// SecondToFirstOrderVectorField wraps a second-order autonomous vector
// field into its first-order form over the doubled state. The returned
// field splits y into equal halves (u, du), evaluates ddu = f(u, du),
// and returns the concatenation (du, ddu). Because Concat flattens,
// scalar halves stack into a length-2 vector.
//
// The registry is captured by reference and its engine resolved at call
// time, so the wrapped field follows any later engine revision.
func SecondToFirstOrderVectorField(r *backend.Registry, f ode.VectorField2) ode.VectorField {
	return func(y backend.Array, args ...backend.Array) backend.Array {
		np := r.MustOps()
		u, du := np.Split2(y)
		ddu := f(u, du, args...)
		return np.Concat(du, ddu)
	}
}

// SecondToFirstOrder lifts a second-order factory into a first-order
// one. The resulting factory keeps the wrapped factory's option surface,
// except that ode.WithInitialValues now carries the combined
// (position, velocity) vector: it is split in half and forwarded as the
// initial-condition pair, so callers speak the first-order shape while
// the wrapped factory still speaks the second-order one.
//
// The returned record replaces the vector field with its transformed
// form and the initial values with the concatenated pair; time span and
// bound parameters pass through unchanged.
func SecondToFirstOrder(factory ode.SecondOrderFactory) ode.Factory {
	return func(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
		s := ode.ApplySettings(opts...)
		if s.InitialValues != nil {
			half := len(s.InitialValues) / 2
			opts = append(opts, ode.WithInitialState(s.InitialValues[:half], s.InitialValues[half:]))
		}

		p2, err := factory(r, opts...)
		if err != nil {
			return ode.Problem{}, err
		}
		np, err := r.Ops()
		if err != nil {
			return ode.Problem{}, err
		}

		meta := p2.Meta
		meta.Order = 1
		meta.Dimension = 2 * p2.Meta.Dimension

		return ode.Problem{
			VectorField:   SecondToFirstOrderVectorField(r, p2.VectorField),
			InitialValues: np.Concat(p2.Position, p2.Velocity),
			TimeSpan:      p2.TimeSpan,
			Args:          p2.Args,
			Meta:          meta,
		}, nil
	}
}
