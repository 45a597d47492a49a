package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

func floatsOr(override, def []float64) []float64 {
	if override != nil {
		return override
	}
	return def
}

func spanOr(override *ode.TimeSpan, def ode.TimeSpan) ode.TimeSpan {
	if override != nil {
		return *override
	}
	return def
}

func scalars(np backend.Ops, vals ...float64) []backend.Array {
	args := make([]backend.Array, len(vals))
	for i, v := range vals {
		args[i] = np.Scalar(v)
	}
	return args
}

// initialArray builds an initial condition, collapsing a single value to
// a scalar so that scalar problems stay 0-dimensional.
func initialArray(np backend.Ops, vals []float64) backend.Array {
	if len(vals) == 1 {
		return np.Scalar(vals[0])
	}
	return np.FromSlice(vals)
}
