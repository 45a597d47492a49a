package ivps

import (
	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
	"github.com/san-kum/odezoo/vectorfield"
)

// Neural ODE weight initialization.
const (
	neuralODESeed  = 1234
	neuralODEScale = 1.0
)

// neuralODELayers is the default multilayer perceptron architecture.
// The input width is the state dimension plus one for the time channel.
var neuralODELayers = []int{2, 20, 1}

// NeuralODEMLP constructs a scalar problem whose dynamics are a
// randomly initialized multilayer perceptron over the state and time.
// The flattened layer weights and biases are bound as vector-field
// arguments, so a parameter-estimation loop can swap them out between
// calls. Parameters, if given, replace the sampled weights and must
// match the flattened layout.
func NeuralODEMLP(r *backend.Registry, opts ...ode.Option) (ode.Problem, error) {
	np, err := r.Ops()
	if err != nil {
		return ode.Problem{}, err
	}
	rnd, err := r.Rand()
	if err != nil {
		return ode.Problem{}, err
	}
	s := ode.ApplySettings(opts...)
	u0 := floatsOr(s.InitialValues, []float64{0.0})

	var args []backend.Array
	if s.Parameters != nil {
		args = unflattenMLP(np, s.Parameters, neuralODELayers)
	} else {
		sampler := rnd.Sampler(neuralODESeed)
		for l := 0; l < len(neuralODELayers)-1; l++ {
			m, n := neuralODELayers[l], neuralODELayers[l+1]
			args = append(args,
				sampler.Normal(0, neuralODEScale, n*m),
				sampler.Normal(0, neuralODEScale, n),
			)
		}
	}

	return ode.Problem{
		TimeField:     vectorfield.NeuralODEMLP(r, neuralODELayers),
		InitialValues: initialArray(np, u0),
		TimeSpan:      spanOr(s.TimeSpan, ode.TimeSpan{T0: 0, T1: 1}),
		Args:          args,
		Meta:          ode.Meta{Autonomous: false, Order: 1, Dimension: len(u0)},
	}, nil
}

// unflattenMLP slices a flat parameter vector into the per-layer weight
// matrices and bias vectors.
func unflattenMLP(np backend.Ops, flat []float64, layers []int) []backend.Array {
	var args []backend.Array
	off := 0
	for l := 0; l < len(layers)-1; l++ {
		m, n := layers[l], layers[l+1]
		args = append(args,
			np.FromSlice(flat[off:off+n*m]),
			np.FromSlice(flat[off+n*m:off+n*m+n]),
		)
		off += n*m + n
	}
	return args
}
