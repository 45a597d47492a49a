package ode

// Settings are the caller overrides a factory consults. Options are
// plain data so wrappers (the order-reduction transform in particular)
// can inspect and rewrite them before delegating.
type Settings struct {
	// InitialValues overrides a first-order problem's initial state, or
	// supplies a combined state to a transformed second-order factory.
	InitialValues []float64
	// Position and Velocity override a second-order problem's initial
	// condition pair.
	Position []float64
	Velocity []float64
	// TimeSpan overrides the integration interval.
	TimeSpan *TimeSpan
	// Parameters overrides the vector-field parameters, in the order the
	// factory documents.
	Parameters []float64
}

// Option overrides one factory default.
type Option func(*Settings)

// ApplySettings folds opts into a Settings value. Unset fields stay nil,
// which factories read as "use the default".
func ApplySettings(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithInitialValues overrides the initial state of a first-order
// problem. On a factory produced by the order-reduction transform it
// carries the combined (position, velocity) vector.
func WithInitialValues(vals ...float64) Option {
	return func(s *Settings) { s.InitialValues = vals }
}

// WithInitialState overrides the (position, velocity) pair of a
// second-order problem.
func WithInitialState(u0, du0 []float64) Option {
	return func(s *Settings) {
		s.Position = u0
		s.Velocity = du0
	}
}

// WithTimeSpan overrides the integration interval.
func WithTimeSpan(t0, t1 float64) Option {
	return func(s *Settings) { s.TimeSpan = &TimeSpan{T0: t0, T1: t1} }
}

// WithParameters overrides the vector-field parameters.
func WithParameters(ps ...float64) Option {
	return func(s *Settings) { s.Parameters = ps }
}
