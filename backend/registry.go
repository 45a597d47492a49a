package backend

import "log"

// Registry resolves the zoo's array arithmetic to one concrete engine.
//
// A registry moves through two states: unselected, then selected. Select
// performs the one permitted transition; ChangeTo revises an existing
// selection. The Ops and Rand handles are always rebound together, never
// independently, so they are guaranteed to belong to the same engine.
type Registry struct {
	engine   Engine
	selected bool
	ops      Ops
	rnd      Rand
	warnf    func(format string, args ...any)
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithWarnf replaces the registry's warning sink. The default is
// log.Printf.
func WithWarnf(f func(format string, args ...any)) RegistryOption {
	return func(r *Registry) { r.warnf = f }
}

// NewRegistry returns a fresh, unselected registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{warnf: log.Printf}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Select binds the named engine. It is available exactly once per
// registry: a second call returns ErrAlreadySelected regardless of the
// name. Unknown names return ErrUnknownEngine and leave the registry
// unselected.
func (r *Registry) Select(name string) error {
	if r.selected {
		return ErrAlreadySelected
	}
	return r.bind(name)
}

// ChangeTo revises an existing selection. It returns ErrNotSelected when
// no engine has been selected yet; the first choice must go through
// Select. Revising to the engine that is already active emits a warning
// and still rebinds.
func (r *Registry) ChangeTo(name string) error {
	if !r.selected {
		return ErrNotSelected
	}
	if engine, err := ParseEngine(name); err == nil && engine == r.engine {
		r.warnf("backend: engine %q is already selected", engine)
	}
	return r.bind(name)
}

func (r *Registry) bind(name string) error {
	engine, err := ParseEngine(name)
	if err != nil {
		return err
	}
	ops, rnd := newEngine(engine)
	// Bound as a pair, so arrays and samples always share one engine.
	r.ops, r.rnd = ops, rnd
	r.engine = engine
	r.selected = true
	return nil
}

// newEngine is the factory keyed by the engine enum. Engines are
// constructed only here, when a selection is made.
func newEngine(engine Engine) (Ops, Rand) {
	switch engine {
	case EngineDense:
		return denseOps{}, denseRand{}
	case EngineTrace:
		return traceOps{}, traceRand{}
	}
	panic("backend: unreachable engine " + engine)
}

// Selected reports whether an engine has been bound.
func (r *Registry) Selected() bool { return r.selected }

// Current returns the active engine, if any.
func (r *Registry) Current() (Engine, bool) { return r.engine, r.selected }

// Ops returns the bound array operations. It fails with ErrNotSelected
// before the first Select; this is the guard that catches use-before-init
// across the whole catalog.
func (r *Registry) Ops() (Ops, error) {
	if !r.selected {
		return nil, ErrNotSelected
	}
	return r.ops, nil
}

// Rand returns the bound random operations, with the same precondition
// as Ops.
func (r *Registry) Rand() (Rand, error) {
	if !r.selected {
		return nil, ErrNotSelected
	}
	return r.rnd, nil
}

// MustOps is the accessor used inside vector-field closures, which
// resolve their engine at call time and have no error channel. It panics
// with ErrNotSelected when no engine is bound.
func (r *Registry) MustOps() Ops {
	ops, err := r.Ops()
	if err != nil {
		panic(err)
	}
	return ops
}

// MustRand is the panicking counterpart of Rand.
func (r *Registry) MustRand() Rand {
	rnd, err := r.Rand()
	if err != nil {
		panic(err)
	}
	return rnd
}
