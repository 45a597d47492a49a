// Package catalog maps problem names to their constructors.
package catalog

import (
	"fmt"
	"sort"

	"github.com/san-kum/odezoo/ivps"
	"github.com/san-kum/odezoo/ode"
)

// Registry holds named problem constructors. Second-order problems are
// registered through their first-order form so every entry shares the
// ode.Factory signature.
type Registry struct {
	problems map[string]ode.Factory
}

// NewRegistry returns a registry preloaded with the built-in problems.
func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]ode.Factory)}

	r.problems["lotka-volterra"] = ivps.LotkaVolterra
	r.problems["logistic"] = ivps.Logistic
	r.problems["affine-independent"] = ivps.AffineIndependent
	r.problems["affine-dependent"] = ivps.AffineDependent
	r.problems["lorenz63"] = ivps.Lorenz63
	r.problems["lorenz96"] = ivps.Lorenz96
	r.problems["roessler"] = ivps.Roessler
	r.problems["rigid-body"] = ivps.RigidBody
	r.problems["sir"] = ivps.SIR
	r.problems["seir"] = ivps.SEIR
	r.problems["sird"] = ivps.SIRD
	r.problems["hires"] = ivps.HIRES
	r.problems["rober"] = ivps.ROBER
	r.problems["oregonator"] = ivps.Oregonator
	r.problems["nonlinear-chemical-reaction"] = ivps.NonlinearChemicalReaction
	r.problems["fitzhugh-nagumo"] = ivps.FitzHughNagumo
	r.problems["goodwin"] = ivps.Goodwin
	r.problems["van-der-pol"] = ivps.VanDerPolFirstOrder
	r.problems["pleiades"] = ivps.PleiadesFirstOrder
	r.problems["henon-heiles"] = ivps.HenonHeilesFirstOrder
	r.problems["three-body-restricted"] = ivps.ThreeBodyRestrictedFirstOrder
	r.problems["neural-ode-mlp"] = ivps.NeuralODEMLP

	return r
}

// Register adds or replaces a named constructor.
func (r *Registry) Register(name string, factory ode.Factory) {
	r.problems[name] = factory
}

// Get looks up a constructor by name.
func (r *Registry) Get(name string) (ode.Factory, error) {
	factory, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return factory, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
