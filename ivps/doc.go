// Package ivps constructs the initial value problems of the zoo.
//
// Every factory takes the backend registry plus functional options and
// returns a fresh, immutable problem record. Defaults (initial values,
// time spans, parameters) are the commonly cited ones for each
// benchmark; ode.WithInitialValues, ode.WithInitialState,
// ode.WithTimeSpan and ode.WithParameters override them.
//
// Second-order problems (Pleiades, Henon-Heiles, Van der Pol, the
// restricted three-body problem) come in two forms: the original
// second-order record and a FirstOrder variant produced by the
// transform package, which speaks the doubled-state convention.
//
// All arrays in one record come from the engine selected at
// construction time.
package ivps
