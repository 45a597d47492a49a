// Package vectorfield implements the right-hand sides of the benchmark
// problems.
//
// Each constructor takes the backend registry and returns a closure in
// one of the ode calling conventions. The closure resolves the
// registry's engine at call time, so a field built before an engine
// revision follows the revision. Parameters arrive as bound arguments in
// the order the corresponding factory documents.
//
// The formulas and constants are the standard ones from the numerical
// ODE literature (Hairer et al. for the mechanics problems, Hairer and
// Wanner for the stiff reaction problems) and are not interpreted here.
package vectorfield
