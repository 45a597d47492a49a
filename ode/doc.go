// Package ode defines the problem records shared by the whole zoo.
//
// A [Problem] bundles a vector field with its initial values, time span
// and bound parameters; a [SecondOrderProblem] is the same bundle for
// dynamics expressed over position and velocity. Records are values:
// factories build a fresh one per call and nothing mutates them in
// place.
//
// Vector fields come in three calling conventions, tagged by [Meta]:
//
//   - [VectorField]: first order, autonomous
//   - [TimeVectorField]: first order, explicit time dependence
//   - [VectorField2]: second order, autonomous
//
// [Problem.Evaluate] is the uniform invocation helper that consumers can
// use without caring which convention a problem follows.
package ode
