// Package bvps constructs boundary value problems.
//
// Each constructor resolves its arrays through an injected
// backend.Registry, mirroring the initial value constructors in package
// ivps. Two-point problems carry a residual condition per endpoint and
// periodic problems carry a single residual over both endpoints; a
// solution is a trajectory that zeroes every residual.
package bvps
