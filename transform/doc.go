// Package transform rewrites second-order problems into first-order
// form.
//
// A second-order autonomous equation ddu = f(u, du) becomes the
// first-order equation dy = g(y) over the doubled state y = (u, du),
// with g(y) = (du, f(u, du)). [SecondToFirstOrderVectorField] performs
// the rewrite on a vector field; [SecondToFirstOrder] lifts it to whole
// problem factories, concatenating the initial condition pair into one
// vector.
//
// The split point is always Len()/2. Odd-length states are not
// validated; they surface as whatever shape error the array engine
// raises downstream.
package transform
