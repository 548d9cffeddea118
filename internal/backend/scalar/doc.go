// Package scalar is the one-lane fallback backend. Each register holds a
// single float, and masks are the float whose bits are all ones (true) or
// all zeros (false), so the same bitwise operations serve values and masks.
//
// RSqrt is computed exactly as 1/sqrt(x).
package scalar
