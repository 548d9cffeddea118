// Copyright 2025 go-scimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scimd

// Register is the set of primitives a backend provides for one
// (element type, instruction set) pair. R is the backend's native register
// type; every method has a value receiver and the receiver is the left
// operand. Constructors (Zero, Set1, Load, LoadAligned) ignore the receiver,
// so the zero value of R acts as the tag that selects the backend.
//
// Comparison results are register values whose lanes are all ones (true) or
// all zeros (false). And, Or, Xor and AndNot operate on raw lane bits and
// accept both masks and ordinary values.
type Register[T Floats, R any] interface {
	// Lanes returns the number of T lanes in one register.
	Lanes() int

	Zero() R
	Set1(x T) R

	// Load reads Lanes() elements from src.
	Load(src []T) R
	// LoadAligned reads Lanes() elements starting at p, which must be
	// aligned to the register width. Alignment is not checked.
	LoadAligned(p *T) R
	// Store writes Lanes() elements to dst.
	Store(dst []T)
	// StoreAligned writes Lanes() elements starting at p, which must be
	// aligned to the register width.
	StoreAligned(p *T)

	Neg() R
	Add(y R) R
	Sub(y R) R
	Mul(y R) R
	Div(y R) R
	Min(y R) R
	Max(y R) R

	// Sqrt is the IEEE square root.
	Sqrt() R
	// RSqrt approximates 1/sqrt(x) with a backend-documented error bound.
	RSqrt() R

	Less(y R) R
	Greater(y R) R
	LessEqual(y R) R
	GreaterEqual(y R) R
	Equal(y R) R

	And(y R) R
	Or(y R) R
	Xor(y R) R
	// AndNot returns x &^ y.
	AndNot(y R) R

	// Blend takes lanes of y where mask is true and of the receiver elsewhere.
	Blend(y, mask R) R

	// MoveMask gathers the sign bit of each lane into bit i of the result.
	MoveMask() uint64
	All() bool
	None() bool
}
