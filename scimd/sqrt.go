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

// SqrtProxy is an unevaluated square root returned by Sqrt. It is meant to
// be consumed in the same expression that creates it, in one of two ways:
//
//	s := scimd.Sqrt(y).Value()     // IEEE sqrt(y)
//	q := x.DivSqrt(scimd.Sqrt(y))  // x * RSqrt(y), approximate
//
// The two spellings keep the accurate and the fast path distinct at the
// call site.
type SqrtProxy[T Floats, R Register[T, R]] struct {
	arg Vec[T, R]
}

// Sqrt defers the square root of v. See SqrtProxy.
func Sqrt[T Floats, R Register[T, R]](v Vec[T, R]) SqrtProxy[T, R] {
	return SqrtProxy[T, R]{arg: v}
}

// Value computes the IEEE square root.
func (p SqrtProxy[T, R]) Value() Vec[T, R] {
	return Vec[T, R]{val: p.arg.val.Sqrt()}
}

// ScalarDivSqrt returns x / sqrt(y) through the fast reciprocal square root.
func ScalarDivSqrt[T Floats, R Register[T, R]](x T, p SqrtProxy[T, R]) Vec[T, R] {
	return Splat[T, R](x).DivSqrt(p)
}
