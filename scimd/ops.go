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

import "math"

// This file holds the free-function forms of the vector operations: min/max,
// rsqrt and the overloads with a scalar on the left. The scalar forms
// broadcast the scalar and delegate to the method.

// Max returns the lane-wise maximum of a and b. NaN handling follows the
// backend instruction.
func Max[T Floats, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{val: a.val.Max(b.val)}
}

// Min returns the lane-wise minimum of a and b.
func Min[T Floats, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{val: a.val.Min(b.val)}
}

// Abs clears the sign bit of every lane.
func Abs[T Floats, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	var r R
	sign := r.Set1(T(math.Copysign(0, -1)))
	return Vec[T, R]{val: v.val.AndNot(sign)}
}

// RSqrt approximates 1/sqrt(v) per lane.
//
// On x86 the float32 result comes from the hardware estimate refined by one
// Newton-Raphson step (relative error about 2e-7); float64 refines a float32
// estimate with a fifth-order polynomial (about 3e-16). The scalar backend
// computes 1/sqrt(v) exactly. Use Sqrt(v).Value() when an IEEE result is
// required.
//
// The 128 and 256-bit float64 backends take their seed from float32, so
// they only cover inputs in the normal float32 range, about
// [1.2e-38, 3.4e38]. Below it they return +Inf, above it 0. The 512-bit
// and scalar backends cover the whole float64 range.
func RSqrt[T Floats, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{val: v.val.RSqrt()}
}

// ScalarAdd returns x + v.
func ScalarAdd[T Floats, R Register[T, R]](x T, v Vec[T, R]) Vec[T, R] {
	return Splat[T, R](x).Add(v)
}

// ScalarSub returns x - v.
func ScalarSub[T Floats, R Register[T, R]](x T, v Vec[T, R]) Vec[T, R] {
	return Splat[T, R](x).Sub(v)
}

// ScalarMul returns x * v.
func ScalarMul[T Floats, R Register[T, R]](x T, v Vec[T, R]) Vec[T, R] {
	return Splat[T, R](x).Mul(v)
}

// ScalarDiv returns x / v.
func ScalarDiv[T Floats, R Register[T, R]](x T, v Vec[T, R]) Vec[T, R] {
	return Splat[T, R](x).Div(v)
}

// ScalarLess returns the lanes where x < v.
func ScalarLess[T Floats, R Register[T, R]](x T, v Vec[T, R]) Mask[T, R] {
	return Splat[T, R](x).Less(v)
}

// ScalarGreater returns the lanes where x > v.
func ScalarGreater[T Floats, R Register[T, R]](x T, v Vec[T, R]) Mask[T, R] {
	return Splat[T, R](x).Greater(v)
}

// ScalarLessEqual returns the lanes where x <= v.
func ScalarLessEqual[T Floats, R Register[T, R]](x T, v Vec[T, R]) Mask[T, R] {
	return Splat[T, R](x).LessEqual(v)
}

// ScalarGreaterEqual returns the lanes where x >= v.
func ScalarGreaterEqual[T Floats, R Register[T, R]](x T, v Vec[T, R]) Mask[T, R] {
	return Splat[T, R](x).GreaterEqual(v)
}

// IfThenElse returns yes where mask is true and no elsewhere.
func IfThenElse[T Floats, R Register[T, R]](mask Mask[T, R], yes, no Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{val: no.val.Blend(yes.val, mask.val)}
}
