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

import (
	"fmt"
	"unsafe"
)

// Vec is a vector of T lanes held in one native register R.
//
// The zero value is the zero vector. Vec is a plain value: copying it copies
// the register bits. Methods with a value receiver return a new Vec; the
// *Assign methods, Load and Blend update the receiver in place.
type Vec[T Floats, R Register[T, R]] struct {
	val R
}

// Splat returns a vector with x in every lane.
func Splat[T Floats, R Register[T, R]](x T) Vec[T, R] {
	var r R
	return Vec[T, R]{val: r.Set1(x)}
}

// FromRaw wraps a native register.
func FromRaw[T Floats, R Register[T, R]](r R) Vec[T, R] {
	return Vec[T, R]{val: r}
}

// Raw returns the native register.
func (v Vec[T, R]) Raw() R {
	return v.val
}

// Lanes returns the number of lanes in v.
func (v Vec[T, R]) Lanes() int {
	return v.val.Lanes()
}

// Data returns a copy of the lanes as a slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T, R]) Data() []T {
	out := make([]T, v.Lanes())
	v.val.Store(out)
	return out
}

// Lane returns lane i. It panics if i is out of range.
func (v Vec[T, R]) Lane(i int) T {
	var buf [MaxLanes]T
	n := v.Lanes()
	v.val.Store(buf[:n])
	return buf[:n][i]
}

// String formats the lanes like a slice.
func (v Vec[T, R]) String() string {
	return fmt.Sprint(v.Data())
}

// Neg returns -v.
func (v Vec[T, R]) Neg() Vec[T, R] { return Vec[T, R]{val: v.val.Neg()} }

// Add returns v + w.
func (v Vec[T, R]) Add(w Vec[T, R]) Vec[T, R] { return Vec[T, R]{val: v.val.Add(w.val)} }

// Sub returns v - w.
func (v Vec[T, R]) Sub(w Vec[T, R]) Vec[T, R] { return Vec[T, R]{val: v.val.Sub(w.val)} }

// Mul returns v * w.
func (v Vec[T, R]) Mul(w Vec[T, R]) Vec[T, R] { return Vec[T, R]{val: v.val.Mul(w.val)} }

// Div returns v / w.
func (v Vec[T, R]) Div(w Vec[T, R]) Vec[T, R] { return Vec[T, R]{val: v.val.Div(w.val)} }

// AddScalar returns v + x.
func (v Vec[T, R]) AddScalar(x T) Vec[T, R] { return v.Add(Splat[T, R](x)) }

// SubScalar returns v - x.
func (v Vec[T, R]) SubScalar(x T) Vec[T, R] { return v.Sub(Splat[T, R](x)) }

// MulScalar returns v * x.
func (v Vec[T, R]) MulScalar(x T) Vec[T, R] { return v.Mul(Splat[T, R](x)) }

// DivScalar returns v / x.
func (v Vec[T, R]) DivScalar(x T) Vec[T, R] { return v.Div(Splat[T, R](x)) }

// AddAssign sets v to v + w and returns the result.
func (v *Vec[T, R]) AddAssign(w Vec[T, R]) Vec[T, R] {
	v.val = v.val.Add(w.val)
	return *v
}

// SubAssign sets v to v - w and returns the result.
func (v *Vec[T, R]) SubAssign(w Vec[T, R]) Vec[T, R] {
	v.val = v.val.Sub(w.val)
	return *v
}

// MulAssign sets v to v * w and returns the result.
func (v *Vec[T, R]) MulAssign(w Vec[T, R]) Vec[T, R] {
	v.val = v.val.Mul(w.val)
	return *v
}

// DivAssign sets v to v / w and returns the result.
func (v *Vec[T, R]) DivAssign(w Vec[T, R]) Vec[T, R] {
	v.val = v.val.Div(w.val)
	return *v
}

// Less returns the lanes where v < w.
func (v Vec[T, R]) Less(w Vec[T, R]) Mask[T, R] { return Mask[T, R]{val: v.val.Less(w.val)} }

// Greater returns the lanes where v > w.
func (v Vec[T, R]) Greater(w Vec[T, R]) Mask[T, R] { return Mask[T, R]{val: v.val.Greater(w.val)} }

// LessEqual returns the lanes where v <= w.
func (v Vec[T, R]) LessEqual(w Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{val: v.val.LessEqual(w.val)}
}

// GreaterEqual returns the lanes where v >= w.
func (v Vec[T, R]) GreaterEqual(w Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{val: v.val.GreaterEqual(w.val)}
}

// Equal returns the lanes where v == w.
func (v Vec[T, R]) Equal(w Vec[T, R]) Mask[T, R] { return Mask[T, R]{val: v.val.Equal(w.val)} }

// LessScalar returns the lanes where v < x.
func (v Vec[T, R]) LessScalar(x T) Mask[T, R] { return v.Less(Splat[T, R](x)) }

// GreaterScalar returns the lanes where v > x.
func (v Vec[T, R]) GreaterScalar(x T) Mask[T, R] { return v.Greater(Splat[T, R](x)) }

// LessEqualScalar returns the lanes where v <= x.
func (v Vec[T, R]) LessEqualScalar(x T) Mask[T, R] { return v.LessEqual(Splat[T, R](x)) }

// GreaterEqualScalar returns the lanes where v >= x.
func (v Vec[T, R]) GreaterEqualScalar(x T) Mask[T, R] { return v.GreaterEqual(Splat[T, R](x)) }

// EqualScalar returns the lanes where v == x.
func (v Vec[T, R]) EqualScalar(x T) Mask[T, R] { return v.Equal(Splat[T, R](x)) }

// Blend replaces the lanes of v with those of other wherever mask is true,
// and returns the updated v.
//
//	a.Blend(RSqrt(r2), r.GreaterEqual(twoh)) // a = r >= twoh ? rsqrt(r2) : a
func (v *Vec[T, R]) Blend(other Vec[T, R], mask Mask[T, R]) Vec[T, R] {
	v.val = v.val.Blend(other.val, mask.val)
	return *v
}

// DivSqrt returns v / sqrt(y) through the fast reciprocal square root,
// i.e. v * RSqrt(y). The result carries the RSqrt error bound.
func (v Vec[T, R]) DivSqrt(p SqrtProxy[T, R]) Vec[T, R] {
	return v.Mul(RSqrt(p.arg))
}

// Load fills v from the first Lanes() elements of src and returns the rest
// of src. It panics if src is shorter than Lanes().
func (v *Vec[T, R]) Load(src []T) []T {
	n := v.val.Lanes()
	_ = src[n-1]
	v.val = v.val.Load(src)
	return src[n:]
}

// LoadAligned is Load for a src whose first element is aligned to
// CurrentWidth(), as returned by AllocAligned. Misalignment is not detected.
func (v *Vec[T, R]) LoadAligned(src []T) []T {
	n := v.val.Lanes()
	_ = src[n-1]
	v.val = v.val.LoadAligned(unsafe.SliceData(src))
	return src[n:]
}

// Store writes the lanes of v to the start of dst and returns the rest of
// dst. It panics if dst is shorter than Lanes().
func (v Vec[T, R]) Store(dst []T) []T {
	n := v.val.Lanes()
	_ = dst[n-1]
	v.val.Store(dst)
	return dst[n:]
}

// StoreAligned is Store for an aligned dst.
func (v Vec[T, R]) StoreAligned(dst []T) []T {
	n := v.val.Lanes()
	_ = dst[n-1]
	v.val.StoreAligned(unsafe.SliceData(dst))
	return dst[n:]
}
