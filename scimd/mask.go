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

import "math/bits"

// Mask is the result of a lane-wise comparison. Each lane of the underlying
// register is either all ones (true) or all zeros (false).
//
// The zero value has every lane false.
type Mask[T Floats, R Register[T, R]] struct {
	val R
}

// Raw returns the mask as a native register.
func (m Mask[T, R]) Raw() R {
	return m.val
}

// Lanes returns the number of lanes in the mask.
func (m Mask[T, R]) Lanes() int {
	return m.val.Lanes()
}

// And returns the lanes true in both m and o.
func (m Mask[T, R]) And(o Mask[T, R]) Mask[T, R] { return Mask[T, R]{val: m.val.And(o.val)} }

// Or returns the lanes true in m or o.
func (m Mask[T, R]) Or(o Mask[T, R]) Mask[T, R] { return Mask[T, R]{val: m.val.Or(o.val)} }

// Xor returns the lanes true in exactly one of m and o.
func (m Mask[T, R]) Xor(o Mask[T, R]) Mask[T, R] { return Mask[T, R]{val: m.val.Xor(o.val)} }

// AndNot returns the lanes true in m and false in o.
func (m Mask[T, R]) AndNot(o Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{val: m.val.AndNot(o.val)}
}

// Not inverts every lane.
func (m Mask[T, R]) Not() Mask[T, R] {
	return Mask[T, R]{val: allTrue[T, R]().AndNot(m.val)}
}

// All reports whether every lane is true.
func (m Mask[T, R]) All() bool {
	return m.val.All()
}

// None reports whether every lane is false.
func (m Mask[T, R]) None() bool {
	return m.val.None()
}

// Any reports whether at least one lane is true.
func (m Mask[T, R]) Any() bool {
	return !m.val.None()
}

// Bits returns the mask packed into an integer, lane i in bit i.
func (m Mask[T, R]) Bits() uint64 {
	return m.val.MoveMask()
}

// CountTrue returns the number of true lanes.
func (m Mask[T, R]) CountTrue() int {
	return bits.OnesCount64(m.val.MoveMask())
}

// GetBit reports whether lane i is true.
func (m Mask[T, R]) GetBit(i int) bool {
	if i < 0 || i >= m.Lanes() {
		return false
	}
	return m.val.MoveMask()&(1<<uint(i)) != 0
}

// allTrue returns a register with every bit set. Any value compares equal to
// itself unless it is NaN, and zero is not.
func allTrue[T Floats, R Register[T, R]]() R {
	var r R
	z := r.Zero()
	return z.Equal(z)
}

// TrueMask returns a mask with every lane true.
func TrueMask[T Floats, R Register[T, R]]() Mask[T, R] {
	return Mask[T, R]{val: allTrue[T, R]()}
}
